package facade

import (
	"bvcore/internal/lit"
	"bvcore/internal/mergetable"
	"bvcore/internal/vartable"
)

// Remap is the pseudo-literal remap facade: it lazily allocates a
// variable's per-bit pseudo-literal array, and resolves a single bit down
// to a concrete Boolean literal, allocating one through the SAT facade on
// first use. Grounded on bv_solver_get_pseudo_map/bvvar_get_bit: lazily
// fetch (or build) the pseudo-literal array, then lazily fetch (or bind)
// the real literal for the bit's root.
type Remap struct {
	vt  *vartable.Table
	mt  *mergetable.Table
	sat *SAT

	// bound maps a pseudo-literal's variable to the concrete literal
	// already bound to it, the remap table's find/assign pair collapsed
	// to a flat map since pseudo-literals here are never aliased across
	// variables (each PseudoLits() array is allocated with fresh
	// variables by freshArray).
	bound map[lit.Var]lit.Lit
}

// NewRemap returns a remap facade wired to vt, mt, and sat.
func NewRemap(vt *vartable.Table, mt *mergetable.Table, sat *SAT) *Remap {
	return &Remap{vt: vt, mt: mt, sat: sat, bound: make(map[lit.Var]lit.Lit)}
}

// freshArray allocates n fresh pseudo-literal placeholders, one per bit.
// Each is a fresh SAT variable's positive literal so later calls to Bit
// can tell which variable to look up in bound; the pseudo-literal itself
// is never asserted to the SAT core, only used as a map key.
func (r *Remap) freshArray(n uint32) []lit.Lit {
	out := make([]lit.Lit, n)
	for i := range out {
		out[i] = lit.Of(r.sat.NewVar())
	}
	return out
}

// PseudoLits returns x's pseudo-literal array, allocating it on first use.
func (r *Remap) PseudoLits(x vartable.VarID) []lit.Lit {
	return r.vt.PseudoLits(x, r.freshArray)
}

// Bit resolves bit i of x to a concrete literal, allocating a fresh
// Boolean variable through the SAT facade the first time that bit is
// asked for. x is rooted through the merge table first, so equivalent
// variables always share one binding.
func (r *Remap) Bit(x vartable.VarID, i uint32) lit.Lit {
	x = r.mt.Root(x)
	pseudo := r.PseudoLits(x)[i]
	key := pseudo.Var()

	l, ok := r.bound[key]
	if !ok {
		l = r.sat.NewLit()
		r.bound[key] = l
	}
	if pseudo.Sign() {
		return l.Negate()
	}
	return l
}
