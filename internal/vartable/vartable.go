// Package vartable implements the engine's component B: the table of
// theory variables, each uniquely hash-consed by structural content so
// that two calls describing the same term always return the same VarID.
// Variable id 0 is reserved and never allocated, mirroring the convention
// internal/lit uses for Boolean variable 0.
package vartable

import (
	"fmt"

	"bvcore/internal/intern"
	"bvcore/internal/lit"
)

// VarID identifies a theory variable. 0 is reserved.
type VarID uint32

// maxVars bounds how large the table may grow before construction panics
// with an out-of-memory condition, per the engine's fatal-OOM contract
// (SPEC_FULL.md §7).
const maxVars = 1 << 28

// Var is one row of the table: its width, kind, structural definition,
// and the lazily-populated side tables the facades attach to it.
type Var struct {
	ID    VarID
	Bits  uint32
	Kind  Kind
	Def   Def
	Eterm ETermID // NoETerm until the e-graph facade attaches one

	// PseudoMap is the per-bit pseudo-literal array the remap facade
	// allocates lazily on first use (bit-blasting a variable it has not
	// seen before). Left nil until then; len(PseudoMap) == Bits once set.
	PseudoMap []lit.Lit
}

// ETermID identifies an attached e-graph term. 0 (NoETerm) means unattached.
type ETermID uint32

// NoETerm is the sentinel meaning "no e-graph term attached".
const NoETerm ETermID = 0

// Table holds every live variable plus the intern index used to hash-cons
// compound kinds. Index 0 of vars is never populated (VarID 0 reserved).
type Table struct {
	vars   []*Var
	intern *intern.Table
}

// New returns an empty variable table.
func New() *Table {
	t := &Table{intern: intern.New()}
	t.vars = append(t.vars, nil) // reserve id 0
	return t
}

// Len returns the number of allocated variables, including the reserved
// slot at index 0.
func (t *Table) Len() int { return len(t.vars) }

// Get returns the descriptor for id. Panics on an out-of-range or freed id;
// callers are expected to only ever hold ids the table itself has handed
// out and not yet popped away.
func (t *Table) Get(id VarID) *Var {
	return t.vars[id]
}

func (t *Table) alloc(bits uint32, kind Kind, def Def) VarID {
	if len(t.vars) >= maxVars {
		panic("vartable: out of variable ids")
	}
	id := VarID(len(t.vars))
	t.vars = append(t.vars, &Var{ID: id, Bits: bits, Kind: kind, Def: def})
	return id
}

// NewVar allocates a fresh uninterpreted variable of the given width. VAR
// is never hash-consed: every call returns a new id even if an identical
// one already exists.
func (t *Table) NewVar(bits uint32) VarID {
	return t.alloc(bits, KindVar, DefVar{})
}

// Pop discards every variable with id >= keep, erasing their intern
// entries first so the hash-cons table never holds a dangling reference
// into the truncated tail.
func (t *Table) Pop(keep int) {
	for i := len(t.vars) - 1; i >= keep; i-- {
		v := t.vars[i]
		if h, ok := t.hashOf(v); ok {
			t.intern.Erase(h, uint32(v.ID))
		}
	}
	t.vars = t.vars[:keep]
}

// hashOf recomputes the structural hash of an already-built variable, for
// use by Pop when retracting its intern entry. VAR is never interned, so
// it reports ok=false.
func (t *Table) hashOf(v *Var) (uint64, bool) {
	switch d := v.Def.(type) {
	case DefConst64:
		return const64Key{t: t, bits: v.Bits, value: d.Value}.Hash(), true
	case DefConst:
		return constKey{t: t, bits: v.Bits, value: d.Value}.Hash(), true
	case DefPoly64:
		return poly64Key{t: t, bits: v.Bits, def: d}.Hash(), true
	case DefPoly:
		return polyKey{t: t, bits: v.Bits, def: d}.Hash(), true
	case DefPProd:
		return pprodKey{t: t, def: d}.Hash(), true
	case DefBitArray:
		return bitArrayKey{t: t, bits: v.Bits, seq: d.Bits}.Hash(), true
	case DefITE:
		return iteKey{t: t, bits: v.Bits, def: d}.Hash(), true
	case DefBinOp:
		return binOpKey{t: t, bits: v.Bits, kind: v.Kind, def: d}.Hash(), true
	default:
		return 0, false
	}
}

func (t *Table) String() string {
	return fmt.Sprintf("vartable(%d vars)", len(t.vars)-1)
}
