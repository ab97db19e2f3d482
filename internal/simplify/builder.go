// Package simplify implements the engine's component H: the algebraic
// simplifier that sits in front of the variable table. Every public
// constructor looks its operands up in the merge table first (Add, Sub,
// Mul and Neg substitute a root only when it is a constant), then either
// folds them to a constant, collapses them to an already-existing
// variable, or falls back to building (and hash-consing) a fresh compound
// variable — exactly the shape of the upstream bv_solver_create_bv*
// family.
package simplify

import (
	"bvcore/internal/bvnum"
	"bvcore/internal/lit"
	"bvcore/internal/mergetable"
	"bvcore/internal/vartable"
)

// Builder wires the variable table and merge table together behind the
// simplifying constructors, plus the two scratch buffers the polynomial
// and power-product normalization stages reuse across calls.
type Builder struct {
	vt *vartable.Table
	mt *mergetable.Table

	polyBuf polyBuf
	ppBuf   ppBuf
}

// NewBuilder returns a Builder over the given variable and merge tables.
func NewBuilder(vt *vartable.Table, mt *mergetable.Table) *Builder {
	return &Builder{vt: vt, mt: mt}
}

// root returns the merge-table representative of x.
func (b *Builder) root(x vartable.VarID) vartable.VarID {
	return b.mt.Root(x)
}

// rootIfConst returns x's merge-table root only if that root is a
// constant; otherwise it returns x unchanged. Polynomial and
// power-product flattening substitute an operand for its class
// representative only when doing so folds it to a known value — merging
// two unrelated non-constant variables later must never silently change
// the identity of a term already baked into an existing polynomial or
// power product.
func (b *Builder) rootIfConst(x vartable.VarID) vartable.VarID {
	r := b.root(x)
	if _, ok := b.constOf(r); ok {
		return r
	}
	return x
}

// constOf reports whether the (already rooted) variable x is a constant,
// and its value if so.
func (b *Builder) constOf(x vartable.VarID) (bvnum.Value, bool) {
	v := b.vt.Get(x)
	switch d := v.Def.(type) {
	case vartable.DefConst64:
		return bvnum.FromUint64(v.Bits, d.Value), true
	case vartable.DefConst:
		return d.Value, true
	default:
		return bvnum.Value{}, false
	}
}

// newConst interns the normalized value as a CONST64 or CONST variable
// depending on its width, matching get_bvconst64/get_bvconst's split.
func (b *Builder) newConst(v bvnum.Value) vartable.VarID {
	if v.IsWide() {
		return b.vt.NewConst(vartable.DefConst{Value: v})
	}
	return b.vt.NewConst64(v.Bits, v.Small())
}

// SelectBit returns the single-bit literal at index i of x's bit-blasted
// representation, allocating x's pseudo-literal array via alloc on first
// use. Kept on Builder (rather than a free function over *vartable.Table)
// so callers reach every simplification entry point through one value.
func (b *Builder) SelectBit(x vartable.VarID, i uint32, alloc func(bits uint32) []lit.Lit) lit.Lit {
	x = b.root(x)
	bits := b.vt.PseudoLits(x, alloc)
	return bits[i]
}
