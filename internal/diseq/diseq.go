// Package diseq implements the engine's component G: structural
// disequality detection between two merge-table roots, used to refute an
// EQ atom outright without ever reaching the bit-blaster. Like bounds,
// this is a sound but incomplete test: false means "not provably
// disequal", not "equal".
package diseq

import (
	"bvcore/internal/bvnum"
	"bvcore/internal/lit"
	"bvcore/internal/vartable"
)

// Disequal reports whether x and y — which must both be merge-table roots
// of the same bit width — can be shown unequal by structure alone,
// mirroring diseq_bvvar's same-kind and cross-kind cases.
func Disequal(vt *vartable.Table, x, y vartable.VarID) bool {
	if x == y {
		return false
	}
	vx, vy := vt.Get(x), vt.Get(y)

	if vx.Kind == vy.Kind {
		switch vx.Kind {
		case vartable.KindConst64, vartable.KindConst:
			// Both are roots and x != y, so two distinct interned constants
			// can never denote the same value.
			return true
		case vartable.KindPoly64:
			return disequalPoly64(vx.Def.(vartable.DefPoly64), vy.Def.(vartable.DefPoly64))
		case vartable.KindPoly:
			return disequalPoly(vx.Def.(vartable.DefPoly), vy.Def.(vartable.DefPoly))
		case vartable.KindBitArray:
			return diseqBitArrays(vx.Def.(vartable.DefBitArray).Bits, vy.Def.(vartable.DefBitArray).Bits)
		}
		return false
	}

	switch {
	case vx.Kind == vartable.KindConst64 && vy.Kind == vartable.KindBitArray:
		return diseqBitArrayConst64(vy.Def.(vartable.DefBitArray).Bits, vx.Def.(vartable.DefConst64).Value)
	case vy.Kind == vartable.KindConst64 && vx.Kind == vartable.KindBitArray:
		return diseqBitArrayConst64(vx.Def.(vartable.DefBitArray).Bits, vy.Def.(vartable.DefConst64).Value)
	case vx.Kind == vartable.KindConst && vy.Kind == vartable.KindBitArray:
		return diseqBitArrayConst(vy.Def.(vartable.DefBitArray).Bits, vx.Def.(vartable.DefConst).Value)
	case vy.Kind == vartable.KindConst && vx.Kind == vartable.KindBitArray:
		return diseqBitArrayConst(vx.Def.(vartable.DefBitArray).Bits, vy.Def.(vartable.DefConst).Value)
	case vx.Kind == vartable.KindPoly64 && vy.Kind != vartable.KindConst64:
		return isConstPlusVar64(vx.Def.(vartable.DefPoly64), y)
	case vy.Kind == vartable.KindPoly64 && vx.Kind != vartable.KindConst64:
		return isConstPlusVar64(vy.Def.(vartable.DefPoly64), x)
	case vx.Kind == vartable.KindPoly && vy.Kind != vartable.KindConst:
		return isConstPlusVar(vx.Def.(vartable.DefPoly), y)
	case vy.Kind == vartable.KindPoly && vx.Kind != vartable.KindConst:
		return isConstPlusVar(vy.Def.(vartable.DefPoly), x)
	}
	return false
}

// diseqBitArrays reports whether two same-length bit arrays have an index
// where the literals are syntactically opposite.
func diseqBitArrays(a, b []lit.Lit) bool {
	for i := range a {
		if lit.Opposite(a[i], b[i]) {
			return true
		}
	}
	return false
}

// diseqBitArrayConst64 uses the true_literal==0/false_literal==1 trick:
// bit i of c, read as a literal polarity, equal to a[i] itself means a[i]
// can never take c's value at that bit.
func diseqBitArrayConst64(a []lit.Lit, c uint64) bool {
	for i := range a {
		bit := lit.Lit(c & 1)
		if bit == a[i] {
			return true
		}
		c >>= 1
	}
	return false
}

func diseqBitArrayConst(a []lit.Lit, c bvnum.Value) bool {
	for i := range a {
		bit := lit.Lit(0)
		if c.Bit(uint32(i)) {
			bit = 1
		}
		if bit == a[i] {
			return true
		}
	}
	return false
}

// disequalPoly64 decides two POLY64 variables are disequal exactly when
// they agree on every monomial but disagree on the constant term: their
// difference then reduces to a nonzero constant for every assignment of
// the shared variables. bv64_polynomials.c's disequal_bvpoly64 is outside
// the retained excerpt of bvsolver.c; this is the natural soundness
// argument for a function of that name, given bv_vartable's invariant that
// two structurally-identical POLY64 defs are always the same hash-consed
// variable (so x != y here already implies the defs differ somewhere).
func disequalPoly64(p, q vartable.DefPoly64) bool {
	if p.Const == q.Const || len(p.Terms) != len(q.Terms) {
		return false
	}
	for i, m := range p.Terms {
		if q.Terms[i] != m {
			return false
		}
	}
	return true
}

func disequalPoly(p, q vartable.DefPoly) bool {
	if p.Const.Equal(q.Const) || len(p.Terms) != len(q.Terms) {
		return false
	}
	for i, m := range p.Terms {
		if q.Terms[i].Var != m.Var || !q.Terms[i].Coeff.Equal(m.Coeff) {
			return false
		}
	}
	return true
}

// isConstPlusVar64 reports whether p is exactly (nonzero_const + 1*y): a
// single monomial with coefficient 1 on y, plus a nonzero constant term.
// Such a polynomial can never equal y itself.
func isConstPlusVar64(p vartable.DefPoly64, y vartable.VarID) bool {
	return p.Const != 0 && len(p.Terms) == 1 && p.Terms[0].Var == y && p.Terms[0].Coeff == 1
}

func isConstPlusVar(p vartable.DefPoly, y vartable.VarID) bool {
	if p.Const.IsZero() || len(p.Terms) != 1 || p.Terms[0].Var != y {
		return false
	}
	one := bvnum.FromUint64(p.Const.Bits, 1)
	return p.Terms[0].Coeff.Equal(one)
}
