package simplify

import (
	"bvcore/internal/bvnum"
	"bvcore/internal/vartable"
)

// foldedBinOp roots both operands, folds them via fold when both are
// constants of the same kind, and otherwise hash-conses a compound
// variable of the given kind — the constructor shape shared by every
// bv_solver_create_bv{div,rem,...} function: "root, fold if both sides
// are CONST64 or both CONST, else build".
func (b *Builder) foldedBinOp(bits uint32, kind vartable.Kind, x, y vartable.VarID, fold func(a, c bvnum.Value) bvnum.Value) vartable.VarID {
	x, y = b.root(x), b.root(y)
	if cx, ok := b.constOf(x); ok {
		if cy, ok := b.constOf(y); ok {
			return b.newConst(fold(cx, cy))
		}
	}
	return b.vt.NewBinOp(bits, kind, x, y)
}

func (b *Builder) Udiv(bits uint32, x, y vartable.VarID) vartable.VarID {
	return b.foldedBinOp(bits, vartable.KindUdiv, x, y, bvnum.Udiv)
}

func (b *Builder) Urem(bits uint32, x, y vartable.VarID) vartable.VarID {
	return b.foldedBinOp(bits, vartable.KindUrem, x, y, bvnum.Urem)
}

func (b *Builder) Sdiv(bits uint32, x, y vartable.VarID) vartable.VarID {
	return b.foldedBinOp(bits, vartable.KindSdiv, x, y, bvnum.Sdiv)
}

func (b *Builder) Srem(bits uint32, x, y vartable.VarID) vartable.VarID {
	return b.foldedBinOp(bits, vartable.KindSrem, x, y, bvnum.Srem)
}

func (b *Builder) Smod(bits uint32, x, y vartable.VarID) vartable.VarID {
	return b.foldedBinOp(bits, vartable.KindSmod, x, y, bvnum.Smod)
}

// foldedShift is foldedBinOp plus the shift family's absorption rules:
// shifting by a constant zero returns x, and shifting a zero operand (for
// ASHR, also an all-ones operand) by anything, constant or not, returns
// that operand unchanged. The second rule mirrors
// bv_solver_create_bvshl/bvlshr/bvashr's fast path in bvsolver.c.
func (b *Builder) foldedShift(bits uint32, kind vartable.Kind, x, y vartable.VarID, fold func(a, c bvnum.Value) bvnum.Value, absorbs func(bvnum.Value) bool) vartable.VarID {
	x, y = b.root(x), b.root(y)
	if cy, ok := b.constOf(y); ok && cy.IsZero() {
		return x
	}
	if cx, ok := b.constOf(x); ok {
		if absorbs(cx) {
			return x
		}
		if cy, ok := b.constOf(y); ok {
			return b.newConst(fold(cx, cy))
		}
	}
	return b.vt.NewBinOp(bits, kind, x, y)
}

func (b *Builder) Shl(bits uint32, x, y vartable.VarID) vartable.VarID {
	return b.foldedShift(bits, vartable.KindShl, x, y, bvnum.Shl, bvnum.Value.IsZero)
}

func (b *Builder) Lshr(bits uint32, x, y vartable.VarID) vartable.VarID {
	return b.foldedShift(bits, vartable.KindLshr, x, y, bvnum.Lshr, bvnum.Value.IsZero)
}

func (b *Builder) Ashr(bits uint32, x, y vartable.VarID) vartable.VarID {
	return b.foldedShift(bits, vartable.KindAshr, x, y, bvnum.Ashr, func(v bvnum.Value) bool {
		return v.IsZero() || v.IsAllOnes()
	})
}
