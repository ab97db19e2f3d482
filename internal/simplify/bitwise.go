package simplify

import (
	"bvcore/internal/bvnum"
	"bvcore/internal/vartable"
)

// And builds x AND y, applying the absorption identities x&0=0 and
// x&allones=x before falling back to constant folding or a fresh
// compound node.
func (b *Builder) And(bits uint32, x, y vartable.VarID) vartable.VarID {
	x, y = b.root(x), b.root(y)
	if cx, ok := b.constOf(x); ok {
		if cx.IsZero() {
			return x
		}
		if cx.IsAllOnes() {
			return y
		}
	}
	if cy, ok := b.constOf(y); ok {
		if cy.IsZero() {
			return y
		}
		if cy.IsAllOnes() {
			return x
		}
	}
	return b.foldedBinOp(bits, vartable.KindAnd, x, y, bvnum.And)
}

// Or builds x OR y, applying x|0=x and x|allones=allones.
func (b *Builder) Or(bits uint32, x, y vartable.VarID) vartable.VarID {
	x, y = b.root(x), b.root(y)
	if cx, ok := b.constOf(x); ok {
		if cx.IsZero() {
			return y
		}
		if cx.IsAllOnes() {
			return x
		}
	}
	if cy, ok := b.constOf(y); ok {
		if cy.IsZero() {
			return x
		}
		if cy.IsAllOnes() {
			return y
		}
	}
	return b.foldedBinOp(bits, vartable.KindOr, x, y, bvnum.Or)
}

// Xor builds x XOR y, applying x^0=x and the hash-consing identity x^x=0
// (sound because x and y are both already merge-table roots, so x==y here
// means the same class).
func (b *Builder) Xor(bits uint32, x, y vartable.VarID) vartable.VarID {
	x, y = b.root(x), b.root(y)
	if x == y {
		return b.newConst(bvnum.Zero(bits))
	}
	if cx, ok := b.constOf(x); ok && cx.IsZero() {
		return y
	}
	if cy, ok := b.constOf(y); ok && cy.IsZero() {
		return x
	}
	return b.foldedBinOp(bits, vartable.KindXor, x, y, bvnum.Xor)
}

// Not builds the bitwise complement of x as x XOR allones, the standard
// identity that lets NOT reuse the XOR kind instead of needing its own
// vartable.Kind and hash-cons key shape. Complementing a variable that is
// itself x XOR allones returns x, so Not(Not(x)) == x.
func (b *Builder) Not(bits uint32, x vartable.VarID) vartable.VarID {
	allOnes := b.newConst(bvnum.AllOnes(bits))
	if v := b.vt.Get(b.root(x)); v.Kind == vartable.KindXor {
		if d, ok := v.Def.(vartable.DefBinOp); ok && d.Right == allOnes {
			return d.Left
		}
	}
	return b.Xor(bits, x, allOnes)
}
