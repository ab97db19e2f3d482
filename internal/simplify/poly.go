package simplify

import (
	"bvcore/internal/bvnum"
	"bvcore/internal/vartable"
)

func constOne(bits uint32) bvnum.Value { return bvnum.FromUint64(bits, 1) }

func negOne(bits uint32) bvnum.Value { return bvnum.Neg(constOne(bits)) }

// Add builds x+y, flattening any POLY/POLY64 operands into the shared
// polynomial buffer and folding constants away, per bvbuffer_add_mono64's
// "constants replace the term" rule applied to both operands of a sum.
func (b *Builder) Add(bits uint32, x, y vartable.VarID) vartable.VarID {
	one := constOne(bits)
	b.polyBuf.reset(bits)
	b.addOperand(&b.polyBuf, x, one)
	b.addOperand(&b.polyBuf, y, one)
	return b.buildPoly(&b.polyBuf)
}

// Sub builds x-y as x + (-1)*y.
func (b *Builder) Sub(bits uint32, x, y vartable.VarID) vartable.VarID {
	b.polyBuf.reset(bits)
	b.addOperand(&b.polyBuf, x, constOne(bits))
	b.addOperand(&b.polyBuf, y, negOne(bits))
	return b.buildPoly(&b.polyBuf)
}

// Neg builds -x as 0-x.
func (b *Builder) Neg(bits uint32, x vartable.VarID) vartable.VarID {
	b.polyBuf.reset(bits)
	b.addOperand(&b.polyBuf, x, negOne(bits))
	return b.buildPoly(&b.polyBuf)
}

// Mul builds x*y. A constant operand scales the other operand's
// polynomial (map_bvpoly64's monomial-scaling path); two non-constant
// operands build or extend a power product instead, merging exponents of
// shared variables the way map_product does.
func (b *Builder) Mul(bits uint32, x, y vartable.VarID) vartable.VarID {
	if cx, ok := b.constOf(b.root(x)); ok {
		b.polyBuf.reset(bits)
		b.addOperand(&b.polyBuf, y, cx)
		return b.buildPoly(&b.polyBuf)
	}
	if cy, ok := b.constOf(b.root(y)); ok {
		b.polyBuf.reset(bits)
		b.addOperand(&b.polyBuf, x, cy)
		return b.buildPoly(&b.polyBuf)
	}

	b.ppBuf.reset()
	b.addFactorOperand(&b.ppBuf, x)
	b.addFactorOperand(&b.ppBuf, y)
	return b.buildProduct(bits, &b.ppBuf)
}
