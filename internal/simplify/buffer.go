package simplify

import (
	"sort"

	"bvcore/internal/bvnum"
	"bvcore/internal/vartable"
)

// polyBuf accumulates a linear combination const + sum(coeff_i * var_i)
// across a sequence of addOperand calls, merging like terms. It is reset
// and reused by every Add/Sub/Mul/Neg call rather than allocated fresh,
// per SPEC_FULL.md §5's scratch-buffer ownership rule.
type polyBuf struct {
	bits     uint32
	constant bvnum.Value
	terms    map[vartable.VarID]bvnum.Value
	order    []vartable.VarID // insertion order, for a stable small-map path
}

func (p *polyBuf) reset(bits uint32) {
	p.bits = bits
	p.constant = bvnum.Zero(bits)
	if p.terms == nil {
		p.terms = make(map[vartable.VarID]bvnum.Value)
	} else {
		for k := range p.terms {
			delete(p.terms, k)
		}
	}
	p.order = p.order[:0]
}

func (p *polyBuf) addConst(c bvnum.Value) {
	p.constant = bvnum.Add(p.constant, c)
}

func (p *polyBuf) addMono(v vartable.VarID, coeff bvnum.Value) {
	if coeff.IsZero() {
		return
	}
	cur, ok := p.terms[v]
	if !ok {
		p.order = append(p.order, v)
		cur = bvnum.Zero(p.bits)
	}
	p.terms[v] = bvnum.Add(cur, coeff)
}

// addOperand folds x into the buffer scaled by coeff: constants accumulate
// into the constant term, POLY/POLY64 operands are flattened term-by-term,
// anything else becomes one monomial. This generalizes
// bvbuffer_add_mono64's "replace x by its value if constant" rule to also
// flatten nested polynomials, the way building a sum of two polynomials
// does upstream. x is substituted for its merge-table root only when that
// root is itself a constant; a non-constant root is not substituted in,
// since later merges must not retroactively change the identity of a term
// already baked into an existing polynomial.
func (b *Builder) addOperand(buf *polyBuf, x vartable.VarID, coeff bvnum.Value) {
	x = b.rootIfConst(x)
	v := b.vt.Get(x)
	switch d := v.Def.(type) {
	case vartable.DefConst64:
		buf.addConst(bvnum.Mul(bvnum.FromUint64(v.Bits, d.Value), coeff))
	case vartable.DefConst:
		buf.addConst(bvnum.Mul(d.Value, coeff))
	case vartable.DefPoly64:
		buf.addConst(bvnum.Mul(bvnum.FromUint64(v.Bits, d.Const), coeff))
		for _, m := range d.Terms {
			buf.addMono(m.Var, bvnum.Mul(bvnum.FromUint64(v.Bits, m.Coeff), coeff))
		}
	case vartable.DefPoly:
		buf.addConst(bvnum.Mul(d.Const, coeff))
		for _, m := range d.Terms {
			buf.addMono(m.Var, bvnum.Mul(m.Coeff, coeff))
		}
	default:
		buf.addMono(x, coeff)
	}
}

// buildPoly drains the buffer into a variable, applying map_bvpoly64/
// map_bvpoly's collapse rules: zero terms is the constant alone, exactly
// one term with coefficient 1 and a zero constant is that term's
// variable, otherwise a fresh (hash-consed) polynomial.
func (b *Builder) buildPoly(buf *polyBuf) vartable.VarID {
	sort.Slice(buf.order, func(i, j int) bool { return buf.order[i] < buf.order[j] })

	bits := buf.bits
	if len(buf.order) == 0 {
		return b.newConst(buf.constant)
	}

	live := buf.order[:0:0]
	for _, v := range buf.order {
		if !buf.terms[v].IsZero() {
			live = append(live, v)
		}
	}
	if len(live) == 0 {
		return b.newConst(buf.constant)
	}
	if len(live) == 1 && buf.constant.IsZero() {
		one := bvnum.FromUint64(bits, 1)
		if buf.terms[live[0]].Equal(one) {
			return live[0]
		}
	}

	if bits <= 64 {
		terms := make([]vartable.Mono64, len(live))
		for i, v := range live {
			terms[i] = vartable.Mono64{Var: v, Coeff: buf.terms[v].Small()}
		}
		return b.vt.NewPoly64(bits, vartable.DefPoly64{Const: buf.constant.Small(), Terms: terms})
	}
	terms := make([]vartable.Mono, len(live))
	for i, v := range live {
		terms[i] = vartable.Mono{Var: v, Coeff: buf.terms[v]}
	}
	return b.vt.NewPoly(bits, vartable.DefPoly{Const: buf.constant, Terms: terms})
}

// ppBuf accumulates a power product prod(var_i ^ exp_i) across a sequence
// of addFactor calls, merging repeated variables into a summed exponent.
type ppBuf struct {
	exps  map[vartable.VarID]uint32
	order []vartable.VarID
}

func (p *ppBuf) reset() {
	if p.exps == nil {
		p.exps = make(map[vartable.VarID]uint32)
	} else {
		for k := range p.exps {
			delete(p.exps, k)
		}
	}
	p.order = p.order[:0]
}

func (p *ppBuf) addFactor(v vartable.VarID, exp uint32) {
	if _, ok := p.exps[v]; !ok {
		p.order = append(p.order, v)
	}
	p.exps[v] += exp
}

// addFactorOperand flattens x into the power-product buffer: a PPROD
// operand contributes each of its factors, anything else contributes
// itself with exponent 1. As in addOperand, x is substituted for its
// merge-table root only when that root is a constant.
func (b *Builder) addFactorOperand(buf *ppBuf, x vartable.VarID) {
	x = b.rootIfConst(x)
	if d, ok := b.vt.Get(x).Def.(vartable.DefPProd); ok {
		for _, f := range d.Factors {
			buf.addFactor(f.Var, f.Exp)
		}
		return
	}
	buf.addFactor(x, 1)
}

// buildProduct drains the power-product buffer, applying map_product's
// collapse rule: a single factor of exponent 1 is that variable itself,
// otherwise a fresh (hash-consed) power product.
func (b *Builder) buildProduct(bits uint32, buf *ppBuf) vartable.VarID {
	sort.Slice(buf.order, func(i, j int) bool { return buf.order[i] < buf.order[j] })
	factors := make([]vartable.Factor, len(buf.order))
	for i, v := range buf.order {
		factors[i] = vartable.Factor{Var: v, Exp: buf.exps[v]}
	}
	if len(factors) == 1 && factors[0].Exp == 1 {
		return factors[0].Var
	}
	return b.vt.NewPProd(bits, vartable.DefPProd{Factors: factors})
}
