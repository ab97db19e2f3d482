package vartable

import "bvcore/internal/lit"

// NewConst64 returns the (unique) variable for the given normalized
// constant value at widths up to 64 bits.
func (t *Table) NewConst64(bits uint32, value uint64) VarID {
	key := const64Key{t: t, bits: bits, value: value}
	return VarID(t.intern.Intern(key, func() uint32 {
		return uint32(t.alloc(bits, KindConst64, DefConst64{Value: value}))
	}))
}

// NewConst returns the (unique) variable for the given normalized constant
// value at widths above 64 bits.
func (t *Table) NewConst(def DefConst) VarID {
	key := constKey{t: t, bits: def.Value.Bits, value: def.Value}
	return VarID(t.intern.Intern(key, func() uint32 {
		return uint32(t.alloc(def.Value.Bits, KindConst, def))
	}))
}

// NewPoly64 returns the (unique) variable for a width<=64 linear
// combination. def.Terms must already be in canonical order (ascending by
// Var, no zero coefficients, no duplicate variables) — callers build that
// invariant via the simplify package's polynomial buffer before reaching
// here.
func (t *Table) NewPoly64(bits uint32, def DefPoly64) VarID {
	key := poly64Key{t: t, bits: bits, def: def}
	return VarID(t.intern.Intern(key, func() uint32 {
		return uint32(t.alloc(bits, KindPoly64, def))
	}))
}

// NewPoly is NewPoly64's counterpart for widths above 64 bits.
func (t *Table) NewPoly(bits uint32, def DefPoly) VarID {
	key := polyKey{t: t, bits: bits, def: def}
	return VarID(t.intern.Intern(key, func() uint32 {
		return uint32(t.alloc(bits, KindPoly, def))
	}))
}

// NewPProd returns the (unique) variable for a power product. def.Factors
// must already be canonically sorted ascending by Var with Exp >= 1.
func (t *Table) NewPProd(bits uint32, def DefPProd) VarID {
	key := pprodKey{t: t, def: def}
	return VarID(t.intern.Intern(key, func() uint32 {
		return uint32(t.alloc(bits, KindPProd, def))
	}))
}

// NewBitArray returns the (unique) variable for an explicit array of
// per-bit literals.
func (t *Table) NewBitArray(bits []lit.Lit) VarID {
	key := bitArrayKey{t: t, bits: uint32(len(bits)), seq: bits}
	return VarID(t.intern.Intern(key, func() uint32 {
		cp := append([]lit.Lit(nil), bits...)
		return uint32(t.alloc(uint32(len(bits)), KindBitArray, DefBitArray{Bits: cp}))
	}))
}

// NewITE returns the (unique) variable for if cond then thenVar else
// elseVar. thenVar and elseVar must share the same width.
func (t *Table) NewITE(bits uint32, cond lit.Lit, thenVar, elseVar VarID) VarID {
	def := DefITE{Cond: cond, Then: thenVar, Else: elseVar}
	key := iteKey{t: t, bits: bits, def: def}
	return VarID(t.intern.Intern(key, func() uint32 {
		return uint32(t.alloc(bits, KindITE, def))
	}))
}

// NewBinOp returns the (unique) variable for one of the eleven binary
// operator kinds applied to (left, right). kind must satisfy
// kind.IsBinOp().
func (t *Table) NewBinOp(bits uint32, kind Kind, left, right VarID) VarID {
	if !kind.IsBinOp() {
		panic("vartable: NewBinOp called with a non-binop kind")
	}
	def := DefBinOp{Left: left, Right: right}
	key := binOpKey{t: t, bits: bits, kind: kind, def: def}
	return VarID(t.intern.Intern(key, func() uint32 {
		return uint32(t.alloc(bits, kind, def))
	}))
}
