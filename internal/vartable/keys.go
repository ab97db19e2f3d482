package vartable

import (
	"bvcore/internal/bvnum"
	"bvcore/internal/intern"
	"bvcore/internal/lit"
)

// Every key type below is constructed on the stack at the call site of the
// matching constructor (and again, transiently, by hashOf when a variable
// is popped) — none of them are held as package-level values between
// lookups, per the design notes' ban on singleton hash objects. Each key
// carries a back-reference to the owning table so Equal can dereference a
// candidate id without the intern package itself knowing about vartable.

type const64Key struct {
	t     *Table
	bits  uint32
	value uint64
}

func (k const64Key) Hash() uint64 {
	return intern.Mix(intern.MixU32(0x1, k.bits), k.value)
}

func (k const64Key) Equal(id uint32) bool {
	v := k.t.vars[id]
	d, ok := v.Def.(DefConst64)
	return ok && v.Bits == k.bits && d.Value == k.value
}

func bigHash(tag uint64, v bvnum.Value) uint64 {
	h := tag
	for _, b := range v.Wide().Bytes() {
		h = intern.MixU32(h, uint32(b))
	}
	return h
}

type constKey struct {
	t     *Table
	bits  uint32
	value bvnum.Value
}

func (k constKey) Hash() uint64 {
	return bigHash(intern.MixU32(0x2, k.bits), k.value)
}

func (k constKey) Equal(id uint32) bool {
	v := k.t.vars[id]
	d, ok := v.Def.(DefConst)
	return ok && v.Bits == k.bits && d.Value.Equal(k.value)
}

type poly64Key struct {
	t    *Table
	bits uint32
	def  DefPoly64
}

func (k poly64Key) Hash() uint64 {
	h := intern.MixU32(0x3, k.bits)
	h = intern.Mix(h, k.def.Const)
	for _, m := range k.def.Terms {
		h = intern.MixU32(h, uint32(m.Var))
		h = intern.Mix(h, m.Coeff)
	}
	return h
}

func (k poly64Key) Equal(id uint32) bool {
	v := k.t.vars[id]
	d, ok := v.Def.(DefPoly64)
	if !ok || v.Bits != k.bits || d.Const != k.def.Const || len(d.Terms) != len(k.def.Terms) {
		return false
	}
	for i, m := range k.def.Terms {
		if d.Terms[i] != m {
			return false
		}
	}
	return true
}

type polyKey struct {
	t    *Table
	bits uint32
	def  DefPoly
}

func (k polyKey) Hash() uint64 {
	h := intern.MixU32(0x4, k.bits)
	h = bigHash(h, k.def.Const)
	for _, m := range k.def.Terms {
		h = intern.MixU32(h, uint32(m.Var))
		h = bigHash(h, m.Coeff)
	}
	return h
}

func (k polyKey) Equal(id uint32) bool {
	v := k.t.vars[id]
	d, ok := v.Def.(DefPoly)
	if !ok || v.Bits != k.bits || !d.Const.Equal(k.def.Const) || len(d.Terms) != len(k.def.Terms) {
		return false
	}
	for i, m := range k.def.Terms {
		if d.Terms[i].Var != m.Var || !d.Terms[i].Coeff.Equal(m.Coeff) {
			return false
		}
	}
	return true
}

type pprodKey struct {
	t   *Table
	def DefPProd
}

func (k pprodKey) Hash() uint64 {
	h := intern.MixU32(0x5, 0)
	for _, f := range k.def.Factors {
		h = intern.MixU32(h, uint32(f.Var))
		h = intern.MixU32(h, f.Exp)
	}
	return h
}

func (k pprodKey) Equal(id uint32) bool {
	v := k.t.vars[id]
	d, ok := v.Def.(DefPProd)
	if !ok || len(d.Factors) != len(k.def.Factors) {
		return false
	}
	for i, f := range k.def.Factors {
		if d.Factors[i] != f {
			return false
		}
	}
	return true
}

type bitArrayKey struct {
	t    *Table
	bits uint32
	seq  []lit.Lit
}

func (k bitArrayKey) Hash() uint64 {
	h := intern.MixU32(0x6, k.bits)
	for _, b := range k.seq {
		h = intern.Mix(h, uint64(uint32(b)))
	}
	return h
}

func (k bitArrayKey) Equal(id uint32) bool {
	v := k.t.vars[id]
	d, ok := v.Def.(DefBitArray)
	if !ok || v.Bits != k.bits || len(d.Bits) != len(k.seq) {
		return false
	}
	for i, b := range k.seq {
		if d.Bits[i] != b {
			return false
		}
	}
	return true
}

type iteKey struct {
	t    *Table
	bits uint32
	def  DefITE
}

func (k iteKey) Hash() uint64 {
	h := intern.MixU32(0x7, k.bits)
	h = intern.Mix(h, uint64(uint32(k.def.Cond)))
	h = intern.MixU32(h, uint32(k.def.Then))
	return intern.MixU32(h, uint32(k.def.Else))
}

func (k iteKey) Equal(id uint32) bool {
	v := k.t.vars[id]
	d, ok := v.Def.(DefITE)
	return ok && v.Bits == k.bits && d == k.def
}

type binOpKey struct {
	t    *Table
	bits uint32
	kind Kind
	def  DefBinOp
}

func (k binOpKey) Hash() uint64 {
	h := intern.MixU32(0x8, k.bits)
	h = intern.MixU32(h, uint32(k.kind))
	h = intern.MixU32(h, uint32(k.def.Left))
	return intern.MixU32(h, uint32(k.def.Right))
}

func (k binOpKey) Equal(id uint32) bool {
	v := k.t.vars[id]
	d, ok := v.Def.(DefBinOp)
	return ok && v.Bits == k.bits && v.Kind == k.kind && d == k.def
}
