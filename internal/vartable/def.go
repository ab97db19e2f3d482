package vartable

import (
	"bvcore/internal/bvnum"
	"bvcore/internal/lit"
)

// Def is the tagged union of a variable's definition. VAR carries no def
// payload beyond DefVar{}; every other kind's def is one of the structs
// below. Poly/PProd terms are expected to already be in canonical sorted
// order (ascending by Var, zero coefficients and duplicate variables
// eliminated) — the simplify package's scratch buffers are responsible for
// building them that way before handing them to the table's constructors.
type Def interface {
	isDef()
}

// DefVar marks an uninterpreted variable with no internal structure.
type DefVar struct{}

func (DefVar) isDef() {}

// DefConst64 holds a normalized constant for widths up to 64 bits.
type DefConst64 struct {
	Value uint64
}

func (DefConst64) isDef() {}

// DefConst holds a normalized constant for widths above 64 bits. Value is
// never mutated after construction.
type DefConst struct {
	Value bvnum.Value
}

func (DefConst) isDef() {}

// Mono64 is one term of a Poly64 sum: Coeff * Var, Coeff != 0, Var != 0.
type Mono64 struct {
	Var   VarID
	Coeff uint64
}

// DefPoly64 is Const + sum(Terms), widths up to 64 bits.
type DefPoly64 struct {
	Const uint64
	Terms []Mono64
}

func (DefPoly64) isDef() {}

// Mono is one term of a Poly sum for widths above 64 bits.
type Mono struct {
	Var   VarID
	Coeff bvnum.Value
}

// DefPoly is Const + sum(Terms), widths above 64 bits.
type DefPoly struct {
	Const bvnum.Value
	Terms []Mono
}

func (DefPoly) isDef() {}

// Factor is one factor of a power product: Var^Exp, Exp >= 1.
type Factor struct {
	Var VarID
	Exp uint32
}

// DefPProd is a power product prod(Factors), used as the "variable" side
// of a monomial whenever a term is a product of two or more factors (a
// bare single-variable monomial uses the variable id directly instead).
type DefPProd struct {
	Factors []Factor
}

func (DefPProd) isDef() {}

// DefBitArray is an explicit array of Boolean literals, one per bit,
// ordered from bit 0 (LSB) to bit N-1.
type DefBitArray struct {
	Bits []lit.Lit
}

func (DefBitArray) isDef() {}

// DefITE is if Cond then Then else Else, Then/Else same width as the
// owning variable.
type DefITE struct {
	Cond lit.Lit
	Then VarID
	Else VarID
}

func (DefITE) isDef() {}

// DefBinOp is the operand pair of one of the eleven binary operator kinds;
// which operator applies is recorded on the owning Var's Kind field.
type DefBinOp struct {
	Left  VarID
	Right VarID
}

func (DefBinOp) isDef() {}
