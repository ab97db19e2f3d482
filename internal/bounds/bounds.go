// Package bounds implements the engine's component F: cheap, purely
// structural lower/upper bound estimates on a variable's value, and the
// three-valued CheckUGE/CheckSGE tests built from them. These are sound
// approximations, not exact ranges — a compound term with no bit-array or
// constant definition has no sharper bound than "anything representable
// at its width", per bvvar_upper_bound_unsigned64's default case.
package bounds

import (
	"math/big"

	"bvcore/internal/bvnum"
	"bvcore/internal/lit"
	"bvcore/internal/vartable"
)

// Result is the three-valued outcome of a decisiveness test.
type Result uint8

const (
	Unknown Result = iota
	True
	False
)

func (r Result) String() string {
	switch r {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unknown"
	}
}

func bitArrayUpperUnsigned(bits []lit.Lit) bvnum.Value {
	n := uint32(len(bits))
	c := allOnesBig(n)
	for i, b := range bits {
		if b == lit.False {
			c.SetBit(c, i, 0)
		}
	}
	return bvnum.FromBigInt(n, c)
}

func bitArrayLowerUnsigned(bits []lit.Lit) bvnum.Value {
	n := uint32(len(bits))
	c := new(big.Int)
	for i, b := range bits {
		if b == lit.True {
			c.SetBit(c, i, 1)
		}
	}
	return bvnum.FromBigInt(n, c)
}

func bitArrayUpperSigned(bits []lit.Lit) bvnum.Value {
	n := uint32(len(bits))
	c := allOnesBig(n)
	for i := 0; i < len(bits)-1; i++ {
		if bits[i] == lit.False {
			c.SetBit(c, i, 0)
		}
	}
	if bits[len(bits)-1] != lit.True { // sign bit may be 0
		c.SetBit(c, len(bits)-1, 0)
	}
	return bvnum.FromBigInt(n, c)
}

func bitArrayLowerSigned(bits []lit.Lit) bvnum.Value {
	n := uint32(len(bits))
	c := new(big.Int)
	for i := 0; i < len(bits)-1; i++ {
		if bits[i] == lit.True {
			c.SetBit(c, i, 1)
		}
	}
	if bits[len(bits)-1] != lit.False { // sign bit may be 1
		c.SetBit(c, len(bits)-1, 1)
	}
	return bvnum.FromBigInt(n, c)
}

func allOnesBig(n uint32) *big.Int {
	c := new(big.Int).Lsh(big.NewInt(1), uint(n))
	return c.Sub(c, big.NewInt(1))
}

func constValue(v *vartable.Var) (bvnum.Value, bool) {
	switch d := v.Def.(type) {
	case vartable.DefConst64:
		return bvnum.FromUint64(v.Bits, d.Value), true
	case vartable.DefConst:
		return d.Value, true
	default:
		return bvnum.Value{}, false
	}
}

// UpperBoundUnsigned returns the greatest value x could take, treating
// anything other than a constant or a bit array as unconstrained.
func UpperBoundUnsigned(vt *vartable.Table, x vartable.VarID) bvnum.Value {
	v := vt.Get(x)
	if c, ok := constValue(v); ok {
		return c
	}
	if d, ok := v.Def.(vartable.DefBitArray); ok {
		return bitArrayUpperUnsigned(d.Bits)
	}
	return bvnum.AllOnes(v.Bits)
}

// LowerBoundUnsigned is UpperBoundUnsigned's dual.
func LowerBoundUnsigned(vt *vartable.Table, x vartable.VarID) bvnum.Value {
	v := vt.Get(x)
	if c, ok := constValue(v); ok {
		return c
	}
	if d, ok := v.Def.(vartable.DefBitArray); ok {
		return bitArrayLowerUnsigned(d.Bits)
	}
	return bvnum.Zero(v.Bits)
}

// UpperBoundSigned returns the greatest signed value x could take.
func UpperBoundSigned(vt *vartable.Table, x vartable.VarID) bvnum.Value {
	v := vt.Get(x)
	if c, ok := constValue(v); ok {
		return c
	}
	if d, ok := v.Def.(vartable.DefBitArray); ok {
		return bitArrayUpperSigned(d.Bits)
	}
	return bvnum.MaxSigned(v.Bits)
}

// LowerBoundSigned is UpperBoundSigned's dual.
func LowerBoundSigned(vt *vartable.Table, x vartable.VarID) bvnum.Value {
	v := vt.Get(x)
	if c, ok := constValue(v); ok {
		return c
	}
	if d, ok := v.Def.(vartable.DefBitArray); ok {
		return bitArrayLowerSigned(d.Bits)
	}
	return bvnum.MinSigned(v.Bits)
}

func signedCompareValue(v bvnum.Value) *big.Int {
	// bvnum.Value doesn't export its signed interpretation; bounds already
	// works with the unsigned bit pattern so it reinterprets the same way
	// bvnum.signed does, inline, to avoid exporting an internal helper
	// purely for this one caller.
	z := v.Wide()
	if z == nil {
		z = new(big.Int).SetUint64(v.Small())
	} else {
		z = new(big.Int).Set(z)
	}
	top := new(big.Int).Lsh(big.NewInt(1), uint(v.Bits-1))
	if z.Cmp(top) >= 0 {
		z.Sub(z, new(big.Int).Lsh(big.NewInt(1), uint(v.Bits)))
	}
	return z
}

// CheckUGE decides whether x >= y (unsigned) is statically known, given x
// and y are both merge-table roots of the same bit width. x and y being
// the same variable short-circuits to True, matching yices2's check_bvuge.
func CheckUGE(vt *vartable.Table, x, y vartable.VarID) Result {
	if x == y {
		return True
	}
	a := LowerBoundUnsigned(vt, x) // x >= a
	b := UpperBoundUnsigned(vt, y) // b >= y
	if !bvnum.Ult(a, b) {          // a >= b
		return True
	}
	a = UpperBoundUnsigned(vt, x) // x <= a
	b = LowerBoundUnsigned(vt, y) // b <= y
	if bvnum.Ult(a, b) {          // a < b
		return False
	}
	return Unknown
}

// CheckSGE is CheckUGE's signed counterpart, matching check_bvsge.
func CheckSGE(vt *vartable.Table, x, y vartable.VarID) Result {
	if x == y {
		return True
	}
	a := signedCompareValue(LowerBoundSigned(vt, x)) // x >= a
	b := signedCompareValue(UpperBoundSigned(vt, y)) // b >= y
	if a.Cmp(b) >= 0 {
		return True
	}
	a = signedCompareValue(UpperBoundSigned(vt, x)) // x <= a
	b = signedCompareValue(LowerBoundSigned(vt, y)) // b <= y
	if b.Cmp(a) > 0 {
		return False
	}
	return Unknown
}
