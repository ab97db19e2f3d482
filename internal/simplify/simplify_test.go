package simplify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bvcore/internal/lit"
	"bvcore/internal/mergetable"
	"bvcore/internal/simplify"
	"bvcore/internal/vartable"
)

func newBuilder() (*simplify.Builder, *vartable.Table) {
	vt := vartable.New()
	mt := mergetable.New()
	return simplify.NewBuilder(vt, mt), vt
}

func TestAddFoldsTwoConstants(t *testing.T) {
	b, vt := newBuilder()
	a := vt.NewConst64(8, 3)
	c := vt.NewConst64(8, 4)
	sum := b.Add(8, a, c)
	require.Equal(t, vartable.KindConst64, vt.Get(sum).Kind)
	assert.Equal(t, uint64(7), vt.Get(sum).Def.(vartable.DefConst64).Value)
}

func TestAddOfZeroCollapsesToOtherOperand(t *testing.T) {
	b, vt := newBuilder()
	x := vt.NewVar(8)
	zero := vt.NewConst64(8, 0)
	sum := b.Add(8, x, zero)
	assert.Equal(t, x, sum)
}

func TestSubSelfIsZero(t *testing.T) {
	b, vt := newBuilder()
	x := vt.NewVar(8)
	diff := b.Sub(8, x, x)
	require.Equal(t, vartable.KindConst64, vt.Get(diff).Kind)
	assert.True(t, vt.Get(diff).Def.(vartable.DefConst64).Value == 0)
}

func TestAddIsCommutativeUpToHashConsing(t *testing.T) {
	b, vt := newBuilder()
	x := vt.NewVar(8)
	y := vt.NewVar(8)
	s1 := b.Add(8, x, y)
	s2 := b.Add(8, y, x)
	assert.Equal(t, s1, s2)
}

func TestMulByConstantScalesPolynomial(t *testing.T) {
	b, vt := newBuilder()
	x := vt.NewVar(8)
	two := vt.NewConst64(8, 2)
	p := b.Mul(8, x, two)
	require.Equal(t, vartable.KindPoly64, vt.Get(p).Kind)
	def := vt.Get(p).Def.(vartable.DefPoly64)
	require.Len(t, def.Terms, 1)
	assert.Equal(t, uint64(2), def.Terms[0].Coeff)
}

func TestMulOfTwoVariablesBuildsPowerProduct(t *testing.T) {
	b, vt := newBuilder()
	x := vt.NewVar(8)
	y := vt.NewVar(8)
	p := b.Mul(8, x, y)
	require.Equal(t, vartable.KindPProd, vt.Get(p).Kind)
	def := vt.Get(p).Def.(vartable.DefPProd)
	assert.Len(t, def.Factors, 2)
}

func TestMulSameVariableMergesExponent(t *testing.T) {
	b, vt := newBuilder()
	x := vt.NewVar(8)
	square := b.Mul(8, x, x)
	require.Equal(t, vartable.KindPProd, vt.Get(square).Kind)
	def := vt.Get(square).Def.(vartable.DefPProd)
	require.Len(t, def.Factors, 1)
	assert.Equal(t, uint32(2), def.Factors[0].Exp)
}

func TestAddOperandKeepsOriginalIdentityWhenRootIsNotConstant(t *testing.T) {
	vt := vartable.New()
	mt := mergetable.New()
	b := simplify.NewBuilder(vt, mt)

	x := vt.NewVar(8)
	z := vt.NewVar(8)
	y := vt.NewVar(8)
	mt.Merge(z, x) // x's root becomes z, itself a non-constant variable

	p := b.Add(8, x, y)
	require.Equal(t, vartable.KindPoly64, vt.Get(p).Kind)
	def := vt.Get(p).Def.(vartable.DefPoly64)

	vars := make([]vartable.VarID, len(def.Terms))
	for i, m := range def.Terms {
		vars[i] = m.Var
	}
	assert.Contains(t, vars, x)
	assert.NotContains(t, vars, z)
}

func TestMulScaleByConstantKeepsOriginalIdentityOfPolyOperand(t *testing.T) {
	vt := vartable.New()
	mt := mergetable.New()
	b := simplify.NewBuilder(vt, mt)

	x := vt.NewVar(8)
	z := vt.NewVar(8)
	two := vt.NewConst64(8, 2)
	mt.Merge(z, x)

	p := b.Mul(8, x, two)
	require.Equal(t, vartable.KindPoly64, vt.Get(p).Kind)
	def := vt.Get(p).Def.(vartable.DefPoly64)
	require.Len(t, def.Terms, 1)
	assert.Equal(t, x, def.Terms[0].Var)
}

func TestAndWithZeroIsZero(t *testing.T) {
	b, vt := newBuilder()
	x := vt.NewVar(8)
	zero := vt.NewConst64(8, 0)
	r := b.And(8, x, zero)
	assert.Equal(t, zero, r)
}

func TestOrWithAllOnesIsAllOnes(t *testing.T) {
	b, vt := newBuilder()
	x := vt.NewVar(8)
	allOnes := vt.NewConst64(8, 0xff)
	r := b.Or(8, x, allOnes)
	assert.Equal(t, allOnes, r)
}

func TestXorSelfIsZero(t *testing.T) {
	b, vt := newBuilder()
	x := vt.NewVar(8)
	r := b.Xor(8, x, x)
	require.Equal(t, vartable.KindConst64, vt.Get(r).Kind)
	assert.Equal(t, uint64(0), vt.Get(r).Def.(vartable.DefConst64).Value)
}

func TestNotIsInvolutive(t *testing.T) {
	b, vt := newBuilder()
	x := vt.NewVar(8)
	nx := b.Not(8, x)
	nnx := b.Not(8, nx)
	assert.Equal(t, x, nnx)
}

func TestUdivConstantFolding(t *testing.T) {
	b, vt := newBuilder()
	ten := vt.NewConst64(8, 10)
	three := vt.NewConst64(8, 3)
	q := b.Udiv(8, ten, three)
	require.Equal(t, vartable.KindConst64, vt.Get(q).Kind)
	assert.Equal(t, uint64(3), vt.Get(q).Def.(vartable.DefConst64).Value)
}

func TestUdivByZeroFoldsToAllOnes(t *testing.T) {
	b, vt := newBuilder()
	ten := vt.NewConst64(8, 10)
	zero := vt.NewConst64(8, 0)
	q := b.Udiv(8, ten, zero)
	require.Equal(t, vartable.KindConst64, vt.Get(q).Kind)
	assert.Equal(t, uint64(0xff), vt.Get(q).Def.(vartable.DefConst64).Value)
}

func TestUdivOfVariablesHashConses(t *testing.T) {
	b, vt := newBuilder()
	x := vt.NewVar(8)
	y := vt.NewVar(8)
	q1 := b.Udiv(8, x, y)
	q2 := b.Udiv(8, x, y)
	assert.Equal(t, q1, q2)
	assert.Equal(t, vartable.KindUdiv, vt.Get(q1).Kind)
}

func TestIteNegatedConditionNormalizes(t *testing.T) {
	b, vt := newBuilder()
	c := lit.Of(1)
	x := vt.NewVar(8)
	y := vt.NewVar(8)
	positive := b.Ite(8, c, x, y)
	negated := b.Ite(8, c.Negate(), y, x)
	assert.Equal(t, positive, negated)
}

func TestIteTrueConditionCollapsesToThen(t *testing.T) {
	b, vt := newBuilder()
	x := vt.NewVar(8)
	y := vt.NewVar(8)
	r := b.Ite(8, lit.True, x, y)
	assert.Equal(t, x, r)
}

func TestIteEqualBranchesCollapse(t *testing.T) {
	b, vt := newBuilder()
	c := lit.Of(1)
	x := vt.NewVar(8)
	r := b.Ite(8, c, x, x)
	assert.Equal(t, x, r)
}

func TestBitArrayAllConstantCollapsesToConst64(t *testing.T) {
	b, vt := newBuilder()
	// bit0=1 (True literal), bit1=0 (False literal), bit2=1 (True literal) -> 0b101 = 5
	r := b.BitArray([]lit.Lit{lit.True, lit.False, lit.True})
	require.Equal(t, vartable.KindConst64, vt.Get(r).Kind)
	assert.Equal(t, uint64(5), vt.Get(r).Def.(vartable.DefConst64).Value)
}

func TestBitArrayWithFreeLiteralStaysBitArray(t *testing.T) {
	b, vt := newBuilder()
	r := b.BitArray([]lit.Lit{lit.Of(1), lit.True})
	assert.Equal(t, vartable.KindBitArray, vt.Get(r).Kind)
}

func TestShlConstantFolding(t *testing.T) {
	b, vt := newBuilder()
	x := vt.NewConst64(8, 0b0001)
	two := vt.NewConst64(8, 2)
	r := b.Shl(8, x, two)
	require.Equal(t, vartable.KindConst64, vt.Get(r).Kind)
	assert.Equal(t, uint64(0b0100), vt.Get(r).Def.(vartable.DefConst64).Value)
}

func TestShlOfZeroAbsorbsSymbolicShiftAmount(t *testing.T) {
	b, vt := newBuilder()
	zero := vt.NewConst64(8, 0)
	y := vt.NewVar(8)
	r := b.Shl(8, zero, y)
	assert.Equal(t, zero, r)
}

func TestLshrOfZeroAbsorbsSymbolicShiftAmount(t *testing.T) {
	b, vt := newBuilder()
	zero := vt.NewConst64(8, 0)
	y := vt.NewVar(8)
	r := b.Lshr(8, zero, y)
	assert.Equal(t, zero, r)
}

func TestAshrOfZeroAbsorbsSymbolicShiftAmount(t *testing.T) {
	b, vt := newBuilder()
	zero := vt.NewConst64(8, 0)
	y := vt.NewVar(8)
	r := b.Ashr(8, zero, y)
	assert.Equal(t, zero, r)
}

func TestAshrOfAllOnesAbsorbsSymbolicShiftAmount(t *testing.T) {
	b, vt := newBuilder()
	allOnes := vt.NewConst64(8, 0xFF)
	y := vt.NewVar(8)
	r := b.Ashr(8, allOnes, y)
	assert.Equal(t, allOnes, r)
}

func TestShlOfVariablesHashConses(t *testing.T) {
	b, vt := newBuilder()
	x := vt.NewVar(8)
	y := vt.NewVar(8)
	r1 := b.Shl(8, x, y)
	r2 := b.Shl(8, x, y)
	assert.Equal(t, r1, r2)
	assert.Equal(t, vartable.KindShl, vt.Get(r1).Kind)
}
