package vartable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bvcore/internal/lit"
	"bvcore/internal/vartable"
)

func TestNewVarAlwaysFresh(t *testing.T) {
	vt := vartable.New()
	a := vt.NewVar(8)
	b := vt.NewVar(8)
	assert.NotEqual(t, a, b, "VAR is never hash-consed")
}

func TestConst64Uniqueness(t *testing.T) {
	vt := vartable.New()
	a := vt.NewConst64(8, 5)
	b := vt.NewConst64(8, 5)
	c := vt.NewConst64(8, 6)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, vartable.KindConst64, vt.Get(a).Kind)
}

func TestBinOpUniquenessByKindAndOperands(t *testing.T) {
	vt := vartable.New()
	x := vt.NewVar(8)
	y := vt.NewVar(8)

	add1 := vt.NewBinOp(8, vartable.KindAnd, x, y)
	add2 := vt.NewBinOp(8, vartable.KindAnd, x, y)
	assert.Equal(t, add1, add2)

	// Same operands, different operator kind: distinct variables.
	or1 := vt.NewBinOp(8, vartable.KindOr, x, y)
	assert.NotEqual(t, add1, or1)

	// Operand order matters: AND(x,y) and AND(y,x) are distinct terms at
	// this layer (commutative normalization is simplify's job, not
	// vartable's).
	add3 := vt.NewBinOp(8, vartable.KindAnd, y, x)
	assert.NotEqual(t, add1, add3)
}

func TestNewBinOpRejectsNonBinOpKind(t *testing.T) {
	vt := vartable.New()
	x := vt.NewVar(8)
	assert.Panics(t, func() {
		vt.NewBinOp(8, vartable.KindVar, x, x)
	})
}

func TestBitArrayUniquenessAndCopyIsolation(t *testing.T) {
	vt := vartable.New()
	bits := []lit.Lit{lit.True, lit.False, lit.Of(3)}
	a := vt.NewBitArray(bits)
	b := vt.NewBitArray(append([]lit.Lit(nil), bits...))
	assert.Equal(t, a, b)

	// Mutating the caller's slice after construction must not affect the
	// interned definition.
	bits[0] = lit.False
	assert.Equal(t, lit.True, vt.Get(a).Def.(vartable.DefBitArray).Bits[0])
}

func TestITEUniqueness(t *testing.T) {
	vt := vartable.New()
	x := vt.NewVar(8)
	y := vt.NewVar(8)
	c := lit.Of(1)

	a := vt.NewITE(8, c, x, y)
	b := vt.NewITE(8, c, x, y)
	assert.Equal(t, a, b)

	d := vt.NewITE(8, c.Negate(), x, y)
	assert.NotEqual(t, a, d)
}

func TestPopRetractsInternEntries(t *testing.T) {
	vt := vartable.New()
	mark := vt.Len()
	x := vt.NewVar(8)
	y := vt.NewVar(8)
	first := vt.NewBinOp(8, vartable.KindXor, x, y)

	vt.Pop(mark)
	assert.Equal(t, mark, vt.Len())

	// Rebuilding identical operands after popping the originals must not
	// collide with a retracted entry from before the pop.
	x2 := vt.NewVar(8)
	y2 := vt.NewVar(8)
	second := vt.NewBinOp(8, vartable.KindXor, x2, y2)
	assert.Equal(t, first, second, "ids are reused deterministically after a pop to the same mark")
}

func TestPseudoLitsLazyAllocation(t *testing.T) {
	vt := vartable.New()
	x := vt.NewVar(4)
	require.False(t, vt.HasPseudoLits(x))

	calls := 0
	alloc := func(bits uint32) []lit.Lit {
		calls++
		out := make([]lit.Lit, bits)
		for i := range out {
			out[i] = lit.Of(lit.Var(i + 1))
		}
		return out
	}

	first := vt.PseudoLits(x, alloc)
	second := vt.PseudoLits(x, alloc)
	assert.Equal(t, 1, calls, "second call must reuse the already-allocated array")
	assert.Equal(t, first, second)
	assert.True(t, vt.HasPseudoLits(x))
}

func TestEtermAttachment(t *testing.T) {
	vt := vartable.New()
	x := vt.NewVar(8)
	assert.Equal(t, vartable.NoETerm, vt.EtermOf(x))

	vt.AttachEterm(x, 42)
	assert.Equal(t, vartable.ETermID(42), vt.EtermOf(x))
}
