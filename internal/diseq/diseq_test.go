package diseq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bvcore/internal/diseq"
	"bvcore/internal/lit"
	"bvcore/internal/vartable"
)

func TestDistinctConstantsAreDisequal(t *testing.T) {
	vt := vartable.New()
	a := vt.NewConst64(8, 3)
	b := vt.NewConst64(8, 4)
	assert.True(t, diseq.Disequal(vt, a, b))
}

func TestSameVariableIsNeverDisequal(t *testing.T) {
	vt := vartable.New()
	x := vt.NewVar(8)
	assert.False(t, diseq.Disequal(vt, x, x))
}

func TestOpposingBitArraysAreDisequal(t *testing.T) {
	vt := vartable.New()
	a := vt.NewBitArray([]lit.Lit{lit.True, lit.Of(1)})
	b := vt.NewBitArray([]lit.Lit{lit.False, lit.Of(1)})
	assert.True(t, diseq.Disequal(vt, a, b))
}

func TestNonOpposingBitArraysAreUnknown(t *testing.T) {
	vt := vartable.New()
	a := vt.NewBitArray([]lit.Lit{lit.Of(1), lit.Of(2)})
	b := vt.NewBitArray([]lit.Lit{lit.Of(1), lit.Of(3)})
	assert.False(t, diseq.Disequal(vt, a, b))
}

func TestBitArrayVsConst64(t *testing.T) {
	vt := vartable.New()
	// bit0 is forced true (literal True), constant's bit0 is 0: disequal.
	ba := vt.NewBitArray([]lit.Lit{lit.True, lit.Of(5)})
	c := vt.NewConst64(2, 0)
	assert.True(t, diseq.Disequal(vt, ba, c))
	assert.True(t, diseq.Disequal(vt, c, ba))
}

func TestUnrelatedKindsAreUnknown(t *testing.T) {
	vt := vartable.New()
	x := vt.NewVar(8)
	y := vt.NewVar(8)
	assert.False(t, diseq.Disequal(vt, x, y))
}
