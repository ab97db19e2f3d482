package facade_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bvcore/internal/facade"
	"bvcore/internal/lit"
	"bvcore/internal/mergetable"
	"bvcore/internal/vartable"
)

func TestSATAssertUnitRecordsLiteral(t *testing.T) {
	s := facade.NewSAT()
	l := s.NewLit()
	s.AssertUnit(l)
	assert.Equal(t, []lit.Lit{l}, s.Units())
	assert.False(t, s.Unsat())
}

func TestSATAssertEmptyMarksUnsat(t *testing.T) {
	s := facade.NewSAT()
	assert.False(t, s.Unsat())
	s.AssertEmpty()
	assert.True(t, s.Unsat())
}

func TestSATAssertUnitFalseIsEmptyClause(t *testing.T) {
	s := facade.NewSAT()
	s.AssertUnit(lit.False)
	assert.True(t, s.Unsat())
}

func TestSATAssertUnitTrueIsNoop(t *testing.T) {
	s := facade.NewSAT()
	s.AssertUnit(lit.True)
	assert.False(t, s.Unsat())
	assert.Empty(t, s.Units())
}

func TestSATNewVarIsMonotonic(t *testing.T) {
	s := facade.NewSAT()
	a := s.NewVar()
	b := s.NewVar()
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, s.NumVars())
}

func TestEGraphAttachAndQuery(t *testing.T) {
	vt := vartable.New()
	x := vt.NewVar(8)
	g := facade.NewEGraph(vt)
	assert.Equal(t, vartable.NoETerm, g.TermOf(x))
	g.Attach(x, 7)
	assert.Equal(t, vartable.ETermID(7), g.TermOf(x))
}

func TestEGraphTruncateClearsStaleAttachments(t *testing.T) {
	vt := vartable.New()
	x := vt.NewVar(8)
	y := vt.NewVar(8)
	g := facade.NewEGraph(vt)
	g.Attach(x, 3)
	g.Attach(y, 10)
	g.TruncateTerms(5)
	assert.Equal(t, vartable.ETermID(3), g.TermOf(x))
	assert.Equal(t, vartable.NoETerm, g.TermOf(y))
}

func TestRemapAllocatesPseudoLitsLazily(t *testing.T) {
	vt := vartable.New()
	mt := mergetable.New()
	sat := facade.NewSAT()
	r := facade.NewRemap(vt, mt, sat)

	x := vt.NewVar(4)
	require.False(t, vt.HasPseudoLits(x))
	first := r.PseudoLits(x)
	require.True(t, vt.HasPseudoLits(x))
	assert.Len(t, first, 4)
}

func TestRemapBitBindingIsStable(t *testing.T) {
	vt := vartable.New()
	mt := mergetable.New()
	sat := facade.NewSAT()
	r := facade.NewRemap(vt, mt, sat)

	x := vt.NewVar(4)
	l1 := r.Bit(x, 2)
	l2 := r.Bit(x, 2)
	assert.Equal(t, l1, l2)
}

func TestRemapBitFollowsMergeRoot(t *testing.T) {
	vt := vartable.New()
	mt := mergetable.New()
	sat := facade.NewSAT()
	r := facade.NewRemap(vt, mt, sat)

	x := vt.NewVar(4)
	y := vt.NewVar(4)
	mt.Merge(x, y)

	lx := r.Bit(x, 0)
	ly := r.Bit(y, 0)
	assert.Equal(t, lx, ly)
}

func TestBitBlasterLazyActivation(t *testing.T) {
	bb := facade.NewBitBlaster()
	assert.False(t, bb.Active())
	assert.True(t, bb.Ensure())
	assert.True(t, bb.Active())
	assert.False(t, bb.Ensure())
	bb.Teardown()
	assert.False(t, bb.Active())
}
