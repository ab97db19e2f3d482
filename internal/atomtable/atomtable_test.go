package atomtable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bvcore/internal/atomtable"
	"bvcore/internal/lit"
	"bvcore/internal/vartable"
)

func freshLitCounter() func() lit.Lit {
	next := lit.Var(1)
	return func() lit.Lit {
		l := lit.Of(next)
		next++
		return l
	}
}

func TestEQNormalizesOperandOrder(t *testing.T) {
	at := atomtable.New()
	fresh := freshLitCounter()
	x, y := vartable.VarID(5), vartable.VarID(9)

	a := at.GetAtom(atomtable.KindEQ, x, y, fresh)
	b := at.GetAtom(atomtable.KindEQ, y, x, fresh)
	assert.Equal(t, a, b, "x=y and y=x must intern to the same EQ atom")
}

func TestUGEDoesNotNormalizeOrder(t *testing.T) {
	at := atomtable.New()
	fresh := freshLitCounter()
	x, y := vartable.VarID(5), vartable.VarID(9)

	a := at.GetAtom(atomtable.KindUGE, x, y, fresh)
	b := at.GetAtom(atomtable.KindUGE, y, x, fresh)
	assert.NotEqual(t, a, b, "x>=y and y>=x are distinct atoms")
}

func TestDistinctKindsGetDistinctAtoms(t *testing.T) {
	at := atomtable.New()
	fresh := freshLitCounter()
	x, y := vartable.VarID(1), vartable.VarID(2)

	eq := at.GetAtom(atomtable.KindEQ, x, y, fresh)
	uge := at.GetAtom(atomtable.KindUGE, x, y, fresh)
	sge := at.GetAtom(atomtable.KindSGE, x, y, fresh)
	assert.NotEqual(t, eq, uge)
	assert.NotEqual(t, uge, sge)
	assert.NotEqual(t, eq, sge)
}

func TestFindWithoutConstructing(t *testing.T) {
	at := atomtable.New()
	fresh := freshLitCounter()
	x, y := vartable.VarID(1), vartable.VarID(2)

	_, ok := at.Find(atomtable.KindEQ, x, y)
	assert.False(t, ok)

	id := at.GetAtom(atomtable.KindEQ, x, y, fresh)
	found, ok := at.Find(atomtable.KindEQ, x, y)
	assert.True(t, ok)
	assert.Equal(t, id, found)
}

func TestPopRetractsAtoms(t *testing.T) {
	at := atomtable.New()
	fresh := freshLitCounter()
	mark := at.Len()
	x, y := vartable.VarID(1), vartable.VarID(2)

	first := at.GetAtom(atomtable.KindEQ, x, y, fresh)
	at.Pop(mark)
	assert.Equal(t, mark, at.Len())

	second := at.GetAtom(atomtable.KindEQ, x, y, fresh)
	assert.Equal(t, first, second)
}
