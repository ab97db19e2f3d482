package trail_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bvcore/internal/trail"
)

func TestSaveAndTop(t *testing.T) {
	s := trail.New()
	s.Save(3, 1)
	s.Save(7, 4)
	assert.Equal(t, 2, s.Depth())
	assert.Equal(t, trail.Checkpoint{NVars: 7, NAtoms: 4}, s.Top())

	s.Discard()
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, trail.Checkpoint{NVars: 3, NAtoms: 1}, s.Top())
}

func TestTopOnEmptyPanics(t *testing.T) {
	s := trail.New()
	assert.Panics(t, func() { s.Top() })
}

func TestDiscardOnEmptyPanics(t *testing.T) {
	s := trail.New()
	assert.Panics(t, func() { s.Discard() })
}

func TestReset(t *testing.T) {
	s := trail.New()
	s.Save(1, 1)
	s.Save(2, 2)
	s.Reset()
	assert.Equal(t, 0, s.Depth())
}
