package termlang_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bvcore/internal/termlang"
)

func TestProgramStringRoundTripsThroughParser(t *testing.T) {
	source := "(decl x 8)\n(decl-const y 8 5)\n(let z (add x y))\n(assert (eq z z))"

	program, err := termlang.ParseSource("roundtrip.bv", source)
	require.NoError(t, err)

	rendered := program.String()
	assert.Equal(t, source, rendered)

	reparsed, err := termlang.ParseSource("roundtrip.bv", rendered)
	require.NoError(t, err)
	assert.Equal(t, rendered, reparsed.String())
}
