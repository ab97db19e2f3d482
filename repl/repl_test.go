// SPDX-License-Identifier: Apache-2.0
package repl_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"bvcore/repl"
)

func TestStartEvaluatesFormsAcrossLines(t *testing.T) {
	in := strings.NewReader("(decl x 8)\n(decl y 8)\n(check-uge x x)\n")
	var out bytes.Buffer

	repl.Start(in, &out)

	output := out.String()
	assert.Contains(t, output, "uge -> true")
}

func TestStartReportsUnsat(t *testing.T) {
	in := strings.NewReader("(decl x 8)\n(assert-not (eq x x))\n")
	var out bytes.Buffer

	repl.Start(in, &out)

	assert.Contains(t, out.String(), "unsat")
}

func TestStartReportsStaticContradictionWarning(t *testing.T) {
	in := strings.NewReader("(decl-const a 8 5)\n(decl-const b 8 6)\n(assert (eq a b))\n")
	var out bytes.Buffer

	repl.Start(in, &out)

	assert.Contains(t, out.String(), "warning:")
}

func TestStartSkipsBlankLines(t *testing.T) {
	in := strings.NewReader("\n\n(decl x 8)\n")
	var out bytes.Buffer

	repl.Start(in, &out)

	assert.NotContains(t, out.String(), "error:")
}
