package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorReporterFormatsUndeclaredIdent(t *testing.T) {
	source := `(decl x 8)
(assert (eq x y))`

	reporter := NewErrorReporter("test.bv", source)

	err := UndeclaredIdent("y", Position{Line: 2, Column: 14})
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "error["+ErrorUndeclaredIdent+"]")
	assert.Contains(t, formatted, "undeclared identifier")
	assert.Contains(t, formatted, "y")
	assert.Contains(t, formatted, "test.bv:2:14")
	assert.Contains(t, formatted, "declare it first")
}

func TestUndeclaredIdentError(t *testing.T) {
	pos := Position{Line: 1, Column: 5}

	err := UndeclaredIdent("balance", pos)
	assert.Equal(t, ErrorUndeclaredIdent, err.Code)
	assert.Contains(t, err.Message, "balance")
	assert.Len(t, err.Suggestions, 1)
}

func TestRedeclaredIdentError(t *testing.T) {
	pos := Position{Line: 3, Column: 7}

	err := RedeclaredIdent("x", pos)
	assert.Equal(t, ErrorRedeclaredIdent, err.Code)
	assert.Contains(t, err.Message, "'x' is already declared")
}

func TestWidthMismatchError(t *testing.T) {
	pos := Position{Line: 1, Column: 5}

	err := WidthMismatch("add", 8, 16, pos)
	assert.Equal(t, ErrorWidthMismatch, err.Code)
	assert.Contains(t, err.Message, "got 8 and 16")
	assert.Len(t, err.Notes, 1)
}

func TestInvalidWidthError(t *testing.T) {
	pos := Position{Line: 1, Column: 5}

	err := InvalidWidth(0, 4096, pos)
	assert.Equal(t, ErrorInvalidWidth, err.Code)
	assert.Contains(t, err.Message, "width 0 is out of range")
}

func TestConstOutOfRangeError(t *testing.T) {
	pos := Position{Line: 1, Column: 5}

	err := ConstOutOfRange("300", 8, pos)
	assert.Equal(t, ErrorConstOutOfRange, err.Code)
	assert.Contains(t, err.Message, "300")
	assert.Contains(t, err.Message, "8 bits")
}

func TestUnbalancedPopError(t *testing.T) {
	pos := Position{Line: 4, Column: 1}

	err := UnbalancedPop(pos)
	assert.Equal(t, ErrorUnbalancedPop, err.Code)
	assert.Contains(t, err.Message, "no matching push")
}

func TestStaticContradictionWarningFormatting(t *testing.T) {
	source := `(assert-not (eq x x))`
	reporter := NewErrorReporter("test.bv", source)

	err := StaticContradiction("assert-not", Position{Line: 1, Column: 1})
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "warning["+WarningStaticContradiction+"]")
	assert.Contains(t, formatted, "constant folding")
	assert.True(t, IsWarning(err.Code))
}

func TestErrorMarkerCreation(t *testing.T) {
	source := `(decl variable 8)`
	reporter := NewErrorReporter("test.bv", source)

	marker := reporter.createMarker(7, 8, Error) // "variable" is 8 chars at column 7

	spaces := strings.Count(marker, " ")
	assert.Equal(t, 6, spaces) // column 7 means 6 spaces before
	carets := strings.Count(marker, "^")
	assert.Equal(t, 8, carets)
}

func TestErrorCategories(t *testing.T) {
	assert.Equal(t, "Parser", GetErrorCategory(ErrorParseFailure))
	assert.Equal(t, "Declaration", GetErrorCategory(ErrorUndeclaredIdent))
	assert.Equal(t, "Width", GetErrorCategory(ErrorWidthMismatch))
	assert.Equal(t, "Control Stack", GetErrorCategory(ErrorUnbalancedPop))
	assert.Equal(t, "Warning", GetErrorCategory(WarningStaticContradiction))
}

func TestErrorLevels(t *testing.T) {
	source := `test`
	reporter := NewErrorReporter("test.bv", source)
	pos := Position{Line: 1, Column: 1}

	errorErr := CompilerError{Level: Error, Message: "test error", Position: pos}
	warningErr := CompilerError{Level: Warning, Message: "test warning", Position: pos}

	errorFormatted := reporter.FormatError(errorErr)
	warningFormatted := reporter.FormatError(warningErr)

	assert.Contains(t, errorFormatted, "error:")
	assert.Contains(t, warningFormatted, "warning:")
}
