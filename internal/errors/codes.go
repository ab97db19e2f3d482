package errors

// Error codes for the term-language front end and solver wiring.
//
// Error code ranges:
// B0001-B0099: Lexer/parser errors
// B1000-B1099: Declaration and scoping errors
// B1100-B1199: Width errors
// B1200-B1299: Control-stack errors (push/pop)
// B1800-B1899: Warning codes

const (
	// B0001: source failed to tokenize or parse.
	ErrorParseFailure = "B0001"

	// B1000: reference to an identifier with no declaration in scope.
	ErrorUndeclaredIdent = "B1000"

	// B1001: decl/decl-const/let naming an identifier already bound.
	ErrorRedeclaredIdent = "B1001"

	// B1100: operand widths disagree for an operator that requires them equal.
	ErrorWidthMismatch = "B1100"

	// B1101: declared width is zero or exceeds the supported maximum.
	ErrorInvalidWidth = "B1101"

	// B1102: decl-const's literal does not fit in the declared width.
	ErrorConstOutOfRange = "B1102"

	// B1200: pop with no matching push.
	ErrorUnbalancedPop = "B1200"

	// B1800: assert/assert-not proven contradictory by constant folding alone.
	WarningStaticContradiction = "B1800"
)

// GetErrorDescription returns a human-readable description of the error code.
func GetErrorDescription(code string) string {
	switch code {
	case ErrorParseFailure:
		return "Source could not be tokenized or parsed"
	case ErrorUndeclaredIdent:
		return "Identifier is used but has no declaration in scope"
	case ErrorRedeclaredIdent:
		return "Identifier is already bound in the current scope"
	case ErrorWidthMismatch:
		return "Operand bit widths do not match"
	case ErrorInvalidWidth:
		return "Declared bit width is zero or exceeds the supported maximum"
	case ErrorConstOutOfRange:
		return "Constant literal does not fit in the declared width"
	case ErrorUnbalancedPop:
		return "pop has no matching push"
	case WarningStaticContradiction:
		return "Assertion is contradictory by constant folding alone"
	default:
		return "Unknown error code"
	}
}

// IsWarning reports whether code denotes a warning rather than a hard error.
func IsWarning(code string) bool {
	return code >= "B1800" && code < "B1900"
}

// GetErrorCategory returns the human-readable category for an error code.
func GetErrorCategory(code string) string {
	switch {
	case code >= "B0001" && code < "B1000":
		return "Parser"
	case code >= "B1000" && code < "B1100":
		return "Declaration"
	case code >= "B1100" && code < "B1200":
		return "Width"
	case code >= "B1200" && code < "B1800":
		return "Control Stack"
	case code >= "B1800" && code < "B1900":
		return "Warning"
	default:
		return "Unknown"
	}
}
