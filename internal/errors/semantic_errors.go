package errors

import "fmt"

// SemanticErrorBuilder provides a fluent interface for creating semantic errors with suggestions
type SemanticErrorBuilder struct {
	err CompilerError
}

// NewSemanticError creates a new semantic error builder
func NewSemanticError(code, message string, pos Position) *SemanticErrorBuilder {
	return &SemanticErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// NewSemanticWarning creates a new semantic warning builder
func NewSemanticWarning(code, message string, pos Position) *SemanticErrorBuilder {
	return &SemanticErrorBuilder{
		err: CompilerError{
			Level:    Warning,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span
func (b *SemanticErrorBuilder) WithLength(length int) *SemanticErrorBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *SemanticErrorBuilder) WithSuggestion(message string) *SemanticErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithNote adds a note to the error
func (b *SemanticErrorBuilder) WithNote(note string) *SemanticErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *SemanticErrorBuilder) WithHelp(help string) *SemanticErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error
func (b *SemanticErrorBuilder) Build() CompilerError {
	return b.err
}

// UndeclaredIdent creates an error for a reference to a name with no decl/let binding.
func UndeclaredIdent(name string, pos Position) CompilerError {
	return NewSemanticError(ErrorUndeclaredIdent, fmt.Sprintf("undeclared identifier '%s'", name), pos).
		WithLength(len(name)).
		WithSuggestion(fmt.Sprintf("declare it first with (decl %s <width>) or (decl-const %s <width> <value>)", name, name)).
		WithNote("names are bound by decl, decl-const, and let forms, in the order they appear").
		Build()
}

// RedeclaredIdent creates an error for a decl/decl-const/let that reuses a bound name.
func RedeclaredIdent(name string, pos Position) CompilerError {
	return NewSemanticError(ErrorRedeclaredIdent, fmt.Sprintf("'%s' is already declared", name), pos).
		WithLength(len(name)).
		WithSuggestion("choose a different name, or drop this redundant declaration").
		Build()
}

// WidthMismatch creates an error for an operator whose operands disagree in width.
func WidthMismatch(op string, left, right uint32, pos Position) CompilerError {
	return NewSemanticError(ErrorWidthMismatch,
		fmt.Sprintf("'%s' requires operands of equal width, got %d and %d", op, left, right), pos).
		WithNote("bit widths are fixed at declaration and never implicitly widened or truncated").
		Build()
}

// InvalidWidth creates an error for a declared width of zero or above the supported maximum.
func InvalidWidth(width uint32, max uint32, pos Position) CompilerError {
	return NewSemanticError(ErrorInvalidWidth,
		fmt.Sprintf("width %d is out of range (must be between 1 and %d)", width, max), pos).
		Build()
}

// ConstOutOfRange creates an error for a decl-const literal that overflows its declared width.
func ConstOutOfRange(literal string, width uint32, pos Position) CompilerError {
	return NewSemanticError(ErrorConstOutOfRange,
		fmt.Sprintf("literal %s does not fit in %d bits", literal, width), pos).
		Build()
}

// UnbalancedPop creates an error for a pop with no matching push.
func UnbalancedPop(pos Position) CompilerError {
	return NewSemanticError(ErrorUnbalancedPop, "pop has no matching push", pos).
		WithNote("push and pop must nest like parentheses").
		Build()
}

// StaticContradiction creates a warning for an assertion decided purely by constant folding.
func StaticContradiction(form string, pos Position) CompilerError {
	return NewSemanticWarning(WarningStaticContradiction,
		fmt.Sprintf("%s is decided by constant folding alone", form), pos).
		WithNote("the solver still records the resulting empty clause").
		Build()
}
