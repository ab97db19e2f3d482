package lsp

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"bvcore/internal/errors"
)

// ConvertParseError converts a participle parse failure into a single LSP
// diagnostic. Participle reports exactly one error per ParseString call,
// so there is never more than one entry.
func ConvertParseError(err error) []protocol.Diagnostic {
	perr, ok := err.(participle.Error)
	if !ok {
		return []protocol.Diagnostic{{
			Range:    zeroRange(),
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("bvcore-parser"),
			Message:  err.Error(),
		}}
	}

	pos := perr.Position()
	return []protocol.Diagnostic{{
		Range:    lineRange(pos.Line, pos.Column, 6),
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("bvcore-parser"),
		Message:  fmt.Sprintf("[%s] %s", errors.ErrorParseFailure, perr.Message()),
	}}
}

// ConvertEvalError converts a termlang evaluation error into an LSP
// diagnostic. Evaluation stops at the first error, matching ParseError's
// one-error-per-call shape.
func ConvertEvalError(err error) []protocol.Diagnostic {
	cerr, ok := err.(errors.CompilerError)
	if !ok {
		return []protocol.Diagnostic{{
			Range:    zeroRange(),
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("bvcore-eval"),
			Message:  err.Error(),
		}}
	}

	severity := protocol.DiagnosticSeverityError
	if errors.IsWarning(cerr.Code) {
		severity = protocol.DiagnosticSeverityWarning
	}

	length := cerr.Length
	if length <= 0 {
		length = 1
	}

	return []protocol.Diagnostic{{
		Range:    lineRange(cerr.Position.Line, cerr.Position.Column, length),
		Severity: ptrSeverity(severity),
		Source:   ptrString("bvcore-eval"),
		Message:  fmt.Sprintf("[%s] %s", cerr.Code, cerr.Message),
	}}
}

func zeroRange() protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End:   protocol.Position{Line: 0, Character: 1},
	}
}

func lineRange(line, column, length int) protocol.Range {
	startLine := uint32(0)
	if line > 1 {
		startLine = uint32(line - 1)
	}
	startCol := uint32(0)
	if column > 1 {
		startCol = uint32(column - 1)
	}
	return protocol.Range{
		Start: protocol.Position{Line: startLine, Character: startCol},
		End:   protocol.Position{Line: startLine, Character: startCol + uint32(length)},
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
