// Package termlang is the solver's term-language front end: a lexer and
// participle grammar for the S-expression source format, and an
// evaluator that drives an *engine.Solver from the parsed forms.
package termlang

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
)

var parser = buildParser()

func buildParser() *participle.Parser[Program] {
	p, err := participle.Build[Program](
		participle.Lexer(Lexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(3),
	)
	if err != nil {
		panic(fmt.Errorf("termlang: failed to build parser: %w", err))
	}
	return p
}

// ParseFile reads and parses path, printing a caret-annotated error to
// stderr and returning a non-nil error on failure.
func ParseFile(path string) (*Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("termlang: failed to read %s: %w", path, err)
		reportParseError(path, "", err)
		return nil, err
	}
	return ParseSource(path, string(source))
}

// ParseSource parses source, attributing diagnostics to sourceName.
func ParseSource(sourceName string, source string) (*Program, error) {
	program, err := parser.ParseString(sourceName, source)
	if err != nil {
		reportParseError(sourceName, source, err)
		return nil, err
	}
	return program, nil
}

// reportParseError prints a Rust-like caret diagnostic for a participle
// parse error, mirroring grammar/parser.go's own reportParseError.
func reportParseError(sourceName, source string, err error) {
	bold := color.New(color.Bold).SprintFunc()
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	perr, ok := err.(participle.Error)
	if !ok {
		fmt.Fprintf(os.Stderr, "%s: %s\n", red("error"), err)
		return
	}

	pos := perr.Position()
	lines := strings.Split(source, "\n")

	fmt.Fprintf(os.Stderr, "%s: %s\n", red("error"), perr.Message())
	fmt.Fprintf(os.Stderr, "  %s %s:%d:%d\n", dim("-->"), sourceName, pos.Line, pos.Column)

	if pos.Line >= 1 && pos.Line <= len(lines) {
		line := lines[pos.Line-1]
		fmt.Fprintf(os.Stderr, "%s %s %s\n", bold(fmt.Sprintf("%3d", pos.Line)), dim("|"), line)
		marker := strings.Repeat(" ", max(0, pos.Column-1)) + red("^")
		fmt.Fprintf(os.Stderr, "    %s %s\n", dim("|"), marker)
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
