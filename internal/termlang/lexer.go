package termlang

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer tokenizes the term language: S-expressions of identifiers,
// integers, and parentheses. Keywords (decl, assert-not, and so on) are
// not their own token kind — they are plain Ident tokens matched
// literally by the grammar, the same way KansoLexer leaves "module" and
// "struct" as Ident text for the grammar to match against. Identifiers
// may contain hyphens so that multi-word keywords like "decl-const" and
// "check-uge" tokenize as one Ident.
var Lexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `;[^\n]*`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_-]*`, nil},
		{"Integer", `0x[0-9a-fA-F]+|[0-9]+`, nil},
		{"Punctuation", `[()]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
