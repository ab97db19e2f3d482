package termlang

import "github.com/alecthomas/participle/v2/lexer"

// Program is a sequence of top-level forms, the term language's analogue
// of grammar.go's Program{SourceElements []*SourceElement}.
type Program struct {
	Pos lexer.Position

	Forms []*Form `@@*`
}

// Form is the alternation over every top-level construct the language
// accepts. Order matters: participle tries each alternative in turn, so
// the longer keywords (decl-const, assert-not, check-uge, check-sge) are
// listed before the shorter keywords they would otherwise shadow.
type Form struct {
	Pos lexer.Position

	DeclConst *DeclConstForm `  @@`
	Decl      *DeclForm      `| @@`
	Let       *LetForm       `| @@`
	AssertNot *AssertNotForm `| @@`
	Assert    *AssertForm    `| @@`
	CheckUGE  *CheckUGEForm  `| @@`
	CheckSGE  *CheckSGEForm  `| @@`
	Push      *PushForm      `| @@`
	Pop       *PopForm       `| @@`
}

// DeclForm is (decl ident width).
type DeclForm struct {
	Pos lexer.Position

	Keyword string `"(" @"decl"`
	Name    string `@Ident`
	Width   int64  `@Integer ")"`
}

// DeclConstForm is (decl-const ident width value).
type DeclConstForm struct {
	Pos lexer.Position

	Keyword string `"(" @"decl-const"`
	Name    string `@Ident`
	Width   int64  `@Integer`
	Value   string `@Integer ")"`
}

// LetForm is (let ident term), binding a name to the value of a term
// without allocating a fresh declared variable for it.
type LetForm struct {
	Pos lexer.Position

	Keyword string `"(" @"let"`
	Name    string `@Ident`
	Value   *Term  `@@ ")"`
}

// AssertForm is (assert bool-term).
type AssertForm struct {
	Pos lexer.Position

	Keyword string    `"(" @"assert"`
	Cond    *BoolTerm `@@ ")"`
}

// AssertNotForm is (assert-not bool-term).
type AssertNotForm struct {
	Pos lexer.Position

	Keyword string    `"(" @"assert-not"`
	Cond    *BoolTerm `@@ ")"`
}

// CheckUGEForm is (check-uge term term), a standalone unsigned comparison
// query that does not assert anything.
type CheckUGEForm struct {
	Pos lexer.Position

	Keyword string `"(" @"check-uge"`
	Left    *Term  `@@`
	Right   *Term  `@@ ")"`
}

// CheckSGEForm is (check-sge term term), the signed counterpart.
type CheckSGEForm struct {
	Pos lexer.Position

	Keyword string `"(" @"check-sge"`
	Left    *Term  `@@`
	Right   *Term  `@@ ")"`
}

// PushForm is (push).
type PushForm struct {
	Pos lexer.Position

	Keyword string `"(" @"push" ")"`
}

// PopForm is (pop).
type PopForm struct {
	Pos lexer.Position

	Keyword string `"(" @"pop" ")"`
}

// Term is either a leaf (identifier or integer literal) or an operator
// application (op arg+).
type Term struct {
	Pos lexer.Position

	Ident *string  `  @Ident`
	Int   *string  `| @Integer`
	Op    *OpTerm  `| @@`
}

// OpTerm is (op term+) for every arithmetic/bitwise/shift/ite operator.
// ite takes exactly three arguments (condition, then, else); every other
// op is binary except neg and not, which take one. Arity is checked by
// the evaluator, not the grammar, matching the teacher's own practice of
// keeping the grammar permissive and pushing semantic checks to a later
// pass.
type OpTerm struct {
	Pos lexer.Position

	Open string  `"("`
	Op   string  `@("add"|"sub"|"mul"|"neg"|"not"|"and"|"or"|"xor"|"udiv"|"urem"|"sdiv"|"srem"|"smod"|"shl"|"lshr"|"ashr"|"ite")`
	Args []*Term `@@+ ")"`
}

// BoolTerm is (op term term) for the three relations that produce a
// Boolean result: eq, uge, sge.
type BoolTerm struct {
	Pos lexer.Position

	Open  string `"("`
	Op    string `@("eq"|"uge"|"sge")`
	Left  *Term  `@@`
	Right *Term  `@@ ")"`
}
