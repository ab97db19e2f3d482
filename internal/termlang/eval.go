package termlang

import (
	"math/big"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"bvcore/internal/bounds"
	"bvcore/internal/bvnum"
	"bvcore/internal/engine"
	cerrors "bvcore/internal/errors"
	"bvcore/internal/vartable"
)

// maxWidth mirrors bvnum's own ceiling (internal/bvnum.Value rejects
// widths above it); duplicated here since the evaluator needs to reject
// an out-of-range decl before ever calling into vartable.
const maxWidth = 4096

// CheckResult records the outcome of a standalone check-uge/check-sge
// query, since those forms produce an answer rather than a side effect.
type CheckResult struct {
	Pos    lexer.Position
	Kind   string // "uge" or "sge"
	Answer bounds.Result
}

// Eval walks a parsed Program and drives a Solver, maintaining the name
// bindings introduced by decl/decl-const/let.
type Eval struct {
	Solver   *engine.Solver
	Results  []CheckResult
	Warnings []cerrors.CompilerError

	symbols map[string]vartable.VarID
	pushes  int
}

// NewEval returns an evaluator that drives s.
func NewEval(s *engine.Solver) *Eval {
	return &Eval{Solver: s, symbols: make(map[string]vartable.VarID)}
}

// Run evaluates every form in program in order, stopping at the first
// error.
func (e *Eval) Run(program *Program) error {
	for _, form := range program.Forms {
		if err := e.evalForm(form); err != nil {
			return err
		}
	}
	return nil
}

func (e *Eval) evalForm(f *Form) error {
	switch {
	case f.DeclConst != nil:
		return e.evalDeclConst(f.DeclConst)
	case f.Decl != nil:
		return e.evalDecl(f.Decl)
	case f.Let != nil:
		return e.evalLet(f.Let)
	case f.AssertNot != nil:
		return e.evalAssert(f.AssertNot.Pos, f.AssertNot.Cond, false)
	case f.Assert != nil:
		return e.evalAssert(f.Assert.Pos, f.Assert.Cond, true)
	case f.CheckUGE != nil:
		return e.evalCheck(f.CheckUGE.Pos, "uge", f.CheckUGE.Left, f.CheckUGE.Right)
	case f.CheckSGE != nil:
		return e.evalCheck(f.CheckSGE.Pos, "sge", f.CheckSGE.Left, f.CheckSGE.Right)
	case f.Push != nil:
		e.Solver.Push()
		e.pushes++
		return nil
	case f.Pop != nil:
		if e.pushes == 0 {
			return cerrors.UnbalancedPop(toPos(f.Pop.Pos))
		}
		e.Solver.Pop()
		e.pushes--
		return nil
	}
	return nil
}

func (e *Eval) bind(name string, pos lexer.Position, id vartable.VarID) error {
	if _, exists := e.symbols[name]; exists {
		return cerrors.RedeclaredIdent(name, toPos(pos))
	}
	e.symbols[name] = id
	return nil
}

func (e *Eval) evalDecl(f *DeclForm) error {
	width, err := checkWidth(f.Width, f.Pos)
	if err != nil {
		return err
	}
	id := e.Solver.Vars.NewVar(width)
	return e.bind(f.Name, f.Pos, id)
}

func (e *Eval) evalDeclConst(f *DeclConstForm) error {
	width, err := checkWidth(f.Width, f.Pos)
	if err != nil {
		return err
	}
	value, ok := parseLiteral(f.Value, width)
	if !ok {
		return cerrors.ConstOutOfRange(f.Value, width, toPos(f.Pos))
	}
	id := e.newConst(width, value)
	return e.bind(f.Name, f.Pos, id)
}

func (e *Eval) evalLet(f *LetForm) error {
	id, err := e.evalTerm(f.Value)
	if err != nil {
		return err
	}
	return e.bind(f.Name, f.Pos, id)
}

func (e *Eval) evalAssert(pos lexer.Position, bt *BoolTerm, tt bool) error {
	left, err := e.evalTerm(bt.Left)
	if err != nil {
		return err
	}
	right, err := e.evalTerm(bt.Right)
	if err != nil {
		return err
	}
	if err := e.checkWidthsEqual(bt.Op, left, right, bt.Pos); err != nil {
		return err
	}

	wasUnsat := e.Solver.SAT.Unsat()

	form := "assert"
	if !tt {
		form = "assert-not"
	}
	switch bt.Op {
	case "eq":
		e.Solver.AssertEq(left, right, tt)
	case "uge":
		e.Solver.AssertUGE(left, right, tt)
	case "sge":
		e.Solver.AssertSGE(left, right, tt)
	}

	if !wasUnsat && e.Solver.SAT.Unsat() {
		e.Warnings = append(e.Warnings, cerrors.StaticContradiction(form, toPos(pos)))
	}
	return nil
}

func (e *Eval) evalCheck(pos lexer.Position, kind string, leftTerm, rightTerm *Term) error {
	left, err := e.evalTerm(leftTerm)
	if err != nil {
		return err
	}
	right, err := e.evalTerm(rightTerm)
	if err != nil {
		return err
	}
	if err := e.checkWidthsEqual("check-"+kind, left, right, pos); err != nil {
		return err
	}
	var answer bounds.Result
	if kind == "uge" {
		answer = e.Solver.CheckUGE(left, right)
	} else {
		answer = e.Solver.CheckSGE(left, right)
	}
	e.Results = append(e.Results, CheckResult{Pos: pos, Kind: kind, Answer: answer})
	return nil
}

func (e *Eval) evalTerm(t *Term) (vartable.VarID, error) {
	switch {
	case t.Ident != nil:
		id, ok := e.symbols[*t.Ident]
		if !ok {
			return 0, cerrors.UndeclaredIdent(*t.Ident, toPos(t.Pos))
		}
		return id, nil
	case t.Int != nil:
		// A bare integer literal carries no declared width of its own,
		// wherever it appears (operator operand, comparison operand,
		// `let` value), so it is sized by literalWidth alone; an operand
		// of another width beside it is reported as a width mismatch.
		width := literalWidth(*t.Int)
		value, ok := parseLiteral(*t.Int, width)
		if !ok {
			return 0, cerrors.ConstOutOfRange(*t.Int, width, toPos(t.Pos))
		}
		return e.newConst(width, value), nil
	case t.Op != nil:
		return e.evalOp(t.Op)
	}
	return 0, cerrors.UndeclaredIdent("<empty term>", lexer.Position{})
}

func (e *Eval) evalOp(op *OpTerm) (vartable.VarID, error) {
	args := make([]vartable.VarID, len(op.Args))
	for i, a := range op.Args {
		id, err := e.evalTerm(a)
		if err != nil {
			return 0, err
		}
		args[i] = id
	}

	b := e.Solver.Build

	switch op.Op {
	case "neg", "not":
		if err := e.arity(op, 1); err != nil {
			return 0, err
		}
		bits := e.Solver.Vars.Get(args[0]).Bits
		if op.Op == "neg" {
			return b.Neg(bits, args[0]), nil
		}
		return b.Not(bits, args[0]), nil
	case "ite":
		if err := e.arity(op, 3); err != nil {
			return 0, err
		}
		cond := e.Solver.SelectBit(args[0], 0)
		thenBits := e.Solver.Vars.Get(args[1]).Bits
		return b.Ite(thenBits, cond, args[1], args[2]), nil
	default:
		if err := e.arity(op, 2); err != nil {
			return 0, err
		}
		if err := e.checkWidthsEqual(op.Op, args[0], args[1], op.Pos); err != nil {
			return 0, err
		}
		bits := e.Solver.Vars.Get(args[0]).Bits
		switch op.Op {
		case "add":
			return b.Add(bits, args[0], args[1]), nil
		case "sub":
			return b.Sub(bits, args[0], args[1]), nil
		case "mul":
			return b.Mul(bits, args[0], args[1]), nil
		case "and":
			return b.And(bits, args[0], args[1]), nil
		case "or":
			return b.Or(bits, args[0], args[1]), nil
		case "xor":
			return b.Xor(bits, args[0], args[1]), nil
		case "udiv":
			return b.Udiv(bits, args[0], args[1]), nil
		case "urem":
			return b.Urem(bits, args[0], args[1]), nil
		case "sdiv":
			return b.Sdiv(bits, args[0], args[1]), nil
		case "srem":
			return b.Srem(bits, args[0], args[1]), nil
		case "smod":
			return b.Smod(bits, args[0], args[1]), nil
		case "shl":
			return b.Shl(bits, args[0], args[1]), nil
		case "lshr":
			return b.Lshr(bits, args[0], args[1]), nil
		case "ashr":
			return b.Ashr(bits, args[0], args[1]), nil
		}
	}
	return 0, cerrors.UndeclaredIdent(op.Op, toPos(op.Pos))
}

func (e *Eval) arity(op *OpTerm, n int) error {
	if len(op.Args) != n {
		return cerrors.WidthMismatch(op.Op, uint32(len(op.Args)), uint32(n), toPos(op.Pos))
	}
	return nil
}

func (e *Eval) checkWidthsEqual(op string, x, y vartable.VarID, pos lexer.Position) error {
	bx := e.Solver.Vars.Get(x).Bits
	by := e.Solver.Vars.Get(y).Bits
	if bx != by {
		return cerrors.WidthMismatch(op, bx, by, toPos(pos))
	}
	return nil
}

// newConst allocates a width-bit constant variable from value, dispatching
// to the inline or wide constructor the way simplify.Builder's own
// newConst does.
func (e *Eval) newConst(width uint32, value *big.Int) vartable.VarID {
	if width <= 64 {
		return e.Solver.Vars.NewConst64(width, value.Uint64())
	}
	return e.Solver.Vars.NewConst(vartable.DefConst{Value: bvnum.FromBigInt(width, value)})
}

func checkWidth(width int64, pos lexer.Position) (uint32, error) {
	if width <= 0 || width > maxWidth {
		return 0, cerrors.InvalidWidth(uint32(width), maxWidth, toPos(pos))
	}
	return uint32(width), nil
}

// parseLiteral parses a decimal or 0x-prefixed hexadecimal literal into a
// big.Int and reports whether it fits in width bits (unsigned).
func parseLiteral(s string, width uint32) (*big.Int, bool) {
	base := 10
	text := s
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base = 16
		text = s[2:]
	}
	v, ok := new(big.Int).SetString(text, base)
	if !ok {
		return nil, false
	}
	limit := new(big.Int).Lsh(big.NewInt(1), uint(width))
	if v.Cmp(limit) >= 0 {
		return nil, false
	}
	return v, true
}

// literalWidth picks the narrowest power-of-two-aligned width (rounded up
// to a byte) that fits a bare integer literal.
func literalWidth(s string) uint32 {
	v, ok := parseLiteral(s, 64)
	if !ok || v == nil {
		return 64
	}
	bits := v.BitLen()
	if bits == 0 {
		return 8
	}
	width := uint32(8)
	for width < uint32(bits) {
		width *= 2
	}
	return width
}

func toPos(p lexer.Position) cerrors.Position {
	return cerrors.Position{Line: p.Line, Column: p.Column}
}
