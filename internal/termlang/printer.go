package termlang

import (
	"strconv"
	"strings"
)

// String renders a parsed program back to the term language's concrete
// syntax. Parsing String's output is expected to reach a fixed point,
// since the grammar has no insignificant structure beyond whitespace and
// comments.
func (p *Program) String() string {
	var b strings.Builder
	for i, f := range p.Forms {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(f.String())
	}
	return b.String()
}

func (f *Form) String() string {
	switch {
	case f.DeclConst != nil:
		return f.DeclConst.String()
	case f.Decl != nil:
		return f.Decl.String()
	case f.Let != nil:
		return f.Let.String()
	case f.AssertNot != nil:
		return f.AssertNot.String()
	case f.Assert != nil:
		return f.Assert.String()
	case f.CheckUGE != nil:
		return f.CheckUGE.String()
	case f.CheckSGE != nil:
		return f.CheckSGE.String()
	case f.Push != nil:
		return "(push)"
	case f.Pop != nil:
		return "(pop)"
	default:
		return "(?)"
	}
}

func (d *DeclForm) String() string {
	return "(decl " + d.Name + " " + strconv.FormatInt(d.Width, 10) + ")"
}

func (c *DeclConstForm) String() string {
	return "(decl-const " + c.Name + " " + strconv.FormatInt(c.Width, 10) + " " + c.Value + ")"
}

func (l *LetForm) String() string {
	return "(let " + l.Name + " " + l.Value.String() + ")"
}

func (a *AssertForm) String() string {
	return "(assert " + a.Cond.String() + ")"
}

func (a *AssertNotForm) String() string {
	return "(assert-not " + a.Cond.String() + ")"
}

func (c *CheckUGEForm) String() string {
	return "(check-uge " + c.Left.String() + " " + c.Right.String() + ")"
}

func (c *CheckSGEForm) String() string {
	return "(check-sge " + c.Left.String() + " " + c.Right.String() + ")"
}

func (t *Term) String() string {
	switch {
	case t.Ident != nil:
		return *t.Ident
	case t.Int != nil:
		return *t.Int
	case t.Op != nil:
		return t.Op.String()
	default:
		return "?"
	}
}

func (o *OpTerm) String() string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(o.Op)
	for _, arg := range o.Args {
		b.WriteString(" ")
		b.WriteString(arg.String())
	}
	b.WriteString(")")
	return b.String()
}

func (bt *BoolTerm) String() string {
	return "(" + bt.Op + " " + bt.Left.String() + " " + bt.Right.String() + ")"
}
