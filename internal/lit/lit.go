// Package lit defines the pseudo-literal / Boolean-literal representation
// shared by the variable table's bit arrays, the pseudo-literal remap
// facade, and the bound/disequality reasoners. It carries no logic of its
// own beyond the encoding: allocation of fresh Boolean variables is the
// SAT-core facade's job (internal/facade), not this package's.
package lit

// Var is a Boolean variable id as allocated by the surrounding SAT core.
// Id 0 is reserved and never allocated.
type Var uint32

// Lit is a literal over a Var: even values are the positive polarity of
// var = l/2, odd values are the negated polarity. True and False are the
// two statically-known constants, encoded as the literals of the reserved
// variable 0 — the same trick yices2's bv_solver.c relies on
// ("true_literal == 0 && false_literal == 1") to let a single integer
// comparison test "is this literal a concrete bit".
type Lit int32

const (
	True  Lit = 0
	False Lit = 1
)

// Of returns the positive-polarity literal of v.
func Of(v Var) Lit { return Lit(2 * v) }

// Neg returns the negated-polarity literal of v.
func Neg(v Var) Lit { return Lit(2*v + 1) }

// Negate returns the logical complement of l. Negate(True) == False and
// vice versa, since both are literals of the reserved variable 0.
func (l Lit) Negate() Lit { return l ^ 1 }

// Var returns the underlying Boolean variable of l.
func (l Lit) Var() Var { return Var(l / 2) }

// Sign reports whether l is the negated polarity.
func (l Lit) Sign() bool { return l&1 == 1 }

// IsConst reports whether l is statically True or False.
func (l Lit) IsConst() bool { return l == True || l == False }

// Opposite reports whether a and b are literals of the same variable with
// opposite polarity — the "(l, ¬l)" pair test used by the disequality
// reasoner on bit arrays.
func Opposite(a, b Lit) bool { return a == b.Negate() }

func (l Lit) String() string {
	switch l {
	case True:
		return "true"
	case False:
		return "false"
	}
	if l.Sign() {
		return "~b" + itoa(uint32(l.Var()))
	}
	return "b" + itoa(uint32(l.Var()))
}

func itoa(x uint32) string {
	if x == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for x > 0 {
		i--
		buf[i] = byte('0' + x%10)
		x /= 10
	}
	return string(buf[i:])
}
