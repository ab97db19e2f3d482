// Package facade implements the engine's component I: the narrow
// interfaces the engine uses to reach its three external collaborators —
// the SAT core, the e-graph, and the bit-blaster — without depending on
// any of their concrete implementations. The engine is strictly a client
// of each: it allocates through them and emits clauses to them, but never
// owns their state. Full bit-blasting, search, and e-graph reasoning are
// outside this package's scope, mirroring create_boolean_variable/
// add_unit_clause/add_empty_clause's role in bv_solver.c — the solver
// calls into smt_core_t, it does not implement it.
package facade

import "bvcore/internal/lit"

// SAT is the subset of the SAT core the engine depends on: fresh Boolean
// variable allocation and unit/empty clause emission. A production
// binding wires this to a real solver's clause database; this package
// ships the in-memory implementation a standalone engine needs to run
// its own test suite and the term-language shell.
type SAT struct {
	nextVar lit.Var
	units   []lit.Lit
	unsat   bool
}

// NewSAT returns an empty SAT-core facade. Variable 0 is reserved for the
// True/False literal pair, matching internal/lit's convention.
func NewSAT() *SAT {
	return &SAT{nextVar: 1}
}

// NewVar allocates and returns a fresh Boolean variable.
func (s *SAT) NewVar() lit.Var {
	v := s.nextVar
	s.nextVar++
	return v
}

// NewLit allocates a fresh Boolean variable and returns its
// positive-polarity literal, the shape bvvar_get_bit's
// "pos_lit(create_boolean_variable(solver->core))" call produces.
func (s *SAT) NewLit() lit.Lit {
	return lit.Of(s.NewVar())
}

// AssertUnit records l as a unit clause. True and False are not real
// variables and are silently accepted (True is already satisfied,
// False is handled by the empty-clause path instead).
func (s *SAT) AssertUnit(l lit.Lit) {
	if l == lit.False {
		s.AssertEmpty()
		return
	}
	if l == lit.True {
		return
	}
	s.units = append(s.units, l)
}

// AssertEmpty records the empty clause, the SAT core's signal that the
// current assertion set is unsatisfiable by construction — the
// "Simplification constant truth" / "Static contradiction" error kinds
// both resolve to this call rather than a Go error value.
func (s *SAT) AssertEmpty() {
	s.unsat = true
}

// Unsat reports whether the empty clause has been emitted.
func (s *SAT) Unsat() bool { return s.unsat }

// Units returns the unit clauses recorded so far. The returned slice must
// not be mutated by the caller.
func (s *SAT) Units() []lit.Lit { return s.units }

// NumVars reports how many Boolean variables have been allocated.
func (s *SAT) NumVars() int { return int(s.nextVar) - 1 }
