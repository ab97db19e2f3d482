package engine

import (
	"bvcore/internal/atomtable"
	"bvcore/internal/bounds"
	"bvcore/internal/lit"
	"bvcore/internal/vartable"
)

// getAtomLit returns the literal for an already-interned or freshly built
// atom, allocating a fresh Boolean variable through the SAT facade the
// first time that (kind, x, y) triple is requested — get_bveq_atom/
// get_bvuge_atom/get_bvsge_atom's shared "miss -> create_boolean_variable"
// tail.
func (s *Solver) getAtomLit(kind atomtable.Kind, x, y vartable.VarID) lit.Lit {
	id := s.Atoms.GetAtom(kind, x, y, s.SAT.NewLit)
	return s.Atoms.Get(id).Lit
}

// CreateEqAtom returns the literal for (x = y), short-circuiting to a
// static True/False literal when the roots coincide or are structurally
// disequal. Mirrors bv_solver_create_eq_atom.
func (s *Solver) CreateEqAtom(x, y vartable.VarID) lit.Lit {
	x, y = s.Root(x), s.Root(y)
	if x == y {
		return lit.True
	}
	if s.CheckDisequal(x, y) {
		return lit.False
	}
	return s.getAtomLit(atomtable.KindEQ, x, y)
}

// CreateUGEAtom returns the literal for (x >= y) unsigned, with no
// simplification beyond hash-consing: bound-based shortcuts are applied
// at assertion time instead (AssertUGE), matching
// bv_solver_make_ge_atom's comment ("no simplification").
func (s *Solver) CreateUGEAtom(x, y vartable.VarID) lit.Lit {
	x, y = s.Root(x), s.Root(y)
	return s.getAtomLit(atomtable.KindUGE, x, y)
}

// CreateSGEAtom is CreateUGEAtom's signed counterpart.
func (s *Solver) CreateSGEAtom(x, y vartable.VarID) lit.Lit {
	x, y = s.Root(x), s.Root(y)
	return s.getAtomLit(atomtable.KindSGE, x, y)
}

// AssertEq asserts (x = y) if tt, or (x != y) if !tt. An equality
// assertion that holds merges the two classes in the merge table instead
// of ever allocating an atom; a contradiction at either polarity goes
// straight to the SAT core's empty clause. Mirrors bv_solver_assert_eq_axiom.
func (s *Solver) AssertEq(x, y vartable.VarID, tt bool) {
	x, y = s.Root(x), s.Root(y)
	switch {
	case x == y:
		if !tt {
			s.SAT.AssertEmpty()
		}
	case s.CheckDisequal(x, y):
		if tt {
			s.SAT.AssertEmpty()
		}
	case tt:
		s.mergeVars(x, y)
	default:
		l := s.CreateEqAtom(x, y)
		s.SAT.AssertUnit(l.Negate())
	}
}

// AssertUGE asserts (x >= y) if tt, or its negation if !tt, consulting
// the bound reasoner first and only falling back to an atom (and a unit
// clause recording the requested polarity) when the comparison is
// undecided. Mirrors bv_solver_assert_ge_axiom.
func (s *Solver) AssertUGE(x, y vartable.VarID, tt bool) {
	x, y = s.Root(x), s.Root(y)
	switch s.CheckUGE(x, y) {
	case bounds.False:
		if tt {
			s.SAT.AssertEmpty()
		}
	case bounds.True:
		if !tt {
			s.SAT.AssertEmpty()
		}
	default:
		l := s.CreateUGEAtom(x, y)
		s.SAT.AssertUnit(signedLiteral(l, tt))
	}
}

// AssertSGE is AssertUGE's signed counterpart, via CheckSGE/CreateSGEAtom.
func (s *Solver) AssertSGE(x, y vartable.VarID, tt bool) {
	x, y = s.Root(x), s.Root(y)
	switch s.CheckSGE(x, y) {
	case bounds.False:
		if tt {
			s.SAT.AssertEmpty()
		}
	case bounds.True:
		if !tt {
			s.SAT.AssertEmpty()
		}
	default:
		l := s.CreateSGEAtom(x, y)
		s.SAT.AssertUnit(signedLiteral(l, tt))
	}
}

// signedLiteral returns l if tt, otherwise its negation — signed_literal's
// two-line definition in the original, inlined here as a free function
// since no other package needs it.
func signedLiteral(l lit.Lit, tt bool) lit.Lit {
	if tt {
		return l
	}
	return l.Negate()
}

// mergeVars merges x and y's classes, picking whichever has the lower
// vartable.Kind.Rank() as the surviving root, mirroring
// bv_solver_merge_vars' "simpler tag wins" policy — the one piece of
// asymmetric-merge decision-making internal/mergetable deliberately
// keeps out of its own generic Merge.
func (s *Solver) mergeVars(x, y vartable.VarID) {
	rx := s.Vars.Get(x).Kind.Rank()
	ry := s.Vars.Get(y).Kind.Rank()
	if rx <= ry {
		s.Merge.Merge(x, y)
	} else {
		s.Merge.Merge(y, x)
	}
}
