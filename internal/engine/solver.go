// Package engine wires components A through I into the solver's control
// interface: term and atom construction, assertion, and the
// push/pop/backtrack state machine, grounded directly on bv_solver_*'s
// own wiring order in bvsolver.c.
package engine

import (
	"bvcore/internal/atomtable"
	"bvcore/internal/bounds"
	"bvcore/internal/diseq"
	"bvcore/internal/facade"
	"bvcore/internal/lit"
	"bvcore/internal/mergetable"
	"bvcore/internal/simplify"
	"bvcore/internal/trail"
	"bvcore/internal/vartable"
)

// Solver owns every component of the term-management engine plus the
// base_level/decision_level state machine that guards push/pop.
type Solver struct {
	Vars  *vartable.Table
	Atoms *atomtable.Table
	Merge *mergetable.Table
	Trail *trail.Stack

	Build  *simplify.Builder
	SAT    *facade.SAT
	EGraph *facade.EGraph
	Remap  *facade.Remap
	Blast  *facade.BitBlaster

	baseLevel     int
	decisionLevel int
}

// New returns a freshly initialized solver, equivalent to init_bv_solver.
func New() *Solver {
	vt := vartable.New()
	mt := mergetable.New()
	sat := facade.NewSAT()

	return &Solver{
		Vars:   vt,
		Atoms:  atomtable.New(),
		Merge:  mt,
		Trail:  trail.New(),
		Build:  simplify.NewBuilder(vt, mt),
		SAT:    sat,
		EGraph: facade.NewEGraph(vt),
		Remap:  facade.NewRemap(vt, mt, sat),
		Blast:  facade.NewBitBlaster(),
	}
}

// BaseLevel and DecisionLevel expose the state machine's two counters.
func (s *Solver) BaseLevel() int     { return s.baseLevel }
func (s *Solver) DecisionLevel() int { return s.decisionLevel }

// Root returns the merge-table representative of x, the operation every
// bound/disequality/atom query performs on its operands first.
func (s *Solver) Root(x vartable.VarID) vartable.VarID {
	return s.Merge.Root(x)
}

// CheckDisequal reports whether x and y are structurally disequal,
// rooting both first.
func (s *Solver) CheckDisequal(x, y vartable.VarID) bool {
	return diseq.Disequal(s.Vars, s.Root(x), s.Root(y))
}

// CheckUGE/CheckSGE expose the bound reasoner's three-valued comparisons
// over rooted operands.
func (s *Solver) CheckUGE(x, y vartable.VarID) bounds.Result {
	return bounds.CheckUGE(s.Vars, s.Root(x), s.Root(y))
}

func (s *Solver) CheckSGE(x, y vartable.VarID) bounds.Result {
	return bounds.CheckSGE(s.Vars, s.Root(x), s.Root(y))
}

// SelectBit extracts bit i of x as a concrete Boolean literal: static for
// constants and bit arrays, lazily bound through the remap facade
// otherwise. Mirrors bvvar_get_bit's dispatch in bvsolver.c.
func (s *Solver) SelectBit(x vartable.VarID, i uint32) lit.Lit {
	x = s.Root(x)
	v := s.Vars.Get(x)
	switch d := v.Def.(type) {
	case vartable.DefConst64:
		if (d.Value>>i)&1 == 1 {
			return lit.True
		}
		return lit.False
	case vartable.DefConst:
		if d.Value.Bit(i) {
			return lit.True
		}
		return lit.False
	case vartable.DefBitArray:
		return d.Bits[i]
	default:
		return s.Remap.Bit(x, i)
	}
}
