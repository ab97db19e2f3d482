package facade

import "bvcore/internal/vartable"

// EGraph is the e-graph facade: attaching at most one e-term id per
// variable, querying it back, and truncating stale attachments after a
// pop. bvvar_get_eterm/bv_solver_attach_eterm in bvsolver.c are the
// one-line accessors this wraps; the truncation rule (clear slots whose
// id lies beyond the e-graph's own rolled-back term count) has no
// standalone function in the retained excerpt, but is required by
// spec.md's pop semantics, so it lives here rather than in
// internal/vartable itself.
type EGraph struct {
	vt *vartable.Table
}

// NewEGraph returns an e-graph facade over vt.
func NewEGraph(vt *vartable.Table) *EGraph {
	return &EGraph{vt: vt}
}

// Attach records e as x's e-graph term. Panics if x already carries a
// different live attachment; a slot cleared by TruncateTerms may be
// attached again.
func (g *EGraph) Attach(x vartable.VarID, e vartable.ETermID) {
	g.vt.AttachEterm(x, e)
}

// TermOf returns the e-term attached to x, or vartable.NoETerm if none.
func (g *EGraph) TermOf(x vartable.VarID) vartable.ETermID {
	return g.vt.EtermOf(x)
}

// TruncateTerms clears the attachment on every variable whose e-term id
// is >= keep, the action bv_solver_pop performs against the e-graph's own
// rolled-back term count before truncating the variable table itself.
func (g *EGraph) TruncateTerms(keep vartable.ETermID) {
	for i := 1; i < g.vt.Len(); i++ {
		v := g.vt.Get(vartable.VarID(i))
		if v.Eterm != vartable.NoETerm && v.Eterm >= keep {
			v.Eterm = vartable.NoETerm
		}
	}
}
