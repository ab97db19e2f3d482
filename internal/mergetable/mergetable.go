// Package mergetable implements the engine's component D: a union-find
// over theory variables with checkpoint/undo-log semantics instead of
// path compression. Path compression is deliberately absent — a merge
// recorded at push level N must be exactly undoable by Pop without
// touching entries created at other levels, so Root always walks the
// live parent chain rather than rewriting it.
//
// mergetable itself carries no opinion about which representative "should"
// survive a merge (that policy — simpler kinds outrank compounds outrank
// variables — belongs to the caller, per bv_solver_merge_vars in the
// upstream solver); Merge takes the already-decided (root, absorbed) pair.
package mergetable

import "bvcore/internal/vartable"

// Table is a union-find structure keyed by vartable.VarID.
type Table struct {
	parent []vartable.VarID
	log    []vartable.VarID
	marks  []int
}

// New returns an empty merge table.
func New() *Table {
	return &Table{}
}

func (t *Table) ensure(x vartable.VarID) {
	for vartable.VarID(len(t.parent)) <= x {
		t.parent = append(t.parent, vartable.VarID(len(t.parent)))
	}
}

// Root returns the representative of x's equivalence class. A variable
// with no recorded merge is its own root.
func (t *Table) Root(x vartable.VarID) vartable.VarID {
	t.ensure(x)
	for t.parent[x] != x {
		x = t.parent[x]
	}
	return x
}

// IsRoot reports whether x is currently its own class representative.
func (t *Table) IsRoot(x vartable.VarID) bool {
	return t.Root(x) == x
}

// Equiv reports whether x and y are in the same equivalence class.
func (t *Table) Equiv(x, y vartable.VarID) bool {
	return t.Root(x) == t.Root(y)
}

// Merge unions absorbed's class into keepRoot's class: keepRoot must
// already be a root, and absorbed must be a distinct root. After Merge,
// Root(absorbed) == keepRoot.
func (t *Table) Merge(keepRoot, absorbed vartable.VarID) {
	t.ensure(keepRoot)
	t.ensure(absorbed)
	if keepRoot == absorbed {
		panic("mergetable: cannot merge a class with itself")
	}
	t.parent[absorbed] = keepRoot
	t.log = append(t.log, absorbed)
}

// Push starts a new checkpoint: merges recorded after this call are
// undone by the matching Pop.
func (t *Table) Push() {
	t.marks = append(t.marks, len(t.log))
}

// Pop undoes every merge recorded since the last Push, restoring each
// absorbed variable to being its own root again, in reverse order.
func (t *Table) Pop() {
	mark := t.marks[len(t.marks)-1]
	t.marks = t.marks[:len(t.marks)-1]
	for i := len(t.log) - 1; i >= mark; i-- {
		child := t.log[i]
		t.parent[child] = child
	}
	t.log = t.log[:mark]
}
