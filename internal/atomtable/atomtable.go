// Package atomtable implements the engine's component C: the table of
// atoms over theory variables — equalities and (un)signed orderings —
// each hash-consed by (kind, left, right) exactly like the variable
// table's compound kinds, and each carrying the Boolean literal the SAT
// core uses to track the atom's current truth assignment.
package atomtable

import (
	"bvcore/internal/intern"
	"bvcore/internal/lit"
	"bvcore/internal/vartable"
)

// Kind distinguishes the three atom predicates.
type Kind uint8

const (
	KindEQ Kind = iota
	KindUGE
	KindSGE
)

func (k Kind) String() string {
	switch k {
	case KindEQ:
		return "EQ"
	case KindUGE:
		return "UGE"
	case KindSGE:
		return "SGE"
	default:
		return "?"
	}
}

// AtomID identifies an atom. 0 is reserved.
type AtomID uint32

// Atom is one row of the table.
type Atom struct {
	ID    AtomID
	Kind  Kind
	Left  vartable.VarID
	Right vartable.VarID
	Lit   lit.Lit
}

// Table hash-conses atoms and hands each a fresh Boolean literal on first
// construction.
type Table struct {
	atoms  []*Atom
	intern *intern.Table
}

// New returns an empty atom table.
func New() *Table {
	t := &Table{intern: intern.New()}
	t.atoms = append(t.atoms, nil) // reserve id 0
	return t
}

// Len returns the number of allocated atoms, including the reserved slot
// at index 0.
func (t *Table) Len() int { return len(t.atoms) }

// Get returns the descriptor for id.
func (t *Table) Get(id AtomID) *Atom { return t.atoms[id] }

type atomKey struct {
	t     *Table
	kind  Kind
	left  vartable.VarID
	right vartable.VarID
}

func (k atomKey) Hash() uint64 {
	h := intern.MixU32(uint64(k.kind)+1, uint32(k.left))
	return intern.MixU32(h, uint32(k.right))
}

func (k atomKey) Equal(id uint32) bool {
	a := k.t.atoms[id]
	return a.Kind == k.kind && a.Left == k.left && a.Right == k.right
}

// GetAtom returns the existing atom for (kind, x, y) if one was already
// built, allocating a fresh Boolean literal via freshLit on a miss. EQ
// atoms normalize operand order (lower VarID first) so that x=y and y=x
// intern to the same atom — mirroring get_bveq_atom's operand swap.
func (t *Table) GetAtom(kind Kind, x, y vartable.VarID, freshLit func() lit.Lit) AtomID {
	if kind == KindEQ && x > y {
		x, y = y, x
	}
	key := atomKey{t: t, kind: kind, left: x, right: y}
	return AtomID(t.intern.Intern(key, func() uint32 {
		a := &Atom{Kind: kind, Left: x, Right: y, Lit: freshLit()}
		a.ID = AtomID(len(t.atoms))
		t.atoms = append(t.atoms, a)
		return uint32(a.ID)
	}))
}

// Find reports the existing atom for (kind, x, y) without constructing a
// new one, mirroring find_bv_atom.
func (t *Table) Find(kind Kind, x, y vartable.VarID) (AtomID, bool) {
	if kind == KindEQ && x > y {
		x, y = y, x
	}
	id, ok := t.intern.Lookup(atomKey{t: t, kind: kind, left: x, right: y})
	return AtomID(id), ok
}

// Pop discards every atom with id >= keep.
func (t *Table) Pop(keep int) {
	for i := len(t.atoms) - 1; i >= keep; i-- {
		a := t.atoms[i]
		t.intern.Erase(atomKey{t: t, kind: a.Kind, left: a.Left, right: a.Right}.Hash(), uint32(a.ID))
	}
	t.atoms = t.atoms[:keep]
}
