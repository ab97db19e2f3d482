package vartable

import "bvcore/internal/lit"

// PseudoLits returns the per-bit pseudo-literal array for id, allocating it
// lazily via alloc on first use. The remap facade is the only intended
// caller; everyone else should treat bit-blasting state as opaque.
func (t *Table) PseudoLits(id VarID, alloc func(bits uint32) []lit.Lit) []lit.Lit {
	v := t.vars[id]
	if v.PseudoMap == nil {
		v.PseudoMap = alloc(v.Bits)
	}
	return v.PseudoMap
}

// HasPseudoLits reports whether id's pseudo-literal array has already been
// allocated, without forcing allocation.
func (t *Table) HasPseudoLits(id VarID) bool {
	return t.vars[id].PseudoMap != nil
}

// AttachEterm records the e-graph term id attaches to, per the e-graph
// facade's eterm_of/attach_eterm pair. Panics if id already carries a
// different live attachment.
func (t *Table) AttachEterm(id VarID, e ETermID) {
	if cur := t.vars[id].Eterm; cur != NoETerm && cur != e {
		panic("vartable: e-graph term attached twice to one variable")
	}
	t.vars[id].Eterm = e
}

// EtermOf returns id's attached e-graph term, or NoETerm if unattached.
func (t *Table) EtermOf(id VarID) ETermID {
	return t.vars[id].Eterm
}
