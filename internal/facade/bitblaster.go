package facade

// BitBlaster is the bit-blaster facade: a lazily-constructed handle the
// engine acquires only once propagation actually needs it, torn down on
// reset or delete. Full bit-blasting logic is outside this engine's
// scope (spec.md's Non-goals); this package only carries the lifecycle
// bv_solver_reset/delete_bv_solver drive ("if solver->blaster != NULL,
// delete_bit_blaster(solver->blaster)") so a real bit-blaster can be
// plugged in later without reshaping the engine around it.
type BitBlaster struct {
	active bool
}

// NewBitBlaster returns a facade with no backing blaster allocated yet.
func NewBitBlaster() *BitBlaster {
	return &BitBlaster{}
}

// Ensure lazily marks the blaster active, returning whether this call is
// what activated it (false if it was already active).
func (bb *BitBlaster) Ensure() (activated bool) {
	if bb.active {
		return false
	}
	bb.active = true
	return true
}

// Active reports whether the blaster has been constructed.
func (bb *BitBlaster) Active() bool { return bb.active }

// Teardown releases the blaster, matching delete_bit_blaster's call site
// in bv_solver_reset and delete_bv_solver. A no-op if never activated.
func (bb *BitBlaster) Teardown() {
	bb.active = false
}
