// Package intern implements the generic hash-cons table described in the
// engine's component A: a map from a transient "hash object" — something
// that knows its own hash, can test itself against an existing id, and can
// build a new id on a miss — to a uint32 id, in amortized O(1).
//
// Per the design notes, a Key is always constructed on the stack at the
// call site; this package holds no process-wide singleton hash objects to
// rebind between lookups.
package intern

// Key is the hash object contract: a transient, call-site-local value
// describing the compound term being looked up.
type Key interface {
	// Hash returns the structural hash of the term this key describes.
	Hash() uint64
	// Equal reports whether the already-interned id has the same
	// structural content as this key.
	Equal(id uint32) bool
}

// Table maps hashes to candidate ids sharing that hash (a hash bucket),
// resolving collisions via Key.Equal.
type Table struct {
	buckets map[uint64][]uint32
}

// New returns an empty intern table.
func New() *Table {
	return &Table{buckets: make(map[uint64][]uint32)}
}

// Lookup returns the existing id for key if one is recorded. It never
// inserts; callers that want insert-on-miss use Intern.
func (t *Table) Lookup(key Key) (uint32, bool) {
	for _, id := range t.buckets[key.Hash()] {
		if key.Equal(id) {
			return id, true
		}
	}
	return 0, false
}

// Intern returns the id for key, building a fresh one via build on a miss
// and recording it under key's hash.
func (t *Table) Intern(key Key, build func() uint32) uint32 {
	if id, ok := t.Lookup(key); ok {
		return id
	}
	id := build()
	t.Insert(key.Hash(), id)
	return id
}

// Insert records that id is reachable under hash, without consulting or
// invoking a builder. Used when the caller has already decided the id
// (e.g. replaying a known structural hash during a rebuild).
func (t *Table) Insert(hash uint64, id uint32) {
	t.buckets[hash] = append(t.buckets[hash], id)
}

// Erase removes the (hash, id) pair without disturbing any other entry
// sharing that hash bucket. Used by pop to retract ids that are about to
// be tail-truncated from the hosting table.
func (t *Table) Erase(hash uint64, id uint32) {
	bucket := t.buckets[hash]
	for i, candidate := range bucket {
		if candidate == id {
			bucket[i] = bucket[len(bucket)-1]
			t.buckets[hash] = bucket[:len(bucket)-1]
			return
		}
	}
}

// mix64 is a Jenkins-style avalanching mix, used throughout vartable and
// atomtable to combine operand ids, coefficients, and bit widths into a
// single hash value.
func mix64(h uint64) uint64 {
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}

// Mix folds a new 64-bit word into a running hash accumulator.
func Mix(acc uint64, word uint64) uint64 {
	return mix64(acc ^ mix64(word+0x9e3779b97f4a7c15))
}

// MixU32 is a convenience wrapper for 32-bit words (ids, widths, exponents).
func MixU32(acc uint64, word uint32) uint64 {
	return Mix(acc, uint64(word))
}
