// Package tt implements the search's transposition table: a
// fixed-size, power-of-two bucket array where each bucket holds a
// depth-preferred slot and an always-replace slot. Mate scores are
// clamped to a fixed MATE bound at insert time rather than stored
// distance-sensitively, so a cached mate score never needs adjusting
// for how far it is from the current root.
package tt

import "chessengine/board"

// Bound classifies a stored value the way alpha-beta classifies a
// cutoff: exact (a full-width result), a lower bound (fail-high,
// beta cutoff), an upper bound (fail-low), or ignore, which is
// unusable for a score cutoff but whose move is still good for
// ordering.
type Bound int8

const (
	BoundExact Bound = iota
	BoundLower
	BoundUpper
	BoundIgnore
)

// Mate is the score magnitude that marks a forced mate: a score at or
// beyond this magnitude gets clamped before it's cached so
// that a mate-in-k score from one search depth never gets reused as a
// mate-in-(k') score at another.
const Mate = 30000

// Entry is one transposition-table record.
type Entry struct {
	Hash  uint64
	Move  board.Move
	Draft int
	Value int
	Bound Bound
	Age   uint32
}

type slot struct {
	entry Entry
	used  bool
}

type bucket struct {
	depthPreferred slot
	alwaysReplace  slot
}

// Table is the transposition table: a pre-allocated vector of 2^bits
// two-slot buckets, typically sized 19..21 bits.
type Table struct {
	buckets []bucket
	mask    uint64
	age     uint32
}

// New allocates a table with 2^bits buckets.
func New(bits uint) *Table {
	size := uint64(1) << bits
	return &Table{
		buckets: make([]bucket, size),
		mask:    size - 1,
	}
}

// NewSearch advances the age counter. The driver calls this once per
// root invocation, so age increases monotonically across root
// searches.
func (t *Table) NewSearch() {
	t.age++
}

// Clear drops every stored entry and resets the age counter, leaving
// the allocated backing array in place.
func (t *Table) Clear() {
	for i := range t.buckets {
		t.buckets[i] = bucket{}
	}
	t.age = 0
}

// Probe looks up hash. It tries the depth-preferred slot first,
// refreshing that slot's age on a hit (since that's what marks it
// "recent" against the always-replace slot's eviction indifference),
// and only falls back to the always-replace slot on a miss.
func (t *Table) Probe(hash uint64) (Entry, bool) {
	b := &t.buckets[hash&t.mask]
	if b.depthPreferred.used && b.depthPreferred.entry.Hash == hash {
		b.depthPreferred.entry.Age = t.age
		return b.depthPreferred.entry, true
	}
	if b.alwaysReplace.used && b.alwaysReplace.entry.Hash == hash {
		return b.alwaysReplace.entry, true
	}
	return Entry{}, false
}

// Store inserts an entry for hash, first clamping an out-of-range mate
// score to a distance-independent bound, then writing it into the
// always-replace slot unconditionally and into the
// depth-preferred slot only when that slot is stale (an older age) or
// no shallower than the draft already there.
func (t *Table) Store(hash uint64, move board.Move, draft, value int, bound Bound) {
	if value >= Mate {
		if bound == BoundUpper {
			bound = BoundIgnore
		} else {
			bound = BoundLower
			value = Mate
		}
	} else if value <= -Mate {
		if bound == BoundLower {
			bound = BoundIgnore
		} else {
			bound = BoundUpper
			value = -Mate
		}
	}

	entry := Entry{Hash: hash, Move: move, Draft: draft, Value: value, Bound: bound, Age: t.age}
	b := &t.buckets[hash&t.mask]

	b.alwaysReplace.entry = entry
	b.alwaysReplace.used = true

	if !b.depthPreferred.used || b.depthPreferred.entry.Age < t.age || draft >= b.depthPreferred.entry.Draft {
		b.depthPreferred.entry = entry
		b.depthPreferred.used = true
	}
}

// Cutoff applies the probe-site cutoff rules to an entry already
// known to match the current hash. ok is true only when the
// stored value can stand in for a full search at this draft and
// window; callers should still use e.Move for ordering even when ok is
// false (unless e.Bound is BoundIgnore, which only ever contributes a
// move, never a score).
func Cutoff(e Entry, draft, alpha, beta int) (value int, ok bool) {
	if e.Draft < draft {
		return 0, false
	}
	switch e.Bound {
	case BoundExact:
		return e.Value, true
	case BoundUpper:
		if e.Value <= alpha {
			return alpha, true
		}
	case BoundLower:
		if e.Value >= beta {
			return beta, true
		}
	}
	return 0, false
}
