package tt

import (
	"testing"

	"chessengine/board"
)

func TestStoreThenProbeRoundTrips(t *testing.T) {
	table := New(4)
	move := board.Move{From: 12, To: 28}
	table.Store(0xABCD, move, 6, 37, BoundExact)

	got, found := table.Probe(0xABCD)
	if !found {
		t.Fatal("probe missed a just-stored entry")
	}
	if got.Move != move || got.Draft != 6 || got.Value != 37 || got.Bound != BoundExact {
		t.Errorf("probe returned %+v", got)
	}
}

func TestProbeMissReturnsNotFound(t *testing.T) {
	table := New(4)
	table.Store(0x1111, board.Move{}, 1, 0, BoundExact)
	if _, found := table.Probe(0x2222); found {
		t.Error("probe hit on a hash never stored")
	}
}

// TestDepthPreferredSlotResistsShallowerOverwrite checks the
// depth-preferred replacement rule directly: a shallower same-age
// store must not evict a deeper entry from the depth-preferred slot,
// even though the always-replace slot takes every store unconditionally.
func TestDepthPreferredSlotResistsShallowerOverwrite(t *testing.T) {
	table := New(4)
	deep := board.Move{From: 1, To: 2}
	shallow := board.Move{From: 3, To: 4}

	// Same bucket: bits=4 means mask 0xF, so these two hashes collide
	// by construction (identical low 4 bits, differing hash value).
	const h1, h2 = uint64(0x0005), uint64(0x1015)

	table.Store(h1, deep, 10, 100, BoundExact)
	table.Store(h2, shallow, 2, -100, BoundExact)

	got, found := table.Probe(h1)
	if !found || got.Move != deep || got.Draft != 10 {
		t.Errorf("depth-preferred slot lost the deeper entry: %+v found=%v", got, found)
	}

	// The always-replace slot took the shallow store unconditionally.
	got2, found2 := table.Probe(h2)
	if !found2 || got2.Move != shallow {
		t.Errorf("always-replace slot did not take the shallow store: %+v found=%v", got2, found2)
	}
}

// TestNewSearchAgesOutTheDepthPreferredSlot checks that once the age
// counter advances, a new store, even a shallower one, can finally
// take over a stale depth-preferred slot.
func TestNewSearchAgesOutTheDepthPreferredSlot(t *testing.T) {
	table := New(4)
	const h1, h2 = uint64(0x0005), uint64(0x1015)

	deep := board.Move{From: 1, To: 2}
	table.Store(h1, deep, 10, 100, BoundExact)

	table.NewSearch()
	shallow := board.Move{From: 3, To: 4}
	table.Store(h2, shallow, 1, -1, BoundExact)

	got, found := table.Probe(h2)
	if !found || got.Move != shallow {
		t.Errorf("depth-preferred slot should have aged out in favor of the new search's entry: %+v found=%v", got, found)
	}
}

func TestMateScoresAreClampedOnStore(t *testing.T) {
	table := New(4)
	move := board.Move{From: 5, To: 13}

	table.Store(0x9999, move, 4, Mate+7, BoundExact)
	got, _ := table.Probe(0x9999)
	if got.Value != Mate || got.Bound != BoundLower {
		t.Errorf("exact mate score not clamped: value=%d bound=%v", got.Value, got.Bound)
	}

	table.Store(0x8888, move, 4, Mate+7, BoundUpper)
	got2, _ := table.Probe(0x8888)
	if got2.Bound != BoundIgnore {
		t.Errorf("fail-low mate score should be marked ignore, got bound=%v", got2.Bound)
	}
}

func TestCutoffRules(t *testing.T) {
	exact := Entry{Draft: 8, Value: 15, Bound: BoundExact}
	if v, ok := Cutoff(exact, 6, -100, 100); !ok || v != 15 {
		t.Errorf("exact cutoff: got %d,%v", v, ok)
	}

	upper := Entry{Draft: 8, Value: -30, Bound: BoundUpper}
	if v, ok := Cutoff(upper, 6, -20, 100); !ok || v != -20 {
		t.Errorf("fail-low cutoff: got %d,%v", v, ok)
	}
	if _, ok := Cutoff(upper, 6, -40, 100); ok {
		t.Error("fail-low cutoff fired when stored value did not undercut alpha")
	}

	lower := Entry{Draft: 8, Value: 50, Bound: BoundLower}
	if v, ok := Cutoff(lower, 6, -100, 40); !ok || v != 40 {
		t.Errorf("fail-high cutoff: got %d,%v", v, ok)
	}

	shallow := Entry{Draft: 2, Value: 15, Bound: BoundExact}
	if _, ok := Cutoff(shallow, 6, -100, 100); ok {
		t.Error("cutoff fired from a shallower draft than requested")
	}

	ignore := Entry{Draft: 8, Value: 999, Bound: BoundIgnore}
	if _, ok := Cutoff(ignore, 6, -100, 100); ok {
		t.Error("ignore bound must never produce a score cutoff")
	}
}
