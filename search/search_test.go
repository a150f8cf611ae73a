package search

import (
	"testing"

	"chessengine/board"
	"chessengine/eval"
)

func newTestEngine() *Engine {
	return NewEngine(16, eval.New(eval.Default()))
}

func mustParse(t *testing.T, fen string) *board.Position {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return pos
}

func TestSearchReturnsSentryWhenMated(t *testing.T) {
	e := newTestEngine()
	pos := mustParse(t, "8/8/8/5K1k/8/8/8/7R b - -")
	move, _ := e.Search(pos, Budget{MaxDepth: 3}, nil, nil)
	if !move.IsSentry() {
		t.Errorf("Search on a mated position returned %v, want the sentry", move)
	}
}

// TestFindsFine70KingMove checks the canonical Fine #70 zugzwang
// position: from here the only winning try is Ka1-b1.
func TestFindsFine70KingMove(t *testing.T) {
	e := newTestEngine()
	pos := mustParse(t, "8/k7/3p4/p2P1p2/P2P1P2/8/8/K7 w - -")
	move, _ := e.Search(pos, Budget{MaxDepth: 8}, nil, nil)
	want := pos.ParseCoordMove("a1b1")
	if move != want {
		t.Errorf("Fine #70: got %v, want %v (a1b1)", move, want)
	}
}

// TestDrawnRookVsQueenPerpetualScoresZero checks that a known drawn
// rook-vs-queen perpetual scores exactly 0 at depth 9.
func TestDrawnRookVsQueenPerpetualScoresZero(t *testing.T) {
	e := newTestEngine()
	pos := mustParse(t, "8/6pk/1p3pQp/q4P2/2PP4/r1PKP2P/p7/R7 b - - 14 55")
	_, score := e.Search(pos, Budget{MaxDepth: 9}, nil, nil)
	if score != 0 {
		t.Errorf("drawn perpetual: score = %d, want 0", score)
	}
}

func TestSingleLegalMoveStopsByDepthFive(t *testing.T) {
	// Black king on h8 is in double check from Qa1 and Rh1, which also
	// cover g7 and h7, leaving exactly one legal move (g8).
	pos := mustParse(t, "7k/8/8/8/8/8/8/Q3K2R b - -")
	legal := pos.Moves()
	if len(legal) != 1 {
		t.Skipf("fixture has %d legal moves, want exactly 1; adjust fixture", len(legal))
	}

	e := newTestEngine()
	var lastDepth int
	e.Search(pos, Budget{MaxDepth: 40}, nil, func(info Info) {
		lastDepth = info.Depth
	})
	if lastDepth > singleLegalMoveStopDepth {
		t.Errorf("iterative deepening ran to depth %d with one legal move, want <= %d", lastDepth, singleLegalMoveStopDepth)
	}
}

type stopAfterNCalls struct {
	calls     int
	stopAfter int
}

func (s *stopAfterNCalls) Stopped() bool {
	s.calls++
	return s.calls > s.stopAfter
}
func (s *stopAfterNCalls) InputWaiting() bool { return false }

func TestMidSearchStopReturnsLastCompletedIteration(t *testing.T) {
	e := newTestEngine()
	pos := mustParse(t, board.StartFEN)

	stopper := &stopAfterNCalls{stopAfter: 3}
	move, _ := e.Search(pos, Budget{MaxDepth: 40, Stopper: stopper}, nil, nil)
	if move.IsSentry() {
		t.Error("a stopped search with at least one completed iteration must not return the sentry")
	}
	if !pos.IsLegal(move) {
		t.Errorf("returned move %v is not legal in the root position", move)
	}
}

func TestExtensionFormulaNeverExceedsDraft(t *testing.T) {
	for draft := 1; draft <= 40; draft++ {
		got := newDraft(draft, true, true)
		if got > draft {
			t.Errorf("draft=%d: newDraft = %d, exceeds draft = %d", draft, got, draft)
		}
	}
}

func TestKillerUpdatePromotesExistingPrimary(t *testing.T) {
	e := newTestEngine()
	m1 := board.Move{From: 8, To: 16}
	m2 := board.Move{From: 9, To: 17}

	e.updateKiller(3, m1)
	e.updateKiller(3, m2)
	if e.killers[3][0] != m2 || e.killers[3][1] != m1 {
		t.Errorf("killers[3] = %v, %v; want %v, %v", e.killers[3][0], e.killers[3][1], m2, m1)
	}

	e.updateKiller(3, m2)
	if e.killers[3][0] != m2 || e.killers[3][1] != m1 {
		t.Error("re-inserting the existing primary killer should not shuffle secondary")
	}
}

func TestHistoryTableHalvesPastThreshold(t *testing.T) {
	e := newTestEngine()
	e.history[0][0] = historyMaxVal
	e.updateHistory(0, 0, 40*Ply)
	if e.history[0][0] >= historyMaxVal {
		t.Errorf("history[0][0] = %d, expected it to have been halved below historyMaxVal", e.history[0][0])
	}
}
