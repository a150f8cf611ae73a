// Package search implements the alpha-beta negamax core: move
// ordering, quiescence, principal-variation search with aspiration
// windows, fractional-ply extensions, and the iterative-deepening
// driver. It deliberately omits null-move pruning, late-move
// reductions, and razoring; the check/capture extension formula in
// extensions.go is the only depth-adjustment heuristic in play.
package search

import (
	"chessengine/board"
	"chessengine/eval"
	"chessengine/tt"
)

// Ply is the fractional-depth unit: draft and extensions are expressed
// in multiples of Ply so a check extension can add less than one full
// ply.
const Ply = 4

// Inf is larger than any real evaluation score, including Mate.
const Inf = 32500

// Mate mirrors tt.Mate: the score magnitude a forced mate carries in
// the search, before transposition storage clamps it to a
// distance-independent bound.
const Mate = tt.Mate

// MaxPly bounds recursion frames and the killer-move table.
const MaxPly = 128

// Stopper is the cooperative-yield interface the controller hands the
// search: Stopped is polled every nodesBetweenChecks expansions, and
// whenever InputWaiting reports input on the controller's line the
// driver has to pause and run a bounded-work boundary to return early.
// Both calls must be non-blocking.
type Stopper interface {
	Stopped() bool
	InputWaiting() bool
}

const nodesBetweenChecks = 2048

// Engine bundles everything the search needs that outlives a single
// call: the transposition table, killer/history tables, the
// evaluator, node counter and stop flag. One Engine serves an entire
// game; each Search call resets the per-root bookkeeping (TT age, node
// count, stop flag) and rebuilds the root move list for its position,
// while the killer/history tables and the transposition table carry
// over between calls.
type Engine struct {
	TT      *tt.Table
	Eval    *eval.Evaluator
	stop    bool
	nodes   uint64
	stopper Stopper
	nodeCap uint64
	early   func() bool

	killers [MaxPly + 1][2]board.Move
	history [12][64]int

	root *rootList
}

// Nodes returns the node count accumulated since the last Search call
// started.
func (e *Engine) Nodes() uint64 { return e.nodes }

// NewEngine builds an Engine with a fresh transposition table of
// 2^bits buckets and the given evaluator.
func NewEngine(bits uint, evaluator *eval.Evaluator) *Engine {
	return &Engine{TT: tt.New(bits), Eval: evaluator}
}

// requestStop cooperatively marks the search to unwind at its next
// bounded-work boundary.
func (e *Engine) requestStop() { e.stop = true }

// historyMaxVal must stay under SortKiller so a maxed-out history
// score can never outrank a killer move.
const historyMaxVal = SortKiller - 1

// updateKiller records m as the primary killer at ply, demoting the
// previous primary to secondary unless m already is the primary.
func (e *Engine) updateKiller(ply int, m board.Move) {
	if e.killers[ply][0] == m {
		return
	}
	e.killers[ply][1] = e.killers[ply][0]
	e.killers[ply][0] = m
}

// updateHistory increments history[piece-id][to] by depth^2 (depth in
// full plies, draft/Ply), halving the whole table, with rounding, if
// any entry would cross historyMaxVal. pieceID comes from
// board.Piece.ID(), dense in [0, 12).
func (e *Engine) updateHistory(pieceID int, to board.Square, draft int) {
	depth := draft / Ply
	if depth < 1 {
		depth = 1
	}
	e.history[pieceID][to] += depth * depth
	if e.history[pieceID][to] > historyMaxVal {
		e.halveHistory()
	}
}

func (e *Engine) halveHistory() {
	for piece := range e.history {
		for to := range e.history[piece] {
			e.history[piece][to] = (e.history[piece][to] + 1) / 2
		}
	}
}
