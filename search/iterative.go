package search

import "chessengine/board"

// Budget bounds one Search call: a depth cap, an optional node cap,
// an optional early-exit predicate, and the Stopper the controller
// uses for clock/input polling. A zero MaxDepth means "use a large
// default".
type Budget struct {
	MaxDepth int
	NodeCap  uint64
	EarlyExit func() bool
	Stopper  Stopper
}

const defaultMaxDepth = 64

// singleLegalMoveStopDepth is how deep a forced-move position still
// deepens before giving up: there's only one legal reply, so nothing
// past a shallow confirmation depth changes the outcome.
const singleLegalMoveStopDepth = 5

// Info is one iterative-deepening progress line, emitted on every
// completed iteration for a "depth score centiseconds nodes <pv...>"
// style reply.
type Info struct {
	Depth        int
	Score        int
	Centiseconds int64
	Nodes        uint64
	PV           []board.Move
}

// Search runs iterative deepening from pos out to budget.MaxDepth (or
// defaultMaxDepth), returning the best move found and its score. onInfo
// is called once per completed iteration with progress info; pass nil to
// skip reporting. elapsedCentiseconds is supplied by the caller so
// this package never touches a wall clock itself, keeping the search
// tree free of wall-clock-dependent behavior.
func (e *Engine) Search(pos *board.Position, budget Budget, elapsedCentiseconds func() int64, onInfo func(Info)) (board.Move, int) {
	e.stop = false
	e.nodes = 0
	e.nodeCap = budget.NodeCap
	e.early = budget.EarlyExit
	e.stopper = budget.Stopper
	e.TT.NewSearch()

	maxDepth := budget.MaxDepth
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	legalAtRoot := pos.Moves()
	if len(legalAtRoot) == 0 {
		return board.Sentry, 0
	}

	e.root = newRootList(pos, e)

	var lastMove board.Move = board.Sentry
	var lastScore int
	haveCompleted := false

	alpha, beta := -Inf, Inf
	window := 50

	for depth := 1; depth <= maxDepth; depth++ {
		draft := depth * Ply

		result := e.abRoot(pos, alpha, beta, draft)

		if e.stop {
			break
		}

		if result.score <= alpha || result.score >= beta {
			alpha, beta = -Inf, Inf
			result = e.abRoot(pos, alpha, beta, draft)
			if e.stop {
				break
			}
		}

		lastMove = result.move
		lastScore = result.score
		haveCompleted = true

		alpha = result.score - window
		beta = result.score + window

		if onInfo != nil {
			var cs int64
			if elapsedCentiseconds != nil {
				cs = elapsedCentiseconds()
			}
			onInfo(Info{
				Depth:        depth,
				Score:        result.score,
				Centiseconds: cs,
				Nodes:        e.nodes,
				PV:           e.principalVariation(pos, depth),
			})
		}

		if result.score >= Mate || result.score <= -Mate {
			break
		}
		if len(legalAtRoot) == 1 && depth >= singleLegalMoveStopDepth {
			break
		}
		if budget.EarlyExit != nil && budget.EarlyExit() {
			break
		}
	}

	if !haveCompleted {
		return legalAtRoot[0], 0
	}
	return lastMove, lastScore
}
