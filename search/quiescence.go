package search

import "chessengine/board"

// seePruneMargin is how far a capture's static-exchange-evaluation
// value may drop below even before it gets skipped in quiescence.
const seePruneMargin = -50

// quiesce is the depth-unlimited, capture-only negamax that settles
// tactical sequences before a leaf score is trusted: the stand-pat
// static evaluation anchors the search (a side always
// has the option of not capturing), and only captures and promotions
// are explored from there, in MVV/LVA order, with the same cutoff
// logic as the full search. Nothing is written to the transposition
// table from here.
func (e *Engine) quiesce(pos *board.Position, alpha, beta, ply int) int {
	e.nodes++
	if e.nodes%nodesBetweenChecks == 0 && e.stopper != nil && (e.stopper.Stopped() || e.stopper.InputWaiting()) {
		e.requestStop()
	}
	if e.stop {
		return 0
	}

	standPat := e.Eval.Evaluate(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	inCheck := pos.InCheck(pos.Side())

	captures := pos.Captures()
	scores := make([]int, len(captures))
	for i, m := range captures {
		scores[i] = e.scoreMove(pos, m, ply)
	}

	for i := 0; i < len(captures); i++ {
		best := i
		for j := i + 1; j < len(captures); j++ {
			if scores[j] > scores[best] {
				best = j
			}
		}
		captures[i], captures[best] = captures[best], captures[i]
		scores[i], scores[best] = scores[best], scores[i]

		// A capture that loses material even after every recapture is
		// never worth entering quiescence for, unless the side to move
		// is in check and has nothing better to try.
		if !inCheck && !captures[i].IsPromotion() && pos.SEE(captures[i]) < seePruneMargin {
			continue
		}

		child, ok := pos.AfterMove(captures[i])
		if !ok {
			continue
		}
		score := -e.quiesce(child, -beta, -alpha, ply+1)
		if e.stop {
			return 0
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}
