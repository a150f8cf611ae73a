package search

import (
	"chessengine/board"
	"chessengine/tt"
)

// rootList holds the search's persistent root move list: built once
// per new root position, then rotated, never regenerated, across
// iterative-deepening iterations so each iteration starts from the
// previous one's best guess.
type rootList struct {
	moves []board.Move
}

// newRootList builds the initial ordering for pos: hash move first (if
// the transposition table has one), then MVV/LVA-scored captures and
// promotions, then the quiet moves, which all score zero. The
// selection sort does not keep equal-scored moves in generation order.
func newRootList(pos *board.Position, e *Engine) *rootList {
	all := pos.Moves()
	var hashMove board.Move
	if entry, found := e.TT.Probe(pos.Hash()); found {
		hashMove = entry.Move
	}

	ordered := make([]board.Move, 0, len(all))
	if !hashMove.IsSentry() && pos.IsLegal(hashMove) {
		ordered = append(ordered, hashMove)
	}

	scored := make([]board.Move, 0, len(all))
	for _, m := range all {
		if m == hashMove {
			continue
		}
		scored = append(scored, m)
	}
	scores := make([]int, len(scored))
	for i, m := range scored {
		if !m.IsQuiet() {
			scores[i] = e.scoreMove(pos, m, 0)
		}
	}
	for i := 0; i < len(scored); i++ {
		best := i
		for j := i + 1; j < len(scored); j++ {
			if scores[j] > scores[best] {
				best = j
			}
		}
		scored[i], scored[best] = scored[best], scored[i]
		scores[i], scores[best] = scores[best], scores[i]
	}
	ordered = append(ordered, scored...)
	return &rootList{moves: ordered}
}

// rotateToFront moves m to the head of the list, preserving the
// relative order of everything else.
func (r *rootList) rotateToFront(m board.Move) {
	idx := -1
	for i, cand := range r.moves {
		if cand == m {
			idx = i
			break
		}
	}
	if idx <= 0 {
		return
	}
	copy(r.moves[1:idx+1], r.moves[:idx])
	r.moves[0] = m
}

// rootResult is what one call to abRoot hands back to the
// iterative-deepening driver.
type rootResult struct {
	score int
	move  board.Move
}

// abRoot is the root-ply variant of ab: it walks e.root instead of a
// move provider, never treats the root position itself as a
// repetition or fifty-move draw (the engine must answer with a move
// even from a position a controller might also call drawn), and
// rotates the iteration's best move to the front of the list once
// found.
func (e *Engine) abRoot(pos *board.Position, alpha, beta, draft int) rootResult {
	inCheck := pos.InCheck(pos.Side())
	p := &path{}

	best := board.Sentry
	bestValue := -Inf
	first := true

	for _, m := range e.root.moves {
		child, ok := pos.AfterMove(m)
		if !ok {
			continue
		}

		newDft := newDraft(draft, inCheck, m.IsCapture())

		var x int
		if first {
			x = -e.ab(child, -beta, -alpha, 1, newDft, p)
			first = false
		} else {
			x = -e.ab(child, -alpha-1, -alpha, 1, newDft, p)
			if x > alpha && x < beta {
				x = -e.ab(child, -beta, -alpha, 1, newDft, p)
			}
		}
		if e.stop {
			return rootResult{score: bestValue, move: best}
		}

		if x > bestValue {
			bestValue = x
			best = m
		}
		if x > alpha {
			alpha = x
			e.root.rotateToFront(m)
			if x >= beta {
				break
			}
		}
	}

	if !best.IsSentry() && !e.stop {
		bound := tt.BoundExact
		if bestValue >= beta {
			bound = tt.BoundLower
		} else if bestValue <= alpha && alpha > -Inf {
			bound = tt.BoundUpper
		}
		e.TT.Store(pos.Hash(), best, draft, bestValue, bound)
	}
	return rootResult{score: bestValue, move: best}
}
