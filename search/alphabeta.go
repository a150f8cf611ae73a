package search

import (
	"chessengine/board"
	"chessengine/tt"
)

// path is the repetition stack the recursion threads through: every
// hash visited on the current line, root first, so ab can detect a
// repeated position without re-walking ancestor Position values.
type path struct {
	hashes []uint64
}

func (p *path) push(h uint64) { p.hashes = append(p.hashes, h) }
func (p *path) pop()          { p.hashes = p.hashes[:len(p.hashes)-1] }

func (p *path) repeated(h uint64) bool {
	count := 0
	for _, seen := range p.hashes {
		if seen == h {
			count++
			if count >= 2 {
				return true
			}
		}
	}
	return false
}

// checkStop polls the cooperative-yield conditions every
// nodesBetweenChecks expansions and latches e.stop if any fire.
func (e *Engine) checkStop() {
	if e.stop {
		return
	}
	if e.nodeCap != 0 && e.nodes >= e.nodeCap {
		e.requestStop()
		return
	}
	if e.nodes%nodesBetweenChecks != 0 {
		return
	}
	if e.stopper != nil && (e.stopper.Stopped() || e.stopper.InputWaiting()) {
		e.requestStop()
		return
	}
	if e.early != nil && e.early() {
		e.requestStop()
	}
}

// ab is the alpha-beta negamax core. The returned value is
// meaningless when e.stop is set on return; callers above the
// iteration boundary must discard it.
func (e *Engine) ab(pos *board.Position, alpha, beta, ply, draft int, p *path) int {
	e.nodes++
	e.checkStop()
	if e.stop {
		return 0
	}

	if draft < Ply {
		return e.quiesce(pos, alpha, beta, ply)
	}

	h := pos.Hash()
	p.push(h)
	defer p.pop()

	if p.repeated(h) || pos.HalfmoveClock() >= 100 {
		return 0
	}

	var hashMove board.Move
	if entry, found := e.TT.Probe(h); found {
		if value, ok := tt.Cutoff(entry, draft, alpha, beta); ok {
			return value
		}
		hashMove = entry.Move
	}

	inCheck := pos.InCheck(pos.Side())
	prov := newProvider(pos, e, ply, hashMove)

	best := board.Sentry
	bound := tt.BoundUpper
	bestValue := -Inf
	legalSeen := false
	first := true

	for {
		m, ok := prov.Next()
		if !ok {
			break
		}
		child, ok := pos.AfterMove(m)
		if !ok {
			continue
		}
		legalSeen = true

		// Shallow losing captures almost never recover, so skip
		// recursing into them once the remaining draft is close enough
		// to quiescence that they'd just be re-examined (and
		// re-rejected) there anyway. legalSeen is already latched, so
		// a position where every move gets pruned this way still
		// correctly falls through as "searched, nothing improved
		// alpha" rather than as stalemate.
		if !first && !inCheck && draft <= 2*Ply && m.IsCapture() && !m.IsPromotion() && pos.SEE(m) < seePruneMargin {
			continue
		}

		newDft := newDraft(draft, inCheck, m.IsCapture())

		var x int
		if first {
			x = -e.ab(child, -beta, -alpha, ply+1, newDft, p)
			first = false
		} else {
			x = -e.ab(child, -alpha-1, -alpha, ply+1, newDft, p)
			if x > alpha && x < beta {
				x = -e.ab(child, -beta, -alpha, ply+1, newDft, p)
			}
		}
		if e.stop {
			return 0
		}

		if x > bestValue {
			bestValue = x
			best = m
		}
		if x > alpha {
			alpha = x
			if x >= beta {
				bound = tt.BoundLower
				if m.IsQuiet() {
					e.updateKiller(ply, m)
					e.updateHistory(pos.At(m.From).ID(), m.To, draft)
				}
				break
			}
			bound = tt.BoundExact
		}
	}

	if !legalSeen {
		if inCheck {
			return -Inf + ply
		}
		return 0
	}

	if !e.stop {
		e.TT.Store(h, best, draft, bestValue, bound)
	}
	if bound == tt.BoundLower {
		return beta
	}
	return alpha
}
