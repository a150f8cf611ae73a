package search

import "chessengine/board"

// Scoring constants: chosen so any capture or promotion outranks any
// quiet move, and any killer outranks any history-ranked quiet.
const (
	SortCapture = 1 << 20
	SortKiller  = 1 << 16
	SortKiller2 = SortKiller - 1
)

// pieceValue is the material value used by MVV/LVA and promotion
// scoring; the endgame table doubles as a reasonable flat scale since
// ordering only needs a consistent ranking, not a tuned evaluation.
func pieceValue(t board.PieceType) int {
	return t.MaterialEG()
}

// scoreMove computes the non-root ordering score for one candidate
// move, given the position it's about to be played in and the
// searching Engine's killer/history state at ply.
func (e *Engine) scoreMove(pos *board.Position, m board.Move, ply int) int {
	if m.IsCapture() {
		victim := capturedPieceType(pos, m)
		attacker := pos.At(m.From).Type()
		score := SortCapture + (pieceValue(victim) << 8) - pieceValue(attacker)
		if promo := m.PromotionType(); promo != board.NoPieceType {
			score += pieceValue(promo)
		}
		return score
	}
	if promo := m.PromotionType(); promo != board.NoPieceType {
		return SortCapture + pieceValue(promo)
	}
	if m == e.killers[ply][0] {
		return SortKiller
	}
	if m == e.killers[ply][1] {
		return SortKiller2
	}
	return e.history[pos.At(m.From).ID()][m.To]
}

// capturedPieceType returns the type of piece m captures. En-passant
// captures don't have a victim sitting on m.To, so that case is
// special-cased to Pawn (the only piece en passant ever captures).
func capturedPieceType(pos *board.Position, m board.Move) board.PieceType {
	if m.Flags&board.FlagEnPassant != 0 {
		return board.Pawn
	}
	return pos.At(m.To).Type()
}
