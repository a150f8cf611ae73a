package eval

import (
	"chessengine/board"
	"chessengine/internal/xmath"
)

// materialDiff returns White's material minus Black's, as a flat
// (untapered) term. Each piece contributes the average of its tuned
// MG/EG value: material itself isn't blended by game phase the way
// PST/pawn/king terms are, only the count of material left feeds the
// phase index.
func materialDiff(pos *board.Position, p *Params) int {
	diff := 0
	for pt := board.Pawn; pt <= board.Queen; pt++ {
		value := (p.PieceValueMG[pt] + p.PieceValueEG[pt]) / 2
		diff += value * (pos.PieceCount(board.White, pt) - pos.PieceCount(board.Black, pt))
	}
	return diff
}

// adjustmentsDiff returns the flat (untapered) material-combination
// term: bishop/knight/rook pair bonuses or penalties, and the
// per-pawn-count value adjustment to knights and rooks (knights gain,
// rooks lose value as pawns disappear).
func adjustmentsDiff(pos *board.Position, p *Params) int {
	diff := 0

	if pos.PieceCount(board.White, board.Bishop) >= 2 {
		diff += p.BishopPairMG
	}
	if pos.PieceCount(board.Black, board.Bishop) >= 2 {
		diff -= p.BishopPairMG
	}
	if pos.PieceCount(board.White, board.Knight) >= 2 {
		diff -= p.KnightPairPenaltyMG
	}
	if pos.PieceCount(board.Black, board.Knight) >= 2 {
		diff += p.KnightPairPenaltyMG
	}
	if pos.PieceCount(board.White, board.Rook) >= 2 {
		diff -= p.RookPairPenaltyMG
	}
	if pos.PieceCount(board.Black, board.Rook) >= 2 {
		diff += p.RookPairPenaltyMG
	}

	totalPawns := pos.PieceCount(board.White, board.Pawn) + pos.PieceCount(board.Black, board.Pawn)
	missingPawns := 16 - totalPawns

	knightAdj := missingPawns * p.KnightPerMissingPawnMG
	diff += knightAdj * (pos.PieceCount(board.White, board.Knight) - pos.PieceCount(board.Black, board.Knight))

	rookAdj := missingPawns * p.RookPerMissingPawnMG
	diff += rookAdj * (pos.PieceCount(board.White, board.Rook) - pos.PieceCount(board.Black, board.Rook))

	return diff
}

// nonPawnPhaseWeight is the per-piece weight used when computing the
// 0..256 phase index (total 24 at game start).
func nonPawnPhaseWeight(t board.PieceType) int {
	switch t {
	case board.Knight, board.Bishop:
		return 1
	case board.Rook:
		return 2
	case board.Queen:
		return 4
	default:
		return 0
	}
}

// phaseIndex returns a 0..256 phase index: 0 at full material (pure
// middlegame weight), 256 once all non-pawn material is off the board
// (pure endgame weight).
func phaseIndex(pos *board.Position) int {
	remaining := 0
	for _, c := range [2]board.Color{board.White, board.Black} {
		for pt := board.Knight; pt <= board.Queen; pt++ {
			remaining += nonPawnPhaseWeight(pt) * pos.PieceCount(c, pt)
		}
	}
	const totalPhase = 24
	remaining = xmath.Min(remaining, totalPhase)
	phase := 256 - remaining*256/totalPhase
	return xmath.Clamp(phase, 0, 256)
}
