package eval

import "chessengine/board"

// pst holds the generated piece-square tables for both colors, built
// once at startup from a small tunable set of base profiles and then
// flipped vertically for Black.
type pst struct {
	mg, eg [2][7][64]int
}

// buildPST generates White's tables from p's file/rank/center bases,
// per-piece multipliers, and per-piece weights, then derives Black's
// tables by vertically mirroring White's.
func buildPST(p *Params) *pst {
	t := &pst{}
	for pt := board.Pawn; pt <= board.King; pt++ {
		for sq := 0; sq < 64; sq++ {
			file, rank := sq&7, sq>>3
			mgRaw := p.FileBase[file]*p.FileMultiplierMG[pt] +
				p.RankBase[rank]*p.RankMultiplierMG[pt] +
				p.CenterBase[sq]*p.CenterMultiplierMG[pt]
			egRaw := p.FileBase[file]*p.FileMultiplierEG[pt] +
				p.RankBase[rank]*p.RankMultiplierEG[pt] +
				p.CenterBase[sq]*p.CenterMultiplierEG[pt]
			t.mg[board.White][pt][sq] = mgRaw * p.PieceWeightMG[pt] / 10
			t.eg[board.White][pt][sq] = egRaw * p.PieceWeightEG[pt] / 10
		}
	}
	for pt := board.Pawn; pt <= board.King; pt++ {
		for sq := 0; sq < 64; sq++ {
			mirror := mirrorVertical(sq)
			t.mg[board.Black][pt][sq] = t.mg[board.White][pt][mirror]
			t.eg[board.Black][pt][sq] = t.eg[board.White][pt][mirror]
		}
	}
	return t
}

func mirrorVertical(sq int) int {
	file, rank := sq&7, sq>>3
	return (7-rank)*8 + file
}
