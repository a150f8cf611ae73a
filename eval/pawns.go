package eval

import "chessengine/board"

type pawnInfo struct {
	file, rank int
}

func collectPawns(pos *board.Position, c board.Color) []pawnInfo {
	var out []pawnInfo
	for sq := board.Square(0); sq < 64; sq++ {
		p := pos.At(sq)
		if !p.IsEmpty() && p.Color() == c && p.Type() == board.Pawn {
			out = append(out, pawnInfo{file: sq.File(), rank: sq.AbsRank()})
		}
	}
	return out
}

func fileHasPawn(pawns []pawnInfo, file int) bool {
	for _, pw := range pawns {
		if pw.file == file {
			return true
		}
	}
	return false
}

// pawnStructureDiff classifies every pawn as passed, opposed, doubled,
// or weak (isolated or backward) and returns White's contribution
// minus Black's, tapered mg/eg.
func pawnStructureDiff(pos *board.Position, p *Params) (mg, eg int) {
	for _, c := range [2]board.Color{board.White, board.Black} {
		sign := 1
		if c == board.Black {
			sign = -1
		}
		opp := c.Opponent()
		own := collectPawns(pos, c)
		enemy := collectPawns(pos, opp)

		for _, pw := range own {
			relRank := pw.rank
			if c == board.Black {
				relRank = 7 - pw.rank
			}

			doubled := false
			for _, other := range own {
				if other != pw && other.file == pw.file {
					doubled = true
					break
				}
			}

			opposed := false
			for _, e := range enemy {
				if e.file == pw.file && sign*(e.rank-pw.rank) > 0 {
					opposed = true
					break
				}
			}

			passed := true
			for _, e := range enemy {
				if (e.file == pw.file || e.file == pw.file-1 || e.file == pw.file+1) && sign*(e.rank-pw.rank) > 0 {
					passed = false
					break
				}
			}

			isolated := !fileHasPawn(own, pw.file-1) && !fileHasPawn(own, pw.file+1)

			supported := false
			for _, other := range own {
				if (other.file == pw.file-1 || other.file == pw.file+1) && other.rank == pw.rank-sign {
					supported = true
					break
				}
			}

			backward := !isolated && opposed && !supported && !hasDefenderBehind(own, pw, sign)

			weak := isolated || backward

			if passed {
				mg += sign * p.PassedPawnRankMG[relRank]
				eg += sign * p.PassedPawnRankEG[relRank]
				if supported {
					mg += sign * p.PassedPawnSupportedBonus
					eg += sign * p.PassedPawnSupportedBonus
				}
			}
			if doubled {
				mg -= sign * p.DoubledPawnPenaltyMG
				eg -= sign * p.DoubledPawnPenaltyEG
			}
			if weak {
				penalty := p.WeakPawnFilePenaltyMG[pw.file]
				if isOpenFile(pos, pw.file) {
					penalty += p.WeakPawnOpenFileExtraMG
				}
				mg -= sign * penalty
			}
		}
	}
	return mg, eg
}

// hasDefenderBehind reports whether an own pawn on an adjacent file
// sits level with or behind pw (relative to the direction of travel
// sign), which is enough to eventually support pw's advance.
func hasDefenderBehind(own []pawnInfo, pw pawnInfo, sign int) bool {
	for _, other := range own {
		if other == pw {
			continue
		}
		if (other.file == pw.file-1 || other.file == pw.file+1) && sign*(pw.rank-other.rank) >= 0 {
			return true
		}
	}
	return false
}

func isOpenFile(pos *board.Position, file int) bool {
	for sq := board.Square(0); sq < 64; sq++ {
		if sq.File() != file {
			continue
		}
		if p := pos.At(sq); !p.IsEmpty() && p.Type() == board.Pawn {
			return false
		}
	}
	return true
}
