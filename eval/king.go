package eval

import "chessengine/board"

// kingShieldMG scores the pawn shield directly in front of a king on
// kingSq for color c: a pawn on the shield's first row outranks one on
// the second row, which outranks nothing. Middlegame only; king
// shelter stops mattering once material thins out for the endgame.
func kingShieldMG(pos *board.Position, c board.Color, kingSq board.Square, p *Params) int {
	file := kingSq.File()
	rank := kingSq.AbsRank()
	total := 0
	for _, f := range [3]int{file - 1, file, file + 1} {
		if f < 0 || f > 7 {
			continue
		}
		total += shieldFileScore(pos, c, f, rank, p)
	}
	return total
}

// shieldFileScore looks at the two squares directly ahead of the king
// on file f and scores whichever friendly pawn, if any, occupies them.
func shieldFileScore(pos *board.Position, c board.Color, f, kingRank int, p *Params) int {
	fwd := 1
	if c == board.Black {
		fwd = -1
	}
	firstRank := kingRank + fwd
	secondRank := kingRank + 2*fwd
	if firstRank >= 0 && firstRank <= 7 && friendlyPawn(pos, c, board.NewSquare(f, firstRank)) {
		return p.KingShieldFirstRow
	}
	if secondRank >= 0 && secondRank <= 7 && friendlyPawn(pos, c, board.NewSquare(f, secondRank)) {
		return p.KingShieldSecondRow
	}
	return 0
}

func friendlyPawn(pos *board.Position, c board.Color, sq board.Square) bool {
	piece := pos.At(sq)
	return !piece.IsEmpty() && piece.Color() == c && piece.Type() == board.Pawn
}

// castledKingSquare returns where c's king would land after castling
// on the given side ('K'/'Q' for White, 'k'/'q' for Black rights).
func castledKingSquare(c board.Color, kingside bool) board.Square {
	rank := 0
	if c == board.Black {
		rank = 7
	}
	file := 2
	if kingside {
		file = 6
	}
	return board.NewSquare(file, rank)
}

// kingSafetyDiff returns White's middlegame king-shield score minus
// Black's. If a color still holds a castling right, the shelter at the
// prospective castled square is evaluated too and averaged in when it
// scores higher than the current-square shelter.
func kingSafetyDiff(pos *board.Position, p *Params) int {
	white := kingSafetyForColor(pos, board.White, p)
	black := kingSafetyForColor(pos, board.Black, p)
	return white - black
}

func kingSafetyForColor(pos *board.Position, c board.Color, p *Params) int {
	kingSq := pos.KingSquare(c)
	current := kingShieldMG(pos, c, kingSq, p)

	kingsideRight, queensideRight := board.CastleWK, board.CastleWQ
	if c == board.Black {
		kingsideRight, queensideRight = board.CastleBK, board.CastleBQ
	}

	best := current
	if pos.Castling()&kingsideRight != 0 {
		candidate := kingShieldMG(pos, c, castledKingSquare(c, true), p)
		if candidate > best {
			best = candidate
		}
	}
	if pos.Castling()&queensideRight != 0 {
		candidate := kingShieldMG(pos, c, castledKingSquare(c, false), p)
		if candidate > best {
			best = candidate
		}
	}
	if best == current {
		return current
	}
	return (current + best) / 2
}
