package board

// ColorFlip returns a new Position with the board vertically mirrored
// and every piece's color swapped, castling rights swapped white<->black,
// the en-passant square mirrored, and side to move toggled. The
// evaluator is required to be symmetric under this transform:
// eval(pos) == eval(pos.ColorFlip()).
func (pos *Position) ColorFlip() *Position {
	flipped := &Position{epSquare: NoSquare, halfmove: pos.halfmove, fullmove: pos.fullmove}

	for sq := Square(0); sq < 64; sq++ {
		p := pos.board[sq]
		if p.IsEmpty() {
			continue
		}
		mirrored := NewSquare(sq.File(), 7-sq.AbsRank())
		flipped.fillSquare(mirrored, NewPiece(p.Color().Opponent(), p.Type()))
	}

	flipped.side = pos.side.Opponent()
	if flipped.side == Black {
		flipped.hash ^= zobristSideKey
	}

	var rights uint8
	if pos.castling&CastleWK != 0 {
		rights |= CastleBK
	}
	if pos.castling&CastleWQ != 0 {
		rights |= CastleBQ
	}
	if pos.castling&CastleBK != 0 {
		rights |= CastleWK
	}
	if pos.castling&CastleBQ != 0 {
		rights |= CastleWQ
	}
	flipped.castling = rights
	flipped.hash ^= zobristCastle[rights]

	if pos.epSquare != NoSquare {
		flipped.epSquare = NewSquare(pos.epSquare.File(), 7-pos.epSquare.AbsRank())
		flipped.hash ^= zobristEPFile[flipped.epSquare.File()]
	}

	return flipped
}
