package board

// castlingLossMask[sq] is AND-folded into the castling-rights mask on
// every move's from and to squares: touching a king's or a rook's
// home square (as mover or as a captured piece) can only ever clear
// rights, never set them, which is why AND-folding both endpoints
// together is sufficient.
var castlingLossMask [64]uint8

func init() {
	for sq := range castlingLossMask {
		castlingLossMask[sq] = CastleWK | CastleWQ | CastleBK | CastleBQ
	}
	clear := func(sq Square, bits uint8) { castlingLossMask[sq] &^= bits }
	clear(NewSquare(4, 0), CastleWK|CastleWQ) // e1
	clear(NewSquare(7, 0), CastleWK)          // h1
	clear(NewSquare(0, 0), CastleWQ)          // a1
	clear(NewSquare(4, 7), CastleBK|CastleBQ) // e8
	clear(NewSquare(7, 7), CastleBK)          // h8
	clear(NewSquare(0, 7), CastleBQ)          // a8
}

// MakeMove applies m to pos in place. It returns false, leaving pos in
// an unspecified but still valid-for-reuse state, if m turns out to be
// illegal (self-check, or, for castling, an attacked transit square).
// Callers that need to recover the original position on failure
// should call this against a Clone instead.
func (pos *Position) MakeMove(m Move) bool {
	mover := pos.side
	opponent := mover.Opponent()

	if m.Flags&FlagCastle != 0 && !pos.castleTransitSafe(m) {
		return false
	}

	movedPiece := pos.board[m.From]

	// Castling rights can only shrink: AND-fold both endpoints'
	// clear-masks into the current rights.
	pos.setCastling(pos.castling & castlingLossMask[m.From] & castlingLossMask[m.To])

	pos.setEPSquare(NoSquare)

	switch {
	case m.Flags&FlagEnPassant != 0:
		// The captured pawn sits one row behind the destination from
		// the mover's perspective, not on m.To itself.
		victimSq := m.To - Square(forwardRowDelta(mover))
		pos.clearSquare(victimSq)
		pos.movePiece(m.From, m.To)
	case m.Flags&FlagCapture != 0:
		pos.clearSquare(m.To)
		pos.movePiece(m.From, m.To)
	case m.Flags&FlagCastle != 0:
		pos.movePiece(m.From, m.To)
		rookFrom, rookTo := castleRookSquares(m)
		pos.movePiece(rookFrom, rookTo)
	default:
		pos.movePiece(m.From, m.To)
	}

	if promo := m.PromotionType(); promo != NoPieceType {
		pos.clearSquare(m.To)
		pos.fillSquare(m.To, NewPiece(mover, promo))
	}

	if m.Flags&FlagDoublePawnPush != 0 {
		pos.setEPSquare(m.From + Square(forwardRowDelta(mover)))
	}

	if movedPiece.Type() == Pawn || m.Flags&FlagCapture != 0 {
		pos.halfmove = 0
	} else {
		pos.halfmove++
	}
	if mover == Black {
		pos.fullmove++
	}

	pos.setSide(opponent)
	return !pos.InCheck(mover)
}

// forwardRowDelta returns the Square delta of a one-row advance by
// color, in plain 0..63 square arithmetic (unlike stepFwd, which
// operates in mailbox-120 space).
func forwardRowDelta(c Color) int {
	if c == White {
		return 8
	}
	return -8
}

// castleRookSquares returns the rook's from/to squares implied by a
// castling king move m.
func castleRookSquares(m Move) (from, to Square) {
	rank := m.From.AbsRank()
	if m.To.File() == 6 { // king-side: king e->g, rook h->f
		return NewSquare(7, rank), NewSquare(5, rank)
	}
	return NewSquare(0, rank), NewSquare(3, rank) // queen-side: rook a->d
}

// castleTransitSafe checks the three squares a castling king's move
// requires to be unattacked: origin, the square it passes through,
// and the destination. This check happens here, during make-move, not
// during generation.
func (pos *Position) castleTransitSafe(m Move) bool {
	opponent := pos.side.Opponent()
	transit := NewSquare((m.From.File()+m.To.File())/2, m.From.AbsRank())
	return !pos.attack(m.From, opponent) && !pos.attack(transit, opponent) && !pos.attack(m.To, opponent)
}

// AfterMove returns a new Position with m applied, and whether m was
// legal. pos itself is never mutated.
func (pos *Position) AfterMove(m Move) (*Position, bool) {
	child := pos.Clone()
	ok := child.MakeMove(m)
	return child, ok
}

// IsLegal reports whether m matches one of the generated legal moves
// for pos exactly: same from, to, and flags.
func (pos *Position) IsLegal(m Move) bool {
	for _, cand := range pos.Moves() {
		if cand == m {
			return true
		}
	}
	return false
}
