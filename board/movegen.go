package board

// Moves returns every legal move for the side to move: the
// pseudo-legal set, filtered so that none leaves the mover's own king
// attacked. The result is allocated with the pseudo-legal move count
// as its capacity, so appending legal moves never reallocates.
func (pos *Position) Moves() []Move {
	pseudo := pos.generatePseudo()
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		child := pos.Clone()
		if child.MakeMove(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// Captures returns the capture-and-promotion subset of Moves, in
// generation order (callers that need best-first order run it through
// the move-ordering scorer in the search package).
func (pos *Position) Captures() []Move {
	all := pos.Moves()
	out := make([]Move, 0, len(all))
	for _, m := range all {
		if m.IsCapture() || m.IsPromotion() {
			out = append(out, m)
		}
	}
	return out
}

// generatePseudo produces every pseudo-legal move: correct flags, but
// not yet filtered for leaving the king in check. Castling is emitted
// here whenever the right is held and the intermediate squares are
// empty; the "king is not attacked along the way" condition is
// checked later, during MakeMove.
func (pos *Position) generatePseudo() []Move {
	moves := make([]Move, 0, 64)
	us := pos.side

	for sq := Square(0); sq < 64; sq++ {
		p := pos.board[sq]
		if p.IsEmpty() || p.Color() != us {
			continue
		}
		switch p.Type() {
		case Pawn:
			pos.generatePawnMoves(sq, &moves)
		case King:
			pos.generateLeaperMoves(sq, p, &moves)
			pos.generateCastleMoves(sq, &moves)
		default:
			if p.Type().Slides() {
				pos.generateSliderMoves(sq, p, &moves)
			} else {
				pos.generateLeaperMoves(sq, p, &moves)
			}
		}
	}
	return moves
}

func (pos *Position) generateSliderMoves(from Square, p Piece, moves *[]Move) {
	m := sq64To120[from]
	for _, o := range p.Type().Offsets() {
		for t := m + o; sq120To64[t] != offBoard; t += o {
			to := Square(sq120To64[t])
			target := pos.board[to]
			if target.IsEmpty() {
				*moves = append(*moves, Move{From: from, To: to})
				continue
			}
			if target.Color() != p.Color() {
				*moves = append(*moves, Move{From: from, To: to, Flags: FlagCapture})
			}
			break
		}
	}
}

func (pos *Position) generateLeaperMoves(from Square, p Piece, moves *[]Move) {
	m := sq64To120[from]
	for _, o := range p.Type().Offsets() {
		t := m + o
		if sq120To64[t] == offBoard {
			continue
		}
		to := Square(sq120To64[t])
		target := pos.board[to]
		if target.IsEmpty() {
			*moves = append(*moves, Move{From: from, To: to})
		} else if target.Color() != p.Color() {
			*moves = append(*moves, Move{From: from, To: to, Flags: FlagCapture})
		}
	}
}

func (pos *Position) generateCastleMoves(kingSq Square, moves *[]Move) {
	us := pos.side
	rank := kingSq.AbsRank()

	var kingSide, queenSide uint8
	if us == White {
		kingSide, queenSide = CastleWK, CastleWQ
	} else {
		kingSide, queenSide = CastleBK, CastleBQ
	}

	if pos.castling&kingSide != 0 {
		f, g := NewSquare(5, rank), NewSquare(6, rank)
		if pos.board[f].IsEmpty() && pos.board[g].IsEmpty() {
			*moves = append(*moves, Move{From: kingSq, To: g, Flags: FlagCastle})
		}
	}
	if pos.castling&queenSide != 0 {
		b, c, d := NewSquare(1, rank), NewSquare(2, rank), NewSquare(3, rank)
		if pos.board[b].IsEmpty() && pos.board[c].IsEmpty() && pos.board[d].IsEmpty() {
			*moves = append(*moves, Move{From: kingSq, To: c, Flags: FlagCastle})
		}
	}
}

func (pos *Position) generatePawnMoves(from Square, moves *[]Move) {
	us := pos.side
	m := sq64To120[from]
	fwd := stepFwd(us)
	relRankFrom := relRank(us, from)

	addPawnMove := func(to Square, flags MoveFlags) {
		if relRank(us, to) == 7 {
			for _, pf := range [4]MoveFlags{FlagPromoteQueen, FlagPromoteRook, FlagPromoteBishop, FlagPromoteKnight} {
				*moves = append(*moves, Move{From: from, To: to, Flags: flags | FlagPawnMove | pf})
			}
			return
		}
		*moves = append(*moves, Move{From: from, To: to, Flags: flags | FlagPawnMove})
	}

	// Single push.
	if t := m + fwd; sq120To64[t] != offBoard {
		to := Square(sq120To64[t])
		if pos.board[to].IsEmpty() {
			addPawnMove(to, FlagNone)

			// Double push from the second rank.
			if relRankFrom == 1 {
				if t2 := t + fwd; sq120To64[t2] != offBoard {
					to2 := Square(sq120To64[t2])
					if pos.board[to2].IsEmpty() {
						*moves = append(*moves, Move{From: from, To: to2, Flags: FlagPawnMove | FlagDoublePawnPush})
					}
				}
			}
		}
	}

	// Diagonal captures (including en passant).
	for _, fileOff := range [2]int{dirE, dirW} {
		t := m + fwd + fileOff
		if sq120To64[t] == offBoard {
			continue
		}
		to := Square(sq120To64[t])
		target := pos.board[to]
		if !target.IsEmpty() && target.Color() != us {
			addPawnMove(to, FlagCapture)
		} else if target.IsEmpty() && to == pos.epSquare {
			*moves = append(*moves, Move{From: from, To: to, Flags: FlagCapture | FlagEnPassant | FlagPawnMove})
		}
	}
}
