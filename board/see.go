package board

// seeValue holds a fixed piece-value table for static exchange
// evaluation only, deliberately separate from eval.Params' tunable
// material weights (SEE needs to stay cheap and stable across tuning
// runs).
var seeValue = [7]int{
	NoPieceType: 0,
	Pawn:        100,
	Knight:      320,
	Bishop:      330,
	Rook:        500,
	Queen:       900,
	King:        20000,
}

// SEE runs the classic static-exchange-evaluation swap-off over the
// capture sequence started by m: both sides keep recapturing on m.To
// with their cheapest remaining attacker until one side has nothing
// left to recapture with or stops because the exchange has turned
// against it, then the per-ply gains are folded back into a single
// side-to-move-relative score. It does not mutate pos.
func (pos *Position) SEE(m Move) int {
	occ := pos.board

	to := m.To
	var captured PieceType
	if m.Flags&FlagEnPassant != 0 {
		captured = Pawn
		capSq := NewSquare(to.File(), m.From.AbsRank())
		occ[capSq] = Empty
	} else {
		captured = occ[to].Type()
	}

	mover := occ[m.From]
	occ[to] = mover
	occ[m.From] = Empty

	var gain [32]int
	gain[0] = seeValue[captured]
	depth := 0

	curValue := seeValue[mover.Type()]
	side := mover.Color().Opponent()

	for {
		attackerSq, attackerType, ok := leastValuableAttacker(&occ, to, side)
		if !ok {
			break
		}
		depth++
		gain[depth] = curValue - gain[depth-1]
		if max(-gain[depth-1], gain[depth]) < 0 {
			break
		}
		occ[to] = occ[attackerSq]
		occ[attackerSq] = Empty
		curValue = seeValue[attackerType]
		side = side.Opponent()
	}

	for d := depth; d > 0; d-- {
		gain[d-1] = -max(-gain[d-1], gain[d])
	}
	return gain[0]
}

// leastValuableAttacker finds the cheapest piece of color `by` that
// attacks sq on occ, mirroring Position.attack's offset walks but
// against a caller-supplied occupancy array (so SEE can remove pieces
// as the exchange proceeds without touching the real position) and
// returning which square and piece type it found instead of a bool.
func leastValuableAttacker(occ *[64]Piece, sq Square, by Color) (Square, PieceType, bool) {
	m := sq64To120[sq]

	bestSq := NoSquare
	bestType := NoPieceType
	bestValue := 1 << 30

	consider := func(ts Square, t PieceType) {
		if v := seeValue[t]; v < bestValue {
			bestValue, bestSq, bestType = v, ts, t
		}
	}

	back := -stepFwd(by)
	for _, fileOff := range [2]int{dirE, dirW} {
		t := m + back + fileOff
		if sq120To64[t] == offBoard {
			continue
		}
		ts := Square(sq120To64[t])
		if p := occ[ts]; !p.IsEmpty() && p.Color() == by && p.Type() == Pawn {
			consider(ts, Pawn)
		}
	}
	for _, o := range knightOffsets {
		if t := m + o; sq120To64[t] != offBoard {
			ts := Square(sq120To64[t])
			if p := occ[ts]; !p.IsEmpty() && p.Color() == by && p.Type() == Knight {
				consider(ts, Knight)
			}
		}
	}
	for _, o := range bishopOffsets {
		for t := m + o; sq120To64[t] != offBoard; t += o {
			ts := Square(sq120To64[t])
			p := occ[ts]
			if p.IsEmpty() {
				continue
			}
			if p.Color() == by && (p.Type() == Bishop || p.Type() == Queen) {
				consider(ts, p.Type())
			}
			break
		}
	}
	for _, o := range rookOffsets {
		for t := m + o; sq120To64[t] != offBoard; t += o {
			ts := Square(sq120To64[t])
			p := occ[ts]
			if p.IsEmpty() {
				continue
			}
			if p.Color() == by && (p.Type() == Rook || p.Type() == Queen) {
				consider(ts, p.Type())
			}
			break
		}
	}
	for _, o := range kingOffsets {
		if t := m + o; sq120To64[t] != offBoard {
			ts := Square(sq120To64[t])
			if p := occ[ts]; !p.IsEmpty() && p.Color() == by && p.Type() == King {
				consider(ts, King)
			}
		}
	}

	if bestSq == NoSquare {
		return NoSquare, NoPieceType, false
	}
	return bestSq, bestType, true
}
