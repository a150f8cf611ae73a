package eval

import "chessengine/board"

// Evaluator bundles the generated piece-square tables with the
// parameter set they were built from, so Evaluate never has to rebuild
// them on the hot path: the tables are built once, at startup.
type Evaluator struct {
	params *Params
	tables *pst
}

// New builds an Evaluator from p. Pass eval.Default() for the built-in
// weights, or the result of Load for a tuned override file.
func New(p *Params) *Evaluator {
	return &Evaluator{params: p, tables: buildPST(p)}
}

// Evaluate scores pos from the side-to-move's point of view: positive
// favors the side to move, negative favors the opponent.
func (e *Evaluator) Evaluate(pos *board.Position) int {
	score := e.evaluateWhiteRelative(pos)
	if pos.Side() == board.Black {
		return -score
	}
	return score
}

// evaluateWhiteRelative combines every evaluation term: material_diff
// and adjustments_diff are flat (untapered); PST and pawn structure
// are each computed at full middlegame and full endgame weight, king
// safety as a middlegame-only term, then mg and eg are blended by
// phase.
func (e *Evaluator) evaluateWhiteRelative(pos *board.Position) int {
	p := e.params

	material := materialDiff(pos, p)
	adjustments := adjustmentsDiff(pos, p)

	pstMG, pstEG := e.pstDiff(pos)
	pawnMG, pawnEG := pawnStructureDiff(pos, p)
	kingMG := kingSafetyDiff(pos, p)

	mg := pstMG + pawnMG + kingMG
	eg := pstEG + pawnEG

	phase := phaseIndex(pos)
	tapered := (mg*(256-phase) + eg*phase) / 256

	return material + adjustments + tapered
}

func (e *Evaluator) pstDiff(pos *board.Position) (mg, eg int) {
	for sq := board.Square(0); sq < 64; sq++ {
		piece := pos.At(sq)
		if piece.IsEmpty() {
			continue
		}
		c, t := piece.Color(), piece.Type()
		sign := 1
		if c == board.Black {
			sign = -1
		}
		mg += sign * e.tables.mg[c][t][sq]
		eg += sign * e.tables.eg[c][t][sq]
	}
	return mg, eg
}
