package search

import "chessengine/board"

// provider yields legal moves for one node in best-first order without
// generating or scoring anything until it has to: the hash move, if
// legal, comes first for free; only the second Next
// call triggers move generation and scoring, and every call after
// that does an incremental selection-sort pick.
type provider struct {
	pos      *board.Position
	engine   *Engine
	ply      int
	hashMove board.Move

	generated  bool
	moves      []board.Move
	scores     []int
	picked     int
	hashServed bool
}

func newProvider(pos *board.Position, engine *Engine, ply int, hashMove board.Move) *provider {
	return &provider{pos: pos, engine: engine, ply: ply, hashMove: hashMove}
}

// Next returns the next move in best-first order, or false once
// exhausted.
func (p *provider) Next() (board.Move, bool) {
	if !p.hashServed {
		p.hashServed = true
		if !p.hashMove.IsSentry() && p.pos.IsLegal(p.hashMove) {
			return p.hashMove, true
		}
	}
	if !p.generated {
		p.generate()
	}
	if p.picked >= len(p.moves) {
		return board.Move{}, false
	}
	best := p.picked
	for i := p.picked + 1; i < len(p.moves); i++ {
		if p.scores[i] > p.scores[best] {
			best = i
		}
	}
	p.moves[p.picked], p.moves[best] = p.moves[best], p.moves[p.picked]
	p.scores[p.picked], p.scores[best] = p.scores[best], p.scores[p.picked]
	m := p.moves[p.picked]
	p.picked++
	return m, true
}

func (p *provider) generate() {
	all := p.pos.Moves()
	p.moves = make([]board.Move, 0, len(all))
	for _, m := range all {
		if m == p.hashMove {
			continue
		}
		p.moves = append(p.moves, m)
	}
	p.scores = make([]int, len(p.moves))
	for i, m := range p.moves {
		p.scores[i] = p.engine.scoreMove(p.pos, m, p.ply)
	}
	p.generated = true
}
