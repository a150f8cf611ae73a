package search

import "chessengine/board"

// principalVariation walks best-moves out of the transposition table
// starting from pos, stopping when an entry is missing, the position
// would repeat one already visited, or it has collected about 3*depth
// plies.
func (e *Engine) principalVariation(pos *board.Position, depth int) []board.Move {
	maxLen := 3 * depth
	if maxLen < 1 {
		maxLen = 1
	}
	seen := map[uint64]bool{pos.Hash(): true}
	pv := make([]board.Move, 0, maxLen)

	cur := pos
	for len(pv) < maxLen {
		entry, found := e.TT.Probe(cur.Hash())
		if !found || entry.Move.IsSentry() || !cur.IsLegal(entry.Move) {
			break
		}
		child, ok := cur.AfterMove(entry.Move)
		if !ok {
			break
		}
		if seen[child.Hash()] {
			break
		}
		seen[child.Hash()] = true
		pv = append(pv, entry.Move)
		cur = child
	}
	return pv
}
