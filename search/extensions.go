package search

import "chessengine/internal/xmath"

// newDraft computes the child draft from a single extension/reduction
// formula, applied at every non-root node. parentInCheck reports
// whether the side to move at the parent node (i.e. before making m)
// was in check; the check extension shrinks with remaining draft so
// it costs close to nothing deep in the tree and close to a full ply
// near the leaves, and min(0, delta) forbids ever expanding past
// draft: extensions can only offset the normal one-ply decrement.
func newDraft(draft int, parentInCheck, isCapture bool) int {
	delta := -Ply
	if parentInCheck {
		delta += 2 * Ply * Ply / xmath.Max(draft, 1)
	}
	if isCapture {
		delta += Ply / 2
	}
	return draft + xmath.Min(delta, 0)
}
