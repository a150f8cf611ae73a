package board

import "strings"

// ParseCoordMove parses four/five-character coordinate notation
// ("e2e4", "a7a8q") against pos's legal moves, returning the matching
// Move with its correct flags. A parse or legality failure returns the
// sentry move rather than an error; callers that need to report a
// protocol error check IsSentry themselves.
func (pos *Position) ParseCoordMove(s string) Move {
	s = strings.TrimSpace(s)
	if len(s) < 4 {
		return Sentry
	}
	from, ok := ParseSquare(s[0:2])
	if !ok {
		return Sentry
	}
	to, ok := ParseSquare(s[2:4])
	if !ok {
		return Sentry
	}
	var promo PieceType = NoPieceType
	if len(s) >= 5 {
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return Sentry
		}
	}

	for _, m := range pos.Moves() {
		if m.From != from || m.To != to {
			continue
		}
		if m.IsPromotion() && m.PromotionType() != promo {
			continue
		}
		if !m.IsPromotion() && promo != NoPieceType {
			continue
		}
		return m
	}
	return Sentry
}
