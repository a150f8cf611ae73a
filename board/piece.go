package board

// PieceType is the colorless kind of a piece.
type PieceType uint8

const (
	NoPieceType PieceType = 0
	Pawn        PieceType = 1
	Knight      PieceType = 2
	Bishop      PieceType = 3
	Rook        PieceType = 4
	Queen       PieceType = 5
	King        PieceType = 6
)

// Piece is either Empty or a (color, type) pair, encoded as
// (color<<3)|type so that Empty == 0 and the type is recoverable
// with a mask. This keeps a zero-value board cell meaning "empty".
type Piece uint8

const Empty Piece = 0

// NewPiece combines a color and type into a concrete Piece.
func NewPiece(c Color, t PieceType) Piece {
	if t == NoPieceType {
		return Empty
	}
	return Piece(c)<<3 | Piece(t)
}

// Type returns the colorless kind of p (NoPieceType if p is Empty).
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the owning side. Undefined for Empty.
func (p Piece) Color() Color { return Color(p >> 3) }

// IsEmpty reports whether p is the empty-square sentinel.
func (p Piece) IsEmpty() bool { return p == Empty }

// supID is the upper bound on piece ids: one id per (color,type)
// combination, types 1..6, colors 0..1. Arrays indexed by piece id
// (e.g. the history table) are sized supID, never 12 spelled out
// inline, so a representation change can't silently under-size them.
const supID = 12

// ID returns a dense small integer in [0, supID) suitable for sizing
// and indexing tables keyed by piece identity (history heuristic,
// PSQT lookups by color). Empty has no valid id; callers must not
// invoke ID on an empty square.
func (p Piece) ID() int {
	return int(p.Color())*6 + int(p.Type()) - 1
}

// pieceInfo bundles the static, per-PieceType facts move generation
// needs: whether it slides, its movement offsets in mailbox-120 space,
// its material value, and its FEN letter.
type pieceInfo struct {
	slide       bool
	offsets     []int
	materialMG  int
	materialEG  int
	letterUpper byte
}

var pieceTable = [7]pieceInfo{
	NoPieceType: {},
	Pawn:        {slide: false, offsets: nil, materialMG: 100, materialEG: 100, letterUpper: 'P'},
	Knight:      {slide: false, offsets: knightOffsets[:], materialMG: 320, materialEG: 320, letterUpper: 'N'},
	Bishop:      {slide: true, offsets: bishopOffsets[:], materialMG: 330, materialEG: 330, letterUpper: 'B'},
	Rook:        {slide: true, offsets: rookOffsets[:], materialMG: 500, materialEG: 500, letterUpper: 'R'},
	Queen:       {slide: true, offsets: append(append([]int{}, rookOffsets[:]...), bishopOffsets[:]...), materialMG: 900, materialEG: 900, letterUpper: 'Q'},
	King:        {slide: false, offsets: kingOffsets[:], materialMG: 0, materialEG: 0, letterUpper: 'K'},
}

// Slides reports whether t moves along open rays (bishop/rook/queen).
func (t PieceType) Slides() bool { return pieceTable[t].slide }

// Offsets returns the mailbox-120 move offsets for t. Pawns are
// handled separately by the move generator (their offsets depend on
// color and are not symmetric), so Pawn returns nil here.
func (t PieceType) Offsets() []int { return pieceTable[t].offsets }

// MaterialMG / MaterialEG return t's middlegame/endgame material value
// in centipawns.
func (t PieceType) MaterialMG() int { return pieceTable[t].materialMG }
func (t PieceType) MaterialEG() int { return pieceTable[t].materialEG }

// Letter returns the FEN letter for p: uppercase for White, lowercase
// for Black, ' ' for Empty.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return ' '
	}
	letter := pieceTable[p.Type()].letterUpper
	if p.Color() == Black {
		return letter | 0x20
	}
	return letter
}

// PieceFromLetter is the inverse of Letter, used by the FEN parser.
func PieceFromLetter(ch byte) (Piece, bool) {
	color := White
	upper := ch
	if ch >= 'a' && ch <= 'z' {
		color = Black
		upper = ch &^ 0x20
	}
	for t := Pawn; t <= King; t++ {
		if pieceTable[t].letterUpper == upper {
			return NewPiece(color, t), true
		}
	}
	return Empty, false
}
