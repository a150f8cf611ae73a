package board

import (
	"errors"
	"strconv"
	"strings"
)

// StartFEN is the FEN of the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a standard six-field FEN string (the last two
// fields, half-move clock and full-move number, are optional and
// default to 0 and 1). It returns an error once at this boundary on
// malformed input; callers at the protocol boundary are expected to
// catch the error and report a protocol error rather than propagate
// it further.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return nil, errors.New("fen: need at least 4 fields")
	}

	pos := &Position{epSquare: NoSquare, fullmove: 1}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, errors.New("fen: board must have 8 ranks")
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range []byte(rankStr) {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			p, ok := PieceFromLetter(ch)
			if !ok {
				return nil, errors.New("fen: bad piece letter " + string(ch))
			}
			if file > 7 {
				return nil, errors.New("fen: rank overflows 8 files")
			}
			pos.fillSquare(NewSquare(file, rank), p)
			file++
		}
		if file != 8 {
			return nil, errors.New("fen: rank does not cover 8 files")
		}
	}

	switch fields[1] {
	case "w":
		pos.side = White
	case "b":
		pos.side = Black
		pos.hash ^= zobristSideKey
	default:
		return nil, errors.New("fen: bad side-to-move field")
	}

	if fields[2] != "-" {
		for _, ch := range []byte(fields[2]) {
			switch ch {
			case 'K':
				pos.castling |= CastleWK
			case 'Q':
				pos.castling |= CastleWQ
			case 'k':
				pos.castling |= CastleBK
			case 'q':
				pos.castling |= CastleBQ
			default:
				return nil, errors.New("fen: bad castling field")
			}
		}
	}
	pos.hash ^= zobristCastle[pos.castling]

	if fields[3] != "-" {
		sq, ok := ParseSquare(fields[3])
		if !ok {
			return nil, errors.New("fen: bad en-passant field")
		}
		pos.epSquare = sq
		pos.hash ^= zobristEPFile[sq.File()]
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, errors.New("fen: bad half-move clock")
		}
		pos.halfmove = n
	}
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, errors.New("fen: bad full-move number")
		}
		pos.fullmove = n
	}

	return pos, nil
}

// FEN renders pos as a standard six-field FEN string.
func (pos *Position) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := pos.board[NewSquare(file, rank)]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if pos.side == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if pos.castling == 0 {
		sb.WriteByte('-')
	} else {
		for _, bit := range []struct {
			mask uint8
			ch   byte
		}{{CastleWK, 'K'}, {CastleWQ, 'Q'}, {CastleBK, 'k'}, {CastleBQ, 'q'}} {
			if pos.castling&bit.mask != 0 {
				sb.WriteByte(bit.ch)
			}
		}
	}

	sb.WriteByte(' ')
	if pos.epSquare == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(pos.epSquare.String())
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.halfmove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.fullmove))

	return sb.String()
}
