package eval

import (
	"testing"

	"chessengine/board"
)

var testFENs = []string{
	board.StartFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -",
	"8/6pk/1p3pQp/q4P2/2PP4/r1PKP2P/p7/R7 b - -",
}

func mustParse(t *testing.T, fen string) *board.Position {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return pos
}

// TestEvalIsInvariantUnderColorFlip checks the mirror-board symmetry:
// flipping the whole board's colors (ColorFlip) leaves the
// side-to-move-relative score unchanged.
func TestEvalIsInvariantUnderColorFlip(t *testing.T) {
	e := New(Default())
	for _, fen := range testFENs {
		pos := mustParse(t, fen)
		flipped := pos.ColorFlip()
		got, want := e.Evaluate(flipped), e.Evaluate(pos)
		if got != want {
			t.Errorf("%q: eval(flip) = %d, want %d", fen, got, want)
		}
	}
}

// TestEvalIsAntisymmetricUnderSideSwitch checks the other required
// symmetry: toggling only the side-to-move field, with the board
// itself untouched, negates the score.
func TestEvalIsAntisymmetricUnderSideSwitch(t *testing.T) {
	e := New(Default())
	pairs := [][2]string{
		{board.StartFEN, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq -"},
		{
			"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
			"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq -",
		},
	}
	for _, pair := range pairs {
		white := e.Evaluate(mustParse(t, pair[0]))
		black := e.Evaluate(mustParse(t, pair[1]))
		if white != -black {
			t.Errorf("%q vs %q: eval = %d, %d, want negation", pair[0], pair[1], white, black)
		}
	}
}

func TestPhaseIndexStaysInRange(t *testing.T) {
	for _, fen := range testFENs {
		pos := mustParse(t, fen)
		phase := phaseIndex(pos)
		if phase < 0 || phase > 256 {
			t.Errorf("%q: phaseIndex = %d, want [0,256]", fen, phase)
		}
	}
	endgame := mustParse(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -")
	if phase := phaseIndex(endgame); phase < 128 {
		t.Errorf("rook endgame phaseIndex = %d, expected well past the midpoint", phase)
	}
}

func TestEvaluateStartPositionIsNearlyBalanced(t *testing.T) {
	e := New(Default())
	pos := mustParse(t, board.StartFEN)
	if score := e.Evaluate(pos); score < -50 || score > 50 {
		t.Errorf("start position score = %d, expected close to balanced", score)
	}
}
