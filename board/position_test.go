package board

import "testing"

func TestHashMatchesFromScratchRecompute(t *testing.T) {
	positions := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -",
	}
	for _, fen := range positions {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got, want := pos.Hash(), pos.computeHash(); got != want {
			t.Errorf("%q: incremental hash %x != recomputed %x", fen, got, want)
		}
		for _, m := range pos.Moves() {
			child, ok := pos.AfterMove(m)
			if !ok {
				t.Fatalf("%q: generated move %v rejected by MakeMove", fen, m)
			}
			if got, want := child.Hash(), child.computeHash(); got != want {
				t.Errorf("%q after %v: incremental hash %x != recomputed %x", fen, m, got, want)
			}
		}
	}
}

func TestEveryGeneratedMoveIsLegal(t *testing.T) {
	pos, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -")
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range pos.Moves() {
		if !pos.IsLegal(m) {
			t.Errorf("generated move %v not reported legal", m)
		}
		flipped := m
		flipped.Flags ^= FlagCapture
		if flipped != m && pos.IsLegal(flipped) {
			t.Errorf("move %v with capture bit flipped to %v still reported legal", m, flipped)
		}
	}
}

func TestAfterMoveLeavesParentUnchanged(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatal(err)
	}
	before := *pos
	m := pos.ParseCoordMove("e2e4")
	if m.IsSentry() {
		t.Fatalf("e2e4 should parse in the start position")
	}
	if _, ok := pos.AfterMove(m); !ok {
		t.Fatalf("e2e4 should be legal")
	}
	if *pos != before {
		t.Errorf("AfterMove mutated its receiver")
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/6pk/1p3pQp/q4P2/2PP4/r1PKP2P/p7/R7 b - - 14 55",
	}
	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := pos.FEN(); got != fen {
			t.Errorf("FEN round trip: got %q, want %q", got, fen)
		}
	}
}

func TestCoordMoveRoundTrip(t *testing.T) {
	pos, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -")
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range pos.Moves() {
		s := m.String()
		parsed := pos.ParseCoordMove(s)
		if parsed != m {
			t.Errorf("coordinate round trip: %v -> %q -> %v", m, s, parsed)
		}
	}
}

func TestSANCastling(t *testing.T) {
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq -")
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		san      string
		wantFile int
	}{
		{"O-O", 6},
		{"O-O-O", 2},
	} {
		m := pos.ParseSAN(tc.san)
		if m.IsSentry() {
			t.Fatalf("%s: parsed to sentry", tc.san)
		}
		if m.To.File() != tc.wantFile {
			t.Errorf("%s: to file = %d, want %d", tc.san, m.To.File(), tc.wantFile)
		}
	}
}

func TestPhaseRelatedCountsStayInRange(t *testing.T) {
	pos, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -")
	if err != nil {
		t.Fatal(err)
	}
	for c := White; c <= Black; c++ {
		for t2 := Knight; t2 <= Queen; t2++ {
			if n := pos.PieceCount(c, t2); n < 0 || n > 10 {
				panic("piece count out of sane range")
			}
		}
	}
}

func TestStalemateAndMate(t *testing.T) {
	// Black king on h5 mated by White rook on h1.
	pos, err := ParseFEN("8/8/8/5K1k/8/8/8/7R b - -")
	if err != nil {
		t.Fatal(err)
	}
	if status := pos.MateOrDraw(nil); status != StatusMated {
		t.Errorf("MateOrDraw = %v, want StatusMated", status)
	}

	// Classic stalemate: Black king a8, White king a6, White queen b6.
	stale, err := ParseFEN("k7/8/KQ6/8/8/8/8/8 b - -")
	if err != nil {
		t.Fatal(err)
	}
	if status := stale.MateOrDraw(nil); status != StatusStalemate {
		t.Errorf("MateOrDraw = %v, want StatusStalemate", status)
	}
}

func TestFiftyMoveDraw(t *testing.T) {
	pos, err := ParseFEN("8/6pk/1p3pQp/q4P2/2PP4/r1PKP2P/p7/R7 b - - 100 55")
	if err != nil {
		t.Fatal(err)
	}
	if status := pos.MateOrDraw(nil); status != StatusDrawFifty {
		t.Errorf("MateOrDraw = %v, want StatusDrawFifty", status)
	}
}

func TestThreefoldRepetition(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatal(err)
	}
	history := []uint64{pos.Hash()}
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	for round := 0; round < 2; round++ {
		for _, s := range shuffle {
			m := pos.ParseCoordMove(s)
			if m.IsSentry() {
				t.Fatalf("round %d: %s did not parse", round, s)
			}
			if !pos.MakeMove(m) {
				t.Fatalf("round %d: %s rejected as illegal", round, s)
			}
			history = append(history, pos.Hash())
		}
	}
	if status := pos.MateOrDraw(history); status != StatusDrawRepetition {
		t.Errorf("MateOrDraw = %v, want StatusDrawRepetition after threefold", status)
	}
}

func TestColorFlipSquaresAndCastling(t *testing.T) {
	pos, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -")
	if err != nil {
		t.Fatal(err)
	}
	flipped := pos.ColorFlip()
	if flipped.Side() != pos.Side().Opponent() {
		t.Errorf("ColorFlip did not toggle side to move")
	}
	back := flipped.ColorFlip()
	if back.FEN() != pos.FEN() {
		t.Errorf("ColorFlip is not its own inverse: %q != %q", back.FEN(), pos.FEN())
	}
}
