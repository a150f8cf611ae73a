package board

import "testing"

func seeOf(t *testing.T, fen, coord string) int {
	t.Helper()
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	m := pos.ParseCoordMove(coord)
	if m.IsSentry() {
		t.Fatalf("%q: %q did not parse to a move", fen, coord)
	}
	return pos.SEE(m)
}

func TestSEEOfAnUndefendedCaptureIsJustTheVictim(t *testing.T) {
	if got, want := seeOf(t, "7k/8/8/3p4/4P3/8/8/7K w - -", "e4d5"), 100; got != want {
		t.Errorf("SEE(exd5, undefended) = %d, want %d", got, want)
	}
}

func TestSEEOfARookTradeForAPawnLosesTheExchange(t *testing.T) {
	got := seeOf(t, "r6k/p7/8/8/8/8/8/R6K w - -", "a1a7")
	if want := -400; got != want {
		t.Errorf("SEE(Rxa7, defended by Ra8) = %d, want %d", got, want)
	}
}

func TestSEEOfAnUndefendedMinorForAPawnIsPositive(t *testing.T) {
	got := seeOf(t, "k7/8/8/3n4/4P3/8/8/7K w - -", "e4d5")
	if want := 320; got != want {
		t.Errorf("SEE(exd5 winning a knight) = %d, want %d", got, want)
	}
}
