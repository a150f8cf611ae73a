package board

import "testing"

func TestPerftStartPos(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	cases := []struct {
		depth         int
		nodes, captures uint64
	}{
		{1, 20, 0},
		{2, 400, 0},
		{3, 8902, 34},
		{4, 197281, 1576},
	}
	for _, c := range cases {
		res := Perft(pos, c.depth)
		if res.Nodes != c.nodes || res.Captures != c.captures {
			t.Errorf("perft(%d) = {nodes:%d captures:%d}, want {%d %d}",
				c.depth, res.Nodes, res.Captures, c.nodes, c.captures)
		}
	}
}

func TestPerftKiwipete(t *testing.T) {
	pos, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	cases := []struct {
		depth           int
		nodes, captures uint64
	}{
		{1, 48, 8},
		{2, 2039, 351},
		{3, 97862, 17102},
	}
	for _, c := range cases {
		res := Perft(pos, c.depth)
		if res.Nodes != c.nodes || res.Captures != c.captures {
			t.Errorf("perft(%d) = {nodes:%d captures:%d}, want {%d %d}",
				c.depth, res.Nodes, res.Captures, c.nodes, c.captures)
		}
	}
}

func TestPerftManyMovesPosition(t *testing.T) {
	pos, err := ParseFEN("3Q4/1Q4Q1/4Q3/2Q4R/Q4Q2/3Q4/1Q4Rp/1K1BBNNk w - -")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	res := Perft(pos, 1)
	if res.Nodes != 218 {
		t.Errorf("perft(1) = %d, want 218", res.Nodes)
	}
}
