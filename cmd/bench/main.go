// Command bench drives a handful of fixed search positions to a fixed
// depth and reports nodes-per-second.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"chessengine/board"
	"chessengine/eval"
	"chessengine/search"
)

// benchPositions is the fixed fixture set: the start position, the
// tactically dense Kiwipete middlegame, and a quiet early-opening
// position.
var benchPositions = []string{
	board.StartFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"rnbqkb1r/pp1p1ppp/2p2n2/4p3/2P5/2N5/PP1PPPPP/R1BQKBNR w KQkq - 0 1",
}

func main() {
	depthFlag := flag.Int("depth", 8, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run per position")
	fenFlag := flag.String("fen", "", "single FEN to bench (empty = the built-in fixture set)")
	flag.Parse()

	if *depthFlag <= 0 {
		log.Fatalf("depth must be positive, got %d", *depthFlag)
	}

	fens := benchPositions
	if *fenFlag != "" {
		fens = []string{*fenFlag}
	}

	var totalNodes uint64
	start := time.Now()

	for _, fen := range fens {
		for i := 0; i < *repeatFlag; i++ {
			pos, err := board.ParseFEN(fen)
			if err != nil {
				log.Fatalf("ParseFEN %q: %v", fen, err)
			}
			engine := search.NewEngine(22, eval.New(eval.Default()))
			budget := search.Budget{MaxDepth: *depthFlag}
			iterStart := time.Now()
			move, score := engine.Search(pos, budget, nil, nil)
			elapsed := time.Since(iterStart)
			totalNodes += engine.Nodes()
			fmt.Printf("%-70s depth=%d move=%-6s score=%-6d nodes=%-10d %s\n",
				fen, *depthFlag, move.String(), score, engine.Nodes(), elapsed)
		}
	}

	total := time.Since(start)
	nps := float64(totalNodes) / total.Seconds()
	fmt.Printf("\ntotal nodes=%d elapsed=%s nps=%.0f\n", totalNodes, total, nps)
}
