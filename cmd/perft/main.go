// Command perft drives board.Perft from the command line: FEN, depth,
// and an optional root-move divide breakdown.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"chessengine/board"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN string (defaults to the initial position)")
	depth := flag.Int("depth", 0, "perft depth (required)")
	divide := flag.Bool("divide", false, "print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "repeat perft N times and report aggregate timing")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		for _, m := range sortedRootMoves(pos) {
			child := pos.Clone()
			if !child.MakeMove(m) {
				continue
			}
			sub := board.Perft(child, *depth-1)
			fmt.Printf("%s: %d\n", m.String(), sub.Nodes)
		}
		return
	}

	var result board.PerftResult
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		result = board.Perft(pos, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(result.Nodes) / elapsed.Seconds()
	fmt.Printf("depth %d\tnodes %d\tcaptures %d\t%s\t%.0f nps\n", *depth, result.Nodes, result.Captures, elapsed, nps)
}

func sortedRootMoves(pos *board.Position) []board.Move {
	moves := pos.Moves()
	sort.Slice(moves, func(i, j int) bool { return moves[i].String() < moves[j].String() })
	return moves
}
