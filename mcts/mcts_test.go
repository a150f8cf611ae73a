package mcts

import (
	"testing"

	"chessengine/board"
	"chessengine/eval"
)

func TestSearchReturnsLegalMove(t *testing.T) {
	pos, err := board.ParseFEN(board.StartFEN)
	if err != nil {
		t.Fatal(err)
	}
	s := NewSearcher(eval.New(eval.Default()), Config{Simulations: 50}, 42)
	result := s.Search(pos)
	if result.BestMove.IsSentry() {
		t.Fatal("search from the start position returned the sentry")
	}
	if !pos.IsLegal(result.BestMove) {
		t.Errorf("search returned %v, not legal in the start position", result.BestMove)
	}
}

func TestSearchReturnsSentryWhenMated(t *testing.T) {
	pos, err := board.ParseFEN("8/8/8/5K1k/8/8/8/7R b - -")
	if err != nil {
		t.Fatal(err)
	}
	s := NewSearcher(eval.New(eval.Default()), Config{Simulations: 10}, 7)
	result := s.Search(pos)
	if !result.BestMove.IsSentry() {
		t.Errorf("search on a mated position returned %v, want the sentry", result.BestMove)
	}
}
