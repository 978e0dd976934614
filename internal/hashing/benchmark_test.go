package hashing

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/engine"
)

var benchFENPositions = map[string]string{
	"Initial": engine.InitialFEN,
	"Midgame": "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w - - 4 4",
	"Endgame": "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
}

func BenchmarkGenerateZobristHash(b *testing.B) {
	for name, fen := range benchFENPositions {
		b.Run(name, func(b *testing.B) {
			board, toMove, _ := engine.NewBoardFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				GenerateZobristHash(board, toMove)
			}
		})
	}
}

func BenchmarkDuplicateDetector(b *testing.B) {
	board, toMove, _ := engine.NewBoardFromFEN(benchFENPositions["Midgame"])
	moves := []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "g8f6"}
	d := NewDuplicateDetector(true)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.CheckAndAdd(NewSignature(moves, board, toMove))
	}
}
