package hashing

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

func mustBoard(t *testing.T, fen string) (*chess.Board, chess.Colour) {
	t.Helper()
	board, toMove, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error = %v", fen, err)
	}
	return board, toMove
}

func TestZobristHashConsistency(t *testing.T) {
	board1 := chess.NewInitialBoard()
	board2 := chess.NewInitialBoard()

	hash1 := GenerateZobristHash(board1, chess.White)
	hash2 := GenerateZobristHash(board2, chess.White)

	if hash1 != hash2 {
		t.Errorf("Identical boards produced different hashes: %x != %x", hash1, hash2)
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	board1 := chess.NewInitialBoard()

	board2 := chess.NewInitialBoard()
	e2, _ := chess.ParseSquare("e2")
	e4, _ := chess.ParseSquare("e4")
	board2.Remove(e2)
	board2.Set(e4, chess.NewPiece(chess.White, chess.Pawn))

	if GenerateZobristHash(board1, chess.White) == GenerateZobristHash(board2, chess.White) {
		t.Error("Different positions produced the same hash")
	}
}

func TestZobristHashSideToMove(t *testing.T) {
	board := chess.NewInitialBoard()
	if GenerateZobristHash(board, chess.White) == GenerateZobristHash(board, chess.Black) {
		t.Error("side to move does not change the hash")
	}
}

func TestZobristHashIgnoresHasMoved(t *testing.T) {
	moved, _ := mustBoard(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	fresh := chess.NewBoard()
	e1, _ := chess.ParseSquare("e1")
	e8, _ := chess.ParseSquare("e8")
	fresh.Set(e1, chess.NewPiece(chess.White, chess.King))
	fresh.Set(e8, chess.NewPiece(chess.Black, chess.King))
	king, _ := moved.Get(e1)
	king.HasMoved = true
	moved.Set(e1, king)

	if GenerateZobristHash(moved, chess.White) != GenerateZobristHash(fresh, chess.White) {
		t.Error("HasMoved changed the hash")
	}
}

func TestWeakHashConsistency(t *testing.T) {
	board1, _ := mustBoard(t, engine.InitialFEN)
	board2 := chess.NewInitialBoard()

	hash1 := WeakHash(board1)
	hash2 := WeakHash(board2)

	if hash1 != hash2 {
		t.Errorf("Identical boards produced different weak hashes: %x != %x", hash1, hash2)
	}
}

func TestHashMoves(t *testing.T) {
	a := HashMoves([]string{"e2e4", "e7e5"})
	if a != HashMoves([]string{"e2e4", "e7e5"}) {
		t.Error("HashMoves is not deterministic")
	}
	if a == HashMoves([]string{"e7e5", "e2e4"}) {
		t.Error("HashMoves ignores move order")
	}
	if HashMoves(nil) != 0 {
		t.Errorf("HashMoves(nil) = %d; want 0", HashMoves(nil))
	}
}

func TestDuplicateDetector(t *testing.T) {
	// 1.Nf3 Nf6 2.Nc3 Nc6 and 1.Nc3 Nc6 2.Nf3 Nf6 transpose.
	board, toMove := mustBoard(t, "r1bqkb1r/pppppppp/2n2n2/8/8/2N2N2/PPPPPPPP/R1BQKB1R w - - 0 1")
	first := NewSignature([]string{"g1f3", "g8f6", "b1c3", "b8c6"}, board, toMove)
	transposed := NewSignature([]string{"b1c3", "b8c6", "g1f3", "g8f6"}, board, toMove)
	other := NewSignature([]string{"e2e4"}, chess.NewInitialBoard(), chess.Black)

	tests := []struct {
		name           string
		exact          bool
		sigs           []GameSignature
		wantDuplicates int
	}{
		{"same game twice", true, []GameSignature{first, first}, 1},
		{"transposition exact", true, []GameSignature{first, transposed}, 0},
		{"transposition by position", false, []GameSignature{first, transposed}, 1},
		{"different games", false, []GameSignature{first, other}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDuplicateDetector(tt.exact)
			for i, sig := range tt.sigs {
				dup := d.CheckAndAdd(sig)
				if i == 0 && dup {
					t.Error("first game reported as duplicate")
				}
			}
			if d.DuplicateCount() != tt.wantDuplicates {
				t.Errorf("DuplicateCount() = %d; want %d", d.DuplicateCount(), tt.wantDuplicates)
			}
		})
	}
}
