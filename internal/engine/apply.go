// Package engine provides chess move generation, legality checking and game state.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Applied describes what ApplyMove did to the board.
type Applied struct {
	// Moved is the piece as it stood on the origin before the move.
	Moved chess.Piece
	// Captured is the piece removed from the destination, if any.
	Captured chess.Piece
	// Promoted is true when a pawn reaching its last rank became a queen.
	Promoted bool
}

// ApplyMove moves the piece on move.From to move.To without any legality
// checks: the origin is cleared, the destination overwritten (a capture if
// occupied) and a pawn arriving on its last rank is replaced by a queen of
// the same colour. Returns false and leaves the board untouched if the origin
// is empty or either square is off the board.
func ApplyMove(board *chess.Board, move chess.Move) (Applied, bool) {
	piece, ok := board.Get(move.From)
	if !ok || !move.To.Valid() {
		return Applied{}, false
	}

	captured, _ := board.Get(move.To)
	result := Applied{Moved: piece, Captured: captured}

	piece.HasMoved = true
	if piece.Kind == chess.Pawn && move.To.Rank == chess.PromotionRank(piece.Colour) {
		piece = chess.Piece{Kind: chess.Queen, Colour: piece.Colour, HasMoved: true}
		result.Promoted = true
	}

	board.Remove(move.From)
	board.Set(move.To, piece)
	return result, true
}
