package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsLegal reports whether the piece on from may move to to: to must be
// among its unfiltered moves, and after playing the move on a copy of the
// board the mover's king must not be attacked.
func IsLegal(board *chess.Board, from, to chess.Square) bool {
	piece, ok := board.Get(from)
	if !ok || !canReach(board, from, to) {
		return false
	}
	return tryMove(board, chess.Move{From: from, To: to}, piece.Colour)
}

// LegalMoves returns the legal destinations of the piece on from.
// An empty or off-board origin yields nil.
func LegalMoves(board *chess.Board, from chess.Square) []chess.Square {
	piece, ok := board.Get(from)
	if !ok {
		return nil
	}
	var legal []chess.Square
	for _, to := range PseudoMoves(board, from) {
		if tryMove(board, chess.Move{From: from, To: to}, piece.Colour) {
			legal = append(legal, to)
		}
	}
	return legal
}

// AllLegalMoves returns every legal move for the given colour, ordered by
// origin square (8th rank first) and then by generation order.
func AllLegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, from := range board.PieceSquares(colour) {
		for _, to := range LegalMoves(board, from) {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, from := range board.PieceSquares(colour) {
		for _, to := range PseudoMoves(board, from) {
			if tryMove(board, chess.Move{From: from, To: to}, colour) {
				return true
			}
		}
	}
	return false
}

// tryMove makes a move on a copied board and checks if it leaves the king in check.
func tryMove(board *chess.Board, move chess.Move, colour chess.Colour) bool {
	testBoard := board.Copy()
	if _, ok := ApplyMove(testBoard, move); !ok {
		return false
	}
	return !IsInCheck(testBoard, colour)
}
