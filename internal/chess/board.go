package chess

import "strings"

// Board is an 8x8 grid of optional occupants.
// Board is a value type: assigning it copies every square, so a copy never
// aliases the original.
type Board struct {
	// Squares[rank][file]; rank 0 is Black's back rank.
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Squares[BackRank(Black)][file] = NewPiece(Black, backRank[file])
		b.Squares[PawnStartRank(Black)][file] = NewPiece(Black, Pawn)
		b.Squares[PawnStartRank(White)][file] = NewPiece(White, Pawn)
		b.Squares[BackRank(White)][file] = NewPiece(White, backRank[file])
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// Clear empties every square.
func (b *Board) Clear() {
	b.Squares = [BoardSize][BoardSize]Piece{}
}

// Get returns the piece on sq. The second result is false when the square
// is empty or off the board.
func (b *Board) Get(sq Square) (Piece, bool) {
	if !sq.Valid() {
		return Piece{}, false
	}
	p := b.Squares[sq.Rank][sq.File]
	return p, !p.IsEmpty()
}

// Set places a piece on sq; the zero Piece empties it.
// Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b.Squares[sq.Rank][sq.File] = piece
	}
}

// Remove empties sq.
func (b *Board) Remove(sq Square) {
	b.Set(sq, Piece{})
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// FindKing returns the square of the colour's king.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			p := b.Squares[rank][file]
			if p.Kind == King && p.Colour == colour {
				return Square{Rank: rank, File: file}, true
			}
		}
	}
	return Square{}, false
}

// PieceSquares returns the squares occupied by the colour's pieces, rank by rank.
func (b *Board) PieceSquares(colour Colour) []Square {
	squares := make([]Square, 0, 16)
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			p := b.Squares[rank][file]
			if !p.IsEmpty() && p.Colour == colour {
				squares = append(squares, Square{Rank: rank, File: file})
			}
		}
	}
	return squares
}

// String renders a text diagram, 8th rank first, with file letters below.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 0; rank < BoardSize; rank++ {
		sb.WriteByte(byte(RankBase - rank))
		sb.WriteByte(' ')
		for file := 0; file < BoardSize; file++ {
			p := b.Squares[rank][file]
			if p.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(p.Letter())
			}
			if file < BoardSize-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
