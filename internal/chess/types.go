// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ParseColour converts "white"/"w" or "black"/"b" to a colour.
func ParseColour(s string) (Colour, bool) {
	switch s {
	case "white", "White", "w", "W":
		return White, true
	case "black", "Black", "b", "B":
		return Black, true
	}
	return White, false
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	NoKind PieceKind = iota // Empty square
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "King", "Queen", "Rook", "Bishop", "Knight", "Pawn"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'K', 'Q', 'R', 'B', 'N', 'P'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsSliding reports whether the kind moves along rays of any length.
func (k PieceKind) IsSliding() bool {
	return k == Queen || k == Rook || k == Bishop
}

// Piece is a coloured piece occupying a square.
// The zero value is an empty square.
type Piece struct {
	Kind   PieceKind
	Colour Colour
	// HasMoved gates the pawn's two-square opening advance.
	HasMoved bool
}

// NewPiece creates an unmoved piece.
func NewPiece(colour Colour, kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: colour}
}

// IsEmpty reports whether p represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Colour == Black && l >= 'A' && l <= 'Z' {
		l += 'a' - 'A'
	}
	return l
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// Constants for board dimensions.
const (
	BoardSize = 8

	RankBase = '8' // rank index 0 is the 8th rank
	ColBase  = 'a'
)

// PawnDirection returns the rank delta of a pawn advance:
// White moves toward rank 0, Black toward rank 7.
func PawnDirection(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// PawnStartRank returns the rank on which the colour's pawns start.
func PawnStartRank(colour Colour) int {
	if colour == White {
		return 6
	}
	return 1
}

// PromotionRank returns the farthest rank for the colour's pawns.
func PromotionRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// BackRank returns the rank holding the colour's pieces at setup.
func BackRank(colour Colour) int {
	if colour == White {
		return BoardSize - 1
	}
	return 0
}
