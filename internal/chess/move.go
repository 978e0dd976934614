package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Square addresses one cell of the board by rank and file, each in [0,8).
// Rank 0 is the 8th rank (Black's back rank); file 0 is the a-file.
type Square struct {
	Rank int
	File int
}

// Sq is shorthand for Square{Rank: rank, File: file}.
func Sq(rank, file int) Square {
	return Square{Rank: rank, File: file}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Rank >= 0 && s.Rank < BoardSize && s.File >= 0 && s.File < BoardSize
}

// Offset returns the square dr ranks and df files away. The result may be off the board.
func (s Square) Offset(dr, df int) Square {
	return Square{Rank: s.Rank + dr, File: s.File + df}
}

// String returns the algebraic name of the square, e.g. "e2".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Rank, s.File)
	}
	return string([]byte{byte(ColBase + s.File), byte(RankBase - s.Rank)})
}

// ParseSquare parses an algebraic square name such as "e2".
func ParseSquare(text string) (Square, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if len(text) != 2 {
		return Square{}, fmt.Errorf("square %q: %w", text, errors.ErrInvalidMoveText)
	}
	col, rank := text[0], text[1]
	if col < ColBase || col >= ColBase+BoardSize || rank < '1' || rank > RankBase {
		return Square{}, fmt.Errorf("square %q: %w", text, errors.ErrInvalidMoveText)
	}
	return Square{Rank: int(RankBase - rank), File: int(col - ColBase)}, nil
}

// Move is an origin and destination pair.
type Move struct {
	From Square
	To   Square
}

// String returns the move in long coordinate notation, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseMove parses "e2e4", "e2-e4" or "e2 e4".
func ParseMove(text string) (Move, error) {
	clean := strings.NewReplacer("-", "", " ", "").Replace(strings.TrimSpace(text))
	if len(clean) != 4 {
		return Move{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidMoveText)
	}
	from, err := ParseSquare(clean[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(clean[2:])
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}
