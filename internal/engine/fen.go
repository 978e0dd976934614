package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
// Castling and en passant are not part of these rules, so those fields are empty.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// ConvertFENCharToPiece converts a FEN character to a piece kind.
func ConvertFENCharToPiece(c byte) chess.PieceKind {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.NoKind
	}
}

// NewBoardFromFEN creates a board from a FEN string and returns it with the
// side to move. Castling, en passant and clock fields are accepted and ignored.
// Pawns standing off their starting rank are marked as already moved.
func NewBoardFromFEN(fen string) (*chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, chess.White, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.White, err
	}

	return board, toMove, nil
}

// NewGameFromFEN creates a game starting from the given position.
// Both sides must have exactly one king, and the side not on move must not
// be in check.
func NewGameFromFEN(fen string, opts ...GameOption) (*Game, error) {
	board, toMove, err := NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := countKings(board, colour); n != 1 {
			return nil, fmt.Errorf("%s has %d kings: %w", colour, n, errors.ErrInvalidFEN)
		}
	}
	if IsInCheck(board, toMove.Opposite()) {
		return nil, fmt.Errorf("%s is in check but not on move: %w", toMove.Opposite(), errors.ErrInvalidFEN)
	}
	return newGameFrom(*board, toMove, opts...), nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("%d ranks in piece placement: %w", len(ranks), errors.ErrInvalidFEN)
	}

	for rank, row := range ranks {
		file := 0
		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			case c > unicode.MaxASCII:
				return fmt.Errorf("invalid piece character: %q: %w", c, errors.ErrInvalidFEN)
			default:
				kind := ConvertFENCharToPiece(byte(c))
				if kind == chess.NoKind {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if file >= chess.BoardSize {
					return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}

				piece := chess.NewPiece(colour, kind)
				if kind == chess.Pawn {
					if rank == chess.PromotionRank(colour) {
						return fmt.Errorf("pawn on its last rank: %w", errors.ErrInvalidFEN)
					}
					piece.HasMoved = rank != chess.PawnStartRank(colour)
				}
				board.Set(chess.Sq(rank, file), piece)
				file++
			}
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %c has %d files: %w", chess.RankBase-rank, file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field; White if absent.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

func countKings(board *chess.Board, colour chess.Colour) int {
	n := 0
	for _, sq := range board.PieceSquares(colour) {
		if p, _ := board.Get(sq); p.Kind == chess.King {
			n++
		}
	}
	return n
}

// BoardToFEN converts a board to a FEN string. The castling and en passant
// fields are always "-"; moveNumber fills the fullmove field.
func BoardToFEN(board *chess.Board, toMove chess.Colour, moveNumber int) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	fmt.Fprintf(&sb, " - - 0 %d", moveNumber)

	return sb.String()
}

// FEN returns the game's current position as a FEN string.
func (g *Game) FEN() string {
	return BoardToFEN(&g.board, g.toMove, g.Ply()/2+1)
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece, ok := board.Get(chess.Sq(rank, file))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}
