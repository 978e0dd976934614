package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// direction is a (rank delta, file delta) step.
type direction struct {
	dr, df int
}

var (
	straightDirs = []direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	allDirs      = append(append([]direction{}, straightDirs...), diagonalDirs...)
	knightJumps  = []direction{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
)

// maxRayLength is the longest ray a slider can travel on an 8x8 board.
const maxRayLength = chess.BoardSize - 1

// geometry describes how one piece kind moves.
type geometry struct {
	dirs     []direction
	distance int
}

// catalog maps each sliding or stepping kind to its rays. Knights and pawns
// have their own generators because they neither slide nor capture like
// the others.
var catalog = map[chess.PieceKind]geometry{
	chess.King:   {dirs: allDirs, distance: 1},
	chess.Queen:  {dirs: allDirs, distance: maxRayLength},
	chess.Rook:   {dirs: straightDirs, distance: maxRayLength},
	chess.Bishop: {dirs: diagonalDirs, distance: maxRayLength},
}

// RayMoves walks from the origin in one direction for at most distance steps.
// The walk stops before an off-board or friendly-occupied square and stops
// after including an enemy-occupied square.
func RayMoves(board *chess.Board, from chess.Square, dr, df, distance int, colour chess.Colour) []chess.Square {
	var squares []chess.Square
	sq := from
	for i := 0; i < distance; i++ {
		sq = sq.Offset(dr, df)
		if !sq.Valid() {
			break
		}
		occupant, occupied := board.Get(sq)
		if occupied && occupant.Colour == colour {
			break
		}
		squares = append(squares, sq)
		if occupied {
			break
		}
	}
	return squares
}

// PseudoMoves returns the unfiltered reachable squares of the piece on from:
// its movement geometry applied to the current occupancy, without regard to
// the safety of its own king. An empty origin yields nil.
func PseudoMoves(board *chess.Board, from chess.Square) []chess.Square {
	piece, ok := board.Get(from)
	if !ok {
		return nil
	}

	switch piece.Kind {
	case chess.Knight:
		return knightMoves(board, from, piece.Colour)
	case chess.Pawn:
		return pawnMoves(board, from, piece)
	case chess.King, chess.Queen, chess.Rook, chess.Bishop:
		g := catalog[piece.Kind]
		var squares []chess.Square
		for _, d := range g.dirs {
			squares = append(squares, RayMoves(board, from, d.dr, d.df, g.distance, piece.Colour)...)
		}
		return squares
	}
	return nil
}

// knightMoves returns the jump targets that are on the board and not
// occupied by a friendly piece.
func knightMoves(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Square {
	squares := make([]chess.Square, 0, len(knightJumps))
	for _, j := range knightJumps {
		to := from.Offset(j.dr, j.df)
		if !to.Valid() {
			continue
		}
		if occupant, occupied := board.Get(to); occupied && occupant.Colour == colour {
			continue
		}
		squares = append(squares, to)
	}
	return squares
}

// pawnMoves returns forward advances onto empty squares (two squares from
// an unmoved pawn when both are empty) and diagonal captures onto enemy pieces.
func pawnMoves(board *chess.Board, from chess.Square, pawn chess.Piece) []chess.Square {
	var squares []chess.Square
	dir := chess.PawnDirection(pawn.Colour)

	one := from.Offset(dir, 0)
	if _, occupied := board.Get(one); one.Valid() && !occupied {
		squares = append(squares, one)
		two := from.Offset(2*dir, 0)
		if _, occupied := board.Get(two); !pawn.HasMoved && two.Valid() && !occupied {
			squares = append(squares, two)
		}
	}

	for _, df := range []int{-1, 1} {
		to := from.Offset(dir, df)
		if target, occupied := board.Get(to); occupied && target.Colour != pawn.Colour {
			squares = append(squares, to)
		}
	}
	return squares
}

// canReach reports whether to is among the pseudo moves of the piece on from.
func canReach(board *chess.Board, from, to chess.Square) bool {
	for _, sq := range PseudoMoves(board, from) {
		if sq == to {
			return true
		}
	}
	return false
}
