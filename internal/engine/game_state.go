package engine

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Status is the derived state of one side's position.
type Status int

const (
	InProgress Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "unknown"
}

// Terminal reports whether the status ends the game.
func (s Status) Terminal() bool {
	return s == Checkmate || s == Stalemate
}

// HistoryEntry pairs an applied move with the board as it stood before it.
type HistoryEntry struct {
	Move   chess.Move
	Before chess.Board
}

// MoveOutcome reports a successfully applied move.
type MoveOutcome struct {
	Move     chess.Move
	Mover    chess.Colour
	Piece    chess.Piece // as it stood on the origin
	Captured chess.Piece // zero Piece when nothing was captured
	Promoted bool
	// Opponent is the status of the side now on move.
	Opponent Status
}

// IsCapture reports whether the move removed an enemy piece.
func (o MoveOutcome) IsCapture() bool {
	return !o.Captured.IsEmpty()
}

// Describe renders the outcome as a sentence, e.g.
// "White moved Pawn e2e4 and captures Knight".
func (o MoveOutcome) Describe() string {
	s := fmt.Sprintf("%s moved %s %s", o.Mover, o.Piece.Kind, o.Move)
	if o.IsCapture() {
		s += " and captures " + o.Captured.Kind.String()
	}
	if o.Promoted {
		s += ", promoting to Queen"
	}
	switch o.Opponent {
	case Check:
		s += fmt.Sprintf("; %s is in check", o.Mover.Opposite())
	case Checkmate:
		s += fmt.Sprintf("; %s is checkmated", o.Mover.Opposite())
	case Stalemate:
		s += "; stalemate"
	}
	return s
}

// GameOption configures a Game.
type GameOption func(*Game)

// WithLogger attaches a logger that records rejected moves, promotions,
// undo/reset and terminal positions.
func WithLogger(logger *log.Logger) GameOption {
	return func(g *Game) {
		g.logger = logger
	}
}

// Game owns the live board, the side to move and the undo history.
// The board can only be changed through Move, Undo and Reset.
// A Game is not safe for concurrent use.
type Game struct {
	id      string
	board   chess.Board
	start   chess.Board
	startTo chess.Colour
	toMove  chess.Colour
	history []HistoryEntry
	logger  *log.Logger
}

// NewGame creates a game at the standard starting position with White to move.
func NewGame(opts ...GameOption) *Game {
	return newGameFrom(*chess.NewInitialBoard(), chess.White, opts...)
}

// newGameFrom creates a game whose Reset returns to the given position.
func newGameFrom(board chess.Board, toMove chess.Colour, opts ...GameOption) *Game {
	g := &Game{
		id:      uuid.New().String(),
		board:   board,
		start:   board,
		startTo: toMove,
		toMove:  toMove,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier of the game.
func (g *Game) ID() string {
	return g.id
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	return g.toMove
}

// Board returns a copy of the live board.
func (g *Game) Board() chess.Board {
	return g.board
}

// Piece returns the piece on sq; false for empty or off-board squares.
func (g *Game) Piece(sq chess.Square) (chess.Piece, bool) {
	return g.board.Get(sq)
}

// LegalMoves returns the legal destinations of the piece on sq,
// whichever colour it belongs to.
func (g *Game) LegalMoves(sq chess.Square) []chess.Square {
	return LegalMoves(&g.board, sq)
}

// AllLegalMoves returns every legal move for colour.
func (g *Game) AllLegalMoves(colour chess.Colour) []chess.Move {
	return AllLegalMoves(&g.board, colour)
}

// Move validates and plays a move for the side to move. On failure the game
// is unchanged and the error is a *errors.MoveError wrapping
// ErrNoPieceAtOrigin, ErrWrongPlayerTurn or ErrIllegalDestination.
func (g *Game) Move(from, to chess.Square) (MoveOutcome, error) {
	move := chess.Move{From: from, To: to}

	piece, ok := g.board.Get(from)
	switch {
	case !ok:
		return MoveOutcome{}, g.reject(move, errors.ErrNoPieceAtOrigin)
	case piece.Colour != g.toMove:
		return MoveOutcome{}, g.reject(move, errors.ErrWrongPlayerTurn)
	case !IsLegal(&g.board, from, to):
		return MoveOutcome{}, g.reject(move, errors.ErrIllegalDestination)
	}

	before := g.board
	applied, _ := ApplyMove(&g.board, move)
	g.history = append(g.history, HistoryEntry{Move: move, Before: before})
	g.toMove = g.toMove.Opposite()

	outcome := MoveOutcome{
		Move:     move,
		Mover:    piece.Colour,
		Piece:    applied.Moved,
		Captured: applied.Captured,
		Promoted: applied.Promoted,
		Opponent: g.Status(g.toMove),
	}
	if applied.Promoted {
		g.logf("%s pawn promoted to queen on %s", piece.Colour, to)
	}
	if outcome.Opponent.Terminal() {
		g.logf("%s after %s", outcome.Opponent, move)
	}
	return outcome, nil
}

// Undo restores the board from before the most recent move and gives the
// move back to the side that made it. Returns false if there is nothing to undo.
func (g *Game) Undo() bool {
	return g.UndoE() == nil
}

// UndoE is Undo reporting ErrEmptyHistory instead of false.
func (g *Game) UndoE() error {
	n := len(g.history)
	if n == 0 {
		return errors.ErrEmptyHistory
	}
	last := g.history[n-1]
	g.history = g.history[:n-1]
	g.board = last.Before
	g.toMove = g.toMove.Opposite()
	g.logf("undo %s", last.Move)
	return nil
}

// Reset returns the game to its starting position and clears the history.
func (g *Game) Reset() {
	g.board = g.start
	g.toMove = g.startTo
	g.history = nil
	g.logf("reset")
}

// History returns the moves played since the start or the last reset.
func (g *Game) History() []chess.Move {
	moves := make([]chess.Move, len(g.history))
	for i, h := range g.history {
		moves[i] = h.Move
	}
	return moves
}

// Ply returns the number of moves played since the start or the last reset.
func (g *Game) Ply() int {
	return len(g.history)
}

// Check reports whether colour's king is attacked.
func (g *Game) Check(colour chess.Colour) bool {
	return IsInCheck(&g.board, colour)
}

// Checkmate reports whether colour is in check with no legal move.
func (g *Game) Checkmate(colour chess.Colour) bool {
	return g.Check(colour) && !HasLegalMoves(&g.board, colour)
}

// Stalemate reports whether colour is not in check but has no legal move.
func (g *Game) Stalemate(colour chess.Colour) bool {
	return !g.Check(colour) && !HasLegalMoves(&g.board, colour)
}

// Status derives colour's status from the current board.
func (g *Game) Status(colour chess.Colour) Status {
	inCheck := g.Check(colour)
	hasMoves := HasLegalMoves(&g.board, colour)
	switch {
	case inCheck && !hasMoves:
		return Checkmate
	case inCheck:
		return Check
	case !hasMoves:
		return Stalemate
	}
	return InProgress
}

// Result returns the status of the side to move.
func (g *Game) Result() Status {
	return g.Status(g.toMove)
}

func (g *Game) reject(move chess.Move, err error) error {
	g.logf("rejected %s: %v", move, err)
	return &errors.MoveError{
		Err:    err,
		Move:   move.String(),
		Colour: g.toMove.String(),
		Ply:    len(g.history) + 1,
	}
}

func (g *Game) logf(format string, args ...interface{}) {
	if g.logger == nil {
		return
	}
	g.logger.Printf("game %s: "+format, append([]interface{}{g.id}, args...)...)
}
