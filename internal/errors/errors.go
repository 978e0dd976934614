// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines the move rejection taxonomy and a structured error type that
// preserves context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrNoPieceAtOrigin indicates the origin square is empty or off the board.
	ErrNoPieceAtOrigin = errors.New("no piece at origin")

	// ErrWrongPlayerTurn indicates the piece at the origin belongs to the side not on move.
	ErrWrongPlayerTurn = errors.New("wrong player's turn")

	// ErrIllegalDestination indicates the destination is not a legal move for the piece.
	ErrIllegalDestination = errors.New("illegal destination")

	// ErrEmptyHistory indicates there is no move to undo.
	ErrEmptyHistory = errors.New("nothing to undo")

	// ErrNoLegalMoves indicates the side to move is checkmated or stalemated.
	ErrNoLegalMoves = errors.New("no legal moves")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidMoveText indicates unparseable square or move notation.
	ErrInvalidMoveText = errors.New("invalid move text")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a rejection with the move, the side on move and the
// ply at which it was attempted. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying sentinel
	Move   string // The move in coordinate notation (e.g. "e2e4")
	Colour string // Side to move when the move was attempted
	Ply    int    // 1-based ply at which the move was attempted (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Colour != "" {
		parts = append(parts, e.Colour+" to move")
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
