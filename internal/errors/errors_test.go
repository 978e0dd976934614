package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrNoPieceAtOrigin", ErrNoPieceAtOrigin, ErrNoPieceAtOrigin},
		{"ErrWrongPlayerTurn", ErrWrongPlayerTurn, ErrWrongPlayerTurn},
		{"ErrIllegalDestination", ErrIllegalDestination, ErrIllegalDestination},
		{"ErrEmptyHistory", ErrEmptyHistory, ErrEmptyHistory},
		{"ErrNoLegalMoves", ErrNoLegalMoves, ErrNoLegalMoves},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrInvalidMoveText", ErrInvalidMoveText, ErrInvalidMoveText},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct verifies the move rejections are not confused with each other
func TestSentinelErrors_Distinct(t *testing.T) {
	rejections := []error{ErrNoPieceAtOrigin, ErrWrongPlayerTurn, ErrIllegalDestination}
	for i, a := range rejections {
		for j, b := range rejections {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
		want     string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:    ErrIllegalDestination,
				Move:   "e2e5",
				Colour: "White",
				Ply:    1,
			},
			contains: []string{"ply 1", "White to move", "e2e5", "illegal destination"},
		},
		{
			name: "sentinel only",
			err:  &MoveError{Err: ErrNoPieceAtOrigin},
			want: "no piece at origin",
		},
		{
			name: "context only",
			err:  &MoveError{Move: "a1a2"},
			want: `move "a1a2"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			if tt.want != "" && msg != tt.want {
				t.Errorf("MoveError.Error() = %q, want %q", msg, tt.want)
			}
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_Unwrap verifies that MoveError properly implements Unwrap
func TestMoveError_Unwrap(t *testing.T) {
	moveErr := &MoveError{
		Err:  ErrWrongPlayerTurn,
		Move: "e7e5",
	}

	unwrapped := errors.Unwrap(moveErr)
	if !errors.Is(unwrapped, ErrWrongPlayerTurn) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrWrongPlayerTurn)
	}

	if !errors.Is(moveErr, ErrWrongPlayerTurn) {
		t.Error("errors.Is(moveErr, ErrWrongPlayerTurn) = false, want true")
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:    ErrIllegalDestination,
		Move:   "e1e2",
		Colour: "White",
		Ply:    7,
	}

	wrapped := fmt.Errorf("computer move failed: %w", moveErr)

	var extractedErr *MoveError
	if !errors.As(wrapped, &extractedErr) {
		t.Fatal("errors.As() could not extract MoveError")
	}

	if extractedErr.Ply != 7 {
		t.Errorf("extractedErr.Ply = %d, want 7", extractedErr.Ply)
	}
	if extractedErr.Move != "e1e2" {
		t.Errorf("extractedErr.Move = %q, want %q", extractedErr.Move, "e1e2")
	}
	if !errors.Is(wrapped, ErrIllegalDestination) {
		t.Error("errors.Is(wrapped, ErrIllegalDestination) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "loading start position")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "loading start position") {
		t.Errorf("Wrap should include context, got %q", msg)
	}

	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrInvalidConfig, "workers = %d", -3)

	if !errors.Is(wrapped, ErrInvalidConfig) {
		t.Error("Wrapf should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "workers = -3") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
