package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// MustGame creates a game from a FEN string, or the standard start when fen
// is empty. It calls t.Fatal if the FEN is rejected.
func MustGame(t *testing.T, fen string) *engine.Game {
	t.Helper()
	if fen == "" {
		return engine.NewGame()
	}
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) error: %v", fen, err)
	}
	return g
}

// MustSquare parses an algebraic square name, calling t.Fatal on failure.
func MustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", name, err)
	}
	return sq
}

// Squares parses a list of algebraic square names.
func Squares(t *testing.T, names ...string) []chess.Square {
	t.Helper()
	squares := make([]chess.Square, 0, len(names))
	for _, name := range names {
		squares = append(squares, MustSquare(t, name))
	}
	return squares
}

// MustMove parses a coordinate move such as "e2e4", calling t.Fatal on failure.
func MustMove(t *testing.T, text string) chess.Move {
	t.Helper()
	m, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q) error: %v", text, err)
	}
	return m
}

// MustPlay applies each coordinate move in order, calling t.Fatal at the
// first rejection. It returns the outcome of the last move.
func MustPlay(t *testing.T, g *engine.Game, moves ...string) engine.MoveOutcome {
	t.Helper()
	var outcome engine.MoveOutcome
	for i, text := range moves {
		m := MustMove(t, text)
		var err error
		outcome, err = g.Move(m.From, m.To)
		if err != nil {
			t.Fatalf("move %d (%s) rejected: %v\n%s", i+1, text, err, boardText(g))
		}
	}
	return outcome
}

func boardText(g *engine.Game) string {
	b := g.Board()
	return b.String()
}
