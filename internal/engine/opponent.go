package engine

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// RandomOpponent picks uniformly among the legal moves of a side.
// It looks no further ahead than the current position.
// A RandomOpponent is not safe for concurrent use; give each goroutine its own.
type RandomOpponent struct {
	rng *rand.Rand
}

// NewRandomOpponent creates an opponent whose choices are reproducible for a given seed.
func NewRandomOpponent(seed int64) *RandomOpponent {
	return &RandomOpponent{rng: rand.New(rand.NewSource(seed))}
}

// ChooseMove returns a uniformly random legal move for colour, or false when
// colour has no legal move (checkmate or stalemate).
func (o *RandomOpponent) ChooseMove(g *Game, colour chess.Colour) (chess.Move, bool) {
	moves := g.AllLegalMoves(colour)
	if len(moves) == 0 {
		return chess.Move{}, false
	}
	return moves[o.rng.Intn(len(moves))], true
}

// Play chooses a move for the side to move and applies it.
// Returns ErrNoLegalMoves when the side to move is checkmated or stalemated.
func (o *RandomOpponent) Play(g *Game) (MoveOutcome, error) {
	move, ok := o.ChooseMove(g, g.ToMove())
	if !ok {
		return MoveOutcome{}, errors.ErrNoLegalMoves
	}
	return g.Move(move.From, move.To)
}
