package worker

import (
	"errors"
	"log"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// ResultPlyLimit reports a game stopped at the ply cap before mate or stalemate.
const ResultPlyLimit = "ply-limit"

// GameFactory creates a fresh game for each work item.
type GameFactory func(opts ...engine.GameOption) (*engine.Game, error)

// SelfPlayFunc returns a ProcessFunc that plays a random-versus-random game
// from newGame until checkmate, stalemate or maxPlies. Each call owns its
// game and opponent, so the function is safe to run on many workers.
// A nil logger disables per-game logging.
func SelfPlayFunc(newGame GameFactory, maxPlies int, logger *log.Logger) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		result := ProcessResult{Index: item.Index, Seed: item.Seed}

		var opts []engine.GameOption
		if logger != nil {
			opts = append(opts, engine.WithLogger(logger))
		}
		g, err := newGame(opts...)
		if err != nil {
			result.Error = err
			return result
		}
		result.GameID = g.ID()
		result.BlackFirst = g.ToMove() == chess.Black

		opponent := engine.NewRandomOpponent(item.Seed)
		for g.Ply() < maxPlies {
			if _, err := opponent.Play(g); err != nil {
				if errors.Is(err, chesserrors.ErrNoLegalMoves) {
					break
				}
				result.Error = chesserrors.Wrapf(err, "game %d", item.Index)
				return result
			}
		}

		result.Plies = g.Ply()
		result.FinalFEN = g.FEN()
		for _, m := range g.History() {
			result.Moves = append(result.Moves, m.String())
		}
		board := g.Board()
		result.Signature = hashing.NewSignature(result.Moves, &board, g.ToMove())

		status := g.Result()
		switch {
		case status == engine.Checkmate:
			result.Result = status.String()
			result.Winner = g.ToMove().Opposite().String()
		case status == engine.Stalemate:
			result.Result = status.String()
		default:
			result.Result = ResultPlyLimit
		}
		return result
	}
}
