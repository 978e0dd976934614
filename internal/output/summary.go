package output

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Summary accumulates the results of a self-play batch.
type Summary struct {
	Games      int `json:"games"`
	Checkmates int `json:"checkmates"`
	WhiteWins  int `json:"whiteWins"`
	BlackWins  int `json:"blackWins"`
	Stalemates int `json:"stalemates"`
	PlyLimits  int `json:"plyLimits"`
	Errors     int `json:"errors,omitempty"`
	Repeats    int `json:"repeats,omitempty"` // games identical to an earlier one
	TotalPlies int `json:"totalPlies"`
}

// Add counts one game.
func (s *Summary) Add(r worker.ProcessResult) {
	s.Games++
	if r.Error != nil {
		s.Errors++
		return
	}
	s.TotalPlies += r.Plies

	switch r.Result {
	case engine.Checkmate.String():
		s.Checkmates++
		if r.Winner == chess.White.String() {
			s.WhiteWins++
		} else {
			s.BlackWins++
		}
	case engine.Stalemate.String():
		s.Stalemates++
	case worker.ResultPlyLimit:
		s.PlyLimits++
	}
}

// AveragePlies returns the mean game length of the games without errors.
func (s *Summary) AveragePlies() float64 {
	played := s.Games - s.Errors
	if played == 0 {
		return 0
	}
	return float64(s.TotalPlies) / float64(played)
}
