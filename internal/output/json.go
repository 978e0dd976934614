package output

import (
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// JSONGame represents a self-play game in JSON format.
type JSONGame struct {
	Number   int      `json:"number"`
	ID       string   `json:"id,omitempty"`
	Seed     int64    `json:"seed"`
	Result   string   `json:"result,omitempty"`
	Winner   string   `json:"winner,omitempty"`
	PlyCount int      `json:"plyCount"`
	Moves    []string `json:"moves,omitempty"`
	FinalFEN string   `json:"finalFEN,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games   []*JSONGame `json:"games"`
	Summary *Summary    `json:"summary,omitempty"`
}

// GameToJSON converts a self-play result to JSON format. Moves are always
// included; the final FEN only when cfg.ShowFEN is set.
func GameToJSON(r worker.ProcessResult, cfg *config.Config) *JSONGame {
	jg := &JSONGame{
		Number: r.Index + 1,
		ID:     r.GameID,
		Seed:   r.Seed,
	}
	if r.Error != nil {
		jg.Error = r.Error.Error()
		return jg
	}

	jg.Result = r.Result
	jg.Winner = r.Winner
	jg.PlyCount = r.Plies
	jg.Moves = r.Moves
	if cfg.ShowFEN {
		jg.FinalFEN = r.FinalFEN
	}
	return jg
}
