package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// PlayConfig holds settings for a single game against the random opponent.
type PlayConfig struct {
	// HumanColour is the side entered from the terminal; the opponent plays the other.
	HumanColour chess.Colour

	// StartFEN, if set, replaces the standard starting position.
	StartFEN string

	// Seed drives the random opponent. Zero means seed from the clock.
	Seed int64
}

// NewPlayConfig creates a PlayConfig with default values.
func NewPlayConfig() *PlayConfig {
	return &PlayConfig{HumanColour: chess.White}
}

// Validate checks that the colour is real and the start position loads.
func (p *PlayConfig) Validate() error {
	if p.HumanColour != chess.White && p.HumanColour != chess.Black {
		return fmt.Errorf("human colour %d: %w", p.HumanColour, errors.ErrInvalidConfig)
	}
	if p.StartFEN != "" {
		if _, err := engine.NewGameFromFEN(p.StartFEN); err != nil {
			return fmt.Errorf("start position %q: %v: %w", p.StartFEN, err, errors.ErrInvalidConfig)
		}
	}
	return nil
}

// NewGame creates a game at the configured start position.
func (p *PlayConfig) NewGame(opts ...engine.GameOption) (*engine.Game, error) {
	if p.StartFEN == "" {
		return engine.NewGame(opts...), nil
	}
	return engine.NewGameFromFEN(p.StartFEN, opts...)
}
