package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// DefaultMaxPlies caps a self-play game that reaches neither mate nor stalemate.
const DefaultMaxPlies = 400

// SelfPlayConfig holds settings for batches of random-versus-random games.
type SelfPlayConfig struct {
	// Games is the number of games to play; 0 selects interactive play.
	Games int

	// Workers is the number of games played concurrently.
	Workers int

	// MaxPlies ends a game as "ply-limit" once reached.
	MaxPlies int
}

// NewSelfPlayConfig creates a SelfPlayConfig with default values.
func NewSelfPlayConfig() *SelfPlayConfig {
	return &SelfPlayConfig{
		Workers:  runtime.NumCPU(),
		MaxPlies: DefaultMaxPlies,
	}
}

// Enabled reports whether a self-play batch was requested.
func (s *SelfPlayConfig) Enabled() bool {
	return s.Games > 0
}

// Validate checks that the self-play configuration is valid.
func (s *SelfPlayConfig) Validate() error {
	if s.Games < 0 {
		return fmt.Errorf("self-play games (%d) < 0: %w", s.Games, errors.ErrInvalidConfig)
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers (%d) < 1: %w", s.Workers, errors.ErrInvalidConfig)
	}
	if s.MaxPlies < 1 {
		return fmt.Errorf("max plies (%d) < 1: %w", s.MaxPlies, errors.ErrInvalidConfig)
	}
	return nil
}
