package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat writes self-play reports as JSON instead of text
	JSONFormat bool

	// ShowBoard prints the board diagram after every move in interactive play
	ShowBoard bool

	// ShowFEN adds the final FEN to each self-play report
	ShowFEN bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowBoard: true,
	}
}

func (c *Config) validateVerbosity() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d outside 0..2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	return nil
}
