// Package config provides configuration for the chess-rules command.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
// The embedded sub-configs group related settings; their fields are
// promoted, so cfg.Seed and cfg.PlayConfig.Seed name the same value.
type Config struct {
	PlayConfig
	SelfPlayConfig
	OutputConfig

	Verbosity int // 0=nothing, 1=results, 2=every move

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		PlayConfig:     *NewPlayConfig(),
		SelfPlayConfig: *NewSelfPlayConfig(),
		OutputConfig:   *NewOutputConfig(),
		Verbosity:      1,
		OutputFile:     os.Stdout,
		LogFile:        os.Stderr,
	}
}

// SetOutput sets the writer that receives game reports.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the writer that receives diagnostics.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every sub-config and returns the first problem found.
// Errors wrap errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	if err := c.PlayConfig.Validate(); err != nil {
		return err
	}
	if err := c.SelfPlayConfig.Validate(); err != nil {
		return err
	}
	return c.validateVerbosity()
}
