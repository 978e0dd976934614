// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Write the self-play report in JSON format")
	noBoard      = flag.Bool("noboard", false, "Don't print the board after each move")
	showFEN      = flag.Bool("fenout", false, "Include the final FEN in self-play reports")

	// Game options
	humanColour = flag.String("colour", "white", "Side you play: white or black")
	seed        = flag.Int64("seed", 0, "Seed for the random opponent (0 = from the clock)")
	startFEN    = flag.String("fen", "", "Start from this FEN position")

	// Self-play
	selfPlay = flag.Int("selfplay", 0, "Play N random-vs-random games and report the results")
	workers  = flag.Int("workers", runtime.NumCPU(), "Number of games played concurrently")
	maxPlies = flag.Int("maxplies", config.DefaultMaxPlies, "Stop a self-play game after N plies")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this file")
	appendLog = flag.String("L", "", "Append diagnostics to this file")

	// Misc
	verbose = flag.Bool("v", false, "Verbose mode (report every move)")
	quiet   = flag.Bool("s", false, "Silent mode (summary only)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies the parsed flags into cfg.
func applyFlags(cfg *config.Config) error {
	if err := applyGameFlags(cfg); err != nil {
		return err
	}
	applySelfPlayFlags(cfg)
	applyOutputFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	return nil
}

// applyGameFlags configures the interactive game.
func applyGameFlags(cfg *config.Config) error {
	colour, ok := chess.ParseColour(*humanColour)
	if !ok {
		return fmt.Errorf("colour %q: %w", *humanColour, errors.ErrInvalidConfig)
	}
	cfg.HumanColour = colour
	cfg.Seed = *seed
	cfg.StartFEN = *startFEN
	return nil
}

// applySelfPlayFlags configures batch play.
func applySelfPlayFlags(cfg *config.Config) {
	cfg.Games = *selfPlay
	cfg.Workers = *workers
	cfg.MaxPlies = *maxPlies
}

// applyOutputFlags configures report formatting.
func applyOutputFlags(cfg *config.Config) {
	cfg.JSONFormat = *jsonOutput
	cfg.ShowBoard = !*noBoard
	cfg.ShowFEN = *showFEN
}
