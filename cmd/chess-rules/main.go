// chess-rules plays standard chess against a random opponent, or plays
// batches of random games and reports how they ended.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	logger := log.New(cfg.LogFile, "chess-rules: ", log.LstdFlags)

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Verbosity >= 2 {
		logger.Printf("seed %d", cfg.Seed)
	}

	if cfg.Enabled() {
		if err := runSelfPlay(cfg, logger); err != nil {
			logger.Printf("self-play: %v", err)
			os.Exit(1)
		}
		return
	}

	s, err := newSession(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := s.run(os.Stdin); err != nil {
		logger.Printf("reading input: %v", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess against a random opponent, or run random self-play.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nInteractive commands:\n")
	fmt.Fprintf(os.Stderr, "  e2e4      move a piece (also e2-e4, e2 e4)\n")
	fmt.Fprintf(os.Stderr, "  moves e2  list legal destinations of a piece; 'moves' lists all yours\n")
	fmt.Fprintf(os.Stderr, "  undo      take back your last move and the reply\n")
	fmt.Fprintf(os.Stderr, "  reset     start again from the initial position\n")
	fmt.Fprintf(os.Stderr, "  board     print the board\n")
	fmt.Fprintf(os.Stderr, "  fen       print the position as FEN\n")
	fmt.Fprintf(os.Stderr, "  quit      leave\n")
}
