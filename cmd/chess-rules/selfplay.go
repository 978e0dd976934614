// selfplay.go - Batch random-versus-random play
package main

import (
	"log"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// runSelfPlay plays cfg.Games games on cfg.Workers workers and writes the
// report to cfg.OutputFile. Game i uses seed cfg.Seed+i, so a batch is
// reproducible from its seed whatever the worker count.
func runSelfPlay(cfg *config.Config, logger *log.Logger) error {
	return playBatch(cfg, logger, output.NewGameWriter(cfg.OutputFile, cfg))
}

// playBatch runs the batch and hands each game to writer. A write error
// abandons the rest of the batch.
func playBatch(cfg *config.Config, logger *log.Logger, writer output.GameWriter) error {
	var gameLogger *log.Logger
	if cfg.Verbosity >= 2 {
		gameLogger = logger
	}

	bufferSize := cfg.Games
	if bufferSize > 100 {
		bufferSize = 100
	}
	pool := worker.NewPoolWithOptions(
		worker.SelfPlayFunc(cfg.NewGame, cfg.MaxPlies, gameLogger),
		worker.WithWorkers(cfg.Workers),
		worker.WithBufferSize(bufferSize),
	)
	if cfg.Verbosity >= 2 {
		logger.Printf("playing %d games on %d workers", cfg.Games, pool.NumWorkers())
	}
	pool.Start()

	go func() {
		for i := 0; i < cfg.Games; i++ {
			pool.Submit(worker.WorkItem{Index: i, Seed: cfg.Seed + int64(i)})
		}
		pool.Close()
	}()

	for result := range pool.Results() {
		if result.Error != nil {
			logger.Printf("game %d: %v", result.Index+1, result.Error)
		}
		if err := writer.WriteGame(result); err != nil {
			pool.Abort()
			return err
		}
	}
	return writer.Close()
}
