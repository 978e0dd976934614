// Package worker provides a worker pool for playing many games in parallel.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// WorkItem describes one game to be played.
type WorkItem struct {
	Index int   // Position in the batch, for ordering reports
	Seed  int64 // Seed for the game's random opponent
}

// ProcessResult represents the result of playing one game.
type ProcessResult struct {
	Index      int
	Seed       int64
	GameID     string
	Plies      int
	BlackFirst bool     // Black made the first move
	Result     string   // "checkmate", "stalemate" or "ply-limit"
	Winner     string   // Colour that delivered mate; empty otherwise
	Moves      []string // Coordinate notation, in order
	FinalFEN   string
	Signature  hashing.GameSignature // Identifies repeats within a batch
	Error      error
}

// ProcessFunc plays the game described by a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc on a fixed set of goroutines, one game at a time each.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the capacity of the work and result channels.
// Values below 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPoolWithOptions creates a pool for processFunc.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker plays items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without playing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues a game. It blocks while the work channel is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop makes workers skip the games still queued.
// Games already being played finish and their results are still sent.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Abort stops the pool and discards results until the result channel is
// closed, so no worker stays blocked on a send. The goroutine submitting
// work must still call Close, or Abort never returns.
func (p *Pool) Abort() {
	p.Stop()
	for range p.resultChan {
	}
}

// Close closes the work channel and waits for all workers to finish.
// The result channel is closed once they have.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the channel of finished games.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
