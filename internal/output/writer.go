package output

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// GameWriter is the interface for writing self-play reports.
// Implementations may receive games in any order; both sort by game number
// before writing.
type GameWriter interface {
	// WriteGame records a single finished game.
	WriteGame(r worker.ProcessResult) error

	// Flush writes any buffered games to the underlying writer.
	Flush() error

	// Close flushes and writes the batch summary.
	Close() error
}

// NewGameWriter returns the writer selected by cfg.JSONFormat.
func NewGameWriter(w io.Writer, cfg *config.Config) GameWriter {
	if cfg.JSONFormat {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes games as text, one header line each, followed by a summary.
type TextWriter struct {
	w       io.Writer
	cfg     *config.Config
	pending []worker.ProcessResult
	summary Summary
	repeats *hashing.DuplicateDetector
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:       w,
		cfg:     cfg,
		repeats: hashing.NewDuplicateDetector(true),
	}
}

// WriteGame buffers a game; games are written in order on Flush.
func (tw *TextWriter) WriteGame(r worker.ProcessResult) error {
	tw.pending = append(tw.pending, r)
	tw.summary.Add(r)
	countRepeat(tw.repeats, &tw.summary, r)
	return nil
}

// Flush writes the buffered games in game-number order.
func (tw *TextWriter) Flush() error {
	sortResults(tw.pending)
	for _, r := range tw.pending {
		if tw.cfg.Verbosity >= 1 || r.Error != nil {
			OutputGame(r, tw.cfg, tw.w)
		}
	}
	tw.pending = tw.pending[:0]
	return nil
}

// Close flushes and writes the summary line.
func (tw *TextWriter) Close() error {
	if err := tw.Flush(); err != nil {
		return err
	}
	OutputSummary(&tw.summary, tw.w)
	return nil
}

// Summary returns the totals so far.
func (tw *TextWriter) Summary() Summary {
	return tw.summary
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as one JSON document on Close.
type JSONWriter struct {
	w       io.Writer
	cfg     *config.Config
	games   []worker.ProcessResult
	summary Summary
	repeats *hashing.DuplicateDetector
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:       w,
		cfg:     cfg,
		games:   make([]worker.ProcessResult, 0),
		repeats: hashing.NewDuplicateDetector(true),
	}
}

// WriteGame buffers a game for JSON output.
func (jw *JSONWriter) WriteGame(r worker.ProcessResult) error {
	jw.games = append(jw.games, r)
	jw.summary.Add(r)
	countRepeat(jw.repeats, &jw.summary, r)
	return nil
}

// Flush is a no-op; the document is only complete once the summary is known.
func (jw *JSONWriter) Flush() error {
	return nil
}

// Close writes all buffered games and the summary as one JSON object.
func (jw *JSONWriter) Close() error {
	sortResults(jw.games)

	output := &JSONOutput{
		Games:   make([]*JSONGame, 0, len(jw.games)),
		Summary: &jw.summary,
	}
	for _, r := range jw.games {
		output.Games = append(output.Games, GameToJSON(r, jw.cfg))
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(output)

	jw.games = jw.games[:0]
	return err
}

func sortResults(results []worker.ProcessResult) {
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
}

// countRepeat counts r in s.Repeats when an identical game was already written.
func countRepeat(d *hashing.DuplicateDetector, s *Summary, r worker.ProcessResult) {
	if r.Error != nil {
		return
	}
	if d.CheckAndAdd(r.Signature) {
		s.Repeats++
	}
}
