// Package output formats self-play game reports as text or JSON.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputGame writes a text report of one self-play game: a header line,
// the numbered move list at verbosity 2 and the final FEN if requested.
func OutputGame(r worker.ProcessResult, cfg *config.Config, w io.Writer) {
	fmt.Fprintln(w, headline(r))
	if r.Error != nil {
		return
	}

	if cfg.Verbosity >= 2 && len(r.Moves) > 0 {
		outputMoves(r, w)
	}
	if cfg.ShowFEN {
		fmt.Fprintf(w, "FEN: %s\n", r.FinalFEN)
	}
}

// headline summarises a game in one line, e.g.
// "Game 3 (seed 42): checkmate, White wins after 37 plies".
func headline(r worker.ProcessResult) string {
	prefix := fmt.Sprintf("Game %d (seed %d)", r.Index+1, r.Seed)
	if r.Error != nil {
		return fmt.Sprintf("%s: error: %v", prefix, r.Error)
	}
	if r.Winner != "" {
		return fmt.Sprintf("%s: %s, %s wins after %d plies", prefix, r.Result, r.Winner, r.Plies)
	}
	return fmt.Sprintf("%s: %s after %d plies", prefix, r.Result, r.Plies)
}

// outputMoves writes the move list with move numbers, wrapped at 80 columns.
func outputMoves(r worker.ProcessResult, w io.Writer) {
	ow := NewOutputWriter(w, 80)

	moveNum := 1
	isWhite := !r.BlackFirst
	for i, move := range r.Moves {
		if isWhite {
			ow.Write(fmt.Sprintf("%d.", moveNum))
		} else if i == 0 {
			ow.Write(fmt.Sprintf("%d...", moveNum))
		}
		ow.Write(move)

		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}
	ow.NewLine()
}

// OutputSummary writes the batch totals as text.
func OutputSummary(s *Summary, w io.Writer) {
	fmt.Fprintf(w, "%d games: %d checkmate (White %d, Black %d), %d stalemate, %d ply-limit",
		s.Games, s.Checkmates, s.WhiteWins, s.BlackWins, s.Stalemates, s.PlyLimits)
	if s.Errors > 0 {
		fmt.Fprintf(w, ", %d errors", s.Errors)
	}
	if s.Repeats > 0 {
		fmt.Fprintf(w, ", %d repeated", s.Repeats)
	}
	fmt.Fprintf(w, "; average %.1f plies\n", s.AveragePlies())
}
