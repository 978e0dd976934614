package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

func sampleResults() []worker.ProcessResult {
	return []worker.ProcessResult{
		{
			Index:     1,
			Seed:      8,
			GameID:    "b",
			Plies:     3,
			Result:    "stalemate",
			Moves:     []string{"e2e4", "e7e5", "d1h5"},
			FinalFEN:  "rnbqkbnr/pppp1ppp/8/4p2Q/4P3/8/PPPP1PPP/RNB1KBNR b - - 0 2",
			Signature: hashing.GameSignature{Hash: 2, MoveCount: 3},
		},
		{
			Index:     0,
			Seed:      7,
			GameID:    "a",
			Plies:     7,
			Result:    "checkmate",
			Winner:    "White",
			Moves:     []string{"e2e4", "e7e5", "d1h5", "b8c6", "f1c4", "g8f6", "h5f7"},
			FinalFEN:  "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b - - 0 4",
			Signature: hashing.GameSignature{Hash: 1, MoveCount: 7},
		},
		{
			Index: 2, Seed: 9, GameID: "c", Plies: 400, Result: worker.ResultPlyLimit,
			Signature: hashing.GameSignature{Hash: 3, MoveCount: 400},
		},
		{Index: 3, Seed: 10, Error: fmt.Errorf("boom")},
	}
}

// TestTextWriter verifies text reports are ordered and summarised
func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()

	writer := NewTextWriter(&buf, cfg)
	for _, r := range sampleResults() {
		if err := writer.WriteGame(r); err != nil {
			t.Fatalf("WriteGame failed: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	want := strings.Join([]string{
		"Game 1 (seed 7): checkmate, White wins after 7 plies",
		"Game 2 (seed 8): stalemate after 3 plies",
		"Game 3 (seed 9): ply-limit after 400 plies",
		"Game 4 (seed 10): error: boom",
		"4 games: 1 checkmate (White 1, Black 0), 1 stalemate, 1 ply-limit, 1 errors; average 136.7 plies",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("text output mismatch (-want +got):\n%s", diff)
	}
}

// TestTextWriter_Verbose verifies move lists and FEN at higher verbosity
func TestTextWriter_Verbose(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithVerbosity(2).Build()
	cfg.ShowFEN = true

	writer := NewTextWriter(&buf, cfg)
	writer.WriteGame(sampleResults()[1])
	writer.Close()

	output := buf.String()
	if !strings.Contains(output, "1. e2e4 e7e5 2. d1h5 b8c6 3. f1c4 g8f6 4. h5f7\n") {
		t.Errorf("missing numbered move list:\n%s", output)
	}
	if !strings.Contains(output, "FEN: r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b - - 0 4\n") {
		t.Errorf("missing final FEN:\n%s", output)
	}
}

// TestTextWriter_Quiet verifies verbosity 0 prints only errors and the summary
func TestTextWriter_Quiet(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithVerbosity(0).Build()

	writer := NewTextWriter(&buf, cfg)
	for _, r := range sampleResults() {
		writer.WriteGame(r)
	}
	writer.Close()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want error line and summary:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "Game 4 (seed 10): error") {
		t.Errorf("first line = %q", lines[0])
	}
}

func TestOutputMoves_BlackFirst(t *testing.T) {
	var buf bytes.Buffer
	outputMoves(worker.ProcessResult{BlackFirst: true, Moves: []string{"e7e5", "e2e4", "d7d5"}}, &buf)
	if got, want := buf.String(), "1... e7e5 2. e2e4 d7d5\n"; got != want {
		t.Errorf("outputMoves() = %q, want %q", got, want)
	}
}

func TestOutputWriter_Wraps(t *testing.T) {
	var buf bytes.Buffer
	ow := NewOutputWriter(&buf, 10)
	for _, s := range []string{"1.", "e2e4", "e7e5", "2.", "g1f3"} {
		ow.Write(s)
	}
	ow.NewLine()
	if got, want := buf.String(), "1. e2e4\ne7e5 2.\ng1f3\n"; got != want {
		t.Errorf("wrapped output = %q, want %q", got, want)
	}
}

// TestJSONWriter verifies JSON writer outputs a single ordered document
func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithJSONOutput(true).Build()

	writer := NewGameWriter(&buf, cfg)
	if _, ok := writer.(*JSONWriter); !ok {
		t.Fatalf("NewGameWriter() = %T, want *JSONWriter", writer)
	}
	for _, r := range sampleResults() {
		if err := writer.WriteGame(r); err != nil {
			t.Fatalf("WriteGame failed: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var got JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}

	if len(got.Games) != 4 {
		t.Fatalf("got %d games, want 4", len(got.Games))
	}
	first := got.Games[0]
	if first.Number != 1 || first.Winner != "White" || first.PlyCount != 7 || len(first.Moves) != 7 {
		t.Errorf("first game = %+v", first)
	}
	if first.FinalFEN != "" {
		t.Errorf("FinalFEN = %q without ShowFEN", first.FinalFEN)
	}
	if got.Games[3].Error != "boom" {
		t.Errorf("error game = %+v", got.Games[3])
	}

	wantSummary := &Summary{
		Games: 4, Checkmates: 1, WhiteWins: 1, Stalemates: 1, PlyLimits: 1, Errors: 1, TotalPlies: 410,
	}
	if diff := cmp.Diff(wantSummary, got.Summary); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestNewGameWriter_Text(t *testing.T) {
	if _, ok := NewGameWriter(&bytes.Buffer{}, config.NewConfig()).(*TextWriter); !ok {
		t.Error("NewGameWriter() should default to *TextWriter")
	}
}

func TestSummary(t *testing.T) {
	var s Summary
	if s.AveragePlies() != 0 {
		t.Errorf("empty AveragePlies() = %v", s.AveragePlies())
	}
	s.Add(worker.ProcessResult{Result: "checkmate", Winner: "Black", Plies: 4})
	s.Add(worker.ProcessResult{Result: worker.ResultPlyLimit, Plies: 10})

	want := Summary{Games: 2, Checkmates: 1, BlackWins: 1, PlyLimits: 1, TotalPlies: 14}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
	if got := s.AveragePlies(); got != 7 {
		t.Errorf("AveragePlies() = %v, want 7", got)
	}
}

func TestTextWriter_CountsRepeats(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()
	cfg.Verbosity = 0

	sig := hashing.GameSignature{Hash: 42, MoveCount: 2, MoveHash: hashing.HashMoves([]string{"f2f3", "e7e5"})}
	writer := NewTextWriter(&buf, cfg)
	for i := 0; i < 3; i++ {
		r := worker.ProcessResult{Index: i, Seed: int64(i), Plies: 2, Result: worker.ResultPlyLimit, Signature: sig}
		if err := writer.WriteGame(r); err != nil {
			t.Fatalf("WriteGame failed: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if got := writer.Summary().Repeats; got != 2 {
		t.Errorf("Repeats = %d, want 2", got)
	}
	if !strings.Contains(buf.String(), ", 2 repeated;") {
		t.Errorf("summary line missing repeat count:\n%s", buf.String())
	}
}
