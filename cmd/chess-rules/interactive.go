// interactive.go - Human versus random opponent over a line-oriented console
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// session holds one interactive game.
type session struct {
	cfg      *config.Config
	game     *engine.Game
	opponent *engine.RandomOpponent
	out      io.Writer
}

// newSession creates the game described by cfg. The engine logger is
// attached only in verbose mode.
func newSession(cfg *config.Config, logger *log.Logger) (*session, error) {
	var opts []engine.GameOption
	if cfg.Verbosity >= 2 && logger != nil {
		opts = append(opts, engine.WithLogger(logger))
	}
	game, err := cfg.NewGame(opts...)
	if err != nil {
		return nil, err
	}
	return &session{
		cfg:      cfg,
		game:     game,
		opponent: engine.NewRandomOpponent(cfg.Seed),
		out:      cfg.OutputFile,
	}, nil
}

// run reads commands from in until quit or end of input.
func (s *session) run(in io.Reader) error {
	fmt.Fprintf(s.out, "You play %s. Type 'help' for commands.\n", s.cfg.HumanColour)
	s.showBoard()
	s.opponentTurn()

	scanner := bufio.NewScanner(in)
	for {
		s.prompt()
		if !scanner.Scan() {
			break
		}
		if s.handle(scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}

// handle executes one command line and reports whether the session should end.
func (s *session) handle(line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return true
	case "help":
		s.printHelp()
	case "board":
		s.printBoard()
	case "fen":
		fmt.Fprintln(s.out, s.game.FEN())
	case "moves":
		s.listMoves(fields[1:])
	case "undo":
		s.undo()
	case "reset":
		s.game.Reset()
		fmt.Fprintln(s.out, "New game.")
		s.showBoard()
		s.opponentTurn()
	default:
		s.humanMove(line)
	}
	return false
}

func (s *session) prompt() {
	if s.gameOver() {
		fmt.Fprint(s.out, "> ")
		return
	}
	fmt.Fprintf(s.out, "%s to move> ", s.game.ToMove())
}

// humanMove parses and plays the human's move, then lets the opponent reply.
func (s *session) humanMove(text string) {
	if s.gameOver() {
		s.reportResult()
		return
	}
	move, err := chess.ParseMove(text)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if p, ok := s.game.Piece(move.From); ok && p.Colour != s.cfg.HumanColour {
		fmt.Fprintf(s.out, "Error: %s is not your piece\n", move.From)
		return
	}
	outcome, err := s.game.Move(move.From, move.To)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	s.announce(outcome)
	s.opponentTurn()
}

// opponentTurn plays the computer's reply when it is on move.
func (s *session) opponentTurn() {
	if s.game.ToMove() == s.cfg.HumanColour || s.gameOver() {
		return
	}
	outcome, err := s.opponent.Play(s.game)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	s.announce(outcome)
}

func (s *session) announce(outcome engine.MoveOutcome) {
	fmt.Fprintln(s.out, outcome.Describe())
	s.showBoard()
	if outcome.Opponent.Terminal() {
		s.reportResult()
	}
}

// undo takes back moves until the human is on move again.
func (s *session) undo() {
	if err := s.game.UndoE(); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	for s.game.ToMove() != s.cfg.HumanColour && s.game.Ply() > 0 {
		s.game.Undo()
	}
	fmt.Fprintf(s.out, "Took back to ply %d.\n", s.game.Ply())
	s.showBoard()
	s.opponentTurn()
}

// listMoves prints the legal destinations of one square, or every legal
// move of the side to move.
func (s *session) listMoves(args []string) {
	if len(args) == 0 {
		moves := s.game.AllLegalMoves(s.game.ToMove())
		if len(moves) == 0 {
			fmt.Fprintf(s.out, "%s has no legal moves\n", s.game.ToMove())
			return
		}
		text := make([]string, len(moves))
		for i, m := range moves {
			text[i] = m.String()
		}
		fmt.Fprintln(s.out, strings.Join(text, " "))
		return
	}

	from, err := chess.ParseSquare(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	dests := s.game.LegalMoves(from)
	if len(dests) == 0 {
		fmt.Fprintf(s.out, "%s: no legal moves\n", from)
		return
	}
	text := make([]string, len(dests))
	for i, d := range dests {
		text[i] = d.String()
	}
	fmt.Fprintf(s.out, "%s: %s\n", from, strings.Join(text, " "))
}

func (s *session) gameOver() bool {
	return s.game.Result().Terminal()
}

func (s *session) reportResult() {
	switch s.game.Result() {
	case engine.Checkmate:
		fmt.Fprintf(s.out, "Game over: checkmate, %s wins.\n", s.game.ToMove().Opposite())
	case engine.Stalemate:
		fmt.Fprintln(s.out, "Game over: stalemate.")
	}
	fmt.Fprintln(s.out, "Type 'undo', 'reset' or 'quit'.")
}

// showBoard prints the board after a change unless disabled.
func (s *session) showBoard() {
	if s.cfg.ShowBoard {
		s.printBoard()
	}
}

func (s *session) printBoard() {
	board := s.game.Board()
	fmt.Fprint(s.out, board.String())
}

func (s *session) printHelp() {
	fmt.Fprintln(s.out, "Commands:")
	fmt.Fprintln(s.out, "  e2e4      move a piece (also e2-e4, e2 e4)")
	fmt.Fprintln(s.out, "  moves [sq] list legal moves, of one piece or of the side to move")
	fmt.Fprintln(s.out, "  undo      take back your last move and the reply")
	fmt.Fprintln(s.out, "  reset     start again")
	fmt.Fprintln(s.out, "  board     print the board")
	fmt.Fprintln(s.out, "  fen       print the position as FEN")
	fmt.Fprintln(s.out, "  quit      leave")
}
