// Package repl is a line-oriented front-end for the calculator.
//
// Each line holds whitespace-separated action tokens (X + V =). They are
// applied in order and the resulting display is printed. Lines starting with
// ':' are commands.
package repl

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"

	"romancalc/internal/domain"
)

// Command represents a REPL command that starts with ':'
type Command struct {
	Name        string
	Description string
}

var commands = []Command{
	{Name: "show", Description: "print the full calculator state"},
	{Name: "help", Description: "list commands and action tokens"},
	{Name: "quit", Description: "leave the REPL"},
}

// Session evaluates lines against one calculator session.
type Session struct {
	calc domain.CalculatorService
	id   domain.SessionID
}

func NewSession(calc domain.CalculatorService, id domain.SessionID) *Session {
	return &Session{calc: calc, id: id}
}

// Eval runs one line and returns the text to print. quit reports a request
// to leave. err is non-nil only when the calculator service fails.
func (s *Session) Eval(ctx context.Context, line string) (out string, quit bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false, nil
	}
	if strings.HasPrefix(line, ":") {
		return s.command(ctx, strings.TrimPrefix(line, ":"))
	}

	actions, err := domain.ParseActions(strings.Fields(line))
	if err != nil {
		return fmt.Sprintf("%v (try :help)", err), false, nil
	}
	sess, err := s.calc.PressAll(ctx, s.id, actions)
	if err != nil {
		return "", false, err
	}
	return sess.State.Display, false, nil
}

func (s *Session) command(ctx context.Context, name string) (string, bool, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "quit", "q", "exit":
		return "", true, nil
	case "show":
		sess, err := s.calc.Get(ctx, s.id)
		if err != nil {
			return "", false, err
		}
		return sess.State.String(), false, nil
	case "help", "h", "?":
		return helpText(), false, nil
	}
	return fmt.Sprintf("unknown command :%s (try :help)", name), false, nil
}

func helpText() string {
	var b strings.Builder
	b.WriteString("actions: I V X L C D M, + (add), - (subtract), = (calculate), AC (clear)\n")
	for _, c := range commands {
		fmt.Fprintf(&b, "  :%-5s %s\n", c.Name, c.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Config carries the terminal plumbing for Run.
type Config struct {
	Prompt      string
	HistoryFile string
	Stdin       io.ReadCloser
	Stdout      io.Writer
}

// Run reads lines until :quit, EOF, interrupt or ctx cancellation.
func Run(ctx context.Context, s *Session, cfg Config) error {
	if cfg.Prompt == "" {
		cfg.Prompt = "roman> "
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		Stdin:           cfg.Stdin,
		Stdout:          cfg.Stdout,
		InterruptPrompt: "^C",
		EOFPrompt:       ":quit",
	})
	if err != nil {
		return errors.Wrap(err, "start readline")
	}
	defer rl.Close()

	w := rl.Stdout()
	for {
		if ctx.Err() != nil {
			return nil
		}
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "read line")
		}

		out, quit, err := s.Eval(ctx, line)
		if err != nil {
			return err
		}
		if out != "" {
			fmt.Fprintln(w, out)
		}
		if quit {
			return nil
		}
	}
}
