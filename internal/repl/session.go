// Package repl runs the interactive assistant session: a Bubble Tea
// program when attached to a terminal, or a plain prompt/read/print loop
// otherwise.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// Welcome is printed once when a session starts.
const Welcome = "Welcome to the assistant bot!"

// EvalFunc executes one input line and returns the reply to print.
// quit reports that the session should end after printing the reply.
type EvalFunc func(line string) (reply string, quit bool)

// Session runs the interactive loop until the user quits or input ends.
type Session interface {
	Run(ctx context.Context) error
}

// Options configures session creation.
type Options struct {
	In         io.Reader // Input source (default: os.Stdin).
	Out        io.Writer // Output destination (default: os.Stdout).
	ForcePlain bool      // Force the plain loop even on a TTY.
	Prompt     string    // Prompt shown before each command.
	Eval       EvalFunc  // Command evaluator; required.
}

// New returns a TUI session when stdout is a TTY, or a plain line loop
// otherwise. ForcePlain overrides TTY detection.
func New(opts Options) Session {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	if opts.ForcePlain || !isTTY(opts.Out) {
		return &PlainSession{in: opts.In, out: opts.Out, prompt: opts.Prompt, eval: opts.Eval}
	}

	return &TUISession{in: opts.In, out: opts.Out, prompt: opts.Prompt, eval: opts.Eval}
}

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PlainSession reads one line per command and prints each reply, suitable
// for piped input and terminals without TUI support.
type PlainSession struct {
	in     io.Reader
	out    io.Writer
	prompt string
	eval   EvalFunc
}

// Run loops prompt → read → eval → print until quit, EOF, or context
// cancellation. Commands run one at a time; the loop never aborts on a
// command error, only on explicit quit.
func (s *PlainSession) Run(ctx context.Context) error {
	_, _ = fmt.Fprintln(s.out, Welcome)

	scanner := bufio.NewScanner(s.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		_, _ = fmt.Fprint(s.out, s.prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("repl: reading input: %w", err)
			}
			return nil
		}

		reply, quit := s.eval(scanner.Text())
		if reply != "" {
			_, _ = fmt.Fprintln(s.out, reply)
		}
		if quit {
			return nil
		}
	}
}

// TUISession runs the assistant as a Bubble Tea program.
// Falls back to the plain loop if the program fails to start.
type TUISession struct {
	in     io.Reader
	out    io.Writer
	prompt string
	eval   EvalFunc
}

// Run starts the Bubble Tea program and blocks until the user quits.
func (s *TUISession) Run(ctx context.Context) error {
	model := NewModel(s.prompt, s.eval)
	p := tea.NewProgram(model, tea.WithOutput(s.out), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return s.fallback(ctx)
	}
	return nil
}

// fallback degrades to the plain loop on the session's configured input
// when the TUI cannot run. A cancelled context still ends the session.
func (s *TUISession) fallback(ctx context.Context) error {
	plain := &PlainSession{in: s.in, out: s.out, prompt: s.prompt, eval: s.eval}
	return plain.Run(ctx)
}
