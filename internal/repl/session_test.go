package repl

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

// echoEval is a canned evaluator mirroring the dispatcher contract:
// "bye" quits, a blank line is an invalid command, everything else echoes.
func echoEval(line string) (string, bool) {
	switch line {
	case "bye":
		return "Good bye!", true
	case "":
		return "Invalid command.", false
	}
	return "echo: " + line, false
}

func TestNew_SelectsPlainForNonFile(t *testing.T) {
	// A bytes.Buffer is not a terminal, so New must pick the plain loop.
	s := New(Options{Out: &bytes.Buffer{}, Prompt: "> ", Eval: echoEval})
	if _, ok := s.(*PlainSession); !ok {
		t.Fatalf("New() = %T, want *PlainSession", s)
	}
}

func TestNew_ForcePlain(t *testing.T) {
	s := New(Options{ForcePlain: true, Prompt: "> ", Eval: echoEval})
	if _, ok := s.(*PlainSession); !ok {
		t.Fatalf("New() with ForcePlain = %T, want *PlainSession", s)
	}
}

func TestPlainSession_ScriptedRun(t *testing.T) {
	// Given: a scripted input ending with a quit command
	in := strings.NewReader("hi there\n\nbye\n")
	var out bytes.Buffer
	s := &PlainSession{in: in, out: &out, prompt: "> ", eval: echoEval}

	// When: the session runs
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Then: welcome, prompts, and replies appear in order, and the
	// blank line is reported as an invalid command
	want := "Welcome to the assistant bot!\n> echo: hi there\n> Invalid command.\n> Good bye!\n"
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestPlainSession_EOFEndsLoop(t *testing.T) {
	in := strings.NewReader("hi\n")
	var out bytes.Buffer
	s := &PlainSession{in: in, out: &out, prompt: "> ", eval: echoEval}

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() after EOF error = %v", err)
	}
	if !strings.Contains(out.String(), "echo: hi") {
		t.Errorf("output = %q, want echoed command before EOF", out.String())
	}
}

func TestTUISession_FallbackUsesConfiguredInput(t *testing.T) {
	// Given: a TUI session configured with a scripted input
	in := strings.NewReader("hi\nbye\n")
	var out bytes.Buffer
	s := &TUISession{in: in, out: &out, prompt: "> ", eval: echoEval}

	// When: the session degrades to the plain loop
	if err := s.fallback(context.Background()); err != nil {
		t.Fatalf("fallback() error = %v", err)
	}

	// Then: the fallback reads the configured input, not stdin
	got := out.String()
	if !strings.Contains(got, "echo: hi") || !strings.Contains(got, "Good bye!") {
		t.Errorf("fallback output = %q, want scripted exchange", got)
	}
}

func TestTUISession_FallbackHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &TUISession{in: strings.NewReader("hi\n"), out: &bytes.Buffer{}, prompt: "> ", eval: echoEval}
	if err := s.fallback(ctx); err != context.Canceled {
		t.Errorf("fallback() error = %v, want context.Canceled", err)
	}
}

func TestPlainSession_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &PlainSession{in: strings.NewReader("hi\n"), out: &bytes.Buffer{}, prompt: "> ", eval: echoEval}
	if err := s.Run(ctx); err != context.Canceled {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}
