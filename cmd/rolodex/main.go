package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/smileynet/rolodex/internal/book"
	"github.com/smileynet/rolodex/internal/command"
	"github.com/smileynet/rolodex/internal/config"
	"github.com/smileynet/rolodex/internal/repl"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for rolodex.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Repl    ReplCmd          `cmd:"" default:"1" help:"Start the interactive assistant."`
}

// ReplCmd starts the interactive contact book session.
type ReplCmd struct {
	NoTUI  bool   `help:"Force plain text output even if stdout is a TTY." default:"false"`
	Config string `help:"Extra config file applied with highest priority." type:"path"`
}

// Run executes the repl command.
func (r *ReplCmd) Run() error {
	cfg, err := loadConfig(r.Config)
	if err != nil {
		return fmt.Errorf("repl: %w", err)
	}

	if r.NoTUI {
		cfg.UI.Plain = true
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("repl: %w", err)
	}

	b := book.New()
	dispatcher := command.NewDispatcher(b, command.WithWindow(cfg.Book.UpcomingWindowDays))

	session := repl.New(repl.Options{
		ForcePlain: cfg.UI.Plain,
		Prompt:     cfg.UI.Prompt,
		Eval: func(line string) (string, bool) {
			cmd, args := command.Parse(line)
			return dispatcher.Dispatch(cmd, args)
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return session.Run(ctx)
}

// loadConfig loads layered config from user and project paths with env
// overrides. An extra path, if given, is applied last.
func loadConfig(extra string) (*config.Config, error) {
	paths := []string{
		os.ExpandEnv("$HOME/.config/rolodex/config.yaml"),
		".rolodex.yaml",
	}
	if extra != "" {
		paths = append(paths, extra)
	}

	cfg, err := config.LoadLayered(paths...)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Exit codes.
const (
	exitSuccess = 0
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code. Interrupting the
// session cancels its context, which is a normal quit, not a setup failure.
func exitCode(err error) int {
	if err == nil || errors.Is(err, context.Canceled) {
		return exitSuccess
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Vars{"version": version + " " + commit + " " + date})
	err := ctx.Run()
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
