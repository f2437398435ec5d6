// Copyright 2026 The Taskdeck Authors
// SPDX-License-Identifier: Apache-2.0

// taskdeck is a terminal control panel for a remote task-orchestration
// service. It polls the orchestrator's REST API on a fixed cadence,
// shows recent tasks, queue metrics, and backend service health, and
// lets the operator submit natural-language commands and cancel pending
// tasks.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/taskdeck/taskdeck/lib/clock"
	"github.com/taskdeck/taskdeck/lib/config"
	"github.com/taskdeck/taskdeck/lib/orchestrator"
	"github.com/taskdeck/taskdeck/lib/panel"
	"github.com/taskdeck/taskdeck/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	var apiURL string
	var logOutput string

	flagSet := pflag.NewFlagSet("taskdeck", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to YAML config file (default: $TASKDECK_CONFIG, else built-in defaults)")
	flagSet.StringVar(&apiURL, "api-url", "", "orchestrator base URL (overrides config)")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file (in addition to TUI display)")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing so it works regardless of
	// other flags.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("taskdeck")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal; taskdeck is an interactive TUI")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if apiURL != "" {
		cfg.APIBaseURL = apiURL
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Background logging routes through the panel's status display
	// instead of stderr, which would corrupt the alt-screen. An
	// optional file logger captures everything as JSONL for
	// post-mortem debugging.
	panelHandler := panel.NewLogHandler(slog.LevelInfo)
	logger := slog.New(panelHandler)
	if logOutput != "" {
		fileHandler, fileCloser, fileErr := openFileLogHandler(logOutput)
		if fileErr != nil {
			return fmt.Errorf("cannot open log file %s: %w", logOutput, fileErr)
		}
		defer fileCloser()
		logger = slog.New(fanoutHandler{panelHandler, fileHandler})
	}
	slog.SetDefault(logger)

	client := orchestrator.New(cfg.APIBaseURL, cfg.RequestTimeout.Std())
	model := panel.NewModel(client, cfg, clock.Real())
	program := tea.NewProgram(model, tea.WithAltScreen())

	panelHandler.SetProgram(program)
	logger.Info("taskdeck started", "api", cfg.APIBaseURL, "poll_interval", cfg.PollInterval.Std())

	_, err = program.Run()
	return err
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `taskdeck — terminal control panel for a task-orchestration service.

Connects to the orchestrator's REST API (default
http://localhost:8000/api/v1) and keeps the display current by polling
every few seconds. Submit commands with Enter, navigate tasks with
Tab + j/k, cancel a pending task with c.

Usage:
  taskdeck [flags]

Examples:
  # Connect to a local orchestrator with defaults
  taskdeck

  # Connect to a remote orchestrator
  taskdeck --api-url https://orchestrator.internal/api/v1

  # Load settings from a config file and capture logs
  taskdeck --config ~/.config/taskdeck.yaml --log-output /tmp/taskdeck.log

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}

// openFileLogHandler creates a slog.JSONHandler writing to the given
// path. Returns the handler, a cleanup function that closes the file,
// and any error. The file is created or truncated.
func openFileLogHandler(path string) (slog.Handler, func(), error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return handler, func() { file.Close() }, nil
}

// fanoutHandler is a slog.Handler that sends each record to multiple
// underlying handlers. A record is enabled if any sub-handler is
// enabled for that level.
type fanoutHandler []slog.Handler

func (handlers fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (handlers fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (handlers fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithAttrs(attrs)
	}
	return derived
}

func (handlers fanoutHandler) WithGroup(name string) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithGroup(name)
	}
	return derived
}
