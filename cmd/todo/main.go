// Package main is the terminal client. It wires the REST data-access layer,
// the state holder, and the Bubble Tea presentation layer, then hands the
// terminal to the program until the user quits.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ybrd/todo/internal/adapters/clients/rest"
	"github.com/ybrd/todo/internal/client/state"
	"github.com/ybrd/todo/internal/client/tui"
	"github.com/ybrd/todo/internal/platform/config"
	"github.com/ybrd/todo/internal/platform/httpclient"
	"github.com/ybrd/todo/internal/platform/logging"
	"github.com/ybrd/todo/internal/platform/telemetry"
)

const otelShutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// The TUI owns the terminal, so logs go to a file when requested and
	// nowhere otherwise.
	logOut, closeLog, err := logOutput()
	if err != nil {
		return err
	}
	defer closeLog()

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, logOut)

	ctx := context.Background()
	otel, err := telemetry.Setup(ctx, &cfg.Otel)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	httpClient := httpclient.New(&cfg.Client, "todo-server", otel.Metrics, logger)
	api := rest.NewTodoClient(httpClient, logger)
	store := state.New(api, logger)

	p := tea.NewProgram(tui.New(store), tea.WithAltScreen())

	// Forward every state transition into the program. Subscribe delivers
	// the current snapshot immediately and Send blocks until the program is
	// running, so registration happens off the main goroutine.
	go store.Subscribe(func(snap state.Snapshot) {
		p.Send(tui.SnapshotMsg{Snapshot: snap})
	})

	_, runErr := p.Run()

	otelCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()
	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", "error", err)
	}

	if runErr != nil {
		return fmt.Errorf("running program: %w", runErr)
	}
	return nil
}

// logOutput returns the log destination. Set TODO_LOG_FILE to capture debug
// output without corrupting the display.
func logOutput() (io.Writer, func(), error) {
	path := os.Getenv("TODO_LOG_FILE")
	if path == "" {
		return io.Discard, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	return f, func() {
		if cerr := f.Close(); cerr != nil && !errors.Is(cerr, os.ErrClosed) {
			fmt.Fprintf(os.Stderr, "closing log file: %v\n", cerr)
		}
	}, nil
}
