// package app is the main entrypoint into the application, responsible for
// configuring and starting the dashboard.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leg100/tabdash/internal/executor"
	"github.com/leg100/tabdash/internal/logging"
	"github.com/leg100/tabdash/internal/tab"
	"github.com/leg100/tabdash/internal/tui"
	"github.com/leg100/tabdash/internal/version"
	"github.com/peterbourgon/ff/v4"
)

// Start the app, blocking until the user quits.
func Start(stdout, stderr io.Writer, args []string) error {
	// Parse configuration from env vars and flags
	cfg, err := parse(stderr, args)
	if err != nil {
		return err
	}

	if cfg.Version {
		fmt.Fprintln(stdout, "tabdash", version.Version)
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m, cleanup, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	p := tea.NewProgram(m,
		// use the full size of the terminal with its "alternate screen buffer"
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithOutput(stdout),
	)
	// Blocks until user quits
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// newApp loads the tabs and constructs the TUI model, along with a function to
// clean up resources once the model is finished with.
func newApp(ctx context.Context, cfg config) (tui.Model, func(), error) {
	tabs, err := tab.LoadConfig(cfg.ConfigPath)
	if err != nil {
		return tui.Model{}, nil, err
	}

	var closers []io.Closer
	cleanup := func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}

	// The terminal belongs to the TUI, so log to a file.
	if cfg.LogFile != "" {
		f, err := openFile(cfg.LogFile)
		if err != nil {
			return tui.Model{}, nil, fmt.Errorf("opening log file: %w", err)
		}
		closers = append(closers, f)
		cfg.loggingOptions.AdditionalWriters = append(cfg.loggingOptions.AdditionalWriters, f)
	}
	logger := logging.NewLogger(cfg.loggingOptions)
	slog.SetDefault(logger.Logger)

	var dump io.Writer
	if cfg.Debug {
		f, err := openFile("messages.log")
		if err != nil {
			cleanup()
			return tui.Model{}, nil, err
		}
		closers = append(closers, f)
		dump = f
	}

	specs := tabs.Enabled()
	logger.Info("loaded config", "path", cfg.ConfigPath, "tabs", len(tabs.Tabs), "enabled", len(specs))

	m, err := tui.New(tui.Options{
		Context: ctx,
		Specs:   specs,
		Runner: executor.New(executor.Options{
			Timeout: cfg.Timeout,
			Logger:  logger,
		}),
		Logger: logger,
		Dump:   dump,
	})
	if err != nil {
		cleanup()
		return tui.Model{}, nil, err
	}
	return m, cleanup, nil
}

func openFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// IsHelp is true if err is the result of the user asking for help.
func IsHelp(err error) bool {
	return errors.Is(err, ff.ErrHelp)
}
