package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/lapwatch/internal/config"
	"github.com/five82/lapwatch/internal/prefs"
	"github.com/five82/lapwatch/internal/ui"
)

// Options configure the lapwatch application.
type Options struct {
	ConfigPath     string
	PrefsPath      string // empty uses default ~/.config/lapwatch/prefs.toml
	LogPath        string // empty disables debug logging
	InitialSeconds int    // negative keeps the configured value
}

// Run boots the stopwatch TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.InitialSeconds >= 0 {
		cfg.InitialSeconds = opts.InitialSeconds
	}

	logger, closeLog, err := newLogger(opts.LogPath)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	userPrefs := prefs.Load(opts.PrefsPath, ui.ThemeNames())

	logger.Info("starting",
		slog.Int("initial_seconds", cfg.InitialSeconds),
		slog.Int("initial_laps", len(cfg.InitialLaps)),
		slog.Duration("tick", cfg.Tick),
		slog.String("theme", userPrefs.Theme),
	)

	return ui.Run(uiOptions(ctx, cfg, userPrefs, opts, logger))
}

func uiOptions(ctx context.Context, cfg config.Config, p prefs.Prefs, opts Options, logger *slog.Logger) ui.Options {
	return ui.Options{
		Context:        ctx,
		Logger:         logger,
		InitialSeconds: cfg.InitialSeconds,
		InitialLaps:    cfg.InitialLaps,
		TickEvery:      cfg.Tick,
		ThemeName:      p.Theme,
		PrefsPath:      opts.PrefsPath,
	}
}

// newLogger returns a debug logger writing to path. The terminal belongs to
// Bubble Tea, so without a path log output is discarded.
func newLogger(path string) (*slog.Logger, func(), error) {
	if strings.TrimSpace(path) == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	resolved, err := config.ExpandPath(path)
	if err != nil {
		return nil, nil, err
	}
	f, err := tea.LogToFile(resolved, "lapwatch")
	if err != nil {
		return nil, nil, err
	}
	return slog.New(newHandler(f)), func() { _ = f.Close() }, nil
}

func newHandler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
}

// LogPathFromEnv returns LAPWATCH_LOG, used when no -log flag is given.
func LogPathFromEnv() string {
	return strings.TrimSpace(os.Getenv("LAPWATCH_LOG"))
}
