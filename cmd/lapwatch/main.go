package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/lapwatch/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config path (optional, defaults to ~/.config/lapwatch/config.toml)")
	prefsPath := flag.String("prefs", "", "preferences path (optional)")
	initial := flag.Int("initial", -1, "starting elapsed seconds (optional, overrides config)")
	logPath := flag.String("log", "", "debug log file (optional, or LAPWATCH_LOG)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath:     *configPath,
		PrefsPath:      *prefsPath,
		LogPath:        *logPath,
		InitialSeconds: *initial,
	}
	if opts.LogPath == "" {
		opts.LogPath = app.LogPathFromEnv()
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "lapwatch: %v\n", err)
		return 1
	}
	return 0
}
