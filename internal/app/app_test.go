package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/lapwatch/internal/config"
	"github.com/five82/lapwatch/internal/prefs"
)

func TestNewLogger_EmptyPathDiscards(t *testing.T) {
	logger, closeLog, err := newLogger("  ")
	if err != nil {
		t.Fatalf("newLogger returned error: %v", err)
	}
	defer closeLog()
	if logger.Enabled(context.Background(), 0) {
		t.Fatalf("discard logger reports enabled, want disabled")
	}
}

func TestNewLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	logger, closeLog, err := newLogger(path)
	if err != nil {
		t.Fatalf("newLogger returned error: %v", err)
	}
	logger.Debug("lap", "seconds", 4)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "msg=lap") || !strings.Contains(string(data), "seconds=4") {
		t.Fatalf("log contents = %q, want lap entry with seconds=4", string(data))
	}
}

func TestRun_InvalidConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("initial_seconds = -4\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	err := Run(context.Background(), Options{ConfigPath: path, InitialSeconds: -1})
	if err == nil {
		t.Fatalf("Run returned nil error, want config error")
	}
	if !strings.Contains(err.Error(), "load config") {
		t.Fatalf("Run error = %q, want it to mention load config", err.Error())
	}
}

func TestUIOptions_CarriesConfigAndPrefs(t *testing.T) {
	cfg := config.Config{InitialSeconds: 1, InitialLaps: []int{5}, Tick: 500 * time.Millisecond}
	opts := uiOptions(context.Background(), cfg, prefs.Prefs{Theme: "Slate"}, Options{PrefsPath: "/tmp/p.toml"}, nil)

	if opts.InitialSeconds != 1 {
		t.Fatalf("InitialSeconds = %d, want 1", opts.InitialSeconds)
	}
	if len(opts.InitialLaps) != 1 || opts.InitialLaps[0] != 5 {
		t.Fatalf("InitialLaps = %v, want [5]", opts.InitialLaps)
	}
	if opts.TickEvery != 500*time.Millisecond {
		t.Fatalf("TickEvery = %v, want 500ms", opts.TickEvery)
	}
	if opts.ThemeName != "Slate" || opts.PrefsPath != "/tmp/p.toml" {
		t.Fatalf("ThemeName/PrefsPath = %q/%q, want Slate//tmp/p.toml", opts.ThemeName, opts.PrefsPath)
	}
}
