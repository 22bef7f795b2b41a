package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the startup values for a stopwatch.
type Config struct {
	InitialSeconds int
	InitialLaps    []int
	Tick           time.Duration
}

const (
	defaultConfigPath = "~/.config/lapwatch/config.toml"
	defaultTick       = time.Second
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{Tick: defaultTick}
}

// Load locates and parses the lapwatch config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		InitialSeconds *int   `toml:"initial_seconds"`
		InitialLaps    []int  `toml:"initial_laps"`
		Tick           string `toml:"tick"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.InitialSeconds != nil {
		cfg.InitialSeconds = *raw.InitialSeconds
	}
	if len(raw.InitialLaps) > 0 {
		cfg.InitialLaps = append([]int(nil), raw.InitialLaps...)
	}
	if tick := strings.TrimSpace(raw.Tick); tick != "" {
		d, err := time.ParseDuration(tick)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: tick: %w", err)
		}
		cfg.Tick = d
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the stopwatch cannot represent.
func (c Config) Validate() error {
	if c.InitialSeconds < 0 {
		return fmt.Errorf("invalid config: initial_seconds must be non-negative, got %d", c.InitialSeconds)
	}
	for i, lap := range c.InitialLaps {
		if lap < 0 {
			return fmt.Errorf("invalid config: initial_laps[%d] must be non-negative, got %d", i, lap)
		}
	}
	if c.Tick <= 0 {
		return fmt.Errorf("invalid config: tick must be positive, got %s", c.Tick)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

// ExpandPath resolves a leading ~ against the home directory and returns an
// absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
