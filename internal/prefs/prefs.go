// Package prefs handles lapwatch user preferences persistence.
// Preferences are stored in ~/.config/lapwatch/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/lapwatch/internal/config"
)

// Prefs holds user preferences for lapwatch.
type Prefs struct {
	Theme string `toml:"theme"`
}

const (
	defaultPrefsPath = "~/.config/lapwatch/prefs.toml"
	defaultTheme     = "Nightfox"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from path. Anything it cannot use (a missing or
// unreadable file, bad TOML, a theme not in knownThemes) falls back to the
// default, so prefs never block startup. An empty knownThemes accepts any
// non-blank theme name.
func Load(path string, knownThemes []string) Prefs {
	stored, ok := read(path)
	if !ok {
		return Prefs{Theme: defaultTheme}
	}
	return stored.normalize(knownThemes)
}

func read(path string) (Prefs, bool) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Prefs{}, false
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return Prefs{}, false
	}
	var p Prefs
	if err := toml.Unmarshal(data, &p); err != nil {
		return Prefs{}, false
	}
	return p, true
}

func (p Prefs) normalize(knownThemes []string) Prefs {
	p.Theme = strings.TrimSpace(p.Theme)
	switch {
	case p.Theme == "":
		p.Theme = defaultTheme
	case len(knownThemes) > 0 && !slices.Contains(knownThemes, p.Theme):
		p.Theme = defaultTheme
	}
	return p
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return config.ExpandPath(defaultPrefsPath)
	}
	return config.ExpandPath(path)
}
