// Package config persists user preferences across sessions. The only
// preference today is the color theme.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// Theme is the display color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Config holds durable preferences, stored as YAML under the root dir.
type Config struct {
	Theme Theme `yaml:"theme,omitempty"`

	path string
}

// Dir returns the promptdeck root directory, ~/.promptdeck by default.
// Override with PROMPTDECK_DIR.
func Dir() string {
	if dir := os.Getenv("PROMPTDECK_DIR"); dir != "" {
		return dir
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(homeDir, ".promptdeck")
}

func configPath() string {
	return filepath.Join(Dir(), "config.yml")
}

// Load reads the config file. A missing file is the normal first-run case
// and yields an empty config; a corrupt file is warned about and otherwise
// treated the same. Load never fails.
func Load() *Config {
	cfg := &Config{path: configPath()}
	data, err := os.ReadFile(cfg.path)
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to parse %s: %v\n", cfg.path, err)
		cfg.Theme = ""
	}
	if cfg.Theme != ThemeLight && cfg.Theme != ThemeDark {
		cfg.Theme = ""
	}
	return cfg
}

// Save writes the config back to disk, creating the root dir if needed.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = configPath()
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// ResolveTheme returns the persisted theme, or the terminal-derived one
// when no preference has been saved yet.
func (c *Config) ResolveTheme() Theme {
	if c.Theme == ThemeLight || c.Theme == ThemeDark {
		return c.Theme
	}
	return DetectTheme()
}

// DetectTheme derives a theme from the terminal's reported background.
func DetectTheme() Theme {
	if termenv.HasDarkBackground() {
		return ThemeDark
	}
	return ThemeLight
}
