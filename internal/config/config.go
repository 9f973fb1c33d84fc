// Package config provides YAML-based configuration loading for the game
// and its terminal host.
package config

import (
	"errors"
	"fmt"
)

// Config contains all configuration for tui-2048.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Keys    KeysConfig    `yaml:"keys"`
	Theme   ThemeConfig   `yaml:"theme"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig holds rules-independent game settings.
type GameConfig struct {
	Seed int64 `yaml:"seed"` // 0 = time based
}

// KeysConfig lists the Bubble Tea key names bound to each action.
type KeysConfig struct {
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Restart []string `yaml:"restart"`
	Quit    []string `yaml:"quit"`
	Help    []string `yaml:"help"`
}

// ThemeConfig maps tile values to ANSI 256-color codes.
type ThemeConfig struct {
	Tiles     map[int]uint8 `yaml:"tiles"`      // tile value -> background
	Text      uint8         `yaml:"text"`       // tile foreground
	Empty     uint8         `yaml:"empty"`      // empty cell background
	Grid      uint8         `yaml:"grid"`       // grid line foreground
	Overflow  uint8         `yaml:"overflow"`   // background for values missing from Tiles
	CellWidth int           `yaml:"cell_width"` // characters per cell, without borders
}

// StorageConfig holds the results database location.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // used while the full-screen UI owns the terminal
}

// Validate checks the configuration for conflicts.
func (c *Config) Validate() error {
	var errs []error

	bindings := []struct {
		name string
		keys []string
	}{
		{"left", c.Keys.Left},
		{"right", c.Keys.Right},
		{"up", c.Keys.Up},
		{"down", c.Keys.Down},
		{"restart", c.Keys.Restart},
		{"quit", c.Keys.Quit},
		{"help", c.Keys.Help},
	}

	owner := make(map[string]string)
	for _, b := range bindings {
		if len(b.keys) == 0 {
			errs = append(errs, fmt.Errorf("keys.%s: no keys bound", b.name))
			continue
		}
		for _, k := range b.keys {
			if prev, ok := owner[k]; ok && prev != b.name {
				errs = append(errs, fmt.Errorf("keys.%s: %q already bound to %s", b.name, k, prev))
				continue
			}
			owner[k] = b.name
		}
	}

	for value := range c.Theme.Tiles {
		if value < 2 || value&(value-1) != 0 {
			errs = append(errs, fmt.Errorf("theme.tiles: %d is not a tile value", value))
		}
	}

	if c.Theme.CellWidth < 4 {
		errs = append(errs, fmt.Errorf("theme.cell_width: %d is too narrow (min 4)", c.Theme.CellWidth))
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
