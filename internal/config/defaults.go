package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			Seed: 0,
		},
		Keys: KeysConfig{
			Left:    []string{"left", "a", "h"},
			Right:   []string{"right", "d", "l"},
			Up:      []string{"up", "w", "k"},
			Down:    []string{"down", "s", "j"},
			Restart: []string{"r"},
			Quit:    []string{"q", "ctrl+c"},
			Help:    []string{"?"},
		},
		Theme: ThemeConfig{
			Tiles: map[int]uint8{
				2:    230,
				4:    223,
				8:    216,
				16:   215,
				32:   209,
				64:   203,
				128:  221,
				256:  220,
				512:  214,
				1024: 208,
				2048: 202,
			},
			Text:      16,
			Empty:     250,
			Grid:      244,
			Overflow:  196,
			CellWidth: 6,
		},
		Storage: StorageConfig{
			Path: "~/.t2048/results.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.t2048/t2048.log",
		},
	}
}
