package tui

import (
	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

// Theme holds the resolved colors used to draw the board.
type Theme struct {
	Tiles     map[int]core.Color
	Text      core.Color
	Empty     core.Color
	Grid      core.Color
	Overflow  core.Color
	CellWidth int
}

// NewTheme resolves a theme from its configuration.
func NewTheme(cfg config.ThemeConfig) Theme {
	tiles := make(map[int]core.Color, len(cfg.Tiles))
	for value, code := range cfg.Tiles {
		tiles[value] = core.ANSI(code)
	}

	return Theme{
		Tiles:     tiles,
		Text:      core.ANSI(cfg.Text),
		Empty:     core.ANSI(cfg.Empty),
		Grid:      core.ANSI(cfg.Grid),
		Overflow:  core.ANSI(cfg.Overflow),
		CellWidth: cfg.CellWidth,
	}
}

// DefaultTheme returns the theme of the built-in configuration.
func DefaultTheme() Theme {
	return NewTheme(config.DefaultConfig().Theme)
}

// TileColor returns the background for a tile value.
// Values without an entry use Overflow.
func (t Theme) TileColor(value int) core.Color {
	if value == 0 {
		return t.Empty
	}
	if c, ok := t.Tiles[value]; ok {
		return c
	}
	return t.Overflow
}
