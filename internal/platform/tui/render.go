package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// Layout constants
const (
	minCellWidth    = 4
	tallCellHeight  = 3
	shortCellHeight = 1
	titleRows       = 2 // title + blank line
	statusRows      = 3 // blank line + stats + message
)

var titleColor = core.ANSI(229)

// BoardRenderer draws the board grid onto a screen buffer.
// It implements t2048.Renderer and reads the board only through QueryCell.
type BoardRenderer struct {
	screen *core.Screen
	theme  Theme
	area   core.Rect // board area of the last redraw, grid lines included
}

// NewBoardRenderer creates a renderer drawing into screen.
func NewBoardRenderer(screen *core.Screen, theme Theme) *BoardRenderer {
	return &BoardRenderer{screen: screen, theme: theme}
}

// Screen returns the target buffer.
func (r *BoardRenderer) Screen() *core.Screen {
	return r.screen
}

// BoardArea returns where the grid was drawn by the last Redraw.
func (r *BoardRenderer) BoardArea() core.Rect {
	return r.area
}

// Redraw clears the screen and draws the title and the grid.
func (r *BoardRenderer) Redraw(view t2048.CellReader) {
	s := r.screen
	s.Clear()

	cellW := max(r.theme.CellWidth, minCellWidth)
	cellH := tallCellHeight
	if gridSpan(cellH)+titleRows+statusRows > s.Height() {
		cellH = shortCellHeight
	}

	avail := core.NewRect(0, titleRows, s.Width(), s.Height()-titleRows-statusRows)
	area := avail.CenteredIn(gridSpan(cellW), gridSpan(cellH))
	area.X = max(area.X, 0)
	area.Y = max(area.Y, titleRows)
	r.area = area

	title := "2048"
	s.DrawTextColor((s.Width()-len(title))/2, 0, title, titleColor, core.ColorDefault)

	r.drawGrid(area, cellW, cellH)

	for row := range t2048.BoardSize {
		for col := range t2048.BoardSize {
			value, err := view.QueryCell(row, col)
			if err != nil {
				continue
			}
			x := area.X + 1 + col*(cellW+1)
			y := area.Y + 1 + row*(cellH+1)
			r.drawTile(core.NewRect(x, y, cellW, cellH), value)
		}
	}
}

// drawGrid draws the box-drawing lines around and between cells.
func (r *BoardRenderer) drawGrid(area core.Rect, cellW, cellH int) {
	top := gridLine("┌", "─", "┬", "┐", cellW)
	mid := gridLine("├", "─", "┼", "┤", cellW)
	bottom := gridLine("└", "─", "┴", "┘", cellW)
	inner := gridLine("│", " ", "│", "│", cellW)

	y := area.Y
	for row := range t2048.BoardSize {
		line := mid
		if row == 0 {
			line = top
		}
		r.screen.DrawTextColor(area.X, y, line, r.theme.Grid, core.ColorDefault)
		y++
		for range cellH {
			r.screen.DrawTextColor(area.X, y, inner, r.theme.Grid, core.ColorDefault)
			y++
		}
	}
	r.screen.DrawTextColor(area.X, y, bottom, r.theme.Grid, core.ColorDefault)
}

// drawTile fills one cell with its background and centers the value.
func (r *BoardRenderer) drawTile(cell core.Rect, value int) {
	bg := r.theme.TileColor(value)
	r.screen.FillRect(cell, core.Cell{Rune: ' ', FG: r.theme.Text, BG: bg})
	if value == 0 {
		return
	}

	label := tileLabel(value, cell.W)
	x := cell.X + (cell.W-len(label))/2
	y := cell.Y + cell.H/2
	r.screen.DrawTextColor(x, y, label, r.theme.Text, bg)
}

// DrawStatus writes the turn counter and a message line below the grid.
func (r *BoardRenderer) DrawStatus(snap t2048.Snapshot, message string) {
	y := r.area.Bottom() + 1

	stats := fmt.Sprintf("Turn %d   Max %d   Sum %d", snap.Turn, snap.MaxTile, snap.TileSum)
	r.screen.DrawTextCentered(y, stats)

	if snap.State == t2048.StateGameOver && message == "" {
		message = "No moves left"
	}
	if message != "" {
		x := (r.screen.Width() - len([]rune(message))) / 2
		r.screen.DrawTextColor(x, y+1, message, titleColor, core.ColorDefault)
	}
}

// gridSpan returns the size of the grid along one axis for a cell size.
func gridSpan(cell int) int {
	return t2048.BoardSize*(cell+1) + 1
}

func gridLine(left, fill, join, right string, cellW int) string {
	seg := strings.Repeat(fill, cellW)
	return left + strings.Repeat(seg+join, t2048.BoardSize-1) + seg + right
}

// tileLabel returns the tile text, abbreviated with a k suffix when it does
// not fit the cell.
func tileLabel(value, width int) string {
	s := strconv.Itoa(value)
	if len(s) <= width {
		return s
	}
	return strconv.Itoa(value/1024) + "k"
}

// styleFor builds a lipgloss style for a foreground/background pair.
func styleFor(fg, bg core.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if _, ok := fg.Code(); ok {
		style = style.Foreground(lipgloss.Color(fg.String()))
	}
	if _, ok := bg.Code(); ok {
		style = style.Background(lipgloss.Color(bg.String()))
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[[2]core.Color]lipgloss.Style)

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			// Collect consecutive cells with the same colors
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != start.FG || cell.BG != start.BG {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.FG == core.ColorDefault && start.BG == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}

			pair := [2]core.Color{start.FG, start.BG}
			style, ok := styles[pair]
			if !ok {
				style = styleFor(start.FG, start.BG)
				styles[pair] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
