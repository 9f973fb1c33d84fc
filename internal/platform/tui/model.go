package tui

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// Default screen size before the first WindowSizeMsg arrives.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Options configures the game model.
type Options struct {
	Config config.Config
	Store  *storage.Store // optional; results are not recorded when nil
	Logger *log.Logger    // optional; discards output when nil
	Seed   int64          // 0 = time based
	Width  int
	Height int

	// ScreenshotDir overrides where ctrl+s writes screen dumps.
	ScreenshotDir string
}

// Model is the Bubble Tea model hosting one game at a time.
// Update is called one message at a time, which serializes all turns.
type Model struct {
	game     *t2048.Game
	renderer *BoardRenderer
	screen   *core.Screen
	keys     *KeyMapper
	help     help.Model
	store    *storage.Store
	logger   *log.Logger

	seed          int64
	fixedSeed     bool
	screenshotDir string
	message       string
	recorded      bool // Whether the current game over has been stored
	width         int
	height        int
	quitting      bool
}

// NewModel creates the model and starts the first game.
func NewModel(opts Options) Model {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	screenshotDir := opts.ScreenshotDir
	if screenshotDir == "" {
		screenshotDir = filepath.Join(os.Getenv("HOME"), ".t2048", "screenshots")
	}

	h := help.New()
	h.ShowAll = false
	h.Width = opts.Width

	screen := core.NewScreen(opts.Width, opts.Height-1)
	m := Model{
		renderer:      NewBoardRenderer(screen, NewTheme(opts.Config.Theme)),
		screen:        screen,
		keys:          NewKeyMapper(NewKeyMap(opts.Config.Keys)),
		help:          h,
		store:         opts.Store,
		logger:        logger,
		seed:          opts.Seed,
		fixedSeed:     opts.Seed != 0,
		screenshotDir: screenshotDir,
		width:         opts.Width,
		height:        opts.Height,
	}
	m.newGame()
	m.layout()
	return m
}

// newGame starts a fresh game. A fixed seed is advanced by one per restart
// so every game of a session stays reproducible.
func (m *Model) newGame() {
	switch {
	case m.seed == 0:
		m.seed = time.Now().UnixNano()
	case m.game != nil && m.fixedSeed:
		m.seed++
	case m.game != nil:
		m.seed = time.Now().UnixNano()
	}

	m.game = t2048.New(rand.New(rand.NewSource(m.seed)), t2048.WithRenderer(m.renderer))
	m.recorded = false
	m.message = ""
	m.logger.Info("new game", "seed", m.seed)
	m.logger.Debug("board", "grid", m.game.Board().String())
}

// Game returns the game currently hosted.
func (m Model) Game() *t2048.Game {
	return m.game
}

// Seed returns the seed of the current game.
func (m Model) Seed() int64 {
	return m.seed
}

// Init implements tea.Model. The game is turn based, so no tick loop runs.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionScreenshot:
		m.saveScreenshot()

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.layout()

	case core.ActionRestart:
		if m.game.IsGameOver() {
			m.newGame()
			m.layout()
		}

	default:
		if dir, ok := t2048.DirectionForAction(action); ok {
			m.applyMove(dir)
		}
	}

	return m, nil
}

// applyMove runs one turn and handles its outcome.
func (m *Model) applyMove(dir t2048.Direction) {
	result, err := m.game.ApplyMove(dir)
	if errors.Is(err, t2048.ErrGameOver) {
		return
	}
	if err != nil {
		m.logger.Error("move rejected", "direction", dir, "error", err)
		return
	}

	m.message = ""
	m.logger.Debug("turn",
		"n", m.game.Turns(),
		"direction", result.Direction,
		"changed", result.Changed,
		"spawned", result.Spawned,
		"row", result.SpawnedAt.Row,
		"col", result.SpawnedAt.Col,
		"value", result.SpawnedValue,
	)
	m.logger.Debug("board", "grid", m.game.Board().String())

	if result.GameOver {
		m.finishGame()
	}
	m.drawStatus()
}

// finishGame records the result once per game.
func (m *Model) finishGame() {
	if m.recorded {
		return
	}
	m.recorded = true

	snap := m.game.Snapshot()
	m.logger.Info("game over",
		"seed", m.seed,
		"turns", snap.Turn,
		"max_tile", snap.MaxTile,
		"tile_sum", snap.TileSum,
	)

	if m.store == nil {
		return
	}
	_, err := m.store.SaveResult(storage.Result{
		Seed:    m.seed,
		Turns:   snap.Turn,
		MaxTile: snap.MaxTile,
		TileSum: snap.TileSum,
		Origin:  storage.OriginPlay,
	})
	if err != nil {
		m.logger.Warn("could not record result", "error", err)
	}
}

// layout resizes the screen to the space left by the help bar and redraws.
func (m *Model) layout() {
	helpHeight := lipgloss.Height(m.help.View(m.keys.Keys()))
	m.screen.Resize(m.width, max(m.height-helpHeight, 1))
	m.renderer.Redraw(m.game)
	m.drawStatus()
}

func (m *Model) drawStatus() {
	message := m.message
	if message == "" && m.game.IsGameOver() {
		message = fmt.Sprintf("No moves left. %s: new game  %s: quit",
			m.keys.Keys().Restart.Help().Key, m.keys.Keys().Quit.Help().Key)
	}
	m.renderer.DrawStatus(m.game.Snapshot(), message)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("t2048_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	m.logger.Info("screenshot saved", "path", path)
	m.message = "Screenshot saved: " + filepath.Base(path)
	m.layout()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
