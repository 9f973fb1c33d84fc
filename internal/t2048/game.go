package t2048

import (
	"errors"
	"fmt"
)

// ErrGameOver is returned by ApplyMove once the board is terminal.
var ErrGameOver = errors.New("t2048: game over")

// CellReader gives read access to board cells.
type CellReader interface {
	QueryCell(row, col int) (int, error)
}

// Renderer draws the board. Redraw is called once after every accepted turn.
type Renderer interface {
	Redraw(view CellReader)
}

// TurnResult describes one accepted turn.
type TurnResult struct {
	Direction    Direction
	Changed      bool // Whether the move transform changed any cell
	Spawned      bool
	SpawnedAt    Cell
	SpawnedValue int
	GameOver     bool
}

// Game coordinates turns on a single board: move, spawn, terminal check, redraw.
// It is not safe for concurrent use; the host serializes calls.
type Game struct {
	board    Board
	spawner  *Spawner
	renderer Renderer
	gameOver bool
	turns    int
}

// Option configures a Game.
type Option func(*gameOptions)

type gameOptions struct {
	renderer Renderer
	board    *Board
}

// WithRenderer registers the renderer notified after each turn.
func WithRenderer(r Renderer) Option {
	return func(o *gameOptions) {
		o.renderer = r
	}
}

// WithBoard starts from the given board instead of spawning two tiles.
func WithBoard(b Board) Option {
	return func(o *gameOptions) {
		o.board = &b
	}
}

// New creates a game with two tiles spawned on an empty board.
func New(rng Source, opts ...Option) *Game {
	var o gameOptions
	for _, opt := range opts {
		opt(&o)
	}

	g := &Game{
		spawner:  NewSpawner(rng),
		renderer: o.renderer,
	}

	if o.board != nil {
		g.board = *o.board
	} else {
		g.spawner.Spawn(&g.board)
		g.spawner.Spawn(&g.board)
	}
	g.gameOver = IsTerminal(g.board)

	return g
}

// ApplyMove runs one full turn in the given direction.
// The new tile is spawned even when the move changed nothing.
// An invalid direction or a finished game leaves the board untouched.
func (g *Game) ApplyMove(dir Direction) (TurnResult, error) {
	if !dir.Valid() {
		return TurnResult{}, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}
	if g.gameOver {
		return TurnResult{}, ErrGameOver
	}

	result := TurnResult{Direction: dir}

	changed, err := g.board.Move(dir)
	if err != nil {
		return TurnResult{}, err
	}
	result.Changed = changed

	result.SpawnedAt, result.SpawnedValue, result.Spawned = g.spawner.Spawn(&g.board)

	g.gameOver = IsTerminal(g.board)
	result.GameOver = g.gameOver
	g.turns++

	if g.renderer != nil {
		g.renderer.Redraw(g)
	}

	return result, nil
}

// QueryCell returns the value at (row, col).
func (g *Game) QueryCell(row, col int) (int, error) {
	return g.board.Get(row, col)
}

// IsGameOver returns true once the board is terminal.
func (g *Game) IsGameOver() bool {
	return g.gameOver
}

// Board returns a copy of the current board.
func (g *Game) Board() Board {
	return g.board
}

// Turns returns the number of accepted turns.
func (g *Game) Turns() int {
	return g.turns
}
