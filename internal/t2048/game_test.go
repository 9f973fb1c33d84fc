package t2048

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// countingRenderer records redraw notifications.
type countingRenderer struct {
	redraws int
	last    [BoardSize][BoardSize]int
}

func (r *countingRenderer) Redraw(view CellReader) {
	r.redraws++
	for row := range BoardSize {
		for col := range BoardSize {
			v, _ := view.QueryCell(row, col)
			r.last[row][col] = v
		}
	}
}

func TestNewPlacesTwoTiles(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		g := New(rand.New(rand.NewSource(seed)))
		b := g.Board()

		assert.Len(t, b.EmptyCells(), 14, "seed %d", seed)
		for row := range BoardSize {
			for col := range BoardSize {
				v := b[row][col]
				assert.Contains(t, []int{0, 2, 4}, v)
			}
		}
		assert.False(t, g.IsGameOver())
		assert.Zero(t, g.Turns())
	}
}

func TestDeterministicSeed(t *testing.T) {
	play := func() []Snapshot {
		g := New(rand.New(rand.NewSource(12345)))
		snaps := []Snapshot{g.Snapshot()}
		for i := 0; i < 40 && !g.IsGameOver(); i++ {
			_, err := g.ApplyMove(Directions[i%len(Directions)])
			require.NoError(t, err)
			snaps = append(snaps, g.Snapshot())
		}
		return snaps
	}

	assert.Equal(t, play(), play())
}

func TestApplyMoveSpawnsEvenWithoutChange(t *testing.T) {
	start := Board{
		{4, 2, 0, 0},
	}
	// 14 empty cells after the no-op move; pick the first (0,2), value 2
	g := New(script(t, 0, 0), WithBoard(start))

	res, err := g.ApplyMove(DirLeft)
	require.NoError(t, err)

	assert.False(t, res.Changed)
	assert.True(t, res.Spawned)
	assert.Equal(t, Cell{Row: 0, Col: 2}, res.SpawnedAt)
	assert.Equal(t, 2, res.SpawnedValue)
	assert.Equal(t, Board{{4, 2, 2, 0}}, g.Board())
	assert.Equal(t, 1, g.Turns())
}

func TestApplyMoveFullPipeline(t *testing.T) {
	start := Board{
		{2, 2, 4, 0},
	}
	r := &countingRenderer{}
	// after the move [4,4,0,0] leaves 14 empty cells; pick the last (3,3), value 4
	g := New(script(t, 13, 1), WithBoard(start), WithRenderer(r))

	res, err := g.ApplyMove(DirLeft)
	require.NoError(t, err)

	expected := Board{
		{4, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 4},
	}
	assert.True(t, res.Changed)
	assert.Equal(t, Cell{Row: 3, Col: 3}, res.SpawnedAt)
	assert.Equal(t, 4, res.SpawnedValue)
	assert.Equal(t, expected, g.Board())
	assert.Equal(t, 1, r.redraws)
	assert.Equal(t, [BoardSize][BoardSize]int(expected), r.last)
}

func TestApplyMoveDetectsGameOver(t *testing.T) {
	start := Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 0},
	}
	r := &countingRenderer{}
	// moving up changes nothing; a 2 spawned at (3,3) leaves no equal neighbours
	g := New(script(t, 0, 0), WithBoard(start), WithRenderer(r))
	require.False(t, g.IsGameOver())

	res, err := g.ApplyMove(DirUp)
	require.NoError(t, err)

	assert.True(t, res.GameOver)
	assert.True(t, g.IsGameOver())
	assert.Equal(t, StateGameOver, g.Snapshot().State)

	before := g.Board()
	_, err = g.ApplyMove(DirLeft)
	assert.True(t, errors.Is(err, ErrGameOver))
	assert.Equal(t, before, g.Board())
	assert.Equal(t, 1, r.redraws, "rejected moves must not redraw")
}

func TestApplyMoveInvalidDirection(t *testing.T) {
	start := Board{
		{2, 2, 0, 0},
	}
	r := &countingRenderer{}
	g := New(script(t), WithBoard(start), WithRenderer(r))

	_, err := g.ApplyMove(Direction(-1))

	assert.ErrorIs(t, err, ErrInvalidDirection)
	assert.Equal(t, start, g.Board())
	assert.Zero(t, g.Turns())
	assert.Zero(t, r.redraws)
}

func TestQueryCell(t *testing.T) {
	g := New(script(t), WithBoard(Board{{0, 8}}))

	v, err := g.QueryCell(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 8, v)

	_, err = g.QueryCell(0, 4)
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
}

func TestWithTerminalBoardStartsOver(t *testing.T) {
	g := New(script(t), WithBoard(Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}))

	assert.True(t, g.IsGameOver())
}

func TestIsGameOverFalseWithEmptyCell(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for range 100 {
		b := randomBoard(rng)
		if b.IsFull() {
			continue
		}
		g := New(script(t), WithBoard(b))
		assert.False(t, g.IsGameOver(), "board with empty cell reported game over:\n%s", b.String())
	}
}

// Moves never shrink a tile, keep powers of two, and preserve the tile sum.
func TestMoveProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(2048))

	for trial := 0; trial < 500; trial++ {
		board := randomBoard(rng)
		dir := Directions[rng.Intn(len(Directions))]

		after, _, err := Slide(board, dir)
		require.NoError(t, err)

		assert.Equal(t, board.TileSum(), after.TileSum())
		assert.GreaterOrEqual(t, after.MaxTile(), board.MaxTile())
		for row := range BoardSize {
			for col := range BoardSize {
				v := after[row][col]
				if v != 0 {
					assert.True(t, v >= 2 && v&(v-1) == 0, "%d is not a power of two", v)
				}
			}
		}
	}
}

func TestFullGameRunsToCompletion(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	g := New(rng)
	policy := rand.New(rand.NewSource(43))

	for turns := 0; !g.IsGameOver(); turns++ {
		require.Less(t, turns, 100000, "game did not terminate")
		_, err := g.ApplyMove(Directions[policy.Intn(len(Directions))])
		require.NoError(t, err)
	}

	b := g.Board()
	assert.True(t, b.IsFull())
	assert.True(t, IsTerminal(b))
}

func TestDirectionForAction(t *testing.T) {
	tests := []struct {
		action core.Action
		dir    Direction
		ok     bool
	}{
		{core.ActionLeft, DirLeft, true},
		{core.ActionRight, DirRight, true},
		{core.ActionUp, DirUp, true},
		{core.ActionDown, DirDown, true},
		{core.ActionRestart, 0, false},
		{core.ActionNone, 0, false},
	}

	for _, tt := range tests {
		dir, ok := DirectionForAction(tt.action)
		assert.Equal(t, tt.ok, ok, tt.action.String())
		if tt.ok {
			assert.Equal(t, tt.dir, dir, tt.action.String())
		}
	}
}
