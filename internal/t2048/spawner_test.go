package t2048

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource returns queued values in order.
type scriptedSource struct {
	t      *testing.T
	values []int
}

func (s *scriptedSource) Intn(n int) int {
	s.t.Helper()
	require.NotEmpty(s.t, s.values, "scripted source exhausted")
	v := s.values[0]
	s.values = s.values[1:]
	require.Less(s.t, v, n, "scripted value out of range")
	return v
}

func script(t *testing.T, values ...int) *scriptedSource {
	return &scriptedSource{t: t, values: values}
}

func TestSpawnPicksKthEmptyCell(t *testing.T) {
	board := Board{
		{2, 0, 4, 0},
		{0, 8, 8, 8},
		{8, 8, 8, 8},
		{8, 8, 8, 0},
	}
	// empty cells: (0,1) (0,3) (1,0) (3,3); Intn(4)=2 picks the 3rd, Intn(2)=1 picks 4
	s := NewSpawner(script(t, 2, 1))

	cell, value, ok := s.Spawn(&board)

	require.True(t, ok)
	assert.Equal(t, Cell{Row: 1, Col: 0}, cell)
	assert.Equal(t, 4, value)
	assert.Equal(t, 4, board[1][0])
}

func TestSpawnValueTwo(t *testing.T) {
	var board Board
	s := NewSpawner(script(t, 0, 0))

	cell, value, ok := s.Spawn(&board)

	require.True(t, ok)
	assert.Equal(t, Cell{}, cell)
	assert.Equal(t, 2, value)
}

func TestSpawnFullBoardIsNoop(t *testing.T) {
	board := Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	original := board
	// an empty script fails the test if the spawner draws at all
	s := NewSpawner(script(t))

	_, _, ok := s.Spawn(&board)

	assert.False(t, ok)
	assert.Equal(t, original, board)
}

func TestSpawnNeverOverwrites(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := NewSpawner(rng)

	for trial := 0; trial < 200; trial++ {
		board := randomBoard(rng)
		before := board
		emptyBefore := len(board.EmptyCells())

		cell, value, ok := s.Spawn(&board)
		if emptyBefore == 0 {
			assert.False(t, ok)
			assert.Equal(t, before, board)
			continue
		}

		require.True(t, ok)
		assert.Zero(t, before[cell.Row][cell.Col], "spawned into occupied cell")
		assert.Contains(t, []int{2, 4}, value)
		assert.Equal(t, emptyBefore-1, len(board.EmptyCells()))

		for row := range BoardSize {
			for col := range BoardSize {
				if (Cell{row, col}) != cell {
					assert.Equal(t, before[row][col], board[row][col])
				}
			}
		}
	}
}

func TestSpawnDistributionCoversAllCells(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	s := NewSpawner(rng)
	seen := map[Cell]bool{}
	values := map[int]int{}

	for range 2000 {
		var board Board
		cell, value, _ := s.Spawn(&board)
		seen[cell] = true
		values[value]++
	}

	assert.Len(t, seen, BoardSize*BoardSize)
	assert.Len(t, values, 2)
	assert.Greater(t, values[2], 800)
	assert.Greater(t, values[4], 800)
}

// randomBoard returns a board with random power-of-two tiles and gaps.
func randomBoard(rng *rand.Rand) Board {
	var b Board
	for row := range BoardSize {
		for col := range BoardSize {
			if rng.Intn(3) == 0 {
				continue
			}
			b[row][col] = 1 << (rng.Intn(6) + 1)
		}
	}
	return b
}
