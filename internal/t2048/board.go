// Package t2048 implements the rules of the 2048 sliding-tile puzzle:
// the board, the move/merge transform, tile spawning, terminal detection,
// and the turn coordinator that sequences them.
package t2048

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// BoardSize is the fixed board dimension.
const BoardSize = 4

// ErrInvalidCoordinate is returned for cell indices outside [0, BoardSize).
var ErrInvalidCoordinate = errors.New("t2048: invalid coordinate")

// Board is the 4x4 grid, indexed [row][col]. Zero means empty.
type Board [BoardSize][BoardSize]int

// Cell is a board coordinate.
type Cell struct {
	Row int
	Col int
}

func checkCoord(row, col int) error {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return fmt.Errorf("%w: (%d, %d)", ErrInvalidCoordinate, row, col)
	}
	return nil
}

// Get returns the value at (row, col).
func (b Board) Get(row, col int) (int, error) {
	if err := checkCoord(row, col); err != nil {
		return 0, err
	}
	return b[row][col], nil
}

// Set stores value at (row, col).
func (b *Board) Set(row, col, value int) error {
	if err := checkCoord(row, col); err != nil {
		return err
	}
	b[row][col] = value
	return nil
}

// EmptyCells returns the empty cells in row-major order.
func (b Board) EmptyCells() []Cell {
	var cells []Cell
	for row := range BoardSize {
		for col := range BoardSize {
			if b[row][col] == 0 {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}
	return cells
}

// IsFull returns true if the board has no empty cell.
func (b Board) IsFull() bool {
	return len(b.EmptyCells()) == 0
}

// MaxTile returns the highest tile value on the board.
func (b Board) MaxTile() int {
	maxVal := 0
	for row := range BoardSize {
		for col := range BoardSize {
			maxVal = max(maxVal, b[row][col])
		}
	}
	return maxVal
}

// TileSum returns the sum of all tile values.
func (b Board) TileSum() int {
	sum := 0
	for row := range BoardSize {
		for col := range BoardSize {
			sum += b[row][col]
		}
	}
	return sum
}

// String prints the board as tab-separated rows followed by a blank line.
func (b Board) String() string {
	var sb strings.Builder
	for row := range BoardSize {
		for col := range BoardSize {
			sb.WriteString(strconv.Itoa(b[row][col]))
			sb.WriteByte('\t')
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	return sb.String()
}
