package t2048

// Line is one row or column, oriented so index 0 is the edge tiles move toward.
type Line [BoardSize]int

// MergeLine runs the merge pass over an uncompacted line.
// Equal non-zero neighbours (i, i+1) become (2v, 0); a tile produced by a
// merge is never merged again in the same pass. Gaps are not skipped, so
// tiles separated by an empty cell do not merge.
func MergeLine(line Line) Line {
	for i := 0; i < BoardSize-1; i++ {
		if line[i] != 0 && line[i] == line[i+1] {
			line[i] *= 2
			line[i+1] = 0
			i++
		}
	}
	return line
}

// CompactLine packs the non-zero values toward index 0, preserving order.
func CompactLine(line Line) Line {
	var result Line
	writePos := 0
	for _, v := range line {
		if v != 0 {
			result[writePos] = v
			writePos++
		}
	}
	return result
}

// SlideLine merges then compacts an oriented line.
func SlideLine(line Line) Line {
	return CompactLine(MergeLine(line))
}

// readLine extracts line i of the board oriented for dir.
func (b *Board) readLine(dir Direction, i int) Line {
	var line Line
	for j := range BoardSize {
		switch dir {
		case DirLeft:
			line[j] = b[i][j]
		case DirRight:
			line[j] = b[i][BoardSize-1-j]
		case DirUp:
			line[j] = b[j][i]
		case DirDown:
			line[j] = b[BoardSize-1-j][i]
		}
	}
	return line
}

// writeLine stores an oriented line back, undoing the orientation of readLine.
func (b *Board) writeLine(dir Direction, i int, line Line) {
	for j := range BoardSize {
		switch dir {
		case DirLeft:
			b[i][j] = line[j]
		case DirRight:
			b[i][BoardSize-1-j] = line[j]
		case DirUp:
			b[j][i] = line[j]
		case DirDown:
			b[BoardSize-1-j][i] = line[j]
		}
	}
}

// Move slides and merges every line toward dir in place.
// Returns whether any cell changed. An invalid direction leaves the board untouched.
func (b *Board) Move(dir Direction) (bool, error) {
	if !dir.Valid() {
		return false, ErrInvalidDirection
	}

	changed := false
	for i := range BoardSize {
		line := b.readLine(dir, i)
		slid := SlideLine(line)
		if slid != line {
			changed = true
		}
		b.writeLine(dir, i, slid)
	}
	return changed, nil
}

// Slide returns the board after a move in dir, leaving the input untouched.
func Slide(board Board, dir Direction) (Board, bool, error) {
	changed, err := board.Move(dir)
	return board, changed, err
}
