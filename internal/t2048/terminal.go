package t2048

// IsTerminal returns true when no move can change the board:
// no empty cell and no equal neighbours to the right or below.
func IsTerminal(b Board) bool {
	for row := range BoardSize {
		for col := range BoardSize {
			val := b[row][col]
			if val == 0 {
				return false
			}
			if col < BoardSize-1 && b[row][col+1] == val {
				return false
			}
			if row < BoardSize-1 && b[row+1][col] == val {
				return false
			}
		}
	}
	return true
}

// CanMove returns true if any move is possible.
func CanMove(b Board) bool {
	return !IsTerminal(b)
}
