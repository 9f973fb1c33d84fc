package t2048

// Source is the random number source used for spawning.
// *rand.Rand satisfies it; tests inject scripted sources.
type Source interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
}

// Spawner places new tiles into empty cells.
type Spawner struct {
	rng Source
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng Source) *Spawner {
	return &Spawner{rng: rng}
}

// Spawn places a 2 or a 4 (equal odds) on a uniformly chosen empty cell.
// Returns the cell and value, or false without touching the board when it is full.
func (s *Spawner) Spawn(b *Board) (Cell, int, bool) {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return Cell{}, 0, false
	}

	// k-th empty cell in row-major order, 1-based
	k := s.rng.Intn(len(empty)) + 1
	cell := empty[k-1]
	value := (s.rng.Intn(2) + 1) * 2

	b[cell.Row][cell.Col] = value
	return cell, value, true
}
