package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Turn    int
	Board   Board
	MaxTile int
	TileSum int
	Empty   int
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	if g.gameOver {
		state = StateGameOver
	}

	return Snapshot{
		Turn:    g.turns,
		Board:   g.board,
		MaxTile: g.board.MaxTile(),
		TileSum: g.board.TileSum(),
		Empty:   len(g.board.EmptyCells()),
		State:   state,
	}
}
