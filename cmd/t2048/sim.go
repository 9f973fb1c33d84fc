package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/storage"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

var (
	flagSimMoves    string
	flagSimGames    int
	flagSimMaxTurns int
	flagSimVerbose  bool
	flagSimRecord   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Play headless games",
	Long: `Play games without the full-screen UI.

With --moves the letters L, R, U and D are played in order on one game.
Otherwise --games games are played with uniformly random moves until
game over or --max-turns. Game N uses seed+N, so runs are reproducible.

Examples:
  t2048 sim --seed 7 --moves LLURDD --verbose
  t2048 sim --seed 1 --games 50
  t2048 sim --games 10 --record`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimMoves, "moves", "", "Scripted moves, e.g. LURD")
	simCmd.Flags().IntVar(&flagSimGames, "games", 1, "Number of random games")
	simCmd.Flags().IntVar(&flagSimMaxTurns, "max-turns", 100000, "Turn cap per random game")
	simCmd.Flags().BoolVar(&flagSimVerbose, "verbose", false, "Print the board after every turn")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Record finished games in the results database")
}

// simOutcome is the end state of one simulated game.
type simOutcome struct {
	Seed     int64
	Snapshot t2048.Snapshot
}

func (o simOutcome) String() string {
	return fmt.Sprintf("seed=%d turns=%d max=%d sum=%d state=%s",
		o.Seed, o.Snapshot.Turn, o.Snapshot.MaxTile, o.Snapshot.TileSum, o.Snapshot.State)
}

func runSim(cmd *cobra.Command, args []string) {
	logger := stderrLogger()

	seed := appConfig.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var store *storage.Store
	if flagSimRecord {
		var err error
		store, err = storage.Open(appConfig.Storage.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	var outcomes []simOutcome
	if flagSimMoves != "" {
		moves, err := parseMoves(flagSimMoves)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		var out io.Writer = io.Discard
		if flagSimVerbose {
			out = os.Stdout
		}
		outcomes = append(outcomes, playScripted(out, logger, seed, moves))
	} else {
		for i := range flagSimGames {
			outcomes = append(outcomes, playRandom(logger, seed+int64(i), flagSimMaxTurns))
		}
	}

	for i, o := range outcomes {
		fmt.Printf("game %d %s\n", i+1, o)
		if store == nil || o.Snapshot.State != t2048.StateGameOver {
			continue
		}
		_, err := store.SaveResult(storage.Result{
			Seed:    o.Seed,
			Turns:   o.Snapshot.Turn,
			MaxTile: o.Snapshot.MaxTile,
			TileSum: o.Snapshot.TileSum,
			Origin:  storage.OriginSim,
		})
		if err != nil {
			logger.Warn("could not record result", "seed", o.Seed, "error", err)
		}
	}
}

// parseMoves converts a move script into directions.
// Whitespace and commas between letters are ignored.
func parseMoves(script string) ([]t2048.Direction, error) {
	var moves []t2048.Direction
	for i, r := range script {
		if r == ',' || r == ' ' || r == '\t' || r == '\n' {
			continue
		}
		dir, err := t2048.ParseDirection(string(r))
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, dir)
	}
	return moves, nil
}

// playScripted plays the moves in order on one game, writing the board to w
// after each turn. Moves after game over are ignored.
func playScripted(w io.Writer, logger *log.Logger, seed int64, moves []t2048.Direction) simOutcome {
	g := t2048.New(rand.New(rand.NewSource(seed)))
	fmt.Fprintf(w, "start\n%s", g.Board())

	for _, dir := range moves {
		if g.IsGameOver() {
			break
		}
		result, err := g.ApplyMove(dir)
		if err != nil {
			logger.Error("move rejected", "direction", dir, "error", err)
			break
		}
		logTurn(logger, g, result)
		fmt.Fprintf(w, "turn %d: %s\n%s", g.Turns(), dir, g.Board())
	}

	return finish(logger, seed, g)
}

// playRandom plays uniformly random directions until game over or maxTurns.
// Spawns and moves share one source so a seed fixes the whole game.
func playRandom(logger *log.Logger, seed int64, maxTurns int) simOutcome {
	rng := rand.New(rand.NewSource(seed))
	g := t2048.New(rng)

	for !g.IsGameOver() && g.Turns() < maxTurns {
		dir := t2048.Directions[rng.Intn(len(t2048.Directions))]
		result, err := g.ApplyMove(dir)
		if err != nil {
			logger.Error("move rejected", "direction", dir, "error", err)
			break
		}
		logTurn(logger, g, result)
	}

	return finish(logger, seed, g)
}

func logTurn(logger *log.Logger, g *t2048.Game, result t2048.TurnResult) {
	logger.Debug("turn",
		"n", g.Turns(),
		"direction", result.Direction,
		"changed", result.Changed,
		"spawned", result.Spawned,
		"row", result.SpawnedAt.Row,
		"col", result.SpawnedAt.Col,
		"value", result.SpawnedValue,
	)
	logger.Debug("board", "grid", g.Board().String())
}

func finish(logger *log.Logger, seed int64, g *t2048.Game) simOutcome {
	snap := g.Snapshot()
	if snap.State == t2048.StateGameOver {
		logger.Info("game over", "seed", seed, "turns", snap.Turn, "max_tile", snap.MaxTile, "tile_sum", snap.TileSum)
	}
	return simOutcome{Seed: seed, Snapshot: snap}
}
