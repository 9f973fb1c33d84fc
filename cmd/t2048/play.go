package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048",
	Long: `Start a game of 2048 in the terminal.

Controls (default bindings, see 't2048 config'):
  Arrows/WASD/HJKL  - Move
  R                 - New game (after game over)
  ?                 - Toggle full help
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Finished games are recorded in the results database.

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 play --log-level debug --log-file ./t2048.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog := fileLogger()
	defer closeLog()

	width, height := tui.DefaultWidth, tui.DefaultHeight
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open result storage
	store, err := storage.Open(appConfig.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		logger.Warn("could not open results database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Config: appConfig,
		Store:  store,
		Logger: logger,
		Seed:   appConfig.Game.Seed,
		Width:  width,
		Height: height,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
