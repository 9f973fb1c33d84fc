// t2048 is a terminal 2048 game.
//
// Usage:
//
//	t2048 play      - Play a game in the terminal
//	t2048 sim       - Play headless games (scripted or random)
//	t2048 scores    - Show the best recorded games
//	t2048 history   - Browse recorded games interactively
//	t2048 config    - Print the effective configuration
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for reproducible games
//	--config <path>    - Load configuration from a YAML file
//	--db <path>        - Set database path (default: ~/.t2048/results.db)
//	--log-level <lvl>  - debug, info, warn or error
//	--log-file <path>  - Log file used while the full-screen UI runs
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	// Resolved in the root pre-run
	appConfig config.Config
	appSource config.Source
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is the sliding-tile merging puzzle on a 4x4 board.

Every move slides all tiles toward one edge, merging equal neighbours,
and then spawns a new 2 or 4. The game ends when the board is full and
no two neighbouring tiles match.

Available commands:
  play     - Play interactively
  sim      - Run headless games
  scores   - View the best games
  history  - Browse recorded games
  config   - Print the effective configuration

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 sim --moves LLURDD --verbose
  t2048 sim --games 100 --record
  t2048 scores --limit 5`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config value, then time based)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (default from config: ~/.t2048/results.db)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for full-screen commands")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies flag overrides.
func loadConfig(cmd *cobra.Command, args []string) error {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagSeed != 0 {
		cfg.Game.Seed = flagSeed
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	appConfig = cfg
	appSource = source
	return nil
}

// newLogger creates a logger writing to w at the configured level.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           lvl,
	}), nil
}

// openLogFile opens the log file in append mode, creating its directory.
// The full-screen UI owns the terminal, so logs must not go to stderr.
func openLogFile(path string) (*os.File, error) {
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// fileLogger returns a logger for full-screen commands and a close func.
// Falls back to discarding output when the file cannot be opened.
func fileLogger() (*log.Logger, func()) {
	f, err := openLogFile(appConfig.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		logger, _ := newLogger(io.Discard, appConfig.Log.Level)
		return logger, func() {}
	}

	logger, err := newLogger(f, appConfig.Log.Level)
	if err != nil {
		f.Close()
		logger, _ = newLogger(io.Discard, "info")
		return logger, func() {}
	}
	return logger, func() { f.Close() }
}

// stderrLogger returns a logger for line-oriented commands.
func stderrLogger() *log.Logger {
	logger, err := newLogger(os.Stderr, appConfig.Log.Level)
	if err != nil {
		logger, _ = newLogger(os.Stderr, "info")
	}
	return logger
}
