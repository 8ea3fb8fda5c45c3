// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris play              - Play a local game
//	tetris serve             - Start SSH server for remote play
//	tetris pieces            - Print every piece in every rotation
//	tetris config            - Print the effective configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for a reproducible piece sequence
//	--config <path>      - Use a specific config file
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `Tetris drops the seven classic pieces onto a 10x20 board.
Complete a row to clear it; let the stack reach the top and the game is over.

Available commands:
  play     - Play a game in this terminal
  serve    - Start SSH server for remote play
  pieces   - Show the piece rotation tables
  config   - Show the effective configuration

Examples:
  tetris play
  tetris play --difficulty hard
  tetris play --seed 42
  tetris serve --ssh :2222
  TETRIS_FALL_INTERVAL=300ms tetris play`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(piecesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config and applies the global log flags.
func loadConfig() (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	return cfg, nil
}

// newLogger builds the logger described by cfg. Without a log file the
// logger writes to fallback. The returned close func releases the file.
func newLogger(cfg config.LogConfig, fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level := log.InfoLevel
	if cfg.Level != "" {
		parsed, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	out := fallback
	closer := func() {}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}
