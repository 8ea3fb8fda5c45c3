package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in this terminal.

Controls:
  Left/J, Right/L   - Move
  Down/K            - Soft drop
  Space             - Hard drop
  X/Up, Z           - Rotate clockwise, counter-clockwise
  C                 - Hold
  P/Esc             - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Screenshot to ~/.tetris/screenshots
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Constant gravity at first, speeds up as lines are cleared
  normal - Start at 30% speed-up, progresses to max
  hard   - Start at 70% speed-up, progresses to max
  fixed  - No progression, gravity stays at fall_interval

Examples:
  tetris play
  tetris play --difficulty hard
  tetris play --seed 42 --log-file tetris.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyTetrisPreset(&cfg, preset)

	// The game owns the terminal, so logs go nowhere unless a file is set.
	logger, closeLog, err := newLogger(cfg.Log, io.Discard, "tetris")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runErr := tui.Run(tui.Options{
		Game: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Tick:    cfg.Timing.Tick,
			Seed:    flagSeed,
		},
		Logger:        logger,
		ScreenshotDir: tui.DefaultScreenshotDir(),
	})

	// Close log before potential exit
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
