// Package config provides YAML-based game configuration loading and
// difficulty management for the tetris engine.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// TetrisConfig contains all configuration for the game and its drivers.
type TetrisConfig struct {
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Log        LogConfig        `yaml:"log"`
}

// TimingConfig defines the driver cadence and base gravity.
type TimingConfig struct {
	Tick         time.Duration `yaml:"tick" env:"TETRIS_TICK"`
	FallInterval time.Duration `yaml:"fall_interval" env:"TETRIS_FALL_INTERVAL"`
}

// LogConfig defines logger settings used by the CLI.
type LogConfig struct {
	Level string `yaml:"level" env:"TETRIS_LOG_LEVEL"`
	File  string `yaml:"file" env:"TETRIS_LOG_FILE"`
}

// DifficultyConfig defines the gravity progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" env:"TETRIS_DIFFICULTY_ENABLED"`
	InitialLevel float64           `yaml:"initial_level" env:"TETRIS_DIFFICULTY_INITIAL_LEVEL"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a game.
type ProgressionConfig struct {
	Type  string `yaml:"type" env:"TETRIS_PROGRESSION_TYPE"`     // "lines" or "none"
	MaxAt int    `yaml:"max_at" env:"TETRIS_PROGRESSION_MAX_AT"` // Lines at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64       `yaml:"speed_multiplier" env:"TETRIS_SPEED_MULTIPLIER"` // Gravity is this many times faster at max difficulty, plus one
	MinFallInterval time.Duration `yaml:"min_fall_interval" env:"TETRIS_MIN_FALL_INTERVAL"`
}

// Progression types.
const (
	ProgressionLines = "lines"
	ProgressionNone  = "none"
)

// Validate checks the values the game relies on.
func (c TetrisConfig) Validate() error {
	if c.Timing.Tick <= 0 {
		return fmt.Errorf("%w: timing.tick must be positive, got %s", ErrInvalidConfig, c.Timing.Tick)
	}
	if c.Timing.FallInterval <= 0 {
		return fmt.Errorf("%w: timing.fall_interval must be positive, got %s", ErrInvalidConfig, c.Timing.FallInterval)
	}
	d := c.Difficulty
	if d.InitialLevel < 0 || d.InitialLevel > 1 {
		return fmt.Errorf("%w: difficulty.initial_level must be in [0, 1], got %g", ErrInvalidConfig, d.InitialLevel)
	}
	switch d.Progression.Type {
	case "", ProgressionLines, ProgressionNone:
	default:
		return fmt.Errorf("%w: unknown progression type %q", ErrInvalidConfig, d.Progression.Type)
	}
	if d.Progression.MaxAt < 0 {
		return fmt.Errorf("%w: difficulty.progression.max_at must not be negative", ErrInvalidConfig)
	}
	if d.Scaling.SpeedMultiplier < 0 {
		return fmt.Errorf("%w: difficulty.scaling.speed_multiplier must not be negative", ErrInvalidConfig)
	}
	if d.Scaling.MinFallInterval < 0 {
		return fmt.Errorf("%w: difficulty.scaling.min_fall_interval must not be negative", ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means "no preset".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty preset %q", ErrInvalidConfig, s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
