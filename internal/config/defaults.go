package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the hard-coded configuration: the reference
// 50ms tick, 500ms gravity and no progression.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TimingConfig{
			Tick:         50 * time.Millisecond,
			FallInterval: 500 * time.Millisecond,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionLines,
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 4.0,
				MinFallInterval: 80 * time.Millisecond,
			},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
