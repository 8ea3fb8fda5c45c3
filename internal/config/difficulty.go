package config

import (
	"math"
	"time"
)

// DifficultyManager computes gravity from the number of cleared lines.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressionNone
}

// Level returns the current difficulty level (0.0 to 1.0) for lines cleared.
func (d *DifficultyManager) Level(lines int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	progress := clampF(float64(lines)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// FallInterval returns the gravity step for lines cleared.
// Gravity speeds up from base to base/(1+speedMultiplier) at max level and
// never drops below the configured floor.
func (d *DifficultyManager) FallInterval(base time.Duration, lines int) time.Duration {
	level := d.Level(lines)
	interval := time.Duration(float64(base) / (1.0 + level*d.cfg.Scaling.SpeedMultiplier))

	floor := d.cfg.Scaling.MinFallInterval
	if floor <= 0 || floor > base {
		floor = min(base, time.Millisecond)
	}
	if interval < floor {
		interval = floor
	}
	return interval
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
