package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDifficultyDisabledKeepsBaseGravity(t *testing.T) {
	d := NewDifficultyManager(DefaultTetrisConfig().Difficulty)

	assert.False(t, d.IsEnabled())
	for _, lines := range []int{0, 10, 1000} {
		assert.Equal(t, 500*time.Millisecond, d.FallInterval(500*time.Millisecond, lines))
	}
}

func TestDifficultyProgression(t *testing.T) {
	cfg := DefaultTetrisConfig().Difficulty
	cfg.Enabled = true
	d := NewDifficultyManager(cfg)
	base := 500 * time.Millisecond

	assert.InDelta(t, 0.0, d.Level(0), 1e-9)
	assert.InDelta(t, 0.5, d.Level(50), 1e-9)
	assert.InDelta(t, 1.0, d.Level(500), 1e-9)

	assert.Equal(t, base, d.FallInterval(base, 0))
	assert.Equal(t, 100*time.Millisecond, d.FallInterval(base, 100))

	prev := d.FallInterval(base, 0)
	for lines := 10; lines <= 100; lines += 10 {
		cur := d.FallInterval(base, lines)
		assert.LessOrEqual(t, cur, prev, "lines %d", lines)
		prev = cur
	}
}

func TestDifficultyFloor(t *testing.T) {
	cfg := DefaultTetrisConfig().Difficulty
	cfg.Enabled = true
	cfg.Scaling.SpeedMultiplier = 100
	d := NewDifficultyManager(cfg)

	assert.Equal(t, 80*time.Millisecond, d.FallInterval(500*time.Millisecond, 100))
}

func TestDifficultyInitialLevel(t *testing.T) {
	cfg := DefaultTetrisConfig()
	ApplyTetrisPreset(&cfg, DifficultyNormal)
	d := NewDifficultyManager(cfg.Difficulty)

	assert.InDelta(t, 0.3, d.Level(0), 1e-9)
	assert.InDelta(t, 1.0, d.Level(100), 1e-9)

	cfg.Difficulty.InitialLevel = 5
	d = NewDifficultyManager(cfg.Difficulty)
	assert.InDelta(t, 1.0, d.Level(0), 1e-9)
}

func TestDifficultyProgressionNone(t *testing.T) {
	cfg := DefaultTetrisConfig().Difficulty
	cfg.Enabled = true
	cfg.Progression.Type = ProgressionNone
	cfg.InitialLevel = 0.25
	d := NewDifficultyManager(cfg)

	assert.False(t, d.IsEnabled())
	assert.InDelta(t, 0.25, d.Level(1000), 1e-9)
}
