package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// isolate points the user config lookup at an empty home directory.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg TetrisConfig
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	assert.Equal(t, DefaultTetrisConfig(), cfg)
}

func TestLoadTetrisDefaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, 50*time.Millisecond, cfg.Timing.Tick)
	assert.Equal(t, 500*time.Millisecond, cfg.Timing.FallInterval)
	assert.False(t, cfg.Difficulty.Enabled)
}

func TestLoadTetrisCustomPath(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "timing:\n  fall_interval: 300ms\ndifficulty:\n  enabled: true\n")

	cfg, err := LoadTetris(path)
	require.NoError(t, err)
	assert.Equal(t, 300*time.Millisecond, cfg.Timing.FallInterval)
	assert.Equal(t, 50*time.Millisecond, cfg.Timing.Tick, "unset keys keep defaults")
	assert.True(t, cfg.Difficulty.Enabled)
}

func TestLoadTetrisUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".tetris"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".tetris", "config.yaml"), []byte("log:\n  level: debug\n"), 0o644))

	cfg, err := LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadTetrisMissingCustomPath(t *testing.T) {
	isolate(t)

	_, err := LoadTetris(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadTetrisBadYAML(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "timing: [")

	_, err := LoadTetris(path)
	assert.Error(t, err)
}

func TestLoadTetrisInvalidValues(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "timing:\n  fall_interval: -1s\n")

	_, err := LoadTetris(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadTetrisEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("TETRIS_FALL_INTERVAL", "250ms")
	t.Setenv("TETRIS_DIFFICULTY_ENABLED", "true")
	t.Setenv("TETRIS_LOG_LEVEL", "warn")

	cfg, err := LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Timing.FallInterval)
	assert.True(t, cfg.Difficulty.Enabled)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TetrisConfig)
	}{
		{"zero tick", func(c *TetrisConfig) { c.Timing.Tick = 0 }},
		{"zero fall", func(c *TetrisConfig) { c.Timing.FallInterval = 0 }},
		{"level above one", func(c *TetrisConfig) { c.Difficulty.InitialLevel = 1.5 }},
		{"unknown progression", func(c *TetrisConfig) { c.Difficulty.Progression.Type = "score" }},
		{"negative max", func(c *TetrisConfig) { c.Difficulty.Progression.MaxAt = -1 }},
		{"negative multiplier", func(c *TetrisConfig) { c.Difficulty.Scaling.SpeedMultiplier = -1 }},
		{"negative floor", func(c *TetrisConfig) { c.Difficulty.Scaling.MinFallInterval = -time.Second }},
	}

	require.NoError(t, DefaultTetrisConfig().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		p, err := ParsePreset(s)
		require.NoError(t, err)
		assert.Equal(t, DifficultyPreset(s), p)
	}

	_, err := ParsePreset("nightmare")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestApplyTetrisPreset(t *testing.T) {
	cfg := DefaultTetrisConfig()
	ApplyTetrisPreset(&cfg, "")
	assert.Equal(t, DefaultTetrisConfig(), cfg)

	ApplyTetrisPreset(&cfg, DifficultyHard)
	assert.True(t, cfg.Difficulty.Enabled)
	assert.InDelta(t, 0.7, cfg.Difficulty.InitialLevel, 1e-9)

	ApplyTetrisPreset(&cfg, DifficultyFixed)
	assert.False(t, cfg.Difficulty.Enabled)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Timing.FallInterval = 420 * time.Millisecond

	data, err := Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fall_interval: 420ms")

	var back TetrisConfig
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, cfg, back)
}
