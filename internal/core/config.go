package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int           // Screen width in characters
	ScreenH int           // Screen height in characters
	Tick    time.Duration // Fixed simulation step
	Seed    int64         // RNG seed for deterministic gameplay
}

// DefaultTick is the reference driver cadence.
const DefaultTick = 50 * time.Millisecond

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Tick:    DefaultTick,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState is the coarse status the platform needs after every tick.
type GameState struct {
	Score         int  // Current score
	GameOver      bool // Whether the game has ended
	Paused        bool // Whether the game is paused
	QuitRequested bool // Whether the player asked to leave
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State        GameState
	Locked       bool // A piece fused with the stack this tick
	LinesCleared int  // Rows removed by that fuse
}
