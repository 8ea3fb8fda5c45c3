package tetris

import "time"

// PieceSnapshot is the active piece as seen from outside the game.
type PieceSnapshot struct {
	Kind     Kind
	Rotation int
	X, Y     int
}

// Snapshot is a read-only view of the game state for renderers and callers.
// Board is a copy; a Snapshot stays valid after the game moves on.
type Snapshot struct {
	Tick          uint64
	Board         Board
	Active        PieceSnapshot
	Next          Kind
	Held          Kind
	HasHeld       bool
	CanHold       bool
	Score         int
	Lines         int
	Level         int
	FallInterval  time.Duration
	RunState      RunState
	Paused        bool
	QuitRequested bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:  g.tick,
		Board: g.board,
		Active: PieceSnapshot{
			Kind:     g.active.Kind,
			Rotation: g.active.Rotation,
			X:        g.active.X,
			Y:        g.active.Y,
		},
		Next:          g.next,
		Held:          g.held,
		HasHeld:       g.hasHeld,
		CanHold:       g.canHold,
		Score:         g.score,
		Lines:         g.lines,
		Level:         g.Level(),
		FallInterval:  g.fallInterval,
		RunState:      g.state,
		Paused:        g.paused,
		QuitRequested: g.quitRequested,
	}
}
