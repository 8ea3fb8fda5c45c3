package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// ScorePerLine is awarded for every cleared row.
const ScorePerLine = 10

// LinesPerLevel is how many cleared rows advance the displayed level.
const LinesPerLevel = 10

// Command is a discrete player command.
type Command int

const (
	CommandMoveLeft Command = iota
	CommandMoveRight
	CommandSoftDrop
	CommandHardDrop
	CommandRotateClockwise
	CommandRotateCounterClockwise
	CommandHold
	CommandQuit
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandMoveLeft:
		return "MoveLeft"
	case CommandMoveRight:
		return "MoveRight"
	case CommandSoftDrop:
		return "SoftDrop"
	case CommandHardDrop:
		return "HardDrop"
	case CommandRotateClockwise:
		return "RotateClockwise"
	case CommandRotateCounterClockwise:
		return "RotateCounterClockwise"
	case CommandHold:
		return "Hold"
	case CommandQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// commandFor maps a platform action to a game command.
func commandFor(a core.Action) (Command, bool) {
	switch a {
	case core.ActionLeft:
		return CommandMoveLeft, true
	case core.ActionRight:
		return CommandMoveRight, true
	case core.ActionSoftDrop:
		return CommandSoftDrop, true
	case core.ActionHardDrop:
		return CommandHardDrop, true
	case core.ActionRotateCW:
		return CommandRotateClockwise, true
	case core.ActionRotateCCW:
		return CommandRotateCounterClockwise, true
	case core.ActionHold:
		return CommandHold, true
	case core.ActionQuit:
		return CommandQuit, true
	default:
		return 0, false
	}
}

// RotateDirection selects a rotation.
type RotateDirection int

const (
	Clockwise RotateDirection = iota
	CounterClockwise
)

// RunState is the lifecycle state of a game.
type RunState string

const (
	StatePlaying RunState = "playing"
	StateLost    RunState = "lost"
)

// Game is the falling-block state machine. It is driven from a single
// goroutine: the caller queues commands and advances time, then reads a
// Snapshot or renders.
type Game struct {
	cfg        config.TetrisConfig
	difficulty *config.DifficultyManager
	bag        *Bag
	tick       uint64
	step       time.Duration

	score   int
	lines   int
	board   Board
	active  ActivePiece
	next    Kind
	held    Kind
	hasHeld bool
	canHold bool
	state   RunState

	fallAccumulator time.Duration
	fallInterval    time.Duration

	// Screen dimensions
	screenW int
	screenH int

	paused        bool
	tooSmall      bool
	quitRequested bool
}

// New creates a game with the given configuration. Call Reset before use.
func New(cfg config.TetrisConfig) *Game {
	return &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		state:      StatePlaying,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Reset initializes/restarts the game with a bag seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.step = cfg.Tick
	if g.step <= 0 {
		g.step = g.cfg.Timing.Tick
	}
	g.start(NewBag(rand.New(rand.NewSource(cfg.Seed)))) //nolint:gosec // gameplay randomness
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// start puts the game in its initial state, drawing the active and the
// queued kind from bag.
func (g *Game) start(bag *Bag) {
	g.bag = bag
	g.tick = 0
	g.score = 0
	g.lines = 0
	g.board = Board{}
	g.hasHeld = false
	g.held = 0
	g.canHold = true
	g.state = StatePlaying
	g.paused = false
	g.quitRequested = false
	g.fallAccumulator = 0
	g.fallInterval = g.difficulty.FallInterval(g.cfg.Timing.FallInterval, 0)

	current := g.bag.Next()
	g.next = g.bag.Next()
	g.spawn(current)
}

// Resize records the screen size and pauses the game while it cannot be drawn.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < layoutWidth || h < layoutHeight
}

// Step advances the game by one fixed tick: the frame's actions are applied
// in order, then the lock/clear/loss pass runs, then gravity advances.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	for _, a := range in.Actions {
		if a == core.ActionPause {
			g.togglePause()
			continue
		}
		if cmd, ok := commandFor(a); ok {
			g.Apply(cmd)
		}
	}

	var result core.StepResult
	if g.running() {
		result.Locked, result.LinesCleared = g.resolveLockAndClear()
		g.Tick(g.step)
	}

	result.State = g.State()
	return result
}

// Apply executes a single command. Blocked moves are ignored; once the game
// is lost only Quit has an effect.
func (g *Game) Apply(cmd Command) {
	if cmd == CommandQuit {
		g.quitRequested = true
		return
	}
	if !g.running() {
		return
	}

	switch cmd {
	case CommandMoveLeft:
		g.moveHorizontal(-1)
	case CommandMoveRight:
		g.moveHorizontal(1)
	case CommandSoftDrop:
		g.moveDownOne()
	case CommandHardDrop:
		g.hardDrop()
	case CommandRotateClockwise:
		g.rotate(Clockwise)
	case CommandRotateCounterClockwise:
		g.rotate(CounterClockwise)
	case CommandHold:
		g.hold()
	}
}

// Tick accumulates dt and applies one gravity step per elapsed fall
// interval. A step that would not fit is skipped; the piece is then resting
// and fuses on the next lock pass.
func (g *Game) Tick(dt time.Duration) {
	if !g.running() || g.fallInterval <= 0 {
		return
	}

	g.fallAccumulator += dt
	for g.fallAccumulator >= g.fallInterval {
		g.fallAccumulator -= g.fallInterval
		g.moveDownOne()
	}
}

// running reports whether commands and gravity currently apply.
func (g *Game) running() bool {
	return g.state == StatePlaying && !g.paused && !g.tooSmall
}

func (g *Game) togglePause() {
	if g.state != StatePlaying {
		return
	}
	g.paused = !g.paused
}

// moveHorizontal shifts the active piece by dx columns if it fits.
func (g *Game) moveHorizontal(dx int) bool {
	return g.tryMove(dx, 0)
}

// moveDownOne drops the active piece one row if it fits.
func (g *Game) moveDownOne() bool {
	return g.tryMove(0, 1)
}

func (g *Game) tryMove(dx, dy int) bool {
	x, y := g.active.X+dx, g.active.Y+dy
	if !g.board.CanFit(x, y, g.active.Shape()) {
		return false
	}
	g.active.X, g.active.Y = x, y
	return true
}

// rotate turns the active piece in place. There is no wall kick: a rotation
// that does not fit at the current origin is rejected.
func (g *Game) rotate(dir RotateDirection) bool {
	candidate := g.active.RotateClockwise()
	if dir == CounterClockwise {
		candidate = g.active.RotateCounterClockwise()
	}
	if !g.board.CanFit(g.active.X, g.active.Y, candidate.Shape()) {
		return false
	}
	g.active.Piece = candidate
	return true
}

// hold parks the active kind. The first hold promotes the queued kind and
// draws a new one; later holds swap with the parked kind. Only one hold is
// allowed per lock.
func (g *Game) hold() bool {
	if !g.canHold {
		return false
	}

	current := g.active.Kind
	if g.hasHeld {
		swapped := g.held
		g.held = current
		g.spawn(swapped)
	} else {
		g.held = current
		g.hasHeld = true
		g.spawn(g.next)
		g.next = g.bag.Next()
	}

	g.canHold = false
	return true
}

// hardDrop moves the piece down until blocked and returns the distance.
// The piece fuses on the lock pass that follows the commands.
func (g *Game) hardDrop() int {
	n := 0
	for n < BoardHeight && g.moveDownOne() {
		n++
	}
	return n
}

// shouldFuse reports whether any filled cell of the active piece sits on the
// bottom row or directly above an occupied cell.
func (g *Game) shouldFuse() bool {
	below := core.Point{X: g.active.X, Y: g.active.Y + 1}
	for _, c := range g.active.Shape().Cells() {
		p := below.Add(c)
		if p.Y == BoardHeight {
			return true
		}
		if InBounds(p.X, p.Y) && g.board.IsOccupied(p.X, p.Y) {
			return true
		}
	}
	return false
}

// resolveLockAndClear fuses a resting piece into the board, clears full
// rows, scores them and brings in the next piece.
func (g *Game) resolveLockAndClear() (locked bool, cleared int) {
	if !g.shouldFuse() {
		return false, 0
	}

	g.board.Commit(g.active.X, g.active.Y, g.active.Shape(), g.active.Color())

	cleared = g.board.ClearFullRows()
	g.lines += cleared
	g.score += cleared * ScorePerLine
	g.fallInterval = g.difficulty.FallInterval(g.cfg.Timing.FallInterval, g.lines)

	g.spawn(g.next)
	g.next = g.bag.Next()
	g.canHold = true

	g.checkLoss()
	return true, cleared
}

// checkLoss ends the game when the stack reaches the top row.
func (g *Game) checkLoss() {
	if g.board.RowOccupied(0) {
		g.state = StateLost
	}
}

// spawn makes kind the active piece at its spawn position. A piece that
// cannot fit there ends the game.
func (g *Game) spawn(kind Kind) {
	g.active = newActivePiece(kind)
	if !g.board.CanFit(g.active.X, g.active.Y, g.active.Shape()) {
		g.state = StateLost
	}
}

// Level returns the displayed level.
func (g *Game) Level() int {
	return g.lines / LinesPerLevel
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:         g.score,
		GameOver:      g.state == StateLost,
		Paused:        g.paused || g.tooSmall,
		QuitRequested: g.quitRequested,
	}
}
