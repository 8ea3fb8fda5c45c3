package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Options configures a game session.
type Options struct {
	Game     config.TetrisConfig
	Runtime  core.RuntimeConfig
	Logger   *log.Logger
	Renderer *lipgloss.Renderer

	// ScreenshotDir is where ctrl+s writes the screen. Empty disables
	// screenshots.
	ScreenshotDir string
}

// DefaultScreenshotDir returns ~/.tetris/screenshots, or empty if home is
// unavailable.
func DefaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "screenshots")
}

// Model is the Bubble Tea model for one tetris session.
type Model struct {
	game          *tetris.Game
	screen        *core.Screen
	config        core.RuntimeConfig
	inputFrame    core.InputFrame
	gameState     core.GameState
	keys          KeyMap
	help          help.Model
	styles        Styles
	logger        *log.Logger
	screenshotDir string
	quitting      bool
}

// NewModel creates a new Bubble Tea model running a fresh game.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Tick <= 0 {
		cfg.Tick = opts.Game.Timing.Tick
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:          tetris.New(opts.Game),
		screen:        core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		config:        cfg,
		inputFrame:    core.NewInputFrame(),
		keys:          DefaultKeyMap(),
		help:          h,
		styles:        NewStyles(opts.Renderer),
		logger:        logger,
		screenshotDir: opts.ScreenshotDir,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.logger.Info("game started", "seed", m.config.Seed)

	// Start the tick loop
	return tickCmd(m.config.Tick)
}

// gameConfig is the runtime config with the help rows removed.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.gameHeight()
	return cfg
}

// gameHeight is the terminal height left for the game once help is drawn.
func (m Model) gameHeight() int {
	rows := 1
	if m.help.ShowAll {
		for _, col := range m.keys.FullHelp() {
			rows = max(rows, len(col))
		}
	}
	return max(m.config.ScreenH-rows, 0)
}

// layout sizes the screen buffer and the game to the current window.
func (m Model) layout() {
	m.screen.Resize(m.config.ScreenW, m.gameHeight())
	m.game.Resize(m.config.ScreenW, m.gameHeight())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.quitting = true
		m.logger.Info("game aborted", "score", m.gameState.Score)
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionRestart && !m.gameState.GameOver {
		return m, nil
	}
	m.inputFrame.Set(action)
	return m, nil
}

// handleResize keeps the game running and lets it pause itself while the
// window is too small.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()

	m.logger.Debug("window resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.gameConfig())
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		m.logger.Info("game restarted", "seed", m.config.Seed)
		return m, tickCmd(m.config.Tick)
	}

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.LinesCleared > 0 {
		m.logger.Debug("lines cleared", "lines", result.LinesCleared, "score", m.gameState.Score)
	}
	if m.gameState.GameOver && !wasOver {
		snap := m.game.Snapshot()
		m.logger.Info("game over", "score", snap.Score, "lines", snap.Lines, "ticks", snap.Tick)
	}
	if m.gameState.QuitRequested {
		m.quitting = true
		m.logger.Info("game quit", "score", m.gameState.Score)
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.config.Tick)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.screenshotDir == "" {
		return
	}

	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen, m.styles),
		m.help.View(m.keys),
	)
}

// Run starts a local Bubble Tea program for one game.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
