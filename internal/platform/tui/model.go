package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// footerRows is the number of rows reserved under the playfield.
const footerRows = 1

// Model is the Bubble Tea model that drives a game one frame per tick.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     config.Config
	logger     *log.Logger
	keys       KeyMap
	mapper     *KeyMapper
	holds      *HoldTracker
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState

	lastTick   time.Time
	frameDelta time.Duration
	frames     uint64
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// rc supplies the initial terminal size; later resizes arrive as messages.
func NewModel(game registry.Game, cfg config.Config, rc core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	keys := DefaultKeyMap()

	return Model{
		game:       game,
		screen:     core.NewScreen(rc.ScreenW, rc.ScreenH-footerRows),
		config:     cfg,
		logger:     logger,
		keys:       keys,
		mapper:     NewKeyMapper(keys),
		holds:      NewHoldTracker(cfg.Input.HoldTimeout),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.Status(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.FrameInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	action, isQuit := m.mapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("quit", "frames", m.frames, "score", m.gameState.Score, "best", m.gameState.Best)
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft, core.ActionRight:
		m.holds.Press(action, now)
	case core.ActionStart:
		m.inputFrame.Set(core.ActionStart)
	}
	return m, nil
}

// handleResize processes window resize events. The engine works in world
// units, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height-footerRows)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game by the real time elapsed since the previous tick.
// The first tick only starts the clock: stepping with no elapsed time would
// let a queued start bounce the resting ball off the paddle.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.lastTick.IsZero() {
		m.lastTick = now
		return m, tickCmd(m.config.FrameInterval())
	}

	m.frameDelta = frameDelta(m.lastTick, now, m.config.Runtime.MaxFrameDelta)
	m.lastTick = now
	m.frames++

	m.holds.Fill(&m.inputFrame, now)

	prev := m.gameState
	result := m.game.Step(m.inputFrame, m.frameDelta.Seconds())
	m.gameState = result.State

	if result.State.GameOver && !prev.GameOver {
		m.logger.Info("game over", "best", result.State.Best)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.FrameInterval())
}

// FrameDelta returns the elapsed time fed into the most recent tick.
func (m Model) FrameDelta() time.Duration { return m.frameDelta }

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.config.Render.Color) + "\n" + m.footer()
}

// footer renders the frame time and key help under the playfield.
func (m Model) footer() string {
	var status string
	if m.config.Render.ShowFrameTime {
		status = fmt.Sprintf("Frame: %.2f ms  ", float64(m.frameDelta.Microseconds())/1000)
	}

	var keys string
	if m.config.Render.ShowHelp {
		keys = m.help.View(m.keys)
	}

	if !m.config.Render.Color {
		return status + keys
	}
	return footerStyle.Render(status) + keys
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg config.Config, rc core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, rc, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
