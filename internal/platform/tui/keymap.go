package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Start key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Start, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultKeyMap returns the default game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Start: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight, false
	case key.Matches(msg, km.keys.Start):
		return core.ActionStart, false
	}
	return core.ActionNone, false
}

// HoldTracker turns key press events into held directions.
// Terminals report presses and auto-repeats but no releases, so a direction
// counts as held until no event for it has arrived within the timeout.
type HoldTracker struct {
	timeout time.Duration
	last    map[core.Action]time.Time
	pending map[core.Action]bool
}

// NewHoldTracker creates a tracker with the given hold timeout.
func NewHoldTracker(timeout time.Duration) *HoldTracker {
	return &HoldTracker{
		timeout: timeout,
		last:    make(map[core.Action]time.Time),
		pending: make(map[core.Action]bool),
	}
}

// Press records a key event for a held action at now.
// Pressing one direction releases the opposite one.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		h.release(core.ActionRight)
	case core.ActionRight:
		h.release(core.ActionLeft)
	}
	h.last[a] = now
	h.pending[a] = true
}

func (h *HoldTracker) release(a core.Action) {
	delete(h.last, a)
	delete(h.pending, a)
}

// Held reports whether the last event for a is within the timeout at now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	t, ok := h.last[a]
	return ok && now.Sub(t) < h.timeout
}

// Fill sets every held action on frame and consumes pending presses.
// A press not yet seen by any tick counts even if its hold has expired,
// so a tap still moves the paddle for one tick.
func (h *HoldTracker) Fill(frame *core.InputFrame, now time.Time) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight} {
		if h.pending[a] || h.Held(a, now) {
			frame.Set(a)
		}
	}
	clear(h.pending)
}
