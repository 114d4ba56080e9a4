package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionStart, false},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			assert.Equal(t, tc.action, action)
			assert.Equal(t, tc.quit, quit)
		})
	}
}

func TestHoldTracker(t *testing.T) {
	start := time.Unix(0, 0)
	h := NewHoldTracker(100 * time.Millisecond)

	h.Press(core.ActionLeft, start)
	assert.True(t, h.Held(core.ActionLeft, start.Add(50*time.Millisecond)))
	assert.False(t, h.Held(core.ActionLeft, start.Add(150*time.Millisecond)))
	assert.False(t, h.Held(core.ActionRight, start))

	// Auto-repeat keeps the key held.
	h.Press(core.ActionLeft, start.Add(90*time.Millisecond))
	assert.True(t, h.Held(core.ActionLeft, start.Add(150*time.Millisecond)))

	// The opposite direction releases immediately.
	h.Press(core.ActionRight, start.Add(160*time.Millisecond))
	assert.False(t, h.Held(core.ActionLeft, start.Add(160*time.Millisecond)))
	assert.True(t, h.Held(core.ActionRight, start.Add(160*time.Millisecond)))
}

func TestHoldTrackerFillConsumesTaps(t *testing.T) {
	start := time.Unix(0, 0)
	h := NewHoldTracker(0)
	frame := core.NewInputFrame()

	h.Press(core.ActionRight, start)
	assert.False(t, h.Held(core.ActionRight, start.Add(time.Second)))
	h.Fill(&frame, start.Add(time.Second))
	assert.True(t, frame.Has(core.ActionRight), "a tap moves for at least one tick")

	frame.Clear()
	h.Fill(&frame, start.Add(2*time.Second))
	assert.False(t, frame.Has(core.ActionRight))
}

func TestFrameDelta(t *testing.T) {
	start := time.Unix(100, 0)
	limit := 100 * time.Millisecond

	assert.Zero(t, frameDelta(time.Time{}, start, limit), "first tick has no elapsed time")
	assert.Equal(t, 16*time.Millisecond, frameDelta(start, start.Add(16*time.Millisecond), limit))
	assert.Equal(t, limit, frameDelta(start, start.Add(3*time.Second), limit))
	assert.Zero(t, frameDelta(start, start.Add(-time.Second), limit))
}
