// Package tui provides the Bubble Tea frame driver for the breakout engine.
// It handles the terminal UI loop, input mapping, and frame timing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the elapsed time between two ticks, clamped to [0, limit].
// A stalled terminal or suspended process would otherwise feed one huge step
// into the physics.
func frameDelta(prev, now time.Time, limit time.Duration) time.Duration {
	if prev.IsZero() {
		return 0
	}
	d := now.Sub(prev)
	if d < 0 {
		return 0
	}
	if d > limit {
		return limit
	}
	return d
}
