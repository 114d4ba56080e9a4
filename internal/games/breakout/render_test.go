package breakout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestRenderMenu(t *testing.T) {
	g := New()
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	assert.Contains(t, screen.Row(0), "Score: 0")
	assert.Contains(t, screen.Row(0), "Lives: 3")
	assert.Contains(t, screen.Row(1), "Best: 0")
	assert.Contains(t, screen.Row(11), MenuPrompt)

	assert.Equal(t, PaddleChar, screen.Get(40, 22))
	assert.Equal(t, PaddleChar, screen.Get(49, 22))
	assert.Equal(t, core.ColorBrightRed, screen.GetCell(40, 22).Color)
	assert.Equal(t, BallChar, screen.Get(45, 21))

	brick := screen.GetCell(1, 4)
	assert.Equal(t, BrickChar, brick.Rune)
	assert.Equal(t, core.Palette(0), brick.Color)
}

func TestRenderDestroyedBrick(t *testing.T) {
	g := New()
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	full := strings.Count(screen.String(), string(BrickChar))

	for col := range BrickCols {
		g.bricks[BrickIndex(0, col)].Active = false
	}
	g.Render(screen)

	assert.Less(t, strings.Count(screen.String(), string(BrickChar)), full)
	assert.NotContains(t, screen.Row(4), string(BrickChar))
}

func TestRenderGameOver(t *testing.T) {
	g := New()
	g.state = StateGameOver
	g.lives = 0
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	assert.Contains(t, screen.String(), GameOverMessage)
	assert.NotContains(t, screen.String(), MenuPrompt)
	assert.Contains(t, screen.Row(0), "Lives: 0")
}

func TestRenderPlayingHasNoOverlay(t *testing.T) {
	g := playing(t)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	assert.NotContains(t, screen.String(), MenuPrompt)
	assert.NotContains(t, screen.String(), GameOverMessage)
}

func TestRenderSmallScreen(t *testing.T) {
	g := New()
	screen := core.NewScreen(20, 8)

	g.Render(screen)

	assert.Contains(t, screen.String(), "Window too small")
	assert.Equal(t, '┌', screen.Get(0, 0))
	assert.Equal(t, '┘', screen.Get(19, 7))
}
