package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar  = '='
	BallChar    = '●'
	BrickChar   = '█'
	BorderHoriz = '─'
)

// Minimum terminal size for a readable playfield.
const (
	minScreenW = 30
	minScreenH = 12
)

// hudRows is the number of rows above the playfield.
const hudRows = 2

// Messages shown over the playfield.
const (
	MenuPrompt      = "Press [Space] to start!"
	GameOverMessage = "Game Over!"
)

// viewport maps world coordinates onto screen cells below the HUD.
type viewport struct {
	w, h int // playfield size in cells
	top  int // first playfield row
}

func newViewport(dst *core.Screen) viewport {
	return viewport{w: dst.Width(), h: dst.Height() - hudRows, top: hudRows}
}

func (v viewport) cellX(x float64) int {
	return int(x / ScreenWidth * float64(v.w))
}

func (v viewport) cellY(y float64) int {
	return v.top + int(y/ScreenHeight*float64(v.h))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawBox(0, 0, dst.Width(), dst.Height())
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	vp := newViewport(dst)

	g.renderHUD(dst)
	g.renderBricks(dst, vp)
	g.renderPaddle(dst, vp)
	g.renderBall(dst, vp)
	g.renderOverlay(dst, vp)
}

// renderHUD draws score and lives on the first row and best on the second.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))

	livesText := fmt.Sprintf("Lives: %d", g.lives)
	dst.DrawText(dst.Width()-len(livesText)-1, 0, livesText)

	bestText := fmt.Sprintf("Best: %d", g.best)
	for x := range dst.Width() {
		dst.SetColored(x, 1, BorderHoriz, core.ColorGray)
	}
	dst.DrawText(1, 1, bestText)
}

// renderBricks draws all active bricks. Several brick rows can share a cell
// row on small terminals; a cell is drawn if any active brick covers it.
func (g *Game) renderBricks(dst *core.Screen, vp viewport) {
	for i := range g.bricks {
		brick := g.bricks[i]
		if !brick.Active {
			continue
		}

		row, _ := RowCol(i)
		r := brick.Rect()
		x0 := vp.cellX(r.X)
		x1 := vp.cellX(r.Right())
		if x1-x0 >= 3 {
			x1-- // keep a gap between neighbours
		}
		if x1 <= x0 {
			x1 = x0 + 1
		}
		y := vp.cellY(r.Center().Y)

		dst.DrawRect(x0, y, x1-x0, 1, BrickChar, core.Palette(row))
	}
}

// renderPaddle draws the player's paddle.
func (g *Game) renderPaddle(dst *core.Screen, vp viewport) {
	r := g.paddle.Rect()
	x0 := vp.cellX(r.X)
	x1 := core.Max(vp.cellX(r.Right()), x0+1)
	dst.DrawRect(x0, vp.cellY(r.Y), x1-x0, 1, PaddleChar, core.ColorBrightRed)
}

// renderBall draws the ball.
func (g *Game) renderBall(dst *core.Screen, vp viewport) {
	dst.SetColored(vp.cellX(g.ball.Position.X), vp.cellY(g.ball.Position.Y), BallChar, core.ColorBrightBlue)
}

// renderOverlay draws state-dependent prompts above the paddle area.
func (g *Game) renderOverlay(dst *core.Screen, vp viewport) {
	y := vp.cellY(ScreenHeight/2 - 50)

	switch g.state {
	case StateMenu:
		dst.DrawTextCentered(y, MenuPrompt)
	case StateGameOver:
		dst.DrawTextCentered(y, GameOverMessage)
	}
}
