package breakout

import (
	"fmt"
	"math"
)

// stepPhysics advances the ball and resolves collisions in a fixed order:
// integrate, walls, paddle, death zone, bricks. The order decides which
// collision wins within a frame. Must only be called while Playing.
func (g *Game) stepPhysics(dt float64) {
	if g.state != StatePlaying {
		panic(fmt.Sprintf("breakout: physics step in state %s", g.state))
	}

	g.ball.Position = g.ball.Position.Add(g.ball.Direction.Scale(g.ball.Speed * dt))

	g.wallBounce()
	g.paddleBounce()
	g.deathZone()
	g.brickBounce()
}

// wallBounce reflects the ball off the left, right and top walls.
// Each wall is checked independently.
func (g *Game) wallBounce() {
	b := &g.ball

	if b.Position.X >= ScreenWidth-b.Radius {
		b.BounceX()
	}
	if b.Position.X <= b.Radius {
		b.BounceX()
	}
	if b.Position.Y <= b.Radius {
		b.BounceY()
	}
}

// paddleBounce sends the ball back up when it touches the paddle's top edge.
// The horizontal direction becomes the sine of the scaled hit offset.
func (g *Game) paddleBounce() {
	if !g.ball.Hits(g.paddle.TopEdge()) {
		return
	}

	g.ball.Direction.X = BounceDirection(g.ball.Position.X, g.paddle.CenterX(), g.paddle.Width)
	g.ball.BounceY()
}

// BounceDirection returns the horizontal direction after a paddle hit at ballX.
// The offset from the paddle center is normalized by half the paddle width,
// scaled by BounceGain and passed through sine.
func BounceDirection(ballX, paddleCenterX, paddleWidth float64) float64 {
	percent := (ballX - paddleCenterX) / (paddleWidth / 2)
	return math.Sin(percent * BounceGain)
}

// deathZone ends the current life when the ball reaches the floor.
func (g *Game) deathZone() {
	if g.ball.Position.Y >= ScreenHeight-g.ball.Radius {
		g.loseLife()
	}
}

// brickBounce destroys every active brick the ball overlaps. There is no early
// exit: each overlapping brick flips the vertical direction and scores a point.
func (g *Game) brickBounce() {
	for i := range g.bricks {
		brick := &g.bricks[i]
		if !brick.Active {
			continue
		}
		if !g.ball.Hits(brick.Rect()) {
			continue
		}

		brick.Active = false
		g.ball.BounceY()
		g.score++

		if g.score > g.best {
			g.best = g.score
		}
	}
}
