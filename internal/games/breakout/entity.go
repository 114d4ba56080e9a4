// Package breakout implements the simulation engine of a single-screen
// ball-and-paddle game: per-frame physics, collisions and the round state machine.
//
// All positions are in world units on a fixed 800x600 playfield with the origin
// at the top-left corner and y growing downward. The engine consumes an Input and
// an elapsed time per tick; renderers read the state back through accessors.
package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Playfield and entity constants.
const (
	ScreenWidth  = 800.0
	ScreenHeight = 600.0

	PaddleWidth  = 100.0
	PaddleHeight = 20.0
	PaddleSpeed  = 800.0 // units per second
	PaddleStartX = ScreenWidth / 2
	PaddleY      = ScreenHeight - 50

	// paddleStripHeight is the height of the collision strip along the paddle's top edge.
	paddleStripHeight = 1.0

	BallRadius = 10.0
	BallSpeed  = 500.0 // units per second once a round starts

	// BounceGain scales the normalized paddle hit offset before taking its sine.
	BounceGain = 5.0

	// ResetDelay is the time in seconds spent in Resetting or GameOver.
	ResetDelay = 1.0

	StartLives = 3
)

// Paddle is the player-controlled paddle. Position is its top-left corner.
type Paddle struct {
	Position core.Vec2
	Width    float64
	Height   float64
	Speed    float64 // units per second
}

func newPaddle() Paddle {
	return Paddle{
		Position: core.Vec2{X: PaddleStartX, Y: PaddleY},
		Width:    PaddleWidth,
		Height:   PaddleHeight,
		Speed:    PaddleSpeed,
	}
}

// Rect returns the full paddle body.
func (p Paddle) Rect() core.Rect {
	return core.NewRect(p.Position.X, p.Position.Y, p.Width, p.Height)
}

// TopEdge returns the thin strip along the top of the paddle that the ball bounces off.
func (p Paddle) TopEdge() core.Rect {
	return core.NewRect(p.Position.X, p.Position.Y, p.Width, paddleStripHeight)
}

// CenterX returns the horizontal center of the paddle.
func (p Paddle) CenterX() float64 {
	return p.Position.X + p.Width/2
}

// SpawnPoint returns where the ball rests above the paddle between rounds.
func (p Paddle) SpawnPoint() core.Vec2 {
	return core.Vec2{X: p.CenterX(), Y: p.Position.Y - p.Height/2}
}

// clamp keeps the paddle within the horizontal screen bounds.
func (p *Paddle) clamp() {
	p.Position.X = core.ClampF(p.Position.X, 0, ScreenWidth-p.Width)
}

// Ball is the moving ball. Position is its center.
// Direction is deliberately not normalized: a paddle bounce replaces only the
// horizontal component, so the effective speed changes from bounce to bounce.
type Ball struct {
	Position  core.Vec2
	Direction core.Vec2
	Speed     float64 // units per second
	Radius    float64
}

// BounceX reverses the horizontal direction.
func (b *Ball) BounceX() {
	b.Direction.X = -b.Direction.X
}

// BounceY reverses the vertical direction.
func (b *Ball) BounceY() {
	b.Direction.Y = -b.Direction.Y
}

// Hits reports whether the ball overlaps r.
func (b Ball) Hits(r core.Rect) bool {
	return core.CircleIntersectsRect(b.Position, b.Radius, r)
}
