package breakout

import "math"

// Autopilot is a scripted input source that keeps the paddle under the ball.
// It drives headless runs and soak tests without a terminal.
type Autopilot struct {
	// Offset shifts the aim point from the paddle center so hits are off-center
	// and the bounce angle varies. Zero aims at the center.
	Offset float64

	// Deadzone is the distance within which the paddle is considered aligned.
	Deadzone float64
}

// NewAutopilot returns an autopilot with a small off-center aim.
func NewAutopilot() *Autopilot {
	return &Autopilot{Offset: PaddleWidth / 8, Deadzone: 4}
}

// Next returns the input for the coming tick.
func (a *Autopilot) Next(g *Game) Input {
	switch g.State() {
	case StateMenu:
		return Input{Start: true}
	case StatePlaying:
		ball := g.Ball()
		target := ball.Position.X - a.Offset
		diff := target - g.Paddle().CenterX()
		if math.Abs(diff) <= a.Deadzone {
			return Input{}
		}
		return Input{Left: diff < 0, Right: diff > 0}
	default:
		return Input{}
	}
}
