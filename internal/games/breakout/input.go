package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Input is the raw per-tick input consumed by the engine.
type Input struct {
	Left  bool // Move-left held
	Right bool // Move-right held
	Start bool // Start pressed this tick (edge-triggered)
}

// InputFromFrame maps platform actions to engine input.
func InputFromFrame(f core.InputFrame) Input {
	return Input{
		Left:  f.Has(core.ActionLeft),
		Right: f.Has(core.ActionRight),
		Start: f.Has(core.ActionStart),
	}
}

// applyInput moves the paddle while Playing and handles the start trigger in Menu.
// Resetting and GameOver consume no input.
func (g *Game) applyInput(in Input, dt float64) {
	switch g.state {
	case StateMenu:
		if in.Start {
			g.start()
		}
	case StatePlaying:
		step := g.paddle.Speed * dt
		if in.Left {
			g.paddle.Position.X -= step
			g.paddle.clamp()
		}
		if in.Right {
			g.paddle.Position.X += step
			g.paddle.clamp()
		}
	}
}
