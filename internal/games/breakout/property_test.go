package breakout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var allowedTransitions = map[State][]State{
	StateMenu:      {StateMenu, StatePlaying},
	StatePlaying:   {StatePlaying, StateResetting, StateGameOver},
	StateResetting: {StateResetting, StateMenu},
	StateGameOver:  {StateGameOver, StateMenu},
}

// randomInput mixes autopilot play with random key presses so that every
// state is reached and the paddle hits both walls.
func randomInput(rng *SimpleRNG, pilot *Autopilot, g *Game) Input {
	if rng.Intn(4) == 0 {
		return Input{
			Left:  rng.Intn(2) == 0,
			Right: rng.Intn(2) == 0,
			Start: rng.Intn(8) == 0,
		}
	}
	return pilot.Next(g)
}

func TestInvariantsHoldOverLongRun(t *testing.T) {
	for _, seed := range []int64{1, 7, 99, 2024} {
		rng := NewSimpleRNG(seed)
		pilot := NewAutopilot()
		g := New(WithSeed(seed))

		seen := map[State]bool{StateMenu: true}
		prevState := g.State()
		prevBest := g.Best()
		prevBricks := g.Bricks()

		for tick := range 20000 {
			dt := float64(rng.Intn(50)) / 1000
			g.Tick(randomInput(rng, pilot, g), dt)

			p := g.Paddle()
			require.GreaterOrEqual(t, p.Position.X, 0.0, "seed %d tick %d", seed, tick)
			require.LessOrEqual(t, p.Position.X, ScreenWidth-p.Width, "seed %d tick %d", seed, tick)

			require.GreaterOrEqual(t, g.Best(), g.Score())
			require.GreaterOrEqual(t, g.Best(), prevBest, "best never decreases")
			require.GreaterOrEqual(t, g.Lives(), 0)
			require.LessOrEqual(t, g.Lives(), StartLives)
			if g.Lives() == 0 {
				require.Equal(t, StateGameOver, g.State())
			}

			bricks := g.Bricks()
			for i := range bricks {
				if !prevBricks[i].Active {
					require.False(t, bricks[i].Active, "brick %d reactivated", i)
				}
				require.Equal(t, prevBricks[i].Position, bricks[i].Position)
			}

			require.Contains(t, allowedTransitions[prevState], g.State(),
				"illegal transition %s -> %s", prevState, g.State())
			if g.State() == StateMenu {
				require.Zero(t, g.ResetTimer())
			}

			seen[g.State()] = true
			prevState = g.State()
			prevBest = g.Best()
			prevBricks = bricks
		}

		require.True(t, seen[StatePlaying], "seed %d never played", seed)
	}
}

func TestAutopilotScores(t *testing.T) {
	g := New(WithSeed(5))
	pilot := NewAutopilot()

	for range 60 * 30 {
		g.Tick(pilot.Next(g), frame)
	}

	require.Positive(t, g.Best())
	require.Less(t, g.Bricks().CountActive(), BrickCount)
}
