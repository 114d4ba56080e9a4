package breakout

import "fmt"

// State is the round lifecycle phase. Exactly one is active at a time.
type State int

const (
	StateMenu      State = iota // Waiting for the start trigger
	StatePlaying                // Ball in play
	StateResetting              // Life lost, waiting out the reset delay
	StateGameOver               // No lives left, waiting out the reset delay
)

// String returns the phase name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateResetting:
		return "resetting"
	case StateGameOver:
		return "gameover"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// startDirectionSteps is the number of discrete horizontal launch directions in [0, 1].
const startDirectionSteps = 50

// start leaves Menu for Playing and launches the ball upward.
func (g *Game) start() {
	if g.state != StateMenu {
		return
	}

	dx := float64(g.rng.Intn(startDirectionSteps+1)) / startDirectionSteps
	g.ball.Direction.X = dx
	g.ball.Direction.Y = -1
	g.ball.Speed = BallSpeed

	g.setState(StatePlaying)
}

// loseLife is called when the ball crosses the floor.
func (g *Game) loseLife() {
	g.lives--

	if g.lives <= 0 {
		g.lives = 0
		g.setState(StateGameOver)
		return
	}
	g.setState(StateResetting)
}

// advanceResetTimer accumulates time while Resetting or GameOver and returns
// to Menu once the reset delay has passed.
func (g *Game) advanceResetTimer(dt float64) {
	if g.state != StateResetting && g.state != StateGameOver {
		return
	}

	g.resetTimer += dt
	if g.resetTimer < ResetDelay {
		return
	}

	if g.state == StateGameOver {
		g.score = 0
		g.lives = StartLives
	}

	g.resetTimer = 0
	g.ball.Position = g.paddle.SpawnPoint()
	g.setState(StateMenu)
}

func (g *Game) setState(next State) {
	g.logger.Debug("state changed",
		"from", g.state,
		"to", next,
		"score", g.score,
		"lives", g.lives,
	)
	g.state = next
}
