package breakout

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "breakout"

// Game is the simulation context. It owns every entity and counter; the frame
// driver holds one Game and calls Tick once per frame.
type Game struct {
	paddle Paddle
	ball   Ball
	bricks Grid

	state      State
	score      int
	best       int
	lives      int
	resetTimer float64

	tickCount uint64
	lastDelta float64

	rng    RandSource
	logger *log.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithRand injects the random source used to pick launch directions.
func WithRand(r RandSource) Option {
	return func(g *Game) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithSeed uses a SimpleRNG seeded with seed.
func WithSeed(seed int64) Option {
	return WithRand(NewSimpleRNG(seed))
}

// WithLogger sets the logger used for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.SetLogger(l)
	}
}

// New creates a game in the Menu state with a full brick grid.
func New(opts ...Option) *Game {
	g := &Game{
		paddle: newPaddle(),
		bricks: NewGrid(),
		state:  StateMenu,
		lives:  StartLives,
		rng:    NewSimpleRNG(1),
		logger: log.New(io.Discard),
	}
	g.ball = Ball{
		Position:  g.paddle.SpawnPoint(),
		Direction: core.Vec2{X: 1, Y: -1},
		Speed:     0,
		Radius:    BallRadius,
	}

	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SetLogger replaces the logger. A nil logger discards output.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// Tick advances the simulation by one frame of dt seconds.
// Input is applied first so the paddle reflects this frame's input before the
// ball is tested against it. A negative dt is treated as zero.
func (g *Game) Tick(in Input, dt float64) {
	if dt < 0 {
		dt = 0
	}
	g.tickCount++
	g.lastDelta = dt

	g.applyInput(in, dt)
	g.advanceResetTimer(dt)

	if g.state == StatePlaying {
		g.stepPhysics(dt)
	}
}

// Paddle returns a copy of the paddle.
func (g *Game) Paddle() Paddle { return g.paddle }

// Ball returns a copy of the ball.
func (g *Game) Ball() Ball { return g.ball }

// Brick returns the brick at index i in row-major order.
// Panics if i is outside [0, BrickCount).
func (g *Game) Brick(i int) Brick {
	mustIndex(i)
	return g.bricks[i]
}

// Bricks returns a copy of the whole grid.
func (g *Game) Bricks() Grid { return g.bricks }

// State returns the active phase.
func (g *Game) State() State { return g.state }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Best returns the best score reached during this process.
func (g *Game) Best() int { return g.best }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// ResetTimer returns the time accumulated in the current Resetting or GameOver phase.
func (g *Game) ResetTimer() float64 { return g.resetTimer }

// LastDelta returns the elapsed time of the most recent tick in seconds.
func (g *Game) LastDelta() float64 { return g.lastDelta }

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Breakout" }

// Step adapts Tick to the platform's action-based input.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	g.Tick(InputFromFrame(in), dt)
	return core.StepResult{State: g.Status()}
}

// Status summarizes the game for the platform.
func (g *Game) Status() core.GameState {
	return core.GameState{
		Phase:    g.state.String(),
		Score:    g.score,
		Best:     g.best,
		Lives:    g.lives,
		GameOver: g.state == StateGameOver,
	}
}

// Register the game with the registry
func init() {
	registry.Register(ID, func(cfg core.RuntimeConfig) registry.Game {
		return New(WithSeed(cfg.Seed))
	})
}
