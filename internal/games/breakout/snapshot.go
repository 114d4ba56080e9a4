package breakout

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Snapshot is a read-only copy of the full simulation state, used for
// determinism checks and headless run reports.
type Snapshot struct {
	Tick       uint64
	State      string
	Score      int
	Best       int
	Lives      int
	ResetTimer float64

	PaddleX float64
	BallX   float64
	BallY   float64
	BallDX  float64
	BallDY  float64
	Speed   float64

	// Active flags in row-major order.
	Bricks          [BrickCount]bool
	BricksRemaining int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       g.tickCount,
		State:      g.state.String(),
		Score:      g.score,
		Best:       g.best,
		Lives:      g.lives,
		ResetTimer: g.resetTimer,

		PaddleX: g.paddle.Position.X,
		BallX:   g.ball.Position.X,
		BallY:   g.ball.Position.Y,
		BallDX:  g.ball.Direction.X,
		BallDY:  g.ball.Direction.Y,
		Speed:   g.ball.Speed,

		BricksRemaining: g.bricks.CountActive(),
	}
	for i := range g.bricks {
		snap.Bricks[i] = g.bricks[i].Active
	}
	return snap
}

// Hash returns an xxhash fingerprint of the snapshot. Two runs with the same
// seed and the same input and delta sequence produce the same hash.
func (snap *Snapshot) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte

	writeU64 := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		//nolint:errcheck // xxhash.Digest.Write never fails
		d.Write(buf[:])
	}
	writeF64 := func(v float64) {
		writeU64(math.Float64bits(v))
	}

	writeU64(snap.Tick)
	//nolint:errcheck // xxhash.Digest.WriteString never fails
	d.WriteString(snap.State)
	writeU64(uint64(snap.Score)) //#nosec G115 -- hash computation
	writeU64(uint64(snap.Best))  //#nosec G115 -- hash computation
	writeU64(uint64(snap.Lives)) //#nosec G115 -- hash computation
	writeF64(snap.ResetTimer)
	writeF64(snap.PaddleX)
	writeF64(snap.BallX)
	writeF64(snap.BallY)
	writeF64(snap.BallDX)
	writeF64(snap.BallDY)
	writeF64(snap.Speed)

	var bits [BrickCount]byte
	for i, active := range snap.Bricks {
		if active {
			bits[i] = 1
		}
	}
	//nolint:errcheck // xxhash.Digest.Write never fails
	d.Write(bits[:])

	return d.Sum64()
}
