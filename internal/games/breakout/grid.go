package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Brick grid layout. The grid is fixed for the lifetime of a Game.
const (
	BrickRows  = 10
	BrickCols  = 20
	BrickCount = BrickRows * BrickCols

	BrickSpacing = 2.0
	BrickWidth   = float64(int(ScreenWidth-20)/BrickCols) - BrickSpacing
	BrickHeight  = 15.0
	BrickOriginX = 10.0
	BrickOriginY = 70.0
)

// Brick is a single destructible obstacle. Position is its top-left corner.
type Brick struct {
	Position core.Vec2
	Active   bool
}

// Rect returns the brick's full rectangle.
func (b Brick) Rect() core.Rect {
	return core.NewRect(b.Position.X, b.Position.Y, BrickWidth, BrickHeight)
}

// Grid holds every brick in row-major order: index = row*BrickCols + col.
type Grid [BrickCount]Brick

// NewGrid lays out all bricks with deterministic spacing, all active.
func NewGrid() Grid {
	var g Grid
	for row := range BrickRows {
		for col := range BrickCols {
			g[row*BrickCols+col] = Brick{
				Position: core.Vec2{
					X: float64(col)*(BrickWidth+BrickSpacing) + BrickOriginX,
					Y: float64(row)*(BrickHeight+BrickSpacing) + BrickOriginY,
				},
				Active: true,
			}
		}
	}
	return g
}

// BrickIndex converts a row and column into a grid index.
// Panics if either is out of range.
func BrickIndex(row, col int) int {
	if row < 0 || row >= BrickRows || col < 0 || col >= BrickCols {
		panic(fmt.Sprintf("breakout: brick (%d, %d) out of range", row, col))
	}
	return row*BrickCols + col
}

// RowCol converts a grid index back into a row and column.
func RowCol(i int) (row, col int) {
	mustIndex(i)
	return i / BrickCols, i % BrickCols
}

// CountActive returns the number of bricks not yet destroyed.
func (g Grid) CountActive() int {
	count := 0
	for i := range g {
		if g[i].Active {
			count++
		}
	}
	return count
}

func mustIndex(i int) {
	if i < 0 || i >= BrickCount {
		panic(fmt.Sprintf("breakout: brick index %d out of range", i))
	}
}
