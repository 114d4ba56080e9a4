// Package core provides fundamental types and utilities for the breakout platform.
// It contains no Bubble Tea dependencies to keep game logic pure and testable.
package core

import "math"

// Vec2 is a 2D point or direction in world units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rect is an axis-aligned rectangle in world units.
// Zero width or height is valid and describes a line segment.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// CircleIntersectsRect reports whether a circle overlaps an axis-aligned rectangle.
// The closest point of the rectangle to the center is compared against the radius,
// so degenerate rectangles (zero height or width) are handled like any other.
// Touching counts as overlap.
func CircleIntersectsRect(center Vec2, radius float64, r Rect) bool {
	nearestX := ClampF(center.X, r.X, r.Right())
	nearestY := ClampF(center.Y, r.Y, r.Bottom())

	dx := center.X - nearestX
	dy := center.Y - nearestY
	return dx*dx+dy*dy <= radius*radius
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
