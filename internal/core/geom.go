// Package core provides fundamental types and utilities for the asteroids
// game. It contains no external dependencies (especially no Bubble Tea) to
// keep game logic pure and testable.
package core

import "math"

// Vec2 is a 2D point or direction in world coordinates.
// It is an immutable value type; all arithmetic returns new values.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns the component-wise difference of two vectors.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the Euclidean length of the vector.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the Euclidean distance between two points.
func Distance(p, q Vec2) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// HeadingVec converts a heading in degrees to a unit direction vector.
// Heading 0 points up (negative Y, screen Y grows downward) and increases
// counter-clockwise, so heading 90 points left.
func HeadingVec(deg float64) Vec2 {
	rad := deg * math.Pi / 180
	return Vec2{math.Sin(-rad), -math.Cos(rad)}
}

// NormalizeHeading wraps an angle in degrees into [0, 360).
func NormalizeHeading(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Rect represents an axis-aligned box in screen cells, used for HUD and
// overlay drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
