// Package core provides the value types shared by the room parser, the
// simulation engine and the map renderer. It knows nothing about input
// formats or terminals.
package core

import "fmt"

// Coord is an immutable pair of integers. It is used for room bounds,
// absolute positions and direction deltas. Y increases to the north.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the sum of two coordinates.
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// Step returns a new Coord one cell away in the given direction.
// The result is not clamped.
func (c Coord) Step(d Direction) Coord {
	return c.Add(d.Delta())
}

// Within reports whether c lies in [0, bounds.X) x [0, bounds.Y).
func (c Coord) Within(bounds Coord) bool {
	return c.X >= 0 && c.X < bounds.X && c.Y >= 0 && c.Y < bounds.Y
}

// ClampTo restricts each axis of c independently to [0, bound-1].
// Bounds must be positive on both axes.
func (c Coord) ClampTo(bounds Coord) Coord {
	return Coord{
		X: Clamp(c.X, 0, bounds.X-1),
		Y: Clamp(c.Y, 0, bounds.Y-1),
	}
}

// Rect represents an axis-aligned rectangle on a Screen.
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
