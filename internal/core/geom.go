// Package core provides fundamental types and utilities shared by the
// simulation and the terminal platform. It has no Bubble Tea dependency so
// game logic stays pure and testable.
package core

import "github.com/go-gl/mathgl/mgl64"

// Rect is an axis-aligned box in field coordinates.
// A valid Rect always has X1 < X2 and Y1 < Y2.
type Rect struct {
	X1, Y1 float64 // Top-left corner
	X2, Y2 float64 // Bottom-right corner
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.X2 - r.X1
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Y2 - r.Y1
}

// Valid reports whether the rectangle is non-degenerate.
func (r Rect) Valid() bool {
	return r.X1 < r.X2 && r.Y1 < r.Y2
}

// Translate returns the rectangle shifted by v.
func (r Rect) Translate(v mgl64.Vec2) Rect {
	return Rect{
		X1: r.X1 + v.X(),
		Y1: r.Y1 + v.Y(),
		X2: r.X2 + v.X(),
		Y2: r.Y2 + v.Y(),
	}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() mgl64.Vec2 {
	return mgl64.Vec2{(r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2}
}

// Overlaps reports whether the projections of a and b intersect on both
// axes. Bounds are inclusive, so rectangles sharing an edge overlap.
func Overlaps(a, b Rect) bool {
	if a.X2 < b.X1 || b.X2 < a.X1 {
		return false
	}
	if a.Y2 < b.Y1 || b.Y2 < a.Y1 {
		return false
	}
	return true
}

// ClampVertical shifts r so that it lies within [minY, maxY] vertically.
// The height of r is never changed.
func ClampVertical(r Rect, minY, maxY float64) Rect {
	if r.Y1 < minY {
		return r.Translate(mgl64.Vec2{0, minY - r.Y1})
	}
	if r.Y2 > maxY {
		return r.Translate(mgl64.Vec2{0, maxY - r.Y2})
	}
	return r
}

// Area is an integer cell rectangle on a Screen.
type Area struct {
	X, Y int // Top-left cell
	W, H int // Width and height in cells
}

// NewArea creates a new cell area with the given position and dimensions.
func NewArea(x, y, w, h int) Area {
	return Area{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (a Area) Right() int {
	return a.X + a.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (a Area) Bottom() int {
	return a.Y + a.H
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
