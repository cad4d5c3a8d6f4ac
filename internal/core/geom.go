// Package core provides fundamental types and utilities for bouncebox.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

import "math"

// Axis selects one of the two screen directions.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Axes lists both axes in the order they are resolved each tick.
var Axes = [...]Axis{Horizontal, Vertical}

// String returns a human-readable name for the axis.
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Measurements holds one horizontal and one vertical value.
// It is used for positions, sizes and velocities alike, in pixels.
type Measurements struct {
	Horizontal float64
	Vertical   float64
}

// M is shorthand for building Measurements.
func M(horizontal, vertical float64) Measurements {
	return Measurements{Horizontal: horizontal, Vertical: vertical}
}

// Get returns the value along the given axis.
func (m Measurements) Get(a Axis) float64 {
	if a == Vertical {
		return m.Vertical
	}
	return m.Horizontal
}

// Set stores v along the given axis.
func (m *Measurements) Set(a Axis, v float64) {
	if a == Vertical {
		m.Vertical = v
		return
	}
	m.Horizontal = v
}

// Add returns the component-wise sum.
func (m Measurements) Add(o Measurements) Measurements {
	return Measurements{Horizontal: m.Horizontal + o.Horizontal, Vertical: m.Vertical + o.Vertical}
}

// Rect represents an axis-aligned rectangle in screen cells.
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

// CellRect converts a pixel-space box into the cells it covers, given the
// size of one cell in pixels. Partially covered cells count as covered.
func CellRect(pos, size Measurements, cellW, cellH int) Rect {
	if cellW <= 0 || cellH <= 0 {
		return Rect{}
	}
	x := int(math.Floor(pos.Horizontal / float64(cellW)))
	y := int(math.Floor(pos.Vertical / float64(cellH)))
	w := int(math.Ceil(size.Horizontal / float64(cellW)))
	h := int(math.Ceil(size.Vertical / float64(cellH)))
	return NewRect(x, y, w, h)
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
