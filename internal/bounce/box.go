// Package bounce implements the bouncing box simulation: a single rectangle
// moving at a fixed speed inside a viewport, reflecting off its edges.
//
// The package has no terminal or timing dependencies. Frames are driven by an
// injected frame.Scheduler and results are written to an injected Element.
package bounce

import (
	"fmt"
	"math"

	"github.com/vovakirdan/bouncebox/internal/core"
)

// Default simulation constants, in pixels.
const (
	DefaultSpeed   = 3.5 // Pixels per frame on each axis
	DefaultMinSize = 35  // Inclusive
	DefaultMaxSize = 70  // Exclusive
)

// Edge reports which boundary a reflection hit.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeMin       // Left or top
	EdgeMax       // Right or bottom
)

// String returns a human-readable name for the edge.
func (e Edge) String() string {
	switch e {
	case EdgeMin:
		return "min"
	case EdgeMax:
		return "max"
	default:
		return "none"
	}
}

// Box is the moving rectangle: its position, size and velocity treated as
// one unit. Size and speed never change after construction.
type Box struct {
	position core.Measurements
	size     core.Measurements
	velocity core.Measurements
	speed    float64
}

// NewBox places a width x height box at a random position inside the
// viewport, moving diagonally at speed in a random direction.
//
// A size larger than the viewport is clamped to it on that axis. A viewport
// with a non-positive dimension is rejected.
func NewBox(rng Rand, width, height int, viewport core.Measurements, speed float64) (Box, error) {
	if viewport.Horizontal <= 0 || viewport.Vertical <= 0 {
		return Box{}, fmt.Errorf("bounce: viewport %gx%g: %w", viewport.Horizontal, viewport.Vertical, ErrViewportTooSmall)
	}
	speed = math.Abs(speed)

	size := core.M(
		math.Min(float64(width), math.Floor(viewport.Horizontal)),
		math.Min(float64(height), math.Floor(viewport.Vertical)),
	)

	return Box{
		position: core.M(
			float64(RandomInteger(rng, 0, int(viewport.Horizontal-size.Horizontal))),
			float64(RandomInteger(rng, 0, int(viewport.Vertical-size.Vertical))),
		),
		size: size,
		velocity: core.M(
			randomSign(rng, speed),
			randomSign(rng, speed),
		),
		speed: speed,
	}, nil
}

// Position returns where the box is, relative to the top-left corner.
func (b Box) Position() core.Measurements { return b.position }

// Size returns the box dimensions.
func (b Box) Size() core.Measurements { return b.size }

// Velocity returns how far the box moves each frame.
func (b Box) Velocity() core.Measurements { return b.velocity }

// Speed returns the fixed velocity magnitude.
func (b Box) Speed() float64 { return b.speed }

// Advance moves the box by its velocity.
func (b *Box) Advance() {
	b.position = b.position.Add(b.velocity)
}

// Reflect keeps the box inside [0, bound] along axis. On contact the
// position is clamped to the edge and the velocity on that axis points back
// inside. Only the first matching edge is handled per call.
func (b *Box) Reflect(axis core.Axis, bound float64) Edge {
	pos := b.position.Get(axis)
	size := b.size.Get(axis)

	if pos < 0 {
		b.position.Set(axis, 0)
		b.velocity.Set(axis, b.speed)
		return EdgeMin
	}
	if pos+size > bound {
		b.position.Set(axis, bound-size)
		b.velocity.Set(axis, -b.speed)
		return EdgeMax
	}
	return EdgeNone
}

// Contacts records the edges hit during one frame, per axis.
type Contacts struct {
	Horizontal Edge
	Vertical   Edge
}

// Any reports whether the box touched any edge.
func (c Contacts) Any() bool {
	return c.Horizontal != EdgeNone || c.Vertical != EdgeNone
}

// Step is the pure frame function: advance, then reflect horizontally and
// vertically against the viewport. The input box is not modified.
func Step(b Box, viewport core.Measurements) (Box, Contacts) {
	b.Advance()
	var c Contacts
	c.Horizontal = b.Reflect(core.Horizontal, viewport.Horizontal)
	c.Vertical = b.Reflect(core.Vertical, viewport.Vertical)
	return b, c
}
