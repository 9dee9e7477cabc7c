// Package core provides fundamental types and utilities for the brick breaker.
// It contains no Bubble Tea dependency to keep the simulation pure and testable.
package core

import "github.com/go-gl/mathgl/mgl32"

// Vec2 is a float32 pair used for positions and directions.
type Vec2 = mgl32.Vec2

// Size is the width/height footprint of an entity in world units.
type Size struct {
	Width  float32
	Height float32
}

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y float32 // Top-left corner position
	W, H float32 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAt builds the bounding box of an entity at pos with the given footprint.
func RectAt(pos Vec2, size Size) Rect {
	return Rect{X: pos.X(), Y: pos.Y(), W: size.Width, H: size.Height}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float32 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float32 {
	return r.Y + r.H
}

// Collision names the rectangle edge a circle is touching.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionLeft
	CollisionTop
	CollisionRight
	CollisionBottom
)

// String returns a human-readable name for the collision.
func (c Collision) String() string {
	switch c {
	case CollisionLeft:
		return "Left"
	case CollisionTop:
		return "Top"
	case CollisionRight:
		return "Right"
	case CollisionBottom:
		return "Bottom"
	default:
		return "None"
	}
}

// Horizontal reports whether the collision is against a left or right edge.
func (c Collision) Horizontal() bool {
	return c == CollisionLeft || c == CollisionRight
}

// CircleCollidesRect tests a circle centred at (cx, cy) against an
// axis-aligned rectangle and returns the edge it touches.
//
// The centre is clamped to the rectangle to find the nearest point; each axis
// remembers which edge caused the clamp. When the nearest point is within the
// radius, the axis with the larger offset wins, ties going to the horizontal
// one. A centre lying inside the rectangle clamps on neither axis and yields
// CollisionNone even though the shapes overlap.
func CircleCollidesRect(cx, cy, radius float32, r Rect) Collision {
	horizontal := CollisionNone
	vertical := CollisionNone

	testX, testY := cx, cy

	if cx < r.X {
		testX = r.X
		horizontal = CollisionLeft
	} else if cx > r.Right() {
		testX = r.Right()
		horizontal = CollisionRight
	}

	if cy < r.Y {
		testY = r.Y
		vertical = CollisionTop
	} else if cy > r.Bottom() {
		testY = r.Bottom()
		vertical = CollisionBottom
	}

	dist := Vec2{cx - testX, cy - testY}
	if dist.Len() > radius {
		return CollisionNone
	}

	if mgl32.Abs(dist.X()) >= mgl32.Abs(dist.Y()) {
		return horizontal
	}
	return vertical
}

// ClampF restricts a float32 value to be within [min, max].
func ClampF(val, min, max float32) float32 {
	return mgl32.Clamp(val, min, max)
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
