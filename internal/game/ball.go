package game

import "github.com/vovakirdan/brick-breaker/internal/core"

// BallSpeed is the default ball speed in world units per second.
const BallSpeed float32 = 350

// BallState is the visual state of the ball.
type BallState int

const (
	BallFlying BallState = iota
	BallCrashing
)

func (s BallState) String() string {
	if s == BallCrashing {
		return "crashing"
	}
	return "flying"
}

// Ball is the single ball of an attempt.
// Dir components are only ever sign-flipped; speed is applied separately.
type Ball struct {
	State  BallState
	Pos    core.Vec2 // top-left corner of the footprint
	Dir    core.Vec2
	Radius float32
}

// NewBall places a ball horizontally centred on a screen of the given size,
// resting on top of a skateboard of height skateboardH, heading down-right.
func NewBall(screenW, screenH, skateboardH, ballW, ballH float32) Ball {
	return Ball{
		State:  BallFlying,
		Pos:    core.Vec2{screenW/2 - ballW/2, screenH - skateboardH - ballH},
		Dir:    core.Vec2{1, 1},
		Radius: ballW / 2,
	}
}

// Center returns the centre of the collision circle.
func (b *Ball) Center() core.Vec2 {
	return b.Pos.Add(core.Vec2{b.Radius, b.Radius})
}

// NextPosition integrates the ball over seconds and returns the candidate
// position. Dir is flipped on any axis where the candidate footprint leaves
// the screen; the position itself is not clamped, so the ball may overshoot
// an edge by up to one tick of movement.
func (b *Ball) NextPosition(seconds float32, screen, size core.Size, speed float32) core.Vec2 {
	next := b.Pos.Add(b.Dir.Mul(speed * seconds))

	if next.X()+size.Width > screen.Width || next.X() < 0 {
		b.Dir[0] = -b.Dir[0]
	}
	if next.Y()+size.Height > screen.Height || next.Y() < 0 {
		b.Dir[1] = -b.Dir[1]
	}
	return next
}

// Bounce reflects the direction for a collision against the given edge.
func (b *Ball) Bounce(c core.Collision) {
	switch c {
	case core.CollisionLeft, core.CollisionRight:
		b.Dir[0] = -b.Dir[0]
	case core.CollisionTop, core.CollisionBottom:
		b.Dir[1] = -b.Dir[1]
	}
}

// CollidesRect tests the ball's circle against an obstacle's bounding box.
func (b *Ball) CollidesRect(r core.Rect) core.Collision {
	c := b.Center()
	return core.CircleCollidesRect(c.X(), c.Y(), b.Radius, r)
}
