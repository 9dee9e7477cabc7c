package game

import "github.com/vovakirdan/brick-breaker/internal/core"

// Footprints reports the visual size of an entity in its current state.
// The simulation never looks at sprites; it only needs these sizes to build
// bounding boxes.
type Footprints interface {
	Ball(state BallState) core.Size
	Brick(state BrickState) core.Size
	Skateboard(state SkateboardState) core.Size
}

// SpriteSizes is a fixed footprint table, usually loaded from configuration.
type SpriteSizes struct {
	BallFlying        core.Size
	BrickSurvived     core.Size
	BrickTouched      core.Size
	SkateboardNormal  core.Size
	SkateboardRebound core.Size
}

// DefaultSpriteSizes matches a terminal with 10x20 world units per cell.
// The ball radius must stay above one tick of ball travel (350/60) or the
// ball can tunnel into the paddle.
func DefaultSpriteSizes() SpriteSizes {
	return SpriteSizes{
		BallFlying:        core.Size{Width: 20, Height: 20},
		BrickSurvived:     core.Size{Width: 60, Height: 20},
		BrickTouched:      core.Size{Width: 60, Height: 20},
		SkateboardNormal:  core.Size{Width: 100, Height: 20},
		SkateboardRebound: core.Size{Width: 80, Height: 20},
	}
}

// Ball returns the flying footprint for every state; a crashing ball keeps
// the size it had in flight.
func (s SpriteSizes) Ball(BallState) core.Size {
	return s.BallFlying
}

// Brick returns the footprint for a brick state. Broken bricks report the
// touched footprint so their bounding box stays defined.
func (s SpriteSizes) Brick(state BrickState) core.Size {
	if state == BrickSurvived {
		return s.BrickSurvived
	}
	return s.BrickTouched
}

func (s SpriteSizes) Skateboard(state SkateboardState) core.Size {
	if state == SkateboardRebound {
		return s.SkateboardRebound
	}
	return s.SkateboardNormal
}
