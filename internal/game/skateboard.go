package game

import "github.com/vovakirdan/brick-breaker/internal/core"

// SkateboardSpeed is the default paddle speed in world units per second.
const SkateboardSpeed float32 = 600

// SkateboardState is the visual state of the paddle.
type SkateboardState int

const (
	SkateboardNormal SkateboardState = iota
	SkateboardRebound
)

func (s SkateboardState) String() string {
	if s == SkateboardRebound {
		return "rebound"
	}
	return "normal"
}

// Skateboard is the player's paddle. Only the x-axis moves.
type Skateboard struct {
	State    SkateboardState
	Pos      core.Vec2
	Velocity core.Vec2

	rebound int // ticks left in the rebound state
}

// NewSkateboard centres a paddle of the given footprint on the bottom edge.
func NewSkateboard(size core.Size, maxDown, maxRight float32) Skateboard {
	return Skateboard{
		State: SkateboardNormal,
		Pos:   core.Vec2{maxRight/2 - size.Width/2, maxDown - size.Height},
	}
}

// Update moves the paddle by movement (in {-1, 0, 1}) and clamps it so the
// current footprint stays inside [0, maxRight].
func (s *Skateboard) Update(seconds, movement, speed, maxRight float32, fp Footprints) {
	s.Velocity = core.Vec2{speed * movement, 0}
	x := s.Pos.X() + s.Velocity.X()*seconds
	s.Pos[0] = s.clampX(x, maxRight, fp)
}

func (s *Skateboard) clampX(x, maxRight float32, fp Footprints) float32 {
	width := fp.Skateboard(s.State).Width
	return core.ClampF(x, 0, max(maxRight-width, 0))
}

// Rebound switches to the rebound state for the given number of ticks.
func (s *Skateboard) Rebound(ticks int) {
	if ticks <= 0 {
		return
	}
	s.State = SkateboardRebound
	s.rebound = ticks
}

// Tick ages the rebound state and returns to normal when it runs out.
// The position is re-clamped because the footprint may have grown.
func (s *Skateboard) Tick(maxRight float32, fp Footprints) {
	if s.State != SkateboardRebound {
		return
	}
	s.rebound--
	if s.rebound <= 0 {
		s.State = SkateboardNormal
		s.rebound = 0
		s.Pos[0] = s.clampX(s.Pos.X(), maxRight, fp)
	}
}

// Rect returns the paddle's bounding box for its current state.
func (s *Skateboard) Rect(fp Footprints) core.Rect {
	return core.RectAt(s.Pos, fp.Skateboard(s.State))
}
