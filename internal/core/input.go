package core

// InputState holds the held-key movement axis read at the start of every tick.
//
// Terminals report key presses but never key releases, so a press keeps the
// axis held for holdTicks ticks and then releases it on its own. Repeated
// presses from key auto-repeat refresh the hold. A holdTicks of zero keeps
// the axis held until Release is called, which suits hosts with real key-up
// events.
type InputState struct {
	movement  float32
	holdTicks int
	remaining int
}

// NewInputState creates an input state that auto-releases after holdTicks.
func NewInputState(holdTicks int) *InputState {
	if holdTicks < 0 {
		holdTicks = 0
	}
	return &InputState{holdTicks: holdTicks}
}

// Press sets the movement axis. Any negative dir means left, positive right,
// zero releases. Last write wins.
func (s *InputState) Press(dir float32) {
	switch {
	case dir < 0:
		s.movement = -1
	case dir > 0:
		s.movement = 1
	default:
		s.Release()
		return
	}
	s.remaining = s.holdTicks
}

// Release drops the movement axis back to zero.
func (s *InputState) Release() {
	s.movement = 0
	s.remaining = 0
}

// Tick ages the current press by one simulation tick.
func (s *InputState) Tick() {
	if s.holdTicks == 0 || s.movement == 0 {
		return
	}
	s.remaining--
	if s.remaining <= 0 {
		s.Release()
	}
}

// Movement returns the current axis value in {-1, 0, 1}.
func (s *InputState) Movement() float32 {
	return s.movement
}
