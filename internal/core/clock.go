package core

import "time"

// FixedStep converts real elapsed time into a whole number of fixed-size
// simulation ticks, carrying the remainder over to the next frame.
// It keeps simulation time independent of how often frames are rendered.
type FixedStep struct {
	step        time.Duration
	maxCatchUp  int
	accumulated time.Duration
}

// NewFixedStep creates an accumulator for the given tick rate.
// maxCatchUp bounds how many ticks a single Advance may return; 0 means no bound.
func NewFixedStep(tickRate, maxCatchUp int) *FixedStep {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FixedStep{
		step:       time.Second / time.Duration(tickRate),
		maxCatchUp: maxCatchUp,
	}
}

// Step returns the duration of a single tick.
func (f *FixedStep) Step() time.Duration {
	return f.step
}

// Advance adds elapsed real time and returns how many ticks should run now.
// When the catch-up bound is hit, the excess backlog is dropped so a long
// stall does not turn into a burst of simulation.
func (f *FixedStep) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		f.accumulated += elapsed
	}

	ticks := int(f.accumulated / f.step)
	f.accumulated -= time.Duration(ticks) * f.step

	if f.maxCatchUp > 0 && ticks > f.maxCatchUp {
		ticks = f.maxCatchUp
	}
	return ticks
}

// Reset discards any accumulated time.
func (f *FixedStep) Reset() {
	f.accumulated = 0
}
