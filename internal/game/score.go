package game

// Score tracks the current attempt and the player's best result.
// Current is derived from the wall every tick, never accumulated.
type Score struct {
	Current  int
	Level    int32
	MaxScore int
}

// Recompute derives the current score from the number of broken bricks.
func (s *Score) Recompute(w *BrickWall) {
	s.Current = w.BrokenCount()
}

// Restart records a new best if needed, zeroes the current score and moves
// to the given level.
func (s *Score) Restart(level int32) {
	if s.Current > s.MaxScore {
		s.MaxScore = s.Current
	}
	s.Current = 0
	s.Level = level
}
