package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The host fills it from the terminal size and command line flags.
type RuntimeConfig struct {
	ScreenW  int  // Screen width in characters
	ScreenH  int  // Screen height in characters
	TickRate int  // Simulation ticks per second (default 60)
	Debug    bool // Suppress the fall-off loss and outline bounding boxes
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickSeconds returns the duration of one simulation tick in seconds.
func (c RuntimeConfig) TickSeconds() float32 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float32(c.TickRate)
}

// Progress is the persisted record a player carries between attempts:
// the level reached and the best score ever achieved.
type Progress struct {
	Level    int32
	MaxScore int
}

// InitialProgress is the record written for a fresh player.
func InitialProgress() Progress {
	return Progress{Level: 1, MaxScore: 0}
}
