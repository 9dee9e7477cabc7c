package game

import "math"

// Snapshot contains the complete simulation state in primitive types,
// for determinism checks and debugging.
type Snapshot struct {
	Tick     uint64
	Workflow int
	Level    int32
	Score    int
	MaxScore int

	BallX, BallY       float32
	BallDirX, BallDirY float32
	BallState          int

	SkateboardX, SkateboardY float32
	SkateboardState          int

	// One entry per brick in wall order: the damage state
	BrickData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	bricks := g.state.Wall.Bricks()
	brickData := make([]int, len(bricks))
	for i, b := range bricks {
		brickData[i] = int(b.State)
	}

	ball := g.state.Ball
	board := g.state.Skateboard

	return Snapshot{
		Tick:     g.tick,
		Workflow: int(g.flow.State()),
		Level:    g.score.Level,
		Score:    g.score.Current,
		MaxScore: g.score.MaxScore,

		BallX:     ball.Pos.X(),
		BallY:     ball.Pos.Y(),
		BallDirX:  ball.Dir.X(),
		BallDirY:  ball.Dir.Y(),
		BallState: int(ball.State),

		SkateboardX:     board.Pos.X(),
		SkateboardY:     board.Pos.Y(),
		SkateboardState: int(board.State),

		BrickData: brickData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Workflow)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MaxScore)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallState)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SkateboardState) //#nosec G115 -- hash computation

	for _, f := range []float32{
		snap.BallX, snap.BallY, snap.BallDirX, snap.BallDirY,
		snap.SkateboardX, snap.SkateboardY,
	} {
		h = h*31 + uint64(math.Float32bits(f))
	}

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
