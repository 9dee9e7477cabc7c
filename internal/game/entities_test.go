package game

import (
	"errors"
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/vovakirdan/brick-breaker/internal/core"
)

func TestNewBall(t *testing.T) {
	b := NewBall(200, 100, 60, 10, 10)

	if b.Pos != (core.Vec2{95, 30}) {
		t.Errorf("NewBall().Pos = %v, expected (95, 30)", b.Pos)
	}
	if b.Dir != (core.Vec2{1, 1}) {
		t.Errorf("NewBall().Dir = %v, expected (1, 1)", b.Dir)
	}
	if b.Radius != 5 {
		t.Errorf("NewBall().Radius = %v, expected 5", b.Radius)
	}
	if b.State != BallFlying {
		t.Errorf("NewBall().State = %v, expected flying", b.State)
	}
}

func TestBallNextPositionFlipsWithoutClamping(t *testing.T) {
	screen := core.Size{Width: 200, Height: 100}
	size := core.Size{Width: 10, Height: 10}

	b := Ball{Pos: core.Vec2{195, 50}, Dir: core.Vec2{1, 1}, Radius: 5}
	next := b.NextPosition(0.01, screen, size, BallSpeed)

	if next != (core.Vec2{198.5, 53.5}) {
		t.Errorf("NextPosition() = %v, expected (198.5, 53.5)", next)
	}
	if b.Dir != (core.Vec2{-1, 1}) {
		t.Errorf("Dir = %v, expected x flipped at the right edge", b.Dir)
	}

	b = Ball{Pos: core.Vec2{50, 1}, Dir: core.Vec2{1, -1}, Radius: 5}
	next = b.NextPosition(0.01, screen, size, BallSpeed)
	if next.Y() >= 0 {
		t.Errorf("NextPosition().Y = %v, expected overshoot above 0", next.Y())
	}
	if b.Dir != (core.Vec2{1, 1}) {
		t.Errorf("Dir = %v, expected y flipped at the top edge", b.Dir)
	}
}

func TestBallBounce(t *testing.T) {
	tests := []struct {
		collision core.Collision
		expected  core.Vec2
	}{
		{core.CollisionNone, core.Vec2{1, 1}},
		{core.CollisionLeft, core.Vec2{-1, 1}},
		{core.CollisionRight, core.Vec2{-1, 1}},
		{core.CollisionTop, core.Vec2{1, -1}},
		{core.CollisionBottom, core.Vec2{1, -1}},
	}

	for _, tt := range tests {
		b := Ball{Dir: core.Vec2{1, 1}}
		b.Bounce(tt.collision)
		if b.Dir != tt.expected {
			t.Errorf("Bounce(%s) Dir = %v, expected %v", tt.collision, b.Dir, tt.expected)
		}
	}
}

func TestBallCollidesRectUsesCenter(t *testing.T) {
	b := Ball{Pos: core.Vec2{0, 0}, Radius: 5}

	if c := b.CollidesRect(core.NewRect(10, 0, 10, 10)); c != core.CollisionLeft {
		t.Errorf("CollidesRect(touching) = %s, expected Left", c)
	}
	if c := b.CollidesRect(core.NewRect(11, 0, 10, 10)); c != core.CollisionNone {
		t.Errorf("CollidesRect(apart) = %s, expected None", c)
	}
}

func TestNewBrickWall(t *testing.T) {
	w := NewBrickWall(core.Size{Width: 100, Height: 400}, core.Size{Width: 40, Height: 20})
	if w.Len() != 6 {
		t.Fatalf("NewBrickWall(100x400, 40x20).Len() = %d, expected 6", w.Len())
	}

	for j, b := range w.Bricks() {
		expected := core.Vec2{30, 35 + 40*float32(j)}
		if b.Pos != expected {
			t.Errorf("brick %d Pos = %v, expected %v", j, b.Pos, expected)
		}
		if b.State != BrickSurvived {
			t.Errorf("brick %d State = %s, expected survived", j, b.State)
		}
	}
}

func TestNewBrickWallDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		screen core.Size
		brick  core.Size
	}{
		{"zero screen", core.Size{}, core.Size{Width: 15, Height: 10}},
		{"too narrow", core.Size{Width: 40, Height: 400}, core.Size{Width: 40, Height: 20}},
		{"too short", core.Size{Width: 400, Height: 30}, core.Size{Width: 40, Height: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewBrickWall(tt.screen, tt.brick)
			if w.Len() != 0 {
				t.Errorf("Len() = %d, expected 0", w.Len())
			}
			if !w.AllBroken() {
				t.Error("AllBroken() on an empty wall should be true")
			}
		})
	}
}

func TestBrickWallColumnMajor(t *testing.T) {
	w := NewBrickWall(core.Size{Width: 300, Height: 400}, core.Size{Width: 40, Height: 20})

	g := w.Grid()
	if g.Columns != 4 || g.Rows != 6 {
		t.Fatalf("Grid() = %dx%d, expected 4x6", g.Columns, g.Rows)
	}
	if g.Offset != 15 {
		t.Errorf("Grid().Offset = %v, expected 15", g.Offset)
	}

	bricks := w.Bricks()
	if bricks[1].Pos != (core.Vec2{40, 75}) {
		t.Errorf("bricks[1].Pos = %v, expected second row of column 0", bricks[1].Pos)
	}
	if bricks[6].Pos != (core.Vec2{100, 35}) {
		t.Errorf("bricks[6].Pos = %v, expected first row of column 1", bricks[6].Pos)
	}
}

func TestBrickWallDeterministic(t *testing.T) {
	screen := core.Size{Width: 800, Height: 600}
	brick := core.Size{Width: 64, Height: 24}

	a := NewBrickWall(screen, brick)
	b := NewBrickWall(screen, brick)

	if !reflect.DeepEqual(a.Bricks(), b.Bricks()) {
		t.Error("two walls built from identical inputs differ")
	}
}

func TestBrickBrokeAndReset(t *testing.T) {
	b := Brick{}

	expected := []BrickState{BrickTouched, BrickBroken, BrickBroken, BrickBroken}
	for i, want := range expected {
		b.Broke()
		if b.State != want {
			t.Errorf("Broke() #%d State = %s, expected %s", i+1, b.State, want)
		}
	}

	for _, s := range []BrickState{BrickSurvived, BrickTouched, BrickBroken} {
		b := Brick{State: s}
		b.Reset()
		if b.State != BrickSurvived {
			t.Errorf("Reset() from %s = %s, expected survived", s, b.State)
		}
	}
}

func TestBrickWallHitAndCounts(t *testing.T) {
	w := NewBrickWall(core.Size{Width: 100, Height: 400}, core.Size{Width: 40, Height: 20})

	for i := range w.Len() {
		if err := w.Hit(i); err != nil {
			t.Fatalf("Hit(%d) error = %v", i, err)
		}
	}
	if w.BrokenCount() != 0 {
		t.Errorf("BrokenCount() = %d after one hit each, expected 0", w.BrokenCount())
	}

	for i := range w.Len() {
		_ = w.Hit(i)
	}
	if w.BrokenCount() != 6 || !w.AllBroken() {
		t.Errorf("BrokenCount() = %d, AllBroken() = %v, expected 6, true", w.BrokenCount(), w.AllBroken())
	}

	w.ResetAll()
	if w.BrokenCount() != 0 {
		t.Errorf("BrokenCount() after ResetAll = %d, expected 0", w.BrokenCount())
	}

	if err := w.Hit(6); !errors.Is(err, ErrCollisionResolution) {
		t.Errorf("Hit(out of range) error = %v, expected ErrCollisionResolution", err)
	}
}

func TestNewSkateboard(t *testing.T) {
	s := NewSkateboard(core.Size{Width: 20, Height: 30}, 100, 400)

	if s.Pos != (core.Vec2{190, 70}) {
		t.Errorf("NewSkateboard().Pos = %v, expected (190, 70)", s.Pos)
	}
	if s.State != SkateboardNormal {
		t.Errorf("NewSkateboard().State = %s, expected normal", s.State)
	}
}

func TestSkateboardUpdateClamps(t *testing.T) {
	fp := DefaultSpriteSizes()
	s := NewSkateboard(fp.SkateboardNormal, 440, 800)

	for range 200 {
		s.Update(1.0/60, 1, SkateboardSpeed, 800, fp)
	}
	if s.Pos.X() != 700 {
		t.Errorf("Pos.X = %v after moving right, expected 700", s.Pos.X())
	}

	for range 200 {
		s.Update(1.0/60, -1, SkateboardSpeed, 800, fp)
	}
	if s.Pos.X() != 0 {
		t.Errorf("Pos.X = %v after moving left, expected 0", s.Pos.X())
	}
}

func TestSkateboardReboundExpires(t *testing.T) {
	fp := DefaultSpriteSizes()
	s := NewSkateboard(fp.SkateboardNormal, 440, 800)

	// Pushed against the right edge with the narrow footprint
	s.Rebound(2)
	for range 100 {
		s.Update(1.0/60, 1, SkateboardSpeed, 800, fp)
	}
	if s.Pos.X() != 720 {
		t.Fatalf("Pos.X = %v in rebound, expected 720", s.Pos.X())
	}

	s.Tick(800, fp)
	if s.State != SkateboardRebound {
		t.Errorf("State = %s after one tick, expected rebound", s.State)
	}
	s.Tick(800, fp)
	if s.State != SkateboardNormal {
		t.Errorf("State = %s after rebound ran out, expected normal", s.State)
	}
	if s.Pos.X() != 700 {
		t.Errorf("Pos.X = %v after growing back, expected re-clamped 700", s.Pos.X())
	}
}

func TestSkateboardStaysInBounds(t *testing.T) {
	fp := DefaultSpriteSizes()
	const maxRight = 640
	s := NewSkateboard(fp.SkateboardNormal, 480, maxRight)
	rng := rand.New(rand.NewPCG(7, 11))

	for i := range 5000 {
		if rng.IntN(20) == 0 {
			s.Rebound(rng.IntN(15))
		}
		s.Tick(maxRight, fp)
		s.Update(rng.Float32()/10, float32(rng.IntN(3)-1), SkateboardSpeed, maxRight, fp)

		width := fp.Skateboard(s.State).Width
		if x := s.Pos.X(); x < 0 || x > maxRight-width {
			t.Fatalf("step %d: Pos.X = %v outside [0, %v]", i, x, maxRight-width)
		}
	}
}

func TestSpriteSizesBrokenBrickFootprint(t *testing.T) {
	fp := DefaultSpriteSizes()
	if fp.Brick(BrickBroken) != fp.BrickTouched {
		t.Errorf("Brick(broken) = %v, expected touched footprint", fp.Brick(BrickBroken))
	}
}

func TestScoreRestart(t *testing.T) {
	s := Score{Current: 7, Level: 2, MaxScore: 5}
	s.Restart(3)
	if s != (Score{Current: 0, Level: 3, MaxScore: 7}) {
		t.Errorf("Restart(3) = %+v, expected new max 7 at level 3", s)
	}

	s = Score{Current: 2, Level: 3, MaxScore: 7}
	s.Restart(3)
	if s.MaxScore != 7 {
		t.Errorf("Restart() MaxScore = %d, expected 7 kept", s.MaxScore)
	}
}
