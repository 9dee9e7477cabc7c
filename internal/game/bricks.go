package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/brick-breaker/internal/core"
)

// BrickState is the damage state of a brick.
type BrickState int

const (
	BrickSurvived BrickState = iota
	BrickTouched
	BrickBroken
)

func (s BrickState) String() string {
	switch s {
	case BrickTouched:
		return "touched"
	case BrickBroken:
		return "broken"
	default:
		return "survived"
	}
}

// Brick is one cell of the wall. Its position never changes once placed.
type Brick struct {
	State BrickState
	Pos   core.Vec2
}

// Broke advances the damage state. Broken is terminal.
func (b *Brick) Broke() {
	switch b.State {
	case BrickSurvived:
		b.State = BrickTouched
	case BrickTouched:
		b.State = BrickBroken
	}
}

// Reset restores the brick to full health.
func (b *Brick) Reset() {
	b.State = BrickSurvived
}

// Layout holds the spacing used to pack bricks into the wall.
type Layout struct {
	Padding        float32 // margin between the screen edge and the wall
	BrickPadding   float32 // gap on each side of every brick
	HeightFraction float32 // share of the screen height the wall may fill
}

// DefaultLayout returns the standard wall spacing.
func DefaultLayout() Layout {
	return Layout{
		Padding:        15,
		BrickPadding:   10,
		HeightFraction: 0.6,
	}
}

// Grid is the packed shape of a wall before bricks are placed.
type Grid struct {
	Columns int
	Rows    int
	Offset  float32 // horizontal leftover split on both sides
	CellW   float32
	CellH   float32
}

// Pack computes how many bricks of the given footprint fit on screen.
// Screens too small for a single cell yield zero columns or rows.
func (l Layout) Pack(screen, brick core.Size) Grid {
	g := Grid{
		CellW: brick.Width + 2*l.BrickPadding,
		CellH: brick.Height + 2*l.BrickPadding,
	}
	if g.CellW <= 0 || g.CellH <= 0 {
		return g
	}

	usableW := screen.Width - 2*l.Padding
	usableH := screen.Height * l.HeightFraction

	g.Columns = max(int(math.Floor(float64(usableW/g.CellW))), 0)
	g.Rows = max(int(math.Floor(float64(usableH/g.CellH))), 0)
	if g.Columns > 0 {
		g.Offset = (usableW - float32(g.Columns)*g.CellW) / 2
	}
	return g
}

// BrickWall is the ordered set of bricks for one level, column-major:
// every row of column 0 first, then column 1, and so on.
type BrickWall struct {
	bricks []Brick
	grid   Grid
}

// NewBrickWall packs a wall using the default layout.
func NewBrickWall(screen, brick core.Size) *BrickWall {
	return NewBrickWallWithLayout(screen, brick, DefaultLayout())
}

// NewBrickWallWithLayout packs a wall with custom spacing. The result depends
// only on its inputs.
func NewBrickWallWithLayout(screen, brick core.Size, l Layout) *BrickWall {
	g := l.Pack(screen, brick)
	w := &BrickWall{
		bricks: make([]Brick, 0, g.Columns*g.Rows),
		grid:   g,
	}

	for i := range g.Columns {
		x := l.Padding + g.Offset + l.BrickPadding + float32(i)*g.CellW
		for j := range g.Rows {
			y := l.Padding + g.CellH/2 + float32(j)*g.CellH
			w.bricks = append(w.bricks, Brick{State: BrickSurvived, Pos: core.Vec2{x, y}})
		}
	}
	return w
}

// Len returns the total number of bricks.
func (w *BrickWall) Len() int {
	return len(w.bricks)
}

// Grid returns the packing the wall was built from.
func (w *BrickWall) Grid() Grid {
	return w.grid
}

// Bricks returns the bricks in wall order. Callers must not modify them;
// damage goes through Hit.
func (w *BrickWall) Bricks() []Brick {
	return w.bricks
}

// Hit damages the brick at index i.
func (w *BrickWall) Hit(i int) error {
	if i < 0 || i >= len(w.bricks) {
		return fmt.Errorf("%w: brick %d of %d", ErrCollisionResolution, i, len(w.bricks))
	}
	w.bricks[i].Broke()
	return nil
}

// BrokenCount returns how many bricks are broken.
func (w *BrickWall) BrokenCount() int {
	n := 0
	for i := range w.bricks {
		if w.bricks[i].State == BrickBroken {
			n++
		}
	}
	return n
}

// AllBroken reports whether every brick is broken. True for an empty wall.
func (w *BrickWall) AllBroken() bool {
	return w.BrokenCount() == len(w.bricks)
}

// ResetAll restores every brick without moving any of them.
func (w *BrickWall) ResetAll() {
	for i := range w.bricks {
		w.bricks[i].Reset()
	}
}
