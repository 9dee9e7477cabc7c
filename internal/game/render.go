package game

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/brick-breaker/internal/core"
	"github.com/vovakirdan/brick-breaker/internal/workflow"
)

// Visual characters for rendering
const (
	BallChar          = '●'
	CrashedBallChar   = '✕'
	SkateboardChar    = '='
	ReboundChar       = '≈'
	SurvivedBrickChar = '█'
	TouchedBrickChar  = '▒'
)

// HUDRows is the number of screen rows above the playfield.
const HUDRows = 1

// ScreenSize returns the screen cells needed to show a world of the given size.
func ScreenSize(world, cell core.Size) (cols, rows int) {
	if cell.Width <= 0 || cell.Height <= 0 {
		return 0, HUDRows
	}
	cols = int(math.Ceil(float64(world.Width / cell.Width)))
	rows = int(math.Ceil(float64(world.Height/cell.Height))) + HUDRows
	return cols, rows
}

// WorldSize returns the world that fits a screen of cols x rows cells.
func WorldSize(cols, rows int, cell core.Size) core.Size {
	rows -= HUDRows
	return core.Size{
		Width:  float32(max(cols, 0)) * cell.Width,
		Height: float32(max(rows, 0)) * cell.Height,
	}
}

// Render draws the game into dst. With debug on, bounding boxes are outlined
// instead of filled.
func (g *Game) Render(dst *core.Screen, debug bool) {
	dst.Clear()

	g.renderHUD(dst, debug)
	g.renderBricks(dst, debug)
	g.renderSkateboard(dst, debug)
	g.renderBall(dst)
	g.renderDialog(dst)
}

// cellRect maps a world rectangle onto screen cells. Anything with a
// footprint covers at least one cell.
func (g *Game) cellRect(r core.Rect) (x, y, w, h int) {
	cell := g.params.Cell
	x = int(math.Floor(float64(r.X / cell.Width)))
	y = int(math.Floor(float64(r.Y/cell.Height))) + HUDRows
	w = max(int(math.Round(float64(r.W/cell.Width))), 1)
	h = max(int(math.Round(float64(r.H/cell.Height))), 1)
	return x, y, w, h
}

func (g *Game) renderHUD(dst *core.Screen, debug bool) {
	// Score on left
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score.Current), core.ColorBrightWhite)

	// Level in center
	level := fmt.Sprintf("Level: %d", g.score.Level)
	if debug {
		level += " [debug]"
	}
	dst.DrawTextCentered(0, level, core.ColorYellow)

	// Max score on right
	maxText := fmt.Sprintf("Max score: %d", g.score.MaxScore)
	dst.DrawText(dst.Width()-utf8.RuneCountInString(maxText)-1, 0, maxText, core.ColorBrightWhite)
}

func (g *Game) renderBricks(dst *core.Screen, debug bool) {
	sprites := g.params.Sprites
	for _, b := range g.state.Wall.Bricks() {
		if b.State == BrickBroken {
			continue
		}

		x, y, w, h := g.cellRect(core.RectAt(b.Pos, sprites.Brick(b.State)))
		glyph, color := SurvivedBrickChar, core.ColorCyan
		if b.State == BrickTouched {
			glyph, color = TouchedBrickChar, core.ColorOrange
		}

		if debug {
			dst.DrawBox(x, y, w, h, color)
			continue
		}
		dst.FillRect(x, y, w, h, glyph, color)
	}
}

func (g *Game) renderSkateboard(dst *core.Screen, debug bool) {
	board := &g.state.Skateboard
	x, y, w, h := g.cellRect(board.Rect(g.params.Sprites))

	glyph, color := SkateboardChar, core.ColorBrightWhite
	if board.State == SkateboardRebound {
		glyph, color = ReboundChar, core.ColorYellow
	}

	if debug {
		dst.DrawBox(x, y, w, h, color)
		return
	}
	dst.FillRect(x, y, w, h, glyph, color)
}

func (g *Game) renderBall(dst *core.Screen) {
	c := g.state.Ball.Center()
	x, y, _, _ := g.cellRect(core.Rect{X: c.X(), Y: c.Y()})
	dst.SetColored(x, y, BallChar, core.ColorGreen)
}

func (g *Game) renderDialog(dst *core.Screen) {
	last := g.last
	switch g.flow.State() {
	case workflow.NextLevel:
		g.drawCenteredBox(dst, core.ColorGreen,
			fmt.Sprintf("Level %d", g.score.Level),
			fmt.Sprintf("Score: %d  Max score: %d", last.Score, g.score.MaxScore),
			"Press SPACE to start",
		)
	case workflow.GameOver:
		g.drawCenteredBox(dst, core.ColorRed,
			"Game over",
			fmt.Sprintf("Score: %d  Max score: %d", last.Score, g.score.MaxScore),
			"Press SPACE to continue",
		)
		if last.Kind == OutcomeLoss {
			c := last.Ball.Center()
			x, y, _, _ := g.cellRect(core.Rect{X: c.X(), Y: c.Y()})
			dst.SetColored(x, min(y, dst.Height()-1), CrashedBallChar, core.ColorRed)
		}
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, color core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}

	boxW := width + 4
	boxH := 2*len(lines) + 1
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, color)

	for i, l := range lines {
		x := boxX + (boxW-utf8.RuneCountInString(l))/2
		dst.DrawText(x, boxY+1+2*i, l, core.ColorBrightWhite)
	}
}
