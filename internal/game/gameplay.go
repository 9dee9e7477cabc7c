// Package game implements the brick breaker simulation: ball, paddle and
// brick wall, advanced one fixed tick at a time by Game.
package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick-breaker/internal/core"
	"github.com/vovakirdan/brick-breaker/internal/workflow"
)

// Params describes the world a game runs in.
type Params struct {
	World           core.Size // playfield in world units
	Cell            core.Size // world units per terminal cell, used by Render
	BallSpeed       float32
	SkateboardSpeed float32
	Layout          Layout
	Sprites         Footprints
	ReboundTicks    int // ticks the paddle stays in Rebound after a hit; 0 disables
}

// DefaultParams returns the parameters of an 80x24 terminal.
func DefaultParams() Params {
	return Params{
		World:           core.Size{Width: 800, Height: 440},
		Cell:            core.Size{Width: 10, Height: 20},
		BallSpeed:       BallSpeed,
		SkateboardSpeed: SkateboardSpeed,
		Layout:          DefaultLayout(),
		Sprites:         DefaultSpriteSizes(),
		ReboundTicks:    0,
	}
}

// Tick is the input of one simulation step.
type Tick struct {
	Seconds      float32 // fixed step duration
	Movement     float32 // held-key axis in {-1, 0, 1}
	Invulnerable bool    // ball bounces off the bottom edge instead of being lost
}

// OutcomeKind tells whether a tick ended the attempt.
type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeWin
	OutcomeLoss
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "none"
	}
}

// Outcome describes a finished attempt. Kind is OutcomeNone while playing.
type Outcome struct {
	Kind     OutcomeKind
	Level    int32 // level the attempt was played on
	Score    int   // bricks broken during the attempt
	MaxScore int   // best score after the attempt
	Ball     Ball  // ball as it was when the attempt ended
}

// ProgressSaver persists progress after every finished attempt.
type ProgressSaver interface {
	SaveProgress(p core.Progress) error
}

// GameplayState is the mutable simulation of one attempt.
type GameplayState struct {
	Skateboard Skateboard
	Wall       *BrickWall
	Ball       Ball
}

// Game orchestrates the simulation, the score and the workflow.
// It is not safe for concurrent use; the host calls it from one goroutine.
type Game struct {
	params Params
	logger *log.Logger
	saver  ProgressSaver

	flow  *workflow.Machine
	state GameplayState
	score Score
	last  Outcome
	tick  uint64
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for workflow and attempt events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithSaver sets where progress is written after each attempt.
func WithSaver(s ProgressSaver) Option {
	return func(g *Game) {
		g.saver = s
	}
}

// New creates a game at the given progress, ready to play.
func New(params Params, progress core.Progress, opts ...Option) *Game {
	if params.Sprites == nil {
		params.Sprites = DefaultSpriteSizes()
	}
	if progress.Level < 1 {
		progress.Level = 1
	}

	g := &Game{
		params: params,
		logger: log.New(io.Discard),
		flow:   workflow.NewMachine(),
		score: Score{
			Level:    progress.Level,
			MaxScore: progress.MaxScore,
		},
	}
	for _, opt := range opts {
		opt(g)
	}

	g.state.Wall = g.buildWall()
	g.placeEntities()
	return g
}

func (g *Game) buildWall() *BrickWall {
	brick := g.params.Sprites.Brick(BrickSurvived)
	return NewBrickWallWithLayout(g.params.World, brick, g.params.Layout)
}

// placeEntities creates a fresh ball and paddle for the current world.
func (g *Game) placeEntities() {
	w := g.params.World
	sprites := g.params.Sprites
	board := sprites.Skateboard(SkateboardNormal)
	ball := sprites.Ball(BallFlying)

	g.state.Skateboard = NewSkateboard(board, w.Height, w.Width)
	g.state.Ball = NewBall(w.Width, w.Height, board.Height, ball.Width, ball.Height)
}

// Update advances the simulation by one tick. It does nothing unless the
// workflow is in Play. A non-empty Outcome means the attempt ended on this
// tick and the game has already been reset for the next one.
func (g *Game) Update(t Tick) (Outcome, error) {
	if g.flow.State() != workflow.Play {
		return Outcome{}, nil
	}
	g.tick++

	w := g.params.World
	sprites := g.params.Sprites
	st := &g.state

	st.Skateboard.Tick(w.Width, sprites)
	st.Skateboard.Update(t.Seconds, t.Movement, g.params.SkateboardSpeed, w.Width, sprites)

	ballSize := sprites.Ball(st.Ball.State)
	next := st.Ball.NextPosition(t.Seconds, w, ballSize, g.params.BallSpeed)
	lost := next.Y()+ballSize.Height > w.Height && !t.Invulnerable
	st.Ball.Pos = next
	if lost {
		return g.finish(workflow.Lose)
	}

	if c := st.Ball.CollidesRect(st.Skateboard.Rect(sprites)); c != core.CollisionNone {
		st.Ball.Bounce(c)
		st.Skateboard.Rebound(g.params.ReboundTicks)
	}

	for i, b := range st.Wall.Bricks() {
		if b.State == BrickBroken {
			continue
		}
		c := st.Ball.CollidesRect(core.RectAt(b.Pos, sprites.Brick(b.State)))
		if c == core.CollisionNone {
			continue
		}
		if err := st.Wall.Hit(i); err != nil {
			return Outcome{}, err
		}
		st.Ball.Bounce(c)
	}

	g.score.Recompute(st.Wall)

	if st.Wall.Len() > 0 && st.Wall.AllBroken() {
		return g.finish(workflow.Win)
	}
	return Outcome{}, nil
}

// finish ends the attempt: the game is reset, the workflow moves on and the
// new progress is saved.
func (g *Game) finish(intent workflow.Intent) (Outcome, error) {
	out := Outcome{
		Kind:  OutcomeWin,
		Level: g.score.Level,
		Score: g.score.Current,
		Ball:  g.state.Ball,
	}
	level := g.score.Level
	if intent == workflow.Lose {
		out.Kind = OutcomeLoss
		out.Ball.State = BallCrashing
	} else {
		level++
	}

	g.reset(level)
	out.MaxScore = g.score.MaxScore
	g.last = out

	if err := g.flow.Apply(intent); err != nil {
		g.logger.Warn("workflow transition rejected", "state", g.flow.State(), "intent", intent, "err", err)
	}

	g.logger.Info("attempt finished",
		"outcome", out.Kind,
		"level", out.Level,
		"score", out.Score,
		"max_score", out.MaxScore,
	)

	if g.saver != nil {
		if err := g.saver.SaveProgress(g.Progress()); err != nil {
			g.logger.Error("cannot save progress", "err", err)
			return out, fmt.Errorf("%w: %w", ErrPersistence, err)
		}
	}
	return out, nil
}

// reset starts a new attempt on level. The wall keeps its layout.
func (g *Game) reset(level int32) {
	g.score.Restart(level)
	g.state.Wall.ResetAll()
	g.placeEntities()
}

// Dispatch applies a player intent to the workflow, such as starting the
// next level from a dialog. A rejected intent is logged and returned; the
// state is left unchanged.
func (g *Game) Dispatch(intent workflow.Intent) error {
	if err := g.flow.Apply(intent); err != nil {
		g.logger.Warn("workflow transition rejected", "state", g.flow.State(), "intent", intent)
		return err
	}
	return nil
}

// Resize rebuilds the wall for a new world size and restarts the attempt on
// the same level. The abandoned attempt is not an outcome, so the max score
// is left alone.
func (g *Game) Resize(world core.Size) {
	if world == g.params.World {
		return
	}
	g.params.World = world
	g.score.Current = 0
	g.state.Wall = g.buildWall()
	g.placeEntities()
	g.logger.Debug("world resized", "width", world.Width, "height", world.Height, "bricks", g.state.Wall.Len())
}

// Workflow returns the current workflow state.
func (g *Game) Workflow() workflow.State {
	return g.flow.State()
}

// Score returns the current score.
func (g *Game) Score() Score {
	return g.score
}

// Progress returns the record to persist for the player.
func (g *Game) Progress() core.Progress {
	return core.Progress{Level: g.score.Level, MaxScore: g.score.MaxScore}
}

// LastOutcome returns the most recent finished attempt.
func (g *Game) LastOutcome() Outcome {
	return g.last
}

// State returns the live simulation state.
func (g *Game) State() *GameplayState {
	return &g.state
}

// Params returns the parameters the game runs with.
func (g *Game) Params() Params {
	return g.params
}
