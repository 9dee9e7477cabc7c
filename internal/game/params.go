package game

import (
	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/core"
)

// ParamsFromConfig builds game parameters from configuration. A world size
// set in the config wins over the one derived by the host.
func ParamsFromConfig(cfg config.BrickBreakerConfig, world core.Size) Params {
	if cfg.World.Width > 0 {
		world.Width = float32(cfg.World.Width)
	}
	if cfg.World.Height > 0 {
		world.Height = float32(cfg.World.Height)
	}

	return Params{
		World:           world,
		Cell:            size(cfg.World.CellWidth, cfg.World.CellHeight),
		BallSpeed:       float32(cfg.Physics.BallSpeed),
		SkateboardSpeed: float32(cfg.Physics.PaddleSpeed),
		Layout: Layout{
			Padding:        float32(cfg.Layout.Padding),
			BrickPadding:   float32(cfg.Layout.BrickPadding),
			HeightFraction: float32(cfg.Layout.BricksHeightFraction),
		},
		Sprites: SpriteSizes{
			BallFlying:        sprite(cfg.Sprites.BallFlying),
			BrickSurvived:     sprite(cfg.Sprites.BrickSurvived),
			BrickTouched:      sprite(cfg.Sprites.BrickTouched),
			SkateboardNormal:  sprite(cfg.Sprites.SkateboardNormal),
			SkateboardRebound: sprite(cfg.Sprites.SkateboardRebound),
		},
		ReboundTicks: cfg.Gameplay.ReboundTicks,
	}
}

// FixedWorld reports whether the config pins the world size, so terminal
// resizes should not change it.
func FixedWorld(cfg config.BrickBreakerConfig) bool {
	return cfg.World.Width > 0 && cfg.World.Height > 0
}

func size(w, h float64) core.Size {
	return core.Size{Width: float32(w), Height: float32(h)}
}

func sprite(s config.SpriteSize) core.Size {
	return size(s.Width, s.Height)
}
