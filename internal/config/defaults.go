package config

import (
	_ "embed"
)

//go:embed defaults/brickbreaker.yaml
var defaultBrickBreakerYAML []byte

// DefaultBrickBreakerConfig returns the default configuration.
func DefaultBrickBreakerConfig() BrickBreakerConfig {
	return BrickBreakerConfig{
		World: WorldConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
		Physics: PhysicsConfig{
			BallSpeed:   350,
			PaddleSpeed: 600,
		},
		Layout: LayoutConfig{
			Padding:              15,
			BrickPadding:         10,
			BricksHeightFraction: 0.6,
		},
		Sprites: SpritesConfig{
			BallFlying:        SpriteSize{Width: 20, Height: 20},
			BrickSurvived:     SpriteSize{Width: 60, Height: 20},
			BrickTouched:      SpriteSize{Width: 60, Height: 20},
			SkateboardNormal:  SpriteSize{Width: 100, Height: 20},
			SkateboardRebound: SpriteSize{Width: 80, Height: 20},
		},
		Gameplay: GameplayConfig{
			ReboundTicks: 0,
		},
		Input: InputConfig{
			HoldTicks: 8,
		},
		Storage: StorageConfig{
			ProgressFile: "~/.brickbreaker/score.txt",
			Database:     "~/.brickbreaker/brickbreaker.db",
		},
		TickRate:        60,
		MaxCatchUpTicks: 5,
	}
}
