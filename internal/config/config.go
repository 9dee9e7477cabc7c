// Package config provides YAML-based configuration loading for the brick
// breaker: world size, physics, wall layout, sprite footprints and storage.
package config

import (
	"errors"
	"fmt"
)

// BrickBreakerConfig contains all configuration for the brick breaker.
type BrickBreakerConfig struct {
	World           WorldConfig    `yaml:"world"`
	Physics         PhysicsConfig  `yaml:"physics"`
	Layout          LayoutConfig   `yaml:"layout"`
	Sprites         SpritesConfig  `yaml:"sprites"`
	Gameplay        GameplayConfig `yaml:"gameplay"`
	Input           InputConfig    `yaml:"input"`
	Storage         StorageConfig  `yaml:"storage"`
	TickRate        int            `yaml:"tick_rate"`
	MaxCatchUpTicks int            `yaml:"max_catch_up_ticks"`
	Debug           bool           `yaml:"debug"`
}

// WorldConfig defines the playfield in world units.
type WorldConfig struct {
	Width      float64 `yaml:"width"`  // 0 = derive from terminal size
	Height     float64 `yaml:"height"` // 0 = derive from terminal size
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// PhysicsConfig defines movement speeds in world units per second.
type PhysicsConfig struct {
	BallSpeed   float64 `yaml:"ball_speed"`
	PaddleSpeed float64 `yaml:"paddle_speed"`
}

// LayoutConfig defines how bricks are packed into the wall.
type LayoutConfig struct {
	Padding              float64 `yaml:"padding"`
	BrickPadding         float64 `yaml:"brick_padding"`
	BricksHeightFraction float64 `yaml:"bricks_height_fraction"`
}

// SpriteSize is a footprint in world units.
type SpriteSize struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SpritesConfig is the footprint of every entity state.
type SpritesConfig struct {
	BallFlying        SpriteSize `yaml:"ball_flying"`
	BrickSurvived     SpriteSize `yaml:"brick_survived"`
	BrickTouched      SpriteSize `yaml:"brick_touched"`
	SkateboardNormal  SpriteSize `yaml:"skateboard_normal"`
	SkateboardRebound SpriteSize `yaml:"skateboard_rebound"`
}

// GameplayConfig defines gameplay tweaks.
type GameplayConfig struct {
	ReboundTicks int `yaml:"rebound_ticks"`
}

// InputConfig defines keyboard handling.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"` // ticks a key press keeps moving the paddle
}

// StorageConfig defines where progress is kept.
type StorageConfig struct {
	ProgressFile string `yaml:"progress_file"`
	Database     string `yaml:"database"`
}

// Validate reports values the game cannot run with.
func (c BrickBreakerConfig) Validate() error {
	var errs []error

	if c.World.Width < 0 || c.World.Height < 0 {
		errs = append(errs, fmt.Errorf("world size must not be negative, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.World.CellWidth <= 0 || c.World.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("cell size must be positive, got %vx%v", c.World.CellWidth, c.World.CellHeight))
	}
	if c.Physics.BallSpeed <= 0 || c.Physics.PaddleSpeed <= 0 {
		errs = append(errs, errors.New("ball_speed and paddle_speed must be positive"))
	}
	if c.Layout.BricksHeightFraction <= 0 || c.Layout.BricksHeightFraction > 1 {
		errs = append(errs, fmt.Errorf("bricks_height_fraction must be in (0, 1], got %v", c.Layout.BricksHeightFraction))
	}

	sprites := map[string]SpriteSize{
		"ball_flying":        c.Sprites.BallFlying,
		"brick_survived":     c.Sprites.BrickSurvived,
		"brick_touched":      c.Sprites.BrickTouched,
		"skateboard_normal":  c.Sprites.SkateboardNormal,
		"skateboard_rebound": c.Sprites.SkateboardRebound,
	}
	for _, name := range []string{"ball_flying", "brick_survived", "brick_touched", "skateboard_normal", "skateboard_rebound"} {
		s := sprites[name]
		if s.Width <= 0 || s.Height <= 0 {
			errs = append(errs, fmt.Errorf("sprite %s must have a positive size, got %vx%v", name, s.Width, s.Height))
		}
	}

	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}
	if c.MaxCatchUpTicks < 0 || c.Gameplay.ReboundTicks < 0 || c.Input.HoldTicks < 0 {
		errs = append(errs, errors.New("tick counts must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
