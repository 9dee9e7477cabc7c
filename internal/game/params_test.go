package game

import (
	"testing"

	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/core"
)

func TestParamsFromDefaultConfig(t *testing.T) {
	cfg := config.DefaultBrickBreakerConfig()
	got := ParamsFromConfig(cfg, core.Size{Width: 800, Height: 440})
	expected := DefaultParams()

	if got.World != expected.World || got.Cell != expected.Cell {
		t.Errorf("ParamsFromConfig() world/cell = %v/%v, expected %v/%v", got.World, got.Cell, expected.World, expected.Cell)
	}
	if got.BallSpeed != BallSpeed || got.SkateboardSpeed != SkateboardSpeed {
		t.Errorf("ParamsFromConfig() speeds = %v/%v, expected %v/%v", got.BallSpeed, got.SkateboardSpeed, BallSpeed, SkateboardSpeed)
	}
	if got.Layout != DefaultLayout() {
		t.Errorf("ParamsFromConfig().Layout = %+v, expected %+v", got.Layout, DefaultLayout())
	}
	if got.Sprites != Footprints(DefaultSpriteSizes()) {
		t.Errorf("ParamsFromConfig().Sprites = %+v, expected defaults", got.Sprites)
	}
	if got.ReboundTicks != expected.ReboundTicks {
		t.Errorf("ParamsFromConfig().ReboundTicks = %d, expected %d", got.ReboundTicks, expected.ReboundTicks)
	}
	if FixedWorld(cfg) {
		t.Error("FixedWorld(defaults) = true, expected false")
	}
}

func TestParamsFromConfigFixedWorld(t *testing.T) {
	cfg := config.DefaultBrickBreakerConfig()
	cfg.World.Width = 800
	cfg.World.Height = 600

	got := ParamsFromConfig(cfg, core.Size{Width: 100, Height: 100})
	if got.World != (core.Size{Width: 800, Height: 600}) {
		t.Errorf("ParamsFromConfig().World = %v, expected 800x600", got.World)
	}
	if !FixedWorld(cfg) {
		t.Error("FixedWorld() = false, expected true")
	}
}
