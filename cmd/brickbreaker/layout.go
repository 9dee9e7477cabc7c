package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-breaker/internal/core"
	"github.com/vovakirdan/brick-breaker/internal/game"
)

var (
	flagLayoutWidth  float64
	flagLayoutHeight float64
	flagBrickWidth   float64
	flagBrickHeight  float64
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the brick wall layout",
	Long: `Print the grid and brick positions generated for a world size.
Brick size defaults to the configured footprint of an intact brick.

Examples:
  brickbreaker layout --width 800 --height 440
  brickbreaker layout --width 100 --height 400 --brick-width 40 --brick-height 20`,
	Args: cobra.NoArgs,
	RunE: runLayout,
}

func init() {
	layoutCmd.Flags().Float64Var(&flagLayoutWidth, "width", 800, "World width")
	layoutCmd.Flags().Float64Var(&flagLayoutHeight, "height", 440, "World height")
	layoutCmd.Flags().Float64Var(&flagBrickWidth, "brick-width", 0, "Brick width (0 = from config)")
	layoutCmd.Flags().Float64Var(&flagBrickHeight, "brick-height", 0, "Brick height (0 = from config)")
}

func runLayout(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	world := core.Size{Width: float32(flagLayoutWidth), Height: float32(flagLayoutHeight)}
	params := game.ParamsFromConfig(cfg, world)
	params.World = world

	brick := params.Sprites.Brick(game.BrickSurvived)
	if flagBrickWidth > 0 {
		brick.Width = float32(flagBrickWidth)
	}
	if flagBrickHeight > 0 {
		brick.Height = float32(flagBrickHeight)
	}

	wall := game.NewBrickWallWithLayout(world, brick, params.Layout)
	grid := wall.Grid()

	fmt.Printf("World %gx%g, brick %gx%g\n", world.Width, world.Height, brick.Width, brick.Height)
	fmt.Printf("Grid: %d columns x %d rows, offset %g, cell %gx%g\n",
		grid.Columns, grid.Rows, grid.Offset, grid.CellW, grid.CellH)
	fmt.Println()

	if wall.Len() == 0 {
		fmt.Println("No bricks fit.")
		return nil
	}

	fmt.Printf("  %-5s  %-8s  %-8s\n", "Index", "X", "Y")
	for i, b := range wall.Bricks() {
		fmt.Printf("  %-5d  %-8g  %-8g\n", i, b.Pos.X(), b.Pos.Y())
	}
	return nil
}
