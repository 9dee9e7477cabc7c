package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-breaker/internal/core"
	"github.com/vovakirdan/brick-breaker/internal/storage"
)

var flagResetPlayer string

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Start over from level 1",
	Long: `Write the initial progress record: level 1 and a max score of 0.

Without --player the local progress file is reset. With --player the
player's record in the database is reset instead.

Examples:
  brickbreaker reset
  brickbreaker reset --progress ./score.txt
  brickbreaker reset --player alice`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().StringVar(&flagResetPlayer, "player", "", "Reset this SSH player's record in the database")
}

func runReset(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if flagResetPlayer != "" {
		store, err := storage.Open(cfg.Storage.Database)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.SaveProgress(flagResetPlayer, core.InitialProgress()); err != nil {
			return err
		}
		fmt.Printf("Progress of %s reset to level 1\n", flagResetPlayer)
		return nil
	}

	store, err := storage.NewFileStore(cfg.Storage.ProgressFile)
	if err != nil {
		return err
	}
	if err := store.SaveProgress(core.InitialProgress()); err != nil {
		return err
	}
	fmt.Printf("Progress reset to level 1 in %s\n", store.Path())
	return nil
}
