package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brick-breaker/internal/platform/tui"
	"github.com/vovakirdan/brick-breaker/internal/storage"
)

var (
	flagPlayer      string
	flagLimit       int
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best attempts",
	Long: `Display the best finished attempts, by score then level.

Examples:
  brickbreaker scores
  brickbreaker scores --player alice --limit 20
  brickbreaker scores -i`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show attempts of this player")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of attempts to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse attempts in a table")
}

func runScores(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.Database)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, flagPlayer, width, height)
	}

	attempts, err := store.TopAttempts(flagPlayer, flagLimit)
	if err != nil {
		return err
	}

	title := "all players"
	if flagPlayer != "" {
		title = flagPlayer
	}
	fmt.Printf("Best attempts - %s\n", title)
	fmt.Println()

	if len(attempts) == 0 {
		fmt.Println("No attempts recorded yet.")
		fmt.Println()
		fmt.Println("Run 'brickbreaker play' to set the first score!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-7s  %-5s  %-6s  %s\n", "Rank", "Player", "Outcome", "Level", "Score", "Date")
	fmt.Printf("  %-4s  %-12s  %-7s  %-5s  %-6s  %s\n", "----", "------", "-------", "-----", "-----", "----")

	for i, a := range attempts {
		fmt.Printf("  %-4d  %-12s  %-7s  %-5d  %-6d  %s\n",
			i+1, a.Player, a.Outcome, a.Level, a.Score, a.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(flagPlayer); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}
