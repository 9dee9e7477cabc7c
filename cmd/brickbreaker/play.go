package main

import (
	"errors"
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brick-breaker/internal/core"
	"github.com/vovakirdan/brick-breaker/internal/platform/tui"
	"github.com/vovakirdan/brick-breaker/internal/storage"
)

var flagNoHistory bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start playing at the level stored in the progress record.

Controls:
  Left/A, Right/D - Move the skateboard
  Down/S          - Stop
  Space/Enter     - Continue from a dialog
  I               - Toggle debug overlay
  ?               - Toggle help
  Q/Ctrl+C        - Quit

The progress record must exist. Create it with 'brickbreaker reset'.

Examples:
  brickbreaker play
  brickbreaker play --debug
  brickbreaker play --progress ./score.txt --no-history`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Do not record attempts in the database")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logFile, err := openLogFile()
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, "brickbreaker")
	if err != nil {
		return err
	}

	store, err := storage.NewFileStore(cfg.Storage.ProgressFile)
	if err != nil {
		return err
	}
	progress, err := store.Load()
	if errors.Is(err, storage.ErrNoProgress) || errors.Is(err, storage.ErrMalformedProgress) {
		return fmt.Errorf("%w\nRun 'brickbreaker reset' to create a new record", err)
	}
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.TickRate,
			Debug:    cfg.Debug,
		},
		Progress: progress,
		Saver:    store,
		Logger:   logger,
	}

	if !flagNoHistory {
		db, dbErr := storage.Open(cfg.Storage.Database)
		if dbErr != nil {
			logger.Warn("attempt history disabled", "err", dbErr)
		} else {
			defer db.Close()
			opts.Recorder = db.ForPlayer(playerName(logger))
		}
	}

	logger.Info("session started", "level", progress.Level, "max_score", progress.MaxScore)
	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("game stopped: %w", err)
	}
	return nil
}

// playerName is the name local attempts are recorded under.
func playerName(logger *log.Logger) string {
	u, err := user.Current()
	if err != nil {
		logger.Debug("cannot resolve user", "err", err)
		return "local"
	}
	return u.Username
}
