// brickbreaker is a brick breaker game for the terminal.
//
// Usage:
//
//	brickbreaker play        - Play in this terminal
//	brickbreaker serve       - Start SSH server for remote play
//	brickbreaker scores      - Show the best attempts
//	brickbreaker reset       - Reset the local progress record
//	brickbreaker layout      - Print the brick wall for a world size
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--fps <rate>        - Set tick rate (default: from config)
//	--debug             - Start with debug overlay and invulnerable ball
//	--db <path>         - Set database path
//	--progress <path>   - Set progress record path
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagDebug    bool
	flagDBPath   string
	flagProgress string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickbreaker",
	Short: "Brick breaker - break the wall in your terminal",
	Long: `Brick breaker is a terminal game: bounce the ball off your skateboard
and break every brick in the wall to reach the next level.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View the best attempts
  reset    - Start over from level 1
  layout   - Print the brick wall layout

Examples:
  brickbreaker play
  brickbreaker play --debug
  brickbreaker serve --ssh :2222
  brickbreaker scores -i`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Show bounding boxes and keep the ball in play")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to progress database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagProgress, "progress", "", "Path to progress record (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(layoutCmd)
}

// loadConfig loads the configuration and applies flag overrides.
func loadConfig() (config.BrickBreakerConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagDebug {
		cfg.Debug = true
	}
	if flagDBPath != "" {
		cfg.Storage.Database = flagDBPath
	}
	if flagProgress != "" {
		cfg.Storage.ProgressFile = flagProgress
	}
	return cfg, nil
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// logFilePath is where local sessions log while the TUI owns the terminal.
const logFilePath = "~/.brickbreaker/brickbreaker.log"

// openLogFile opens the log file for appending.
func openLogFile() (*os.File, error) {
	path, err := storage.ExpandPath(logFilePath)
	if err != nil {
		return nil, err
	}
	if err := storage.EnsureDir(path); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
