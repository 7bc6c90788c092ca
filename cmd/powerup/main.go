// powerup is a terminal arcade game: dodge falling enemies and collect
// power-ups while the difficulty climbs with your score.
//
// Usage:
//
//	powerup                  - Play (same as 'powerup play')
//	powerup play             - Play the game
//	powerup list             - List available games
//	powerup scores           - Show high scores
//	powerup serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
//	--log <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/powerup-arcade/internal/games/powerup"
)

var (
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "powerup",
	Short: "Power-Up Game - dodge enemies and grab power-ups in your terminal",
	Long: `Power-Up Game is a single-screen arcade game. Slide along the bottom of
the field, dodge falling enemies and collect power-ups. Enemies get faster,
spawn more often and learn new moves as your score climbs.

Available commands:
  play     - Play the game (default)
  list     - Show all available games
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  powerup
  powerup play --difficulty hard
  powerup scores
  powerup serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		runPlay(cmd, []string{powerup.GameID})
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// openLogger returns a file logger when --log is set. The terminal belongs
// to the game, so without a file logs are discarded.
func openLogger() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "powerup",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
