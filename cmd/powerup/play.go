package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/powerup-arcade/internal/config"
	"github.com/vovakirdan/powerup-arcade/internal/core"
	"github.com/vovakirdan/powerup-arcade/internal/games/powerup"
	"github.com/vovakirdan/powerup-arcade/internal/platform/tui"
	"github.com/vovakirdan/powerup-arcade/internal/registry"
	"github.com/vovakirdan/powerup-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play the game",
	Long: `Start playing. The game opens on its title screen.

Controls:
  A/D, Left/Right  - Move
  Mouse            - Steer toward the pointer
  Enter            - Start / play again
  Esc              - Settings (Esc again to resume)
  R                - Play again after game over
  Tab              - High scores (title screen)
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Double starting health
  normal - Defaults from the config file
  hard   - Start at level 3
  fixed  - No level progression

Examples:
  powerup play
  powerup play --difficulty easy
  powerup play --seed 42
  powerup play --config ./my-powerup.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		gameID := powerup.GameID
		if len(args) == 1 {
			gameID = args[0]
		}
		runPlay(cmd, []string{gameID})
	},
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func init() {
	addPlayFlags(playCmd)
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'powerup list' to see available games.")
		os.Exit(1)
	}

	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard, fixed)\n", flagDifficulty)
		os.Exit(1)
	}

	// Surface config problems now; in game they silently fall back to defaults
	if _, err := config.LoadPowerUp(flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; using built-in defaults\n", err)
	}
	powerup.SetConfigPath(flagConfig)
	powerup.SetDifficultyPreset(flagDifficulty)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW = width
	cfg.ScreenH = height
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without scores", "error", err)
		store = nil
	}

	runErr := tui.Run(game, store, cfg, logger)

	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
