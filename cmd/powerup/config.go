package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/powerup-arcade/internal/config"
)

var flagConfigEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game config",
	Long: `Print the built-in powerup.yaml. Save it as
~/.arcade/configs/powerup.yaml or ./configs/powerup.yaml to tune the game.

With --effective, print the config a game would run with after the search
path, --config and --difficulty are applied.

Examples:
  powerup config > ~/.arcade/configs/powerup.yaml
  powerup config --effective --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigEffective, "effective", false, "Print the resolved config instead of the defaults")
	addPlayFlags(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagConfigEffective {
		os.Stdout.Write(config.GetDefaultYAML("powerup")) //nolint:errcheck
		return
	}

	cfg, err := config.LoadPowerUp(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPowerUpPreset(&cfg, config.ParsePreset(flagDifficulty))

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out) //nolint:errcheck
}
