package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPowerUp loads the Power-Up game configuration.
// Search order: customPath -> ~/.arcade/configs/powerup.yaml -> ./configs/powerup.yaml -> embedded default
//
// Files are decoded on top of the built-in defaults, so a file only needs the
// keys it changes.
func LoadPowerUp(customPath string) (PowerUpConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultPowerUpConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decodePowerUp(data)
		if err != nil {
			return DefaultPowerUpConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("powerup.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decodePowerUp(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "powerup.yaml")); err == nil {
		if cfg, err := decodePowerUp(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := decodePowerUp(defaultPowerUpYAML)
	if err != nil {
		return DefaultPowerUpConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decodePowerUp(data []byte) (PowerUpConfig, error) {
	cfg := DefaultPowerUpConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c PowerUpConfig) Validate() error {
	var errs []error
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field must have positive size, got %gx%g", c.Field.Width, c.Field.Height))
	}
	if c.Player.Size <= 0 || c.Player.Size > c.Field.Width {
		errs = append(errs, fmt.Errorf("player size %g does not fit the field", c.Player.Size))
	}
	if c.Enemies.Size <= 0 || c.Enemies.Size > c.Field.Width {
		errs = append(errs, fmt.Errorf("enemy size %g does not fit the field", c.Enemies.Size))
	}
	if c.PowerUps.Size <= 0 || c.PowerUps.Size > c.Field.Width {
		errs = append(errs, fmt.Errorf("power-up size %g does not fit the field", c.PowerUps.Size))
	}
	if c.Enemies.MinSpawnDelay <= 0 {
		errs = append(errs, errors.New("enemies.min_spawn_delay must be positive"))
	}
	if c.PowerUps.SpawnInterval <= 0 {
		errs = append(errs, errors.New("powerups.spawn_interval must be positive"))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyPowerUpPreset modifies the config based on a difficulty preset.
func ApplyPowerUpPreset(cfg *PowerUpConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.StartHealth *= 2
	case DifficultyHard:
		cfg.Level.StartLevel = 3
	case DifficultyFixed:
		cfg.Level.Progression = false
	}
}
