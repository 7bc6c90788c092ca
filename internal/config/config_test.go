package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decodePowerUp(GetDefaultYAML("powerup"))
	if err != nil {
		t.Fatalf("embedded default failed to decode: %v", err)
	}
	if cfg != DefaultPowerUpConfig() {
		t.Errorf("embedded YAML and DefaultPowerUpConfig() differ:\n%+v\n%+v", cfg, DefaultPowerUpConfig())
	}
}

func TestLoadPowerUpCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("player:\n  speed: 400\nlevel:\n  points_per_level: 250\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPowerUp(path)
	if err != nil {
		t.Fatalf("LoadPowerUp() failed: %v", err)
	}
	if cfg.Player.Speed != 400 {
		t.Errorf("Player.Speed = %g, expected 400", cfg.Player.Speed)
	}
	if cfg.Level.PointsPerLevel != 250 {
		t.Errorf("Level.PointsPerLevel = %g, expected 250", cfg.Level.PointsPerLevel)
	}
	// Keys absent from the file keep their defaults
	if cfg.Player.BoostSpeed != 550 {
		t.Errorf("Player.BoostSpeed = %g, expected default 550", cfg.Player.BoostSpeed)
	}
}

func TestLoadPowerUpMissingFile(t *testing.T) {
	cfg, err := LoadPowerUp(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
	if cfg != DefaultPowerUpConfig() {
		t.Error("missing config should still return defaults")
	}
}

func TestLoadPowerUpInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("field:\n  width: -5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPowerUp(path); err == nil {
		t.Error("expected validation error for negative field width")
	}
}

func TestConfigRoundTripKeys(t *testing.T) {
	out, err := yaml.Marshal(DefaultPowerUpConfig())
	if err != nil {
		t.Fatal(err)
	}
	var back PowerUpConfig
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatal(err)
	}
	if back != DefaultPowerUpConfig() {
		t.Error("yaml tags lose information")
	}
}

func TestApplyPowerUpPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		health      int
		startLevel  int
		progression bool
	}{
		{"", 10, 1, true},
		{DifficultyNormal, 10, 1, true},
		{DifficultyEasy, 20, 1, true},
		{DifficultyHard, 10, 3, true},
		{DifficultyFixed, 10, 1, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultPowerUpConfig()
			ApplyPowerUpPreset(&cfg, tc.preset)
			if cfg.Player.StartHealth != tc.health {
				t.Errorf("StartHealth = %d, expected %d", cfg.Player.StartHealth, tc.health)
			}
			if cfg.Level.StartLevel != tc.startLevel {
				t.Errorf("StartLevel = %d, expected %d", cfg.Level.StartLevel, tc.startLevel)
			}
			if cfg.Level.Progression != tc.progression {
				t.Errorf("Progression = %v, expected %v", cfg.Level.Progression, tc.progression)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown presets should map to empty")
	}
}

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(DefaultPowerUpConfig().Level)

	tests := []struct {
		score float64
		level int
	}{
		{0, 1},
		{499.99, 1},
		{500, 2},
		{1499, 3},
		{2500, 6},
	}
	for _, tc := range tests {
		if got := d.Level(tc.score); got != tc.level {
			t.Errorf("Level(%g) = %d, expected %d", tc.score, got, tc.level)
		}
	}

	fixed := NewDifficultyManager(LevelConfig{StartLevel: 4, PointsPerLevel: 500})
	if got := fixed.Level(10000); got != 4 {
		t.Errorf("fixed Level = %d, expected 4", got)
	}
}

func TestEnemyScaling(t *testing.T) {
	e := DefaultPowerUpConfig().Enemies

	tests := []struct {
		level int
		delay float64
		speed float64
	}{
		{1, 0.55, 280},
		{2, 0.50, 300},
		{9, 0.15, 440},
		{20, 0.15, 660},
	}
	for _, tc := range tests {
		if got := SpawnDelay(e, tc.level); math.Abs(got-tc.delay) > 1e-9 {
			t.Errorf("SpawnDelay(%d) = %g, expected %g", tc.level, got, tc.delay)
		}
		if got := EnemySpeed(e, tc.level); got != tc.speed {
			t.Errorf("EnemySpeed(%d) = %g, expected %g", tc.level, got, tc.speed)
		}
	}
}
