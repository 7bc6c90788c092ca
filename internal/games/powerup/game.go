// Package powerup implements a falling-block dodge game.
// The player slides along the bottom of the field, dodging enemies and
// collecting power-ups while difficulty rises with the score.
package powerup

import (
	"math/rand"

	"github.com/vovakirdan/powerup-arcade/internal/config"
	"github.com/vovakirdan/powerup-arcade/internal/core"
	"github.com/vovakirdan/powerup-arcade/internal/registry"
)

// GameID is the registry identifier of this game.
const GameID = "powerup"

// Phase is the screen the game loop is on.
type Phase int

const (
	PhaseStart    Phase = iota // Title screen
	PhaseSettings              // Settings screen; simulation frozen
	PhasePlaying               // Simulation running
	PhaseGameOver              // Health ran out
)

// String returns the name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseSettings:
		return "settings"
	case PhasePlaying:
		return "game"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// fpsSmoothing is the weight of the newest sample in the FPS moving average.
const fpsSmoothing = 0.1

// Game owns the player and both managers and runs the per-frame pipeline.
type Game struct {
	phase      Phase
	player     *Player
	enemies    *EnemyManager
	powerups   *PowerUpManager
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	runtime    core.RuntimeConfig
	cfg        config.PowerUpConfig
	fixedCfg   *config.PowerUpConfig // Set by NewWithConfig; skips file loading
	preset     config.DifficultyPreset
	level      int
	fps        float64
	elapsed    float64 // Seconds of simulated play this run
	hitsTaken  int
	collected  int
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a new game instance that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always runs with cfg.
func NewWithConfig(cfg config.PowerUpConfig) *Game {
	return &Game{fixedCfg: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Power-Up Game"
}

// Reset loads config, starts a fresh run and shows the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.fixedCfg != nil {
		g.cfg = *g.fixedCfg
	} else {
		cfg, err := config.LoadPowerUp(configPath)
		if err != nil {
			cfg = config.DefaultPowerUpConfig()
		}
		g.preset = difficultyPreset
		config.ApplyPowerUpPreset(&cfg, g.preset)
		g.cfg = cfg
	}

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.fps = 0
	g.newRun()
	g.phase = PhaseStart
}

// Resize updates the viewport without touching the run.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
}

// newRun rebuilds player and managers. The RNG keeps its sequence.
func (g *Game) newRun() {
	g.difficulty = config.NewDifficultyManager(g.cfg.Level)
	g.player = NewPlayer(g.cfg.Player, g.cfg.Field)
	g.enemies = NewEnemyManager(g.rng, g.cfg.Enemies, g.cfg.Field)
	g.powerups = NewPowerUpManager(g.rng, g.cfg.PowerUps, g.cfg.Field)
	g.level = g.difficulty.Level(0)
	g.enemies.ScaleWithLevel(g.level)
	g.elapsed = 0
	g.hitsTaken = 0
	g.collected = 0
}

// Step handles screen transitions and, while playing, advances the simulation.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.measureFPS(in.DT)
	dt := g.clampDT(in.DT)

	switch g.phase {
	case PhaseStart:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionBack) {
			g.phase = PhasePlaying
		}

	case PhaseSettings:
		if in.Has(core.ActionBack) {
			g.phase = PhasePlaying
		}

	case PhaseGameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.newRun()
			g.phase = PhasePlaying
		}

	case PhasePlaying:
		if in.Has(core.ActionBack) {
			g.phase = PhaseSettings
			break
		}
		g.simulate(dt, in)
	}

	return core.StepResult{State: g.State()}
}

// simulate runs one frame of the gameplay pipeline.
func (g *Game) simulate(dt float64, in core.InputFrame) {
	g.elapsed += dt
	g.player.Update(dt, in, g.runtime.ScreenW)

	g.level = g.difficulty.Level(g.player.Score)
	g.enemies.ScaleWithLevel(g.level)
	g.enemies.Update(dt, g.player, g.level)
	g.hitsTaken += g.enemies.Collision(g.player)

	g.powerups.Update(dt)
	g.collected += len(g.powerups.Collision(g.player))

	if !g.player.Alive() {
		g.phase = PhaseGameOver
	}
}

func (g *Game) clampDT(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if g.runtime.MaxDT > 0 && dt > g.runtime.MaxDT {
		return g.runtime.MaxDT
	}
	return dt
}

func (g *Game) measureFPS(dt float64) {
	if dt <= 0 {
		return
	}
	sample := 1 / dt
	if g.fps == 0 {
		g.fps = sample
		return
	}
	g.fps += (sample - g.fps) * fpsSmoothing
}

// Phase returns the current screen.
func (g *Game) Phase() Phase {
	return g.phase
}

// Player returns the player.
func (g *Game) Player() *Player {
	return g.player
}

// Level returns the level computed on the last simulated frame.
func (g *Game) Level() int {
	return g.level
}

// FPS returns the smoothed measured frame rate.
func (g *Game) FPS() float64 {
	return g.fps
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.player != nil {
		score = int(g.player.Score)
	}
	return core.GameState{
		Score:    score,
		Level:    g.level,
		Phase:    g.phase.String(),
		Survived: g.elapsed,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhaseStart || g.phase == PhaseSettings,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
