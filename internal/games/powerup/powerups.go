package powerup

import (
	"math/rand"

	"github.com/vovakirdan/powerup-arcade/internal/config"
	"github.com/vovakirdan/powerup-arcade/internal/core"
)

// Kind is the effect category of a power-up.
type Kind int

const (
	KindHP     Kind = iota // Restores health
	KindSpeed              // Temporary speed boost
	KindShield             // Temporary damage immunity
	KindCount              // Sentinel for counting kinds
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindHP:
		return "hp"
	case KindSpeed:
		return "speed"
	case KindShield:
		return "shield"
	default:
		return "?"
	}
}

// Glyph returns the display character for the kind.
func (k Kind) Glyph() rune {
	switch k {
	case KindHP:
		return '+'
	case KindSpeed:
		return '»'
	case KindShield:
		return '◊'
	default:
		return '?'
	}
}

// Color returns the display color for the kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindHP:
		return core.ColorGreen
	case KindSpeed:
		return core.ColorYellow
	default:
		return core.ColorMagenta
	}
}

// PowerUp is a falling collectible.
type PowerUp struct {
	X, Y float64
	Kind Kind
}

// PowerUpManager handles spawning, movement, pickup and removal of power-ups.
type PowerUpManager struct {
	powerups []PowerUp
	rng      *rand.Rand
	cfg      config.PowerUpsConfig
	field    config.FieldConfig
	timer    float64
}

// NewPowerUpManager creates a power-up manager with the given RNG.
func NewPowerUpManager(rng *rand.Rand, cfg config.PowerUpsConfig, field config.FieldConfig) *PowerUpManager {
	return &PowerUpManager{
		powerups: make([]PowerUp, 0, 8),
		rng:      rng,
		cfg:      cfg,
		field:    field,
	}
}

// PowerUps returns the active power-ups.
func (pm *PowerUpManager) PowerUps() []PowerUp {
	return pm.powerups
}

// Size returns the side length of a power-up square.
func (pm *PowerUpManager) Size() float64 {
	return pm.cfg.Size
}

// Update spawns on the fixed interval, moves power-ups down and drops the
// ones that left the field.
func (pm *PowerUpManager) Update(dt float64) {
	pm.timer += dt
	if pm.timer >= pm.cfg.SpawnInterval {
		pm.timer = 0
		pm.powerups = append(pm.powerups, PowerUp{
			X:    pm.rng.Float64() * (pm.field.Width - pm.cfg.Size),
			Y:    -pm.cfg.Size,
			Kind: Kind(pm.rng.Intn(int(KindCount))),
		})
	}

	kept := pm.powerups[:0]
	for _, p := range pm.powerups {
		p.Y += pm.cfg.FallSpeed * dt
		if p.Y > pm.field.Height {
			continue
		}
		kept = append(kept, p)
	}
	pm.powerups = kept
}

// Collision applies and removes every power-up touching the player.
// Returns the kinds collected this frame.
func (pm *PowerUpManager) Collision(player *Player) []Kind {
	var collected []Kind
	playerRect := player.Rect()

	kept := pm.powerups[:0]
	for _, p := range pm.powerups {
		if !playerRect.Intersects(core.Square(p.X, p.Y, pm.cfg.Size)) {
			kept = append(kept, p)
			continue
		}
		pm.apply(p.Kind, player)
		collected = append(collected, p.Kind)
	}
	pm.powerups = kept

	return collected
}

func (pm *PowerUpManager) apply(k Kind, player *Player) {
	switch k {
	case KindHP:
		player.Health += pm.cfg.HealthBonus
	case KindSpeed:
		player.GrantSpeedBoost(pm.cfg.EffectDuration)
	case KindShield:
		player.GrantShield(pm.cfg.EffectDuration)
	}
}
