package powerup

import (
	"github.com/vovakirdan/powerup-arcade/internal/config"
	"github.com/vovakirdan/powerup-arcade/internal/core"
)

// Player is the block the user steers along the bottom of the field.
type Player struct {
	X, Y   float64
	Health int
	Score  float64

	SpeedBoost  bool
	SpeedTimer  float64 // Seconds of boost left
	Shield      bool
	ShieldTimer float64 // Seconds of shield left

	cfg   config.PlayerConfig
	field config.FieldConfig
}

// NewPlayer creates a player centered horizontally near the field bottom.
func NewPlayer(cfg config.PlayerConfig, field config.FieldConfig) *Player {
	p := &Player{
		X:      field.Width / 2,
		Y:      field.Height - cfg.BottomOffset,
		Health: cfg.StartHealth,
		cfg:    cfg,
		field:  field,
	}
	p.X = core.ClampF(p.X, 0, p.maxX())
	return p
}

// Size returns the side length of the player's square.
func (p *Player) Size() float64 {
	return p.cfg.Size
}

// Rect returns the player's bounding box.
func (p *Player) Rect() core.Box {
	return core.Square(p.X, p.Y, p.cfg.Size)
}

func (p *Player) maxX() float64 {
	return p.field.Width - p.cfg.Size
}

// speed returns the current horizontal keyboard speed.
func (p *Player) speed() float64 {
	if p.SpeedBoost {
		return p.cfg.BoostSpeed
	}
	return p.cfg.Speed
}

// Update advances the player by dt seconds.
// viewportWidth is the width of the surface the pointer position is measured in.
func (p *Player) Update(dt float64, in core.InputFrame, viewportWidth int) {
	speed := p.speed()

	if in.Has(core.ActionLeft) {
		p.X -= speed * dt
	}
	if in.Has(core.ActionRight) {
		p.X += speed * dt
	}

	// Spring toward the pointer; can overshoot when dt is large, the clamp below bounds it.
	if in.HasPointer && viewportWidth > 0 {
		targetX := float64(in.PointerX) / float64(viewportWidth) * p.field.Width
		p.X += (targetX - p.X - p.cfg.Size/2) * p.cfg.FollowGain * dt
	}

	p.X = core.ClampF(p.X, 0, p.maxX())

	p.Score += p.cfg.ScorePerSec * dt

	if p.SpeedBoost {
		p.SpeedTimer -= dt
		if p.SpeedTimer <= 0 {
			p.SpeedBoost = false
		}
	}
	if p.Shield {
		p.ShieldTimer -= dt
		if p.ShieldTimer <= 0 {
			p.Shield = false
		}
	}
}

// ApplyDamage subtracts n health unless the shield is up.
// Reports whether the hit landed.
func (p *Player) ApplyDamage(n int) bool {
	if p.Shield {
		return false
	}
	p.Health -= n
	return true
}

// GrantSpeedBoost starts or restarts the speed boost for d seconds.
func (p *Player) GrantSpeedBoost(d float64) {
	p.SpeedBoost = true
	p.SpeedTimer = d
}

// GrantShield starts or restarts the shield for d seconds.
func (p *Player) GrantShield(d float64) {
	p.Shield = true
	p.ShieldTimer = d
}

// Alive reports whether the player still has health left.
func (p *Player) Alive() bool {
	return p.Health > 0
}
