package powerup

import (
	"math/rand"

	"github.com/vovakirdan/powerup-arcade/internal/config"
	"github.com/vovakirdan/powerup-arcade/internal/core"
)

// Pattern is an enemy's movement rule.
type Pattern int

const (
	PatternStraight Pattern = iota // Falls straight down
	PatternZigzag                  // Falls while bouncing between the side walls
	PatternHoming                  // Falls while chasing the player horizontally
)

// String returns the name of the pattern.
func (p Pattern) String() string {
	switch p {
	case PatternStraight:
		return "straight"
	case PatternZigzag:
		return "zigzag"
	case PatternHoming:
		return "homing"
	default:
		return "?"
	}
}

// Glyph returns the display character for the pattern.
func (p Pattern) Glyph() rune {
	switch p {
	case PatternStraight:
		return '█'
	case PatternZigzag:
		return '▓'
	case PatternHoming:
		return '▒'
	default:
		return '?'
	}
}

// Color returns the display color for the pattern.
func (p Pattern) Color() core.Color {
	switch p {
	case PatternStraight:
		return core.ColorRed
	case PatternZigzag:
		return core.ColorYellow
	default:
		return core.ColorMagenta
	}
}

// patternTier unlocks a set of patterns from MinLevel upward.
type patternTier struct {
	MinLevel int
	Patterns []Pattern
}

// patternTable lists tiers in descending MinLevel order.
type patternTable []patternTier

// newPatternTable builds the level→unlocked-set table from config.
func newPatternTable(cfg config.EnemyConfig) patternTable {
	return patternTable{
		{MinLevel: cfg.HomingFromLevel, Patterns: []Pattern{PatternStraight, PatternZigzag, PatternHoming}},
		{MinLevel: cfg.ZigzagFromLevel, Patterns: []Pattern{PatternStraight, PatternZigzag}},
		{MinLevel: 0, Patterns: []Pattern{PatternStraight}},
	}
}

// Unlocked returns the patterns available at the given level.
func (t patternTable) Unlocked(level int) []Pattern {
	for _, tier := range t {
		if level >= tier.MinLevel {
			return tier.Patterns
		}
	}
	return t[len(t)-1].Patterns
}

// Enemy is a falling block that damages the player on contact.
type Enemy struct {
	X, Y    float64
	Pattern Pattern
	Dir     float64 // -1 or +1; horizontal direction for zigzag
}

// EnemyManager handles spawning, movement, and removal of enemies.
type EnemyManager struct {
	enemies    []Enemy
	rng        *rand.Rand
	cfg        config.EnemyConfig
	field      config.FieldConfig
	patterns   patternTable
	spawnTimer float64
	spawnDelay float64
	speed      float64
}

// NewEnemyManager creates an enemy manager with the given RNG.
func NewEnemyManager(rng *rand.Rand, cfg config.EnemyConfig, field config.FieldConfig) *EnemyManager {
	return &EnemyManager{
		enemies:    make([]Enemy, 0, 32),
		rng:        rng,
		cfg:        cfg,
		field:      field,
		patterns:   newPatternTable(cfg),
		spawnDelay: cfg.BaseSpawnDelay,
		speed:      cfg.BaseSpeed,
	}
}

// Enemies returns the active enemies.
func (em *EnemyManager) Enemies() []Enemy {
	return em.enemies
}

// Size returns the side length of an enemy square.
func (em *EnemyManager) Size() float64 {
	return em.cfg.Size
}

// SpawnDelay returns the current seconds between spawns.
func (em *EnemyManager) SpawnDelay() float64 {
	return em.spawnDelay
}

// Speed returns the current fall speed.
func (em *EnemyManager) Speed() float64 {
	return em.speed
}

// ScaleWithLevel sets spawn rate and fall speed for the level.
func (em *EnemyManager) ScaleWithLevel(level int) {
	em.spawnDelay = config.SpawnDelay(em.cfg, level)
	em.speed = config.EnemySpeed(em.cfg, level)
}

// Update spawns on the timer and moves every enemy by its pattern.
func (em *EnemyManager) Update(dt float64, player *Player, level int) {
	em.spawnTimer += dt
	if em.spawnTimer >= em.spawnDelay {
		em.spawnTimer = 0
		em.spawn(level)
	}

	maxX := em.field.Width - em.cfg.Size
	lateral := em.cfg.LateralSpeed * dt

	for i := range em.enemies {
		e := &em.enemies[i]
		e.Y += em.speed * dt

		switch e.Pattern {
		case PatternZigzag:
			e.X += e.Dir * lateral
			if e.X <= 0 {
				e.X, e.Dir = 0, 1
			} else if e.X >= maxX {
				e.X, e.Dir = maxX, -1
			}
		case PatternHoming:
			if player.X > e.X {
				e.X += lateral
			} else {
				e.X -= lateral
			}
		}
	}
}

// spawn adds one enemy above the field with a pattern unlocked at level.
func (em *EnemyManager) spawn(level int) {
	choices := em.patterns.Unlocked(level)
	dir := 1.0
	if em.rng.Intn(2) == 0 {
		dir = -1
	}
	em.enemies = append(em.enemies, Enemy{
		X:       em.rng.Float64() * (em.field.Width - em.cfg.Size),
		Y:       -em.cfg.Size,
		Pattern: choices[em.rng.Intn(len(choices))],
		Dir:     dir,
	})
}

// Collision removes enemies touching the player or below the field.
// Touching enemies deal damage unless the player is shielded.
// Returns the number of enemies that hit the player.
func (em *EnemyManager) Collision(player *Player) int {
	hits := 0
	playerRect := player.Rect()

	kept := em.enemies[:0]
	for _, e := range em.enemies {
		if playerRect.Intersects(core.Square(e.X, e.Y, em.cfg.Size)) {
			player.ApplyDamage(em.cfg.Damage)
			hits++
			continue
		}
		if e.Y > em.field.Height {
			continue
		}
		kept = append(kept, e)
	}
	em.enemies = kept

	return hits
}
