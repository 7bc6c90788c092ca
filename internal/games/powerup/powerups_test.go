package powerup

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/powerup-arcade/internal/config"
)

func newTestPowerUps(seed int64) *PowerUpManager {
	cfg := config.DefaultPowerUpConfig()
	return NewPowerUpManager(rand.New(rand.NewSource(seed)), cfg.PowerUps, cfg.Field)
}

func TestPowerUpSpawnInterval(t *testing.T) {
	pm := newTestPowerUps(1)

	for i := 0; i < 3; i++ {
		pm.Update(1)
	}
	if len(pm.PowerUps()) != 0 {
		t.Fatal("spawned before 4 seconds")
	}

	pm.Update(1)
	if len(pm.PowerUps()) != 1 {
		t.Fatalf("expected 1 power-up after 4s, got %d", len(pm.PowerUps()))
	}
	p := pm.PowerUps()[0]
	// Spawned at -40, then moved 200*1 in the same update
	if p.Y != 160 {
		t.Errorf("Y = %g, expected 160", p.Y)
	}
	if p.X < 0 || p.X > 960 {
		t.Errorf("X = %g outside [0, 960]", p.X)
	}
}

func TestPowerUpKindsAreUniform(t *testing.T) {
	pm := newTestPowerUps(9)
	pm.cfg.FallSpeed = 0 // Keep every spawn on the field
	counts := make(map[Kind]int)

	for i := 0; i < 300; i++ {
		pm.Update(4)
		ps := pm.PowerUps()
		counts[ps[len(ps)-1].Kind]++
	}

	for k := KindHP; k < KindCount; k++ {
		if counts[k] < 60 {
			t.Errorf("kind %s spawned %d/300 times", k, counts[k])
		}
	}
}

func TestPowerUpsDespawnBelowField(t *testing.T) {
	pm := newTestPowerUps(1)
	pm.powerups = []PowerUp{
		{X: 0, Y: 590, Kind: KindHP},
		{X: 0, Y: 300, Kind: KindSpeed},
	}

	pm.Update(0.1)

	if len(pm.PowerUps()) != 1 {
		t.Fatalf("expected 1 power-up left, got %d", len(pm.PowerUps()))
	}
	if pm.PowerUps()[0].Kind != KindSpeed {
		t.Error("wrong power-up removed")
	}
}

func TestPowerUpEffects(t *testing.T) {
	tests := []struct {
		kind   Kind
		health int
		speed  bool
		shield bool
	}{
		{KindHP, 60, false, false},
		{KindSpeed, 10, true, false},
		{KindShield, 10, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			pm := newTestPowerUps(1)
			p := newTestPlayer()
			pm.powerups = []PowerUp{{X: p.X, Y: p.Y, Kind: tc.kind}}

			collected := pm.Collision(p)

			if len(collected) != 1 || collected[0] != tc.kind {
				t.Errorf("collected = %v, expected [%s]", collected, tc.kind)
			}
			if len(pm.PowerUps()) != 0 {
				t.Error("collected power-up should be removed")
			}
			if p.Health != tc.health {
				t.Errorf("health = %d, expected %d", p.Health, tc.health)
			}
			if p.SpeedBoost != tc.speed || p.Shield != tc.shield {
				t.Errorf("speed=%v shield=%v, expected %v %v", p.SpeedBoost, p.Shield, tc.speed, tc.shield)
			}
		})
	}
}

func TestHealthHasNoCap(t *testing.T) {
	pm := newTestPowerUps(1)
	p := newTestPlayer()
	for i := 0; i < 5; i++ {
		pm.powerups = append(pm.powerups, PowerUp{X: p.X, Y: p.Y, Kind: KindHP})
	}
	pm.Collision(p)
	if p.Health != 260 {
		t.Errorf("health = %d, expected 260", p.Health)
	}
}

func TestSpeedPickupRestartsTimer(t *testing.T) {
	pm := newTestPowerUps(1)
	p := newTestPlayer()

	pm.powerups = []PowerUp{{X: p.X, Y: p.Y, Kind: KindSpeed}}
	pm.Collision(p)
	p.Update(2, input(), 100)
	if p.SpeedTimer != 3 {
		t.Fatalf("timer = %g, expected 3", p.SpeedTimer)
	}

	pm.powerups = []PowerUp{{X: p.X, Y: p.Y, Kind: KindSpeed}}
	pm.Collision(p)
	if p.SpeedTimer != 5 {
		t.Errorf("second speed pickup: timer = %g, expected reset to 5", p.SpeedTimer)
	}

	// Two at once still cap at the duration
	pm.powerups = []PowerUp{{X: p.X, Y: p.Y, Kind: KindSpeed}, {X: p.X, Y: p.Y, Kind: KindSpeed}}
	pm.Collision(p)
	if p.SpeedTimer != 5 {
		t.Errorf("stacked pickups: timer = %g, expected 5", p.SpeedTimer)
	}
}

func TestPowerUpMissesPlayer(t *testing.T) {
	pm := newTestPowerUps(1)
	p := newTestPlayer()
	pm.powerups = []PowerUp{{X: p.X + p.Size(), Y: p.Y, Kind: KindHP}} // Touching edge only

	if got := pm.Collision(p); len(got) != 0 {
		t.Errorf("edge contact should not collect, got %v", got)
	}
	if len(pm.PowerUps()) != 1 {
		t.Error("uncollected power-up should remain")
	}
}
