package system

import (
	"log/slog"
	"math/rand"

	"github.com/younwookim/flipstrike/internal/domain/entity"
	"github.com/younwookim/flipstrike/internal/infrastructure/config"
)

// CombatSystem owns the enemy pool, spawns enemies with rising difficulty and
// applies attack and contact damage.
type CombatSystem struct {
	combat  config.CombatConfig
	spawner config.SpawnerConfig
	physics config.PhysicsConfig
	iframes float64
	screenW float64
	rng     *rand.Rand

	enemies    []*entity.Enemy
	spawnTimer float64
	interval   float64
	speed      float64
	nextID     entity.EntityID
	kills      int

	// Event callbacks
	OnKill func(enemy *entity.Enemy)
}

// NewCombatSystem creates a combat system with a fixed-size enemy pool
func NewCombatSystem(cfg *config.GameConfig, rng *rand.Rand) *CombatSystem {
	s := &CombatSystem{
		combat:  cfg.Combat,
		spawner: cfg.Spawner,
		physics: cfg.Physics,
		iframes: cfg.Player.Iframes,
		screenW: float64(cfg.Display.ScreenWidth),
		rng:     rng,
		enemies: make([]*entity.Enemy, cfg.Spawner.PoolSize),
	}
	for i := range s.enemies {
		s.enemies[i] = entity.NewEnemy(cfg.Spawner.EnemyWidth, cfg.Spawner.EnemyHeight)
	}
	s.Reset()
	return s
}

// Reset frees every pool slot and restores the starting difficulty
func (s *CombatSystem) Reset() {
	for _, e := range s.enemies {
		e.Release()
	}
	s.interval = s.spawner.Interval
	s.speed = s.spawner.EnemySpeed
	s.spawnTimer = s.interval
	s.nextID = 0
	s.kills = 0
}

// Update spawns, moves and recycles enemies and applies contact damage
func (s *CombatSystem) Update(player *entity.Player, dt float64) {
	s.spawnTimer -= dt
	if s.spawnTimer <= 0 {
		s.Spawn()
		s.spawnTimer = s.interval
	}

	if player.IframeTimer > 0 {
		player.IframeTimer -= dt
	}

	bounds := player.Bounds()
	for _, e := range s.enemies {
		if !e.Active {
			continue
		}
		if e.HitTimer > 0 {
			e.HitTimer -= dt
		}
		e.X += e.VX * dt
		if e.X+e.W < 0 {
			e.Release()
			continue
		}
		if e.Bounds().Overlaps(bounds) {
			player.TakeDamage(e.ContactDamage, s.iframes)
		}
	}
}

// Spawn activates a free pool slot at the right edge, on the floor or the ceiling.
// It returns nil when the pool is exhausted.
func (s *CombatSystem) Spawn() *entity.Enemy {
	var slot *entity.Enemy
	for _, e := range s.enemies {
		if !e.Active {
			slot = e
			break
		}
	}
	if slot == nil {
		slog.Debug("enemy pool exhausted", "size", len(s.enemies))
		return nil
	}

	y := s.physics.FloorY - slot.H
	if s.rng.Intn(2) == 0 {
		y = s.physics.CeilingY
	}

	s.nextID++
	slot.Spawn(s.nextID, s.screenW, y, s.spawner.EnemyHealth, s.spawner.ContactDamage, s.speed)

	s.interval = max(s.spawner.MinInterval, s.interval-s.spawner.IntervalDecay)
	s.speed += s.spawner.SpeedRamp
	return slot
}

// LightAttack damages enemies within the light attack radius of the player
func (s *CombatSystem) LightAttack(player *entity.Player) int {
	return s.radialDamage(player, s.combat.Light)
}

// ChargedAttack damages enemies within the charged attack radius of the player
func (s *CombatSystem) ChargedAttack(player *entity.Player) int {
	return s.radialDamage(player, s.combat.Charged)
}

// radialDamage hits every active enemy whose box is within radius of the
// player's center and returns the number hit.
func (s *CombatSystem) radialDamage(player *entity.Player, attack config.AttackConfig) int {
	cx, cy := player.Bounds().Center()
	r2 := attack.Radius * attack.Radius

	hit := 0
	for _, e := range s.enemies {
		if !e.IsAlive() {
			continue
		}
		if e.Bounds().DistanceTo(cx, cy) > r2 {
			continue
		}
		hit++
		if e.TakeDamage(attack.Damage) {
			s.kills++
			if s.OnKill != nil {
				s.OnKill(e)
			}
		}
	}
	return hit
}

// ActiveEnemies returns the enemies currently in play
func (s *CombatSystem) ActiveEnemies() []*entity.Enemy {
	active := make([]*entity.Enemy, 0, len(s.enemies))
	for _, e := range s.enemies {
		if e.Active {
			active = append(active, e)
		}
	}
	return active
}

// Kills returns the number of enemies killed since the last reset
func (s *CombatSystem) Kills() int {
	return s.kills
}

// SpawnInterval returns the current time between spawns
func (s *CombatSystem) SpawnInterval() float64 {
	return s.interval
}

// EnemySpeed returns the speed the next spawned enemy will move at
func (s *CombatSystem) EnemySpeed() float64 {
	return s.speed
}
