package system

import (
	"log/slog"
	"math/rand"

	"github.com/younwookim/flipstrike/internal/domain/entity"
	"github.com/younwookim/flipstrike/internal/infrastructure/config"
)

func createTestConfig() *config.GameConfig {
	return &config.GameConfig{
		Display: config.DisplayConfig{
			ScreenWidth:  320,
			ScreenHeight: 240,
			Scale:        2,
			Framerate:    60,
		},
		Gesture: config.GestureConfig{
			HoldThreshold:   0.2,
			DoubleTapWindow: 0.25,
		},
		ChargeMeter: config.ChargeMeterConfig{MaxVisualChargeTime: 1.0},
		Player: config.PlayerConfig{
			X:         64,
			Width:     12,
			Height:    16,
			MaxHealth: 5,
			Iframes:   1.0,
		},
		Physics: config.PhysicsConfig{
			Gravity:      900,
			MaxFallSpeed: 420,
			FloorY:       208,
			CeilingY:     32,
		},
		Combat: config.CombatConfig{
			Light:   config.AttackConfig{Radius: 28, Damage: 1},
			Charged: config.AttackConfig{Radius: 72, Damage: 3},
		},
		Spawner: config.SpawnerConfig{
			PoolSize:      4,
			Interval:      1.0,
			MinInterval:   0.5,
			IntervalDecay: 0.1,
			EnemySpeed:    60,
			SpeedRamp:     2,
			EnemyHealth:   2,
			ContactDamage: 1,
			EnemyWidth:    12,
			EnemyHeight:   12,
		},
	}
}

func createTestPlayer(cfg *config.GameConfig) *entity.Player {
	p := entity.NewPlayer(cfg.Player.X, cfg.Physics.FloorY-cfg.Player.Height, cfg.Player.Width, cfg.Player.Height, cfg.Player.MaxHealth)
	p.OnSurface = true
	return p
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}
