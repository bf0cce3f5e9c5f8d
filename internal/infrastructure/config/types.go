package config

import (
	"time"

	"github.com/younwookim/flipstrike/internal/domain/gesture"
)

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display     DisplayConfig     `yaml:"display"`
	Gesture     GestureConfig     `yaml:"gesture"`
	ChargeMeter ChargeMeterConfig `yaml:"chargeMeter"`
	Player      PlayerConfig      `yaml:"player"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Combat      CombatConfig      `yaml:"combat"`
	Spawner     SpawnerConfig     `yaml:"spawner"`
	Logging     LoggingConfig     `yaml:"logging"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`
	Scale        int `yaml:"scale"`
	Framerate    int `yaml:"framerate"`
}

// GestureConfig holds the classifier windows in seconds
type GestureConfig struct {
	HoldThreshold   float64 `yaml:"holdThreshold"`
	DoubleTapWindow float64 `yaml:"doubleTapWindow"`
}

// Classifier converts the windows to a gesture.Config
func (g GestureConfig) Classifier() gesture.Config {
	return gesture.Config{
		HoldThreshold:   Seconds(g.HoldThreshold),
		DoubleTapWindow: Seconds(g.DoubleTapWindow),
	}
}

// ChargeMeterConfig configures the charge meter UI
type ChargeMeterConfig struct {
	// MaxVisualChargeTime is the charge duration (seconds) at which the meter is full
	MaxVisualChargeTime float64 `yaml:"maxVisualChargeTime"`
}

type PlayerConfig struct {
	X         float64 `yaml:"x"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	MaxHealth int     `yaml:"maxHealth"`
	Iframes   float64 `yaml:"iframes"`
}

type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"maxFallSpeed"`
	FloorY       float64 `yaml:"floorY"`
	CeilingY     float64 `yaml:"ceilingY"`
}

type CombatConfig struct {
	Light   AttackConfig `yaml:"light"`
	Charged AttackConfig `yaml:"charged"`
}

// AttackConfig is a radial attack centered on the player
type AttackConfig struct {
	Radius float64 `yaml:"radius"`
	Damage int     `yaml:"damage"`
}

// SpawnerConfig configures enemy pooling and difficulty scaling
type SpawnerConfig struct {
	PoolSize    int     `yaml:"poolSize"`
	Interval    float64 `yaml:"interval"`
	MinInterval float64 `yaml:"minInterval"`
	// IntervalDecay is subtracted from the spawn interval after every spawn
	IntervalDecay float64 `yaml:"intervalDecay"`
	EnemySpeed    float64 `yaml:"enemySpeed"`
	// SpeedRamp is added to the enemy speed after every spawn
	SpeedRamp     float64 `yaml:"speedRamp"`
	EnemyHealth   int     `yaml:"enemyHealth"`
	ContactDamage int     `yaml:"contactDamage"`
	EnemyWidth    float64 `yaml:"enemyWidth"`
	EnemyHeight   float64 `yaml:"enemyHeight"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Seconds converts a seconds value from config to a time.Duration
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
