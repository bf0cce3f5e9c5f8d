package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// GameFile is the name of the game config file inside a config directory
const GameFile = "game.yaml"

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadGame loads and validates game.yaml
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, GameFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", GameFile, err)
	}

	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", GameFile, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", GameFile, err)
	}

	return &cfg, nil
}

// Validate rejects configurations the game cannot run with.
// Gesture window errors wrap gesture.ErrInvalidConfig.
func (c *GameConfig) Validate() error {
	if err := c.Gesture.Classifier().Validate(); err != nil {
		return err
	}
	if c.Display.Framerate <= 0 {
		return fmt.Errorf("display.framerate must be positive, got %d", c.Display.Framerate)
	}
	if c.ChargeMeter.MaxVisualChargeTime <= 0 {
		return fmt.Errorf("chargeMeter.maxVisualChargeTime must be positive, got %v", c.ChargeMeter.MaxVisualChargeTime)
	}
	if c.Physics.FloorY <= c.Physics.CeilingY {
		return fmt.Errorf("physics.floorY (%v) must be below physics.ceilingY (%v)", c.Physics.FloorY, c.Physics.CeilingY)
	}
	if c.Spawner.PoolSize <= 0 {
		return fmt.Errorf("spawner.poolSize must be positive, got %d", c.Spawner.PoolSize)
	}
	return nil
}
