package system

import (
	"github.com/younwookim/flipstrike/internal/domain/entity"
	"github.com/younwookim/flipstrike/internal/infrastructure/config"
)

// PhysicsSystem moves the player between floor and ceiling
type PhysicsSystem struct {
	config config.PhysicsConfig
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg config.PhysicsConfig) *PhysicsSystem {
	return &PhysicsSystem{config: cfg}
}

// Update applies gravity toward the player's current surface and resolves
// contact with the floor and ceiling.
func (s *PhysicsSystem) Update(player *entity.Player, dt float64) {
	player.VY += s.config.Gravity * player.GravityDir * dt
	if player.VY > s.config.MaxFallSpeed {
		player.VY = s.config.MaxFallSpeed
	}
	if player.VY < -s.config.MaxFallSpeed {
		player.VY = -s.config.MaxFallSpeed
	}

	player.Y += player.VY * dt
	player.OnSurface = false

	if floor := s.config.FloorY - player.H; player.Y >= floor {
		player.Y = floor
		if player.GravityDir == entity.GravityDown {
			player.VY = 0
			player.OnSurface = true
		}
	}
	if player.Y <= s.config.CeilingY {
		player.Y = s.config.CeilingY
		if player.GravityDir == entity.GravityUp {
			player.VY = 0
			player.OnSurface = true
		}
	}
}

// SurfaceY returns the resting Y for a body of height h under gravity dir
func (s *PhysicsSystem) SurfaceY(h, dir float64) float64 {
	if dir == entity.GravityUp {
		return s.config.CeilingY
	}
	return s.config.FloorY - h
}
