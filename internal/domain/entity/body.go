package entity

// Body represents the physical body of an entity.
// Position is the top-left corner in pixels.
type Body struct {
	X, Y float64
	VX   float64
	VY   float64
	W, H float64

	// OnSurface is true while resting on the floor or ceiling it falls toward.
	OnSurface   bool
	FacingRight bool
	GravityDir  float64
}

// Bounds returns the body's box
func (b *Body) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Player represents the player entity
type Player struct {
	Body

	Health    int
	MaxHealth int

	// Timers
	IframeTimer float64

	// Charging is set between ChargeStart and the charged release; drives the charge tint.
	Charging bool
	// Mirrored is true while the sprite is drawn upside down.
	Mirrored bool
}

// NewPlayer creates a player standing on the floor side of the world
func NewPlayer(x, y, w, h float64, maxHealth int) *Player {
	return &Player{
		Body: Body{
			X:           x,
			Y:           y,
			W:           w,
			H:           h,
			FacingRight: true,
			GravityDir:  GravityDown,
		},
		Health:    maxHealth,
		MaxHealth: maxHealth,
	}
}

// FlipGravity inverts gravity and mirrors the player's orientation
func (p *Player) FlipGravity() {
	p.GravityDir = -p.GravityDir
	p.Mirrored = p.GravityDir == GravityUp
	p.OnSurface = false
}

// IsInvincible returns true if player is currently invincible
func (p *Player) IsInvincible() bool {
	return p.IframeTimer > 0
}

// TakeDamage applies damage unless invincible and starts the iframe timer.
// Returns true if damage was applied.
func (p *Player) TakeDamage(damage int, iframes float64) bool {
	if p.IsInvincible() || damage <= 0 {
		return false
	}
	p.Health -= damage
	if p.Health < 0 {
		p.Health = 0
	}
	p.IframeTimer = iframes
	return true
}

// IsAlive returns true while the player has health left
func (p *Player) IsAlive() bool {
	return p.Health > 0
}
