package entity

// Enemy represents a pooled enemy. Inactive enemies are free pool slots.
type Enemy struct {
	ID EntityID
	Body
	Active bool

	MaxHealth     int
	Health        int
	ContactDamage int
	MoveSpeed     float64

	HitTimer float64
}

// NewEnemy creates an inactive enemy slot
func NewEnemy(w, h float64) *Enemy {
	return &Enemy{Body: Body{W: w, H: h}}
}

// Spawn activates the slot at the given position
func (e *Enemy) Spawn(id EntityID, x, y float64, health, contactDamage int, speed float64) {
	e.ID = id
	e.X = x
	e.Y = y
	e.VX = -speed
	e.MoveSpeed = speed
	e.MaxHealth = health
	e.Health = health
	e.ContactDamage = contactDamage
	e.HitTimer = 0
	e.Active = true
}

// TakeDamage applies damage to the enemy and returns true if it died
func (e *Enemy) TakeDamage(damage int) bool {
	e.Health -= damage
	e.HitTimer = 0.2 // Hit flash
	if e.Health <= 0 {
		e.Active = false
		return true
	}
	return false
}

// IsAlive returns true if enemy is still alive
func (e *Enemy) IsAlive() bool {
	return e.Health > 0 && e.Active
}

// Release returns the slot to the pool
func (e *Enemy) Release() {
	e.Active = false
}
