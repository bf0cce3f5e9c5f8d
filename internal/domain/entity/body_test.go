package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayer(t *testing.T) {
	player := NewPlayer(64, 180, 12, 16, 5)

	require.NotNil(t, player)
	assert.Equal(t, 64.0, player.X)
	assert.Equal(t, 180.0, player.Y)
	assert.Equal(t, 5, player.Health)
	assert.Equal(t, 5, player.MaxHealth)
	assert.Equal(t, GravityDown, player.GravityDir)
	assert.True(t, player.FacingRight)
	assert.False(t, player.Mirrored)
}

func TestPlayer_FlipGravity(t *testing.T) {
	player := NewPlayer(0, 0, 12, 16, 5)
	player.OnSurface = true

	player.FlipGravity()
	assert.Equal(t, GravityUp, player.GravityDir)
	assert.True(t, player.Mirrored)
	assert.False(t, player.OnSurface)

	player.FlipGravity()
	assert.Equal(t, GravityDown, player.GravityDir)
	assert.False(t, player.Mirrored)
}

func TestPlayer_TakeDamage(t *testing.T) {
	player := NewPlayer(0, 0, 12, 16, 3)

	assert.True(t, player.TakeDamage(1, 1.0))
	assert.Equal(t, 2, player.Health)
	assert.True(t, player.IsInvincible())

	assert.False(t, player.TakeDamage(1, 1.0), "iframes block damage")
	assert.Equal(t, 2, player.Health)

	player.IframeTimer = 0
	assert.True(t, player.TakeDamage(5, 1.0))
	assert.Equal(t, 0, player.Health)
	assert.False(t, player.IsAlive())
}

func TestRect_Overlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	assert.True(t, a.Overlaps(Rect{X: 5, Y: 5, W: 10, H: 10}))
	assert.False(t, a.Overlaps(Rect{X: 10, Y: 0, W: 5, H: 5}), "touching edges do not overlap")
	assert.False(t, a.Overlaps(Rect{X: 20, Y: 20, W: 5, H: 5}))
}

func TestRect_DistanceTo(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 10, H: 10}

	assert.Equal(t, 0.0, r.DistanceTo(15, 15), "inside")
	assert.Equal(t, 25.0, r.DistanceTo(25, 15), "right of the box")
	assert.Equal(t, 50.0, r.DistanceTo(5, 5), "diagonal corner")

	cx, cy := r.Center()
	assert.Equal(t, 15.0, cx)
	assert.Equal(t, 15.0, cy)
}
