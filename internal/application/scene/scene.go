// Package scene defines the Scene interface for game screens.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one game screen driven by the Game loop.
type Scene interface {
	// Update advances the scene by dt seconds.
	// It returns the next scene to switch to, or nil to stay.
	// A non-nil error terminates the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called each time the scene becomes current.
	OnEnter()

	// OnExit is called when the scene stops being current.
	OnExit()
}
