package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/flipstrike/internal/domain/gesture"
)

// InputSystem samples the single gesture button
type InputSystem struct {
	key ebiten.Key
}

// NewInputSystem creates an input system reading key as the gesture button
func NewInputSystem(key ebiten.Key) *InputSystem {
	return &InputSystem{key: key}
}

// GetInput reads this tick's edges for the gesture button
func (s *InputSystem) GetInput() gesture.Input {
	return Edges(
		inpututil.IsKeyJustPressed(s.key),
		ebiten.IsKeyPressed(s.key),
		inpututil.IsKeyJustReleased(s.key),
	)
}

// Edges builds a tick's input from the raw just-pressed, down and just-released
// samples. Held is only reported on ticks after the press-down edge.
func Edges(justPressed, down, justReleased bool) gesture.Input {
	return gesture.Input{
		Pressed:  justPressed,
		Held:     down && !justPressed,
		Released: justReleased,
	}
}
