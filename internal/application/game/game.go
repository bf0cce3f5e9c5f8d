// Package game provides the ebiten.Game that runs the current Scene at a fixed tick rate.
package game

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/flipstrike/internal/application/scene"
	"github.com/younwookim/flipstrike/internal/infrastructure/config"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	display config.DisplayConfig
	tps     int
	dt      float64
	ticks   uint64
}

// New creates a Game running initialScene. Every Update advances the scene by
// one fixed tick of 1/framerate seconds. The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, display config.DisplayConfig) *Game {
	framerate := display.Framerate
	if framerate <= 0 {
		framerate = 60
	}
	g := &Game{
		current: initialScene,
		display: display,
		tps:     framerate,
		dt:      1.0 / float64(framerate),
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
func (g *Game) Update() error {
	g.ticks++
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	if next != nil {
		slog.Debug("scene transition", "tick", g.ticks)
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.display.ScreenWidth, g.display.ScreenHeight
}

// Run opens the window and blocks until the game ends. The current scene's
// OnExit runs once the window closes.
func (g *Game) Run(title string) error {
	scale := max(1, g.display.Scale)
	ebiten.SetWindowSize(g.display.ScreenWidth*scale, g.display.ScreenHeight*scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(g.tps)
	err := ebiten.RunGame(g)
	g.current.OnExit()
	slog.Debug("game stopped", "ticks", g.ticks)
	return err
}
