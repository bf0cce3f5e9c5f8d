package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/flipstrike/internal/application/state"
)

// Colors for rendering
var (
	colorBG        = color.RGBA{26, 26, 46, 255}
	colorWall      = color.RGBA{80, 80, 100, 255}
	colorPlayer    = color.RGBA{100, 200, 100, 255}
	colorCharging  = color.RGBA{255, 170, 60, 255}
	colorHead      = color.RGBA{100, 100, 200, 255}
	colorEnemy     = color.RGBA{200, 100, 100, 255}
	colorEnemyHit  = color.RGBA{255, 255, 255, 255}
	colorAttack    = color.RGBA{255, 215, 0, 200}
	colorHealthBG  = color.RGBA{60, 60, 60, 255}
	colorHealthFG  = color.RGBA{100, 200, 100, 255}
	colorMeterFill = color.RGBA{255, 170, 60, 255}
	colorOverlay   = color.RGBA{0, 0, 0, 160}
)

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	w := float64(p.config.Display.ScreenWidth)
	ebitenutil.DrawRect(screen, 0, p.config.Physics.CeilingY-4, w, 4, colorWall)
	ebitenutil.DrawRect(screen, 0, p.config.Physics.FloorY, w, 4, colorWall)

	for _, e := range p.combatSystem.ActiveEnemies() {
		c := colorEnemy
		if e.HitTimer > 0 {
			c = colorEnemyHit
		}
		ebitenutil.DrawRect(screen, e.X, e.Y, e.W, e.H, c)
	}

	p.drawPlayer(screen)

	if p.attackFlash > 0 {
		cx, cy := p.player.Bounds().Center()
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(p.attackRadius), 1.5, colorAttack, false)
	}

	p.drawUI(screen)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, "PAUSED - ESC to resume")
	case state.StateGameOver:
		p.drawOverlay(screen, fmt.Sprintf("GAME OVER - %d kills - ENTER to restart", p.combatSystem.Kills()))
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image) {
	pl := p.player
	c := colorPlayer
	if pl.Charging {
		c = colorCharging
	}
	if pl.IsInvincible() && int(pl.IframeTimer*20)%2 == 0 {
		return // blink
	}
	ebitenutil.DrawRect(screen, pl.X, pl.Y, pl.W, pl.H, c)

	// Head marker shows orientation: away from the surface the player stands on.
	headY := pl.Y
	if pl.Mirrored {
		headY = pl.Y + pl.H - 4
	}
	ebitenutil.DrawRect(screen, pl.X+2, headY, pl.W-4, 4, colorHead)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	// HP bar
	const barW, barH = 60.0, 5.0
	ebitenutil.DrawRect(screen, 8, 8, barW, barH, colorHealthBG)
	hp := float64(p.player.Health) / float64(max(1, p.player.MaxHealth))
	ebitenutil.DrawRect(screen, 8, 8, barW*hp, barH, colorHealthFG)

	// Charge meter, only while charging
	if fill, ok := p.ChargeMeterFill(); ok {
		x := p.player.X - 4
		y := p.player.Y - 8
		if p.player.Mirrored {
			y = p.player.Y + p.player.H + 4
		}
		ebitenutil.DrawRect(screen, x, y, 20, 3, colorHealthBG)
		ebitenutil.DrawRect(screen, x, y, 20*fill, 3, colorMeterFill)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("KILLS %d  %.1fs", p.combatSystem.Kills(), p.survived), 80, 4)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, msg string) {
	w := float64(p.config.Display.ScreenWidth)
	h := float64(p.config.Display.ScreenHeight)
	ebitenutil.DrawRect(screen, 0, 0, w, h, colorOverlay)
	ebitenutil.DebugPrintAt(screen, msg, 16, int(h/2)-8)
}
