package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

func (g *Game) drawUI(screen *ebiten.Image) {
	// draw FPS/TPS counter debug display
	fps := fmt.Sprintf("FPS: %0.2f\nTPS: %0.2f/%v", ebiten.ActualFPS(), ebiten.ActualTPS(), ebiten.TPS())
	ebitenutil.DebugPrint(screen, fps)

	p := g.state.Player
	weapon := "none"
	if w, ok := p.CurrentWeapon(); ok {
		weapon = w.WeaponType.String()
	}
	status := fmt.Sprintf("%s  health %d  ammo %d  lives %d  score %d  weapon %s",
		g.level.Name, p.Health, p.Ammunition, p.Lives, p.Score, weapon)
	ebitenutil.DebugPrintAt(screen, status, 10, g.screenHeight-40)
	ebitenutil.DebugPrintAt(screen, "WASD move, arrows turn, space opens doors, ctrl fires, R cycles weapons, tab map, P pause, ESC exit", 10, g.screenHeight-20)

	if g.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED", g.screenWidth/2-20, g.screenHeight/2)
	}
}
