package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"wolfcore/model"
)

var keyBindings = []struct {
	flag model.ControlState
	keys []ebiten.Key
}{
	{model.Forward, []ebiten.Key{ebiten.KeyW, ebiten.KeyUp}},
	{model.Backward, []ebiten.Key{ebiten.KeyS, ebiten.KeyDown}},
	{model.TurningLeft, []ebiten.Key{ebiten.KeyLeft, ebiten.KeyQ}},
	{model.TurningRight, []ebiten.Key{ebiten.KeyRight, ebiten.KeyE}},
	{model.StrafingLeft, []ebiten.Key{ebiten.KeyA}},
	{model.StrafingRight, []ebiten.Key{ebiten.KeyD}},
	{model.Fire, []ebiten.Key{ebiten.KeyControlLeft, ebiten.KeyControlRight}},
	{model.Action, []ebiten.Key{ebiten.KeySpace}},
	{model.Weapon0, []ebiten.Key{ebiten.KeyDigit1}},
	{model.Weapon1, []ebiten.Key{ebiten.KeyDigit2}},
	{model.Weapon2, []ebiten.Key{ebiten.KeyDigit3}},
	{model.Weapon3, []ebiten.Key{ebiten.KeyDigit4}},
}

// handleInput samples the keyboard into g.controls. Escape ends the game loop.
func (g *Game) handleInput() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// if p, pause game
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showMap = !g.showMap
	}

	controls := model.NoControl
	for _, b := range keyBindings {
		pressed := false
		for _, k := range b.keys {
			if ebiten.IsKeyPressed(k) {
				pressed = true
				break
			}
		}
		controls = controls.With(b.flag, pressed)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		controls = controls.With(model.Fire, true)
	}
	// one weapon per key press or wheel notch
	if _, wheel := ebiten.Wheel(); wheel != 0 || inpututil.IsKeyJustPressed(ebiten.KeyR) {
		controls = controls.With(model.CycleWeapon, true)
	}
	g.controls = controls
	return nil
}

// justPressed reports flags whose keys went down this tick.
func justPressed(flag model.ControlState) bool {
	for _, b := range keyBindings {
		if b.flag != flag {
			continue
		}
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				return true
			}
		}
	}
	return false
}
