package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	crosshairColor = color.RGBA{255, 255, 255, 180}
	hitColor       = color.RGBA{255, 40, 40, 255}
)

// Crosshairs marks the screen centre. The hit indicator turns it red for a few
// ticks after a shot that had a target in front of the player.
type Crosshairs struct {
	size     float32
	hitTimer int
}

func NewCrosshairs(size float32) *Crosshairs {
	return &Crosshairs{size: size}
}

func (c *Crosshairs) ActivateHitIndicator(hitTime int) {
	c.hitTimer = hitTime
}

func (c *Crosshairs) IsHitIndicatorActive() bool {
	return c.hitTimer > 0
}

func (c *Crosshairs) Update() {
	if c.hitTimer > 0 {
		c.hitTimer--
	}
}

func (c *Crosshairs) Draw(screen *ebiten.Image) {
	clr := crosshairColor
	if c.IsHitIndicatorActive() {
		clr = hitColor
	}
	b := screen.Bounds()
	cx, cy := float32(b.Dx())/2, float32(b.Dy())/2
	gap := c.size / 3
	vector.StrokeLine(screen, cx-c.size, cy, cx-gap, cy, 2, clr, false)
	vector.StrokeLine(screen, cx+gap, cy, cx+c.size, cy, 2, clr, false)
	vector.StrokeLine(screen, cx, cy-c.size, cx, cy-gap, 2, clr, false)
	vector.StrokeLine(screen, cx, cy+gap, cx, cy+c.size, 2, clr, false)
}
