package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"wolfcore/engine/raycast"
	"wolfcore/model"
)

const (
	minimapScale  = 8
	minimapMargin = 10
)

var (
	minimapWall    = color.RGBA{50, 50, 50, 255}
	minimapExit    = color.RGBA{0, 200, 0, 255}
	minimapFloor   = color.RGBA{200, 200, 200, 255}
	minimapTurn    = color.RGBA{170, 170, 220, 255}
	minimapDoor    = color.RGBA{220, 200, 0, 255}
	minimapOpen    = color.RGBA{120, 110, 40, 255}
	minimapVisited = color.RGBA{255, 120, 0, 160}
	minimapHit     = color.RGBA{255, 0, 0, 220}
	minimapRay     = color.RGBA{255, 255, 0, 255}
	minimapEnemy   = color.RGBA{255, 0, 0, 255}
	minimapObject  = color.RGBA{0, 120, 255, 255}
	minimapPlayer  = color.RGBA{0, 255, 255, 255}
)

// rayLine is a ray drawn on the map, in map units.
type rayLine struct {
	from, to model.Vector2D
}

// minimapOrigin is the top-left screen corner of the map, which sits in the
// top-right of the window.
func minimapOrigin(screen *ebiten.Image, m model.Map) (float32, float32) {
	return float32(screen.Bounds().Dx() - m.Width()*minimapScale - minimapMargin), minimapMargin
}

func toMinimap(ox, oy float32, p model.Vector2D) (float32, float32) {
	return ox + float32(p.X*minimapScale), oy + float32(p.Y*minimapScale)
}

// drawMinimap draws the level from above with the squares a ray has tested so
// far and the ray itself when given.
func drawMinimap(screen *ebiten.Image, state model.GameState, visited []raycast.Result, ray *rayLine) {
	ox, oy := minimapOrigin(screen, state.Map)
	s := float32(minimapScale)

	for y := 0; y < state.Map.Height(); y++ {
		for x := 0; x < state.Map.Width(); x++ {
			var tileColor color.RGBA
			switch c := state.Map[y][x].(type) {
			case model.Wall:
				tileColor = minimapWall
				if c.IsExit() {
					tileColor = minimapExit
				}
			case model.Door:
				tileColor = minimapDoor
				if state.Door(c.DoorIndex).Status != model.DoorClosed {
					tileColor = minimapOpen
				}
			case model.TurningPoint:
				tileColor = minimapTurn
			default:
				tileColor = minimapFloor
			}
			vector.DrawFilledRect(screen, ox+float32(x)*s, oy+float32(y)*s, s, s, tileColor, false)
		}
	}

	for i, r := range visited {
		c := minimapVisited
		if i == len(visited)-1 && r.IsHit {
			c = minimapHit
		}
		vector.DrawFilledRect(screen, ox+float32(r.MapHit.X)*s, oy+float32(r.MapHit.Y)*s, s, s, c, false)
	}

	for _, obj := range state.GameObjects {
		px, py := toMinimap(ox, oy, obj.Common().Position)
		c := minimapObject
		if _, ok := obj.(model.EnemyGameObject); ok {
			c = minimapEnemy
		}
		vector.DrawFilledCircle(screen, px, py, s/4, c, false)
	}

	if ray != nil {
		x1, y1 := toMinimap(ox, oy, ray.from)
		x2, y2 := toMinimap(ox, oy, ray.to)
		vector.StrokeLine(screen, x1, y1, x2, y2, 1, minimapRay, false)
	}

	drawMinimapPlayer(screen, ox, oy, state.Camera)
}

func drawMinimapPlayer(screen *ebiten.Image, ox, oy float32, cam model.Camera) {
	playerX, playerY := toMinimap(ox, oy, cam.Position)

	// calculate triangle points
	triangleSize := float32(minimapScale)
	angle := math.Atan2(cam.Direction.Y, cam.Direction.X)

	x1 := playerX + triangleSize*float32(math.Cos(angle))
	y1 := playerY + triangleSize*float32(math.Sin(angle))

	x2 := playerX + triangleSize*float32(math.Cos(angle+2.5))
	y2 := playerY + triangleSize*float32(math.Sin(angle+2.5))

	x3 := playerX + triangleSize*float32(math.Cos(angle-2.5))
	y3 := playerY + triangleSize*float32(math.Sin(angle-2.5))

	r, g, b, a := float32(minimapPlayer.R)/255, float32(minimapPlayer.G)/255, float32(minimapPlayer.B)/255, float32(1)
	vertices := []ebiten.Vertex{
		{DstX: x1, DstY: y1, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		{DstX: x2, DstY: y2, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		{DstX: x3, DstY: y3, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
	}
	screen.DrawTriangles(vertices, []uint16{0, 1, 2}, whiteSubImage, nil)
}

var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()
