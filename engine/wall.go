package engine

import (
	"fmt"
	"math"

	"wolfcore/assets"
	"wolfcore/config"
	"wolfcore/engine/raycast"
	"wolfcore/model"
)

// -- wall rendering

// WallRenderingResult carries what the wall pass learned for the sprite pass and
// for next frame's update.
type WallRenderingResult struct {
	// perpendicular distance per column, +Inf where nothing was cast
	ZIndexes                      []float64
	WallInFrontOfPlayer           model.MapPosition
	IsDoorInFrontOfPlayer         bool
	DistanceToWallInFrontOfPlayer float64
	// index into GameState.GameObjects
	SpriteInFrontOfPlayerIndex *int
}

func NewWallRenderingResult(width int) WallRenderingResult {
	z := make([]float64, width)
	for i := range z {
		z[i] = math.Inf(1)
	}
	return WallRenderingResult{
		ZIndexes:                      z,
		WallInFrontOfPlayer:           model.MapPosition{X: -1, Y: -1},
		DistanceToWallInFrontOfPlayer: -1,
	}
}

// minimum perpendicular distance, keeps slab height finite
const minWallDistance = 1e-6

// RenderWalls casts one ray per column, or only the column strip when it is
// non-nil, and draws the textured wall slabs into buf.
func RenderWalls(buf *FrameBuffer, pack *assets.Pack, game *model.GameState, caster raycast.Caster, cfg config.Render, strip *int) (WallRenderingResult, error) {
	width, height := buf.Width, buf.Height
	result := NewWallRenderingResult(width)

	from, to := 0, width
	if strip != nil {
		from, to = *strip, *strip+1
	}
	if from < 0 || to > width {
		return result, fmt.Errorf("strip %d outside viewport of width %d", from, width)
	}

	cam := game.Camera
	shouldContinue := raycast.ShouldContinueCast(game)
	centre := width / 2

	for x := from; x < to; x++ {
		cameraX := 2.0*float64(x)/float64(width) - 1.0
		rayDirection := cam.Direction.Add(cam.Plane.Scale(cameraX))
		params := raycast.Parameters{From: cam.Position, Direction: rayDirection}

		ray := caster.Cast(game, params, shouldContinue)
		// the step caster needs more calls before this column can be drawn
		if !ray.IsComplete || !ray.IsHit {
			continue
		}

		cell := game.Cell(ray.MapHit)
		distance := ray.PerpendicularDistance()
		_, isDoor := cell.(model.Door)
		if isDoor {
			distance += cfg.DoorRecess
		}
		distance = math.Max(distance, minWallDistance)

		var wallX float64
		if ray.Side == model.NorthSouth {
			wallX = cam.Position.Y + distance*rayDirection.Y
		} else {
			wallX = cam.Position.X + distance*rayDirection.X
		}

		var (
			tex  assets.Texture
			texX int
			err  error
		)
		switch c := cell.(type) {
		case model.Wall:
			tex, err = pack.Wall(c.TextureIndex(ray.Side))
			if err != nil {
				return result, fmt.Errorf("wall at %s: %w", c.MapPosition, err)
			}
			texX = TextureX(ray.Side, rayDirection, wallX, tex.Width)
		case model.Door:
			door := game.Door(c.DoorIndex)
			tex, err = pack.Wall(door.TextureIndex)
			if err != nil {
				return result, fmt.Errorf("door at %s: %w", c.MapPosition, err)
			}
			texX = DoorTextureX(wallX, tex.Width, door.Offset)
		default:
			// turning points are only hit when asked for; nothing to draw
			continue
		}

		lineHeight := float64(height) / distance
		startY := math.Max(-lineHeight/2.0+float64(height)/2.0, 0)
		endY := math.Min(lineHeight/2.0+float64(height)/2.0, float64(height)-1)
		drawTextureColumn(buf, tex, x, texX, lineHeight, startY, endY)

		result.ZIndexes[x] = distance
		if x == centre {
			result.WallInFrontOfPlayer = ray.MapHit
			result.IsDoorInFrontOfPlayer = isDoor
			result.DistanceToWallInFrontOfPlayer = distance
		}
	}
	return result, nil
}

// TextureX maps a wall hit to a texture column. Faces seen from the positive
// side of their axis are mirrored so textures read the same from every face.
func TextureX(side model.Side, rayDirection model.Vector2D, wallX float64, textureWidth int) int {
	raw := int((wallX - math.Floor(wallX)) * float64(textureWidth))
	if side == model.NorthSouth && rayDirection.X > 0 {
		return textureWidth - raw - 1
	}
	if side == model.EastWest && rayDirection.Y < 0 {
		return textureWidth - raw - 1
	}
	return raw
}

// DoorTextureX maps a door hit to a texture column shifted by how far the door
// has slid open. Door columns are always mirrored so the panel slides the same
// way from either side, matching the solid fraction IsDoorHit tests against.
func DoorTextureX(wallX float64, textureWidth int, offset float64) int {
	raw := int((wallX - math.Floor(wallX)) * float64(textureWidth))
	x := textureWidth - raw - 1 - int(offset*float64(textureWidth)/model.DoorOffsetMax)
	if x < 0 {
		return 0
	}
	return x
}

func drawTextureColumn(buf *FrameBuffer, tex assets.Texture, x, texX int, lineHeight, startY, endY float64) {
	if tex.Width == 0 || tex.Height == 0 {
		return
	}
	step := float64(tex.Height) / lineHeight
	texPos := (startY - float64(buf.Height)/2.0 + lineHeight/2.0) * step
	rows := int(endY - startY)
	top := int(startY)
	for dy := 0; dy < rows; dy++ {
		texY := wrapRow(int(texPos+step*float64(dy)), tex.Height)
		buf.Set(x, top+dy, tex.Get(texX, texY))
	}
}

func wrapRow(v, h int) int {
	if h&(h-1) == 0 {
		return v & (h - 1)
	}
	return ((v % h) + h) % h
}
