package engine

import (
	"fmt"
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"wolfcore/assets"
	"wolfcore/config"
	"wolfcore/model"
)

// -- sprite rendering

const spriteQuadrants = 8

// RenderSpriteObjects draws every object as a camera-facing billboard, occluded
// by the wall z-buffer. Objects must already be sorted farthest first. It returns
// the index of the nearest bullet-stopping object drawn within the firing
// tolerance of the screen centre.
func RenderSpriteObjects(buf *FrameBuffer, pack *assets.Pack, game *model.GameState, walls WallRenderingResult, cfg config.Render) (*int, error) {
	var inFront *int
	for i, obj := range game.GameObjects {
		hit, err := renderObject(buf, pack, game.Camera, obj, walls.ZIndexes, cfg.FiringTolerance)
		if err != nil {
			return inFront, err
		}
		if hit && obj.Common().CollidesWithBullets {
			index := i
			inFront = &index
		}
	}
	return inFront, nil
}

// CameraTransform projects a world position into camera space with the inverse
// of the [direction; plane] basis. transformY is the depth.
func CameraTransform(cam model.Camera, position model.Vector2D) (transformX, transformY float64) {
	rel := position.Sub(cam.Position)
	invDet := 1.0 / (cam.Plane.X*cam.Direction.Y - cam.Direction.X*cam.Plane.Y)
	transformX = invDet * (cam.Direction.Y*rel.X - cam.Direction.X*rel.Y)
	transformY = invDet * (-cam.Plane.Y*rel.X + cam.Plane.X*rel.Y)
	return transformX, transformY
}

func renderObject(buf *FrameBuffer, pack *assets.Pack, cam model.Camera, obj model.GameObject, zIndexes []float64, firingTolerance int) (bool, error) {
	width, height := buf.Width, buf.Height
	transformX, transformY := CameraTransform(cam, obj.Common().Position)
	if transformY <= 0 {
		return false, nil
	}

	spriteIndex := OrientedSpriteIndex(cam, obj)
	tex, err := pack.Sprite(spriteIndex)
	if err != nil {
		return false, fmt.Errorf("object at %s: %w", obj.Common().MapPosition(), err)
	}

	spriteScreenX := float64(width) / 2.0 * (1.0 + transformX/transformY)
	size := int(math.Abs(float64(height) / transformY))
	if size == 0 {
		return false, nil
	}
	drawStartY := max(0, -size/2+height/2)
	drawEndY := min(height-1, size/2+height/2)
	drawStartX := int(math.Max(0, float64(-size/2)+spriteScreenX))
	drawEndX := int(math.Min(float64(width-1), float64(size/2)+spriteScreenX))

	lineHeight := float64(height) / transformY
	step := float64(tex.Height) / lineHeight
	hitLeft := width/2 - firingTolerance/2
	hitRight := hitLeft + firingTolerance

	hit := false
	for stripe := drawStartX; stripe < drawEndX; stripe++ {
		if stripe < 0 || stripe >= len(zIndexes) || transformY >= zIndexes[stripe] {
			continue
		}
		texX := int(256.0*(float64(stripe)-(float64(-size)/2.0+spriteScreenX))*float64(tex.Width)/float64(size)) / 256
		texX = int(geom.Clamp(float64(texX), 0, float64(tex.Width-1)))
		drawn := false
		for y := drawStartY; y < drawEndY; y++ {
			texY := int((float64(y) - float64(height)/2.0 + lineHeight/2.0) * step)
			texY = int(geom.Clamp(float64(texY), 0, float64(tex.Height-1)))
			p := tex.Get(texX, texY)
			if IsTransparent(p) {
				continue
			}
			buf.Set(stripe, y, p)
			drawn = true
		}
		if drawn && stripe >= hitLeft && stripe < hitRight {
			hit = true
		}
	}
	return hit, nil
}

// OrientedSpriteIndex picks the sprite for the side of obj the camera sees.
// Enemies with a facing have one sprite per 45 degree wedge around them; the
// first wedge containing the direction to the player wins.
func OrientedSpriteIndex(cam model.Camera, obj model.GameObject) int {
	enemy, ok := obj.(model.EnemyGameObject)
	if !ok {
		return obj.Common().SpriteIndex
	}
	if !enemy.IsAlive() {
		return enemy.SpriteIndexForAnimationFrame()
	}
	facing, ok := enemy.DirectionVector()
	if !ok {
		return enemy.BaseSpriteIndexForState()
	}

	quadrantSize := geom.Radians(360.0 / spriteQuadrants)
	// halved so the point lies inside a wedge whose far edge is a chord
	testPoint := cam.Position.Sub(enemy.CommonProperties.Position).Normalize().Scale(0.5)

	quadrant := 0
	for q := 0; q < spriteQuadrants; q++ {
		centre := float64(q) * quadrantSize
		start := facing.Rotate(centre - quadrantSize/2.0)
		end := facing.Rotate(centre + quadrantSize/2.0)
		if IsPointInTriangle(model.Zero, start, end, testPoint) {
			quadrant = q
			break
		}
	}
	return enemy.BaseSpriteIndexForState() + quadrant
}

// IsPointInTriangle uses barycentric coordinates; points on an edge are inside.
func IsPointInTriangle(p1, p2, p3, test model.Vector2D) bool {
	denom := (p2.Y-p3.Y)*(p1.X-p3.X) + (p3.X-p2.X)*(p1.Y-p3.Y)
	a := ((p2.Y-p3.Y)*(test.X-p3.X) + (p3.X-p2.X)*(test.Y-p3.Y)) / denom
	b := ((p3.Y-p1.Y)*(test.X-p3.X) + (p1.X-p3.X)*(test.Y-p3.Y)) / denom
	c := 1.0 - a - b
	return a >= 0 && a <= 1 && b >= 0 && b <= 1 && c >= 0 && c <= 1
}
