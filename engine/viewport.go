package engine

import (
	"wolfcore/assets"
	"wolfcore/config"
	"wolfcore/engine/raycast"
	"wolfcore/model"
)

// ViewportRenderer runs the passes that make up one viewport frame.
type ViewportRenderer struct {
	pack   *assets.Pack
	caster raycast.Caster
	cfg    config.Render
}

func NewViewportRenderer(pack *assets.Pack, caster raycast.Caster, cfg config.Render) *ViewportRenderer {
	return &ViewportRenderer{pack: pack, caster: caster, cfg: cfg}
}

func (v *ViewportRenderer) RayCaster() raycast.Caster { return v.caster }

// Render draws game into buf. A full frame fills ceiling and floor, walls, then
// sprites and the overlay tint. A strip render only touches walls in that
// column.
func (v *ViewportRenderer) Render(buf *FrameBuffer, game *model.GameState, strip *int) (WallRenderingResult, error) {
	if strip == nil {
		half := buf.Height / 2
		buf.FillRect(0, 0, buf.Width, half, v.cfg.CeilingColor)
		buf.FillRect(0, half, buf.Width, buf.Height-half, v.cfg.FloorColor)
	}

	walls, err := RenderWalls(buf, v.pack, game, v.caster, v.cfg, strip)
	if err != nil {
		return walls, err
	}
	if strip != nil {
		return walls, nil
	}

	inFront, err := RenderSpriteObjects(buf, v.pack, game, walls, v.cfg)
	if err != nil {
		return walls, err
	}
	walls.SpriteInFrontOfPlayerIndex = inFront

	if game.ViewportFilter != nil {
		ApplyOverlay(buf, *game.ViewportFilter)
	}
	return walls, nil
}

// UpdateFrameBuffer renders into a freshly allocated buffer.
func (v *ViewportRenderer) UpdateFrameBuffer(game *model.GameState, strip *int) (*FrameBuffer, WallRenderingResult, error) {
	buf := NewFrameBuffer(v.cfg.ViewportWidth, v.cfg.ViewportHeight)
	walls, err := v.Render(buf, game, strip)
	return buf, walls, err
}

// ApplyOverlay blends the overlay colour over every pixel at its current opacity.
func ApplyOverlay(buf *FrameBuffer, o model.OverlayAnimation) {
	op := o.Opacity
	if op <= 0 {
		return
	}
	if op > 1 {
		op = 1
	}
	blend := func(c, t uint8) uint8 {
		return uint8(float64(c)*(1-op) + float64(t)*op)
	}
	for i, p := range buf.Pixels {
		px := PixelFromUint(p)
		px.Red = blend(px.Red, o.Red)
		px.Green = blend(px.Green, o.Green)
		px.Blue = blend(px.Blue, o.Blue)
		buf.Pixels[i] = px.ToUint()
	}
}
