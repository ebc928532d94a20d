package engine

import (
	"testing"

	"wolfcore/engine/raycast"
	"wolfcore/model"
)

func TestViewportRenderFullFrame(t *testing.T) {
	g := facingEast(newWorld(room...), 3.5, 3.5)
	g.GameObjects = []model.GameObject{staticAt(5.5, 3.5, 1)}
	cfg := testRender()
	v := NewViewportRenderer(testPack(), raycast.NewRayCaster(), cfg)

	buf, walls, err := v.UpdateFrameBuffer(&g, nil)
	if err != nil {
		t.Fatal(err)
	}
	if buf.Width != cfg.ViewportWidth || buf.Height != cfg.ViewportHeight {
		t.Fatalf("buffer %dx%d", buf.Width, buf.Height)
	}
	if got := buf.At(0, 0); got != cfg.CeilingColor {
		t.Errorf("ceiling = %#08x", got)
	}
	if got := buf.At(0, cfg.ViewportHeight-1); got != cfg.FloorColor {
		t.Errorf("floor = %#08x", got)
	}
	if walls.SpriteInFrontOfPlayerIndex == nil || *walls.SpriteInFrontOfPlayerIndex != 0 {
		t.Errorf("sprite in front = %v", walls.SpriteInFrontOfPlayerIndex)
	}
}

func TestViewportOverlay(t *testing.T) {
	g := facingEast(newWorld(room...), 3.5, 3.5)
	overlay := model.BloodOverlay(1)
	overlay.Opacity = 1
	g.ViewportFilter = &overlay
	cfg := testRender()
	v := NewViewportRenderer(testPack(), raycast.NewRayCaster(), cfg)

	buf := NewFrameBuffer(cfg.ViewportWidth, cfg.ViewportHeight)
	if _, err := v.Render(buf, &g, nil); err != nil {
		t.Fatal(err)
	}
	for i, p := range buf.Pixels {
		px := PixelFromUint(p)
		if px.Red != 0xFF || px.Green != 0 || px.Blue != 0 {
			t.Fatalf("pixel %d = %+v", i, px)
		}
	}
}

func TestViewportStripLeavesRestOfBuffer(t *testing.T) {
	g := facingEast(newWorld(room...), 3.5, 3.5)
	cfg := testRender()
	v := NewViewportRenderer(testPack(), raycast.NewRayCaster(), cfg)
	buf := NewFrameBuffer(cfg.ViewportWidth, cfg.ViewportHeight)
	strip := 3

	if _, err := v.Render(buf, &g, &strip); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			if x != strip && buf.At(x, y) != 0 {
				t.Fatalf("pixel %d,%d written outside the strip", x, y)
			}
		}
	}
}
