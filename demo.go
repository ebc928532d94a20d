package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"wolfcore/engine"
	"wolfcore/engine/raycast"
	"wolfcore/logger"
	"wolfcore/model"
)

// -- demonstration mode

const (
	minDemoStepMs = 15.0
	maxDemoStepMs = 4000.0
)

// Demo reveals the viewport one column at a time. In stepping mode each timed
// step advances the current ray by one grid cell and the debug map shows the
// squares it has tested; otherwise each step casts a whole column.
type Demo struct {
	stepper  *engine.ViewportRenderer
	oneShot  *engine.ViewportRenderer
	stepping bool

	frame     *engine.FrameBuffer
	column    int
	sinceStep float64
	stepMs    float64
	hold      int

	labels *labeler
}

func NewDemo(g *Game) (*Demo, error) {
	labels, err := newLabeler(11)
	if err != nil {
		return nil, err
	}
	r := g.cfg.Render
	return &Demo{
		stepper:  engine.NewViewportRenderer(g.pack, raycast.NewStepRayCaster(), r),
		oneShot:  engine.NewViewportRenderer(g.pack, raycast.NewRayCaster(), r),
		stepping: true,
		frame:    engine.NewFrameBuffer(r.ViewportWidth, r.ViewportHeight),
		stepMs:   g.cfg.Timing.DemoStepMs,
		labels:   labels,
	}, nil
}

func (d *Demo) renderer() *engine.ViewportRenderer {
	if d.stepping {
		return d.stepper
	}
	return d.oneShot
}

func (d *Demo) stepCaster() *raycast.StepRayCaster {
	c, _ := d.stepper.RayCaster().(*raycast.StepRayCaster)
	return c
}

// Update handles the demo controls and runs any steps that are due.
func (d *Demo) Update(g *Game, deltaMs float64) {
	if justPressed(model.Action) {
		d.stepping = !d.stepping
		d.restart()
		logger.Log.WithField("stepping", d.stepping).Info("demo caster switched")
	}
	if justPressed(model.Forward) {
		d.stepMs = max(d.stepMs/2, minDemoStepMs)
	}
	if justPressed(model.Backward) {
		d.stepMs = min(d.stepMs*2, maxDemoStepMs)
	}

	d.sinceStep += deltaMs
	for d.sinceStep >= d.stepMs {
		d.sinceStep -= d.stepMs
		if err := d.step(g); err != nil {
			logger.Log.WithError(err).WithFields(logrus.Fields{
				"column": d.column,
			}).Error("demo step")
			d.restart()
			return
		}
	}
}

func (d *Demo) restart() {
	d.stepCaster().Stop()
	d.column = 0
	d.hold = 0
	d.sinceStep = 0
	d.frame.Clear()
}

// step advances the demo by one tick of the step timer.
func (d *Demo) step(g *Game) error {
	if d.hold > 0 {
		d.hold--
		if d.hold == 0 {
			d.nextColumn()
		}
		return nil
	}

	column := d.column
	if _, err := d.renderer().Render(d.frame, &g.state, &column); err != nil {
		return err
	}
	if !d.stepping {
		d.nextColumn()
		return nil
	}
	if d.stepCaster().IsComplete() {
		d.hold = g.cfg.Timing.DemoHoldFrames
		if d.hold <= 0 {
			d.nextColumn()
		}
	}
	return nil
}

func (d *Demo) nextColumn() {
	d.stepCaster().Stop()
	d.column++
	if d.column >= d.frame.Width {
		d.column = 0
		d.frame.Clear()
	}
}

// Draw shows the partial frame, then the map with the ray in progress.
func (d *Demo) Draw(g *Game, screen *ebiten.Image) {
	g.present(screen, d.frame)

	var (
		visited []raycast.Result
		ray     *rayLine
	)
	if d.stepping {
		visited = d.stepCaster().MapSquaresTested()
	}
	cam := g.state.Camera
	cameraX := 2.0*float64(d.column)/float64(d.frame.Width) - 1.0
	dir := cam.Direction.Add(cam.Plane.Scale(cameraX))
	if r, ok := d.stepCaster().Result(); ok && d.stepping {
		ray = &rayLine{from: cam.Position, to: cam.Position.Add(dir.Scale(r.PerpendicularDistance()))}
	} else {
		ray = &rayLine{from: cam.Position, to: cam.Position.Add(dir)}
	}
	drawMinimap(screen, g.state, visited, ray)

	// label the square the ray is on
	if n := len(visited); n > 0 {
		hit := visited[n-1].MapHit
		if label := d.labels.image(hit.String()); label != nil {
			ox, oy := minimapOrigin(screen, g.state.Map)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(ox)+float64(hit.X*minimapScale), float64(oy)+float64((hit.Y+1)*minimapScale))
			screen.DrawImage(label, op)
		}
	}

	mode := "one-shot"
	if d.stepping {
		mode = "stepping"
	}
	info := fmt.Sprintf("FPS: %0.2f\ncolumn %d/%d  %s  step %.0fms\nspace toggles caster, W/S change speed",
		ebiten.ActualFPS(), d.column, d.frame.Width, mode, d.stepMs)
	ebitenutil.DebugPrint(screen, info)
}

// labeler renders short strings with a TrueType face and keeps the results.
type labeler struct {
	face  font.Face
	cache map[string]*ebiten.Image
}

func newLabeler(size float64) (*labeler, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing label font: %w", err)
	}
	return &labeler{
		face: truetype.NewFace(f, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		}),
		cache: make(map[string]*ebiten.Image),
	}, nil
}

func (l *labeler) image(s string) *ebiten.Image {
	if img, ok := l.cache[s]; ok {
		return img
	}
	d := &font.Drawer{Face: l.face}
	w := d.MeasureString(s).Ceil()
	m := l.face.Metrics()
	h := (m.Ascent + m.Descent).Ceil()
	if w <= 0 || h <= 0 {
		return nil
	}

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	d.Dst = rgba
	d.Src = image.NewUniform(color.Black)
	d.Dot = fixed.Point26_6{X: 0, Y: m.Ascent}
	d.DrawString(s)

	img := ebiten.NewImageFromImage(rgba)
	l.cache[s] = img
	return img
}
