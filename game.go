package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"wolfcore/assets"
	"wolfcore/config"
	"wolfcore/engine"
	"wolfcore/engine/raycast"
	"wolfcore/level"
	"wolfcore/logger"
	"wolfcore/model"
)

// -- game

const (
	// wall textures up to and including the door set
	wallTextureCount = 106
	// props, pickups, the guard sheet and two weapons
	spriteTextureCount = 59

	hitIndicatorTicks = 15

	// placeholder art is drawn at this size and scaled to the configured width
	placeholderTile = 32
)

// main game object
type Game struct {
	cfg   config.Config
	level level.Level

	state    model.GameState
	controls model.ControlState
	walls    engine.WallRenderingResult

	pack     *assets.Pack
	renderer *engine.ViewportRenderer
	frame    *engine.FrameBuffer
	scene    *ebiten.Image
	pixels   []byte
	sprites  map[int]*ebiten.Image

	// window resolution
	screenWidth  int
	screenHeight int

	crosshairs *Crosshairs

	paused  bool
	showMap bool
	demo    *Demo
}

// NewGame loads textures and builds the first snapshot of lvl. With demo set
// the window shows the stepped ray cast instead of the game.
func NewGame(cfg config.Config, lvl level.Level, demo bool) (*Game, error) {
	r := cfg.Render
	g := &Game{
		cfg:          cfg,
		level:        lvl,
		frame:        engine.NewFrameBuffer(r.ViewportWidth, r.ViewportHeight),
		scene:        ebiten.NewImage(r.ViewportWidth, r.ViewportHeight),
		pixels:       make([]byte, r.ViewportWidth*r.ViewportHeight*4),
		sprites:      make(map[int]*ebiten.Image),
		crosshairs:   NewCrosshairs(10),
		screenWidth:  int(float64(r.ViewportWidth) * r.Zoom),
		screenHeight: int(float64(r.ViewportHeight) * r.Zoom),
	}
	g.pack = assets.Placeholder(wallTextureCount, spriteTextureCount, placeholderTile).
		Scale(float64(r.TextureWidth) / placeholderTile)
	g.renderer = engine.NewViewportRenderer(g.pack, raycast.NewRayCaster(), r)
	g.walls = engine.NewWallRenderingResult(r.ViewportWidth)

	player := model.NewPlayer(cfg.Movement.PlayerRadius, defaultWeapons())
	g.state = level.NewGameState(lvl, lvl.GameObjects, player, 0)
	g.state = engine.SortGameObjects(g.state, 0)

	if demo {
		d, err := NewDemo(g)
		if err != nil {
			return nil, fmt.Errorf("demo mode: %w", err)
		}
		g.demo = d
	}

	ebiten.SetWindowTitle("wolfcore: " + lvl.Name)
	ebiten.SetWindowSize(g.screenWidth, g.screenHeight)
	return g, nil
}

func defaultWeapons() []model.PlayerWeapon {
	return []model.PlayerWeapon{
		{
			WeaponType:          model.Knife,
			SpriteIndexes:       []int{51, 52, 53, 54},
			Damage:              15,
			StatusBarImageIndex: 0,
		},
		{
			WeaponType:          model.Pistol,
			SpriteIndexes:       []int{55, 56, 57, 58},
			Damage:              25,
			RequiresAmmunition:  true,
			StatusBarImageIndex: 1,
		},
	}
}

// Run is the Ebiten Run loop caller
func (g *Game) Run() {
	if err := ebiten.RunGame(g); err != nil {
		logger.Log.WithError(err).Fatal("game loop")
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenWidth, g.screenHeight
}

// frameMs is the simulated time between ticks.
func frameMs() float64 {
	return 1000.0 / float64(ebiten.TPS())
}

// Update samples input and advances the simulation by one tick.
func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}
	if g.paused {
		return nil
	}
	if g.demo != nil {
		g.demo.Update(g, frameMs())
		return nil
	}

	wasFiring := g.state.IsFiring
	g.state.ControlState = g.controls
	g.state = engine.Update(g.cfg, g.state, g.walls, frameMs())

	// a new shot with an enemy or prop under the crosshairs
	if g.state.IsFiring && !wasFiring && g.walls.SpriteInFrontOfPlayerIndex != nil {
		g.crosshairs.ActivateHitIndicator(hitIndicatorTicks)
	}
	g.crosshairs.Update()
	return nil
}

// Draw renders the viewport into the frame buffer and presents it scaled.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.demo != nil {
		g.demo.Draw(g, screen)
		return
	}

	walls, err := g.renderer.Render(g.frame, &g.state, nil)
	if err != nil {
		logger.Log.WithError(err).Error("rendering viewport")
		return
	}
	g.walls = walls

	g.present(screen, g.frame)
	g.drawWeapon(screen)
	g.crosshairs.Draw(screen)
	if g.showMap {
		drawMinimap(screen, g.state, nil, nil)
	}
	g.drawUI(screen)
}

// present uploads buf and draws it over the whole screen.
func (g *Game) present(screen *ebiten.Image, buf *engine.FrameBuffer) {
	buf.CopyBytes(g.pixels)
	g.scene.WritePixels(g.pixels)

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Scale(
		float64(g.screenWidth)/float64(buf.Width),
		float64(g.screenHeight)/float64(buf.Height),
	)
	screen.DrawImage(g.scene, op)
}

func (g *Game) spriteImage(index int) (*ebiten.Image, error) {
	if img, ok := g.sprites[index]; ok {
		return img, nil
	}
	tex, err := g.pack.Sprite(index)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(tex.Image())
	g.sprites[index] = img
	return img, nil
}

// drawWeapon draws the current weapon frame centred on the bottom edge.
func (g *Game) drawWeapon(screen *ebiten.Image) {
	w, ok := g.state.Player.CurrentWeapon()
	if !ok {
		return
	}
	index := w.CurrentSpriteIndex()
	if index < 0 {
		return
	}
	img, err := g.spriteImage(index)
	if err != nil {
		logger.Log.WithError(err).WithField("weapon", w.WeaponType).Error("weapon sprite")
		return
	}

	// weapon should only take up 1/3rd of screen space
	compSize := g.screenHeight
	if g.screenWidth < g.screenHeight {
		compSize = g.screenWidth
	}
	ww, wh := img.Bounds().Dx(), img.Bounds().Dy()
	scale := (float64(compSize) / 3) / float64(wh)

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(
		float64(g.screenWidth)/2-float64(ww)*scale/2,
		float64(g.screenHeight)-float64(wh)*scale+1,
	)
	screen.DrawImage(img, op)
}
