package level

import (
	"fmt"
	"image"
	"image/color"

	"wolfcore/model"
)

// plane 0 codes produced by the layout front ends
const (
	codeWall       = 1
	codeExit       = 21
	codeDoorNS     = 90
	codeDoorEW     = 91
	codeFloor      = firstArea
	guardHitPoints = 25
)

// Guard sprite sheet: eight facings per block, five blocks, then the death,
// attack and hurt frames.
const (
	guardSpriteIndex    = 2
	guardSpriteBlocks   = 5
	guardFramesPerBlock = 8
)

var startMarkers = map[rune]uint16{
	'^': startNorth,
	'>': startEast,
	'v': startSouth,
	'<': startWest,
}

// ParseLayout builds a level from rows of ASCII:
//
//	#      wall               1-9  wall with that texture code
//	E      exit wall          | -  north-south and east-west doors
//	. ' '  floor              ^ > v <  player start
//	o      blocking prop      p    pickup
//	g      guard
//
// Every row must have the same width.
func ParseLayout(rows []string) (Level, error) {
	if len(rows) == 0 {
		return Level{}, fmt.Errorf("empty layout: %w", ErrBadDimensions)
	}
	width := len(rows[0])
	planes := Planes{
		Width:  width,
		Height: len(rows),
		Plane0: make([]uint16, 0, width*len(rows)),
		Plane1: make([]uint16, 0, width*len(rows)),
	}
	var objects []model.GameObject

	for y, row := range rows {
		if len(row) != width {
			return Level{}, fmt.Errorf("row %d is %d wide, want %d: %w", y, len(row), width, ErrBadDimensions)
		}
		for x, ch := range row {
			code, marker := uint16(codeFloor), uint16(0)
			centre := model.VectorFromMapPosition(model.MapPosition{X: x, Y: y})

			switch {
			case ch == '#':
				code = codeWall
			case ch >= '1' && ch <= '9':
				code = uint16(ch - '0')
			case ch == 'E':
				code = codeExit
			case ch == '|':
				code = codeDoorNS
			case ch == '-':
				code = codeDoorEW
			case ch == '.' || ch == ' ':
			case ch == 'o':
				objects = append(objects, Prop(centre))
			case ch == 'p':
				objects = append(objects, Pickup(centre))
			case ch == 'g':
				objects = append(objects, Guard(centre, model.South))
			default:
				m, ok := startMarkers[ch]
				if !ok {
					return Level{}, fmt.Errorf("%q at %d,%d: %w", ch, x, y, ErrUnknownTile)
				}
				marker = m
			}
			planes.Plane0 = append(planes.Plane0, code)
			planes.Plane1 = append(planes.Plane1, marker)
		}
	}

	lvl, err := Build(planes)
	if err != nil {
		return Level{}, err
	}
	lvl.GameObjects = objects
	return lvl, nil
}

func Prop(at model.Vector2D) model.StaticGameObject {
	return model.StaticGameObject{CommonProperties: model.BasicGameObjectProperties{
		Position: at,
		Blocking: true,
	}}
}

func Pickup(at model.Vector2D) model.StaticGameObject {
	return model.StaticGameObject{CommonProperties: model.BasicGameObjectProperties{
		Position:     at,
		SpriteIndex:  1,
		Pickupable:   true,
		AmmoRestored: 8,
		Score:        100,
	}}
}

func Guard(at model.Vector2D, facing model.MapDirection) model.EnemyGameObject {
	base := guardSpriteIndex + guardSpriteBlocks*guardFramesPerBlock
	return model.EnemyGameObject{
		CommonProperties: model.BasicGameObjectProperties{
			Position:            at,
			SpriteIndex:         guardSpriteIndex,
			CollidesWithBullets: true,
			Blocking:            true,
			Score:               100,
		},
		EnemyProperties: model.EnemyProperties{
			EnemyType:           model.Guard,
			Direction:           facing,
			DeathSpriteIndexes:  []int{base, base + 1, base + 2, base + 3, base + 4},
			AttackSpriteIndexes: []int{base + 5, base + 6, base + 7},
			HurtSpriteIndex:     base + 8,
			SpriteBlocks:        guardSpriteBlocks,
			FramesPerBlock:      guardFramesPerBlock,
			State:               model.Standing{},
			IsFirstAttack:       true,
			HitPoints:           guardHitPoints,
			PatrolSpeed:         0.5,
			ChaseSpeed:          1.0,
		},
	}
}

// -- colour maps

// Palette of the PNG level format. Doors take their direction from the walls
// beside them.
var (
	ColorEmpty  = color.RGBA{255, 255, 255, 255}
	ColorWall   = color.RGBA{0, 0, 0, 255}
	ColorEnemy  = color.RGBA{255, 0, 0, 255}
	ColorExit   = color.RGBA{0, 255, 0, 255}
	ColorPlayer = color.RGBA{0, 0, 255, 255}
	ColorDoor   = color.RGBA{255, 255, 0, 255}
)

var paletteRunes = map[color.RGBA]rune{
	ColorEmpty:  '.',
	ColorWall:   '#',
	ColorEnemy:  'g',
	ColorExit:   'E',
	ColorPlayer: '>',
	ColorDoor:   '?',
}

// FromImage reads a colour map, one pixel per cell, and builds the level it
// describes. The player faces east.
func FromImage(img image.Image) (Level, error) {
	b := img.Bounds()
	grid := make([][]rune, b.Dy())
	for y := range grid {
		grid[y] = make([]rune, b.Dx())
		for x := range grid[y] {
			c := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			r, ok := paletteRunes[c]
			if !ok {
				return Level{}, fmt.Errorf("colour %v at %d,%d: %w", c, x, y, ErrUnknownTile)
			}
			grid[y][x] = r
		}
	}

	rows := make([]string, len(grid))
	for y := range grid {
		for x, r := range grid[y] {
			if r != '?' {
				continue
			}
			// walls above and below close the doorway along y
			if isSolid(grid, x, y-1) && isSolid(grid, x, y+1) {
				grid[y][x] = '|'
			} else {
				grid[y][x] = '-'
			}
		}
		rows[y] = string(grid[y])
	}
	return ParseLayout(rows)
}

func isSolid(grid [][]rune, x, y int) bool {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return true
	}
	return grid[y][x] == '#' || grid[y][x] == 'E'
}
