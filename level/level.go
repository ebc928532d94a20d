// Package level turns decoded map planes into the cells, doors and starting pose
// of a playable level.
package level

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"wolfcore/logger"
	"wolfcore/model"
)

var (
	ErrUnknownTile        = errors.New("unknown tile code")
	ErrInvalidDoor        = errors.New("invalid door code")
	ErrMissingPlayerStart = errors.New("no player start")
	ErrBadDimensions      = errors.New("plane size does not match level dimensions")
)

// StartFieldOfView is the camera plane length given to the starting pose.
const StartFieldOfView = 1.0

// Planes are the decoded map layers, row-major, one code per cell. Plane0 holds
// walls, doors and floor areas; Plane1 holds markers such as the player start.
type Planes struct {
	Width  int
	Height int
	Plane0 []uint16
	Plane1 []uint16
}

func (p Planes) at(plane []uint16, x, y int) uint16 {
	return plane[y*p.Width+x]
}

type Level struct {
	Name          string
	Width         int
	Height        int
	Map           model.Map
	Areas         [][]int
	NumberOfAreas int
	Doors         []model.DoorState
	GameObjects   []model.GameObject
	StartingPose  model.Camera
}

// tile code ranges in plane 0
const (
	firstWall     = 1
	lastWall      = 63
	firstDoor     = 90
	lastDoor      = 101
	firstArea     = 106
	lastFloorCode = 143
)

// player start markers in plane 1
const (
	startNorth = 19 + iota
	startEast
	startSouth
	startWest
)

var turningPoints = map[uint16]model.MapDirection{
	0x5A: model.East,
	0x5B: model.NorthEast,
	0x5C: model.North,
	0x5D: model.NorthWest,
	0x5E: model.West,
	0x5F: model.SouthWest,
	0x60: model.South,
	0x61: model.SouthEast,
}

type doorKind struct {
	texture   int
	direction model.DoorDirection
}

var doorKinds = map[uint16]doorKind{
	90:  {99, model.DoorNorthSouth},
	92:  {105, model.DoorNorthSouth},
	94:  {105, model.DoorNorthSouth},
	100: {103, model.DoorNorthSouth},
	91:  {98, model.DoorEastWest},
	93:  {104, model.DoorEastWest},
	95:  {104, model.DoorEastWest},
	101: {102, model.DoorEastWest},
}

// Build decodes planes into a level. Any unknown code aborts the build.
func Build(p Planes) (Level, error) {
	if p.Width <= 0 || p.Height <= 0 || len(p.Plane0) != p.Width*p.Height || len(p.Plane1) != p.Width*p.Height {
		return Level{}, fmt.Errorf("%dx%d level with planes of %d and %d: %w",
			p.Width, p.Height, len(p.Plane0), len(p.Plane1), ErrBadDimensions)
	}

	lvl := Level{
		Width:  p.Width,
		Height: p.Height,
		Map:    make(model.Map, p.Height),
		Areas:  make([][]int, p.Height),
	}
	areas := map[int]struct{}{}

	for y := 0; y < p.Height; y++ {
		lvl.Map[y] = make([]model.Cell, p.Width)
		lvl.Areas[y] = make([]int, p.Width)
		for x := 0; x < p.Width; x++ {
			pos := model.MapPosition{X: x, Y: y}
			code := p.at(p.Plane0, x, y)
			lvl.Areas[y][x] = model.NoArea

			switch {
			case code >= firstWall && code <= lastWall:
				tex := 2*int(code) - 1
				lvl.Map[y][x] = model.Wall{MapPosition: pos, NorthSouthTextureIndex: tex, EastWestTextureIndex: tex - 1}
			case code >= firstDoor && code <= lastDoor:
				kind, ok := doorKinds[code]
				if !ok {
					return Level{}, fmt.Errorf("code %d at %s: %w", code, pos, ErrInvalidDoor)
				}
				lvl.Map[y][x] = model.Door{MapPosition: pos, DoorIndex: len(lvl.Doors)}
				lvl.Doors = append(lvl.Doors, model.NewDoorState(kind.texture, kind.direction, pos))
			case code > lastWall && code <= lastFloorCode:
				if code >= firstArea {
					area := int(code) - firstArea
					lvl.Areas[y][x] = area
					areas[area] = struct{}{}
				}
				lvl.Map[y][x] = floorCell(pos, p.at(p.Plane1, x, y))
			default:
				return Level{}, fmt.Errorf("code %d at %s: %w", code, pos, ErrUnknownTile)
			}
		}
	}
	lvl.NumberOfAreas = len(areas)

	patchDoorFrames(lvl.Map, lvl.Doors)

	start, err := startingPose(p)
	if err != nil {
		return Level{}, err
	}
	lvl.StartingPose = start

	logger.Log.WithFields(logrus.Fields{
		"width":  lvl.Width,
		"height": lvl.Height,
		"doors":  len(lvl.Doors),
		"areas":  lvl.NumberOfAreas,
	}).Debug("level built")
	return lvl, nil
}

func floorCell(pos model.MapPosition, marker uint16) model.Cell {
	if dir, ok := turningPoints[marker]; ok {
		return model.TurningPoint{MapPosition: pos, TurnsToDirection: dir}
	}
	return model.Empty{MapPosition: pos}
}

// patchDoorFrames gives walls beside a door the door frame texture on the face
// that looks into the doorway.
func patchDoorFrames(m model.Map, doors []model.DoorState) {
	isDoor := make(map[model.MapPosition]bool, len(doors))
	for _, d := range doors {
		isDoor[d.MapPosition] = true
	}
	for y := range m {
		for x, cell := range m[y] {
			wall, ok := cell.(model.Wall)
			if !ok {
				continue
			}
			p := wall.MapPosition
			if isDoor[p.Add(1, 0)] || isDoor[p.Add(-1, 0)] {
				wall.NorthSouthTextureIndex = model.DoorFrameNorthSouthTex
			}
			if isDoor[p.Add(0, 1)] || isDoor[p.Add(0, -1)] {
				wall.EastWestTextureIndex = model.DoorFrameEastWestTex
			}
			m[y][x] = wall
		}
	}
}

func startingPose(p Planes) (model.Camera, error) {
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			var dir model.Vector2D
			switch p.at(p.Plane1, x, y) {
			case startNorth:
				dir = model.North.ToVector()
			case startEast:
				dir = model.East.ToVector()
			case startSouth:
				dir = model.South.ToVector()
			case startWest:
				dir = model.West.ToVector()
			default:
				continue
			}
			pos := model.VectorFromMapPosition(model.MapPosition{X: x, Y: y})
			return model.NewCamera(pos, dir, StartFieldOfView), nil
		}
	}
	return model.Camera{}, ErrMissingPlayerStart
}
