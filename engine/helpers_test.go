package engine

import (
	"wolfcore/assets"
	"wolfcore/config"
	"wolfcore/model"
)

// newWorld reads '#' walls, '|' and '-' doors and anything else as floor. Walls
// use texture 1 north-south and 0 east-west; doors use texture 1.
func newWorld(rows ...string) model.GameState {
	var g model.GameState
	g.Map = make(model.Map, len(rows))
	for y, row := range rows {
		g.Map[y] = make([]model.Cell, len(row))
		for x, ch := range row {
			pos := model.MapPosition{X: x, Y: y}
			switch ch {
			case '#':
				g.Map[y][x] = model.Wall{MapPosition: pos, NorthSouthTextureIndex: 1, EastWestTextureIndex: 0}
			case '|', '-':
				dir := model.DoorNorthSouth
				if ch == '-' {
					dir = model.DoorEastWest
				}
				g.Map[y][x] = model.Door{MapPosition: pos, DoorIndex: len(g.Doors)}
				g.Doors = append(g.Doors, model.NewDoorState(1, dir, pos))
			default:
				g.Map[y][x] = model.Empty{MapPosition: pos}
			}
		}
	}
	g.Player = model.NewPlayer(0.5, nil)
	return g
}

var room = []string{
	"########",
	"#......#",
	"#......#",
	"#......#",
	"#......#",
	"#......#",
	"#......#",
	"########",
}

func facingEast(g model.GameState, x, y float64) model.GameState {
	g.Camera = model.NewCamera(model.Vec(x, y), model.Vec(1, 0), model.DefaultFieldOfView)
	return g
}

func testRender() config.Render {
	r := config.Default().Render
	r.ViewportWidth = 64
	r.ViewportHeight = 32
	return r
}

func testPack() *assets.Pack {
	return assets.Placeholder(2, 2, 16)
}
