package level

import (
	"errors"
	"testing"

	"wolfcore/model"
)

func planes(w, h int, plane0 ...uint16) Planes {
	return Planes{Width: w, Height: h, Plane0: plane0, Plane1: make([]uint16, w*h)}
}

func TestBuildDecodesCells(t *testing.T) {
	p := planes(3, 3,
		1, 2, 1,
		90, 106, 107,
		1, 91, 64,
	)
	p.Plane1[4] = startEast
	p.Plane1[8] = 0x5C

	lvl, err := Build(p)
	if err != nil {
		t.Fatal(err)
	}

	wall, ok := lvl.Map[0][1].(model.Wall)
	if !ok || wall.NorthSouthTextureIndex != 3 || wall.EastWestTextureIndex != 2 {
		t.Errorf("wall code 2 = %#v", lvl.Map[0][1])
	}
	if d, ok := lvl.Map[1][0].(model.Door); !ok || d.DoorIndex != 0 {
		t.Errorf("door cell = %#v", lvl.Map[1][0])
	}
	if d, ok := lvl.Map[2][1].(model.Door); !ok || d.DoorIndex != 1 {
		t.Errorf("door cell = %#v", lvl.Map[2][1])
	}
	if len(lvl.Doors) != 2 {
		t.Fatalf("doors = %d", len(lvl.Doors))
	}
	ns, ew := lvl.Doors[0], lvl.Doors[1]
	if ns.TextureIndex != 99 || ns.Direction != model.DoorNorthSouth || ns.Status != model.DoorClosed {
		t.Errorf("north-south door = %+v", ns)
	}
	if ew.TextureIndex != 98 || ew.Direction != model.DoorEastWest {
		t.Errorf("east-west door = %+v", ew)
	}
	if ns.AreaOne != model.NoArea || ns.AreaTwo != model.NoArea {
		t.Errorf("door areas = %d,%d", ns.AreaOne, ns.AreaTwo)
	}

	if tp, ok := lvl.Map[2][2].(model.TurningPoint); !ok || tp.TurnsToDirection != model.North {
		t.Errorf("turning point = %#v", lvl.Map[2][2])
	}
	if lvl.Areas[1][1] != 0 || lvl.Areas[1][2] != 1 || lvl.Areas[2][2] != model.NoArea {
		t.Errorf("areas = %v", lvl.Areas)
	}
	if lvl.NumberOfAreas != 2 {
		t.Errorf("number of areas = %d", lvl.NumberOfAreas)
	}

	cam := lvl.StartingPose
	if cam.Position != model.Vec(1.5, 1.5) || cam.Direction != model.Vec(1, 0) {
		t.Errorf("start = %v facing %v", cam.Position, cam.Direction)
	}
	if cam.FieldOfView != StartFieldOfView {
		t.Errorf("field of view = %g", cam.FieldOfView)
	}
}

func TestBuildStartDirections(t *testing.T) {
	tests := []struct {
		marker uint16
		want   model.Vector2D
	}{
		{startNorth, model.Vec(0, -1)},
		{startEast, model.Vec(1, 0)},
		{startSouth, model.Vec(0, 1)},
		{startWest, model.Vec(-1, 0)},
	}
	for _, tt := range tests {
		p := planes(1, 1, 106)
		p.Plane1[0] = tt.marker
		lvl, err := Build(p)
		if err != nil {
			t.Fatal(err)
		}
		if got := lvl.StartingPose.Direction; got != tt.want {
			t.Errorf("marker %d faces %v, want %v", tt.marker, got, tt.want)
		}
	}
}

func TestBuildErrors(t *testing.T) {
	withStart := func(p Planes) Planes {
		p.Plane1[len(p.Plane1)-1] = startNorth
		return p
	}
	tests := []struct {
		name   string
		planes Planes
		want   error
	}{
		{"zero code", withStart(planes(2, 1, 0, 106)), ErrUnknownTile},
		{"code above the floor range", withStart(planes(2, 1, 144, 106)), ErrUnknownTile},
		{"reserved door code", withStart(planes(2, 1, 97, 106)), ErrInvalidDoor},
		{"no start", planes(1, 1, 106), ErrMissingPlayerStart},
		{"short plane", Planes{Width: 2, Height: 2, Plane0: []uint16{1}, Plane1: make([]uint16, 4)}, ErrBadDimensions},
		{"empty", Planes{}, ErrBadDimensions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Build(tt.planes); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBuildPatchesDoorFrames(t *testing.T) {
	lvl, err := ParseLayout([]string{
		"###",
		"#|#",
		"#>#",
		"#-.",
		"#.#",
	})
	if err != nil {
		t.Fatal(err)
	}
	beside := lvl.Map[1][0].(model.Wall)
	if beside.NorthSouthTextureIndex != model.DoorFrameNorthSouthTex || beside.EastWestTextureIndex != 0 {
		t.Errorf("wall west of north-south door = %+v", beside)
	}
	above := lvl.Map[0][1].(model.Wall)
	if above.EastWestTextureIndex != model.DoorFrameEastWestTex || above.NorthSouthTextureIndex != 1 {
		t.Errorf("wall north of door = %+v", above)
	}
	untouched := lvl.Map[0][0].(model.Wall)
	if untouched.NorthSouthTextureIndex != 1 || untouched.EastWestTextureIndex != 0 {
		t.Errorf("corner wall = %+v", untouched)
	}
	// west of the east-west door and south of the north-south one's neighbour
	both := lvl.Map[3][0].(model.Wall)
	if both.NorthSouthTextureIndex != model.DoorFrameNorthSouthTex {
		t.Errorf("wall beside east-west door = %+v", both)
	}
}

func TestNewGameState(t *testing.T) {
	lvl, err := ParseLayout([]string{
		"#####",
		"#>.g#",
		"##|##",
		"#.p.#",
		"#####",
	})
	if err != nil {
		t.Fatal(err)
	}
	player := model.NewPlayer(0.3, nil)
	g := NewGameState(lvl, lvl.GameObjects, player, 2)

	if g.Level != 2 || g.Camera != lvl.StartingPose || g.Player.Radius != 0.3 {
		t.Fatalf("state = level %d camera %+v", g.Level, g.Camera)
	}
	if len(g.GameObjects) != 2 || len(g.Doors) != 1 || len(g.CompositeAreas) != 1 {
		t.Fatalf("objects %d doors %d areas %d", len(g.GameObjects), len(g.Doors), len(g.CompositeAreas))
	}

	g.Doors[0].Status = model.DoorOpen
	if lvl.Doors[0].Status != model.DoorClosed {
		t.Fatal("game state shares the level's door table")
	}
	if _, ok := g.Cell(model.MapPosition{X: 2, Y: 2}).(model.Door); !ok {
		t.Fatal("door cell missing from state map")
	}
}
