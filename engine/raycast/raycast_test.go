package raycast

import (
	"math"
	"testing"

	"wolfcore/model"
)

// buildWorld reads '#' walls, '|' north-south doors, '-' east-west doors,
// 't' turning points and anything else as empty floor.
func buildWorld(rows ...string) model.GameState {
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
				g.Doors = append(g.Doors, model.NewDoorState(99, dir, pos))
			case 't':
				g.Map[y][x] = model.TurningPoint{MapPosition: pos, TurnsToDirection: model.North}
			default:
				g.Map[y][x] = model.Empty{MapPosition: pos}
			}
		}
	}
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

func TestCastTerminates(t *testing.T) {
	g := buildWorld(room...)
	mapSize := 8
	for i := 0; i < 360; i += 7 {
		a := float64(i) * math.Pi / 180.0
		dir := model.Vec(math.Cos(a), math.Sin(a))
		steps := 0
		cont := ShouldContinueCast(g)
		r := NewRayCaster().Cast(g, Parameters{From: model.Vec(3.3, 4.7), Direction: dir}, func(r Result) bool {
			steps++
			return cont(r)
		})
		if !r.IsComplete || !r.IsHit {
			t.Fatalf("angle %d: complete=%v hit=%v", i, r.IsComplete, r.IsHit)
		}
		if steps > 2*mapSize {
			t.Fatalf("angle %d: %d steps", i, steps)
		}
	}
}

func TestCastSideMatchesLastStep(t *testing.T) {
	g := buildWorld(room...)
	for i := 1; i < 360; i += 11 {
		a := float64(i) * math.Pi / 180.0
		dir := model.Vec(math.Cos(a), math.Sin(a))
		var prev Result
		cont := ShouldContinueCast(g)
		r := NewRayCaster().Cast(g, Parameters{From: model.Vec(2.5, 5.2), Direction: dir}, func(r Result) bool {
			ok := cont(r)
			if ok {
				prev = r
			}
			return ok
		})
		want := model.EastWest
		if prev.TotalSideDistance.X < prev.TotalSideDistance.Y {
			want = model.NorthSouth
		}
		if r.Side != want {
			t.Errorf("angle %d: side %s, want %s", i, r.Side, want)
		}
	}
}

func TestCastHitsWall(t *testing.T) {
	g := buildWorld(room...)
	r := NewRayCaster().Cast(g, Parameters{From: model.Vec(1.5, 1.5), Direction: model.Vec(1, 0)}, ShouldContinueCast(g))
	if r.MapHit != (model.MapPosition{X: 7, Y: 1}) || r.Side != model.NorthSouth {
		t.Fatalf("hit %v side %s", r.MapHit, r.Side)
	}
	if d := r.PerpendicularDistance(); math.Abs(d-5.5) > 1e-9 {
		t.Fatalf("distance = %g, want 5.5", d)
	}

	r = NewRayCaster().Cast(g, Parameters{From: model.Vec(1.5, 1.5), Direction: model.Vec(0, 1)}, ShouldContinueCast(g))
	if r.MapHit != (model.MapPosition{X: 1, Y: 7}) || r.Side != model.EastWest {
		t.Fatalf("vertical ray hit %v side %s", r.MapHit, r.Side)
	}
}

func TestCastLeavesOpenMap(t *testing.T) {
	g := buildWorld(
		"....",
		"....",
	)
	r := NewRayCaster().Cast(g, Parameters{From: model.Vec(0.5, 0.5), Direction: model.Vec(1, 0.2)}, ShouldContinueCast(g))
	if !r.IsComplete || r.IsHit || g.InMap(r.MapHit) {
		t.Fatalf("got %+v", r)
	}
}

func TestTurningPoints(t *testing.T) {
	g := buildWorld(
		"######",
		"#..t.#",
		"######",
	)
	p := Parameters{From: model.Vec(1.5, 1.5), Direction: model.Vec(1, 0)}
	if r := NewRayCaster().Cast(g, p, ShouldContinueCast(g)); r.MapHit.X != 5 {
		t.Fatalf("turning point stopped the ray at %v", r.MapHit)
	}
	p.IncludeTurningPoints = true
	if r := NewRayCaster().Cast(g, p, ShouldContinueCast(g)); r.MapHit.X != 3 {
		t.Fatalf("turning point ignored, hit %v", r.MapHit)
	}
}

func TestDoorHitMonotonic(t *testing.T) {
	g := buildWorld(
		"######",
		"#..|.#",
		"######",
	)
	p := Parameters{From: model.Vec(1.5, 1.3), Direction: model.Vec(1, 0.1)}
	pos := model.MapPosition{X: 3, Y: 1}

	transitions := 0
	prev := true
	for offset := 0.0; offset <= model.DoorOffsetMax; offset++ {
		door := g.Doors[0]
		door.Offset = offset
		hit := IsDoorHit(1, 1, p, pos, model.NorthSouth, door)
		if offset == 0 && !hit {
			t.Fatal("closed door not hit")
		}
		if hit != prev {
			transitions++
			if hit {
				t.Fatalf("door became solid again at offset %g", offset)
			}
		}
		prev = hit
	}
	if transitions != 1 || prev {
		t.Fatalf("transitions = %d, final hit = %v", transitions, prev)
	}
}

func TestRayPassesOpenDoor(t *testing.T) {
	g := buildWorld(
		"######",
		"#..|.#",
		"######",
	)
	p := Parameters{From: model.Vec(1.5, 1.5), Direction: model.Vec(1, 0)}
	if r := NewRayCaster().Cast(g, p, ShouldContinueCast(g)); r.MapHit.X != 3 {
		t.Fatalf("closed door not hit: %v", r.MapHit)
	}
	g = g.WithDoor(0, model.DoorState{Offset: model.DoorOffsetMax, Status: model.DoorOpen})
	if r := NewRayCaster().Cast(g, p, ShouldContinueCast(g)); r.MapHit.X != 5 {
		t.Fatalf("open door blocked the ray at %v", r.MapHit)
	}
}

func TestEastWestDoor(t *testing.T) {
	g := buildWorld(
		"###",
		"#.#",
		"#-#",
		"#.#",
		"###",
	)
	p := Parameters{From: model.Vec(1.5, 3.5), Direction: model.Vec(0, -1)}
	r := NewRayCaster().Cast(g, p, ShouldContinueCast(g))
	if r.MapHit != (model.MapPosition{X: 1, Y: 2}) || r.Side != model.EastWest {
		t.Fatalf("hit %v side %s", r.MapHit, r.Side)
	}
}

func TestNearAxisRayMissesDoorPanel(t *testing.T) {
	g := buildWorld(
		"#####",
		"#...#",
		"#..|#",
		"#####",
	)
	// grazes the west face of the door cell and reaches the frame below long
	// before the recessed panel
	p := Parameters{From: model.Vec(2.9999998, 2.2), Direction: model.Vec(1e-6, 1)}
	if IsDoorHit(1, 1, p, model.MapPosition{X: 3, Y: 2}, model.NorthSouth, g.Doors[0]) {
		t.Fatal("near-axis ray hit the panel")
	}
	r := NewRayCaster().Cast(g, p, ShouldContinueCast(g))
	if r.MapHit != (model.MapPosition{X: 3, Y: 3}) || r.Side != model.EastWest {
		t.Fatalf("hit %v side %s, want the frame below", r.MapHit, r.Side)
	}
	if d := r.PerpendicularDistance(); math.IsNaN(d) || math.IsInf(d, 0) {
		t.Fatalf("distance = %g", d)
	}

	// a zero component never divides
	flat := Parameters{From: model.Vec(2.5, 2.5), Direction: model.Vec(0, 1)}
	if IsDoorHit(1, 1, flat, model.MapPosition{X: 3, Y: 2}, model.NorthSouth, g.Doors[0]) {
		t.Fatal("axis-parallel ray hit the panel edge-on")
	}
}

func TestStepRayCaster(t *testing.T) {
	g := buildWorld(
		"#####",
		"#...#",
		"#####",
	)
	s := NewStepRayCaster()
	p := Parameters{From: model.Vec(1.5, 1.5), Direction: model.Vec(1, 0)}
	cont := ShouldContinueCast(g)

	var r Result
	for i := 0; i < 2; i++ {
		r = s.Cast(g, p, cont)
		if r.IsComplete {
			t.Fatalf("step %d complete early at %v", i, r.MapHit)
		}
	}
	r = s.Cast(g, p, cont)
	if !r.IsComplete || !r.IsHit || r.MapHit.X != 4 {
		t.Fatalf("third step = %+v", r)
	}
	if again := s.Cast(g, p, cont); again != r {
		t.Fatalf("terminal result changed: %+v", again)
	}
	if n := len(s.MapSquaresTested()); n != 3 {
		t.Fatalf("squares tested = %d", n)
	}

	oneShot := NewRayCaster().Cast(g, p, cont)
	if oneShot != r {
		t.Fatalf("step result %+v differs from one-shot %+v", r, oneShot)
	}

	s.Stop()
	if _, ok := s.Result(); ok {
		t.Fatal("result survived Stop")
	}
}
