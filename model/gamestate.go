package model

// GameState is the per-frame snapshot. Update builds a new one from the old one;
// the map geometry is shared between snapshots and never written after load.
type GameState struct {
	Level          int
	Map            Map
	Areas          [][]int
	CompositeAreas []CompositeArea
	GameObjects    []GameObject
	Player         Player
	Camera         Camera
	ControlState   ControlState
	IsFiring       bool
	// nil when no weapon animation is running
	TimeToNextWeaponFrame *float64
	Doors                 []DoorState
	ViewportFilter        *OverlayAnimation
	PixelDissolver        *PixelDissolver
}

func (g GameState) Cell(p MapPosition) Cell { return g.Map.At(p) }

func (g GameState) InMap(p MapPosition) bool { return g.Map.InMap(p) }

func (g GameState) Door(index int) DoorState { return g.Doors[index] }

// DoorAt returns the door state for a door cell.
func (g GameState) DoorAt(p MapPosition) (DoorState, int, bool) {
	if d, ok := g.Map.At(p).(Door); ok {
		return g.Doors[d.DoorIndex], d.DoorIndex, true
	}
	return DoorState{}, -1, false
}

func (g GameState) PlayerMapPosition() MapPosition {
	return g.Camera.Position.ToMap()
}

// WithDoor returns a snapshot whose door table has d at index. The receiver's
// table is left untouched.
func (g GameState) WithDoor(index int, d DoorState) GameState {
	doors := CloneDoors(g.Doors)
	doors[index] = d
	g.Doors = doors
	return g
}

func (g GameState) WithGameObjects(objects []GameObject) GameState {
	g.GameObjects = objects
	return g
}

// Clone copies every per-frame field so the result can be changed freely.
func (g GameState) Clone() GameState {
	out := g
	out.Doors = CloneDoors(g.Doors)
	out.Player.Weapons = CloneWeapons(g.Player.Weapons)
	if g.Areas != nil {
		out.Areas = MustClone(g.Areas)
	}
	out.GameObjects = append([]GameObject(nil), g.GameObjects...)
	out.CompositeAreas = append([]CompositeArea(nil), g.CompositeAreas...)
	if g.TimeToNextWeaponFrame != nil {
		t := *g.TimeToNextWeaponFrame
		out.TimeToNextWeaponFrame = &t
	}
	if g.ViewportFilter != nil {
		f := *g.ViewportFilter
		out.ViewportFilter = &f
	}
	if g.PixelDissolver != nil {
		d := *g.PixelDissolver
		d.RemainingPixels = append([]MapPosition(nil), d.RemainingPixels...)
		d.DrawnPixels = append([]MapPosition(nil), d.DrawnPixels...)
		out.PixelDissolver = &d
	}
	return out
}
