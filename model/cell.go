package model

import "fmt"

// -- cells

// Cell is one map tile. Its variant and position are fixed once the map is built;
// door runtime state lives in GameState.Doors and is referenced by index.
//
// The set of variants is closed: Wall, Door, TurningPoint and Empty.
type Cell interface {
	Position() MapPosition
	isCell()
}

// reserved wall texture indices
const (
	ExitTextureIndex       = 40
	ExitTextureIndexAlt    = 41
	DoorFrameNorthSouthTex = 100
	DoorFrameEastWestTex   = 101
)

type Wall struct {
	MapPosition            MapPosition
	NorthSouthTextureIndex int
	EastWestTextureIndex   int
}

func (w Wall) Position() MapPosition { return w.MapPosition }
func (Wall) isCell()                 {}

func (w Wall) IsExit() bool {
	return w.NorthSouthTextureIndex == ExitTextureIndex || w.EastWestTextureIndex == ExitTextureIndex ||
		w.NorthSouthTextureIndex == ExitTextureIndexAlt || w.EastWestTextureIndex == ExitTextureIndexAlt
}

// TextureIndex picks the face texture for the axis family a ray crossed.
func (w Wall) TextureIndex(side Side) int {
	if side == NorthSouth {
		return w.NorthSouthTextureIndex
	}
	return w.EastWestTextureIndex
}

type Door struct {
	MapPosition MapPosition
	DoorIndex   int
}

func (d Door) Position() MapPosition { return d.MapPosition }
func (Door) isCell()                 {}

// TurningPoint steers patrolling enemies. Rays pass through unless asked not to.
type TurningPoint struct {
	MapPosition      MapPosition
	TurnsToDirection MapDirection
}

func (t TurningPoint) Position() MapPosition { return t.MapPosition }
func (TurningPoint) isCell()                 {}

type Empty struct {
	MapPosition MapPosition
}

func (e Empty) Position() MapPosition { return e.MapPosition }
func (Empty) isCell()                 {}

// Side is the family of grid lines a ray crossed last. NorthSouth faces lie on
// x = const lines, EastWest faces on y = const lines.
type Side int

const (
	NorthSouth Side = iota
	EastWest
)

func (s Side) String() string {
	if s == NorthSouth {
		return "north-south"
	}
	return "east-west"
}

// -- map

// Map is indexed [y][x].
type Map [][]Cell

func (m Map) Height() int { return len(m) }

func (m Map) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

func (m Map) InMap(p MapPosition) bool {
	return p.Y >= 0 && p.Y < len(m) && p.X >= 0 && p.X < len(m[p.Y])
}

// At returns the cell at p. Positions outside the map read as Empty.
func (m Map) At(p MapPosition) Cell {
	if !m.InMap(p) {
		return Empty{MapPosition: p}
	}
	return m[p.Y][p.X]
}

// -- doors

type DoorDirection int

const (
	DoorNorthSouth DoorDirection = iota
	DoorEastWest
)

func (d DoorDirection) String() string {
	if d == DoorNorthSouth {
		return "north-south"
	}
	return "east-west"
}

type DoorStatus int

const (
	DoorClosed DoorStatus = iota
	DoorOpening
	DoorOpen
	DoorClosing
)

func (s DoorStatus) String() string {
	switch s {
	case DoorClosed:
		return "closed"
	case DoorOpening:
		return "opening"
	case DoorOpen:
		return "open"
	case DoorClosing:
		return "closing"
	}
	return fmt.Sprintf("DoorStatus(%d)", int(s))
}

// DoorOffsetMax is the offset of a fully retracted door, in texture units.
const DoorOffsetMax = 64.0

// NoArea marks area ids that have not been computed.
const NoArea = -1

type DoorState struct {
	TextureIndex int
	Direction    DoorDirection
	Status       DoorStatus
	// 0 closed .. DoorOffsetMax fully open
	Offset float64
	// milliseconds left in the current phase
	TimeRemainingInAnimation float64
	MapPosition              MapPosition
	AreaOne                  int
	AreaTwo                  int
}

func NewDoorState(textureIndex int, direction DoorDirection, position MapPosition) DoorState {
	return DoorState{
		TextureIndex: textureIndex,
		Direction:    direction,
		Status:       DoorClosed,
		MapPosition:  position,
		AreaOne:      NoArea,
		AreaTwo:      NoArea,
	}
}
