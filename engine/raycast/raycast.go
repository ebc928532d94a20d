// Package raycast walks rays through the map grid one cell boundary at a time.
package raycast

import (
	"math"

	"wolfcore/model"
)

// World is the read-only view of the level a ray needs.
type World interface {
	Cell(p model.MapPosition) model.Cell
	Door(index int) model.DoorState
	InMap(p model.MapPosition) bool
}

type Parameters struct {
	// TurningPoint cells stop the ray when set.
	IncludeTurningPoints bool
	From                 model.Vector2D
	Direction            model.Vector2D
}

type Result struct {
	IsComplete        bool
	IsHit             bool
	DeltaDistance     model.Vector2D
	TotalSideDistance model.Vector2D
	MapHit            model.MapPosition
	Side              model.Side
}

// PerpendicularDistance is the distance to the last crossed grid line projected
// onto the camera axis.
func (r Result) PerpendicularDistance() float64 {
	if r.Side == model.NorthSouth {
		return r.TotalSideDistance.X - r.DeltaDistance.X
	}
	return r.TotalSideDistance.Y - r.DeltaDistance.Y
}

// ContinueFunc reports whether the cast should advance past r.
type ContinueFunc func(r Result) bool

// Caster is implemented by RayCaster and StepRayCaster.
type Caster interface {
	Cast(world World, p Parameters, shouldContinue ContinueFunc) Result
}

// ShouldContinueCast stops on the first hit or when the ray leaves the map.
func ShouldContinueCast(world World) ContinueFunc {
	return func(r Result) bool {
		return !r.IsHit && world.InMap(r.MapHit)
	}
}

// -- grid traversal

type traversal struct {
	stepX, stepY int
}

func deltaDistance(component float64) float64 {
	if component == 0 {
		return math.MaxFloat64
	}
	return math.Abs(1.0 / component)
}

// start computes the initial state for a ray from p.From.
func start(p Parameters) (Result, traversal) {
	m := p.From.ToMap()
	delta := model.Vec(deltaDistance(p.Direction.X), deltaDistance(p.Direction.Y))
	t := traversal{stepX: 1, stepY: 1}

	var sideX, sideY float64
	if p.Direction.X < 0 {
		t.stepX = -1
		sideX = (p.From.X - float64(m.X)) * delta.X
	} else {
		sideX = (float64(m.X) + 1.0 - p.From.X) * delta.X
	}
	if p.Direction.Y < 0 {
		t.stepY = -1
		sideY = (p.From.Y - float64(m.Y)) * delta.Y
	} else {
		sideY = (float64(m.Y) + 1.0 - p.From.Y) * delta.Y
	}

	side := model.EastWest
	if sideX < sideY {
		side = model.NorthSouth
	}
	return Result{
		DeltaDistance:     delta,
		TotalSideDistance: model.Vec(sideX, sideY),
		MapHit:            m,
		Side:              side,
	}, t
}

// advance moves r across the nearer grid line and classifies the new cell.
func advance(world World, p Parameters, t traversal, r Result) Result {
	if r.TotalSideDistance.X < r.TotalSideDistance.Y {
		r.MapHit = r.MapHit.Add(t.stepX, 0)
		r.TotalSideDistance.X += r.DeltaDistance.X
		r.Side = model.NorthSouth
	} else {
		r.MapHit = r.MapHit.Add(0, t.stepY)
		r.TotalSideDistance.Y += r.DeltaDistance.Y
		r.Side = model.EastWest
	}

	switch c := world.Cell(r.MapHit).(type) {
	case model.Wall:
		r.IsHit = true
	case model.Door:
		r.IsHit = IsDoorHit(t.stepX, t.stepY, p, r.MapHit, r.Side, world.Door(c.DoorIndex))
	case model.TurningPoint:
		r.IsHit = p.IncludeTurningPoints
	case model.Empty:
		r.IsHit = false
	default:
		r.IsHit = false
	}
	return r
}

// -- doors

const (
	doorTolerance    = 0.0001
	doorSentinelStep = 100.0
)

// IsDoorHit reports whether a ray entering door cell newMap across a side strikes
// the door panel. The panel sits on the cell's centre line and has retracted by
// door.Offset texture units, so the ray is advanced half a cell past the entry
// line and its lateral position compared with the solid part of the panel.
func IsDoorHit(stepX, stepY int, p Parameters, newMap model.MapPosition, side model.Side, door model.DoorState) bool {
	from, dir := p.From, p.Direction
	solid := 1.0 - door.Offset/model.DoorOffsetMax

	if side == model.NorthSouth {
		entryX := float64(newMap.X)
		if stepX < 0 {
			entryX++
		}
		yAtEntry, lateral := from.Y, doorSentinelStep
		if dir.X != 0 {
			yAtEntry = from.Y + dir.Y*(entryX-from.X)/dir.X
		}
		if math.Abs(dir.X) >= doorTolerance {
			lateral = math.Min(math.Abs(dir.Y/dir.X), doorSentinelStep)
		}
		halfStep := yAtEntry + float64(stepY)*lateral/2.0
		return int(math.Floor(halfStep)) == newMap.Y && halfStep-float64(newMap.Y) < solid
	}

	entryY := float64(newMap.Y)
	if stepY < 0 {
		entryY++
	}
	xAtEntry, lateral := from.X, doorSentinelStep
	if dir.Y != 0 {
		xAtEntry = from.X + dir.X*(entryY-from.Y)/dir.Y
	}
	if math.Abs(dir.Y) >= doorTolerance {
		lateral = math.Min(math.Abs(dir.X/dir.Y), doorSentinelStep)
	}
	halfStep := xAtEntry + float64(stepX)*lateral/2.0
	return int(math.Floor(halfStep)) == newMap.X && halfStep-float64(newMap.X) < solid
}
