package model

import (
	"fmt"
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

// -- vector

// Vector2D is an immutable 2D vector in world (tile) units.
type Vector2D geom.Vector2

func Vec(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

var (
	Zero = Vector2D{}
	One  = Vector2D{X: 1, Y: 1}
)

func (v Vector2D) Add(o Vector2D) Vector2D  { return Vector2D{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vector2D) Sub(o Vector2D) Vector2D  { return Vector2D{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vector2D) Scale(s float64) Vector2D { return Vector2D{X: v.X * s, Y: v.Y * s} }
func (v Vector2D) Div(s float64) Vector2D   { return Vector2D{X: v.X / s, Y: v.Y / s} }
func (v Vector2D) Abs() Vector2D            { return Vector2D{X: math.Abs(v.X), Y: math.Abs(v.Y)} }
func (v Vector2D) Reverse() Vector2D        { return Vector2D{X: -v.X, Y: -v.Y} }
func (v Vector2D) Magnitude() float64       { return math.Sqrt(v.X*v.X + v.Y*v.Y) }
func (v Vector2D) Geom() geom.Vector2       { return geom.Vector2(v) }
func (v Vector2D) String() string           { return fmt.Sprintf("{ vX: %g, vY: %g }", v.X, v.Y) }
func (v Vector2D) UnsquaredDistanceFrom(o Vector2D) float64 {
	dx, dy := v.X-o.X, v.Y-o.Y
	return dx*dx + dy*dy
}

// Normalize returns the unit vector. The zero vector stays zero.
func (v Vector2D) Normalize() Vector2D {
	m := v.Magnitude()
	if m == 0 {
		return v
	}
	return Vector2D{X: v.X / m, Y: v.Y / m}
}

// Rotate applies the standard rotation matrix. On the y-down map grid a positive
// angle turns clockwise.
func (v Vector2D) Rotate(radians float64) Vector2D {
	ca, sa := math.Cos(radians), math.Sin(radians)
	return Vector2D{X: ca*v.X - sa*v.Y, Y: sa*v.X + ca*v.Y}
}

// CrossProduct returns the perpendicular pointing to the right of v on the map.
// A camera facing v uses it as the plane direction.
func (v Vector2D) CrossProduct() Vector2D {
	return Vector2D{X: -v.Y, Y: v.X}
}

func (v Vector2D) ToMap() MapPosition {
	return MapPosition{X: int(math.Floor(v.X)), Y: int(math.Floor(v.Y))}
}

// VectorFromMapPosition returns the centre of a map cell.
func VectorFromMapPosition(p MapPosition) Vector2D {
	return Vector2D{X: float64(p.X) + 0.5, Y: float64(p.Y) + 0.5}
}

// -- map position

type MapPosition struct {
	X, Y int
}

func (p MapPosition) Add(dx, dy int) MapPosition {
	return MapPosition{X: p.X + dx, Y: p.Y + dy}
}

func (p MapPosition) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// -- direction

type MapDirection int

const (
	North MapDirection = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	NoDirection
)

var directionNames = [...]string{"north", "north-east", "east", "south-east", "south", "south-west", "west", "north-west", "none"}

func (d MapDirection) String() string {
	if d < North || d > NoDirection {
		return fmt.Sprintf("MapDirection(%d)", int(d))
	}
	return directionNames[d]
}

func (d MapDirection) ToDelta() (int, int) {
	switch d {
	case North:
		return 0, -1
	case NorthEast:
		return 1, -1
	case East:
		return 1, 0
	case SouthEast:
		return 1, 1
	case South:
		return 0, 1
	case SouthWest:
		return -1, 1
	case West:
		return -1, 0
	case NorthWest:
		return -1, -1
	}
	return 0, 0
}

// ToVector returns the unit vector for d, zero for NoDirection.
func (d MapDirection) ToVector() Vector2D {
	dx, dy := d.ToDelta()
	return Vec(float64(dx), float64(dy)).Normalize()
}

func (d MapDirection) Reverse() MapDirection {
	if d == NoDirection {
		return NoDirection
	}
	return (d + 4) % 8
}
