package model

import "math"

// -- camera

type Camera struct {
	Position    Vector2D
	Direction   Vector2D
	Plane       Vector2D
	FieldOfView float64
}

// NewCamera derives the plane from the facing; its length sets the projection width.
func NewCamera(position, direction Vector2D, fieldOfView float64) Camera {
	dir := direction.Normalize()
	return Camera{
		Position:    position,
		Direction:   dir,
		Plane:       dir.CrossProduct().Scale(fieldOfView),
		FieldOfView: fieldOfView,
	}
}

// Rotate turns direction and plane together.
func (c Camera) Rotate(radians float64) Camera {
	c.Direction = c.Direction.Rotate(radians)
	c.Plane = c.Plane.Rotate(radians)
	return c
}

// DefaultFieldOfView gives the classic 66 degree view.
var DefaultFieldOfView = math.Tan(66.0 * math.Pi / 360.0)
