// Package spatial provides the vector, transform and grid types shared by level generation
// and the room runtime.
//
// World axes: +X is east, +Y is north, +Z is up. Room templates are authored in meters and
// placed in world units, UnitScale world units per meter.
package spatial

import (
	"fmt"
	"math"
)

// UnitScale converts template units (meters) into world units.
const UnitScale = 100.0

// Tolerance is the distance under which two points are considered the same.
const Tolerance = 1e-6

// Vector is a point or direction in world space
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Common directions
var (
	Zero  = Vector{}
	North = Vector{Y: 1}
	South = Vector{Y: -1}
	East  = Vector{X: 1}
	West  = Vector{X: -1}
	Up    = Vector{Z: 1}
)

// Add returns v + o
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v * s
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Negate returns -v
func (v Vector) Negate() Vector {
	return v.Scale(-1)
}

// SquaredLength returns |v|^2
func (v Vector) SquaredLength() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns |v|
func (v Vector) Length() float64 {
	return math.Sqrt(v.SquaredLength())
}

// SafeNormal returns v scaled to unit length, or the zero vector when v is too small to normalize.
func (v Vector) SafeNormal() Vector {
	sq := v.SquaredLength()
	if sq < Tolerance*Tolerance {
		return Zero
	}
	return v.Scale(1 / math.Sqrt(sq))
}

// Equals reports whether v and o are within tol of each other on every axis
func (v Vector) Equals(o Vector, tol float64) bool {
	return math.Abs(v.X-o.X) <= tol && math.Abs(v.Y-o.Y) <= tol && math.Abs(v.Z-o.Z) <= tol
}

func (v Vector) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X, v.Y, v.Z)
}

// Transform places a room or actor in the world. Rooms only ever rotate about the vertical axis,
// so orientation is a yaw in radians measured counterclockwise from north.
type Transform struct {
	Position Vector  `json:"position"`
	Yaw      float64 `json:"yaw"`
}

// Rotate rotates a local vector into world orientation without translating or scaling it.
func (t Transform) Rotate(local Vector) Vector {
	sin, cos := math.Sincos(t.Yaw)
	return Vector{
		X: local.X*cos - local.Y*sin,
		Y: local.X*sin + local.Y*cos,
		Z: local.Z,
	}
}

// TransformPoint maps a local point into world space
func (t Transform) TransformPoint(local Vector) Vector {
	return t.Rotate(local).Add(t.Position)
}

// YawFacing returns the yaw that rotates local north onto the horizontal part of dir.
func YawFacing(dir Vector) float64 {
	if math.Abs(dir.X) < Tolerance && math.Abs(dir.Y) < Tolerance {
		return 0
	}
	return math.Atan2(-dir.X, dir.Y)
}

// GridCoord is a cell on the implicit unit grid rooms are laid out on.
type GridCoord struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Add returns g + o
func (g GridCoord) Add(o GridCoord) GridCoord {
	return GridCoord{X: g.X + o.X, Y: g.Y + o.Y, Z: g.Z + o.Z}
}

// Less orders coordinates by X, then Y, then Z
func (g GridCoord) Less(o GridCoord) bool {
	if g.X != o.X {
		return g.X < o.X
	}
	if g.Y != o.Y {
		return g.Y < o.Y
	}
	return g.Z < o.Z
}

func (g GridCoord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", g.X, g.Y, g.Z)
}
