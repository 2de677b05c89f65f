// Package geom: Vec2, a plain value 2D vector.
package geom

import (
	"fmt"
	"math"
)

// Vec2 is a 2D float64 vector. It is a value type: methods return new
// vectors and never mutate the receiver.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the 3D cross product of v and o:
// positive when o lies counterclockwise of v.
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// LenSq returns the squared length of v, avoiding the square root.
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// Distance returns the Euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float64 { return v.Sub(o).Len() }

// Normalized returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}

	return v.Scale(1 / l)
}

// WithLen returns v rescaled to length l, keeping its direction. The zero
// vector is returned unchanged.
func (v Vec2) WithLen(l float64) Vec2 {
	return v.Normalized().Scale(l)
}

// Lerp returns the linear interpolation between v and o at factor.
func (v Vec2) Lerp(o Vec2, factor float64) Vec2 {
	return Vec2{Lerp(factor, v.X, o.X), Lerp(factor, v.Y, o.Y)}
}

// Angle returns the angle of v in radians, in (-pi, pi].
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// String renders the vector as "(x, y)" with compact float formatting.
func (v Vec2) String() string { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }
