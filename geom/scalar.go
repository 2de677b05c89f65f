// Package geom: generic scalar helpers. All functions are pure; none
// clamp their inputs unless the doc comment says so.
package geom

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number groups the scalar types the generic helpers accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// Abs returns the absolute value of v.
func Abs[T Number](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// Clamp coerces v into [lo, hi].
// Example: Clamp(32, -16, 16) returns 16.
func Clamp[T Number](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// Wrap coerces v into the half-open interval [lo, hi) by wrapping.
// Example: Wrap(-1000, -16, 16) returns -8.
func Wrap[T constraints.Float](v, lo, hi T) T {
	r := hi - lo
	v = T(math.Mod(float64(v-lo), float64(r)))
	if v < 0 {
		v += r
	}

	return v + lo
}

// WrapInt coerces v into the half-open interval [lo, hi) by wrapping.
// Example: WrapInt(32, -16, 16) returns 0.
func WrapInt[T constraints.Integer](v, lo, hi T) T {
	r := hi - lo
	v = (v - lo) % r
	if v < 0 {
		v += r
	}

	return v + lo
}

// Lerp returns the linear interpolation between a and b at factor:
// factor 0 yields a, factor 1 yields b. The factor is not clamped, so
// values outside [0, 1] extrapolate.
func Lerp[T constraints.Float](factor, a, b T) T {
	return factor*(b-a) + a
}

// InterpolationFactor returns where v sits between lo and hi as a factor:
// the inverse of Lerp. Not clamped.
func InterpolationFactor[T constraints.Float](v, lo, hi T) T {
	return (v - lo) / (hi - lo)
}

// CosineInterp interpolates between a and b at factor along a half cosine,
// easing both endpoints.
func CosineInterp(factor, a, b float64) float64 {
	f := (1 - math.Cos(factor*math.Pi)) * 0.5

	return Lerp(f, a, b)
}

// CubicInterp interpolates between b and c at factor on the cubic through
// the four samples a, b, c, d, using a and d to shape the tangents.
func CubicInterp(factor, a, b, c, d float64) float64 {
	p := (d - c) - (a - b)
	q := (a - b) - p
	r := c - a
	s := b

	return p*factor*factor*factor + q*factor*factor + r*factor + s
}

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}
