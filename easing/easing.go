package easing

import (
	"math"

	"github.com/katalvlaran/gridset/geom"
)

// Func maps a scalar in [0, 1] to an eased scalar. Every stock curve
// clamps its input to [0, 1] before evaluating.
type Func func(scalar float64) float64

// Interpolate evaluates f at scalar and lerps the result between a and b.
func Interpolate(f Func, scalar, a, b float64) float64 {
	return geom.Lerp(f(scalar), a, b)
}

// Linear is the identity curve.
func Linear(scalar float64) float64 {
	return clamp01(scalar)
}

// QuadIn decelerates quadratically: 1 - (1-t)^2.
func QuadIn(scalar float64) float64 {
	t := clamp01(scalar)

	return 1 - (1-t)*(1-t)
}

// QuadOut accelerates quadratically: t^2.
func QuadOut(scalar float64) float64 {
	t := clamp01(scalar)

	return t * t
}

// QuadInOut accelerates through the first half and decelerates through
// the second, stitched from two half-parabolas meeting at (0.5, 0.5).
func QuadInOut(scalar float64) float64 {
	t := clamp01(scalar) * 2
	if t < 1 {
		return t * t / 2
	}
	t -= 2

	return (2 - t*t) / 2
}

// CubicIn decelerates cubically: 1 - (1-t)^3.
func CubicIn(scalar float64) float64 {
	t := 1 - clamp01(scalar)

	return 1 - t*t*t
}

// CubicOut accelerates cubically: t^3.
func CubicOut(scalar float64) float64 {
	t := clamp01(scalar)

	return t * t * t
}

// CubicInOut accelerates through the first half and decelerates through
// the second, stitched from two half-cubics.
func CubicInOut(scalar float64) float64 {
	t := clamp01(scalar) * 2
	if t < 1 {
		return t * t * t / 2
	}
	t -= 2

	return (t*t*t + 2) / 2
}

// Bounce replays a ball settling under gravity: four parabolic arcs of
// decreasing height, ending exactly at 1.
func Bounce(scalar float64) float64 {
	t := clamp01(scalar)
	const (
		s = 7.5625
		p = 2.75
	)
	switch {
	case t < 1/p:
		return s * t * t
	case t < 2/p:
		t -= 1.5 / p

		return s*t*t + 0.75
	case t < 2.5/p:
		t -= 2.25 / p

		return s*t*t + 0.9375
	default:
		t -= 2.625 / p

		return s*t*t + 0.984375
	}
}

// Elastic overshoots like a released spring: an exponentially damped sine
// settling on 1. Exact at both endpoints.
func Elastic(scalar float64) float64 {
	t := clamp01(scalar)
	if t == 0 || t == 1 {
		return t
	}
	const p = 0.3
	const s = p / 4

	return math.Pow(2, -10*t)*math.Sin((t-s)*(2*math.Pi)/p) + 1
}

// BackIn pulls below zero before accelerating home:
// t^2 * ((s+1)*t - s) with s = 1.70158.
func BackIn(scalar float64) float64 {
	t := clamp01(scalar)
	const s = 1.70158

	return t * t * ((s+1)*t - s)
}

// BackOut overshoots past one before settling:
// (t-1)^2 * ((s+1)*(t-1) + s) + 1 with s = 1.70158.
func BackOut(scalar float64) float64 {
	t := clamp01(scalar) - 1
	const s = 1.70158

	return t*t*((s+1)*t+s) + 1
}

func clamp01(v float64) float64 {
	return geom.Clamp(v, 0, 1)
}
