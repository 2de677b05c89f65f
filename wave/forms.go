// Package wave: the Form interface and the stock waveforms.
package wave

import (
	"math"

	"github.com/katalvlaran/gridset/geom"
)

// Form is a sampleable waveform.
type Form interface {
	// Sample returns the waveform value at position t along one period,
	// where 0 is the period start and 1 the end. Stock forms wrap t into
	// [0, 1) first.
	Sample(t float64) float64
	// Amplitude returns the waveform's peak magnitude.
	Amplitude() float64
}

// FormFunc adapts a plain function into a Form with amplitude 1.
type FormFunc func(t float64) float64

// Sample evaluates the function.
func (f FormFunc) Sample(t float64) float64 { return f(t) }

// Amplitude returns 1.
func (FormFunc) Amplitude() float64 { return 1 }

// Source supplies the uniform randomness behind Noise. *rng.Rand and
// *rand.Rand from math/rand/v2 both satisfy it.
type Source interface {
	// Float64 returns a uniform float64 in [0, 1).
	Float64() float64
}

// Stock waveforms. All have amplitude 1 and period 1.
var (
	// None is the flat waveform: every sample is -1, so interpolating
	// through it always yields the first bound.
	None Form = FormFunc(func(float64) float64 { return -1 })

	// Sine is sin(2*pi*t).
	Sine Form = FormFunc(func(t float64) float64 {
		return math.Sin(t * 2 * math.Pi)
	})

	// Triangle rises 0 to 1 over the first quarter period, falls to -1
	// through the middle half, and returns to 0 over the last quarter.
	Triangle Form = FormFunc(func(t float64) float64 {
		t = geom.Wrap(t, 0, 1)
		switch {
		case t < 0.25:
			return t / 0.25
		case t < 0.75:
			return 1 - 2*geom.InterpolationFactor(t, 0.25, 0.75)
		default:
			return geom.InterpolationFactor(t, 0.75, 1) - 1
		}
	})

	// Square is -1 through the first half period and +1 through the second.
	Square Form = FormFunc(func(t float64) float64 {
		if geom.Wrap(t, 0, 1) < 0.5 {
			return -1
		}

		return 1
	})

	// Sawtooth climbs linearly from -1 to 1: 2t - 1.
	Sawtooth Form = FormFunc(func(t float64) float64 {
		return 2*geom.Wrap(t, 0, 1) - 1
	})

	// InverseSawtooth falls linearly from 1 to -1.
	InverseSawtooth Form = FormFunc(func(t float64) float64 {
		return -(2*geom.Wrap(t, 0, 1) - 1)
	})

	// Squared climbs parabolically from -1 to 1: 2t^2 - 1.
	Squared Form = FormFunc(func(t float64) float64 {
		t = geom.Wrap(t, 0, 1)

		return 2*t*t - 1
	})

	// InverseSquared falls parabolically from 1 to -1.
	InverseSquared Form = FormFunc(func(t float64) float64 {
		t = geom.Wrap(t, 0, 1)

		return -(2*t*t - 1)
	})

	// ReverseSquared falls parabolically from 1 to -1 with the curvature
	// mirrored: 2*(1-t)^2 - 1.
	ReverseSquared Form = FormFunc(func(t float64) float64 {
		t = 1 - geom.Wrap(t, 0, 1)

		return 2*t*t - 1
	})

	// InverseReverseSquared climbs parabolically from -1 to 1 with the
	// curvature mirrored.
	InverseReverseSquared Form = FormFunc(func(t float64) float64 {
		t = 1 - geom.Wrap(t, 0, 1)

		return -(2*t*t - 1)
	})
)

// Noise returns a waveform that ignores its position and yields a fresh
// uniform value in [-1, 1) from src on every sample.
func Noise(src Source) Form {
	return FormFunc(func(float64) float64 {
		return src.Float64()*2 - 1
	})
}

// InterpolateValue samples f at t, maps the result from [-1, 1] onto
// [0, 1], and lerps between a and b with it.
func InterpolateValue(f Form, t, a, b float64) float64 {
	return geom.Lerp((f.Sample(t)+1)/2, a, b)
}
