// Package wave: the time-driven oscillator.
package wave

import (
	"math"
	"time"

	"github.com/katalvlaran/gridset/geom"
)

// Wave drives a Form from elapsed time: the period maps wall-clock time
// onto one waveform cycle, and the offset shifts the phase, measured in
// wavelengths. Wave is a small value; copy it freely. The zero Wave
// samples the None form forever.
type Wave struct {
	// Form is the waveform sampled each cycle. Nil behaves like None.
	Form Form
	// Period is the duration of one full cycle. A zero or negative
	// period pins the wave to its period start.
	Period time.Duration
	// Offset shifts the phase, in wavelengths: 0.25 starts a quarter
	// cycle in.
	Offset float64
}

// NewWave returns a Wave over form with the given period and phase offset.
func NewWave(form Form, period time.Duration, offset float64) Wave {
	return Wave{Form: form, Period: period, Offset: offset}
}

// Sample returns the waveform value at the given elapsed time: the
// position within the current cycle, phase-shifted by Offset, fed to the
// Form.
func (w Wave) Sample(elapsed time.Duration) float64 {
	var t float64
	if w.Period > 0 {
		t = float64(elapsed%w.Period) / float64(w.Period)
	}
	t = math.Mod(t+w.Offset, 1)

	form := w.Form
	if form == nil {
		form = None
	}

	return form.Sample(t)
}

// Interpolate samples the wave at the given elapsed time, maps the result
// from [-1, 1] onto [0, 1], and lerps between a and b with it.
func (w Wave) Interpolate(elapsed time.Duration, a, b float64) float64 {
	return geom.Lerp((w.Sample(elapsed)+1)/2, a, b)
}
