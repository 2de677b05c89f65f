// Package wave provides periodic waveforms sampled over one period, and
// the Wave oscillator that drives them from elapsed time.
//
// What
//
//   - Form, the sampleable waveform interface: Sample maps a position in
//     [0, 1) along one period to a value in [-amplitude, amplitude].
//   - Stock forms: Sine, Triangle, Square, Sawtooth and its inverse, the
//     squared family, and None (a flat -1).
//   - Noise, a form fed by a caller-supplied uniform source.
//   - Polynomial, an arbitrary-coefficient form for custom shapes.
//   - Wave, which owns a Form plus a period and phase offset and samples
//     it from a time.Duration.
//
// Why
//
//   - Oscillators drive pulsing, flicker, and modulation effects; keeping
//     the waveform pure (position in, value out) makes every form usable
//     both standalone and time-driven.
//
// Determinism: every stock form is a pure function of its input; Noise is
// exactly as deterministic as the source behind it.
//
// Stock forms wrap their input into [0, 1), so any position is valid.
package wave
