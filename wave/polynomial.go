// Package wave: Polynomial, an arbitrary-coefficient waveform.
package wave

import "math"

// Polynomial is a Form whose sample is a polynomial of the position:
// the sum of coefficients[i] * t^(start+i). Negative start exponents are
// allowed; sampling one at t=0 yields +Inf or NaN per math.Pow.
type Polynomial struct {
	start  int
	coeffs []float64
}

// NewPolynomial returns a Polynomial beginning at the given exponent.
// The coefficient slice is copied.
func NewPolynomial(startExponent int, coefficients ...float64) *Polynomial {
	coeffs := make([]float64, len(coefficients))
	copy(coeffs, coefficients)

	return &Polynomial{start: startExponent, coeffs: coeffs}
}

// Sample evaluates the polynomial at t. The position is not wrapped;
// polynomials are not periodic.
func (p *Polynomial) Sample(t float64) float64 {
	var out float64
	for i, c := range p.coeffs {
		out += c * math.Pow(t, float64(p.start+i))
	}

	return out
}

// Amplitude returns 1.
func (p *Polynomial) Amplitude() float64 { return 1 }

// StartExponent returns the exponent of the first coefficient.
func (p *Polynomial) StartExponent() int { return p.start }

// Coefficients returns a copy of the coefficient slice.
func (p *Polynomial) Coefficients() []float64 {
	out := make([]float64, len(p.coeffs))
	copy(out, p.coeffs)

	return out
}
