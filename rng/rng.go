// SPDX-License-Identifier: MIT

package rng

import "github.com/MichaelTJones/pcg"

// defaultSequence selects the PCG stream used by every Rand. Fixed so that
// a seed alone reproduces a run.
const defaultSequence = 0xda3e39cb94b95bdb

// panicIntNBound is the stable message for non-positive IntN bounds.
const panicIntNBound = "rng: IntN: n must be positive"

// Rand is a deterministic uniform source. It is not safe for concurrent
// use; give each goroutine its own Rand.
type Rand struct {
	r *pcg.PCG32
}

// New returns a Rand in the generator's default state. Use NewSeeded or
// Seed for reproducible streams.
func New() *Rand {
	return &Rand{r: pcg.NewPCG32()}
}

// NewSeeded returns a Rand seeded with seed.
func NewSeeded(seed int64) *Rand {
	r := New()
	r.Seed(seed)

	return r
}

// Seed resets the generator to the stream determined by seed.
func (r *Rand) Seed(seed int64) {
	r.r.Seed(uint64(seed), defaultSequence)
}

// Uint32 returns the next raw 32-bit draw.
func (r *Rand) Uint32() uint32 {
	return r.r.Random()
}

// IntN returns a uniform int in [0, n) via rejection sampling.
// Panics with a stable message when n is not positive.
func (r *Rand) IntN(n int) int {
	if n <= 0 {
		panic(panicIntNBound)
	}

	return int(r.r.Bounded(uint32(n)))
}

// Float64 returns a uniform float64 in [0, 1) with 2^-32 resolution.
func (r *Rand) Float64() float64 {
	return float64(r.r.Random()) / (1 << 32)
}

// Float32 returns a uniform float32 in [0, 1). The draw keeps the top 24
// bits so the result can never round up to 1.
func (r *Rand) Float32() float32 {
	return float32(r.r.Random()>>8) / (1 << 24)
}
