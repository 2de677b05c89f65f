// SPDX-License-Identifier: MIT

// Package pairset: core types, the canonical ordering, functional options,
// and the stable panic messages used for contract violations.
package pairset

import "fmt"

// DefaultCapacity is the backing capacity of a set built without WithCapacity.
const DefaultCapacity = 32

// Internal panic messages (no magic strings).
const (
	panicCapacityNegative = "pairset: WithCapacity: capacity must be non-negative"
	panicOrderingNil      = "pairset: WithOrdering: ordering must be non-nil"
	panicSetCapacity      = "pairset: SetCapacity: capacity must be non-negative"
	panicNextExhausted    = "pairset: Iterator.Next: no pairs remain; guard with HasNext"
	panicRemoveBeforeNext = "pairset: Iterator.Remove: no preceding call to Next"
	panicRemoveTwice      = "pairset: Iterator.Remove: called twice for the same pair"
)

// Pair is a single integer (X, Y) grid coordinate.
// Pairs are plain values: they may be copied, compared with ==, and used
// as map keys.
type Pair struct {
	X, Y int
}

// String renders the pair as "(x, y)".
func (p Pair) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Ordering is a strict total order over pairs. It returns a negative value
// when a sorts before b, zero when equal, and a positive value otherwise.
type Ordering func(a, b Pair) int

// ComparePairs is the canonical ordering: ascending X, then ascending Y.
// Every set built by New uses it unless WithOrdering overrides it.
// Complexity: O(1).
func ComparePairs(a, b Pair) int {
	switch {
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return +1
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return +1
	default:
		return 0
	}
}

// Source supplies the uniform randomness consumed by the sampling operations.
// Both *rng.Rand and *rand.Rand from math/rand/v2 satisfy it.
type Source interface {
	// IntN returns a uniform int in [0, n). It panics if n <= 0.
	IntN(n int) int
	// Float64 returns a uniform float64 in [0, 1).
	Float64() float64
}

// Option mutates construction-time configuration. Constructors panic only
// on nonsensical values (programmer error).
type Option func(*config)

// config stores the effective configuration after applying Option setters.
type config struct {
	capacity int
	cmp      Ordering
}

func defaultConfig() config {
	return config{capacity: DefaultCapacity, cmp: ComparePairs}
}

// WithCapacity sets the initial backing capacity.
// Panics with a stable message when capacity is negative.
// Complexity: O(1).
func WithCapacity(capacity int) Option {
	if capacity < 0 {
		panic(panicCapacityNegative)
	}

	return func(c *config) { c.capacity = capacity }
}

// WithOrdering replaces the canonical ordering for one set. The ordering
// must be a strict total order; membership tests and the sorted layout both
// depend on it. Panics with a stable message when cmp is nil.
// Complexity: O(1).
func WithOrdering(cmp Ordering) Option {
	if cmp == nil {
		panic(panicOrderingNil)
	}

	return func(c *config) { c.cmp = cmp }
}
