// SPDX-License-Identifier: MIT

// Package pairset: the PairSet container itself. Construction, single-pair
// mutation, membership, capacity control, and rendering live here; shape
// rasterizers, set algebra, sampling, and iteration live in sibling files.
package pairset

import (
	"iter"
	"strings"
)

// PairSet is a sorted, duplicate-free collection of integer (X, Y) pairs.
//
// The backing slice always holds the member pairs contiguously in ascending
// order under the set's Ordering, so membership is a binary search and
// traversal is a linear scan. A PairSet is not safe for concurrent use;
// callers that share one across goroutines must serialize access.
type PairSet struct {
	pairs []Pair // len == Size, cap == Cap, sorted under cmp, no duplicates
	cmp   Ordering
}

// New returns an empty set configured by opts: capacity DefaultCapacity and
// the canonical ComparePairs ordering unless overridden.
// Complexity: O(1) plus the backing allocation.
func New(opts ...Option) *PairSet {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &PairSet{pairs: make([]Pair, 0, cfg.capacity), cmp: cfg.cmp}
}

// newSized returns an empty set with an exact capacity and an inherited
// ordering. Internal factory for derived sets (clones, algebra, samples).
func newSized(capacity int, cmp Ordering) *PairSet {
	return &PairSet{pairs: make([]Pair, 0, capacity), cmp: cmp}
}

// FromPairs returns a set holding the given pairs, deduplicated and sorted.
// Complexity: O(k^2) worst case for k input pairs (insertion per pair);
// O(k log k) when the input is already nearly sorted.
func FromPairs(pairs ...Pair) *PairSet {
	out := New(WithCapacity(len(pairs)))
	for _, p := range pairs {
		out.Add(p.X, p.Y)
	}

	return out
}

// FromSeq drains seq into a fresh set. Pairing it with All gives a
// round-trip: FromSeq(s.All()) is equivalent to s.Clone() for sets using
// the canonical ordering.
func FromSeq(seq iter.Seq[Pair]) *PairSet {
	out := New()
	for p := range seq {
		out.Add(p.X, p.Y)
	}

	return out
}

// Point returns a set holding the single pair (x, y).
func Point(x, y int) *PairSet {
	return New(WithCapacity(1)).Add(x, y)
}

// search locates p in the sorted backing slice. It returns the index of the
// matching pair and true, or the insertion index and false.
// Complexity: O(log n).
func (s *PairSet) search(p Pair) (int, bool) {
	lo, hi := 0, len(s.pairs)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch c := s.cmp(s.pairs[mid], p); {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid
		default:
			return mid, true
		}
	}

	return lo, false
}

// grow doubles the backing capacity (minimum 1), preserving contents.
func (s *PairSet) grow() {
	next := make([]Pair, len(s.pairs), max(1, 2*cap(s.pairs)))
	copy(next, s.pairs)
	s.pairs = next
}

// Add inserts (x, y) and returns the set for chaining. Adding a pair that
// is already present leaves the set unchanged. When the backing slice is
// full its capacity doubles before the insert.
// Complexity: O(log n) search plus O(n) shift in the worst case.
func (s *PairSet) Add(x, y int) *PairSet {
	p := Pair{X: x, Y: y}
	if _, ok := s.search(p); ok {
		return s
	}
	if len(s.pairs) == cap(s.pairs) {
		s.grow()
	}
	s.pairs = append(s.pairs, p)
	// Bubble the appended pair left until the sorted invariant holds again.
	for i := len(s.pairs) - 1; i > 0 && s.cmp(s.pairs[i], s.pairs[i-1]) < 0; i-- {
		s.pairs[i], s.pairs[i-1] = s.pairs[i-1], s.pairs[i]
	}

	return s
}

// Remove deletes (x, y) and returns the set for chaining. Removing an
// absent pair is a no-op. Capacity is retained.
// Complexity: O(log n) search plus O(n) shift.
func (s *PairSet) Remove(x, y int) *PairSet {
	i, ok := s.search(Pair{X: x, Y: y})
	if !ok {
		return s
	}
	s.pairs = append(s.pairs[:i], s.pairs[i+1:]...)

	return s
}

// Contains reports whether (x, y) is a member.
// Complexity: O(log n).
func (s *PairSet) Contains(x, y int) bool {
	_, ok := s.search(Pair{X: x, Y: y})

	return ok
}

// Get returns the i-th pair in sorted order, with ok=false when i is out
// of range.
// Complexity: O(1).
func (s *PairSet) Get(i int) (Pair, bool) {
	if i < 0 || i >= len(s.pairs) {
		return Pair{}, false
	}

	return s.pairs[i], true
}

// Size returns the number of member pairs.
func (s *PairSet) Size() int { return len(s.pairs) }

// Cap returns the current backing capacity.
func (s *PairSet) Cap() int { return cap(s.pairs) }

// IsEmpty reports whether the set has no members.
func (s *PairSet) IsEmpty() bool { return len(s.pairs) == 0 }

// Clear removes every pair, retaining capacity, and returns the set.
// Complexity: O(1).
func (s *PairSet) Clear() *PairSet {
	s.pairs = s.pairs[:0]

	return s
}

// Translate shifts every member by (dx, dy) in place and returns the set.
// Under the canonical ordering a uniform shift preserves the sorted layout,
// so the restore pass below degrades to a single linear scan.
// Complexity: O(n) canonical; O(n^2) worst case under exotic orderings.
func (s *PairSet) Translate(dx, dy int) *PairSet {
	for i := range s.pairs {
		s.pairs[i].X += dx
		s.pairs[i].Y += dy
	}
	// Insertion sort: a no-op scan whenever the ordering is shift-invariant.
	for i := 1; i < len(s.pairs); i++ {
		for j := i; j > 0 && s.cmp(s.pairs[j], s.pairs[j-1]) < 0; j-- {
			s.pairs[j], s.pairs[j-1] = s.pairs[j-1], s.pairs[j]
		}
	}

	return s
}

// SetCapacity reallocates the backing slice to exactly capacity. Shrinking
// below Size keeps the capacity lowest-ordered pairs and drops the rest.
// Panics with a stable message when capacity is negative.
// Complexity: O(min(n, capacity)).
func (s *PairSet) SetCapacity(capacity int) *PairSet {
	if capacity < 0 {
		panic(panicSetCapacity)
	}
	if capacity == cap(s.pairs) {
		return s
	}
	keep := min(len(s.pairs), capacity)
	next := make([]Pair, keep, capacity)
	copy(next, s.pairs[:keep])
	s.pairs = next

	return s
}

// Equal reports whether both sets hold exactly the same pairs, regardless
// of their orderings.
// Complexity: O(n log n).
func (s *PairSet) Equal(o *PairSet) bool {
	if s.Size() != o.Size() {
		return false
	}
	for _, p := range s.pairs {
		if !o.Contains(p.X, p.Y) {
			return false
		}
	}

	return true
}

// All returns a single-use range-over-func sequence of the member pairs in
// sorted order. Mutating the set during iteration is undefined; use Iter
// for removal while traversing.
func (s *PairSet) All() iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		for _, p := range s.pairs {
			if !yield(p) {
				return
			}
		}
	}
}

// String renders the set as "[(x, y), (x, y), ...]" in sorted order.
// Complexity: O(n).
func (s *PairSet) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range s.pairs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(s.pairs[i].String())
	}
	sb.WriteByte(']')

	return sb.String()
}
