// SPDX-License-Identifier: MIT

// Package pairset: set algebra. In-place bulk mutators (AddSet, RemoveSet,
// RemoveNotIn) pair with non-destructive counterparts (Union, Difference,
// Intersection) that build and return fresh sets. Derived sets inherit the
// receiver's ordering.
package pairset

// Clone returns an independent copy of the set with the same members,
// ordering, and capacity.
// Complexity: O(n).
func (s *PairSet) Clone() *PairSet {
	out := &PairSet{pairs: make([]Pair, len(s.pairs), cap(s.pairs)), cmp: s.cmp}
	copy(out.pairs, s.pairs)

	return out
}

// AddSet inserts every pair of o into s and returns s for chaining.
// Compare with Union, which leaves both operands untouched.
// Complexity: O(m·n) worst case for m = o.Size().
func (s *PairSet) AddSet(o *PairSet) *PairSet {
	if o == s {
		return s
	}
	for _, p := range o.pairs {
		s.Add(p.X, p.Y)
	}

	return s
}

// RemoveSet deletes every pair of o from s and returns s for chaining.
// Compare with Difference, which leaves both operands untouched.
// Complexity: O(m·n) worst case for m = o.Size().
func (s *PairSet) RemoveSet(o *PairSet) *PairSet {
	if o == s {
		return s.Clear()
	}
	for _, p := range o.pairs {
		s.Remove(p.X, p.Y)
	}

	return s
}

// RemoveNotIn deletes every pair of s that is not a member of o, leaving
// the in-place intersection, and returns s for chaining. Compare with
// Intersection, which builds a fresh set.
// Complexity: O(n·(log m + n)) worst case.
func (s *PairSet) RemoveNotIn(o *PairSet) *PairSet {
	if o == s {
		return s
	}
	it := s.Iter()
	for it.HasNext() {
		p := it.Next()
		if !o.Contains(p.X, p.Y) {
			it.Remove()
		}
	}

	return s
}

// Union returns a new set holding every pair present in s, o, or both.
// Complexity: O((n+m)·n) worst case.
func (s *PairSet) Union(o *PairSet) *PairSet {
	return s.Clone().AddSet(o)
}

// Intersection returns a new set holding the pairs present in both s and
// o. Only the smaller operand is scanned; the larger is probed by binary
// search.
// Complexity: O(min(n,m) · log max(n,m)).
func (s *PairSet) Intersection(o *PairSet) *PairSet {
	smaller, larger := s, o
	if o.Size() < s.Size() {
		smaller, larger = o, s
	}

	out := newSized(smaller.Size(), s.cmp)
	for _, p := range smaller.pairs {
		if larger.Contains(p.X, p.Y) {
			out.Add(p.X, p.Y)
		}
	}

	return out
}

// Difference returns a new set holding the pairs of s that are not in o.
// Complexity: O(m·n) worst case.
func (s *PairSet) Difference(o *PairSet) *PairSet {
	return s.Clone().RemoveSet(o)
}

// Xor returns a new set holding the pairs present in exactly one of s and
// o: the union minus the intersection.
// Complexity: O(m·n) worst case.
func (s *PairSet) Xor(o *PairSet) *PairSet {
	out := s.Clone()
	for _, p := range o.pairs {
		if out.Contains(p.X, p.Y) {
			out.Remove(p.X, p.Y)
		} else {
			out.Add(p.X, p.Y)
		}
	}

	return out
}
