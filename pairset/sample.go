// SPDX-License-Identifier: MIT

// Package pairset: random subset selection. All sampling operations leave
// the receiver untouched, consume randomness only from the Source the
// caller passes in, and inherit the receiver's ordering in their result.
package pairset

// Workspace holds the reusable permutation buffers behind exact-count
// sampling. Reusing one Workspace across calls avoids reallocating the
// identity permutation; its buffers grow monotonically to the largest set
// sampled so far. The zero Workspace is ready to use. A Workspace is not
// safe for concurrent use.
type Workspace struct {
	identity []int // identity permutation [0, 1, ...], grown on demand
	scratch  []int // per-call working copy, partially shuffled
}

// NewWorkspace returns an empty Workspace.
func NewWorkspace() *Workspace { return &Workspace{} }

// permutation returns a length-n copy of the identity permutation inside
// the workspace's scratch buffer, growing both buffers when n exceeds the
// largest size seen so far.
// Complexity: O(n) copy; amortized O(1) growth.
func (w *Workspace) permutation(n int) []int {
	if len(w.identity) < n {
		grown := make([]int, n)
		copy(grown, w.identity)
		for i := len(w.identity); i < n; i++ {
			grown[i] = i
		}
		w.identity = grown
		w.scratch = make([]int, n)
	}
	out := w.scratch[:n]
	copy(out, w.identity[:n])

	return out
}

// Random returns a new set where each pair of s was kept with probability
// one half. Shorthand for RandomChance(src, 0.5).
func (s *PairSet) Random(src Source) *PairSet {
	return s.RandomChance(src, 0.5)
}

// RandomChance returns a new set built by one Bernoulli trial per pair:
// each member of s is kept when src.Float64() < chance. A chance of 0 or
// less yields an empty set and 1 or greater a full copy; neither consumes
// any randomness.
// Complexity: O(n log n).
func (s *PairSet) RandomChance(src Source, chance float64) *PairSet {
	if chance <= 0 {
		return newSized(0, s.cmp)
	}
	if chance >= 1 {
		return s.Clone()
	}

	out := newSized(cap(s.pairs), s.cmp)
	for _, p := range s.pairs {
		if src.Float64() < chance {
			out.Add(p.X, p.Y)
		}
	}

	return out
}

// RandomDensity returns a new set holding floor(Size*density) pairs chosen
// uniformly without replacement. A density of 0 or less yields an empty
// set and 1 or greater a full copy; neither consumes any randomness. ws
// may be nil, in which case an ephemeral workspace is allocated.
// Complexity: O(n + k log k) for k selected pairs.
func (s *PairSet) RandomDensity(src Source, density float64, ws *Workspace) *PairSet {
	return s.RandomAmount(src, int(float64(s.Size())*density), ws)
}

// RandomAmount returns a new set holding exactly count pairs of s chosen
// uniformly without replacement, via a partial Fisher-Yates walk over an
// index permutation: only the first count slots are finalized, one uniform
// draw each. A count of 0 or less yields an empty set and Size or more a
// full copy; neither consumes any randomness. ws may be nil, in which case
// an ephemeral workspace is allocated.
// Complexity: O(n + count log count); O(n) workspace memory.
func (s *PairSet) RandomAmount(src Source, count int, ws *Workspace) *PairSet {
	if count <= 0 {
		return newSized(0, s.cmp)
	}
	if count >= s.Size() {
		return s.Clone()
	}
	if ws == nil {
		ws = NewWorkspace()
	}

	n := s.Size()
	perm := ws.permutation(n)
	for i := 0; i < count; i++ {
		// Uniform in [i, n): the draw that makes every count-subset equally likely.
		j := i + src.IntN(n-i)
		perm[i], perm[j] = perm[j], perm[i]
	}

	out := newSized(count, s.cmp)
	for i := 0; i < count; i++ {
		p := s.pairs[perm[i]]
		out.Add(p.X, p.Y)
	}

	return out
}
