// SPDX-License-Identifier: MIT

// Package pairset implements a sorted, duplicate-free set of integer
// (x, y) pairs with shape rasterizers, set algebra, and random sampling.
//
// 🚀 What is a PairSet?
//
//	A dynamic array of coordinate pairs kept in one canonical order
//	(ascending x, then ascending y), so that every operation can lean on
//	binary search.  It's the workhorse behind:
//	  • Grid masks & dirty-cell tracking
//	  • Rasterized shapes: lines, circles, boxes (outline or filled)
//	  • Cellular effects: random erosion, scatter, dissolve
//	  • Plain old 2D set arithmetic
//
// ✨ Key features:
//   - one canonical ordering, overridable per set via WithOrdering
//   - Bresenham lines (optionally gap-free), midpoint circles, box fills
//   - union / intersection / difference / xor, plus in-place bulk forms
//   - Bernoulli, density and exact-count sampling from a caller-supplied
//     Source; reusable Workspace keeps exact-count sampling allocation-free
//   - value semantics: Pair is comparable and map-key friendly
//
// ⚙️ Usage:
//
//	disc := pairset.CircleFilled(0, 0, 6)
//	hole := pairset.CircleFilled(0, 0, 4)
//	ring := disc.Difference(hole)
//
//	src := rng.NewSeeded(1)
//	eroded := ring.RandomDensity(src, 0.35, nil)
//
// Determinism: every operation is sequential and reproducible; sampling
// draws all randomness from the Source argument, and the documented edge
// cases (chance ≤ 0, count ≥ size, ...) consume none at all.
//
// Concurrency: a PairSet is confined to one goroutine at a time; wrap it
// in your own lock to share it.
//
// Performance:
//
//   - Membership: O(log n)
//   - Add / Remove: O(n) worst-case shift
//   - Set algebra: O(n·m) worst case, fresh result sets
//   - Sampling: O(n) plus one uniform draw per selected pair
//
// See example_test.go for runnable walkthroughs of every operation group.
package pairset
