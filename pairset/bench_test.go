// SPDX-License-Identifier: MIT

package pairset_test

import (
	"testing"

	"github.com/katalvlaran/gridset/pairset"
	"github.com/katalvlaran/gridset/rng"
)

// BenchmarkAdd measures insertion (including the duplicate-probe path)
// over a 512x512 coordinate space with a seeded generator.
func BenchmarkAdd(b *testing.B) {
	r := rng.NewSeeded(42)
	s := pairset.New(pairset.WithCapacity(1 << 12))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Add(r.IntN(512), r.IntN(512))
	}
}

// BenchmarkContains measures membership probes against a filled disc of
// radius 64.
func BenchmarkContains(b *testing.B) {
	r := rng.NewSeeded(42)
	s := pairset.CircleFilled(0, 0, 64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Contains(r.IntN(160)-80, r.IntN(160)-80)
	}
}

// BenchmarkCircleFilled measures rasterizing a filled disc of radius 32
// from scratch each iteration.
func BenchmarkCircleFilled(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pairset.CircleFilled(0, 0, 32)
	}
}

// BenchmarkUnion measures the non-destructive union of two overlapping
// 50x50 filled boxes.
func BenchmarkUnion(b *testing.B) {
	x := pairset.BoxFilled(0, 0, 49, 49)
	y := pairset.BoxFilled(25, 25, 74, 74)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Union(y)
	}
}

// BenchmarkRandomAmount measures exact-count sampling from a filled disc
// with a reused workspace, which keeps the permutation allocation out of
// the loop.
func BenchmarkRandomAmount(b *testing.B) {
	r := rng.NewSeeded(42)
	s := pairset.CircleFilled(0, 0, 32)
	ws := pairset.NewWorkspace()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.RandomAmount(r, 500, ws)
	}
}
