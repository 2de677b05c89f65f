// SPDX-License-Identifier: MIT

package pairset_test

import (
	"testing"

	"github.com/katalvlaran/gridset/pairset"
)

// mustPanic runs f and fails the test unless it panics with exactly want.
func mustPanic(t *testing.T, want string, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic %q, got none", want)
		}
		if r != want {
			t.Errorf("panic = %v; want %q", r, want)
		}
	}()
	f()
}

//----------------------------------------------------------------------------//
// Traversal
//----------------------------------------------------------------------------//

// TestIterator_TraversalOrder checks that Next walks the sorted layout and
// HasNext turns false exactly at the end.
func TestIterator_TraversalOrder(t *testing.T) {
	s := pairset.Box(0, 0, 2, 2)
	want := collect(s)

	it := s.Iter()
	var got []pairset.Pair
	for it.HasNext() {
		got = append(got, *it.Next())
	}
	if len(got) != len(want) {
		t.Fatalf("iterator yielded %d pairs; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pair %d = %v; want %v", i, got[i], want[i])
		}
	}
	if it.HasNext() {
		t.Error("HasNext must be false after the last pair")
	}
}

// TestIterator_SurrogateReuse verifies that Next returns one reused Pair
// and that writes through it never reach the set.
func TestIterator_SurrogateReuse(t *testing.T) {
	s := pairset.New().Add(1, 1).Add(2, 2)

	it := s.Iter()
	first := it.Next()
	if *first != (pairset.Pair{X: 1, Y: 1}) {
		t.Fatalf("first pair = %v; want (1, 1)", *first)
	}

	second := it.Next()
	if first != second {
		t.Error("Next must hand back the same surrogate pointer each call")
	}
	if *first != (pairset.Pair{X: 2, Y: 2}) {
		t.Errorf("surrogate after second Next = %v; want (2, 2)", *first)
	}

	first.X = 999
	if s.Contains(999, 2) || !s.Contains(2, 2) {
		t.Error("writing through the surrogate must not alter the set")
	}
}

// TestIterator_Reset checks that a rewound iterator replays the full walk.
func TestIterator_Reset(t *testing.T) {
	s := pairset.Line(0, 0, 4, 0)

	it := s.Iter()
	for it.HasNext() {
		it.Next()
	}
	it.Reset()

	var n int
	for it.HasNext() {
		it.Next()
		n++
	}
	if n != s.Size() {
		t.Errorf("walk after Reset visited %d pairs; want %d", n, s.Size())
	}
}

//----------------------------------------------------------------------------//
// Removal during iteration
//----------------------------------------------------------------------------//

// TestIterator_RemoveWhileIterating strips the even-X pairs mid-walk and
// checks both the survivors and that every pair was visited exactly once.
func TestIterator_RemoveWhileIterating(t *testing.T) {
	s := pairset.Line(0, 0, 4, 0)

	visits := 0
	it := s.Iter()
	for it.HasNext() {
		p := it.Next()
		visits++
		if p.X%2 == 0 {
			it.Remove()
		}
	}

	if visits != 5 {
		t.Errorf("visited %d pairs; want every one of the original 5", visits)
	}
	if s.Size() != 2 || !s.Contains(1, 0) || !s.Contains(3, 0) {
		t.Errorf("after removal set = %v; want [(1, 0), (3, 0)]", s)
	}
}

// TestIterator_RemoveEnds removes the first pair right after the first
// Next and the last pair after the final Next.
func TestIterator_RemoveEnds(t *testing.T) {
	s := pairset.Line(0, 0, 2, 0)

	it := s.Iter()
	it.Next()
	it.Remove()
	if s.Contains(0, 0) {
		t.Error("removing after the first Next must drop the first pair")
	}

	for it.HasNext() {
		it.Next()
	}
	it.Remove()
	if s.Contains(2, 0) {
		t.Error("removing after the final Next must drop the last pair")
	}
	if it.HasNext() {
		t.Error("HasNext must stay false after removing the last pair")
	}
	if s.Size() != 1 || !s.Contains(1, 0) {
		t.Errorf("set = %v; want [(1, 0)]", s)
	}
}

// TestIterator_RemoveAll drains a set through its iterator.
func TestIterator_RemoveAll(t *testing.T) {
	s := pairset.BoxFilled(0, 0, 2, 2)

	it := s.Iter()
	for it.HasNext() {
		it.Next()
		it.Remove()
	}
	if !s.IsEmpty() {
		t.Errorf("set still holds %d pairs after a remove-all walk", s.Size())
	}
}

//----------------------------------------------------------------------------//
// Contract violations
//----------------------------------------------------------------------------//

// TestIterator_Panics exercises the three protocol violations and their
// stable panic messages.
func TestIterator_Panics(t *testing.T) {
	exhausted := pairset.New().Iter()
	mustPanic(t, "pairset: Iterator.Next: no pairs remain; guard with HasNext", func() {
		exhausted.Next()
	})

	fresh := pairset.Point(1, 1).Iter()
	mustPanic(t, "pairset: Iterator.Remove: no preceding call to Next", func() {
		fresh.Remove()
	})

	s := pairset.New().Add(1, 1).Add(2, 2).Add(3, 3)
	twice := s.Iter()
	twice.Next()
	twice.Next()
	twice.Remove()
	mustPanic(t, "pairset: Iterator.Remove: called twice for the same pair", func() {
		twice.Remove()
	})

	reset := pairset.Point(3, 3).Iter()
	reset.Next()
	reset.Reset()
	mustPanic(t, "pairset: Iterator.Remove: no preceding call to Next", func() {
		reset.Remove()
	})
}
