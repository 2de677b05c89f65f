// SPDX-License-Identifier: MIT

// Package pairset: stateful iteration with mid-walk removal. For plain
// traversal prefer All; Iter exists for the remove-while-iterating
// protocol that a range loop cannot express.
package pairset

// Iterator walks a set in sorted order and supports removing the pair
// most recently returned by Next without disturbing the walk.
//
// Next hands back a pointer to a single surrogate Pair owned by the
// iterator and overwritten on every call: copy the value to retain it
// across steps. Writing through the pointer never alters the set.
//
// Mutating the set through anything other than the iterator's own Remove
// while a walk is in progress leaves the cursor position undefined.
type Iterator struct {
	set     *PairSet
	cur     Pair // surrogate returned by Next, overwritten each call
	cursor  int  // index of the next pair to return
	removed bool // the pair behind the cursor was already removed
}

// Iter returns a new iterator positioned before the first pair.
func (s *PairSet) Iter() *Iterator {
	return &Iterator{set: s}
}

// HasNext reports whether another pair remains.
// Complexity: O(1).
func (it *Iterator) HasNext() bool {
	return it.cursor < it.set.Size()
}

// Next advances the walk and returns the surrogate holding the next pair.
// Panics with a stable message when no pairs remain; guard with HasNext.
// Complexity: O(1).
func (it *Iterator) Next() *Pair {
	if it.cursor >= len(it.set.pairs) {
		panic(panicNextExhausted)
	}
	it.cur = it.set.pairs[it.cursor]
	it.cursor++
	it.removed = false

	return &it.cur
}

// Remove deletes the pair most recently returned by Next from the set and
// steps the cursor back so the walk continues with the pair that slid into
// the vacated slot. Valid exactly once per Next; panics with a stable
// message when called before any Next or twice in a row.
// Complexity: O(n) shift.
func (it *Iterator) Remove() {
	if it.cursor == 0 {
		panic(panicRemoveBeforeNext)
	}
	if it.removed {
		panic(panicRemoveTwice)
	}
	p := it.set.pairs[it.cursor-1]
	it.set.Remove(p.X, p.Y)
	it.cursor--
	it.removed = true
}

// Reset rewinds the iterator to the position before the first pair.
// Complexity: O(1).
func (it *Iterator) Reset() {
	it.cursor = 0
	it.removed = false
}
