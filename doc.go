// Package gridset is your in-memory toolkit for building, combining, and
// sampling sets of integer grid coordinates, plus the interpolation and
// geometry helpers that usually travel with them.
//
// 🚀 What is gridset?
//
//	A small, allocation-conscious library that brings together:
//		• Ordered pair sets: sorted, duplicate-free (x, y) collections
//		• Rasterizers: Bresenham lines, midpoint circles, box outlines & fills
//		• Set algebra: union, intersection, difference, exclusive-or
//		• Sampling: Bernoulli, density and exact-count random subsets
//		• Easing curves & waveforms for animation and signal shaping
//		• 16.16 fixed-point arithmetic and 2D geometry utilities
//
// ✨ Why choose gridset?
//
//   - Deterministic: one canonical ordering, reproducible sampling via seeds
//   - Allocation-aware: reusable workspaces, capacity hints on every factory
//   - Pure Go: no cgo, value types end to end
//   - Composable: every mutator chains, every set iterates
//
// Under the hood, everything is organized under six subpackages:
//
//	pairset/ — the ordered pair set: storage, shapes, algebra, sampling
//	rng/     — seedable PCG32 source for reproducible sampling
//	easing/  — easing curves over the unit interval
//	wave/    — periodic waveforms and time-driven oscillators
//	fixed/   — 16.16 fixed-point arithmetic
//	geom/    — scalar and 2D vector helpers: clamp, wrap, lerp, overlaps
//
// Quick ASCII example:
//
//	    . . # . .
//	    . # . # .
//	    # . . . #
//	    . # . # .
//	    . . # . .
//
//	is Circle(2, 2, 2): eight grid cells on a midpoint circle of radius 2.
//
// Dive into the package docs for complexity notes, edge-case tables, and
// runnable examples.
//
//	go get github.com/katalvlaran/gridset
package gridset
