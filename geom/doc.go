// Package geom provides the scalar and 2D vector helpers shared across
// this module: clamping, wrapping, interpolation, angle conversion, and
// closed-form overlap resolution for circles and axis-aligned boxes.
//
// What
//
//   - Generic scalar helpers over integer and float types: Abs, Clamp,
//     Wrap, WrapInt, Lerp, InterpolationFactor, CosineInterp, CubicInterp.
//   - Vec2, a plain float64 value vector with the usual arithmetic.
//   - CircleOverlap and BoxOverlap, which report whether two shapes
//     overlap and, when they do, the minimum translation vector and the
//     incident point of the contact.
//
// Why
//
//   - The wave and easing packages are built on wrap and lerp; keeping
//     one definition here keeps their edge behavior identical.
//   - Overlap resolution is the usual companion of rasterized grids in
//     collision-flavored code; the closed forms avoid any iteration.
//
// Determinism
//
//   - Everything is a pure function of its arguments.
//
// Conventions: Wrap and WrapInt map into the half-open interval [lo, hi);
// interpolation factors are not clamped unless stated.
package geom
