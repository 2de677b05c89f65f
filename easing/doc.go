// Package easing provides easing curves over the unit interval, the
// usual shaping functions behind animation and transition timing.
//
// What
//
//   - Func, the shared shape of every curve: a mapping from a scalar in
//     [0, 1] to an eased scalar. Inputs outside [0, 1] are clamped before
//     evaluation.
//   - Stock curves: Linear, quadratic and cubic pairs, Bounce, Elastic,
//     and the overshooting BackIn / BackOut.
//   - Interpolate, which applies a curve to a scalar and lerps between
//     two bounds in one call.
//
// Naming note: the In suffix here means the motion eases in to its
// destination (fast start, slow finish); Out means the reverse. Each doc
// comment states the exact formula, so the curves are usable regardless
// of which convention a caller is used to.
//
// All curves map 0 to 0 and 1 to 1; Elastic and the Back pair leave the
// unit range in between.
package easing
