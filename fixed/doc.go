// Package fixed provides signed 16.16 fixed-point arithmetic: 16 integer
// bits, 16 fractional bits, packed into an int32.
//
// What
//
//   - F1616, the fixed-point value type, with Add, Sub, Mul, Div, and
//     conversions to and from int and float64.
//   - One and Half, the unit constants.
//
// Why
//
//   - Fixed point gives deterministic, platform-independent fractional
//     math with plain integer operations, which is exactly what grid
//     interpolation and stepping code wants.
//
// Range and precision: values span [-32768, 32768) with a resolution of
// 1/65536. Add and Sub wrap on overflow like any int32; Mul keeps the
// full 64-bit intermediate before truncating back.
package fixed
