package fixed

import "strconv"

// F1616 is a signed 16.16 fixed-point number: the upper 16 bits carry the
// integer part, the lower 16 the fraction.
type F1616 int32

const (
	// One is the fixed-point representation of 1.
	One F1616 = 1 << 16
	// Half is the fixed-point representation of 0.5.
	Half F1616 = 1 << 15
)

// FromInt converts an integer to fixed point. Values outside
// [-32768, 32767] wrap.
func FromInt(v int) F1616 {
	return F1616(v << 16)
}

// FromFloat converts a float to fixed point, truncating toward zero any
// fraction finer than 1/65536. Values outside the representable range
// overflow.
func FromFloat(v float64) F1616 {
	return F1616(v * 65536)
}

// Float converts back to a float64. The conversion is exact: every F1616
// value has a float64 representation.
func (f F1616) Float() float64 {
	return float64(int32(f)) / 65536
}

// Int returns the integer part, rounding toward negative infinity.
func (f F1616) Int() int {
	return int(int32(f) >> 16)
}

// Add returns f + o. Overflow wraps.
func (f F1616) Add(o F1616) F1616 { return f + o }

// Sub returns f - o. Overflow wraps.
func (f F1616) Sub(o F1616) F1616 { return f - o }

// Mul returns f * o, computed in 64 bits and truncated back to 16.16.
func (f F1616) Mul(o F1616) F1616 {
	return F1616((int64(f) * int64(o)) >> 16)
}

// Div returns f / o in 16.16. Dividing by zero panics with the runtime's
// integer-division error.
func (f F1616) Div(o F1616) F1616 {
	return F1616((int64(f) << 16) / int64(o))
}

// String renders the value in decimal, e.g. "1.5".
func (f F1616) String() string {
	return strconv.FormatFloat(f.Float(), 'g', -1, 64)
}
