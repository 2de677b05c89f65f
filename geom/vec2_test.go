package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gridset/geom"
)

// TestVec2_Arithmetic covers the component-wise operations and the two
// products.
func TestVec2_Arithmetic(t *testing.T) {
	a := geom.V(1, 2)
	b := geom.V(3, -4)

	assert.Equal(t, geom.V(4, -2), a.Add(b), "addition")
	assert.Equal(t, geom.V(-2, 6), a.Sub(b), "subtraction")
	assert.Equal(t, geom.V(2, 4), a.Scale(2), "scaling")
	assert.Equal(t, -5.0, a.Dot(b), "dot product")
	assert.Equal(t, 1.0, geom.V(1, 0).Cross(geom.V(0, 1)), "counterclockwise cross is positive")
	assert.Equal(t, -1.0, geom.V(0, 1).Cross(geom.V(1, 0)), "clockwise cross is negative")

	assert.Equal(t, geom.V(1, 2), a, "operations never mutate the receiver")
}

// TestVec2_Length checks the 3-4-5 triangle and the squared shortcut.
func TestVec2_Length(t *testing.T) {
	v := geom.V(3, 4)

	assert.Equal(t, 5.0, v.Len(), "Euclidean length")
	assert.Equal(t, 25.0, v.LenSq(), "squared length")
	assert.Equal(t, 5.0, geom.V(1, 1).Distance(geom.V(4, 5)), "distance between points")
	assert.Equal(t, 0.0, geom.Vec2{}.Len(), "zero vector length")
}

// TestVec2_Normalized verifies unit scaling and the zero-vector guard.
func TestVec2_Normalized(t *testing.T) {
	n := geom.V(3, 4).Normalized()
	assert.InDelta(t, 0.6, n.X, 1e-12, "normalized X")
	assert.InDelta(t, 0.8, n.Y, 1e-12, "normalized Y")
	assert.InDelta(t, 1, n.Len(), 1e-12, "unit length")

	assert.Equal(t, geom.Vec2{}, geom.Vec2{}.Normalized(), "the zero vector stays zero")

	w := geom.V(3, 4).WithLen(10)
	assert.InDelta(t, 6, w.X, 1e-12, "rescaled X")
	assert.InDelta(t, 8, w.Y, 1e-12, "rescaled Y")
	assert.Equal(t, geom.Vec2{}, geom.Vec2{}.WithLen(10), "the zero vector cannot be rescaled")
}

// TestVec2_Lerp checks endpoint and midpoint interpolation.
func TestVec2_Lerp(t *testing.T) {
	a := geom.V(0, 0)
	b := geom.V(10, -20)

	assert.Equal(t, a, a.Lerp(b, 0), "factor 0 yields the receiver")
	assert.Equal(t, b, a.Lerp(b, 1), "factor 1 yields the argument")
	assert.Equal(t, geom.V(5, -10), a.Lerp(b, 0.5), "factor 0.5 yields the midpoint")
}

// TestVec2_Angle pins the four cardinal directions.
func TestVec2_Angle(t *testing.T) {
	assert.InDelta(t, 0, geom.V(1, 0).Angle(), 1e-12, "+X")
	assert.InDelta(t, math.Pi/2, geom.V(0, 1).Angle(), 1e-12, "+Y")
	assert.InDelta(t, math.Pi, geom.V(-1, 0).Angle(), 1e-12, "-X")
	assert.InDelta(t, -math.Pi/2, geom.V(0, -1).Angle(), 1e-12, "-Y")
}

// TestVec2_String pins the compact rendering.
func TestVec2_String(t *testing.T) {
	assert.Equal(t, "(1.5, -2)", geom.V(1.5, -2).String())
	assert.Equal(t, "(0, 0)", geom.Vec2{}.String())
}
