// SPDX-License-Identifier: MIT

// Package pairset: shape rasterizers. Lines use Bresenham's integer error
// accumulator, circles the midpoint decision variable, boxes four edge
// lines or a row-major fill. Factories pre-size the backing slice from
// closed-form point-count estimates so typical shapes never regrow.
package pairset

// Line returns the Bresenham rasterization of the segment (x0, y0)-(x1, y1).
// Both endpoints are always included; a zero-length segment yields one pair.
// Complexity: O(L log L) for L = max(|dx|, |dy|) + 1 rasterized points.
func Line(x0, y0, x1, y1 int) *PairSet {
	out := New(WithCapacity(lineEstimate(x0, y0, x1, y1)))

	return out.AddLine(x0, y0, x1, y1)
}

// LineSolid is Line with diagonal gaps closed: whenever the walk steps on
// both axes at once, the intermediate pair on the minor axis is included
// too, so the result is connected under 4-neighbor adjacency.
func LineSolid(x0, y0, x1, y1 int) *PairSet {
	out := New(WithCapacity(lineEstimate(x0, y0, x1, y1)))

	return out.AddLineSolid(x0, y0, x1, y1)
}

// Circle returns the midpoint-circle outline centered at (cx, cy). A
// negative radius is treated as its absolute value; radius zero yields the
// single center pair.
// Complexity: O(r log r).
func Circle(cx, cy, radius int) *PairSet {
	radius = absInt(radius)
	out := New(WithCapacity(radius * 8))

	return out.AddCircle(cx, cy, radius)
}

// CircleFilled returns the filled midpoint circle centered at (cx, cy),
// rasterized as horizontal and vertical spans between opposite outline
// points. Radius normalization matches Circle.
// Complexity: O(r^2 log r).
func CircleFilled(cx, cy, radius int) *PairSet {
	radius = absInt(radius)
	out := New(WithCapacity(radius * radius * 2))

	return out.AddCircleFilled(cx, cy, radius)
}

// Box returns the axis-aligned rectangle outline with opposite corners
// (x0, y0) and (x1, y1). Corners may be given in any order. Degenerate
// boxes collapse to a line or a point.
// Complexity: O(P log P) for P perimeter points.
func Box(x0, y0, x1, y1 int) *PairSet {
	dx, dy := spanEstimate(x0, x1), spanEstimate(y0, y1)
	inner := max(dx-2, 0) * max(dy-2, 0)
	out := New(WithCapacity(dx*dy - inner))

	return out.AddBox(x0, y0, x1, y1)
}

// BoxFilled returns every pair inside the axis-aligned rectangle with
// opposite corners (x0, y0) and (x1, y1), corners included.
// Complexity: O(A log A) for A = width*height.
func BoxFilled(x0, y0, x1, y1 int) *PairSet {
	out := New(WithCapacity(spanEstimate(x0, x1) * spanEstimate(y0, y1)))

	return out.AddBoxFilled(x0, y0, x1, y1)
}

// AddLine rasterizes the segment (x0, y0)-(x1, y1) into the set and
// returns it for chaining.
func (s *PairSet) AddLine(x0, y0, x1, y1 int) *PairSet {
	s.addLine(x0, y0, x1, y1, false)

	return s
}

// AddLineSolid rasterizes the segment with diagonal gaps closed (see
// LineSolid) and returns the set for chaining.
func (s *PairSet) AddLineSolid(x0, y0, x1, y1 int) *PairSet {
	s.addLine(x0, y0, x1, y1, true)

	return s
}

// addLine walks the Bresenham error accumulator from (x0, y0) to (x1, y1),
// adding one pair per major-axis step. With solid set, a minor-axis advance
// also emits the pre-step pair so no 8-connected diagonal gap remains.
func (s *PairSet) addLine(x0, y0, x1, y1 int, solid bool) {
	dx, dy := x1-x0, y1-y0
	stepX, stepY := 1, 1
	if dx < 0 {
		dx, stepX = -dx, -1
	}
	if dy < 0 {
		dy, stepY = -dy, -1
	}
	dx <<= 1
	dy <<= 1

	s.Add(x0, y0)
	if dx > dy {
		// X is the major axis.
		frac := dy - (dx >> 1)
		for x0 != x1 {
			if frac >= 0 {
				y0 += stepY
				frac -= dx
				if solid {
					s.Add(x0, y0)
				}
			}
			x0 += stepX
			frac += dy
			s.Add(x0, y0)
		}
	} else {
		// Y is the major axis (or the line is a perfect diagonal).
		frac := dx - (dy >> 1)
		for y0 != y1 {
			if frac >= 0 {
				x0 += stepX
				frac -= dy
				if solid {
					s.Add(x0, y0)
				}
			}
			y0 += stepY
			frac += dx
			s.Add(x0, y0)
		}
	}
}

// AddCircle rasterizes the midpoint-circle outline of the given radius
// centered at (cx, cy) and returns the set for chaining. A negative radius
// is treated as its absolute value.
func (s *PairSet) AddCircle(cx, cy, radius int) *PairSet {
	s.circleWalk(cx, cy, absInt(radius), s.plotCircle)

	return s
}

// AddCircleFilled rasterizes the filled midpoint circle of the given
// radius centered at (cx, cy) and returns the set for chaining. A negative
// radius is treated as its absolute value.
func (s *PairSet) AddCircleFilled(cx, cy, radius int) *PairSet {
	s.circleWalk(cx, cy, absInt(radius), s.spanCircle)

	return s
}

// circleWalk runs the midpoint decision variable over one octant, handing
// each (x, y) offset to plot for reflection into the other octants.
func (s *PairSet) circleWalk(cx, cy, radius int, plot func(cx, cy, x, y int)) {
	x, y := 0, radius
	p := (5 - radius*4) / 4

	plot(cx, cy, x, y)
	for x < y {
		x++
		if p < 0 {
			p += 2*x + 1
		} else {
			y--
			p += 2*(x-y) + 1
		}
		plot(cx, cy, x, y)
	}
}

// plotCircle reflects one octant offset into all octants as outline points.
// The x==0 and x==y cases collapse coinciding reflections so no pair is
// added twice within one call.
func (s *PairSet) plotCircle(cx, cy, x, y int) {
	switch {
	case x == 0:
		s.Add(cx, cy+y)
		s.Add(cx, cy-y)
		s.Add(cx+y, cy)
		s.Add(cx-y, cy)
	case x == y:
		s.Add(cx+x, cy+y)
		s.Add(cx-x, cy+y)
		s.Add(cx+x, cy-y)
		s.Add(cx-x, cy-y)
	case x < y:
		s.Add(cx+x, cy+y)
		s.Add(cx-x, cy+y)
		s.Add(cx+x, cy-y)
		s.Add(cx-x, cy-y)
		s.Add(cx+y, cy+x)
		s.Add(cx-y, cy+x)
		s.Add(cx+y, cy-x)
		s.Add(cx-y, cy-x)
	}
}

// spanCircle reflects one octant offset into spans between opposite
// outline points, filling the disc interior.
func (s *PairSet) spanCircle(cx, cy, x, y int) {
	switch {
	case x == 0:
		s.AddLine(cx, cy+y, cx, cy-y)
		s.AddLine(cx+y, cy, cx-y, cy)
	case x == y:
		s.AddLine(cx+x, cy+y, cx-x, cy+y)
		s.AddLine(cx+x, cy-y, cx-x, cy-y)
	case x < y:
		s.AddLine(cx+x, cy+y, cx-x, cy+y)
		s.AddLine(cx+x, cy-y, cx-x, cy-y)
		s.AddLine(cx+y, cy+x, cx-y, cy+x)
		s.AddLine(cx+y, cy-x, cx-y, cy-x)
	}
}

// AddBox rasterizes the rectangle outline with opposite corners (x0, y0)
// and (x1, y1) as four edge lines and returns the set for chaining.
func (s *PairSet) AddBox(x0, y0, x1, y1 int) *PairSet {
	s.AddLine(x0, y0, x1, y0)
	s.AddLine(x1, y0, x1, y1)
	s.AddLine(x1, y1, x0, y1)
	s.AddLine(x0, y1, x0, y0)

	return s
}

// AddBoxFilled rasterizes the full rectangle with opposite corners
// (x0, y0) and (x1, y1) in row-major order and returns the set for
// chaining.
func (s *PairSet) AddBoxFilled(x0, y0, x1, y1 int) *PairSet {
	minX, maxX := minMax(x0, x1)
	minY, maxY := minMax(y0, y1)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			s.Add(x, y)
		}
	}

	return s
}

// lineEstimate is the exact point count of a rasterized line: one point
// per step along the major axis, endpoints included.
func lineEstimate(x0, y0, x1, y1 int) int {
	return max(absInt(x1-x0)+1, absInt(y1-y0)+1)
}

// spanEstimate is the inclusive cell count between two coordinates.
func spanEstimate(a, b int) int {
	return absInt(b-a) + 1
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func minMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}

	return a, b
}
