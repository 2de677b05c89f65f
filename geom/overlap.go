// Package geom: closed-form overlap resolution for circles and
// axis-aligned boxes.
package geom

// CircleOverlap resolves the collision of two circles given by center and
// radius. When the circles overlap it returns ok=true, the minimum
// translation vector that separates a from b, and the incident point on
// a's rim toward b. Concentric circles resolve along the X axis by
// convention. Touching circles do not count as overlapping.
func CircleOverlap(ac Vec2, ar float64, bc Vec2, br float64) (overlap, incident Vec2, ok bool) {
	cdist := ac.Distance(bc)
	rdist := ar + br
	if cdist >= rdist {
		return Vec2{}, Vec2{}, false
	}
	if ac == bc {
		// No direction to resolve along; fall back to the X axis.
		return V(rdist, 0), V(ac.X-ar, ac.Y), true
	}

	dir := bc.Sub(ac)
	rim := dir.WithLen(ar)
	overlap = dir.WithLen(rdist - cdist)
	incident = ac.Add(rim).Sub(overlap)

	return overlap, incident, true
}

// BoxOverlap resolves the collision of two axis-aligned boxes given by
// center and half extents. When the boxes overlap it returns ok=true, the
// minimum translation vector along the shallower axis (signed from a
// toward b), and the incident point centered on the shared edge span.
// Touching boxes do not count as overlapping; equal penetrations resolve
// along Y.
func BoxOverlap(ac Vec2, ahw, ahh float64, bc Vec2, bhw, bhh float64) (overlap, incident Vec2, ok bool) {
	px := (ahw + bhw) - Abs(ac.X-bc.X)
	py := (ahh + bhh) - Abs(ac.Y-bc.Y)
	if px <= 0 || py <= 0 {
		return Vec2{}, Vec2{}, false
	}

	if px < py {
		sign := 1.0
		if ac.X >= bc.X {
			sign = -1
		}
		lo := max(bc.Y-bhh, ac.Y-ahh)
		hi := min(bc.Y+bhh, ac.Y+ahh)
		overlap = V(sign*px, 0)
		incident = V(ac.X+sign*(ahw-px), (lo+hi)/2)

		return overlap, incident, true
	}

	sign := 1.0
	if ac.Y >= bc.Y {
		sign = -1
	}
	lo := max(bc.X-bhw, ac.X-ahw)
	hi := min(bc.X+bhw, ac.X+ahw)
	overlap = V(0, sign*py)
	incident = V((lo+hi)/2, ac.Y+sign*(ahh-py))

	return overlap, incident, true
}
