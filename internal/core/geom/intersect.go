package geom

// Solve intersects the infinite line through origin along dir with the line
// through w.P1 and w.P2.
// t is the position along the wall (0 at P1, 1 at P2) and u the position along
// the ray in units of dir. ok is false when the lines are parallel or the wall
// is degenerate.
func Solve(origin, dir Vec2, w Wall) (t, u float64, ok bool) {
	// origin + u*dir = P1 + t*(P2-P1)
	edge := w.P2.Sub(w.P1)
	offset := w.P1.Sub(origin)

	denom := (w.P1.X-w.P2.X)*dir.Y - (w.P1.Y-w.P2.Y)*dir.X
	if denom == 0 {
		return 0, 0, false
	}

	t = cross(offset, dir) / denom
	u = cross(offset, edge) / denom
	return t, u, true
}

// Intersect returns the point where the ray from origin along dir crosses w.
// Wall endpoints are excluded (0 < t < 1) and so is anything at or behind the
// origin (u > 0).
func Intersect(origin, dir Vec2, w Wall) (Vec2, bool) {
	t, u, ok := Solve(origin, dir, w)
	if !ok || t <= 0 || t >= 1 || u <= 0 {
		return Vec2{}, false
	}
	return w.P1.Add(w.P2.Sub(w.P1).Scale(t)), true
}
