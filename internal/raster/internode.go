package raster

// InterNodes produces, for one path, a midpoint-based 8-direction
// polyline: each point is the midpoint of two consecutive input points,
// labeled with the compass direction toward the next midpoint. When
// rightAngleEnhance is set, axis-aligned corners that plain midpointing
// would otherwise round off are preserved by inserting the corner point
// itself between two midpoints.
func InterNodes(path *Path, rightAngleEnhance bool) *Path {
	n := len(path.Points)
	out := &Path{
		BBox:         path.BBox,
		Hole:         path.Hole,
		Parent:       path.Parent,
		HoleChildren: path.HoleChildren,
	}

	for i := 0; i < n; i++ {
		nextIdx := cyclicNext(i, 1, n)
		nextIdx2 := cyclicNext(i, 2, n)
		prevIdx := cyclicNext(i, -1, n)
		prevIdx2 := cyclicNext(i, -2, n)

		mid := path.Points[i].Add(path.Points[nextIdx]).DivScalar(2)

		if rightAngleEnhance && testRightAngle(path, prevIdx2, prevIdx, i, nextIdx, nextIdx2) {
			if len(out.Points) > 0 {
				out.Labels[len(out.Labels)-1] = getDirection(out.Points[len(out.Points)-1], path.Points[i])
			}
			out.Points = append(out.Points, path.Points[i])
			out.Labels = append(out.Labels, getDirection(path.Points[i], mid))
		}

		nextMid := path.Points[nextIdx].Add(path.Points[nextIdx2]).DivScalar(2)
		out.Points = append(out.Points, mid)
		out.Labels = append(out.Labels, getDirection(mid, nextMid))
	}

	return out
}

// testRightAngle reports whether the five cyclic points idx1..idx5 form
// an axis-aligned "T": idx1, idx2, idx3 share one coordinate and idx3,
// idx4, idx5 share the perpendicular one. Relies on exact floating-point
// equality of midpoint coordinates, which holds because midpoints of
// integer grid points are always half-integers.
func testRightAngle(path *Path, idx1, idx2, idx3, idx4, idx5 int) bool {
	p1, p2, p3, p4, p5 := path.Points[idx1], path.Points[idx2], path.Points[idx3], path.Points[idx4], path.Points[idx5]
	return (p3.X == p1.X && p3.X == p2.X && p3.Y == p4.Y && p3.Y == p5.Y) ||
		(p3.Y == p1.Y && p3.Y == p2.Y && p3.X == p4.X && p3.X == p5.X)
}

// getDirection returns the 8-direction code from pt1 toward pt2, derived
// from the signs of (x1-x2, y1-y2).
func getDirection(pt1, pt2 Point) int {
	sx := sign(pt1.X, pt2.X) + 1
	sy := sign(pt1.Y, pt2.Y) + 1
	return directionLookup[sx][sy]
}

// sign is the sign of a-b: +1 when a > b, -1 when a < b, 0 when
// equal. getDirection passes (x1, x2) and (y1, y2), so directionLookup
// is indexed by the signs of (x1-x2, y1-y2) that its row/column
// comments are written against; the two must stay in lockstep.
func sign(a, b float64) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}
