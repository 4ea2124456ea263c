package raster

// TracePath partitions an interpolated path into maximal cyclic runs
// containing at most two distinct direction labels, and fits each run
// with FitSeq, concatenating the results in traversal order. The final
// run always wraps through the last point back to index 0, closing the
// contour.
func TracePath(path *Path, ltres, qtres float64) *Path {
	out := &Path{
		BBox:         path.BBox,
		Hole:         path.Hole,
		Parent:       path.Parent,
		HoleChildren: path.HoleChildren,
	}

	n := len(path.Labels)
	if n == 0 {
		return out
	}
	last := n - 1

	line := 0
	for {
		segtype1 := path.Labels[line]
		segtype2 := -1
		seqEnd := line + 1

		for seqEnd < last && (path.Labels[seqEnd] == segtype1 || path.Labels[seqEnd] == segtype2 || segtype2 == -1) {
			if path.Labels[seqEnd] != segtype1 && segtype2 == -1 {
				segtype2 = path.Labels[seqEnd]
			}
			seqEnd++
		}

		wrapped := seqEnd == last
		if wrapped {
			seqEnd = 0
		}

		out.Segments = append(out.Segments, FitSeq(path, ltres, qtres, line, seqEnd)...)

		if wrapped {
			break
		}
		line = seqEnd
	}

	return out
}

// FitSeq recursively fits a straight line or quadratic spline onto the
// cyclic point range [start, end) of path, splitting at the point of
// worst error when neither fit satisfies its threshold. ltres and qtres
// are compared directly against squared distances, never square roots.
func FitSeq(path *Path, ltres, qtres float64, start, end int) []Segment {
	n := len(path.Points)
	tl := float64(cyclicDistance(start, end, n))

	startPt := path.Points[start]
	endPt := path.Points[end]

	// Line fit.
	v := endPt.Sub(startPt).DivScalar(tl)
	linePass := true
	errorPoint := start
	errorVal := 0.0

	for p := cyclicNext(start, 1, n); p != end; p = cyclicNext(p, 1, n) {
		pl := float64(cyclicDistance(start, p, n))
		proj := startPt.Add(v.MulScalar(pl))
		diff := path.Points[p].Sub(proj)
		dist2 := diff.X*diff.X + diff.Y*diff.Y

		if dist2 > ltres {
			linePass = false
		}
		if dist2 > errorVal {
			errorPoint = p
			errorVal = dist2
		}
	}
	if linePass {
		return []Segment{LineSegment(startPt, endPt)}
	}

	// Quad fit through the line fit's worst point.
	fitPoint := errorPoint
	quadPass := true
	errorVal = 0.0

	t := float64(cyclicDistance(start, fitPoint, n)) / tl
	t1 := (1 - t) * (1 - t)
	t2 := 2 * (1 - t) * t
	t3 := t * t
	cp := startPt.MulScalar(t1).Add(endPt.MulScalar(t3)).Sub(path.Points[fitPoint]).DivScalar(-t2)

	for p := cyclicNext(start, 1, n); p != end; p = cyclicNext(p, 1, n) {
		tp := float64(cyclicDistance(start, p, n)) / tl
		tp1 := (1 - tp) * (1 - tp)
		tp2 := 2 * (1 - tp) * tp
		tp3 := tp * tp

		eval := startPt.MulScalar(tp1).Add(cp.MulScalar(tp2)).Add(endPt.MulScalar(tp3))
		diff := path.Points[p].Sub(eval)
		dist2 := diff.X*diff.X + diff.Y*diff.Y

		if dist2 > qtres {
			quadPass = false
		}
		if dist2 > errorVal {
			errorPoint = p
			errorVal = dist2
		}
	}
	if quadPass {
		return []Segment{QuadSegment(startPt, cp, endPt)}
	}

	// Split at the quad fit's worst point and recurse on both halves.
	splitPoint := errorPoint
	left := FitSeq(path, ltres, qtres, start, splitPoint)
	right := FitSeq(path, ltres, qtres, splitPoint, end)
	return append(left, right...)
}
