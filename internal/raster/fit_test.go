package raster

import "testing"

func TestFitSeqLinePass(t *testing.T) {
	path := &Path{Points: []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}}
	segs := FitSeq(path, 0.1, 0.1, 0, 3)
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	s := segs[0]
	if s.Kind != Line {
		t.Fatalf("kind = %v, want Line", s.Kind)
	}
	if s.X1 != 0 || s.Y1 != 0 || s.X2 != 3 || s.Y2 != 0 {
		t.Errorf("segment = %+v, want endpoints (0,0)-(3,0)", s)
	}
}

// TestFitSeqQuadPass uses three points lying exactly on the quadratic
// Bezier curve through control point (1,2), so the quad fit's residual
// is exactly zero and a single Quad segment is returned without any
// recursive split.
func TestFitSeqQuadPass(t *testing.T) {
	path := &Path{Points: []Point{{0, 0}, {1, 1}, {2, 0}}}
	segs := FitSeq(path, 0.1, 0.1, 0, 2)
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	s := segs[0]
	if s.Kind != Quad {
		t.Fatalf("kind = %v, want Quad", s.Kind)
	}
	if s.X1 != 0 || s.Y1 != 0 || s.X3 != 2 || s.Y3 != 0 {
		t.Errorf("segment endpoints = %+v, want (0,0)-(2,0)", s)
	}
	if s.X2 != 1 || s.Y2 != 2 {
		t.Errorf("control point = (%v,%v), want (1,2)", s.X2, s.Y2)
	}
}

// TestFitSeqSplitsOnPoorFit exercises a zigzag that neither a line nor
// a single quad can approximate within threshold, forcing a recursive
// split at the worst-error point.
func TestFitSeqSplitsOnPoorFit(t *testing.T) {
	path := &Path{Points: []Point{{0, 0}, {1, 5}, {2, 0}, {3, -5}, {4, 0}}}
	segs := FitSeq(path, 1, 1, 0, 4)
	if len(segs) < 2 {
		t.Fatalf("got %d segments, want at least 2 (split expected)", len(segs))
	}
	if segs[0].X1 != 0 || segs[0].Y1 != 0 {
		t.Errorf("first segment should start at (0,0), got (%v,%v)", segs[0].X1, segs[0].Y1)
	}
	last := segs[len(segs)-1]
	gotX, gotY := last.X2, last.Y2
	if last.Kind == Quad {
		gotX, gotY = last.X3, last.Y3
	}
	if gotX != 4 || gotY != 0 {
		t.Errorf("last segment should end at (4,0), got (%v,%v)", gotX, gotY)
	}
}

// TestTracePathTwoRuns checks that a label sequence with a genuine
// third-label transition before the final index splits the path into
// two independently fitted runs, the second of which wraps through the
// end of the point slice back to index 0.
func TestTracePathTwoRuns(t *testing.T) {
	path := &Path{
		Points: []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}},
		Labels: []int{1, 1, 2, 2, 3, 3},
	}
	out := TracePath(path, 0.1, 0.1)
	if len(out.Segments) != 2 {
		t.Fatalf("got %d top-level segments, want 2", len(out.Segments))
	}
	first := out.Segments[0]
	if first.Kind != Line || first.X1 != 0 || first.Y1 != 0 || first.X2 != 4 || first.Y2 != 0 {
		t.Errorf("first run = %+v, want Line (0,0)-(4,0)", first)
	}
	second := out.Segments[1]
	if second.X1 != 4 || second.Y1 != 0 {
		t.Errorf("second run should start at (4,0), got (%v,%v)", second.X1, second.Y1)
	}
}
