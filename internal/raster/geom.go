package raster

// Point is an ordered pair of real numbers, closed under elementwise
// addition, subtraction, multiplication and division, both with another
// Point and with a scalar. No normalization or epsilon handling is
// performed anywhere in this package; all arithmetic below is direct
// real-valued arithmetic.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Mul(q Point) Point { return Point{p.X * q.X, p.Y * q.Y} }
func (p Point) Div(q Point) Point { return Point{p.X / q.X, p.Y / q.Y} }

func (p Point) AddScalar(f float64) Point { return Point{p.X + f, p.Y + f} }
func (p Point) SubScalar(f float64) Point { return Point{p.X - f, p.Y - f} }
func (p Point) MulScalar(f float64) Point { return Point{p.X * f, p.Y * f} }
func (p Point) DivScalar(f float64) Point { return Point{p.X / f, p.Y / f} }

// SqDist returns the squared euclidean distance between p and q.
func (p Point) SqDist(q Point) float64 {
	d := p.Sub(q)
	return d.X*d.X + d.Y*d.Y
}

// SegmentKind distinguishes the two segment shapes a fitted Polygon is
// made of.
type SegmentKind int

const (
	// Line is a straight segment between two endpoints.
	Line SegmentKind = iota
	// Quad is a quadratic Bezier segment (start, control, end).
	Quad
)

// Segment is a tagged record approximating one run of a traced contour.
// X3/Y3 are unused when Kind is Line.
type Segment struct {
	Kind   SegmentKind
	X1, Y1 float64
	X2, Y2 float64
	X3, Y3 float64
}

// LineSegment builds a Line segment between p1 and p2.
func LineSegment(p1, p2 Point) Segment {
	return Segment{Kind: Line, X1: p1.X, Y1: p1.Y, X2: p2.X, Y2: p2.Y}
}

// QuadSegment builds a Quad segment with start p1, control p2 and end p3.
func QuadSegment(p1, p2, p3 Point) Segment {
	return Segment{Kind: Quad, X1: p1.X, Y1: p1.Y, X2: p2.X, Y2: p2.Y, X3: p3.X, Y3: p3.Y}
}

// BBox is an axis-aligned integer bounding box. Includes uses strict
// containment on all four sides, not the more common inclusive or
// half-open convention.
type BBox struct {
	Left, Top, Right, Bottom int
}

// sentinelBBox is the maximal bounding box used to seed the smallest-
// containing-wins scan during hole-parent resolution; see scan.go.
func sentinelBBox(w, h int) BBox {
	return BBox{Left: -1, Top: -1, Right: w + 1, Bottom: h + 1}
}

// Includes reports whether b strictly contains child on every side.
func (b BBox) Includes(child BBox) bool {
	return b.Left < child.Left && b.Top < child.Top &&
		b.Right > child.Right && b.Bottom > child.Bottom
}

// grow expands b (in place semantics via return value) so that it also
// contains the point (x, y).
func (b BBox) grow(x, y int) BBox {
	if x < b.Left {
		b.Left = x
	}
	if x > b.Right {
		b.Right = x
	}
	if y < b.Top {
		b.Top = y
	}
	if y > b.Bottom {
		b.Bottom = y
	}
	return b
}

// Path is a closed cyclic sequence of boundary points extracted from the
// edge grid (PathScan). InterNodes builds a new Path of interpolated
// midpoints from it, and TracePath a new Path carrying the fitted
// Segments.
type Path struct {
	Points []Point
	// Labels holds one 8-direction code per outgoing edge, -1 until
	// InterNodes assigns it.
	Labels []int
	BBox   BBox
	Hole   bool
	// Parent is the index, within the same layer's path list, of this
	// hole's parent outline, or -1 if none qualifies (or this path is
	// not a hole). Populated by PathScan's hole-parenting step.
	Parent int
	// HoleChildren lists, on a non-hole path, the indices of holes that
	// chose it as their parent.
	HoleChildren []int
	Segments     []Segment
}

// cyclicNext returns the point index n steps ahead of i, wrapping modulo
// the path length. n may be negative.
func cyclicNext(i, n, length int) int {
	return ((i+n)%length + length) % length
}

// cyclicDistance returns the forward count from point index a to point
// index b in a cycle of the given length: positive, wrapping if b
// precedes a.
func cyclicDistance(a, b, length int) int {
	d := b - a
	if d < 0 {
		d += length
	}
	return d
}
