package imagetracer

import "github.com/SillyBits/imagetracer/internal/raster"

// SegmentKind distinguishes a straight line from a quadratic spline.
type SegmentKind int

const (
	Line SegmentKind = iota
	Quad
)

// Segment is one piece of a fitted polygon boundary. X3/Y3 are unused
// when Kind is Line.
type Segment struct {
	Kind   SegmentKind
	X1, Y1 float64
	X2, Y2 float64
	X3, Y3 float64
}

// Polygon is the fitted approximation of one traced path.
type Polygon struct {
	Segments []Segment
	Hole     bool
}

// Layer is the set of polygons obtained from one color index.
type Layer struct {
	ColorIndex int
	Polygons   []Polygon
}

// Result is the aggregated output of a single Trace call: a list of
// layers in ascending color-index order, one per color index that
// produced at least one path.
type Result struct {
	Layers []Layer
}

func segmentFromRaster(s raster.Segment) Segment {
	kind := Line
	if s.Kind == raster.Quad {
		kind = Quad
	}
	return Segment{
		Kind: kind,
		X1:   s.X1, Y1: s.Y1,
		X2: s.X2, Y2: s.Y2,
		X3: s.X3, Y3: s.Y3,
	}
}

func polygonFromPath(p *raster.Path) Polygon {
	poly := Polygon{Hole: p.Hole, Segments: make([]Segment, len(p.Segments))}
	for i, s := range p.Segments {
		poly.Segments[i] = segmentFromRaster(s)
	}
	return poly
}
