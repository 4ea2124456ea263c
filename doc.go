// Package imagetracer traces a color-indexed raster image into layers
// of vector polygons approximated by straight-line and quadratic
// Bézier segments, one layer per color index present in the input.
//
// The entry point is Trace. The four-stage core (edge classification,
// contour walking, internode interpolation, and recursive segment
// fitting) lives in the internal/raster package; this package borders
// the input, fans work out across color indices, and assembles the
// per-color results into a Result.
package imagetracer
