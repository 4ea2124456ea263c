// Package raster implements the four-stage core of the image tracer:
// layer separation, contour walking, internode interpolation and
// recursive line/spline fitting.
//
// The general pipeline, run once per color index, is as follows:
//
//   - Build an edge grid from a bordered pixel buffer (LayeringStep).
//   - Walk the edge grid into closed contour Paths (PathScan).
//   - Interpolate each Path into midpoint-based 8-direction polylines
//     (InterNodes).
//   - Fit each interpolated Path into a sequence of line/quad Segments
//     (TracePath).
//
// Callers outside this package only ever see the result of the last
// stage; the intermediate representations are exported so that the
// driver package can wire the stages together and so each stage can be
// tested independently.
package raster
