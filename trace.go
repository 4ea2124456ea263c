package imagetracer

import (
	"sync"

	"github.com/SillyBits/imagetracer/internal/raster"
)

const sentinelColor = 255

// Trace runs the four-stage tracing pipeline over pixels, a
// width*height indexed byte buffer with values in [0,254], and returns
// one layer of fitted polygons per color index that produced at least
// one contour. ctx may be nil; a nil context performs no logging or
// timing.
func Trace(pixels []byte, width, height int, opts Options, ctx *BuildContext) (*Result, *TraceError) {
	ctx.StartTimer(TimerTotal)
	defer ctx.StopTimer(TimerTotal)

	min, max, err := minMaxColor(pixels)
	if err != nil {
		return nil, err
	}

	bordered, bw, bh := borderBuffer(pixels, width, height)

	n := max - min + 1
	layers := make([]Layer, n)
	present := make([]bool, n)

	var wg sync.WaitGroup
	workerCtxs := make([]*BuildContext, n)
	for i := range workerCtxs {
		if ctx != nil {
			workerCtxs[i] = NewBuildContext(true)
		}
	}

	var errOnce sync.Once
	var traceErr *TraceError

	for c := min; c <= max; c++ {
		c := c
		slot := c - min
		wg.Add(1)
		go func() {
			defer wg.Done()
			layer, ok, werr := traceColor(bordered, bw, bh, byte(c), opts, workerCtxs[slot])
			if werr != nil {
				errOnce.Do(func() { traceErr = werr })
				return
			}
			if ok {
				layers[slot] = layer
				present[slot] = true
			}
		}()
	}
	wg.Wait()

	for _, wctx := range workerCtxs {
		ctx.merge(wctx)
	}

	// A corrupt walk is fatal: abort the whole trace and discard every
	// color's partial progress, even colors that finished cleanly.
	if traceErr != nil {
		return nil, traceErr
	}

	out := layers[:0]
	for i, ok := range present {
		if ok {
			out = append(out, layers[i])
		}
	}
	return &Result{Layers: out}, nil
}

// minMaxColor scans pixels for the observed color range and rejects
// degenerate or reserved-sentinel input.
func minMaxColor(pixels []byte) (min, max int, err *TraceError) {
	if len(pixels) == 0 {
		return 0, 0, newError(ErrEmptyImage, "pixel buffer is empty")
	}
	min, max = 255, 0
	for _, p := range pixels {
		if int(p) < min {
			min = int(p)
		}
		if int(p) > max {
			max = int(p)
		}
	}
	if min >= max {
		return 0, 0, newError(ErrEmptyImage, "image has a single color index (min=%d, max=%d)", min, max)
	}
	if max == sentinelColor {
		return 0, 0, newError(ErrReservedColor, "color index 255 is reserved for the border sentinel")
	}
	return min, max, nil
}

// borderBuffer wraps pixels in a 1-pixel sentinel border, so an
// edge-of-image boundary becomes a regular edge code instead of a
// wraparound artifact.
func borderBuffer(pixels []byte, width, height int) (buf []byte, bw, bh int) {
	bw, bh = width+2, height+2
	buf = make([]byte, bw*bh)
	for i := range buf {
		buf[i] = sentinelColor
	}
	for row := 0; row < height; row++ {
		copy(buf[(row+1)*bw+1:(row+1)*bw+1+width], pixels[row*width:(row+1)*width])
	}
	return buf, bw, bh
}

// traceColor runs the four core stages for a single color index and
// reports whether any paths were found. It is a pure function of its
// arguments: its only interaction with the rest of the driver is its
// return value, which keeps the parallel fan-out race-free. A non-nil
// error here is fatal to the whole trace and must propagate out of the
// driver rather than be swallowed per color.
func traceColor(bordered []byte, width, height int, color byte, opts Options, ctx *BuildContext) (Layer, bool, *TraceError) {
	ctx.StartTimer(TimerLayering)
	edgeGrid := raster.LayeringStep(bordered, width, height, color)
	ctx.StopTimer(TimerLayering)

	ctx.StartTimer(TimerPathScan)
	paths, err := raster.PathScan(edgeGrid, width, height, opts.Pathomit)
	ctx.StopTimer(TimerPathScan)
	if err != nil {
		ctx.Errorf("color %d: %v", color, err)
		return Layer{}, false, newError(ErrCorruptWalk, "color %d: %v", color, err)
	}
	if len(paths) == 0 {
		return Layer{}, false, nil
	}

	polygons := make([]Polygon, 0, len(paths))
	for _, p := range paths {
		ctx.StartTimer(TimerInterNodes)
		inter := raster.InterNodes(p, opts.RightAngleEnhance)
		ctx.StopTimer(TimerInterNodes)

		ctx.StartTimer(TimerTracePaths)
		traced := raster.TracePath(inter, opts.Ltres, opts.Qtres)
		ctx.StopTimer(TimerTracePaths)

		polygons = append(polygons, polygonFromPath(traced))
	}

	ctx.Progressf("color %d: %d polygon(s)", color, len(polygons))
	return Layer{ColorIndex: int(color), Polygons: polygons}, true, nil
}
