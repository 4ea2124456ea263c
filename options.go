package imagetracer

// Options controls the tracer's fitting thresholds and contour
// handling. Fields carry yaml tags so a build settings file can be
// decoded straight into this struct.
type Options struct {
	// Ltres is the squared-distance threshold a line fit's worst
	// interior point must satisfy. Compared directly against squared
	// distance, not its square root.
	// [Limit: > 0]
	Ltres float64 `yaml:"ltres"`

	// Qtres is the squared-distance threshold a quadratic-spline
	// fit's worst interior point must satisfy.
	// [Limit: > 0]
	Qtres float64 `yaml:"qtres"`

	// Pathomit discards any contour shorter than this many points
	// before it ever reaches interpolation or fitting.
	// [Limit: >= 0]
	Pathomit int `yaml:"pathomit"`

	// RightAngleEnhance enables corner-preserving interpolation;
	// disabling it lets midpointing round every corner off.
	RightAngleEnhance bool `yaml:"rightangleenhance"`
}

// DefaultOptions returns the default thresholds and contour handling
// settings.
func DefaultOptions() Options {
	return Options{
		Ltres:             1,
		Qtres:             1,
		Pathomit:          8,
		RightAngleEnhance: true,
	}
}
