package imagetracer

import "fmt"

// Kind categorizes a TraceError into one of the four fatal conditions
// the pipeline can hit.
type Kind int

const (
	// ErrEmptyImage is returned when the input's observed min color
	// index is not strictly less than its max (a degenerate, single-
	// or zero-color image).
	ErrEmptyImage Kind = iota
	// ErrReservedColor is returned when the input contains the
	// reserved border-sentinel color index 255.
	ErrReservedColor
	// ErrCorruptWalk is returned when the contour walker lands on an
	// invalid lookup entry, indicating a programming or data-
	// consistency error rather than bad input.
	ErrCorruptWalk
	// ErrAllocation names an allocation failure. Trace never returns
	// it: in Go a failed allocation is a fatal runtime error, not a
	// returned value.
	ErrAllocation
)

func (k Kind) String() string {
	switch k {
	case ErrEmptyImage:
		return "empty image"
	case ErrReservedColor:
		return "reserved color"
	case ErrCorruptWalk:
		return "corrupt walk"
	case ErrAllocation:
		return "allocation failure"
	default:
		return "unknown"
	}
}

// TraceError is the single "trace failure" signal: a category plus a
// human-readable reason. Trace never returns a partial Result
// alongside one of these.
type TraceError struct {
	Kind Kind
	Msg  string
}

func (e *TraceError) Error() string {
	return fmt.Sprintf("imagetracer: %s: %s", e.Kind, e.Msg)
}

func newError(kind Kind, format string, v ...interface{}) *TraceError {
	return &TraceError{Kind: kind, Msg: fmt.Sprintf(format, v...)}
}
