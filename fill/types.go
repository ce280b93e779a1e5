package fill

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/leofk/algorithm-2/frontier"
	"github.com/leofk/algorithm-2/hsla"
)

// Sentinel errors for Fill.
var (
	// ErrImageNil is returned when a nil image is passed.
	ErrImageNil = errors.New("fill: image is nil")

	// ErrPickerNil is returned when a nil picker is passed.
	ErrPickerNil = errors.New("fill: picker is nil")

	// ErrSeedOutOfBounds is returned when the seed lies outside the image.
	ErrSeedOutOfBounds = errors.New("fill: seed outside image bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("fill: invalid option supplied")
)

// Option configures Fill via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Fill.
type Option func(*Options)

// Options holds the tunable parameters of one fill.
type Options struct {
	// Tolerance is the largest accepted Metric distance from the seed's
	// original color. The interval is closed: a distance equal to Tolerance
	// is admitted.
	Tolerance float64

	// FrameFrequency is the number of admitted pixels between snapshots.
	FrameFrequency int

	// Ordering selects depth-first (stack) or breadth-first (queue) traversal.
	Ordering frontier.Ordering

	// Metric compares colors; defaults to hsla.Distance.
	Metric hsla.Metric

	// OnFill is called once for every repainted pixel, seed first,
	// in the order pixels are repainted.
	OnFill func(p image.Point)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Tolerance 0 (exact matches only)
//   - FrameFrequency 1 (a frame per pixel)
//   - depth-first ordering
//   - hsla.Distance metric
//   - no-op OnFill hook
func DefaultOptions() Options {
	return Options{
		Tolerance:      0,
		FrameFrequency: 1,
		Ordering:       frontier.DFS,
		Metric:         hsla.Distance,
		OnFill:         func(image.Point) {},
	}
}

// WithTolerance sets the color tolerance. Negative or NaN values are invalid.
func WithTolerance(t float64) Option {
	return func(o *Options) {
		if t < 0 || math.IsNaN(t) {
			o.err = fmt.Errorf("%w: tolerance must be a non-negative number (%v)", ErrOptionViolation, t)
			return
		}
		o.Tolerance = t
	}
}

// WithFrameFrequency sets how many admitted pixels separate two snapshots.
// Values below one are invalid.
func WithFrameFrequency(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: frame frequency must be at least 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.FrameFrequency = k
	}
}

// WithOrdering selects frontier.DFS or frontier.BFS.
func WithOrdering(ord frontier.Ordering) Option {
	return func(o *Options) {
		if ord != frontier.DFS && ord != frontier.BFS {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, ord)
			return
		}
		o.Ordering = ord
	}
}

// WithMetric replaces the color distance. A nil metric is invalid.
func WithMetric(m hsla.Metric) Option {
	return func(o *Options) {
		if m == nil {
			o.err = fmt.Errorf("%w: metric is nil", ErrOptionViolation)
			return
		}
		o.Metric = m
	}
}

// WithOnFill registers a hook run for each repainted pixel.
func WithOnFill(fn func(p image.Point)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFill = fn
		}
	}
}
