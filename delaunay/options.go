// SPDX-License-Identifier: MIT

package delaunay

import (
	"io"
	"log/slog"
	"math"
)

const (
	// DefaultFrameScale is the frame size in multiples of the larger bounds
	// side. A frame corner inside the circumcircle of a flat hull triangle
	// evicts that triangle on removal; at 1000 the output covers the convex
	// hull for uniform clouds of a thousand integer points in [1, 999]².
	// Larger frames cost predicate precision near the frame.
	DefaultFrameScale = 1000.0

	// MinFrameScale is the smallest scale for which the frame is proven to
	// contain the bounds rectangle strictly.
	MinFrameScale = 2.0
)

// Option customizes a Triangulation. Option constructors panic on
// nonsensical values: that is a programmer error, not a runtime condition.
type Option func(*options)

type options struct {
	frameScale   float64
	strictBounds bool
	dedup        bool
	capacity     int
	logger       *slog.Logger
}

func defaultOptions() options {
	return options{
		frameScale: DefaultFrameScale,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithFrameScale sets the frame size relative to the bounds.
// Panics if k < MinFrameScale or k is not finite.
func WithFrameScale(k float64) Option {
	if math.IsNaN(k) || math.IsInf(k, 0) || k < MinFrameScale {
		panic("delaunay: WithFrameScale requires a finite scale >= 2")
	}

	return func(o *options) { o.frameScale = k }
}

// WithStrictBounds makes AddPoint reject points outside the declared
// bounds with ErrOutOfBounds instead of leaving the outcome undefined.
func WithStrictBounds() Option {
	return func(o *options) { o.strictBounds = true }
}

// WithDedup makes AddPoint skip a point whose coordinates exactly repeat
// an earlier one and return the earlier handle. Without it a repeat fails
// with ErrEmptyCavity and poisons the triangulation.
func WithDedup() Option {
	return func(o *options) { o.dedup = true }
}

// WithCapacity pre-sizes the point arena for n input points.
// Panics on negative n.
func WithCapacity(n int) Option {
	if n < 0 {
		panic("delaunay: WithCapacity(n < 0)")
	}

	return func(o *options) { o.capacity = n }
}

// WithLogger attaches a structured logger. Insertions log at Debug,
// Finish logs a summary at Info. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("delaunay: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}
