// SPDX-License-Identifier: MIT

// Package contour: functional configuration for integration and pole
// detection. Option constructors panic only on nonsensical values
// (programmer error); user-triggered failures are returned as errors.
package contour

import (
	"io"
	"log/slog"
	"math"

	"github.com/afcarl/numerical-computing/quad"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultAbsTol is the absolute quadrature error target.
	DefaultAbsTol = quad.DefaultAbsTol

	// DefaultRelTol is the relative quadrature error target.
	DefaultRelTol = quad.DefaultRelTol

	// DefaultMaxIntervals is the subdivision budget per smooth piece.
	DefaultMaxIntervals = quad.DefaultMaxIntervals

	// DefaultStep is the finite-difference base step for c'(t).
	DefaultStep = quad.DefaultStep

	// DefaultPoleTolerance is the relative distance under which z0 counts
	// as lying on the contour: |c(t)−z0| ≤ tol·max(1, |z0|).
	DefaultPoleTolerance = 1e-9

	// DefaultProbeSamples is the number of coarse samples used to locate
	// the closest approach of the curve to z0.
	DefaultProbeSamples = 512
)

// ---------- Internal panic messages ----------

const (
	panicAbsTolInvalid       = "contour: WithAbsTol: tol must be finite and > 0"
	panicRelTolInvalid       = "contour: WithRelTol: tol must be finite and > 0"
	panicMaxIntervalsInvalid = "contour: WithMaxIntervals: n must be ≥ 1"
	panicStepInvalid         = "contour: WithStep: h must be finite and > 0"
	panicPoleTolInvalid      = "contour: WithPoleTolerance: tol must be finite and ≥ 0"
	panicProbeInvalid        = "contour: WithProbeSamples: n must be ≥ 2"
	panicLoggerNil           = "contour: WithLogger: logger is nil"
)

// Option mutates internal options.
type Option func(*options)

// options is the effective configuration after applying Option setters.
type options struct {
	absTol       float64
	relTol       float64
	maxIntervals int
	step         float64
	poleTol      float64
	probes       int
	logger       *slog.Logger
}

// discard is the default logger; library code is silent unless asked.
var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) options {
	o := options{
		absTol:       DefaultAbsTol,
		relTol:       DefaultRelTol,
		maxIntervals: DefaultMaxIntervals,
		step:         DefaultStep,
		poleTol:      DefaultPoleTolerance,
		probes:       DefaultProbeSamples,
		logger:       discard,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// quadOptions projects the quadrature-relevant fields.
func (o options) quadOptions() quad.Options {
	return quad.Options{AbsTol: o.absTol, RelTol: o.relTol, MaxIntervals: o.maxIntervals}
}

// WithAbsTol sets the absolute error target of the quadrature.
func WithAbsTol(tol float64) Option {
	if !isFinite(tol) || tol <= 0 {
		panic(panicAbsTolInvalid)
	}

	return func(o *options) { o.absTol = tol }
}

// WithRelTol sets the relative error target of the quadrature.
func WithRelTol(tol float64) Option {
	if !isFinite(tol) || tol <= 0 {
		panic(panicRelTolInvalid)
	}

	return func(o *options) { o.relTol = tol }
}

// WithMaxIntervals sets the subdivision budget. Exceeding it yields
// ErrNoConvergence.
func WithMaxIntervals(n int) Option {
	if n < 1 {
		panic(panicMaxIntervalsInvalid)
	}

	return func(o *options) { o.maxIntervals = n }
}

// WithStep sets the finite-difference base step used when the curve does
// not implement Differentiable, including the pieces of a Path.
func WithStep(h float64) Option {
	if !isFinite(h) || h <= 0 {
		panic(panicStepInvalid)
	}

	return func(o *options) { o.step = h }
}

// WithPoleTolerance sets the relative distance under which the Cauchy
// evaluation point is considered to lie on the contour. Zero accepts only
// exact hits.
func WithPoleTolerance(tol float64) Option {
	if !isFinite(tol) || tol < 0 {
		panic(panicPoleTolInvalid)
	}

	return func(o *options) { o.poleTol = tol }
}

// WithProbeSamples sets how many evenly spaced samples seed the search
// for the closest approach of the curve to z0.
func WithProbeSamples(n int) Option {
	if n < 2 {
		panic(panicProbeInvalid)
	}

	return func(o *options) { o.probes = n }
}

// WithLogger routes debug diagnostics (intervals, evaluations, error
// estimates) to logger.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic(panicLoggerNil)
	}

	return func(o *options) { o.logger = logger }
}

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
