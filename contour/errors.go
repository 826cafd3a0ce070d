// SPDX-License-Identifier: MIT
// Package contour: sentinel error set.
// Algorithms return these sentinels, optionally wrapped with parameter
// context via fmt.Errorf("...: %w", ErrX); callers match with errors.Is.

package contour

import "errors"

var (
	// ErrDomain signals that the curve, its derivative or the integrand
	// function is undefined (NaN/±Inf) at a sampled parameter.
	ErrDomain = errors.New("contour: function or curve undefined on the interval")

	// ErrNoConvergence signals that adaptive quadrature exhausted its
	// subdivision budget before meeting the tolerance.
	ErrNoConvergence = errors.New("contour: quadrature did not converge")

	// ErrPoleOnContour signals that the Cauchy evaluation point lies on the
	// curve image, where the integrand is not integrable.
	ErrPoleOnContour = errors.New("contour: evaluation point lies on the contour")

	// ErrBadInterval signals a NaN or infinite parameter bound.
	ErrBadInterval = errors.New("contour: parameter bounds must be finite")

	// ErrNilFunc signals a nil integrand function.
	ErrNilFunc = errors.New("contour: function is nil")

	// ErrNilCurve signals a nil curve.
	ErrNilCurve = errors.New("contour: curve is nil")

	// ErrTooFewPieces signals a Polyline with < 2 points or an empty Join.
	ErrTooFewPieces = errors.New("contour: path needs at least one piece")
)
