// SPDX-License-Identifier: MIT

package quad

import "errors"

// Every message is prefixed with "quad: ". Callers match with errors.Is;
// context (parameter value, interval count) is attached with %w.
var (
	// ErrNoConvergence is returned when the interval budget is exhausted
	// before the requested tolerance is met. The partial Result is still
	// returned alongside it.
	ErrNoConvergence = errors.New("quad: tolerance not reached within interval budget")

	// ErrNonFinite signals that the integrand produced NaN or ±Inf.
	ErrNonFinite = errors.New("quad: integrand is not finite")

	// ErrBadLimits signals a NaN or infinite integration limit.
	ErrBadLimits = errors.New("quad: integration limits must be finite")
)
