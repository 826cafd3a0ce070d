// SPDX-License-Identifier: MIT

package quad

// Integrand is a complex-valued function of a real variable.
// A non-nil error aborts the integration and is returned to the caller
// (wrapped with the offending parameter).
type Integrand func(t float64) (complex128, error)

// Defaults (single source of truth for zero-value behavior).
const (
	// DefaultAbsTol is the absolute error target.
	DefaultAbsTol = 1e-10

	// DefaultRelTol is the relative error target.
	DefaultRelTol = 1e-10

	// DefaultMaxIntervals caps the number of subintervals in the partition.
	DefaultMaxIntervals = 2000
)

// Options configures Complex.
//
// Fields:
//   - AbsTol, RelTol — stop once the summed error estimate is at most
//     max(AbsTol, RelTol·|I|). Non-positive values fall back to defaults.
//   - MaxIntervals   — subdivision budget; exceeding it yields
//     ErrNoConvergence. Values < 1 fall back to DefaultMaxIntervals.
type Options struct {
	AbsTol       float64
	RelTol       float64
	MaxIntervals int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		AbsTol:       DefaultAbsTol,
		RelTol:       DefaultRelTol,
		MaxIntervals: DefaultMaxIntervals,
	}
}

// normalize replaces unset fields by their defaults.
func (o Options) normalize() Options {
	if !(o.AbsTol > 0) {
		o.AbsTol = DefaultAbsTol
	}
	if !(o.RelTol > 0) {
		o.RelTol = DefaultRelTol
	}
	if o.MaxIntervals < 1 {
		o.MaxIntervals = DefaultMaxIntervals
	}

	return o
}

// Result is the outcome of an integration.
type Result struct {
	// Value is the integral estimate (Kronrod sums over the final partition).
	Value complex128

	// AbsError is the summed |K15 − G7| over the final partition.
	AbsError float64

	// Evaluations counts integrand calls.
	Evaluations int

	// Intervals is the size of the final partition.
	Intervals int
}
