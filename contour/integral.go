// SPDX-License-Identifier: MIT

package contour

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"github.com/afcarl/numerical-computing/quad"
)

// ContourIntegral computes ∫ f(c(t))·c'(t) dt over [t0, t1].
//
// t1 < t0 traverses the curve backwards and negates the result; t0 == t1
// yields 0. c'(t) comes from the curve when it implements Differentiable
// and from finite differences (kept inside [t0, t1]) otherwise.
//
// Errors:
//   - ErrNilFunc, ErrNilCurve, ErrBadInterval — invalid inputs.
//   - ErrDomain        — c, c' or f not finite at a sample.
//   - ErrNoConvergence — the returned value is the partial estimate.
//
// Complexity: 15 integrand calls per quadrature cell, at most
// MaxIntervals cells per smooth piece.
func ContourIntegral(f Func, c Curve, t0, t1 float64, opts ...Option) (complex128, error) {
	res, err := Integrate(f, c, t0, t1, opts...)

	return res.Value, err
}

// Integrate is ContourIntegral with quadrature diagnostics.
func Integrate(f Func, c Curve, t0, t1 float64, opts ...Option) (Result, error) {
	if err := validate(f, c, t0, t1); err != nil {
		return Result{}, err
	}

	return integrate(f, c, t0, t1, gatherOptions(opts), nil)
}

// validate checks the arguments shared by every entry point.
func validate(f Func, c Curve, t0, t1 float64) error {
	if f == nil {
		return ErrNilFunc
	}
	if isNilCurve(c) {
		return ErrNilCurve
	}
	if !isFinite(t0) || !isFinite(t1) {
		return fmt.Errorf("[%g, %g]: %w", t0, t1, ErrBadInterval)
	}

	return nil
}

// integrate runs the quadrature piece by piece. When pole is non-nil the
// integrand is f(z)/(z−pole) and hitting the pole is ErrPoleOnContour.
func integrate(f Func, c Curve, t0, t1 float64, o options, pole *complex128) (Result, error) {
	var total Result
	if t0 == t1 {
		return total, nil
	}

	bounds := splitAtKnots(c, t0, t1)
	for i := 0; i+1 < len(bounds); i++ {
		a, b := bounds[i], bounds[i+1]
		fn := integrand(f, c, math.Min(a, b), math.Max(a, b), o, pole)

		res, err := quad.Complex(fn, a, b, o.quadOptions())
		total.Value += res.Value
		total.AbsError += res.AbsError
		total.Evaluations += res.Evaluations
		total.Intervals += res.Intervals
		if err != nil {
			return total, translate(err)
		}
	}

	o.logger.Debug("contour integral",
		"t0", t0,
		"t1", t1,
		"pieces", len(bounds)-1,
		"intervals", total.Intervals,
		"evaluations", total.Evaluations,
		"abs_error", total.AbsError,
	)

	return total, nil
}

// integrand builds t ↦ f(c(t))·c'(t) with domain checks. lo and hi bound
// the finite-difference stencil.
func integrand(f Func, c Curve, lo, hi float64, o options, pole *complex128) quad.Integrand {
	var deriv func(t float64) complex128
	switch cv := c.(type) {
	case *Path:
		deriv = func(t float64) complex128 { return cv.derivative(t, o.step) }
	case Differentiable:
		deriv = cv.Derivative
	default:
		deriv = func(t float64) complex128 { return quad.Derivative(c.At, t, o.step, lo, hi) }
	}
	poleTol := 0.0
	if pole != nil {
		poleTol = o.poleTol * math.Max(1, cmplx.Abs(*pole))
	}

	return func(t float64) (complex128, error) {
		z := c.At(t)
		if !isFiniteC(z) {
			return 0, fmt.Errorf("curve: %w", ErrDomain)
		}

		dz := deriv(t)
		if !isFiniteC(dz) {
			return 0, fmt.Errorf("curve derivative: %w", ErrDomain)
		}

		if pole != nil && cmplx.Abs(z-*pole) <= poleTol {
			return 0, fmt.Errorf("z=%v: %w", z, ErrPoleOnContour)
		}

		w := f(z)
		if !isFiniteC(w) {
			return 0, fmt.Errorf("f(%v): %w", z, ErrDomain)
		}
		if pole == nil {
			return w * dz, nil
		}

		v := w / (z - *pole) * dz
		if !isFiniteC(v) {
			return 0, fmt.Errorf("z=%v: %w", z, ErrPoleOnContour)
		}

		return v, nil
	}
}

// splitAtKnots returns t0, the knots of a Piecewise curve strictly
// between t0 and t1 (in traversal order), and t1.
func splitAtKnots(c Curve, t0, t1 float64) []float64 {
	pw, ok := c.(Piecewise)
	if !ok {
		return []float64{t0, t1}
	}

	lo, hi := math.Min(t0, t1), math.Max(t0, t1)
	bounds := []float64{t0}
	inner := make([]float64, 0)
	for _, k := range pw.Knots() {
		if k > lo && k < hi {
			inner = append(inner, k)
		}
	}
	sort.Float64s(inner)
	if t1 < t0 {
		sort.Sort(sort.Reverse(sort.Float64Slice(inner)))
	}
	bounds = append(bounds, inner...)

	return append(bounds, t1)
}

// translate maps quadrature sentinels onto the contour taxonomy; errors
// already carrying a contour sentinel pass through.
func translate(err error) error {
	switch {
	case errors.Is(err, quad.ErrNoConvergence):
		return fmt.Errorf("%w: %w", ErrNoConvergence, err)
	case errors.Is(err, quad.ErrNonFinite):
		return fmt.Errorf("%w: %w", ErrDomain, err)
	default:
		return err
	}
}

// isFiniteC reports whether both parts of z are finite.
func isFiniteC(z complex128) bool {
	return isFinite(real(z)) && isFinite(imag(z))
}
