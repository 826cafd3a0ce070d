// SPDX-License-Identifier: MIT

package contour

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// golden is 1/φ, the golden-section shrink factor.
var golden = (math.Sqrt(5) - 1) / 2

// CauchyFormula returns an Evaluator computing
//
//	(1/2πi) ∮_c f(z)/(z−z0) dz
//
// over [t0, t1]. For f holomorphic inside and on a simple closed contour
// traversed once counterclockwise, and z0 strictly inside, this is f(z0).
// Outside the contour the formula is still evaluated (it yields 0 for a
// holomorphic f); it is not an error.
//
// The Evaluator rejects z0 on the contour with ErrPoleOnContour: it first
// samples the curve, refines every local minimum of |c(t)−z0| by golden-
// section search, and fails when the closest approach is within
// PoleTolerance·max(1, |z0|). The same test guards every quadrature node.
//
// Options are resolved once, when CauchyFormula is called; the Evaluator
// itself holds no mutable state.
func CauchyFormula(f Func, c Curve, t0, t1 float64, opts ...Option) Evaluator {
	o := gatherOptions(opts)

	return func(z0 complex128) (complex128, error) {
		if err := validate(f, c, t0, t1); err != nil {
			return 0, err
		}
		if !isFiniteC(z0) {
			return 0, fmt.Errorf("z0=%v: %w", z0, ErrDomain)
		}
		if err := checkPole(c, t0, t1, z0, o); err != nil {
			return 0, err
		}

		res, err := integrate(f, c, t0, t1, o, &z0)
		if err != nil && !errors.Is(err, ErrNoConvergence) {
			return 0, err
		}

		return res.Value / complex(0, 2*math.Pi), err
	}
}

// WindingNumber returns how many times c winds counterclockwise around
// z0 over [t0, t1]: (1/2πi)∮ dz/(z−z0). For a closed curve the result is
// an integer up to quadrature error; for an open one it is the swept
// angle over 2π.
func WindingNumber(c Curve, t0, t1 float64, z0 complex128, opts ...Option) (float64, error) {
	one := func(complex128) complex128 { return 1 }
	v, err := CauchyFormula(one, c, t0, t1, opts...)(z0)

	return real(v), err
}

// checkPole fails with ErrPoleOnContour when the curve passes within the
// pole tolerance of z0.
func checkPole(c Curve, t0, t1 float64, z0 complex128, o options) error {
	if t0 == t1 {
		return nil
	}
	tol := o.poleTol * math.Max(1, cmplx.Abs(z0))
	dist := func(t float64) float64 { return cmplx.Abs(c.At(t) - z0) }

	ts := probeParams(c, t0, t1, o.probes)
	ds := make([]float64, len(ts))
	for i, t := range ts {
		z := c.At(t)
		if !isFiniteC(z) {
			return fmt.Errorf("curve at t=%g: %w", t, ErrDomain)
		}
		ds[i] = cmplx.Abs(z - z0)
		if ds[i] <= tol {
			return fmt.Errorf("t=%g: %w", t, ErrPoleOnContour)
		}
	}

	for i := range ts {
		// Local minima only; a plateau is refined once, at its left end.
		if (i > 0 && ds[i-1] <= ds[i]) || (i+1 < len(ds) && ds[i+1] < ds[i]) {
			continue
		}
		a, b := ts[max(i-1, 0)], ts[min(i+1, len(ts)-1)]
		t, d := goldenMin(dist, a, b)
		if d <= tol {
			return fmt.Errorf("t=%g: %w", t, ErrPoleOnContour)
		}
	}

	return nil
}

// probeParams returns n+1 evenly spaced parameters from t0 to t1 plus the
// knots of a Piecewise curve, in ascending order.
func probeParams(c Curve, t0, t1 float64, n int) []float64 {
	lo, hi := math.Min(t0, t1), math.Max(t0, t1)
	ts := make([]float64, 0, n+1)
	knots := []float64(nil)
	if pw, ok := c.(Piecewise); ok {
		knots = pw.Knots()
	}

	next := 0
	for k := 0; k <= n; k++ {
		t := lo + (hi-lo)*float64(k)/float64(n)
		for next < len(knots) && knots[next] < t {
			if knots[next] > lo {
				ts = append(ts, knots[next])
			}
			next++
		}
		ts = append(ts, t)
	}

	return ts
}

// goldenMin minimizes fn on [a, b] by golden-section search and returns
// the best parameter seen with its value.
func goldenMin(fn func(float64) float64, a, b float64) (float64, float64) {
	bestT, bestV := a, fn(a)
	if v := fn(b); v < bestV {
		bestT, bestV = b, v
	}

	x1 := b - golden*(b-a)
	x2 := a + golden*(b-a)
	f1, f2 := fn(x1), fn(x2)
	for iter := 0; iter < 200 && b-a > 1e-15*math.Max(1, math.Abs(a)); iter++ {
		if f1 < f2 {
			b, x2, f2 = x2, x1, f1
			x1 = b - golden*(b-a)
			f1 = fn(x1)
		} else {
			a, x1, f1 = x1, x2, f2
			x2 = a + golden*(b-a)
			f2 = fn(x2)
		}
	}
	for _, p := range [][2]float64{{x1, f1}, {x2, f2}} {
		if p[1] < bestV {
			bestT, bestV = p[0], p[1]
		}
	}

	return bestT, bestV
}
