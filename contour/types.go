// SPDX-License-Identifier: MIT

package contour

// Func is a complex function f: ℂ→ℂ. It must be pure.
type Func func(z complex128) complex128

// Curve is a parametric curve t ↦ c(t) in the complex plane.
type Curve interface {
	// At returns the point of the curve at parameter t.
	At(t float64) complex128
}

// CurveFunc adapts an ordinary function to the Curve interface.
type CurveFunc func(t float64) complex128

// At calls fn(t).
func (fn CurveFunc) At(t float64) complex128 { return fn(t) }

// Differentiable is a Curve that knows its own derivative. When a curve
// implements it, the exact c'(t) replaces the finite-difference estimate.
type Differentiable interface {
	Curve

	// Derivative returns dc/dt at t.
	Derivative(t float64) complex128
}

// Piecewise is a Curve that is smooth between known parameter values.
// Integrals are split at the knots lying strictly inside [t0, t1].
type Piecewise interface {
	Curve

	// Knots returns the breakpoints in ascending order.
	Knots() []float64
}

// Evaluator is the function returned by CauchyFormula. It maps an
// evaluation point z0 to (1/2πi)∮ f(z)/(z−z0) dz.
type Evaluator func(z0 complex128) (complex128, error)

// Result is a contour integral together with quadrature diagnostics.
type Result struct {
	// Value is the integral estimate.
	Value complex128

	// AbsError is the summed error estimate over all subintervals.
	AbsError float64

	// Evaluations counts integrand calls (curve + function).
	Evaluations int

	// Intervals is the size of the final adaptive partition, summed over
	// the smooth pieces of a Piecewise curve.
	Intervals int
}
