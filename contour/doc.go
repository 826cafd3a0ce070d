// Package contour evaluates path integrals of complex functions along
// parametric curves and, from them, Cauchy's integral formula.
//
// 🚀 What is a contour integral?
//
//	For f: ℂ→ℂ and a curve c: [t0, t1]→ℂ,
//
//	    ∫_c f(z) dz = ∫_{t0}^{t1} f(c(t))·c'(t) dt.
//
//	Reversing [t0, t1] reverses the path and negates the result.
//
// ✨ Key features:
//   - ContourIntegral / Integrate — adaptive G7/K15 quadrature over t,
//     with c'(t) taken from the curve (Differentiable) or estimated by
//     Richardson-extrapolated finite differences.
//   - CauchyFormula — returns an Evaluator z0 ↦ (1/2πi)∮ f(z)/(z−z0) dz,
//     which reproduces f(z0) for f holomorphic inside a simple closed
//     contour.
//   - WindingNumber — the same formula with f ≡ 1.
//   - Curves — Circle, Arc, Line, Polyline and Join; piecewise curves are
//     split at their knots before integrating.
//
// Errors:
//   - ErrDomain         — curve or function not finite at a sample.
//   - ErrNoConvergence  — quadrature budget exhausted.
//   - ErrPoleOnContour  — z0 lies on the contour image.
//
// A pole on the contour is rejected, never integrated in the principal-
// value sense: the evaluator searches the curve for its closest approach
// to z0 before integrating.
//
// ⚙️ Usage:
//
//	import "github.com/afcarl/numerical-computing/contour"
//
//	f := func(z complex128) complex128 { return z*z + 1 }
//	eval := contour.CauchyFormula(f, contour.Circle(0, 1), 0, 2*math.Pi)
//	v, err := eval(0.5) // ≈ 1.25
//
// All functions are pure and safe for concurrent use provided f and c are.
package contour
