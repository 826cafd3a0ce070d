// Package quad integrates complex-valued functions of one real variable
// and differentiates real-to-complex maps numerically.
//
// 🚀 What is inside?
//
//	• Complex — globally adaptive Gauss–Kronrod (G7/K15) quadrature.
//	  The interval with the largest error estimate is bisected until the
//	  summed estimate meets max(AbsTol, RelTol·|I|) or the interval budget
//	  runs out.
//	• Derivative — Richardson-extrapolated finite differences with a
//	  one-sided stencil near the ends of a bounded domain.
//
// ⚙️ Usage:
//
//	import "github.com/afcarl/numerical-computing/quad"
//
//	fn := func(t float64) (complex128, error) {
//		return cmplx.Exp(complex(0, t)), nil
//	}
//	res, err := quad.Complex(fn, 0, math.Pi, quad.DefaultOptions())
//
// Reversed limits (b < a) are legal and negate the integral.
//
// Complexity:
//
//   - Time:   O(K·log K) heap work for K intervals, 15 integrand calls each.
//   - Memory: O(K).
package quad
