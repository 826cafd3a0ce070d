package contour_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/afcarl/numerical-computing/contour"
	"github.com/stretchr/testify/assert"
)

// tol is the comparison tolerance for integrals with default options.
const tol = 1e-9

// conj is f(z) = z̄, which is not holomorphic.
func conj(z complex128) complex128 { return cmplx.Conj(z) }

// exp is f(z) = e^z, which is entire.
func exp(z complex128) complex128 { return cmplx.Exp(z) }

// quadratic is f(z) = z² + 1.
func quadratic(z complex128) complex128 { return z*z + 1 }

// unitCircleFunc is the unit circle WITHOUT an exact derivative, so the
// integrator must difference it numerically.
var unitCircleFunc = contour.CurveFunc(func(t float64) complex128 {
	return complex(math.Cos(t), math.Sin(t))
})

// assertClose fails unless |got − want| ≤ delta.
func assertClose(t *testing.T, want, got complex128, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, 0.0, cmplx.Abs(got-want), delta, msgAndArgs...)
}
