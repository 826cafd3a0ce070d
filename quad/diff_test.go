package quad_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/afcarl/numerical-computing/quad"
	"github.com/stretchr/testify/assert"
)

// unitCircle is e^{it}; its derivative is i·e^{it}.
func unitCircle(t float64) complex128 { return cmplx.Exp(complex(0, t)) }

// TestDerivative_Central checks interior points against the exact derivative.
func TestDerivative_Central(t *testing.T) {
	inf := math.Inf(1)
	for _, x := range []float64{0, 0.3, 1, math.Pi, 10} {
		got := quad.Derivative(unitCircle, x, 0, -inf, inf)
		want := complex(0, 1) * unitCircle(x)
		assert.InDelta(t, 0.0, cmplx.Abs(got-want), 1e-10, "t=%g", x)
	}
}

// TestDerivative_OneSided keeps the stencil inside the domain: √t is NaN
// for t < 0, so a central stencil at t=1e-5 would poison the result.
func TestDerivative_OneSided(t *testing.T) {
	sqrt := func(x float64) complex128 { return complex(math.Sqrt(x), 0) }

	got := quad.Derivative(sqrt, 0.5, 0, 0, 0.5)
	assert.False(t, cmplx.IsNaN(got))
	assert.InDelta(t, 1/(2*math.Sqrt(0.5)), real(got), 1e-6, "backward stencil at upper bound")

	got = quad.Derivative(sqrt, 0.2, 0, 0.2, 1)
	assert.InDelta(t, 1/(2*math.Sqrt(0.2)), real(got), 1e-6, "forward stencil at lower bound")
}

// TestDerivative_NarrowDomain shrinks the step to fit a short interval.
func TestDerivative_NarrowDomain(t *testing.T) {
	line := func(x float64) complex128 { return complex(2*x, -x) }

	got := quad.Derivative(line, 0.0005, 0, 0, 0.001)
	assert.InDelta(t, 2.0, real(got), 1e-9)
	assert.InDelta(t, -1.0, imag(got), 1e-9)
}

// TestDerivative_ShiftedParameter keeps full accuracy far from t=0: the
// step must follow the curve, not the magnitude of t.
func TestDerivative_ShiftedParameter(t *testing.T) {
	inf := math.Inf(1)
	for _, s := range []float64{0, 10, 100, 1e4, 1e6} {
		shifted := func(x float64) complex128 { return unitCircle(x - s) }
		got := quad.Derivative(shifted, s+1, 0, -inf, inf)
		want := complex(0, 1) * unitCircle(1)
		assert.InDelta(t, 0.0, cmplx.Abs(got-want), 1e-9, "s=%g", s)

		// One-sided stencils at the ends of a shifted period.
		got = quad.Derivative(shifted, s, 0, s, s+2*math.Pi)
		assert.InDelta(t, 0.0, cmplx.Abs(got-1i), 1e-8, "forward, s=%g", s)
	}
}

// TestDerivative_UlpFloor raises a step smaller than the float spacing at t.
func TestDerivative_UlpFloor(t *testing.T) {
	line := func(x float64) complex128 { return complex(2*x, 0) }
	inf := math.Inf(1)

	// ulp(1e15) is 0.125, so a 1e-3 step would collapse t±h onto t.
	got := quad.Derivative(line, 1e15, 1e-3, -inf, inf)
	assert.Equal(t, complex(2, 0), got)
}
