package contour_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/afcarl/numerical-computing/contour"
	"github.com/afcarl/numerical-computing/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCurves_DerivativesMatchNumeric compares exact derivatives with
// finite differences.
func TestCurves_DerivativesMatchNumeric(t *testing.T) {
	inf := math.Inf(1)
	curves := map[string]contour.Differentiable{
		"circle": contour.Circle(1-1i, 2),
		"arc":    contour.Arc(0.5i, 1.5, -math.Pi/3, 2),
		"line":   contour.Line(-1+2i, 3-1i),
	}
	for name, c := range curves {
		t.Run(name, func(t *testing.T) {
			for _, x := range []float64{0.1, 0.4, 0.9} {
				want := quad.Derivative(c.At, x, 0, -inf, inf)
				assertClose(t, want, c.Derivative(x), 1e-8, "t=%g", x)
			}
		})
	}
}

// TestCurves_Endpoints checks where the built-in curves start and end.
func TestCurves_Endpoints(t *testing.T) {
	circle := contour.Circle(1i, 2)
	assertClose(t, 2+1i, circle.At(0), 1e-15)
	assertClose(t, -2+1i, circle.At(math.Pi), 1e-15)

	arc := contour.Arc(0, 1, 0, math.Pi/2)
	assertClose(t, 1, arc.At(0), 1e-15)
	assertClose(t, 1i, arc.At(1), 1e-15)

	line := contour.Line(1, 1+1i)
	assertClose(t, 1, line.At(0), 0)
	assertClose(t, 1+1i, line.At(1), 0)
	assertClose(t, 1i, line.Derivative(0.7), 0)
}

// TestArc_QuarterTurn integrates 1/z over a quarter arc: iπ/2.
func TestArc_QuarterTurn(t *testing.T) {
	inv := func(z complex128) complex128 { return 1 / z }

	got, err := contour.ContourIntegral(inv, contour.Arc(0, 3, 0, math.Pi/2), 0, 1)
	require.NoError(t, err)
	assertClose(t, complex(0, math.Pi/2), got, tol)
}

// TestPolyline_Shape checks parameterization, joints and knots.
func TestPolyline_Shape(t *testing.T) {
	p, err := contour.Polyline(0, 1, 1+1i, 0)
	require.NoError(t, err)

	assert.Equal(t, 3, p.Len())
	assert.Equal(t, []float64{1, 2}, p.Knots())
	assertClose(t, 0.5, p.At(0.5), 1e-15)
	assertClose(t, 1, p.At(1), 1e-15)
	assertClose(t, 1+0.5i, p.At(1.5), 1e-15)
	assertClose(t, 0, p.At(3), 1e-15)
	assertClose(t, 1i, p.Derivative(1), 0, "right-hand piece at a joint")
	assertClose(t, -1-1i, p.Derivative(3), 0, "last piece at the end")
}

// TestJoin_MixedPieces joins an exact arc with a numeric segment.
func TestJoin_MixedPieces(t *testing.T) {
	ray := contour.CurveFunc(func(s float64) complex128 { return complex(s, 0) })
	p, err := contour.Join(
		contour.Segment{Curve: contour.Circle(0, 1), T0: 0, T1: math.Pi}, // 1 → −1 over the top
		contour.Segment{Curve: ray, T0: -1, T1: 1},                       // −1 → 1 along the axis
	)
	require.NoError(t, err)

	assertClose(t, -1, p.At(1), 1e-15)
	assertClose(t, 2, p.Derivative(1.5), 1e-9, "numeric piece scaled by T1−T0")

	got, err := contour.ContourIntegral(conj, p, 0, 2)
	require.NoError(t, err)
	// ∮ z̄ dz = 2i·area, the upper half disc has area π/2.
	assertClose(t, complex(0, math.Pi), got, tol)
}

// TestJoin_Errors rejects empty and malformed paths.
func TestJoin_Errors(t *testing.T) {
	_, err := contour.Join()
	assert.ErrorIs(t, err, contour.ErrTooFewPieces)

	_, err = contour.Polyline(1)
	assert.ErrorIs(t, err, contour.ErrTooFewPieces)

	_, err = contour.Join(contour.Segment{Curve: nil, T0: 0, T1: 1})
	assert.ErrorIs(t, err, contour.ErrNilCurve)

	_, err = contour.Join(contour.Segment{Curve: contour.Line(0, 1), T0: 0, T1: math.Inf(1)})
	assert.ErrorIs(t, err, contour.ErrBadInterval)
}

// TestCurveFunc_At forwards to the wrapped function.
func TestCurveFunc_At(t *testing.T) {
	c := contour.CurveFunc(func(t float64) complex128 { return cmplx.Rect(1, t) })
	assertClose(t, cmplx.Rect(1, 0.7), c.At(0.7), 0)
}
