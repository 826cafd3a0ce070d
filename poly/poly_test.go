package poly_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/afcarl/numerical-computing/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naive evaluates Σ p[i]·x^{n−i} directly.
func naive(p poly.Poly, x float64) float64 {
	n := p.Degree()
	var s float64
	for i, c := range p {
		s += c * math.Pow(x, float64(n-i))
	}

	return s
}

// TestNew trims leading zeros and rejects empty input.
func TestNew(t *testing.T) {
	p, err := poly.New(0, 0, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, poly.Poly{2, 1}, p)
	assert.Equal(t, 1, p.Degree())

	z, err := poly.New(0, 0)
	require.NoError(t, err)
	assert.Equal(t, poly.Poly{0}, z)

	_, err = poly.New()
	assert.ErrorIs(t, err, poly.ErrEmpty)
}

// TestEval_MatchesNaive compares Horner with the direct power sum.
func TestEval_MatchesNaive(t *testing.T) {
	p, err := poly.New(3, -2, 0, 5, -1)
	require.NoError(t, err)
	for _, x := range []float64{-2, -0.5, 0, 1, 3.25} {
		assert.InDelta(t, naive(p, x), p.Eval(x), 1e-12, "x=%g", x)
	}
}

// TestEvalComplex checks z⁴ + 1 at its roots and at i.
func TestEvalComplex(t *testing.T) {
	p, err := poly.New(1, 0, 0, 0, 1)
	require.NoError(t, err)

	root := cmplx.Exp(complex(0, math.Pi/4))
	assert.InDelta(t, 0.0, cmplx.Abs(p.EvalComplex(root)), 1e-15)
	assert.Equal(t, complex128(2), p.Func()(1i))
}

// TestDerivative differentiates term by term.
func TestDerivative(t *testing.T) {
	p, err := poly.New(1, 0, -3, 2)
	require.NoError(t, err)
	assert.Equal(t, poly.Poly{3, 0, -3}, p.Derivative())
	assert.Equal(t, poly.Poly{0}, poly.Poly{7}.Derivative())
}

// TestString renders signs and powers.
func TestString(t *testing.T) {
	p, err := poly.New(1, 0, 0, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, "x^4 + 1", p.String())

	q, err := poly.New(-2, 1, -0.5)
	require.NoError(t, err)
	assert.Equal(t, "-2x^2 + x - 0.5", q.String())

	assert.Equal(t, "0", poly.Poly{0}.String())
}

// TestExpTaylor checks coefficients and accuracy.
func TestExpTaylor(t *testing.T) {
	assert.Equal(t, poly.Poly{0.5, 1, 1}, poly.ExpTaylor(2))
	assert.Equal(t, poly.Poly{1}, poly.ExpTaylor(-3))

	assert.InDelta(t, math.E, poly.Exp(1, 25), 1e-14)
	assert.InDelta(t, math.Exp(-2.5), poly.Exp(-2.5, 0), 1e-12)
	assert.InDelta(t, math.Exp(3), poly.ExpTaylor(30).Eval(3), 1e-10)
}
