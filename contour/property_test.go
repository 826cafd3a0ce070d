package contour_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/afcarl/numerical-computing/contour"
	"pgregory.net/rapid"
)

// lissajous is a smooth open curve without an exact derivative.
var lissajous = contour.CurveFunc(func(t float64) complex128 {
	return complex(math.Cos(t)+0.3*t, math.Sin(2*t))
})

// mixed is a non-holomorphic integrand, so path matters.
func mixed(z complex128) complex128 { return cmplx.Conj(z) * cmplx.Exp(z/2) }

// TestProperty_PathAdditivity: ∫[t0,t2] = ∫[t0,t1] + ∫[t1,t2].
func TestProperty_PathAdditivity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		t0 := rapid.Float64Range(-3, 3).Draw(t, "t0")
		t1 := t0 + rapid.Float64Range(0.01, 2).Draw(t, "gap1")
		t2 := t1 + rapid.Float64Range(0.01, 2).Draw(t, "gap2")

		whole, err := contour.ContourIntegral(mixed, lissajous, t0, t2)
		if err != nil {
			t.Fatalf("whole: %v", err)
		}
		left, err := contour.ContourIntegral(mixed, lissajous, t0, t1)
		if err != nil {
			t.Fatalf("left: %v", err)
		}
		right, err := contour.ContourIntegral(mixed, lissajous, t1, t2)
		if err != nil {
			t.Fatalf("right: %v", err)
		}

		if d := cmplx.Abs(whole - (left + right)); d > 1e-7 {
			t.Fatalf("additivity violated by %g: whole=%v parts=%v", d, whole, left+right)
		}
	})
}

// TestProperty_ReversalAntisymmetry: ∫[t0,t1] = −∫[t1,t0].
func TestProperty_ReversalAntisymmetry(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		t0 := rapid.Float64Range(-3, 3).Draw(t, "t0")
		t1 := rapid.Float64Range(-3, 3).Draw(t, "t1")

		fwd, err := contour.ContourIntegral(mixed, lissajous, t0, t1)
		if err != nil {
			t.Fatalf("forward: %v", err)
		}
		rev, err := contour.ContourIntegral(mixed, lissajous, t1, t0)
		if err != nil {
			t.Fatalf("reverse: %v", err)
		}

		if d := cmplx.Abs(fwd + rev); d > 1e-9 {
			t.Fatalf("antisymmetry violated by %g: fwd=%v rev=%v", d, fwd, rev)
		}
	})
}

// TestProperty_CauchyInsideDisc: f(z0) is reproduced anywhere inside a
// disc of radius 0.8 for an entire f.
func TestProperty_CauchyInsideDisc(t *testing.T) {
	eval := contour.CauchyFormula(func(z complex128) complex128 { return z*z*z - 2*z + cmplx.Sin(z) },
		contour.Circle(0, 1), 0, 2*math.Pi)

	rapid.Check(t, func(t *rapid.T) {
		r := rapid.Float64Range(0, 0.8).Draw(t, "r")
		theta := rapid.Float64Range(-math.Pi, math.Pi).Draw(t, "theta")
		z0 := cmplx.Rect(r, theta)

		got, err := eval(z0)
		if err != nil {
			t.Fatalf("z0=%v: %v", z0, err)
		}
		want := z0*z0*z0 - 2*z0 + cmplx.Sin(z0)
		if d := cmplx.Abs(got - want); d > 1e-8 {
			t.Fatalf("z0=%v: got %v want %v (|Δ|=%g)", z0, got, want, d)
		}
	})
}
