package contour_test

import (
	"math"
	"testing"

	"github.com/afcarl/numerical-computing/contour"
)

// BenchmarkContourIntegral_Exact integrates e^z around a circle with an
// exact derivative.
func BenchmarkContourIntegral_Exact(b *testing.B) {
	c := contour.Circle(0, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := contour.ContourIntegral(exp, c, 0, 2*math.Pi); err != nil {
			b.Fatalf("ContourIntegral failed: %v", err)
		}
	}
}

// BenchmarkContourIntegral_Numeric is the same integral with c'(t)
// estimated by finite differences.
func BenchmarkContourIntegral_Numeric(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := contour.ContourIntegral(exp, unitCircleFunc, 0, 2*math.Pi); err != nil {
			b.Fatalf("ContourIntegral failed: %v", err)
		}
	}
}

// BenchmarkCauchyFormula includes the pole search.
func BenchmarkCauchyFormula(b *testing.B) {
	eval := contour.CauchyFormula(quadratic, contour.Circle(0, 1), 0, 2*math.Pi)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eval(0.5); err != nil {
			b.Fatalf("evaluator failed: %v", err)
		}
	}
}
