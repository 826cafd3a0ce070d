// SPDX-License-Identifier: MIT

package poly

// DefaultTaylorTerms is the truncation order used by Exp.
const DefaultTaylorTerms = 25

// ExpTaylor returns the degree-n Taylor polynomial of e^x at 0:
// Σ_{k=0}^{n} x^k / k!, coefficients highest degree first.
// n < 0 is treated as 0.
func ExpTaylor(n int) Poly {
	if n < 0 {
		n = 0
	}
	p := make(Poly, n+1)
	fact := 1.0
	p[n] = 1
	for k := 1; k <= n; k++ {
		fact *= float64(k)
		p[n-k] = 1 / fact
	}

	return p
}

// Exp approximates e^x with the degree-n Taylor polynomial. n ≤ 0 uses
// DefaultTaylorTerms.
func Exp(x float64, n int) float64 {
	if n <= 0 {
		n = DefaultTaylorTerms
	}

	return ExpTaylor(n).Eval(x)
}
