// SPDX-License-Identifier: MIT

package poly

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmpty signals a polynomial without coefficients.
var ErrEmpty = errors.New("poly: no coefficients")

// Poly is a polynomial with coefficients in descending degree order:
// p[0]·x^n + p[1]·x^{n−1} + … + p[n].
type Poly []float64

// New builds a Poly, trimming leading zeros. The zero polynomial is kept
// as a single 0 coefficient.
func New(coeffs ...float64) (Poly, error) {
	if len(coeffs) == 0 {
		return nil, ErrEmpty
	}
	i := 0
	for i < len(coeffs)-1 && coeffs[i] == 0 {
		i++
	}
	p := make(Poly, len(coeffs)-i)
	copy(p, coeffs[i:])

	return p, nil
}

// Degree returns the polynomial degree; the zero polynomial has degree 0.
func (p Poly) Degree() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Eval returns p(x) by Horner's rule.
// Complexity: O(n).
func (p Poly) Eval(x float64) float64 {
	var acc float64
	for _, c := range p {
		acc = acc*x + c
	}

	return acc
}

// EvalComplex returns p(z) by Horner's rule.
// Complexity: O(n).
func (p Poly) EvalComplex(z complex128) complex128 {
	var acc complex128
	for _, c := range p {
		acc = acc*z + complex(c, 0)
	}

	return acc
}

// Func returns p as a complex function, ready for grid.Evaluate or
// contour integration.
func (p Poly) Func() func(complex128) complex128 {
	return p.EvalComplex
}

// Derivative returns p'. The derivative of a constant is the zero
// polynomial.
func (p Poly) Derivative() Poly {
	n := p.Degree()
	if n == 0 {
		return Poly{0}
	}
	d := make(Poly, n)
	for i := 0; i < n; i++ {
		d[i] = p[i] * float64(n-i)
	}

	return d
}

// String renders p in descending powers of x, e.g. "x^4 + 1".
func (p Poly) String() string {
	var sb strings.Builder
	n := p.Degree()
	for i, c := range p {
		if c == 0 && len(p) > 1 {
			continue
		}
		pow := n - i
		switch {
		case sb.Len() == 0 && c < 0:
			sb.WriteString("-")
		case sb.Len() > 0 && c < 0:
			sb.WriteString(" - ")
		case sb.Len() > 0:
			sb.WriteString(" + ")
		}
		abs := c
		if abs < 0 {
			abs = -abs
		}
		if abs != 1 || pow == 0 {
			fmt.Fprintf(&sb, "%g", abs)
		}
		switch {
		case pow == 1:
			sb.WriteString("x")
		case pow > 1:
			fmt.Fprintf(&sb, "x^%d", pow)
		}
	}

	return sb.String()
}
