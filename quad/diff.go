// SPDX-License-Identifier: MIT

package quad

import "math"

// DefaultStep is the base finite-difference step.
const DefaultStep = 1e-3

// Derivative estimates fn'(t) by finite differences with one Richardson
// extrapolation step.
//
// The stencil stays inside [lo, hi]; pass ±Inf for an unbounded side.
// When the central stencil t±h fits it is used (error O(h⁴)); otherwise a
// three-point one-sided stencil is used (error O(h³)). If the domain is
// narrower than 4h the step shrinks to a quarter of its width.
//
// The step does not grow with |t|; it is only raised to 1e3 ulps of t
// and then rounded down to a power of two, so t±h, t±h/2 and t+2h are
// exact and the difference quotients see no argument round-off.
//
// Inputs:
//   - step: base step; values ≤ 0 fall back to DefaultStep.
//
// Complexity: 4 calls (central) or 5 calls (one-sided) to fn.
func Derivative(fn func(float64) complex128, t, step, lo, hi float64) complex128 {
	if !(step > 0) {
		step = DefaultStep
	}
	h := math.Max(step, ulpFloor*ulp(t))
	if width := hi - lo; width > 0 && width < 4*h {
		h = width / 4
	}
	_, exp := math.Frexp(h)
	h = math.Ldexp(0.5, exp)

	switch {
	case t-h >= lo && t+h <= hi:
		d1 := central(fn, t, h)
		d2 := central(fn, t, h/2)

		return (4*d2 - d1) / 3
	case t+2*h <= hi:
		f0 := fn(t)
		d1 := forward(fn, f0, t, h)
		d2 := forward(fn, f0, t, h/2)

		return (4*d2 - d1) / 3
	default:
		f0 := fn(t)
		d1 := forward(fn, f0, t, -h)
		d2 := forward(fn, f0, t, -h/2)

		return (4*d2 - d1) / 3
	}
}

// ulpFloor is the smallest step, in units in the last place of t.
const ulpFloor = 1e3

// ulp returns the spacing of float64 values at t.
func ulp(t float64) float64 {
	a := math.Abs(t)

	return math.Nextafter(a, math.Inf(1)) - a
}

// central is the symmetric two-point difference quotient.
func central(fn func(float64) complex128, t, h float64) complex128 {
	return (fn(t+h) - fn(t-h)) / complex(2*h, 0)
}

// forward is the second-order one-sided quotient; negative h looks backward.
func forward(fn func(float64) complex128, f0 complex128, t, h float64) complex128 {
	return (-3*f0 + 4*fn(t+h) - fn(t+2*h)) / complex(2*h, 0)
}
