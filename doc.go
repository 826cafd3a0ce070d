// Package numerical is a small toolkit for complex-analysis lab work:
// contour integrals, the Cauchy integral formula, and sampling complex
// functions on rectangular grids.
//
// Everything is organized under these subpackages:
//
//	contour/  — ContourIntegral, CauchyFormula, WindingNumber and built-in curves
//	quad/     — adaptive Gauss–Kronrod quadrature of complex integrands, numeric derivatives
//	grid/     — Linspace, Meshgrid, surface evaluation and n-th root sheets
//	matrix/   — dense row-major planes backing the grids
//	poly/     — Horner evaluation and the truncated Taylor exponential
//
// The contourlab command (cmd/contourlab) runs YAML job files built from
// the same pieces.
//
// Quick example, the integral of conj(z) once around the unit circle:
//
//	v, err := contour.ContourIntegral(cmplx.Conj, contour.Circle(0, 1), 0, 2*math.Pi)
//	// v ≈ 2πi
//
//	go get github.com/afcarl/numerical-computing/contour
package numerical
