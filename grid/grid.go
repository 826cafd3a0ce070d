// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/afcarl/numerical-computing/matrix"
)

// Linspace returns n evenly spaced samples from a to b inclusive.
// The last sample is exactly b.
func Linspace(a, b float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrBadResolution)
	}
	if !isFinite(a) || !isFinite(b) || a == b {
		return nil, fmt.Errorf("[%g, %g]: %w", a, b, ErrBadBounds)
	}

	out := make([]float64, n)
	step := (b - a) / float64(n-1)
	for i := range out {
		out[i] = a + step*float64(i)
	}
	out[n-1] = b

	return out, nil
}

// Meshgrid expands x and y into coordinate planes: X[i][j] = x[j] and
// Y[i][j] = y[i].
func Meshgrid(x, y []float64) (X, Y *matrix.Dense, err error) {
	X, err = matrix.NewDenseFrom(len(y), len(x), func(_, j int) float64 { return x[j] })
	if err != nil {
		return nil, nil, err
	}
	Y, err = matrix.NewDenseFrom(len(y), len(x), func(i, _ int) float64 { return y[i] })
	if err != nil {
		return nil, nil, err
	}

	return X, Y, nil
}

// Evaluate samples f on a res×res grid over xb × yb.
//
// Non-finite samples (poles, overflow) are stored as they are; they are
// data, not errors.
//
// Errors:
//   - ErrNilFunc, ErrBadResolution, ErrBadBounds.
//
// Complexity: res² calls to f, 4·res² floats.
func Evaluate(f func(complex128) complex128, xb, yb Bounds, res int) (*Surface, error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	x, y, err := axes(xb, yb, res)
	if err != nil {
		return nil, err
	}
	X, Y, err := Meshgrid(x, y)
	if err != nil {
		return nil, err
	}

	vals := make([]complex128, len(x)*len(y))
	for i, yi := range y {
		for j, xj := range x {
			vals[i*len(x)+j] = f(complex(xj, yi))
		}
	}
	re, err := matrix.NewDenseFrom(len(y), len(x), func(i, j int) float64 { return real(vals[i*len(x)+j]) })
	if err != nil {
		return nil, err
	}
	im, err := matrix.NewDenseFrom(len(y), len(x), func(i, j int) float64 { return imag(vals[i*len(x)+j]) })
	if err != nil {
		return nil, err
	}

	return &Surface{X: X, Y: Y, Re: re, Im: im}, nil
}

// RootSheets samples the n branches of z^{1/n} over [-1, 1]² at res×res.
//
// With r = |z| and θ = arg z ∈ (−π, π], branch k is
//
//	r^{1/n} · e^{i(θ + 2πk)/n},   k = 0 … n−1,
//
// and Values[k] holds its real or imaginary part. Consecutive sheets meet
// across the branch cut on the negative real axis; stacking them gives the
// Riemann surface of the n-th root.
func RootSheets(n, res int, part Part) (*Sheets, error) {
	if n < 1 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrBadRoot)
	}
	x, y, err := axes(DefaultBounds, DefaultBounds, res)
	if err != nil {
		return nil, err
	}
	X, Y, err := Meshgrid(x, y)
	if err != nil {
		return nil, err
	}

	sheets := &Sheets{X: X, Y: Y, Part: part, Values: make([]*matrix.Dense, n)}
	inv := 1 / float64(n)
	for k := 0; k < n; k++ {
		shift := 2 * math.Pi * float64(k)
		sheets.Values[k], err = matrix.NewDenseFrom(len(y), len(x), func(i, j int) float64 {
			z := complex(x[j], y[i])
			w := cmplx.Rect(math.Pow(cmplx.Abs(z), inv), (cmplx.Phase(z)+shift)*inv)
			if part == Imag {
				return imag(w)
			}

			return real(w)
		})
		if err != nil {
			return nil, err
		}
	}

	return sheets, nil
}

// axes builds the x and y sample vectors.
func axes(xb, yb Bounds, res int) ([]float64, []float64, error) {
	x, err := Linspace(xb.Min, xb.Max, res)
	if err != nil {
		return nil, nil, fmt.Errorf("x axis: %w", err)
	}
	y, err := Linspace(yb.Min, yb.Max, res)
	if err != nil {
		return nil, nil, fmt.Errorf("y axis: %w", err)
	}

	return x, y, nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
