// Package grid samples complex functions on regular rectangular grids.
//
// It is the numeric half of surface plotting: Evaluate returns the
// coordinate planes and the real and imaginary parts of f(x+iy) as
// matrix.Dense values, ready for any renderer. RootSheets samples the
// n branches of the n-th root, i.e. the Riemann surface of z^{1/n}.
//
// Orientation follows numpy's meshgrid: row i holds y[i], column j holds
// x[j].
//
//	s, err := grid.Evaluate(f, grid.DefaultBounds, grid.DefaultBounds, 101)
//	re, _ := s.Re.At(i, j) // Re f(x[j] + i·y[i])
package grid
