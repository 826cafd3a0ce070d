// Package matrix provides Dense, a row-major float64 matrix used to hold
// sampled planes (coordinates, real and imaginary parts) on a regular grid.
//
// Planes are built once from a generator (NewDenseFrom) and read back with
// At, which returns ErrOutOfRange instead of panicking, or summarized with
// MinMax.
package matrix
