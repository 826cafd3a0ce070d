// SPDX-License-Identifier: MIT

package grid

import "github.com/afcarl/numerical-computing/matrix"

// Defaults mirror the lab's plotting helpers.
const (
	// DefaultResolution is the number of samples per axis.
	DefaultResolution = 401
)

// DefaultBounds is the square [-1, 1] on each axis.
var DefaultBounds = Bounds{Min: -1, Max: 1}

// Bounds is a closed range [Min, Max] on one axis. Min > Max is allowed
// and samples the axis in descending order.
type Bounds struct {
	Min, Max float64
}

// Part selects the real or imaginary component of a complex sample.
type Part int

const (
	// Real selects Re(z).
	Real Part = iota

	// Imag selects Im(z).
	Imag
)

// String returns "real" or "imag".
func (p Part) String() string {
	if p == Imag {
		return "imag"
	}

	return "real"
}

// Surface is a complex function sampled on a grid.
type Surface struct {
	X, Y   *matrix.Dense // coordinate planes
	Re, Im *matrix.Dense // real and imaginary parts of f(X + iY)
}

// Component returns Re or Im according to p.
func (s *Surface) Component(p Part) *matrix.Dense {
	if p == Imag {
		return s.Im
	}

	return s.Re
}

// Sheets is the n-branch sampling of a multivalued function.
type Sheets struct {
	X, Y   *matrix.Dense   // coordinate planes shared by every sheet
	Part   Part            // which component Values hold
	Values []*matrix.Dense // one plane per branch
}
