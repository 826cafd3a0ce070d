// SPDX-License-Identifier: MIT

package grid

import "errors"

var (
	// ErrBadResolution signals fewer than two samples per axis.
	ErrBadResolution = errors.New("grid: resolution must be at least 2")

	// ErrBadBounds signals NaN/±Inf bounds or an empty range (Min == Max).
	ErrBadBounds = errors.New("grid: bounds must be finite and distinct")

	// ErrBadRoot signals a root order below 1.
	ErrBadRoot = errors.New("grid: root order must be at least 1")

	// ErrNilFunc signals a nil function.
	ErrNilFunc = errors.New("grid: function is nil")
)
