// SPDX-License-Identifier: MIT

package lab

import "errors"

var (
	// ErrUnknownFunction signals a function name missing from the catalogue.
	ErrUnknownFunction = errors.New("lab: unknown function")

	// ErrUnknownCurve signals an unsupported curve type.
	ErrUnknownCurve = errors.New("lab: unknown curve type")

	// ErrUnknownKind signals an unsupported job kind.
	ErrUnknownKind = errors.New("lab: unknown job kind")

	// ErrBadValue signals a numeric field that cannot be parsed.
	ErrBadValue = errors.New("lab: invalid numeric value")

	// ErrBadJob signals a job missing a field its kind requires.
	ErrBadJob = errors.New("lab: invalid job")
)
