// SPDX-License-Identifier: MIT

package lab

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// ParseReal converts a YAML scalar to float64. Strings may be multiples
// of pi: "pi", "2pi", "-pi/2", "3*pi/4", "0.5 pi".
func ParseReal(v any) (float64, error) {
	s, ok := v.(string)
	if !ok {
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return 0, fmt.Errorf("%v: %w", v, ErrBadValue)
		}

		return f, nil
	}

	expr := strings.ToLower(strings.ReplaceAll(s, " ", ""))
	if !strings.Contains(expr, "pi") {
		f, err := cast.ToFloat64E(expr)
		if err != nil {
			return 0, fmt.Errorf("%q: %w", s, ErrBadValue)
		}

		return f, nil
	}

	num, den := expr, "1"
	if i := strings.IndexByte(expr, '/'); i >= 0 {
		num, den = expr[:i], expr[i+1:]
	}
	coef := strings.TrimSuffix(strings.TrimSuffix(num, "pi"), "*")
	if strings.Contains(coef, "pi") || !strings.HasSuffix(num, "pi") {
		return 0, fmt.Errorf("%q: %w", s, ErrBadValue)
	}

	c := 1.0
	switch coef {
	case "", "+":
	case "-":
		c = -1
	default:
		f, err := cast.ToFloat64E(coef)
		if err != nil {
			return 0, fmt.Errorf("%q: %w", s, ErrBadValue)
		}
		c = f
	}
	d, err := cast.ToFloat64E(den)
	if err != nil || d == 0 {
		return 0, fmt.Errorf("%q: %w", s, ErrBadValue)
	}

	return c * math.Pi / d, nil
}

// ParseComplex converts a YAML scalar to complex128. Besides everything
// ParseReal accepts, strings of the form "a+bi", "bi" or "(a+bi)" work.
func ParseComplex(v any) (complex128, error) {
	if f, err := ParseReal(v); err == nil {
		return complex(f, 0), nil
	}
	s, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("%v: %w", v, ErrBadValue)
	}
	z, err := strconv.ParseComplex(strings.ReplaceAll(s, " ", ""), 128)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrBadValue)
	}

	return z, nil
}

// realOr parses v, or returns def when v is absent.
func realOr(v any, def float64) (float64, error) {
	if v == nil {
		return def, nil
	}

	return ParseReal(v)
}

// complexOr parses v, or returns def when v is absent.
func complexOr(v any, def complex128) (complex128, error) {
	if v == nil {
		return def, nil
	}

	return ParseComplex(v)
}
