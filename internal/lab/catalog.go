// SPDX-License-Identifier: MIT

package lab

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"github.com/afcarl/numerical-computing/contour"
	"github.com/afcarl/numerical-computing/poly"
)

// labPoly is the polynomial plotted in the lab, z⁴ + 1.
var labPoly = poly.Poly{1, 0, 0, 0, 1}

// Functions is the catalogue of named complex functions.
var Functions = map[string]contour.Func{
	"one":        func(complex128) complex128 { return 1 },
	"z":          func(z complex128) complex128 { return z },
	"conj":       cmplx.Conj,
	"exp":        cmplx.Exp,
	"sin":        cmplx.Sin,
	"cos":        cmplx.Cos,
	"inv":        func(z complex128) complex128 { return 1 / z },
	"z^2+1":      func(z complex128) complex128 { return z*z + 1 },
	"z^4+1":      labPoly.EvalComplex,
	"exp-taylor": poly.ExpTaylor(poly.DefaultTaylorTerms).EvalComplex,
	"sqrt":       cmplx.Sqrt,
}

// FunctionNames returns the catalogue keys in sorted order.
func FunctionNames() []string {
	names := make([]string, 0, len(Functions))
	for name := range Functions {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// LookupFunction returns the catalogue entry for name.
func LookupFunction(name string) (contour.Func, error) {
	f, ok := Functions[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownFunction)
	}

	return f, nil
}

// CurveSpec describes a curve in a job file.
//
// Types and their fields (default parameter interval in brackets):
//   - circle   — center, radius                     [0, 2π]
//   - arc      — center, radius, theta0, theta1     [0, 1]
//   - line     — from, to                           [0, 1]
//   - polyline — points (≥ 2)                       [0, n−1]
//   - the lab curves unit-circle [0, 2π], diagonal (t+it) [0, 1],
//     real-axis (t) [0, 1], vertical (1+it) [0, 1] and
//     shifted-circle (cos t + i(1+sin t)) [−π/2, 0]; these take no fields
//     and are differentiated numerically.
type CurveSpec struct {
	Type   string `yaml:"type" json:"type"`
	Center any    `yaml:"center,omitempty" json:"center,omitempty"`
	Radius any    `yaml:"radius,omitempty" json:"radius,omitempty"`
	Theta0 any    `yaml:"theta0,omitempty" json:"theta0,omitempty"`
	Theta1 any    `yaml:"theta1,omitempty" json:"theta1,omitempty"`
	From   any    `yaml:"from,omitempty" json:"from,omitempty"`
	To     any    `yaml:"to,omitempty" json:"to,omitempty"`
	Points []any  `yaml:"points,omitempty" json:"points,omitempty"`
}

// labCurves are the parametric curves of the lab's integration exercises.
var labCurves = map[string]struct {
	curve  contour.CurveFunc
	t0, t1 float64
}{
	"unit-circle": {func(t float64) complex128 { return complex(math.Cos(t), math.Sin(t)) }, 0, 2 * math.Pi},
	"diagonal":    {func(t float64) complex128 { return complex(t, t) }, 0, 1},
	"real-axis":   {func(t float64) complex128 { return complex(t, 0) }, 0, 1},
	"vertical":    {func(t float64) complex128 { return complex(1, t) }, 0, 1},
	"shifted-circle": {func(t float64) complex128 {
		return complex(math.Cos(t), 1+math.Sin(t))
	}, -math.Pi / 2, 0},
}

// Build returns the curve with its default parameter interval.
func (s CurveSpec) Build() (contour.Curve, [2]float64, error) {
	if lc, ok := labCurves[s.Type]; ok {
		return lc.curve, [2]float64{lc.t0, lc.t1}, nil
	}

	switch s.Type {
	case "circle":
		center, radius, err := s.disc()
		if err != nil {
			return nil, [2]float64{}, err
		}

		return contour.Circle(center, radius), [2]float64{0, 2 * math.Pi}, nil
	case "arc":
		center, radius, err := s.disc()
		if err != nil {
			return nil, [2]float64{}, err
		}
		th0, err := realOr(s.Theta0, 0)
		if err != nil {
			return nil, [2]float64{}, fmt.Errorf("arc theta0: %w", err)
		}
		th1, err := realOr(s.Theta1, 2*math.Pi)
		if err != nil {
			return nil, [2]float64{}, fmt.Errorf("arc theta1: %w", err)
		}

		return contour.Arc(center, radius, th0, th1), [2]float64{0, 1}, nil
	case "line":
		from, err := complexOr(s.From, 0)
		if err != nil {
			return nil, [2]float64{}, fmt.Errorf("line from: %w", err)
		}
		to, err := complexOr(s.To, 1)
		if err != nil {
			return nil, [2]float64{}, fmt.Errorf("line to: %w", err)
		}

		return contour.Line(from, to), [2]float64{0, 1}, nil
	case "polyline":
		pts := make([]complex128, len(s.Points))
		for i, p := range s.Points {
			z, err := ParseComplex(p)
			if err != nil {
				return nil, [2]float64{}, fmt.Errorf("polyline point %d: %w", i, err)
			}
			pts[i] = z
		}
		path, err := contour.Polyline(pts...)
		if err != nil {
			return nil, [2]float64{}, err
		}

		return path, [2]float64{0, float64(path.Len())}, nil
	default:
		return nil, [2]float64{}, fmt.Errorf("%q: %w", s.Type, ErrUnknownCurve)
	}
}

// disc parses center (default 0) and radius (default 1).
func (s CurveSpec) disc() (complex128, float64, error) {
	center, err := complexOr(s.Center, 0)
	if err != nil {
		return 0, 0, fmt.Errorf("%s center: %w", s.Type, err)
	}
	radius, err := realOr(s.Radius, 1)
	if err != nil {
		return 0, 0, fmt.Errorf("%s radius: %w", s.Type, err)
	}

	return center, radius, nil
}
