// SPDX-License-Identifier: MIT

package contour

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/afcarl/numerical-computing/quad"
)

// circle is center + r·e^{it}; t is the angle in radians.
type circle struct {
	center complex128
	radius float64
}

// Circle returns the counterclockwise circle center + radius·e^{it}.
// One full turn is t ∈ [0, 2π]; the curve starts at center + radius.
func Circle(center complex128, radius float64) Differentiable {
	return circle{center: center, radius: radius}
}

func (c circle) At(t float64) complex128 {
	return c.center + complex(c.radius, 0)*cmplx.Exp(complex(0, t))
}

func (c circle) Derivative(t float64) complex128 {
	return complex(0, c.radius) * cmplx.Exp(complex(0, t))
}

// arc is a circle traversed from angle theta0 to theta1 as t runs over [0, 1].
type arc struct {
	circle
	theta0, theta1 float64
}

// Arc returns the arc of the circle (center, radius) from angle theta0 to
// theta1, parameterized by t ∈ [0, 1]. theta1 < theta0 runs clockwise.
func Arc(center complex128, radius, theta0, theta1 float64) Differentiable {
	return arc{circle: circle{center: center, radius: radius}, theta0: theta0, theta1: theta1}
}

func (a arc) angle(t float64) float64 { return a.theta0 + (a.theta1-a.theta0)*t }

func (a arc) At(t float64) complex128 { return a.circle.At(a.angle(t)) }

func (a arc) Derivative(t float64) complex128 {
	return complex(a.theta1-a.theta0, 0) * a.circle.Derivative(a.angle(t))
}

// line is the segment from a to b over t ∈ [0, 1].
type line struct{ a, b complex128 }

// Line returns the straight segment a + (b−a)·t, t ∈ [0, 1].
func Line(a, b complex128) Differentiable {
	return line{a: a, b: b}
}

func (l line) At(t float64) complex128 { return l.a + (l.b-l.a)*complex(t, 0) }

func (l line) Derivative(float64) complex128 { return l.b - l.a }

// Segment binds a curve to the parameter range it is traversed over.
type Segment struct {
	Curve  Curve
	T0, T1 float64
}

// Path is a concatenation of segments. Piece k occupies t ∈ [k, k+1] and
// is traversed from its own T0 to T1.
type Path struct {
	pieces []Segment
}

// Join concatenates segments into a Path over t ∈ [0, len(segments)].
// Continuity at the joints is the caller's concern; a gap simply adds a
// jump to the image, which the integral does not see.
//
// Errors:
//   - ErrTooFewPieces — no segments.
//   - ErrNilCurve     — a segment has a nil curve.
//   - ErrBadInterval  — a segment has a non-finite bound.
func Join(segments ...Segment) (*Path, error) {
	if len(segments) == 0 {
		return nil, ErrTooFewPieces
	}
	pieces := make([]Segment, len(segments))
	for i, s := range segments {
		if isNilCurve(s.Curve) {
			return nil, fmt.Errorf("segment %d: %w", i, ErrNilCurve)
		}
		if !isFinite(s.T0) || !isFinite(s.T1) {
			return nil, fmt.Errorf("segment %d: %w", i, ErrBadInterval)
		}
		pieces[i] = s
	}

	return &Path{pieces: pieces}, nil
}

// Polyline joins straight segments through points over t ∈ [0, n−1].
// Repeating the first point at the end closes the polygon.
func Polyline(points ...complex128) (*Path, error) {
	if len(points) < 2 {
		return nil, ErrTooFewPieces
	}
	segs := make([]Segment, len(points)-1)
	for i := range segs {
		segs[i] = Segment{Curve: Line(points[i], points[i+1]), T0: 0, T1: 1}
	}

	return Join(segs...)
}

// Len returns the number of pieces; the path parameter spans [0, Len()].
func (p *Path) Len() int { return len(p.pieces) }

// locate maps t to (piece index, local parameter).
// t outside [0, Len()] extrapolates the first or last piece.
func (p *Path) locate(t float64) (int, float64) {
	k := int(math.Floor(t))
	if k < 0 {
		k = 0
	}
	if k >= len(p.pieces) {
		k = len(p.pieces) - 1
	}
	s := p.pieces[k]

	return k, s.T0 + (s.T1-s.T0)*(t-float64(k))
}

// At returns the point of the path at t.
func (p *Path) At(t float64) complex128 {
	k, u := p.locate(t)

	return p.pieces[k].Curve.At(u)
}

// Derivative returns dc/dt at t. At a joint the right-hand piece is used.
// Pieces that are not Differentiable are differentiated numerically
// within their own parameter range with DefaultStep; integrals use the
// step set by WithStep instead.
func (p *Path) Derivative(t float64) complex128 { return p.derivative(t, DefaultStep) }

// derivative is Derivative with an explicit finite-difference step.
func (p *Path) derivative(t, step float64) complex128 {
	k, u := p.locate(t)
	s := p.pieces[k]
	scale := complex(s.T1-s.T0, 0)
	if d, ok := s.Curve.(Differentiable); ok {
		return scale * d.Derivative(u)
	}
	lo, hi := math.Min(s.T0, s.T1), math.Max(s.T0, s.T1)

	return scale * quad.Derivative(s.Curve.At, u, step, lo, hi)
}

// Knots returns the interior joints 1, 2, …, Len()−1.
func (p *Path) Knots() []float64 {
	knots := make([]float64, 0, len(p.pieces)-1)
	for k := 1; k < len(p.pieces); k++ {
		knots = append(knots, float64(k))
	}

	return knots
}

// isNilCurve reports whether c is nil, a nil CurveFunc or a nil *Path.
func isNilCurve(c Curve) bool {
	switch v := c.(type) {
	case nil:
		return true
	case CurveFunc:
		return v == nil
	case *Path:
		return v == nil
	default:
		return false
	}
}
