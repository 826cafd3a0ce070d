// SPDX-License-Identifier: MIT

package lab

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/afcarl/numerical-computing/contour"
	"github.com/afcarl/numerical-computing/grid"
	"gopkg.in/yaml.v3"
)

// Job kinds.
const (
	KindIntegral = "integral"
	KindCauchy   = "cauchy"
	KindWinding  = "winding"
	KindGrid     = "grid"
	KindRoots    = "roots"
)

// File is a parsed job file.
type File struct {
	Defaults Defaults `yaml:"defaults" json:"defaults"`
	Jobs     []Job    `yaml:"jobs" json:"jobs"`
}

// Defaults holds integration settings shared by every job. Zero values
// keep the contour package defaults.
type Defaults struct {
	AbsTol        any `yaml:"abs_tol,omitempty" json:"abs_tol,omitempty"`
	RelTol        any `yaml:"rel_tol,omitempty" json:"rel_tol,omitempty"`
	MaxIntervals  int `yaml:"max_intervals,omitempty" json:"max_intervals,omitempty"`
	PoleTolerance any `yaml:"pole_tolerance,omitempty" json:"pole_tolerance,omitempty"`
}

// Job is one exercise.
//
// Fields by kind:
//   - integral — function, curve, optional t0/t1.
//   - cauchy   — function, curve, points (z0 values), optional t0/t1.
//   - winding  — curve, points, optional t0/t1.
//   - grid     — function, optional x/y bounds and resolution.
//   - roots    — order, optional part (real|imag) and resolution.
type Job struct {
	Name       string    `yaml:"name" json:"name"`
	Kind       string    `yaml:"kind" json:"kind"`
	Function   string    `yaml:"function,omitempty" json:"function,omitempty"`
	Curve      CurveSpec `yaml:"curve,omitempty" json:"curve,omitempty"`
	T0         any       `yaml:"t0,omitempty" json:"t0,omitempty"`
	T1         any       `yaml:"t1,omitempty" json:"t1,omitempty"`
	Points     []any     `yaml:"points,omitempty" json:"points,omitempty"`
	X          []any     `yaml:"x,omitempty" json:"x,omitempty"`
	Y          []any     `yaml:"y,omitempty" json:"y,omitempty"`
	Resolution int       `yaml:"resolution,omitempty" json:"resolution,omitempty"`
	Order      int       `yaml:"order,omitempty" json:"order,omitempty"`
	Part       string    `yaml:"part,omitempty" json:"part,omitempty"`
}

// Load reads and parses a job file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML job file, rejecting unknown fields, and validates
// every job.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse job file: %w", err)
	}
	for i := range f.Jobs {
		if f.Jobs[i].Name == "" {
			f.Jobs[i].Name = fmt.Sprintf("job-%d", i+1)
		}
		if err := f.Jobs[i].Validate(); err != nil {
			return nil, fmt.Errorf("job %q: %w", f.Jobs[i].Name, err)
		}
	}
	if _, err := f.Defaults.Options(); err != nil {
		return nil, fmt.Errorf("defaults: %w", err)
	}

	return &f, nil
}

// Validate checks that the fields required by the job kind are present
// and parseable.
func (j Job) Validate() error {
	switch j.Kind {
	case KindIntegral, KindCauchy:
		if _, err := LookupFunction(j.Function); err != nil {
			return err
		}
		if _, _, err := j.curve(); err != nil {
			return err
		}
		if j.Kind == KindCauchy {
			_, err := j.points()

			return err
		}
	case KindWinding:
		if _, _, err := j.curve(); err != nil {
			return err
		}
		_, err := j.points()

		return err
	case KindGrid:
		if _, err := LookupFunction(j.Function); err != nil {
			return err
		}
		_, _, err := j.bounds()

		return err
	case KindRoots:
		if j.Order < 1 {
			return fmt.Errorf("roots order %d: %w", j.Order, ErrBadJob)
		}
		_, err := j.part()

		return err
	default:
		return fmt.Errorf("%q: %w", j.Kind, ErrUnknownKind)
	}

	return nil
}

// curve builds the curve and resolves t0/t1 against its defaults.
func (j Job) curve() (contour.Curve, [2]float64, error) {
	c, span, err := j.Curve.Build()
	if err != nil {
		return nil, span, err
	}
	if span[0], err = realOr(j.T0, span[0]); err != nil {
		return nil, span, fmt.Errorf("t0: %w", err)
	}
	if span[1], err = realOr(j.T1, span[1]); err != nil {
		return nil, span, fmt.Errorf("t1: %w", err)
	}

	return c, span, nil
}

// points parses the evaluation points; at least one is required.
func (j Job) points() ([]complex128, error) {
	if len(j.Points) == 0 {
		return nil, fmt.Errorf("%s needs points: %w", j.Kind, ErrBadJob)
	}
	zs := make([]complex128, len(j.Points))
	for i, p := range j.Points {
		z, err := ParseComplex(p)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		zs[i] = z
	}

	return zs, nil
}

// bounds parses the x and y ranges, defaulting to [-1, 1].
func (j Job) bounds() (grid.Bounds, grid.Bounds, error) {
	xb, err := parseBounds(j.X)
	if err != nil {
		return xb, xb, fmt.Errorf("x: %w", err)
	}
	yb, err := parseBounds(j.Y)
	if err != nil {
		return xb, yb, fmt.Errorf("y: %w", err)
	}

	return xb, yb, nil
}

// part maps "real"/"imag" (default real) onto grid.Part.
func (j Job) part() (grid.Part, error) {
	switch j.Part {
	case "", "real":
		return grid.Real, nil
	case "imag":
		return grid.Imag, nil
	default:
		return grid.Real, fmt.Errorf("part %q: %w", j.Part, ErrBadJob)
	}
}

// resolution returns the job resolution or the grid default.
func (j Job) resolution() int {
	if j.Resolution > 0 {
		return j.Resolution
	}

	return grid.DefaultResolution
}

// parseBounds reads a two-element [min, max] list.
func parseBounds(v []any) (grid.Bounds, error) {
	if v == nil {
		return grid.DefaultBounds, nil
	}
	if len(v) != 2 {
		return grid.Bounds{}, fmt.Errorf("want [min, max], got %d values: %w", len(v), ErrBadJob)
	}
	lo, err := ParseReal(v[0])
	if err != nil {
		return grid.Bounds{}, err
	}
	hi, err := ParseReal(v[1])
	if err != nil {
		return grid.Bounds{}, err
	}

	return grid.Bounds{Min: lo, Max: hi}, nil
}

// Options converts the defaults into contour options.
func (d Defaults) Options() ([]contour.Option, error) {
	var opts []contour.Option
	if d.AbsTol != nil {
		v, err := ParseReal(d.AbsTol)
		if err != nil || !(v > 0) || math.IsInf(v, 1) {
			return nil, fmt.Errorf("abs_tol %v: %w", d.AbsTol, ErrBadValue)
		}
		opts = append(opts, contour.WithAbsTol(v))
	}
	if d.RelTol != nil {
		v, err := ParseReal(d.RelTol)
		if err != nil || !(v > 0) || math.IsInf(v, 1) {
			return nil, fmt.Errorf("rel_tol %v: %w", d.RelTol, ErrBadValue)
		}
		opts = append(opts, contour.WithRelTol(v))
	}
	if d.MaxIntervals < 0 {
		return nil, fmt.Errorf("max_intervals %d: %w", d.MaxIntervals, ErrBadValue)
	}
	if d.MaxIntervals > 0 {
		opts = append(opts, contour.WithMaxIntervals(d.MaxIntervals))
	}
	if d.PoleTolerance != nil {
		v, err := ParseReal(d.PoleTolerance)
		if err != nil || !(v >= 0) || math.IsInf(v, 1) {
			return nil, fmt.Errorf("pole_tolerance %v: %w", d.PoleTolerance, ErrBadValue)
		}
		opts = append(opts, contour.WithPoleTolerance(v))
	}

	return opts, nil
}
