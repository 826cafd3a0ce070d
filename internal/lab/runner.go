// SPDX-License-Identifier: MIT

package lab

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/cmplx"
	"time"

	"github.com/afcarl/numerical-computing/contour"
	"github.com/afcarl/numerical-computing/grid"
	"github.com/google/uuid"
)

// Value is a JSON-friendly complex number.
type Value struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

// newValue splits z into its parts.
func newValue(z complex128) Value { return Value{Re: real(z), Im: imag(z)} }

// String formats the value like a Go complex literal.
func (v Value) String() string { return fmt.Sprintf("%.10g", complex(v.Re, v.Im)) }

// PointResult is the outcome at one evaluation point.
type PointResult struct {
	Z0     Value   `json:"z0"`
	Result Value   `json:"result"`
	Delta  float64 `json:"delta,omitempty"` // |result − f(z0)| for cauchy jobs
	Error  string  `json:"error,omitempty"`
}

// PlaneRange summarizes one sampled plane.
type PlaneRange struct {
	Name string  `json:"name"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// Outcome is the result of one job. A failed job carries Error and
// leaves the value fields empty (except a partial Value on
// non-convergence).
type Outcome struct {
	Name        string        `json:"name"`
	Kind        string        `json:"kind"`
	Value       *Value        `json:"value,omitempty"`
	AbsError    float64       `json:"abs_error,omitempty"`
	Evaluations int           `json:"evaluations,omitempty"`
	Intervals   int           `json:"intervals,omitempty"`
	Points      []PointResult `json:"points,omitempty"`
	Shape       [2]int        `json:"shape,omitempty"`
	Planes      []PlaneRange  `json:"planes,omitempty"`
	Error       string        `json:"error,omitempty"`
	Elapsed     time.Duration `json:"elapsed_ns"`
}

// Report is the result of running a job file.
type Report struct {
	RunID     string    `json:"run_id"`
	StartedAt time.Time `json:"started_at"`
	Outcomes  []Outcome `json:"outcomes"`
}

// Failed counts outcomes that carry an error, including per-point errors.
func (r *Report) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Error != "" {
			n++

			continue
		}
		for _, p := range o.Points {
			if p.Error != "" {
				n++

				break
			}
		}
	}

	return n
}

// Runner executes job files. It is stateless apart from its logger and
// safe for concurrent use.
type Runner struct {
	logger *slog.Logger
}

// NewRunner returns a Runner logging to logger (nil discards).
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Runner{logger: logger}
}

// Run executes every job in order. A failing job is recorded in its
// Outcome and does not stop the run; only context cancellation does.
func (r *Runner) Run(ctx context.Context, f *File) (*Report, error) {
	opts, err := f.Defaults.Options()
	if err != nil {
		return nil, err
	}
	opts = append(opts, contour.WithLogger(r.logger))

	rep := &Report{RunID: uuid.New().String(), StartedAt: time.Now().UTC()}
	logger := r.logger.With("run_id", rep.RunID)
	logger.Info("run started", "jobs", len(f.Jobs))

	for _, job := range f.Jobs {
		if err := ctx.Err(); err != nil {
			return rep, err
		}

		start := time.Now()
		out := r.runJob(job, opts)
		out.Elapsed = time.Since(start)
		rep.Outcomes = append(rep.Outcomes, out)

		if out.Error != "" {
			logger.Warn("job failed", "job", job.Name, "kind", job.Kind, "error", out.Error)
		} else {
			logger.Info("job finished", "job", job.Name, "kind", job.Kind, "elapsed", out.Elapsed)
		}
	}
	logger.Info("run finished", "failed", rep.Failed())

	return rep, nil
}

// runJob dispatches on the job kind.
func (r *Runner) runJob(job Job, opts []contour.Option) Outcome {
	out := Outcome{Name: job.Name, Kind: job.Kind}
	var err error
	switch job.Kind {
	case KindIntegral:
		err = runIntegral(job, opts, &out)
	case KindCauchy, KindWinding:
		err = runPoints(job, opts, &out)
	case KindGrid:
		err = runGrid(job, &out)
	case KindRoots:
		err = runRoots(job, &out)
	default:
		err = fmt.Errorf("%q: %w", job.Kind, ErrUnknownKind)
	}
	if err != nil {
		out.Error = err.Error()
	}

	return out
}

// runIntegral evaluates ∫ f dz along the job curve.
func runIntegral(job Job, opts []contour.Option, out *Outcome) error {
	f, err := LookupFunction(job.Function)
	if err != nil {
		return err
	}
	c, span, err := job.curve()
	if err != nil {
		return err
	}

	res, err := contour.Integrate(f, c, span[0], span[1], opts...)
	if err == nil || errors.Is(err, contour.ErrNoConvergence) {
		v := newValue(res.Value)
		out.Value = &v
		out.AbsError = res.AbsError
		out.Evaluations = res.Evaluations
		out.Intervals = res.Intervals
	}

	return err
}

// runPoints evaluates the Cauchy formula or the winding number at each
// point. Per-point failures (e.g. a pole on the contour) are recorded on
// the point.
func runPoints(job Job, opts []contour.Option, out *Outcome) error {
	c, span, err := job.curve()
	if err != nil {
		return err
	}
	zs, err := job.points()
	if err != nil {
		return err
	}

	f := Functions["one"]
	if job.Kind == KindCauchy {
		if f, err = LookupFunction(job.Function); err != nil {
			return err
		}
	}
	eval := contour.CauchyFormula(f, c, span[0], span[1], opts...)

	for _, z0 := range zs {
		pr := PointResult{Z0: newValue(z0)}
		v, err := eval(z0)
		if err != nil {
			pr.Error = err.Error()
		} else {
			pr.Result = newValue(v)
			if job.Kind == KindCauchy {
				pr.Delta = cmplx.Abs(v - f(z0))
			}
		}
		out.Points = append(out.Points, pr)
	}

	return nil
}

// runGrid samples the function and records per-plane ranges.
func runGrid(job Job, out *Outcome) error {
	f, err := LookupFunction(job.Function)
	if err != nil {
		return err
	}
	xb, yb, err := job.bounds()
	if err != nil {
		return err
	}

	s, err := grid.Evaluate(f, xb, yb, job.resolution())
	if err != nil {
		return err
	}
	out.Shape = [2]int{s.Re.Rows(), s.Re.Cols()}
	out.Planes = []PlaneRange{planeRange("real", s.Re), planeRange("imag", s.Im)}

	return nil
}

// runRoots samples the n-th root sheets.
func runRoots(job Job, out *Outcome) error {
	part, err := job.part()
	if err != nil {
		return err
	}

	sheets, err := grid.RootSheets(job.Order, job.resolution(), part)
	if err != nil {
		return err
	}
	out.Shape = [2]int{sheets.X.Rows(), sheets.X.Cols()}
	for k, v := range sheets.Values {
		out.Planes = append(out.Planes, planeRange(fmt.Sprintf("%s sheet %d", part, k), v))
	}

	return nil
}

// planeRange summarizes a plane; planes without finite samples report 0s.
func planeRange(name string, m interface {
	MinMax() (float64, float64, bool)
}) PlaneRange {
	lo, hi, _ := m.MinMax()

	return PlaneRange{Name: name, Min: lo, Max: hi}
}
