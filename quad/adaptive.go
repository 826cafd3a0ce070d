// SPDX-License-Identifier: MIT

package quad

import (
	"container/heap"
	"fmt"
	"math"
	"math/cmplx"
)

// Complex integrates fn over [a, b] by globally adaptive G7/K15 quadrature.
//
// Algorithm:
//  1. Apply the rule to [a, b].
//  2. While Σerr > max(AbsTol, RelTol·|ΣI|):
//     pop the cell with the largest error, bisect it, apply the rule to
//     both halves and push them back.
//  3. Re-sum the partition and return.
//
// Errors:
//   - ErrBadLimits      — a or b not finite.
//   - ErrNonFinite      — fn returned NaN/Inf (wrapped with t).
//   - ErrNoConvergence  — budget exhausted; the partial Result is returned.
//   - any error from fn, wrapped with t.
//
// Complexity: O(K·log K) for K intervals, 15·(2K−1) integrand calls.
func Complex(fn Integrand, a, b float64, opts Options) (Result, error) {
	if !isFinite(a) || !isFinite(b) {
		return Result{}, ErrBadLimits
	}
	opts = opts.normalize()

	first, err := kronrod15(fn, a, b)
	if err != nil {
		return Result{Evaluations: 15}, err
	}

	cells := &segmentHeap{first}
	evals := 15
	total, totalErr := first.value, first.err

	for totalErr > tolerance(opts, total) {
		if cells.Len() >= opts.MaxIntervals {
			res := summarize(*cells, evals)

			return res, fmt.Errorf("%d intervals, estimated error %.3g: %w",
				res.Intervals, res.AbsError, ErrNoConvergence)
		}

		worst := heap.Pop(cells).(segment)
		mid := 0.5 * (worst.a + worst.b)
		if mid == worst.a || mid == worst.b {
			// The cell cannot be split further in float64.
			heap.Push(cells, worst)
			res := summarize(*cells, evals)

			return res, fmt.Errorf("interval [%g, %g] collapsed: %w", worst.a, worst.b, ErrNoConvergence)
		}

		left, err := kronrod15(fn, worst.a, mid)
		evals += 15
		if err != nil {
			return Result{Evaluations: evals}, err
		}
		right, err := kronrod15(fn, mid, worst.b)
		evals += 15
		if err != nil {
			return Result{Evaluations: evals}, err
		}

		total += left.value + right.value - worst.value
		totalErr += left.err + right.err - worst.err
		heap.Push(cells, left)
		heap.Push(cells, right)
	}

	return summarize(*cells, evals), nil
}

// tolerance returns the stopping threshold for the running estimate.
func tolerance(opts Options, total complex128) float64 {
	return math.Max(opts.AbsTol, opts.RelTol*cmplx.Abs(total))
}

// summarize re-sums the partition to shed incremental round-off.
func summarize(cells []segment, evals int) Result {
	res := Result{Evaluations: evals, Intervals: len(cells)}
	for _, s := range cells {
		res.Value += s.value
		res.AbsError += s.err
	}

	return res
}

// segmentHeap is a max-heap of cells keyed by error estimate.
type segmentHeap []segment

func (h segmentHeap) Len() int           { return len(h) }
func (h segmentHeap) Less(i, j int) bool { return h[i].err > h[j].err }
func (h segmentHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *segmentHeap) Push(x any) { *h = append(*h, x.(segment)) }

func (h *segmentHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}
