package contour_test

import (
	"math"
	"sync"
	"testing"

	"github.com/afcarl/numerical-computing/contour"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentEvaluator shares one Evaluator across goroutines; every
// call must see the same result as a sequential one.
func TestConcurrentEvaluator(t *testing.T) {
	eval := contour.CauchyFormula(quadratic, contour.Circle(0, 1), 0, 2*math.Pi)
	points := []complex128{0, 0.5, -0.25i, 0.3 + 0.3i}

	want := make([]complex128, len(points))
	for i, z0 := range points {
		v, err := eval(z0)
		require.NoError(t, err)
		want[i] = v
	}

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers*len(points))
	got := make([][]complex128, workers)
	for w := 0; w < workers; w++ {
		got[w] = make([]complex128, len(points))
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i, z0 := range points {
				v, err := eval(z0)
				if err != nil {
					errs <- err

					return
				}
				got[w][i] = v
			}
		}(w)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent evaluation failed: %v", err)
	}
	for w := range got {
		assert.Equal(t, want, got[w], "worker %d", w)
	}
}
