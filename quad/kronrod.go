// SPDX-License-Identifier: MIT

package quad

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Kronrod abscissae on [-1, 1] (non-negative half, descending).
// Odd indices are the 7-point Gauss nodes; index 7 is the midpoint.
var xgk = [8]float64{
	0.991455371120812639206854697526329,
	0.949107912342758524526189684047851,
	0.864864423359769072789712788640926,
	0.741531185599394439863864773280788,
	0.586087235467691130294144845693013,
	0.405845151377397166906606412076961,
	0.207784955007898467600689403773245,
	0.000000000000000000000000000000000,
}

// 15-point Kronrod weights matching xgk.
var wgk = [8]float64{
	0.022935322010529224963732008058970,
	0.063092092629978553290700663189204,
	0.104790010322250183839876322541518,
	0.140653259715525918745189590510238,
	0.169004726639267902826583426598550,
	0.190350578064785409913256402421014,
	0.204432940075298892414161999234649,
	0.209482141084727828012999174891714,
}

// 7-point Gauss weights for xgk[1], xgk[3], xgk[5], xgk[7].
var wg = [4]float64{
	0.129484966168869693270611432679082,
	0.279705391489276667901467771423780,
	0.381830050505118944950369775488975,
	0.417959183673469387755102040816327,
}

// segment is one cell of the adaptive partition.
type segment struct {
	a, b  float64
	value complex128
	err   float64
}

// kronrod15 applies the G7/K15 pair on [a, b]. b < a is allowed; the
// half-width is then negative and the sums change sign accordingly.
// Complexity: 15 integrand calls.
func kronrod15(fn Integrand, a, b float64) (segment, error) {
	center := 0.5 * (a + b)
	half := 0.5 * (b - a)

	fc, err := call(fn, center)
	if err != nil {
		return segment{}, err
	}
	resK := fc * complex(wgk[7], 0)
	resG := fc * complex(wg[3], 0)

	for j := 0; j < 7; j++ {
		dx := half * xgk[j]
		f1, err := call(fn, center-dx)
		if err != nil {
			return segment{}, err
		}
		f2, err := call(fn, center+dx)
		if err != nil {
			return segment{}, err
		}
		sum := f1 + f2
		resK += sum * complex(wgk[j], 0)
		if j%2 == 1 {
			resG += sum * complex(wg[j/2], 0)
		}
	}

	h := complex(half, 0)
	resK *= h
	resG *= h

	return segment{a: a, b: b, value: resK, err: cmplx.Abs(resK - resG)}, nil
}

// call evaluates fn at t, wrapping failures with the parameter value.
func call(fn Integrand, t float64) (complex128, error) {
	v, err := fn(t)
	if err != nil {
		return 0, fmt.Errorf("quad: t=%g: %w", t, err)
	}
	if cmplx.IsNaN(v) || cmplx.IsInf(v) {
		return 0, fmt.Errorf("t=%g: %w", t, ErrNonFinite)
	}

	return v, nil
}

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
