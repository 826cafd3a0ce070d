// Package lab runs complex-analysis lab exercises described in YAML job
// files: contour integrals, Cauchy-formula evaluations, winding numbers,
// grid samplings and n-th root Riemann sheets.
//
// A job file names functions and curves from a fixed catalogue (see
// Functions and CurveSpec) and lists jobs:
//
//	defaults:
//	  abs_tol: 1e-10
//	jobs:
//	  - name: conj around the unit circle
//	    kind: integral
//	    function: conj
//	    curve: {type: circle, center: 0, radius: 1}
//	    t0: 0
//	    t1: 2pi
//	  - kind: cauchy
//	    function: z^2+1
//	    curve: {type: circle, radius: 1}
//	    points: [0.5, "0.2+0.1i"]
//
// Numeric fields accept plain numbers and multiples of pi ("2pi",
// "-pi/2", "3*pi/4"); complex fields also accept "a+bi".
package lab
