// SPDX-License-Identifier: MIT

package lab

// demoJobs reproduces the lab's worked examples: z̄ and e^z integrated
// from 0 to 1+i along different paths and once around the unit circle,
// a Cauchy-formula check, the z⁴ + 1 surface and the fifth-root sheets.
const demoJobs = `
jobs:
  - name: conj, unit circle
    kind: integral
    function: conj
    curve: {type: unit-circle}
  - name: conj, diagonal to 1+i
    kind: integral
    function: conj
    curve: {type: diagonal}
  - name: conj, real axis to 1
    kind: integral
    function: conj
    curve: {type: real-axis}
  - name: conj, 1 up to 1+i
    kind: integral
    function: conj
    curve: {type: vertical}
  - name: conj, arc about i to 1+i
    kind: integral
    function: conj
    curve: {type: shifted-circle}
  - name: exp, unit circle
    kind: integral
    function: exp
    curve: {type: unit-circle}
  - name: exp, diagonal to 1+i
    kind: integral
    function: exp
    curve: {type: diagonal}
  - name: exp, real axis then up
    kind: integral
    function: exp
    curve: {type: polyline, points: [0, 1, "1+1i"]}
  - name: exp, arc about i to 1+i
    kind: integral
    function: exp
    curve: {type: shifted-circle}
  - name: cauchy z^2+1
    kind: cauchy
    function: z^2+1
    curve: {type: circle, radius: 1}
    points: [0.5, "0.2+0.3i", 1]
  - name: winding
    kind: winding
    curve: {type: circle, radius: 1}
    t1: 4pi
    points: [0, 2]
  - name: z^4+1 surface
    kind: grid
    function: z^4+1
    resolution: 101
  - name: fifth root
    kind: roots
    order: 5
    resolution: 101
`

// Demo returns the built-in demonstration job file.
func Demo() *File {
	f, err := Parse([]byte(demoJobs))
	if err != nil {
		panic("lab: demo job file is invalid: " + err.Error())
	}

	return f
}
