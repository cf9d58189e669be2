// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Provide small, private element-wise kernels (ew*) over flat float64
//     slices, shared by Vector and Matrix so the tight loops exist once.
//
// Design:
//   - Callers slice their backing arrays to the active length (N or N*N)
//     before calling; slots past it must stay zero.
//   - dst may alias a or b.
//   - Fixed 0..n-1 loop order; no allocations.

package linalg

import "math"

// ewAdd computes dst[i] = a[i] + b[i].
func ewAdd(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// ewSub computes dst[i] = a[i] - b[i].
func ewSub(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// ewScale computes dst[i] = a[i] * f.
func ewScale(dst, a []float64, f float64) {
	for i := range dst {
		dst[i] = a[i] * f
	}
}

// ewDiv computes dst[i] = a[i] / d. A zero d yields ±Inf or NaN, unguarded.
func ewDiv(dst, a []float64, d float64) {
	for i := range dst {
		dst[i] = a[i] / d
	}
}

// ewFill sets every dst[i] to d.
func ewFill(dst []float64, d float64) {
	for i := range dst {
		dst[i] = d
	}
}

// ewDot returns sum(a[i] * b[i]) over len(a).
func ewDot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

// ewClose reports whether |a[i] - b[i]| <= eps for every i.
// Equal values (including equal infinities) are close; NaN never is.
func ewClose(a, b []float64, eps float64) bool {
	for i := range a {
		if a[i] != b[i] && !(math.Abs(a[i]-b[i]) <= eps) {
			return false
		}
	}

	return true
}
