// SPDX-License-Identifier: MIT

// Package linalg - free-function forms of the vector operations, the 3-D cross
// product, basis vectors and row/column extraction.
//
// The static forms mirror the methods one-to-one; they exist so call sites can
// read as AddVectors(a, b) where that is clearer than a.Plus(b).

package linalg

import "strconv"

// AddVectors returns a + b.
func AddVectors[D Dim](a, b Vector[D]) Vector[D] { return a.Plus(b) }

// SubVectors returns a - b.
func SubVectors[D Dim](a, b Vector[D]) Vector[D] { return a.Minus(b) }

// Negate returns -v.
func Negate[D Dim](v Vector[D]) Vector[D] { return v.Negative() }

// ScaleVector returns v * factor.
func ScaleVector[D Dim](v Vector[D], factor float64) Vector[D] { return v.Scale(factor) }

// Dot returns the dot product of a and b.
func Dot[D Dim](a, b Vector[D]) float64 { return a.Dot(b) }

// Normalized returns v divided by its length; see Vector.Normalize for the
// zero-length case.
func Normalized[D Dim](v Vector[D]) Vector[D] { return v.Normalize() }

// Cross returns the cross product a × b. Only defined in three dimensions.
func Cross(a, b Vector3) Vector3 {
	return Vec3(
		a.c[1]*b.c[2]-a.c[2]*b.c[1],
		a.c[2]*b.c[0]-a.c[0]*b.c[2],
		a.c[0]*b.c[1]-a.c[1]*b.c[0],
	)
}

// Extend returns the four-component vector (v.x, v.y, v.z, w).
func Extend(v Vector3, w float64) Vector4 {
	return Vec4(v.c[0], v.c[1], v.c[2], w)
}

// Basis returns the unit vector along axis (0 = x, 1 = y, ...).
// Returns ErrIndexOutOfRange when axis is outside [0, N-1].
func Basis[D Dim](axis int) (Vector[D], error) {
	var v Vector[D]
	if axis < 0 || axis >= v.Dim() {
		return v, opErrorf(opBasis, strconv.Itoa(axis), ErrIndexOutOfRange)
	}
	v.c[axis] = 1

	return v, nil
}

// Basis vectors. Each call returns a fresh value, so callers cannot alter the
// shared definition.

// X2 returns (1, 0).
func X2() Vector2 { return Vec2(1, 0) }

// Y2 returns (0, 1).
func Y2() Vector2 { return Vec2(0, 1) }

// X3 returns (1, 0, 0).
func X3() Vector3 { return Vec3(1, 0, 0) }

// Y3 returns (0, 1, 0).
func Y3() Vector3 { return Vec3(0, 1, 0) }

// Z3 returns (0, 0, 1).
func Z3() Vector3 { return Vec3(0, 0, 1) }

// X4 returns (1, 0, 0, 0).
func X4() Vector4 { return Vec4(1, 0, 0, 0) }

// Y4 returns (0, 1, 0, 0).
func Y4() Vector4 { return Vec4(0, 1, 0, 0) }

// Z4 returns (0, 0, 1, 0).
func Z4() Vector4 { return Vec4(0, 0, 1, 0) }

// W4 returns (0, 0, 0, 1).
func W4() Vector4 { return Vec4(0, 0, 0, 1) }

// HorizontalVectors returns the N rows of m, top to bottom.
func HorizontalVectors[D Dim](m Matrix[D]) []Vector[D] {
	n := m.Dim()
	out := make([]Vector[D], n)
	for i := 0; i < n; i++ {
		copy(out[i].c[:n], m.v[i*n:(i+1)*n])
	}

	return out
}

// VerticalVectors returns the N columns of m, left to right.
func VerticalVectors[D Dim](m Matrix[D]) []Vector[D] {
	n := m.Dim()
	out := make([]Vector[D], n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			out[j].c[i] = m.v[i*n+j]
		}
	}

	return out
}
