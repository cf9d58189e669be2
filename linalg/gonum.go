// SPDX-License-Identifier: MIT

// Package linalg - gonum interoperability.
//
// Matrix[D] satisfies mat.Matrix and Vector[D] satisfies mat.Vector, so both
// can be passed straight into gonum routines (products, norms, solvers).
// The gonum contract requires At to panic on a bad index; those paths panic
// with gonum's own error values, exactly as gonum's types do. The rest of this
// package reports bad indices through errors.

package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Compile-time assertions for gonum conformance.
var (
	_ mat.Matrix = Matrix2x2{}
	_ mat.Matrix = Matrix3x3{}
	_ mat.Matrix = Matrix4x4{}
	_ mat.Vector = Vector2{}
	_ mat.Vector = Vector3{}
	_ mat.Vector = Vector4{}
)

// Dims returns (N, N).
func (m Matrix[D]) Dims() (r, c int) {
	n := m.Dim()
	return n, n
}

// At returns the cell at (i, j). It panics with mat.ErrIndexOutOfRange when
// either index is out of range; use Get for an error-returning accessor.
func (m Matrix[D]) At(i, j int) float64 {
	off, err := m.indexOf(i, j)
	if err != nil {
		panic(mat.ErrIndexOutOfRange)
	}

	return m.v[off]
}

// T returns the implicit transpose of m.
func (m Matrix[D]) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// Dense copies m into a new *mat.Dense.
func (m Matrix[D]) Dense() *mat.Dense {
	n := m.Dim()
	return mat.NewDense(n, n, m.Values())
}

// MatrixFrom copies an N×N gonum matrix into a Matrix[D].
// Errors: ErrInvalidArgumentCount when a is not N×N.
func MatrixFrom[D Dim](a mat.Matrix) (Matrix[D], error) {
	n := sizeOf[D]()
	r, c := a.Dims()
	if r != n || c != n {
		return Matrix[D]{}, opErrorf(opMatrixFrom, fmt.Sprintf("got %d×%d, want %d×%d", r, c, n, n), ErrInvalidArgumentCount)
	}
	var m Matrix[D]
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.v[i*n+j] = a.At(i, j)
		}
	}

	return m, nil
}

// Dims returns (N, 1): a vector is a single column.
func (v Vector[D]) Dims() (r, c int) { return v.Dim(), 1 }

// At returns component i; j must be 0. It panics with mat.ErrIndexOutOfRange
// otherwise.
func (v Vector[D]) At(i, j int) float64 {
	if j != 0 || i < 0 || i >= v.Dim() {
		panic(mat.ErrIndexOutOfRange)
	}

	return v.c[i]
}

// AtVec returns component i. It panics with mat.ErrVectorAccess when i is out
// of range; use Component for an error-returning accessor.
func (v Vector[D]) AtVec(i int) float64 {
	if i < 0 || i >= v.Dim() {
		panic(mat.ErrVectorAccess)
	}

	return v.c[i]
}

// Len returns N.
func (v Vector[D]) Len() int { return v.Dim() }

// T returns the implicit transpose of v, a 1×N row.
func (v Vector[D]) T() mat.Matrix { return mat.TransposeVec{Vector: v} }

// VecDense copies v into a new *mat.VecDense.
func (v Vector[D]) VecDense() *mat.VecDense {
	return mat.NewVecDense(v.Dim(), v.Components())
}

// VectorFrom copies a gonum vector of length N into a Vector[D].
// Errors: ErrInvalidArgumentCount when a.Len() != N.
func VectorFrom[D Dim](a mat.Vector) (Vector[D], error) {
	n := sizeOf[D]()
	if a.Len() != n {
		return Vector[D]{}, countErrorf(opVectorFrom, a.Len(), fmt.Sprint(n))
	}
	var v Vector[D]
	for i := 0; i < n; i++ {
		v.c[i] = a.AtVec(i)
	}

	return v, nil
}
