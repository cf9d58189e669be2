// SPDX-License-Identifier: MIT

// Package linalg - fixed-size square matrices.
//
// Purpose:
//   - Row-major N×N storage with the explicit index formula row*N + col.
//   - Safe accessors: Get/Set/Row/Col return errors instead of panicking.
//   - Value semantics: arithmetic returns a new Matrix; operands are untouched.
//     Set writes only into the receiver, which is the caller's own copy.
//
// Complexity quicksheet:
//   - Get/Set: O(1); Add/Scale/Transpose: O(N²); Mul: O(N³); MulVec: O(N²).

package linalg

import (
	"strconv"
)

// Matrix is an N×N float64 grid in row-major order, N given by D.
// The zero value is the zero matrix.
type Matrix[D Dim] struct {
	v [maxDim * maxDim]float64 // row-major cells; v[N*N:] is always zero
}

// Matrix2x2 is a 2×2 matrix.
type Matrix2x2 = Matrix[D2]

// Matrix3x3 is a 3×3 matrix.
type Matrix3x3 = Matrix[D3]

// Matrix4x4 is a 4×4 matrix.
type Matrix4x4 = Matrix[D4]

// NewMatrix builds a Matrix[D] from exactly N² values given row by row.
// MAIN DESCRIPTION:
//   - Strict count validation before any write; a failure returns the zero
//     matrix, never a partially filled one.
//
// Errors:
//   - ErrInvalidArgumentCount when len(values) != N².
//
// Complexity:
//   - Time O(N²), no heap allocation.
func NewMatrix[D Dim](values ...float64) (Matrix[D], error) {
	n := sizeOf[D]()
	if len(values) != n*n {
		return Matrix[D]{}, countErrorf(opNewMatrix, len(values), strconv.Itoa(n*n))
	}
	var m Matrix[D]
	copy(m.v[:n*n], values)

	return m, nil
}

// FillMatrix returns a Matrix[D] with every cell set to d.
func FillMatrix[D Dim](d float64) Matrix[D] {
	var m Matrix[D]
	ewFill(m.v[:m.cells()], d)

	return m
}

// Dim returns the side length N.
func (m Matrix[D]) Dim() int { return sizeOf[D]() }

// cells returns N², the number of active cells.
func (m Matrix[D]) cells() int {
	n := m.Dim()
	return n * n
}

// indexOf bounds-checks (row, col) and returns the row-major offset.
// The error is the bare sentinel; public methods wrap it with context.
func (m Matrix[D]) indexOf(row, col int) (int, error) {
	n := m.Dim()
	if row < 0 || row >= n {
		return 0, ErrIndexOutOfRange
	}
	if col < 0 || col >= n {
		return 0, ErrIndexOutOfRange
	}

	// Row-major offset: i*N + j.
	return row*n + col, nil
}

// Get returns the cell at (row, col).
// Errors: ErrIndexOutOfRange when either index is outside [0, N-1].
func (m Matrix[D]) Get(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, indexErrorf(opGet, row, col)
	}

	return m.v[off], nil
}

// Set stores value at (row, col).
// Errors: ErrIndexOutOfRange when either index is outside [0, N-1]; the
// matrix is left unchanged in that case.
func (m *Matrix[D]) Set(row, col int, value float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return indexErrorf(opSet, row, col)
	}
	m.v[off] = value

	return nil
}

// Row returns row i as a vector.
func (m Matrix[D]) Row(i int) (Vector[D], error) {
	n := m.Dim()
	if i < 0 || i >= n {
		return Vector[D]{}, opErrorf(opRow, strconv.Itoa(i), ErrIndexOutOfRange)
	}
	var r Vector[D]
	copy(r.c[:n], m.v[i*n:(i+1)*n])

	return r, nil
}

// Col returns column j as a vector.
func (m Matrix[D]) Col(j int) (Vector[D], error) {
	n := m.Dim()
	if j < 0 || j >= n {
		return Vector[D]{}, opErrorf(opCol, strconv.Itoa(j), ErrIndexOutOfRange)
	}
	var c Vector[D]
	for i := 0; i < n; i++ {
		c.c[i] = m.v[i*n+j]
	}

	return c, nil
}

// Values returns a fresh row-major slice of the N² cells.
func (m Matrix[D]) Values() []float64 {
	out := make([]float64, m.cells())
	copy(out, m.v[:])

	return out
}

// Add returns the element-wise sum m + o.
func (m Matrix[D]) Add(o Matrix[D]) Matrix[D] {
	var out Matrix[D]
	ewAdd(out.v[:m.cells()], m.v[:], o.v[:])

	return out
}

// Scale returns m with every cell multiplied by d.
func (m Matrix[D]) Scale(d float64) Matrix[D] {
	var out Matrix[D]
	ewScale(out.v[:m.cells()], m.v[:], d)

	return out
}

// Mul returns the matrix product m × o.
// Implementation:
//   - Stage 1: extract the rows of m and the columns of o.
//   - Stage 2: cell (i,j) is rows[i] · cols[j].
//
// Complexity: O(N³) time, O(N) temporary vectors.
func (m Matrix[D]) Mul(o Matrix[D]) Matrix[D] {
	n := m.Dim()
	rows := HorizontalVectors(m)
	cols := VerticalVectors(o)

	var out Matrix[D]
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			out.v[i*n+j] = rows[i].Dot(cols[j])
		}
	}

	return out
}

// MulVec returns m × v, treating v as a column: component i is row i · v.
func (m Matrix[D]) MulVec(v Vector[D]) Vector[D] {
	var out Vector[D]
	for i, row := range HorizontalVectors(m) {
		out.c[i] = row.Dot(v)
	}

	return out
}

// Transpose returns m with rows and columns swapped.
func (m Matrix[D]) Transpose() Matrix[D] {
	n := m.Dim()
	var out Matrix[D]
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.v[j*n+i] = m.v[i*n+j]
		}
	}

	return out
}

// ApproxEqual reports whether every cell of m is within the configured
// tolerance (DefaultEpsilon unless WithEpsilon is given) of the one in o.
func (m Matrix[D]) ApproxEqual(o Matrix[D], opts ...Option) bool {
	cfg := gatherOptions(opts...)
	k := m.cells()

	return ewClose(m.v[:k], o.v[:k], cfg.eps)
}
