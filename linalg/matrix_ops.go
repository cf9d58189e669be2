// SPDX-License-Identifier: MIT

// Package linalg - matrix factories and free-function forms of matrix arithmetic.

package linalg

import "strconv"

// AddMatrices returns a + b.
func AddMatrices[D Dim](a, b Matrix[D]) Matrix[D] { return a.Add(b) }

// ScaleMatrix returns m * d.
func ScaleMatrix[D Dim](m Matrix[D], d float64) Matrix[D] { return m.Scale(d) }

// MulMatrices returns the matrix product a × b.
func MulMatrices[D Dim](a, b Matrix[D]) Matrix[D] { return a.Mul(b) }

// MulVector returns m × v.
func MulVector[D Dim](m Matrix[D], v Vector[D]) Vector[D] { return m.MulVec(v) }

// FromHorizontalVectors builds a matrix whose rows are vs, in order.
// Errors: ErrInvalidArgumentCount unless exactly N vectors are given.
func FromHorizontalVectors[D Dim](vs ...Vector[D]) (Matrix[D], error) {
	n := sizeOf[D]()
	if len(vs) != n {
		return Matrix[D]{}, countErrorf(opFromRows, len(vs), strconv.Itoa(n))
	}
	var m Matrix[D]
	for i, v := range vs {
		copy(m.v[i*n:(i+1)*n], v.c[:n])
	}

	return m, nil
}

// FromVerticalVectors builds a matrix whose columns are vs, in order.
// Errors: ErrInvalidArgumentCount unless exactly N vectors are given.
func FromVerticalVectors[D Dim](vs ...Vector[D]) (Matrix[D], error) {
	n := sizeOf[D]()
	if len(vs) != n {
		return Matrix[D]{}, countErrorf(opFromCols, len(vs), strconv.Itoa(n))
	}
	var m Matrix[D]
	for j, v := range vs {
		for i := 0; i < n; i++ {
			m.v[i*n+j] = v.c[i]
		}
	}

	return m, nil
}

// DiagOf builds a diagonal Matrix[D].
// MAIN DESCRIPTION:
//   - One scalar is broadcast to every diagonal cell.
//   - N scalars fill the diagonal in order.
//   - Off-diagonal cells are zero.
//
// Errors:
//   - ErrInvalidArgumentCount for any count other than 1 or N.
func DiagOf[D Dim](d ...float64) (Matrix[D], error) {
	n := sizeOf[D]()
	var m Matrix[D]
	switch len(d) {
	case 1:
		for i := 0; i < n; i++ {
			m.v[i*n+i] = d[0]
		}
	case n:
		for i := 0; i < n; i++ {
			m.v[i*n+i] = d[i]
		}
	default:
		return Matrix[D]{}, countErrorf(opDiagOf, len(d), "1 or "+strconv.Itoa(n))
	}

	return m, nil
}

// Identity returns the N×N identity matrix. Each call returns a fresh value.
func Identity[D Dim]() Matrix[D] {
	m, _ := DiagOf[D](1) // one scalar is always a valid count

	return m
}

// I2 returns the 2×2 identity matrix.
func I2() Matrix2x2 { return Identity[D2]() }

// I3 returns the 3×3 identity matrix.
func I3() Matrix3x3 { return Identity[D3]() }

// I4 returns the 4×4 identity matrix.
func I4() Matrix4x4 { return Identity[D4]() }
