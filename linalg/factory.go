// SPDX-License-Identifier: MIT

// Package linalg - dispatch by runtime dimension.
//
// The generic constructors need N at compile time. When N is only known at
// run time (configuration, user input), these helpers pick the matching
// instantiation and return it behind the Square interface. The dynamic type is
// always one of Matrix2x2, Matrix3x3 or Matrix4x4, so callers may type-assert.

package linalg

import (
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Square is the dimension-erased view of a Matrix[D].
type Square interface {
	mat.Matrix
	fmt.Stringer

	// Dim returns the side length N.
	Dim() int

	// Get returns the cell at (row, col) or ErrIndexOutOfRange.
	Get(row, col int) (float64, error)

	// Values returns a fresh row-major copy of the N² cells.
	Values() []float64
}

var (
	_ Square = Matrix2x2{}
	_ Square = Matrix3x3{}
	_ Square = Matrix4x4{}
)

// Diag builds a dimension×dimension diagonal matrix.
// MAIN DESCRIPTION:
//   - dimension selects 2, 3 or 4.
//   - One scalar is broadcast to the whole diagonal; exactly dimension
//     scalars fill it in order.
//
// Errors:
//   - ErrUnsupportedDimension for a dimension outside {2, 3, 4}.
//   - ErrInvalidArgumentCount for a scalar count other than 1 or dimension.
func Diag(dimension int, d ...float64) (Square, error) {
	switch dimension {
	case 2:
		return asSquare[D2](DiagOf[D2](d...))
	case 3:
		return asSquare[D3](DiagOf[D3](d...))
	case 4:
		return asSquare[D4](DiagOf[D4](d...))
	default:
		return nil, opErrorf(opDiag, strconv.Itoa(dimension), ErrUnsupportedDimension)
	}
}

// NewSquare builds a dimension×dimension matrix from row-major values.
// Errors:
//   - ErrUnsupportedDimension for a dimension outside {2, 3, 4}.
//   - ErrInvalidArgumentCount when len(values) != dimension².
func NewSquare(dimension int, values ...float64) (Square, error) {
	switch dimension {
	case 2:
		return asSquare[D2](NewMatrix[D2](values...))
	case 3:
		return asSquare[D3](NewMatrix[D3](values...))
	case 4:
		return asSquare[D4](NewMatrix[D4](values...))
	default:
		return nil, opErrorf(opNewSquare, strconv.Itoa(dimension), ErrUnsupportedDimension)
	}
}

// IdentityOf returns the dimension×dimension identity matrix.
// Errors: ErrUnsupportedDimension for a dimension outside {2, 3, 4}.
func IdentityOf(dimension int) (Square, error) {
	switch dimension {
	case 2:
		return I2(), nil
	case 3:
		return I3(), nil
	case 4:
		return I4(), nil
	default:
		return nil, opErrorf(opIdentityOf, strconv.Itoa(dimension), ErrUnsupportedDimension)
	}
}

// asSquare erases the dimension of a constructor result. On error it returns a
// nil interface rather than a zero matrix.
func asSquare[D Dim](m Matrix[D], err error) (Square, error) {
	if err != nil {
		return nil, err
	}

	return m, nil
}
