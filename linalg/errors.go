// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// This file defines the package-level sentinel errors and the wrappers that add
// call-site context. Every error-returning operation returns one of these
// (possibly wrapped) and tests MUST check them via errors.Is. No operation on the error-returning
// surface panics on user input.

package linalg

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "linalg: ..." for consistency. Call sites wrap
// with opErrorf so the operation and its arguments appear in the message while
// errors.Is still matches the sentinel.

var (
	// ErrInvalidArgumentCount is returned when a variadic constructor or
	// factory receives a number of scalars or vectors that does not match the
	// target dimension.
	ErrInvalidArgumentCount = errors.New("linalg: invalid argument count")

	// ErrIndexOutOfRange indicates that a row, column, component or axis index
	// is outside [0, N-1].
	ErrIndexOutOfRange = errors.New("linalg: index out of range")

	// ErrUnsupportedDimension is returned by the dimension dispatchers (Diag,
	// NewSquare, IdentityOf) for any dimension other than 2, 3 or 4.
	ErrUnsupportedDimension = errors.New("linalg: unsupported dimension")
)

// Operation tags used in error wrappers.
const (
	opNewVector  = "NewVector"
	opComponent  = "Vector.Component"
	opBasis      = "Basis"
	opNewMatrix  = "NewMatrix"
	opGet        = "Matrix.Get"
	opSet        = "Matrix.Set"
	opRow        = "Matrix.Row"
	opCol        = "Matrix.Col"
	opFromRows   = "FromHorizontalVectors"
	opFromCols   = "FromVerticalVectors"
	opDiag       = "Diag"
	opNewSquare  = "NewSquare"
	opIdentityOf = "IdentityOf"
	opMatrixFrom = "MatrixFrom"
	opVectorFrom = "VectorFrom"
	opDiagOf     = "DiagOf"
)

// opErrorf wraps a sentinel with the operation tag and a formatted detail.
func opErrorf(op, detail string, err error) error {
	return fmt.Errorf("%s(%s): %w", op, detail, err)
}

// countErrorf reports a count mismatch: got n arguments where want were needed.
func countErrorf(op string, got int, want string) error {
	return opErrorf(op, fmt.Sprintf("got %d, want %s", got, want), ErrInvalidArgumentCount)
}

// indexErrorf reports an out-of-range (row, col) pair.
func indexErrorf(op string, row, col int) error {
	return opErrorf(op, fmt.Sprintf("%d,%d", row, col), ErrIndexOutOfRange)
}
