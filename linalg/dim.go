// SPDX-License-Identifier: MIT

// Package linalg - dimension tags.
//
// Purpose:
//   - Parameterize Vector and Matrix by their size at compile time, so one
//     implementation serves 2, 3 and 4 dimensions.
//   - Keep the tags zero-sized: they carry no data, only Size().
//
// Storage for every dimension is sized for the largest one (maxDim); slots past
// Size() are never written and always hold zero, which keeps values comparable
// with == regardless of dimension.

package linalg

// maxDim is the largest supported dimension; it sizes the backing arrays.
const maxDim = 4

// Dim is satisfied by the dimension tags D2, D3 and D4 only.
type Dim interface {
	D2 | D3 | D4
	Size() int
}

// D2 tags two-component vectors and 2×2 matrices.
type D2 struct{}

// D3 tags three-component vectors and 3×3 matrices.
type D3 struct{}

// D4 tags four-component vectors and 4×4 matrices.
type D4 struct{}

// Size returns 2.
func (D2) Size() int { return 2 }

// Size returns 3.
func (D3) Size() int { return 3 }

// Size returns 4.
func (D4) Size() int { return 4 }

// sizeOf returns the dimension carried by D.
func sizeOf[D Dim]() int {
	var d D
	return d.Size()
}
