// Package smallmat is a small linear-algebra toolkit for fixed-size values:
// 2-, 3- and 4-component vectors and 2×2, 3×3 and 4×4 matrices.
//
// What is in the box?
//
//	• Vectors: add, subtract, negate, scale, dot, cross (3-D), length, normalize
//	• Matrices: add, scale, matrix×matrix, matrix×vector, transpose, get/set
//	• Factories: from row or column vectors, diagonal, identity, by dimension
//	• gonum interop: every value is a mat.Matrix / mat.Vector
//
// Why fixed size?
//
//   - Values, not pointers: a Matrix4x4 is a plain comparable struct, copied by
//     assignment, allocated on the stack, compared with ==
//   - One generic implementation serves every dimension; the size is a type
//     parameter (linalg.D2, linalg.D3, linalg.D4)
//   - Errors, not panics: bad counts and bad indices come back as sentinel errors
//
// Everything lives in one subpackage:
//
//	linalg/   - Vector[D], Matrix[D], factories, gonum adapters
//
// Quick example:
//
//	m, _ := linalg.NewMatrix[linalg.D2](1, 2, 3, 4)
//	v := m.MulVec(linalg.Vec2(1, 1)) // (3.000, 7.000)
//
//	go get github.com/katalvlaran/smallmat/linalg
package smallmat
