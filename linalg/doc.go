// Package linalg offers fixed-size vectors and square matrices.
//
// The linalg package provides:
//
//   - Vector[D] with aliases Vector2, Vector3, Vector4: element-wise
//     arithmetic, dot and cross products, length and normalization.
//   - Matrix[D] with aliases Matrix2x2, Matrix3x3, Matrix4x4: row-major
//     storage, bounds-checked Get/Set, addition, scaling, products with
//     matrices and vectors.
//   - Factories: NewMatrix, FromHorizontalVectors, FromVerticalVectors,
//     DiagOf, Identity, and the runtime-dimension dispatchers Diag,
//     NewSquare and IdentityOf.
//   - gonum interop: every Matrix is a mat.Matrix and every Vector a
//     mat.Vector.
//
// The dimension is a type parameter (D2, D3 or D4). Values are small
// comparable structs; operations return new values and never mutate their
// operands. Errors are sentinels (ErrInvalidArgumentCount,
// ErrIndexOutOfRange, ErrUnsupportedDimension) matched with errors.Is.
//
// Normalizing a zero-length vector is not guarded and yields NaN components.
package linalg
