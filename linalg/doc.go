// Package linalg provides dense, exact-rational vectors and matrices with
// strided, storage-sharing views, plus Gauss-Jordan row reduction.
//
// Vector is a storage-and-view concept, not a container: a view shares
// backing storage with the matrix or vector it was taken from, and a
// mutation through one view is visible through every other view of the
// same cells. Index i of a view maps to storage[offset + i*stride] — see
// Vector.Get/Set. Copy-constructing a view (Vector.Clone) produces a
// fresh, contiguous, independently-owned vector.
//
// Matrix is a column-major dense grid backed by one flat storage slice
// of length width*height. Column, Row, and Diagonal return Vector views
// over that storage with strides 1, height, and height+1 respectively.
//
//   - Construction: NewMatrix, NewVector, Identity, VectorFromSlice
//   - Views: Matrix.Column, Matrix.Row, Matrix.Diagonal
//   - Algebra: Mul, Transpose, Inverse, Determinant
//   - AugmentedMatrix: broadcasts row operations across a main matrix and
//     any number of "other" matrices of equal height — used by Inverse
//     ([M | I]); the lll and simplex packages work on plain Matrix
//     values instead.
//
// AI-Hints:
//   - Never emulate a view by eagerly copying; the Gauss-Jordan, LLL, and
//     simplex kernels all rely on O(1) view construction and in-place
//     mutation visible through the owning Matrix.
package linalg
