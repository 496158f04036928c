// Package matrix offers a row-major float64 matrix and quarter-turn rotations
// over it, including an adapter for gonum's *mat.Dense.
//
// The matrix package provides:
//
//   - Dense: flat row-major storage with bounds-checked At/Set that return
//     ErrOutOfRange instead of panicking, and an optional NaN/Inf guard.
//   - RotateInPlace / RotateTurns: the concentric-layer 4-cycle rotation run
//     directly on the flat buffer for *Dense, and through At/Set for any other
//     Matrix implementation.
//   - Rotated: the auxiliary-matrix rotation returning a fresh *Dense.
//   - RotateMat / FromMat / ToMat: the same rotation for gonum matrices and
//     conversions between the two representations.
//
// All entry points validate (non-nil, square) before the first write, so a
// rejected matrix is never left half-rotated.
//
// See the examples in this package and the rotate package for [][]T grids.
package matrix
