// Package rotmat rotates square grids and matrices by quarter-turns, in place
// with O(1) extra space or into a fresh copy.
//
// 🚀 What is in rotmat?
//
//	rotate/      generic [][]T rotation (InPlace, CounterClockwise, Turn, Copy)
//	matrix/      row-major float64 Dense, flat-buffer rotation kernels, gonum interop
//	cmd/rotmat/  CLI that rotates a JSON grid read from a file or stdin
//
// ✨ Why in place?
//
//   - An N×N rotation is a permutation made of disjoint 4-cycles, one per
//     leading-edge cell of every concentric layer; each cycle needs only one
//     temporary slot.
//   - The auxiliary-grid rotation (Copy, Rotated) is kept as an independent
//     reference and is what the in-place kernels are tested against.
//
// Quick ASCII example (clockwise):
//
//	1 2 3      7 4 1
//	4 5 6  →   8 5 2
//	7 8 9      9 6 3
//
//	go get github.com/katalvlaran/rotmat
package rotmat
