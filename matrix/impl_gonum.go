// SPDX-License-Identifier: MIT

// Package matrix - gonum interop.
//
// Purpose:
//   - Rotate gonum *mat.Dense values in place with the same layer walk.
//   - Convert between *mat.Dense and *Dense without sharing storage.
//
// Notes:
//   - The zero value mat.Dense{} is gonum's empty 0×0 matrix; it rotates as a no-op.
//   - mat.NewDense refuses zero dimensions, so ToMat of an empty Dense returns &mat.Dense{}.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	opRotateMat = "RotateMat"
	opFromMat   = "FromMat"
)

// gonumMatrix adapts *mat.Dense to the Matrix interface with bounds-checked
// At/Set, so rotation kernels never trigger gonum's index panics.
type gonumMatrix struct {
	m *mat.Dense
}

var _ Matrix = gonumMatrix{}

// WrapMat exposes a gonum matrix through the Matrix interface.
// Writes through the wrapper land in m. A nil m yields a nil Matrix.
func WrapMat(m *mat.Dense) Matrix {
	if m == nil {
		return nil
	}

	return gonumMatrix{m: m}
}

func (g gonumMatrix) Rows() int {
	r, _ := g.m.Dims()

	return r
}

func (g gonumMatrix) Cols() int {
	_, c := g.m.Dims()

	return c
}

func (g gonumMatrix) inBounds(i, j int) bool {
	r, c := g.m.Dims()

	return i >= 0 && i < r && j >= 0 && j < c
}

func (g gonumMatrix) At(i, j int) (float64, error) {
	if !g.inBounds(i, j) {
		return 0, fmt.Errorf("mat.Dense.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return g.m.At(i, j), nil
}

func (g gonumMatrix) Set(i, j int, v float64) error {
	if !g.inBounds(i, j) {
		return fmt.Errorf("mat.Dense.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	g.m.Set(i, j, v)

	return nil
}

func (g gonumMatrix) Clone() Matrix {
	return gonumMatrix{m: mat.DenseCopyOf(g.m)}
}

// RotateMat rotates the square gonum matrix m by 90° clockwise in place.
// MAIN DESCRIPTION:
//   - Same contract as RotateInPlace, for callers already holding gonum data.
//
// Implementation:
//   - Stage 1: nil → ErrNilMatrix; Dims r != c → ErrNonSquare.
//   - Stage 2: walk rotate.Cycle 4-cycles through the bounds-checked adapter.
//
// Complexity:
//   - Time O(N²), Space O(1).
func RotateMat(m *mat.Dense) error {
	if m == nil {
		return matrixErrorf(opRotateMat, ErrNilMatrix)
	}
	g := gonumMatrix{m: m}
	if err := ValidateSquare(g); err != nil {
		return matrixErrorf(opRotateMat, err)
	}
	if err := rotateCells(g); err != nil {
		return matrixErrorf(opRotateMat, err)
	}

	return nil
}

// FromMat copies a gonum matrix into a new *Dense under the numeric policy in opts.
//
// Errors: ErrNilMatrix; ErrNaNInf (with coordinates) when the policy is on.
// Complexity: O(r*c).
func FromMat(m *mat.Dense, opts ...Option) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opFromMat, ErrNilMatrix)
	}
	o := gatherOptions(opts...)
	r, c := m.Dims()
	out, err := newDenseZeroOK(r, c, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opFromMat, err)
	}

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = m.At(i, j)
			if o.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, denseErrorf(opFromMat, i, j, ErrNaNInf)
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// ToMat copies the matrix into a new gonum *mat.Dense.
// Matrices with a zero dimension map to the empty &mat.Dense{}.
// Complexity: O(r*c).
func (m *Dense) ToMat() *mat.Dense {
	if m.r == 0 || m.c == 0 {
		return &mat.Dense{}
	}
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf)
}
