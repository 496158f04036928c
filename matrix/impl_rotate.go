// SPDX-License-Identifier: MIT

// Package matrix - quarter-turn rotation kernels.
//
// Purpose:
//   - Rotate square matrices by 90° without a second buffer (RotateInPlace, RotateTurns).
//   - Provide the auxiliary-matrix rotation (Rotated) as an independent reference.
//
// Determinism & Policy:
//   - Fixed layer order (outer → inner), fixed column order inside a layer.
//   - Rotation only moves existing values; the numeric policy is never consulted on
//     the *Dense fast path and is carried over to the result of Rotated.
//
// AI-Hints:
//   - Pass *Dense to hit the flat-buffer fast path; any other Matrix walks the same
//     4-cycles (rotate.Cycle) through At/Set.
//   - A half-turn on *Dense is a single reversal of the row-major buffer.

package matrix

import "github.com/katalvlaran/rotmat/rotate"

// ---------- call-site tags ----------

const (
	opRotateInPlace = "RotateInPlace"
	opRotateTurns   = "RotateTurns"
	opRotated       = "Rotated"
)

// RotateInPlace rotates the square matrix m by 90° clockwise, mutating m.
// MAIN DESCRIPTION:
//   - Element (i, j) moves to (j, N-1-i); O(1) extra space.
//
// Implementation:
//   - Stage 1: ValidateNotNil → ValidateSquare.
//   - Stage 2 (*Dense): concentric-layer 4-cycles directly on the flat buffer.
//   - Stage 2 (other Matrix): the same cycles via At/Set.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare; At/Set errors of a foreign Matrix are propagated.
//
// Complexity:
//   - Time O(N²), Space O(1).
func RotateInPlace(m Matrix) error {
	if err := validateRotatable(m); err != nil {
		return matrixErrorf(opRotateInPlace, err)
	}
	if d, ok := m.(*Dense); ok {
		d.rotateFlat(1)

		return nil
	}
	if err := rotateCells(m); err != nil {
		return matrixErrorf(opRotateInPlace, err)
	}

	return nil
}

// RotateTurns rotates m in place by k quarter-turns (negative k = counter-clockwise).
// k is normalised with rotate.QuarterTurns; k ≡ 0 (mod 4) still validates m.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(N²) time, O(1) space.
func RotateTurns(m Matrix, k int) error {
	if err := validateRotatable(m); err != nil {
		return matrixErrorf(opRotateTurns, err)
	}
	q := rotate.QuarterTurns(k)
	if d, ok := m.(*Dense); ok {
		d.rotateFlat(q)

		return nil
	}
	for i := 0; i < q; i++ {
		if err := rotateCells(m); err != nil {
			return matrixErrorf(opRotateTurns, err)
		}
	}

	return nil
}

// Rotated returns a new *Dense holding m rotated by 90° clockwise; m is not modified.
// Every element is written once: out[j][N-1-i] = m[i][j].
// The result inherits the numeric policy of m when m is a *Dense.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(N²) time and space.
func Rotated(m Matrix) (*Dense, error) {
	if err := validateRotatable(m); err != nil {
		return nil, matrixErrorf(opRotated, err)
	}
	n := m.Rows()

	policy := DefaultValidateNaNInf
	src, isDense := m.(*Dense)
	if isDense {
		policy = src.validateNaNInf
	}
	out, err := newDenseZeroOK(n, n, policy)
	if err != nil {
		return nil, matrixErrorf(opRotated, err)
	}

	var i, j int
	if isDense {
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				out.data[j*n+(n-1-i)] = src.data[i*n+j]
			}
		}

		return out, nil
	}

	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opRotated, err)
			}
			out.data[j*n+(n-1-i)] = v
		}
	}

	return out, nil
}

// rotateFlat applies q ∈ [0,4) clockwise quarter-turns to a validated square Dense.
func (m *Dense) rotateFlat(q int) {
	switch q {
	case 1:
		m.walkLayers(true)
	case 2:
		// (i, j) → (N-1-i, N-1-j) is offset k → N²-1-k: reverse the buffer.
		for lo, hi := 0, len(m.data)-1; lo < hi; lo, hi = lo+1, hi-1 {
			m.data[lo], m.data[hi] = m.data[hi], m.data[lo]
		}
	case 3:
		m.walkLayers(false)
	}
}

// walkLayers permutes every 4-cycle of the flat buffer one step in the given direction.
// Layer k has side N-2k; its leading edge is row k, columns [k, N-1-k).
func (m *Dense) walkLayers(clockwise bool) {
	n := m.c
	var layer, side, col, r, c, off, step int
	var carry float64
	for layer, side = 0, n; side > 1; layer, side = layer+1, side-2 {
		for col = layer; col < layer+side-1; col++ {
			r, c = layer, col
			carry = m.data[r*n+c]
			for step = 0; step < 4; step++ {
				if clockwise {
					r, c = c, n-1-r
				} else {
					r, c = n-1-c, r
				}
				off = r*n + c
				carry, m.data[off] = m.data[off], carry
			}
		}
	}
}

// rotateCells rotates any validated square Matrix clockwise through At/Set,
// visiting the 4-cycles reported by rotate.Cycle.
func rotateCells(m Matrix) error {
	n := m.Rows()
	var (
		cyc      [4]rotate.Pos
		carry, v float64
		err      error
	)
	for layer := 0; layer < rotate.Layers(n); layer++ {
		for col := layer; col < n-1-layer; col++ {
			if cyc, err = rotate.Cycle(n, layer, col); err != nil {
				return err
			}
			if carry, err = m.At(cyc[0].Row, cyc[0].Col); err != nil {
				return err
			}
			for s := 1; s < 4; s++ {
				if v, err = m.At(cyc[s].Row, cyc[s].Col); err != nil {
					return err
				}
				if err = m.Set(cyc[s].Row, cyc[s].Col, carry); err != nil {
					return err
				}
				carry = v
			}
			if err = m.Set(cyc[0].Row, cyc[0].Col, carry); err != nil {
				return err
			}
		}
	}

	return nil
}
