// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the rotation kernels.
//   • Keep all data finite to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/rotmat/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the At/Set fallback instead of the *Dense fast path.
type hide struct{ matrix.Matrix }

// mustDense builds a *Dense from a row literal or fails the test.
func mustDense(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		tb.Fatalf("NewDenseFrom: %v", err)
	}

	return m
}

// seqRows returns an n×n row literal filled row-major with 1..n².
func seqRows(n int) [][]float64 {
	out := make([][]float64, n)
	v := 1.0
	for i := range out {
		out[i] = make([]float64, n)
		for j := range out[i] {
			out[i][j] = v
			v++
		}
	}

	return out
}

// toRows reads any Matrix into a row literal via At.
func toRows(tb testing.TB, m matrix.Matrix) [][]float64 {
	tb.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			if err != nil {
				tb.Fatalf("At(%d,%d): %v", i, j, err)
			}
			out[i][j] = v
		}
	}

	return out
}
