// SPDX-License-Identifier: MIT
// Package rotate_test contains shared fixtures.
//
// Purpose:
//   • Hand-checked clockwise rotations for sizes 0..7 (odd and even).
//   • Deterministic sequential grids for property checks.

package rotate_test

// rotationCase pairs an input grid with its 90° clockwise rotation.
type rotationCase struct {
	name string
	in   [][]int
	want [][]int
}

// clockwiseCases returns fresh copies on every call so tests may mutate them.
func clockwiseCases() []rotationCase {
	return []rotationCase{
		{
			name: "Empty",
			in:   [][]int{},
			want: [][]int{},
		},
		{
			name: "Single",
			in:   [][]int{{1}},
			want: [][]int{{1}},
		},
		{
			name: "TwoByTwo",
			in:   [][]int{{1, 2}, {3, 4}},
			want: [][]int{{3, 1}, {4, 2}},
		},
		{
			name: "ThreeByThree",
			in: [][]int{
				{1, 2, 3},
				{4, 5, 6},
				{7, 8, 9},
			},
			want: [][]int{
				{7, 4, 1},
				{8, 5, 2},
				{9, 6, 3},
			},
		},
		{
			name: "FourByFour",
			in: [][]int{
				{1, 2, 3, 4},
				{5, 6, 7, 8},
				{9, 10, 11, 12},
				{13, 14, 15, 16},
			},
			want: [][]int{
				{13, 9, 5, 1},
				{14, 10, 6, 2},
				{15, 11, 7, 3},
				{16, 12, 8, 4},
			},
		},
		{
			name: "FiveByFive",
			in: [][]int{
				{1, 2, 3, 4, 5},
				{6, 7, 8, 9, 10},
				{11, 12, 13, 14, 15},
				{16, 17, 18, 19, 20},
				{21, 22, 23, 24, 25},
			},
			want: [][]int{
				{21, 16, 11, 6, 1},
				{22, 17, 12, 7, 2},
				{23, 18, 13, 8, 3},
				{24, 19, 14, 9, 4},
				{25, 20, 15, 10, 5},
			},
		},
		{
			name: "SixBySix",
			in: [][]int{
				{1, 2, 3, 4, 5, 6},
				{7, 8, 9, 10, 11, 12},
				{13, 14, 15, 16, 17, 18},
				{19, 20, 21, 22, 23, 24},
				{25, 26, 27, 28, 29, 30},
				{31, 32, 33, 34, 35, 36},
			},
			want: [][]int{
				{31, 25, 19, 13, 7, 1},
				{32, 26, 20, 14, 8, 2},
				{33, 27, 21, 15, 9, 3},
				{34, 28, 22, 16, 10, 4},
				{35, 29, 23, 17, 11, 5},
				{36, 30, 24, 18, 12, 6},
			},
		},
		{
			name: "SevenBySeven",
			in: [][]int{
				{1, 2, 3, 4, 5, 6, 7},
				{8, 9, 10, 11, 12, 13, 14},
				{15, 16, 17, 18, 19, 20, 21},
				{22, 23, 24, 25, 26, 27, 28},
				{29, 30, 31, 32, 33, 34, 35},
				{36, 37, 38, 39, 40, 41, 42},
				{43, 44, 45, 46, 47, 48, 49},
			},
			want: [][]int{
				{43, 36, 29, 22, 15, 8, 1},
				{44, 37, 30, 23, 16, 9, 2},
				{45, 38, 31, 24, 17, 10, 3},
				{46, 39, 32, 25, 18, 11, 4},
				{47, 40, 33, 26, 19, 12, 5},
				{48, 41, 34, 27, 20, 13, 6},
				{49, 42, 35, 28, 21, 14, 7},
			},
		},
	}
}

// seqGrid builds an n×n grid filled row-major with 1..n².
func seqGrid(n int) [][]int {
	g := make([][]int, n)
	v := 1
	for i := range g {
		g[i] = make([]int, n)
		for j := range g[i] {
			g[i][j] = v
			v++
		}
	}

	return g
}

// cloneGrid deep-copies g so the original can be compared after mutation.
func cloneGrid[T any](g [][]T) [][]T {
	if g == nil {
		return nil
	}
	out := make([][]T, len(g))
	for i, row := range g {
		out[i] = make([]T, len(row))
		copy(out[i], row)
	}

	return out
}
