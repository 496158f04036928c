package rotate

// Copy returns a new grid holding g rotated by 90° clockwise; g is not modified.
// Every cell is written once: out[j][N-1-i] = g[i][j].
//
// It is the auxiliary-grid reference rotation that InPlace is checked against.
// The result never aliases g, so later writes to either grid are independent.
//
// Errors: ErrNilGrid, ErrNonSquare. Complexity: O(N²) time and space.
func Copy[T any](g [][]T) ([][]T, error) {
	if err := ValidateSquare(g); err != nil {
		return nil, err
	}

	n := len(g)
	out := make([][]T, n)
	for i := range out {
		out[i] = make([]T, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[j][n-1-i] = g[i][j]
		}
	}

	return out, nil
}
