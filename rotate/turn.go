// SPDX-License-Identifier: MIT

package rotate

// QuarterTurns normalises k quarter-turns into [0, 4).
// Negative k counts counter-clockwise turns: QuarterTurns(-1) == 3.
func QuarterTurns(k int) int {
	return ((k % 4) + 4) % 4
}

// Turn rotates the square grid g by k quarter-turns in place.
// Positive k turns clockwise, negative k counter-clockwise; k is reduced mod 4
// first, so Turn(g, 5) equals Turn(g, 1) and Turn(g, -1) equals Turn(g, 3).
//
// Implementation:
//   - 0: validation only.
//   - 1: InPlace.
//   - 2: one pass swapping (i, j) with (N-1-i, N-1-j) over the first half of the cells.
//   - 3: CounterClockwise.
//
// Errors: ErrNilGrid, ErrNonSquare. Complexity: O(N²) time, O(1) space.
func Turn[T any](g [][]T, k int) ([][]T, error) {
	if err := ValidateSquare(g); err != nil {
		return g, err
	}

	switch QuarterTurns(k) {
	case 1:
		walkLayers(g, cycleClockwise[T])
	case 2:
		halfTurn(g)
	case 3:
		walkLayers(g, cycleCounterClockwise[T])
	}

	return g, nil
}

// halfTurn rotates an already validated grid by 180°.
// Cells are addressed by their row-major index; the centre of an odd grid is
// its own mirror and is skipped by the n*n/2 bound.
func halfTurn[T any](g [][]T) {
	n := len(g)
	var idx, i, j int
	for idx = 0; idx < n*n/2; idx++ {
		i, j = idx/n, idx%n
		g[i][j], g[n-1-i][n-1-j] = g[n-1-i][n-1-j], g[i][j]
	}
}
