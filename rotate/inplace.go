// SPDX-License-Identifier: MIT

// Package rotate - in-place layer walk.
//
// Purpose:
//   - Rotate a square grid by 90° without a second grid.
//   - Decompose the rotation into disjoint 4-cycles, one per leading-edge cell
//     of every layer, and permute each cycle with one temporary slot.
//
// Index arithmetic (N = grid size, k = layer, n = N-2k = layer side):
//   - Clockwise:         (r, c) -> (c, n-1-r+2k)      i.e. (c, N-1-r)
//   - Counter-clockwise: (r, c) -> (n-1-c+2k, r)      i.e. (N-1-c, r)
//   - Leading edge of layer k: row k, columns [k, k+n-1). The last column is
//     the corner picked up by the next edge, so it is excluded.
//
// Complexity quicksheet:
//   - InPlace/CounterClockwise: O(N²) time, O(1) space; N²-(N mod 2) cells move, each once.

package rotate

// InPlace rotates the square grid g by 90° clockwise, mutating g.
// MAIN DESCRIPTION:
//   - The cell at (i, j) moves to (j, N-1-i). The same slice header is returned
//     so the call can be chained.
//
// Implementation:
//   - Stage 1: ValidateSquare (nil and shape) before any write.
//   - Stage 2: for layer k = 0.. while side n = N-2k > 1, start one 4-cycle at
//     every (k, col) with k <= col < k+n-1.
//   - Stage 3: each cycle carries the saved value forward four times and closes.
//
// Behavior highlights:
//   - N = 0 and N = 1 perform no writes.
//   - Odd N leaves the centre cell untouched (a fixed point of the rotation).
//   - A rejected grid is never partially rotated.
//
// Errors:
//   - ErrNilGrid, ErrNonSquare (wrapped by ValidateSquare).
//
// Complexity:
//   - Time O(N²), Space O(1).
func InPlace[T any](g [][]T) ([][]T, error) {
	if err := ValidateSquare(g); err != nil {
		return g, err
	}
	walkLayers(g, cycleClockwise[T])

	return g, nil
}

// CounterClockwise rotates the square grid g by 90° counter-clockwise, mutating g.
// The cell at (i, j) moves to (N-1-j, i). It undoes InPlace exactly.
//
// Errors: ErrNilGrid, ErrNonSquare. Complexity: O(N²) time, O(1) space.
func CounterClockwise[T any](g [][]T) ([][]T, error) {
	if err := ValidateSquare(g); err != nil {
		return g, err
	}
	walkLayers(g, cycleCounterClockwise[T])

	return g, nil
}

// walkLayers visits every 4-cycle start of an already validated grid and hands
// it to cycle together with the layer index and the layer side.
func walkLayers[T any](g [][]T, cycle func(g [][]T, layer, col, side int)) {
	var layer, side, col int
	for layer, side = 0, len(g); side > 1; layer, side = layer+1, side-2 {
		for col = layer; col < layer+side-1; col++ {
			cycle(g, layer, col, side)
		}
	}
}

// cycleClockwise permutes the 4-cycle starting at (layer, col) one step clockwise.
// After four moves the value saved from the start cell lands in its rotated slot.
func cycleClockwise[T any](g [][]T, layer, col, side int) {
	r, c := layer, col
	carry := g[r][c]
	for step := 0; step < 4; step++ {
		r, c = c, side-1-r+2*layer
		carry, g[r][c] = g[r][c], carry
	}
}

// cycleCounterClockwise is cycleClockwise with the destination formula inverted.
func cycleCounterClockwise[T any](g [][]T, layer, col, side int) {
	r, c := layer, col
	carry := g[r][c]
	for step := 0; step < 4; step++ {
		r, c = side-1-c+2*layer, r
		carry, g[r][c] = g[r][c], carry
	}
}

// Cycle returns the four positions of the clockwise 4-cycle that starts at
// (layer, col) of a size×size grid, in visiting order: the start cell first,
// then each cell its value is carried into.
//
// Valid starts are layer in [0, Layers(size)) with a side of at least 2, and
// col in [layer, size-1-layer). Anything else returns ErrOutOfRange.
//
// Complexity: O(1).
func Cycle(size, layer, col int) ([4]Pos, error) {
	var out [4]Pos
	side := size - 2*layer
	if layer < 0 || side < 2 || col < layer || col >= layer+side-1 {
		return out, validatorErrorf("Cycle", ErrOutOfRange)
	}

	r, c := layer, col
	out[0] = Pos{Row: r, Col: c}
	for step := 1; step < 4; step++ {
		r, c = c, side-1-r+2*layer
		out[step] = Pos{Row: r, Col: c}
	}

	return out, nil
}
