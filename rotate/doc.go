// Package rotate turns square grids by quarter-turns, in place or into a
// freshly allocated copy.
//
// 🚀 What is in-place rotation?
//
//	A 90° clockwise rotation sends the cell at (i, j) of an N×N grid to
//	(j, N-1-i). The in-place rotator realises that permutation without a
//	second grid: it walks the grid as concentric square layers and, inside
//	each layer, moves four cells at a time along a 4-cycle using a single
//	temporary slot.
//
//	  a · · b
//	  · e f ·      layer 0:  a → b → c → d → a
//	  · h g ·      layer 1:  e → f → g → h → e
//	  d · · c
//
// ✨ Key features:
//   - InPlace: clockwise, O(N²) time, O(1) extra space.
//   - CounterClockwise: the inverse walk, same bounds.
//   - Turn: any number of quarter-turns (negative = counter-clockwise).
//   - Copy: the auxiliary-grid reference rotation, input left untouched.
//   - Generic over the element type: [][]int, [][]string, [][]Pixel...
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rotmat/rotate"
//
//	g := [][]int{{1, 2}, {3, 4}}
//	if _, err := rotate.InPlace(g); err != nil {
//	  // handle ErrNilGrid or ErrNonSquare
//	}
//	// g is now [[3 1] [4 2]]
//
// Errors:
//
//   - ErrNilGrid: a nil grid was passed (an empty, non-nil grid is the valid 0×0 case).
//   - ErrNonSquare: some row length differs from the number of rows.
//   - ErrOutOfRange: Cycle was asked for a position outside the layer's leading edge.
//
// Shape is always validated before the first write, so a rejected grid is
// never left half-rotated.
//
// Performance:
//
//   - Time:   O(N²) for every operation
//   - Memory: O(1) for InPlace/CounterClockwise/Turn, O(N²) for Copy
package rotate
