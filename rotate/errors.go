// SPDX-License-Identifier: MIT

package rotate

import "errors"

// Sentinel errors for rotate operations.
// Callers match them with errors.Is; validators wrap them with a call-site tag.
var (
	// ErrNilGrid indicates a nil grid was passed. [][]T{} is a valid 0×0 grid.
	ErrNilGrid = errors.New("rotate: grid is nil")

	// ErrNonSquare indicates a row whose length differs from the row count.
	ErrNonSquare = errors.New("rotate: grid is not square")

	// ErrOutOfRange indicates a layer or column outside the grid's layer walk.
	ErrOutOfRange = errors.New("rotate: position out of range")
)
