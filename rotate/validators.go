// SPDX-License-Identifier: MIT

package rotate

import "fmt"

// validatorErrorf tags a sentinel with the validator name, keeping it matchable via errors.Is.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare checks that g is non-nil and that every row holds exactly
// len(g) cells.
//
// Errors: ErrNilGrid if g == nil, ErrNonSquare naming the first offending row.
// Complexity: O(N), allocates nothing on success.
func ValidateSquare[T any](g [][]T) error {
	if g == nil {
		return validatorErrorf("ValidateSquare", ErrNilGrid)
	}
	n := len(g)
	for i, row := range g {
		if len(row) != n {
			return validatorErrorf(
				fmt.Sprintf("ValidateSquare: row %d has %d cells, want %d", i, len(row), n),
				ErrNonSquare,
			)
		}
	}

	return nil
}
