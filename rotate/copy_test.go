package rotate_test

import (
	"testing"

	"github.com/katalvlaran/rotmat/rotate"
	"github.com/stretchr/testify/require"
)

// TestCopy_Fixtures checks the auxiliary rotation and that the input is left untouched.
func TestCopy_Fixtures(t *testing.T) {
	for _, tc := range clockwiseCases() {
		t.Run(tc.name, func(t *testing.T) {
			before := cloneGrid(tc.in)
			got, err := rotate.Copy(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.Equal(t, before, tc.in)
		})
	}
}

// TestCopy_Independent ensures the result shares no storage with the input.
func TestCopy_Independent(t *testing.T) {
	g := seqGrid(3)
	out, err := rotate.Copy(g)
	require.NoError(t, err)

	out[0][0] = -1
	require.Equal(t, 1, g[0][0])
	g[2][0] = -7
	require.Equal(t, -1, out[0][0]) // g[2][0] was the source cell of out[0][0]
}

// TestCopy_Errors mirrors the InPlace shape checks.
func TestCopy_Errors(t *testing.T) {
	_, err := rotate.Copy[int](nil)
	require.ErrorIs(t, err, rotate.ErrNilGrid)

	_, err = rotate.Copy([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, rotate.ErrNonSquare)
}

// TestValidateSquare checks the validator directly, including the row it blames.
func TestValidateSquare(t *testing.T) {
	require.NoError(t, rotate.ValidateSquare([][]int{}))
	require.NoError(t, rotate.ValidateSquare([][]int{{1}}))
	require.NoError(t, rotate.ValidateSquare(seqGrid(5)))

	require.ErrorIs(t, rotate.ValidateSquare[float64](nil), rotate.ErrNilGrid)

	err := rotate.ValidateSquare([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8}})
	require.ErrorIs(t, err, rotate.ErrNonSquare)
	require.Contains(t, err.Error(), "row 2 has 2 cells, want 3")
}
