package rotate_test

import (
	"testing"

	"github.com/katalvlaran/rotmat/rotate"
	"github.com/stretchr/testify/require"
)

// TestQuarterTurns checks normalisation into [0, 4) for both signs.
func TestQuarterTurns(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 2: 2, 3: 3, 4: 0, 5: 1, -1: 3, -2: 2, -4: 0, -6: 2, 13: 1}
	for k, want := range cases {
		require.Equal(t, want, rotate.QuarterTurns(k), "QuarterTurns(%d)", k)
	}
}

// TestTurn_MatchesRepeatedInPlace compares Turn(g, k) with k mod 4 applications of InPlace.
func TestTurn_MatchesRepeatedInPlace(t *testing.T) {
	for n := 0; n <= 7; n++ {
		for k := -5; k <= 5; k++ {
			want := seqGrid(n)
			for i := 0; i < rotate.QuarterTurns(k); i++ {
				_, err := rotate.InPlace(want)
				require.NoError(t, err)
			}

			got, err := rotate.Turn(seqGrid(n), k)
			require.NoError(t, err)
			require.Equal(t, want, got, "n=%d k=%d", n, k)
		}
	}
}

// TestTurn_HalfTurn pins a 180° rotation on odd and even grids.
func TestTurn_HalfTurn(t *testing.T) {
	g, err := rotate.Turn(seqGrid(3), 2)
	require.NoError(t, err)
	require.Equal(t, [][]int{{9, 8, 7}, {6, 5, 4}, {3, 2, 1}}, g)

	g, err = rotate.Turn(seqGrid(2), -2)
	require.NoError(t, err)
	require.Equal(t, [][]int{{4, 3}, {2, 1}}, g)
}

// TestTurn_NegativeIsCounterClockwise checks Turn(g, -1) against CounterClockwise.
func TestTurn_NegativeIsCounterClockwise(t *testing.T) {
	want, err := rotate.CounterClockwise(seqGrid(4))
	require.NoError(t, err)
	got, err := rotate.Turn(seqGrid(4), -1)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// TestTurn_Errors checks validation runs even for k ≡ 0 (mod 4).
func TestTurn_Errors(t *testing.T) {
	_, err := rotate.Turn[int](nil, 1)
	require.ErrorIs(t, err, rotate.ErrNilGrid)

	_, err = rotate.Turn([][]int{{1, 2}}, 4)
	require.ErrorIs(t, err, rotate.ErrNonSquare)
}
