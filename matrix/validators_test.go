package matrix_test

import (
	"testing"

	"github.com/katalvlaran/rotmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(mustDense(t, [][]float64{{1}})))
}

func TestValidateSquare(t *testing.T) {
	require.NoError(t, matrix.ValidateSquare(mustDense(t, seqRows(3))))

	err := matrix.ValidateSquare(mustDense(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.Contains(t, err.Error(), "1x2")
}
