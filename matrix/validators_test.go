package matrix_test

import (
	"testing"

	"github.com/katalvlaran/cargoqubo/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateSymmetric(t *testing.T) {
	require.NoError(t, matrix.ValidateSymmetric(MustDense(t, 0, 0)))
	require.NoError(t, matrix.ValidateSymmetric(MustFrom(t, [][]int64{{1, 7}, {7, 2}})))
	require.NoError(t, matrix.ValidateSymmetric(hide{MustFrom(t, [][]int64{{5}})}))

	err := matrix.ValidateSymmetric(MustFrom(t, [][]int64{{1, 7}, {6, 2}}))
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
	require.Contains(t, err.Error(), "(0,1)=7")

	require.ErrorIs(t, matrix.ValidateSymmetric(MustDense(t, 2, 3)), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSymmetric(nil), matrix.ErrNilMatrix)
}

func TestValidateShapes(t *testing.T) {
	a := MustDense(t, 2, 3)

	require.NoError(t, matrix.ValidateSameShape(a, MustDense(t, 2, 3)))
	require.ErrorIs(t, matrix.ValidateSameShape(a, MustDense(t, 3, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameShape(a, MustDense(t, 2, 2)), matrix.ErrDimensionMismatch)

	require.ErrorIs(t, matrix.ValidateSquare(a), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquareNonNil(nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateVecLen(nil, 0))
	require.ErrorIs(t, matrix.ValidateVecLen([]int64{1}, 2), matrix.ErrDimensionMismatch)
}
