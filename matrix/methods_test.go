package matrix_test

import (
	"testing"

	"github.com/katalvlaran/cargoqubo/matrix"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	a := MustFrom(t, [][]int64{{1, 2}, {3, 4}})
	b := MustFrom(t, [][]int64{{10, -2}, {0, 1}})
	want := [][]int64{{11, 0}, {3, 5}}

	res, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, want, res.ToSlices())

	// The interface fallback must agree with the *Dense fast path.
	res, err = matrix.Add(hide{a}, b)
	require.NoError(t, err)
	require.Equal(t, want, res.ToSlices())
}

func TestAddErrors(t *testing.T) {
	a := MustDense(t, 2, 2)

	_, err := matrix.Add(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = matrix.Add(a, typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Add(a, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAddInPlace(t *testing.T) {
	dst := MustFrom(t, [][]int64{{1, 1}, {1, 1}})
	require.NoError(t, matrix.AddInPlace(dst, MustFrom(t, [][]int64{{1, 2}, {3, 4}})))
	require.NoError(t, matrix.AddInPlace(dst, hide{MustFrom(t, [][]int64{{-1, 0}, {0, -1}})}))
	require.Equal(t, [][]int64{{1, 3}, {4, 4}}, dst.ToSlices())

	require.ErrorIs(t, matrix.AddInPlace(nil, dst), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.AddInPlace(dst, MustDense(t, 1, 2)), matrix.ErrDimensionMismatch)
}

func TestScale(t *testing.T) {
	m := MustFrom(t, [][]int64{{1, -2}, {0, 3}})
	want := [][]int64{{8, -16}, {0, 24}}

	res, err := matrix.Scale(m, 8)
	require.NoError(t, err)
	require.Equal(t, want, res.ToSlices())

	res, err = matrix.Scale(hide{m}, 8)
	require.NoError(t, err)
	require.Equal(t, want, res.ToSlices())

	_, err = matrix.Scale(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestQuadraticForm(t *testing.T) {
	m := MustFrom(t, [][]int64{
		{2, -3, 0},
		{-3, 5, 1},
		{0, 1, -4},
	})

	tests := []struct {
		name string
		x    []int64
		want int64
	}{
		{"zero", []int64{0, 0, 0}, 0},
		{"single", []int64{0, 1, 0}, 5},
		{"pair counts both mirrors", []int64{1, 1, 0}, 2 + 5 - 3 - 3},
		{"all", []int64{1, 1, 1}, 2 + 5 - 4 - 6 + 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.QuadraticForm(m, tc.x)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	_, err := matrix.QuadraticForm(m, []int64{1, 0})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.QuadraticForm(MustDense(t, 2, 3), []int64{1, 0})
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
