package projection

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitialize_Deterministic(t *testing.T) {
	f1, err := Initialize(4, 3, 2, 42)
	require.NoError(t, err)
	f2, err := Initialize(4, 3, 2, 42)
	require.NoError(t, err)
	require.Equal(t, f1.a, f2.a)
}

func TestInitialize_DifferentSeedsDiffer(t *testing.T) {
	f1, err := Initialize(4, 3, 2, 1)
	require.NoError(t, err)
	f2, err := Initialize(4, 3, 2, 2)
	require.NoError(t, err)
	require.NotEqual(t, f1.a, f2.a)
}

func TestInitialize_InvalidParams(t *testing.T) {
	_, err := Initialize(0, 3, 2, 1)
	require.ErrorIs(t, err, ErrInvalidParam)
	_, err = Initialize(4, 0, 2, 1)
	require.ErrorIs(t, err, ErrInvalidParam)
	_, err = Initialize(4, 3, 0, 1)
	require.ErrorIs(t, err, ErrInvalidParam)
}

func TestProject_DimensionMismatch(t *testing.T) {
	f, err := Initialize(4, 3, 2, 1)
	require.NoError(t, err)
	_, err = f.Project(0, []float64{1, 2, 3})
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestProject_TableIndexOutOfRange(t *testing.T) {
	f, err := Initialize(4, 3, 2, 1)
	require.NoError(t, err)
	_, err = f.Project(2, make([]float64, 4))
	require.ErrorIs(t, err, ErrTableIndex)
	_, err = f.Project(-1, make([]float64, 4))
	require.ErrorIs(t, err, ErrTableIndex)
}

func TestProject_MatchesManualDotProduct(t *testing.T) {
	a := [][][]float64{
		{
			{1, 0, 0},
			{0, 1, 0},
			{1, 1, 1},
		},
	}
	f, err := FromMatrices(3, 3, 1, a)
	require.NoError(t, err)

	y, err := f.Project(0, []float64{2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, []float64{2, 3, 9}, y)
}

func TestFromMatrices_ShapeValidation(t *testing.T) {
	_, err := FromMatrices(3, 3, 1, [][][]float64{{{1, 2}}})
	require.Error(t, err)
	_, err = FromMatrices(3, 3, 2, [][][]float64{{{1, 2, 3}, {1, 2, 3}, {1, 2, 3}}})
	require.Error(t, err)
}
