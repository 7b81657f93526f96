package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dictlookup/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateSquare(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateSquare(typedNil), matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)

	sq, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSquare(sq))
}

func TestValidateSymmetric(t *testing.T) {
	sym, err := matrix.NewDenseFromRows([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSymmetric(sym, 0))

	asym, err := matrix.NewDenseFromRows([][]float64{{0, 1}, {0, 0}})
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSymmetric(asym, 0), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(asym, -1)) // |tol| = 1 absorbs the gap
	require.ErrorIs(t, matrix.ValidateSymmetric(sym, math.NaN()), matrix.ErrNaNInf)
}

func TestValidateBinary(t *testing.T) {
	bin, err := matrix.NewDenseFromRows([][]float64{{0, 1}, {1, 1}})
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateBinary(bin))

	soft, err := matrix.NewDenseFromRows([][]float64{{0, 0.5}})
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateBinary(soft), matrix.ErrNonBinary)
}

func TestValidateZeroDiagonal(t *testing.T) {
	loop, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateZeroDiagonal(loop), matrix.ErrNonZeroDiagonal)

	anti, err := matrix.FlipLR(loop)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateZeroDiagonal(anti))
}
