package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dictlookup/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdentityAndOnes(t *testing.T) {
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, I.Rows2D())

	ones, err := matrix.NewOnes(2, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 1, 1}, {1, 1, 1}}, ones.Rows2D())

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestFlipLR(t *testing.T) {
	I, err := matrix.NewIdentity(2)
	require.NoError(t, err)

	anti, err := matrix.FlipLR(I)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1}, {1, 0}}, anti.Rows2D())

	_, err = matrix.FlipLR(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestKroneckerAntiDiagonal builds kron([[0,1],[1,0]], ones(n,n)) and checks
// that it is the block anti-diagonal K(n,n) adjacency.
func TestKroneckerAntiDiagonal(t *testing.T) {
	for _, n := range []int{1, 2, 4} {
		I, err := matrix.NewIdentity(2)
		require.NoError(t, err)
		anti, err := matrix.FlipLR(I)
		require.NoError(t, err)
		ones, err := matrix.NewOnes(n, n)
		require.NoError(t, err)

		adj, err := matrix.Kronecker(anti, ones)
		require.NoError(t, err)
		require.Equal(t, 2*n, adj.Rows())
		require.Equal(t, 2*n, adj.Cols())

		adj.Do(func(i, j int, v float64) bool {
			want := 0.0
			if (i < n) != (j < n) {
				want = 1.0
			}
			assert.Equal(t, want, v, "n=%d (%d,%d)", n, i, j)
			return true
		})
	}
}

func TestKroneckerGeneral(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{{1, 2}})
	require.NoError(t, err)
	b, err := matrix.NewDenseFromRows([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)

	k, err := matrix.Kronecker(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1, 0, 2}, {1, 0, 2, 0}}, k.Rows2D())
}

func TestVStack(t *testing.T) {
	top, err := matrix.NewDenseFromRows([][]float64{{1, 0}})
	require.NoError(t, err)
	bottom, err := matrix.NewDenseFromRows([][]float64{{0, 1}, {1, 1}})
	require.NoError(t, err)

	s, err := matrix.VStack(top, bottom)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0}, {0, 1}, {1, 1}}, s.Rows2D())

	wide, err := matrix.NewOnes(1, 3)
	require.NoError(t, err)
	_, err = matrix.VStack(top, wide)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestArgMax(t *testing.T) {
	cases := []struct {
		name string
		in   []float64
		want int
	}{
		{"empty", nil, -1},
		{"single", []float64{0}, 0},
		{"one-hot", []float64{0, 0, 1, 0}, 2},
		{"all zero ties to first", []float64{0, 0, 0}, 0},
		{"ties to lowest", []float64{0.2, 0.9, 0.9}, 1},
		{"negative", []float64{-3, -1, -2}, 1},
		{"first nan wins", []float64{0.1, math.NaN(), 0.5, math.NaN()}, 1},
		{"nan after maximum", []float64{0.9, 0.1, math.NaN()}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, matrix.ArgMax(tc.in))
		})
	}
}
