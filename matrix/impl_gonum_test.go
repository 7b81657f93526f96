package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dictlookup/matrix"
)

func TestToGonumCopies(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 0, 0}, {0, 1, 1}})
	require.NoError(t, err)

	g := matrix.ToGonum(m)
	r, c := g.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	m.Do(func(i, j int, v float64) bool {
		require.Equal(t, v, g.At(i, j), "(%d,%d)", i, j)
		return true
	})

	g.Set(0, 0, 7) // gonum copy must not alias our storage
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	require.Nil(t, matrix.ToGonum(nil))
}
