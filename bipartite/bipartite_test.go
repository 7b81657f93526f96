package bipartite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dictlookup/bipartite"
	"github.com/katalvlaran/dictlookup/matrix"
	"github.com/katalvlaran/dictlookup/problem"
)

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	return m
}

func TestColorCompleteBipartite(t *testing.T) {
	for n := 1; n <= 5; n++ {
		adj, err := problem.CompleteBipartite(n)
		require.NoError(t, err)

		p, err := bipartite.Color(adj)
		require.NoError(t, err)
		require.Len(t, p.Left, n)
		require.Len(t, p.Right, n)
		for i := 0; i < n; i++ {
			assert.Equal(t, i, p.Left[i])
			assert.Equal(t, n+i, p.Right[i])
		}
		assert.True(t, bipartite.IsComplete(adj, p))
	}
}

func TestColorOddCycle(t *testing.T) {
	triangle := mustDense(t, [][]float64{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	})
	_, err := bipartite.Color(triangle)
	require.ErrorIs(t, err, bipartite.ErrNotBipartite)
}

func TestColorPathAndIsolated(t *testing.T) {
	// 0-1-2 path plus isolated vertex 3.
	adj := mustDense(t, [][]float64{
		{0, 1, 0, 0},
		{1, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 0},
	})
	p, err := bipartite.Color(adj)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3}, p.Left)
	assert.Equal(t, []int{1}, p.Right)
	assert.False(t, bipartite.IsComplete(adj, p)) // 3 has no cross edge
}

func TestColorRejectsStructure(t *testing.T) {
	_, err := bipartite.Color(mustDense(t, [][]float64{{0, 1}, {0, 0}}))
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	_, err = bipartite.Color(mustDense(t, [][]float64{{1, 0}, {0, 0}}))
	require.ErrorIs(t, err, matrix.ErrNonZeroDiagonal)

	_, err = bipartite.Color(mustDense(t, [][]float64{{0, 1, 0}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestIsCompleteBipartite(t *testing.T) {
	adj, err := problem.CompleteBipartite(2)
	require.NoError(t, err)

	require.NoError(t, bipartite.IsCompleteBipartite(adj, []int{0, 1}, []int{2, 3}))
	require.ErrorIs(t, bipartite.IsCompleteBipartite(adj, []int{0, 2}, []int{1, 3}), bipartite.ErrNotComplete)
	require.ErrorIs(t, bipartite.IsCompleteBipartite(adj, []int{0, 1}, []int{2}), bipartite.ErrBadSplit)
	require.ErrorIs(t, bipartite.IsCompleteBipartite(adj, []int{0, 1}, []int{1, 2, 3}), bipartite.ErrBadSplit)
	require.ErrorIs(t, bipartite.IsCompleteBipartite(adj, []int{0, 1}, []int{2, 9}), bipartite.ErrBadSplit)

	// Drop one cross edge symmetrically.
	require.NoError(t, adj.Set(0, 3, 0))
	require.NoError(t, adj.Set(3, 0, 0))
	require.ErrorIs(t, bipartite.IsCompleteBipartite(adj, []int{0, 1}, []int{2, 3}), bipartite.ErrNotComplete)
}
