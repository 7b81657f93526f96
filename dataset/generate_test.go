package dataset_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dictlookup/dataset"
	"github.com/katalvlaran/dictlookup/problem"
	"github.com/katalvlaran/dictlookup/verify"
)

func TestGenerateShards(t *testing.T) {
	spec := dataset.Spec{NKeys: 3, NVals: 5, Seed: 100, Count: 10, Shards: 3}
	shards, err := dataset.Generate(context.Background(), spec, nil)
	require.NoError(t, err)
	require.Len(t, shards, 3)

	total := 0
	for i, s := range shards {
		assert.Equal(t, i, s.Index)
		assert.Equal(t, int64(100+i), s.Seed)

		// Each shard replays the plain sequence for its seed.
		seq, err := problem.Generate(3, 5, s.Seed)
		require.NoError(t, err)
		want, err := seq.Take(len(s.Problems))
		require.NoError(t, err)
		for j, p := range s.Problems {
			require.NoError(t, verify.Problem(p))
			require.True(t, want[j].Nodes().Equal(p.Nodes()), "shard %d problem %d", i, j)
		}
		total += len(s.Problems)
	}
	assert.Equal(t, 10, total)
}

func TestGenerateDeterministic(t *testing.T) {
	spec := dataset.Spec{NKeys: 2, NVals: 3, Seed: 0, Count: 8, Shards: 4}
	a, err := dataset.Generate(context.Background(), spec, nil)
	require.NoError(t, err)
	b, err := dataset.Generate(context.Background(), spec, nil)
	require.NoError(t, err)

	for i := range a {
		require.Len(t, b[i].Problems, len(a[i].Problems))
		for j := range a[i].Problems {
			assert.Equal(t, a[i].Problems[j].Answers(), b[i].Problems[j].Answers())
		}
	}
}

func TestGenerateInvalidSpec(t *testing.T) {
	_, err := dataset.Generate(context.Background(), dataset.Spec{NKeys: 2, NVals: 1, Count: 1, Shards: 1}, nil)
	require.ErrorIs(t, err, dataset.ErrInvalidSpec)
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dataset.Generate(ctx, dataset.Spec{NKeys: 2, NVals: 3, Count: 4, Shards: 2}, nil)
	require.ErrorIs(t, err, context.Canceled)
}

// TestGenerateHugeCountCancelled: a count far beyond memory is accepted by
// validation, so generation must fail through the context, not allocation.
func TestGenerateHugeCountCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	spec := dataset.Spec{NKeys: 2, NVals: 3, Count: math.MaxInt, Shards: 1}
	require.NoError(t, spec.Validate())

	require.NotPanics(t, func() {
		_, err := dataset.Generate(ctx, spec, nil)
		require.ErrorIs(t, err, context.Canceled)
	})
}
