package dataset_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dictlookup/dataset"
	"github.com/katalvlaran/dictlookup/problem"
	"github.com/katalvlaran/dictlookup/verify"
)

func TestCodecRoundTrip(t *testing.T) {
	spec := dataset.Spec{NKeys: 2, NVals: 3, Seed: 0, Count: 5, Shards: 2}
	shards, err := dataset.Generate(context.Background(), spec, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	w := dataset.NewWriter(&buf)
	require.NoError(t, w.WriteShards(shards))
	assert.Equal(t, 5, w.Count())
	assert.Equal(t, 5, strings.Count(buf.String(), "\n"))

	recs, err := dataset.ReadAll(&buf)
	require.NoError(t, err)
	require.Len(t, recs, 5)

	k := 0
	for _, s := range shards {
		for i, want := range s.Problems {
			rec := recs[k]
			k++
			assert.Equal(t, s.Index, rec.Shard)
			assert.Equal(t, i, rec.Index)

			got, err := rec.Problem()
			require.NoError(t, err)
			require.NoError(t, verify.Problem(got))
			assert.True(t, want.Nodes().Equal(got.Nodes()))
			assert.True(t, want.Adjacency().Equal(got.Adjacency()))
			assert.Equal(t, want.Answers(), got.Answers())
		}
	}
}

func TestRecordProblemRejectsBadShapes(t *testing.T) {
	rec := dataset.Record{
		NKeys:   1,
		Nodes:   [][]float64{{1, 0}, {1, 1}},
		Adj:     [][]float64{{0, 1}, {1}},
		Answers: []int{0},
	}
	_, err := rec.Problem()
	require.Error(t, err)

	rec.Adj = [][]float64{{0, 1}, {1, 0}}
	rec.Answers = []int{0, 1}
	_, err = rec.Problem()
	require.ErrorIs(t, err, problem.ErrInvalidArgument)
}

func TestReaderMalformed(t *testing.T) {
	_, err := dataset.ReadAll(strings.NewReader("{\"shard\":0}\n{not json"))
	require.Error(t, err)
}
