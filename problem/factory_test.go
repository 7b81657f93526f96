package problem_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dictlookup/problem"
)

// scriptedSource answers Intn with a fixed draw and reverses on Shuffle,
// recording every call so tests can pin the draw order.
type scriptedSource struct {
	draw  int
	calls []string
}

func (s *scriptedSource) Intn(n int) int {
	s.calls = append(s.calls, "Intn")
	return s.draw % n
}

func (s *scriptedSource) Shuffle(n int, swap func(i, j int)) {
	s.calls = append(s.calls, "Shuffle")
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

func TestNewFactoryValidation(t *testing.T) {
	cases := []struct {
		name         string
		nKeys, nVals int
		src          problem.Source
	}{
		{"zero keys", 0, 3, problem.NewSource(0)},
		{"negative vals", 2, -1, problem.NewSource(0)},
		{"fewer vals than keys", 3, 2, problem.NewSource(0)},
		{"nil source", 2, 3, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := problem.NewFactory(tc.nKeys, tc.nVals, tc.src)
			require.ErrorIs(t, err, problem.ErrInvalidArgument)
			require.Nil(t, f)
		})
	}

	f, err := problem.NewFactory(2, 2, problem.NewSource(0))
	require.NoError(t, err)
	assert.Equal(t, 2, f.NKeys())
	assert.Equal(t, 2, f.NValues())
	assert.Equal(t, 4, f.Width())
}

func TestWithLoggerNilPanics(t *testing.T) {
	require.Panics(t, func() { problem.WithLogger(nil) })
}

func TestEncode(t *testing.T) {
	f, err := problem.NewFactory(2, 3, problem.NewSource(0))
	require.NoError(t, err)

	x, err := f.EncodeKey(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 0, 0, 0}, x)

	x, err = f.EncodePair(0, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0, 0, 1}, x)

	for _, e := range []problem.Entry{
		problem.KeyOnly(-1),
		problem.KeyOnly(2),
		problem.Pair(0, 3),
		problem.Pair(0, -1),
	} {
		_, err = f.Encode(e)
		require.ErrorIs(t, err, problem.ErrInvalidArgument, "entry %v", e)
	}
}

// TestGenerateDrawOrder pins the stream contract: one Intn for n, then the
// key shuffle, then the value shuffle.
func TestGenerateDrawOrder(t *testing.T) {
	src := &scriptedSource{draw: 2}
	f, err := problem.NewFactory(3, 4, src)
	require.NoError(t, err)

	_, err = f.Generate()
	require.NoError(t, err)
	assert.Equal(t, []string{"Intn", "Shuffle", "Shuffle"}, src.calls)
}

// TestGenerateScripted checks the exact layout for a reversing shuffle:
// n=3, keys=[2,1,0], vals=[3,2,1,0] → answers=[3,2,1].
func TestGenerateScripted(t *testing.T) {
	f, err := problem.NewFactory(3, 4, &scriptedSource{draw: 2})
	require.NoError(t, err)

	p, err := f.Generate()
	require.NoError(t, err)

	require.Equal(t, 3, p.Size())
	assert.Equal(t, []int{3, 2, 1}, p.Answers())
	assert.Equal(t, [][]float64{
		{0, 0, 1, 0, 0, 0, 0},
		{0, 1, 0, 0, 0, 0, 0},
		{1, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0, 1},
		{0, 1, 0, 0, 0, 1, 0},
		{1, 0, 0, 0, 1, 0, 0},
	}, p.Nodes().Rows2D())

	adj := p.Adjacency()
	require.Equal(t, 6, adj.Rows())
	adj.Do(func(i, j int, v float64) bool {
		want := 0.0
		if (i < 3) != (j < 3) {
			want = 1
		}
		assert.Equal(t, want, v, "(%d,%d)", i, j)
		return true
	})
}

func TestGenerateLogsDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	f, err := problem.NewFactory(2, 3, problem.NewSource(0), problem.WithLogger(logger))
	require.NoError(t, err)
	_, err = f.Generate()
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "generated problem")
}

func TestCompleteBipartite(t *testing.T) {
	adj, err := problem.CompleteBipartite(1)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1}, {1, 0}}, adj.Rows2D())

	_, err = problem.CompleteBipartite(0)
	require.Error(t, err)
}
