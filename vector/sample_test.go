// SPDX-License-Identifier: MIT

package vector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sawyercade/DataMining2013F/matrix"
	"github.com/sawyercade/DataMining2013F/random"
	"github.com/sawyercade/DataMining2013F/vector"
)

// scripted replays fixed draws, reduced modulo n.
type scripted struct {
	draws []int
	next  int
}

func (s *scripted) Intn(n int) int {
	v := s.draws[s.next%len(s.draws)] % n
	s.next++
	return v
}

// paired builds features [i, 10i] and labels [100i] for i in [0, rows).
func paired(t *testing.T, rows int) (*matrix.Matrix, *matrix.Matrix) {
	t.Helper()

	f := matrix.New()
	require.NoError(t, f.AddColumn(matrix.NewColumnAttributes("a", matrix.Continuous)))
	require.NoError(t, f.AddColumn(matrix.NewColumnAttributes("b", matrix.Continuous)))
	l := matrix.New()
	require.NoError(t, l.AddColumn(matrix.NewColumnAttributes("class", matrix.Categorical)))

	for i := 0; i < rows; i++ {
		x := float64(i)
		require.NoError(t, f.AddRow([]float64{x, 10 * x}))
		require.NoError(t, l.AddRow([]float64{100 * x}))
	}
	return f, l
}

func TestSampleWithReplacement_Scripted(t *testing.T) {
	t.Parallel()

	f, l := paired(t, 4)
	src := &scripted{draws: []int{2, 2, 0, 3, 1}}

	fs, ls, err := vector.SampleWithReplacement(src, f, l, 5)
	require.NoError(t, err)
	require.Equal(t, 5, fs.NumRows())
	require.Equal(t, 5, ls.NumRows())
	assert.Equal(t, f.Columns(), fs.Columns())
	assert.Equal(t, l.Columns(), ls.Columns())

	for k, idx := range []int{2, 2, 0, 3, 1} {
		fr, err := fs.Row(k)
		require.NoError(t, err)
		lr, err := ls.Row(k)
		require.NoError(t, err)
		x := float64(idx)
		assert.Equal(t, []float64{x, 10 * x}, fr)
		assert.Equal(t, []float64{100 * x}, lr)
	}
}

func TestBootstrap_AlignmentAndBags(t *testing.T) {
	t.Parallel()

	f, l := paired(t, 20)
	s, err := vector.Bootstrap(random.NewRNG(5), f, l, 20)
	require.NoError(t, err)
	require.Len(t, s.Indices, 20)

	for k, idx := range s.Indices {
		fr, err := s.Features.Row(k)
		require.NoError(t, err)
		lr, err := s.Labels.Row(k)
		require.NoError(t, err)
		require.Equal(t, fr[0]*100, lr[0], "row %d drawn from %d", k, idx)
		require.Equal(t, float64(idx), fr[0])
		require.True(t, s.InBag.Contains(uint32(idx)))
	}

	oob := s.OutOfBag()
	assert.Equal(t, uint64(20), s.InBag.GetCardinality()+oob.GetCardinality())
	assert.False(t, s.InBag.Intersects(oob))
	for _, idx := range oob.ToArray() {
		assert.Less(t, idx, uint32(20))
	}
}

func TestBootstrap_SeedReproduces(t *testing.T) {
	t.Parallel()

	f, l := paired(t, 10)
	a, err := vector.Bootstrap(random.NewRNG(77), f, l, 15)
	require.NoError(t, err)
	b, err := vector.Bootstrap(random.NewRNG(77), f, l, 15)
	require.NoError(t, err)
	assert.Equal(t, a.Indices, b.Indices)
}

func TestSampleWithReplacement_Sizes(t *testing.T) {
	t.Parallel()

	f, l := paired(t, 3)
	rng := random.NewRNG(1)
	for _, n := range []int{0, 1, 3, 10} {
		fs, ls, err := vector.SampleWithReplacement(rng, f, l, n)
		require.NoError(t, err)
		assert.Equal(t, n, fs.NumRows())
		assert.Equal(t, n, ls.NumRows())
	}

	// sources are not modified
	assert.Equal(t, 3, f.NumRows())
	assert.Equal(t, 3, l.NumRows())
}

func TestSampleWithReplacement_Errors(t *testing.T) {
	t.Parallel()

	f, l := paired(t, 3)
	short, _ := paired(t, 2)
	emptyF, emptyL := paired(t, 0)
	rng := random.NewRNG(1)
	var nilRNG *random.RNG

	tests := []struct {
		name    string
		src     random.Source
		f, l    *matrix.Matrix
		n       int
		wantErr error
	}{
		{"nil features", rng, nil, l, 1, vector.ErrInvalidArgument},
		{"nil labels", rng, f, nil, 1, vector.ErrInvalidArgument},
		{"nil source", nil, f, l, 1, vector.ErrInvalidArgument},
		{"nil RNG pointer", nilRNG, f, l, 1, vector.ErrInvalidArgument},
		{"row count mismatch", rng, short, l, 1, vector.ErrInvalidArgument},
		{"negative n", rng, f, l, -1, vector.ErrInvalidArgument},
		{"no rows", rng, emptyF, emptyL, 2, vector.ErrEmptyInput},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := vector.SampleWithReplacement(tc.src, tc.f, tc.l, tc.n)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}

	fs, ls, err := vector.SampleWithReplacement(rng, emptyF, emptyL, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, fs.NumRows())
	assert.Equal(t, 0, ls.NumRows())
}
