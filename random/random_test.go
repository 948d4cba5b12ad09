// SPDX-License-Identifier: MIT

package random_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sawyercade/DataMining2013F/random"
)

func TestRNG_IntnRange(t *testing.T) {
	t.Parallel()

	r := random.NewRNG(7)
	for i := 0; i < 1000; i++ {
		v := r.Intn(5)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 5)
	}
}

func TestRNG_ResetReproduces(t *testing.T) {
	t.Parallel()

	r := random.NewRNG(42)
	assert.Equal(t, int64(42), r.Seed())

	first := make([]int, 32)
	for i := range first {
		first[i] = r.Intn(100)
	}
	r.Reset()
	for i := range first {
		assert.Equal(t, first[i], r.Intn(100), "draw %d", i)
	}
}

func TestRNG_SameSeedSameSequence(t *testing.T) {
	t.Parallel()

	a, b := random.NewRNG(3), random.NewRNG(3)
	for i := 0; i < 64; i++ {
		require.Equal(t, a.Intn(1<<20), b.Intn(1<<20))
	}
	da, db := make([]float64, 8), make([]float64, 8)
	a.FillUniformRange(da, 0, 1)
	b.FillUniformRange(db, 0, 1)
	assert.Equal(t, da, db)
}

func TestRNG_FillUniformRange(t *testing.T) {
	t.Parallel()

	r := random.NewRNG(1)
	dst := make([]float64, 256)
	r.FillUniformRange(dst, -2, 3)
	for _, v := range dst {
		assert.GreaterOrEqual(t, v, -2.0)
		assert.Less(t, v, 3.0)
	}
}

func TestRNG_ConcurrentUse(t *testing.T) {
	t.Parallel()

	r := random.NewRNG(9)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				v := r.Intn(10)
				if v < 0 || v >= 10 {
					t.Errorf("draw out of range: %d", v)
				}
			}
		}()
	}
	wg.Wait()
}

func TestRNG_IntnPanicsOnNonPositive(t *testing.T) {
	t.Parallel()

	r := random.NewRNG(0)
	assert.Panics(t, func() { r.Intn(0) })
}

func TestValidateSource(t *testing.T) {
	t.Parallel()

	var typedNil *random.RNG
	tests := []struct {
		name    string
		src     random.Source
		wantErr error
	}{
		{"nil interface", nil, random.ErrNilSource},
		{"nil RNG pointer", typedNil, random.ErrNilSource},
		{"seeded RNG", random.NewRNG(1), nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := random.ValidateSource(tc.src)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}
