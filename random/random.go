// SPDX-License-Identifier: MIT
// Package: random
//
// Purpose:
//   - Source: the single capability sampling code needs, a uniform draw in [0,n).
//   - RNG: a seeded Source backed by math/rand, guarded by a mutex so one
//     instance can feed several goroutines.
//   - ValidateSource: the nil check every consumer runs before its first draw.

package random

import (
	"errors"
	"math/rand"
	"reflect"
	"sync"
)

// ErrNilSource is returned by ValidateSource for a nil Source, including a
// nil pointer stored in a non-nil interface.
var ErrNilSource = errors.New("random: nil source")

// Source supplies uniform integer draws.
type Source interface {
	// Intn returns a uniform integer in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// RNG is a seeded pseudo-random Source. Safe for concurrent use.
type RNG struct {
	mu   sync.Mutex
	src  *rand.Rand
	seed int64
}

var _ Source = (*RNG)(nil)

// NewRNG returns an RNG whose sequence is fully determined by seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		src:  rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed reports the seed passed to NewRNG.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Reset rewinds the sequence: the next draws repeat those made after NewRNG.
func (r *RNG) Reset() {
	r.mu.Lock()
	r.src.Seed(r.seed)
	r.mu.Unlock()
}

// Intn draws uniformly from [0, n). Panics if n <= 0, like math/rand.
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	v := r.src.Intn(n)
	r.mu.Unlock()
	return v
}

// FillUniformRange overwrites dst with uniform values in [lo, hi) under a
// single lock acquisition.
func (r *RNG) FillUniformRange(dst []float64, lo, hi float64) {
	span := hi - lo
	r.mu.Lock()
	for i := range dst {
		dst[i] = lo + r.src.Float64()*span
	}
	r.mu.Unlock()
}

// ValidateSource returns ErrNilSource if src is nil or wraps a nil pointer.
func ValidateSource(src Source) error {
	if src == nil {
		return ErrNilSource
	}
	if v := reflect.ValueOf(src); v.Kind() == reflect.Pointer && v.IsNil() {
		return ErrNilSource
	}
	return nil
}
