// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Bootstrap resampling for bagging: draw n row indices uniformly with
//     replacement and build index-aligned feature/label matrices.
//
// Determinism:
//   - All randomness comes from the caller's random.Source; a seeded
//     random.RNG reproduces the same sample.

package vector

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/sawyercade/DataMining2013F/matrix"
	"github.com/sawyercade/DataMining2013F/random"
)

// Sample is the result of a bootstrap draw.
type Sample struct {
	// Features and Labels hold the drawn rows; row k of both came from
	// original row Indices[k].
	Features *matrix.Matrix
	Labels   *matrix.Matrix
	// Indices lists the drawn source row per sampled row, in draw order.
	Indices []int
	// InBag is the set of source rows drawn at least once.
	InBag *roaring.Bitmap

	population int // source row count
}

// OutOfBag returns the source rows never drawn, i.e. [0, rows) minus InBag.
// Complexity: O(rows) worst case.
func (s *Sample) OutOfBag() *roaring.Bitmap {
	return roaring.Flip(s.InBag, 0, uint64(s.population))
}

// SampleWithReplacement draws n rows uniformly with replacement from the
// paired features and labels and returns the two sampled matrices, each
// with exactly n rows and the schema of its source.
// Errors: see Bootstrap.
func SampleWithReplacement(src random.Source, features, labels *matrix.Matrix, n int) (*matrix.Matrix, *matrix.Matrix, error) {
	s, err := Bootstrap(src, features, labels, n)
	if err != nil {
		return nil, nil, err
	}
	return s.Features, s.Labels, nil
}

// Bootstrap draws n row indices uniformly with replacement from
// [0, features.NumRows()) and copies the matching feature and label rows.
// Stage 1 (Validate): non-nil inputs, equal row counts, n >= 0.
// Stage 2 (Prepare): empty matrices with the source schemas.
// Stage 3 (Execute): n draws; each index feeds both outputs.
// Errors:
//   - ErrInvalidArgument: nil src (including a nil *random.RNG), nil
//     features/labels, row counts differ, n < 0.
//   - ErrEmptyInput: n > 0 and the sources have no rows.
//   - wrapped matrix errors if a source holds an incomplete staging row.
//
// Complexity: Time O(n*(cf+cl)), Space O(n*(cf+cl)).
func Bootstrap(src random.Source, features, labels *matrix.Matrix, n int) (*Sample, error) {
	// Stage 1 (Validate)
	if err := random.ValidateSource(src); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opBootstrap, ErrInvalidArgument, err)
	}
	if features == nil || labels == nil {
		return nil, vectorErrorf(opBootstrap, ErrInvalidArgument)
	}
	rows := features.NumRows()
	if rows != labels.NumRows() || n < 0 || uint64(rows) > math.MaxUint32 {
		return nil, vectorErrorf(opBootstrap, ErrInvalidArgument)
	}
	if rows == 0 && n > 0 {
		return nil, vectorErrorf(opBootstrap, ErrEmptyInput)
	}

	// Stage 2 (Prepare)
	fs, err := matrix.EmptyLike(features, matrix.WithCapacity(n))
	if err != nil {
		return nil, vectorErrorf(opBootstrap, err)
	}
	ls, err := matrix.EmptyLike(labels, matrix.WithCapacity(n))
	if err != nil {
		return nil, vectorErrorf(opBootstrap, err)
	}
	s := &Sample{
		Features:   fs,
		Labels:     ls,
		Indices:    make([]int, n),
		InBag:      roaring.New(),
		population: rows,
	}

	// Stage 3 (Execute)
	for k := 0; k < n; k++ {
		idx := src.Intn(rows)
		f, err := features.RowView(idx)
		if err != nil {
			return nil, vectorErrorf(opBootstrap, err)
		}
		l, err := labels.RowView(idx)
		if err != nil {
			return nil, vectorErrorf(opBootstrap, err)
		}
		if err = fs.AddRow(f); err != nil {
			return nil, vectorErrorf(opBootstrap, err)
		}
		if err = ls.AddRow(l); err != nil {
			return nil, vectorErrorf(opBootstrap, err)
		}
		s.Indices[k] = idx
		s.InBag.Add(uint32(idx))
	}

	return s, nil
}
