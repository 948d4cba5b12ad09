// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Brute-force furthest/closest row search by squared Euclidean distance.
//
// Behavior highlights:
//   - Rows are scanned in index order; the first extreme wins ties.
//   - A NaN distance (UnknownValue against UnknownValue) never beats a
//     comparable one. When no distance is comparable, the first eligible row
//     is returned: row 0 for FurthestPoint, the first row not equal to the
//     query for ClosestPoint. ClosestPoint accepts a distinct row at +Inf
//     distance when nothing nearer exists.
//   - The winner is returned as a copy; the matrix keeps ownership of its rows.

package vector

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/sawyercade/DataMining2013F/matrix"
)

// validateQuery checks the matrix/point pair shared by the searches.
func validateQuery(m *matrix.Matrix, point []float64) error {
	if m == nil {
		return ErrInvalidArgument
	}
	if len(point) != m.NumCols() {
		return ErrDimensionMismatch
	}
	if m.NumRows() == 0 {
		return ErrEmptyInput
	}
	return nil
}

// FurthestPoint returns a copy of the row of m with the greatest squared
// distance to point. The point itself may be returned if it is a row.
// Errors: ErrInvalidArgument (nil m), ErrDimensionMismatch, ErrEmptyInput.
// Complexity: O(r*c).
func FurthestPoint(m *matrix.Matrix, point []float64) ([]float64, error) {
	if err := validateQuery(m, point); err != nil {
		return nil, vectorErrorf(opFurthestPoint, err)
	}

	best, bestDist := -1, math.Inf(-1)
	for i := 0; i < m.NumRows(); i++ {
		row, err := m.RowView(i)
		if err != nil {
			return nil, vectorErrorf(opFurthestPoint, err)
		}
		d, err := SquaredDistance(point, row)
		if err != nil {
			return nil, vectorErrorf(opFurthestPoint, err)
		}
		if d > bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		// every distance was NaN; no row beats another, so the first wins
		best = 0
	}

	return m.Row(best)
}

// ClosestPoint returns a copy of the row of m with the smallest squared
// distance to point, skipping rows element-wise equal to point (the nearest
// distinct neighbor).
// Errors: ErrInvalidArgument (nil m), ErrDimensionMismatch, ErrEmptyInput when
// no row other than copies of point exists.
// Complexity: O(r*c).
func ClosestPoint(m *matrix.Matrix, point []float64) ([]float64, error) {
	if err := validateQuery(m, point); err != nil {
		return nil, vectorErrorf(opClosestPoint, err)
	}

	best, bestDist, first := -1, math.Inf(1), -1
	for i := 0; i < m.NumRows(); i++ {
		row, err := m.RowView(i)
		if err != nil {
			return nil, vectorErrorf(opClosestPoint, err)
		}
		if floats.Equal(row, point) {
			continue
		}
		if first < 0 {
			first = i
		}
		d, err := SquaredDistance(point, row)
		if err != nil {
			return nil, vectorErrorf(opClosestPoint, err)
		}
		if d < bestDist || (best < 0 && math.IsInf(d, 1)) {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		best = first // -1 only when every row equals point
	}
	if best < 0 {
		return nil, vectorErrorf(opClosestPoint, ErrEmptyInput)
	}

	return m.Row(best)
}
