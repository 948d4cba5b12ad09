// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column statistics with missing-value semantics: every statistic skips
//     UnknownValue entries and reports UnknownValue when nothing is left.
//   - Statistics are computed on demand from current state; nothing is cached.
//
// Exposed API:
//   - ColumnMean(c)      -> mean of known values        (Continuous only)
//   - ColumnMin(c)       -> min of known values         (Continuous only)
//   - ColumnMax(c)       -> max of known values         (Continuous only)
//   - MostCommonValue(c) -> mode of known values        (any column type)
//   - KnownCount(c)      -> number of known values      (any column type)
//
// Determinism:
//   - Fixed row-order traversal. MostCommonValue breaks ties by the value
//     first seen in row order; map iteration order never leaks into results.

package matrix

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// knownValues collects the non-unknown values of column c in row order.
// Stage 1 (Validate): column index (and Continuous type when required), complete rows.
// Stage 2 (Execute): single pass over rows.
// Complexity: Time O(r), Space O(r).
func (m *Matrix) knownValues(op string, c int, continuousOnly bool) ([]float64, error) {
	// Stage 1 (Validate)
	var err error
	if continuousOnly {
		err = m.validateContinuous(c)
	} else {
		err = m.validateColIndex(c)
	}
	if err != nil {
		return nil, colErrorf(op, c, err)
	}
	if i, err := m.validateComplete(); err != nil {
		return nil, rowErrorf(op, i, err)
	}

	// Stage 2 (Execute)
	out := make([]float64, 0, len(m.rows))
	for _, row := range m.rows {
		if v := row[c]; !IsUnknown(v) {
			out = append(out, v)
		}
	}

	return out, nil
}

// ColumnMean returns the arithmetic mean of the known values of column c.
// Returns UnknownValue when the column holds no known value (including a
// matrix with zero rows).
// Errors: ErrOutOfRange, ErrColumnType, ErrDimensionMismatch (staging row).
// Complexity: O(r).
func (m *Matrix) ColumnMean(c int) (float64, error) {
	vals, err := m.knownValues(opColumnMean, c, true)
	if err != nil {
		return 0, err
	}
	if len(vals) == 0 {
		return UnknownValue, nil
	}
	return stat.Mean(vals, nil), nil
}

// ColumnMin returns the smallest known value of column c, or UnknownValue if
// every entry is unknown.
// Errors: ErrOutOfRange, ErrColumnType, ErrDimensionMismatch (staging row).
// Complexity: O(r).
func (m *Matrix) ColumnMin(c int) (float64, error) {
	vals, err := m.knownValues(opColumnMin, c, true)
	if err != nil {
		return 0, err
	}
	if len(vals) == 0 {
		return UnknownValue, nil
	}
	return floats.Min(vals), nil
}

// ColumnMax returns the largest known value of column c, or UnknownValue if
// every entry is unknown.
// Errors: ErrOutOfRange, ErrColumnType, ErrDimensionMismatch (staging row).
// Complexity: O(r).
func (m *Matrix) ColumnMax(c int) (float64, error) {
	vals, err := m.knownValues(opColumnMax, c, true)
	if err != nil {
		return 0, err
	}
	if len(vals) == 0 {
		return UnknownValue, nil
	}
	return floats.Max(vals), nil
}

// MostCommonValue returns the known value of column c with the highest
// count. Ties go to the value seen first in row order. Returns UnknownValue
// if every entry is unknown. Works for both column types.
// Errors: ErrOutOfRange, ErrDimensionMismatch (staging row).
// Complexity: Time O(r), Space O(distinct values).
func (m *Matrix) MostCommonValue(c int) (float64, error) {
	vals, err := m.knownValues(opMostCommon, c, false)
	if err != nil {
		return 0, err
	}
	if len(vals) == 0 {
		return UnknownValue, nil
	}

	// count per value; order remembers first appearance for the tie-break
	counts := make(map[float64]int, len(vals))
	order := make([]float64, 0, len(vals))
	for _, v := range vals {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	best, bestCount := UnknownValue, 0
	for _, v := range order {
		if n := counts[v]; n > bestCount {
			best, bestCount = v, n
		}
	}

	return best, nil
}

// KnownCount returns the number of entries in column c that are not
// UnknownValue.
// Complexity: O(r).
func (m *Matrix) KnownCount(c int) (int, error) {
	if err := m.validateColIndex(c); err != nil {
		return 0, colErrorf(opKnownCount, c, err)
	}
	if i, err := m.validateComplete(); err != nil {
		return 0, rowErrorf(opKnownCount, i, err)
	}
	n := 0
	for _, row := range m.rows {
		if !IsUnknown(row[c]) {
			n++
		}
	}
	return n, nil
}
