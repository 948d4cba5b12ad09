// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for index, shape and value checks.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import "math"

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	return nil
}

// ValidateValue checks a single cell value against the numeric policy:
// NaN is always invalid; +Inf is invalid when finite is true.
// Complexity: O(1).
func ValidateValue(v float64, finite bool) error {
	if math.IsNaN(v) {
		return ErrInvalidValue
	}
	if finite && math.IsInf(v, 1) {
		return ErrInvalidValue
	}
	return nil
}

// validateRowIndex ensures 0 <= i < NumRows().
func (m *Matrix) validateRowIndex(i int) error {
	if i < 0 || i >= len(m.rows) {
		return ErrOutOfRange
	}
	return nil
}

// validateColIndex ensures 0 <= c < NumCols().
func (m *Matrix) validateColIndex(c int) error {
	if c < 0 || c >= len(m.cols) {
		return ErrOutOfRange
	}
	return nil
}

// validateRow checks length and every entry of a candidate row.
// Returns the offending column index alongside the error (-1 for shape).
// Complexity: O(len(row)).
func (m *Matrix) validateRow(row []float64) (int, error) {
	if len(row) != len(m.cols) {
		return -1, ErrDimensionMismatch
	}
	for j, v := range row {
		if err := ValidateValue(v, m.opts.finiteValues); err != nil {
			return j, err
		}
	}
	return -1, nil
}

// validateComplete ensures every row has the full column count. Staging rows
// created by AddEmptyRow fail this check until they are filled.
// Returns the first incomplete row index alongside the error.
// Complexity: O(r).
func (m *Matrix) validateComplete() (int, error) {
	n := len(m.cols)
	for i, row := range m.rows {
		if len(row) != n {
			return i, ErrDimensionMismatch
		}
	}
	return -1, nil
}

// validateContinuous ensures column c exists and is Continuous.
func (m *Matrix) validateContinuous(c int) error {
	if err := m.validateColIndex(c); err != nil {
		return err
	}
	if m.cols[c].typ != Continuous {
		return ErrColumnType
	}
	return nil
}
