// SPDX-License-Identifier: MIT

// Package matrix - row ingestion & cell access.
//
// Purpose:
//   - AddRow is the primary, shape-checked ingestion path.
//   - AddEmptyRow/AppendToRow are a staging pair for building a row one value
//     at a time. Do not mix them with AddRow on the same logical row; full-table
//     scans (statistics, exports) fail with ErrDimensionMismatch while any
//     staging row is incomplete.
//
// Numeric policy:
//   - NaN is rejected everywhere (ErrInvalidValue); UnknownValue (-Inf) is legal.
//   - +Inf is rejected only under WithFiniteValues.

package matrix

// AddRow appends a copy of row.
// Stage 1 (Validate): len(row) == NumCols() and every entry passes the value policy.
// Stage 2 (Execute): copy and append; the first row freezes the schema.
// Errors: ErrDimensionMismatch, ErrInvalidValue.
// Complexity: O(c) amortized.
func (m *Matrix) AddRow(row []float64) error {
	// Stage 1 (Validate)
	if j, err := m.validateRow(row); err != nil {
		if j < 0 {
			return matrixErrorf(opAddRow, err)
		}
		return cellErrorf(opAddRow, len(m.rows), j, err)
	}

	// Stage 2 (Execute)
	m.freeze()
	owned := make([]float64, len(row))
	copy(owned, row)
	m.rows = append(m.rows, owned)

	return nil
}

// AddEmptyRow appends a zero-length staging row, bypassing the shape check,
// and returns its index. Fill it with AppendToRow. Freezes the schema.
// Complexity: O(1) amortized.
func (m *Matrix) AddEmptyRow() int {
	m.freeze()
	m.rows = append(m.rows, make([]float64, 0, len(m.cols)))
	return len(m.rows) - 1
}

// AppendToRow appends v to row i. Fails with ErrDimensionMismatch if the row
// already holds NumCols() values.
// Complexity: O(1) amortized.
func (m *Matrix) AppendToRow(i int, v float64) error {
	if err := m.validateRowIndex(i); err != nil {
		return rowErrorf(opAppendToRow, i, err)
	}
	j := len(m.rows[i])
	if j >= len(m.cols) {
		return cellErrorf(opAppendToRow, i, j, ErrDimensionMismatch)
	}
	if err := ValidateValue(v, m.opts.finiteValues); err != nil {
		return cellErrorf(opAppendToRow, i, j, err)
	}
	m.rows[i] = append(m.rows[i], v)

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Matrix) Row(i int) ([]float64, error) {
	if err := m.validateRowIndex(i); err != nil {
		return nil, rowErrorf(opRow, i, err)
	}
	out := make([]float64, len(m.rows[i]))
	copy(out, m.rows[i])
	return out, nil
}

// RowView returns row i without copying. The slice is owned by the matrix:
// callers must not modify it or retain it across mutations.
// Complexity: O(1).
func (m *Matrix) RowView(i int) ([]float64, error) {
	if err := m.validateRowIndex(i); err != nil {
		return nil, rowErrorf(opRowView, i, err)
	}
	return m.rows[i], nil
}

// At returns the value at (i, c).
// Complexity: O(1).
func (m *Matrix) At(i, c int) (float64, error) {
	if err := m.validateRowIndex(i); err != nil {
		return 0, cellErrorf(opAt, i, c, err)
	}
	if c < 0 || c >= len(m.rows[i]) {
		return 0, cellErrorf(opAt, i, c, ErrOutOfRange)
	}
	return m.rows[i][c], nil
}

// Set assigns v at (i, c) under the value policy. UnknownValue is accepted.
// Complexity: O(1).
func (m *Matrix) Set(i, c int, v float64) error {
	if err := m.validateRowIndex(i); err != nil {
		return cellErrorf(opSet, i, c, err)
	}
	if c < 0 || c >= len(m.rows[i]) {
		return cellErrorf(opSet, i, c, ErrOutOfRange)
	}
	if err := ValidateValue(v, m.opts.finiteValues); err != nil {
		return cellErrorf(opSet, i, c, err)
	}
	m.rows[i][c] = v

	return nil
}

// SwapRows exchanges rows i and j in place. i == j is a no-op.
// Complexity: O(1).
func (m *Matrix) SwapRows(i, j int) error {
	if err := m.validateRowIndex(i); err != nil {
		return cellErrorf(opSwapRows, i, j, err)
	}
	if err := m.validateRowIndex(j); err != nil {
		return cellErrorf(opSwapRows, i, j, err)
	}
	m.rows[i], m.rows[j] = m.rows[j], m.rows[i]

	return nil
}
