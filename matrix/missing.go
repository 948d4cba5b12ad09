// SPDX-License-Identifier: MIT

// Package matrix - missing-value helpers.
//
// Purpose:
//   - Locate UnknownValue cells per column as a compressed row-index set.
//   - Impute unknown cells from the column statistics (mean for Continuous,
//     mode for Categorical), the usual preprocessing step before handing the
//     table to a learner that cannot cope with missing data.

package matrix

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// MissingRows returns the indices of rows whose value in column c is
// UnknownValue.
// Errors: ErrOutOfRange, ErrDimensionMismatch (staging row), ErrOutOfRange
// when the row count exceeds the uint32 index space.
// Complexity: O(r).
func (m *Matrix) MissingRows(c int) (*roaring.Bitmap, error) {
	if err := m.validateColIndex(c); err != nil {
		return nil, colErrorf(opMissingRows, c, err)
	}
	if i, err := m.validateComplete(); err != nil {
		return nil, rowErrorf(opMissingRows, i, err)
	}
	if uint64(len(m.rows)) > math.MaxUint32 {
		return nil, matrixErrorf(opMissingRows, ErrOutOfRange)
	}

	bm := roaring.New()
	for i, row := range m.rows {
		if IsUnknown(row[c]) {
			bm.Add(uint32(i))
		}
	}

	return bm, nil
}

// ImputeMissing replaces every UnknownValue cell with its column's mean
// (Continuous) or most common value (Categorical) and returns the number of
// cells replaced. Columns with no known value are left untouched.
// Stage 1 (Validate): complete rows.
// Stage 2 (Prepare): compute all fill values before any write, so a column's
// fill never observes values imputed earlier in the same call.
// Stage 3 (Execute): write fills via the missing-row sets.
// Complexity: O(r*c).
func (m *Matrix) ImputeMissing() (int, error) {
	// Stage 1 (Validate)
	m.ensureDefaults()
	if i, err := m.validateComplete(); err != nil {
		return 0, rowErrorf(opImputeMissing, i, err)
	}

	// Stage 2 (Prepare)
	fills := make([]float64, len(m.cols))
	missing := make([]*roaring.Bitmap, len(m.cols))
	var err error
	for c, a := range m.cols {
		if a.typ == Continuous {
			fills[c], err = m.ColumnMean(c)
		} else {
			fills[c], err = m.MostCommonValue(c)
		}
		if err != nil {
			return 0, matrixErrorf(opImputeMissing, err)
		}
		if missing[c], err = m.MissingRows(c); err != nil {
			return 0, matrixErrorf(opImputeMissing, err)
		}
	}

	// Stage 3 (Execute)
	replaced := 0
	for c, bm := range missing {
		if IsUnknown(fills[c]) || bm.IsEmpty() {
			continue
		}
		it := bm.Iterator()
		for it.HasNext() {
			m.rows[it.Next()][c] = fills[c]
			replaced++
		}
	}

	m.log.Debug("imputed missing values", "replaced", replaced, "columns", len(m.cols))
	return replaced, nil
}
