// SPDX-License-Identifier: MIT

// Package matrix - interop with the gonum and gota ecosystems.
//
// Purpose:
//   - ToDense/FromDense bridge to *mat.Dense, the input type most Go learners
//     (fitters, predictors, transformers) accept.
//   - ToDataFrame exports to a gota DataFrame for exploratory work.
//
// Policy:
//   - ToDense copies values verbatim; UnknownValue stays -Inf, so impute first
//     if the downstream routine cannot handle it.
//   - ToDataFrame maps UnknownValue to NaN (Continuous) or NA (Categorical).

package matrix

import (
	"math"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/mat"
)

// naString is the literal gota parses as NA in string series.
const naString = "NaN"

// ToDense copies the matrix into a new r×c *mat.Dense.
// Errors: ErrEmptyMatrix for zero rows or zero columns (mat.Dense cannot hold
// them), ErrDimensionMismatch for an incomplete staging row.
// Complexity: O(r*c).
func (m *Matrix) ToDense() (*mat.Dense, error) {
	r, c := len(m.rows), len(m.cols)
	if r == 0 || c == 0 {
		return nil, matrixErrorf(opToDense, ErrEmptyMatrix)
	}
	if i, err := m.validateComplete(); err != nil {
		return nil, rowErrorf(opToDense, i, err)
	}

	data := make([]float64, r*c)
	for i, row := range m.rows {
		copy(data[i*c:(i+1)*c], row)
	}

	return mat.NewDense(r, c, data), nil
}

// FromDense builds a Matrix with schema cols from the rows of d.
// Errors: ErrNilMatrix for a nil d, ErrDimensionMismatch if len(cols) differs
// from d's column count, ErrInvalidValue for NaN entries (or +Inf under WithFiniteValues).
// Complexity: O(r*c).
func FromDense(d mat.Matrix, cols []ColumnAttributes, opts ...Option) (*Matrix, error) {
	if d == nil {
		return nil, matrixErrorf(opFromDense, ErrNilMatrix)
	}
	r, c := d.Dims()
	if len(cols) != c {
		return nil, matrixErrorf(opFromDense, ErrDimensionMismatch)
	}

	m := New(append([]Option{WithCapacity(r)}, opts...)...)
	for _, a := range cols {
		if err := m.AddColumn(a); err != nil {
			return nil, matrixErrorf(opFromDense, err)
		}
	}

	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, d)
		if err := m.AddRow(row); err != nil {
			return nil, matrixErrorf(opFromDense, err)
		}
	}

	return m, nil
}

// ToDataFrame exports the matrix as a gota DataFrame, one series per column
// named after the column. Continuous columns become series.Float with NaN for
// unknowns; Categorical columns become series.String with NA for unknowns.
// Errors: ErrEmptyMatrix for a matrix without columns, ErrDimensionMismatch for
// an incomplete staging row, or the DataFrame's own construction error.
// Complexity: O(r*c).
func (m *Matrix) ToDataFrame() (dataframe.DataFrame, error) {
	if len(m.cols) == 0 {
		return dataframe.DataFrame{}, matrixErrorf(opToDataFrame, ErrEmptyMatrix)
	}
	if i, err := m.validateComplete(); err != nil {
		return dataframe.DataFrame{}, rowErrorf(opToDataFrame, i, err)
	}

	cols := make([]series.Series, len(m.cols))
	for c, a := range m.cols {
		if a.typ == Continuous {
			vals := make([]float64, len(m.rows))
			for i, row := range m.rows {
				if IsUnknown(row[c]) {
					vals[i] = math.NaN()
					continue
				}
				vals[i] = row[c]
			}
			cols[c] = series.New(vals, series.Float, a.name)
			continue
		}
		vals := make([]string, len(m.rows))
		for i, row := range m.rows {
			if IsUnknown(row[c]) {
				vals[i] = naString
				continue
			}
			vals[i] = strconv.FormatFloat(row[c], 'g', -1, 64)
		}
		cols[c] = series.New(vals, series.String, a.name)
	}

	df := dataframe.New(cols...)
	if df.Err != nil {
		return dataframe.DataFrame{}, matrixErrorf(opToDataFrame, df.Err)
	}

	return df, nil
}
