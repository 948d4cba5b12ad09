// SPDX-License-Identifier: MIT

// Package matrix - typed row-major table & schema accessors.
//
// Purpose:
//   - Hold observations as rows of float64 with a per-column schema (ColumnAttributes).
//   - Enforce the two-phase lifecycle: Building (columns may be added, no rows)
//     and Populated (rows present, schema frozen). There is no way back.
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//
// Ownership:
//   - A Matrix exclusively owns its rows and schema. AddRow copies its input and
//     Row returns a copy; RowView exposes the owned slice for read-only scans.
//
// Concurrency:
//   - Not internally synchronized. Callers impose single-writer discipline.
//
// Complexity quicksheet:
//   - NumRows/NumCols/AddColumn: O(1); AddRow: O(c) amortized; Clone: O(r*c).

package matrix

import "log/slog"

// ---------- error context tags ----------

const (
	opAddColumn     = "AddColumn"
	opAddRow        = "AddRow"
	opAppendToRow   = "AppendToRow"
	opRow           = "Row"
	opRowView       = "RowView"
	opAt            = "At"
	opSet           = "Set"
	opSwapRows      = "SwapRows"
	opColumnAttrs   = "ColumnAttributes"
	opEmptyLike     = "EmptyLike"
	opColumnMean    = "ColumnMean"
	opColumnMin     = "ColumnMin"
	opColumnMax     = "ColumnMax"
	opMostCommon    = "MostCommonValue"
	opKnownCount    = "KnownCount"
	opMissingRows   = "MissingRows"
	opImputeMissing = "ImputeMissing"
	opDescribe      = "Describe"
	opToDense       = "ToDense"
	opFromDense     = "FromDense"
	opToDataFrame   = "ToDataFrame"
)

// Matrix is a row-major table of float64 values with typed columns.
// The zero value is an empty Matrix with default options.
type Matrix struct {
	cols []ColumnAttributes // schema; frozen once len(rows) > 0
	rows [][]float64        // each complete row has len(cols) entries
	opts Options            // resolved configuration
	log  *slog.Logger       // opts.logger, cached
}

// New returns an empty Matrix in the Building phase.
// Complexity: O(capacity) for the optional preallocation.
func New(opts ...Option) *Matrix {
	o := gatherOptions(opts...)
	return &Matrix{
		rows: make([][]float64, 0, o.capacity),
		opts: o,
		log:  o.logger,
	}
}

// EmptyLike returns a new Matrix with a copy of src's schema and options
// and no rows. Extra opts are applied on top of src's options.
// Complexity: O(c).
func EmptyLike(src *Matrix, opts ...Option) (*Matrix, error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, matrixErrorf(opEmptyLike, err)
	}
	src.ensureDefaults()
	o := src.opts
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	cols := make([]ColumnAttributes, len(src.cols))
	copy(cols, src.cols)

	return &Matrix{
		cols: cols,
		rows: make([][]float64, 0, o.capacity),
		opts: o,
		log:  o.logger,
	}, nil
}

// Clone returns a deep copy of the matrix: schema, rows and options.
// Complexity: O(r*c).
func (m *Matrix) Clone() *Matrix {
	cols := make([]ColumnAttributes, len(m.cols))
	copy(cols, m.cols)

	// one backing buffer for all complete rows; staging rows keep their own length
	total := 0
	for _, row := range m.rows {
		total += len(row)
	}
	buf := make([]float64, total)
	rows := make([][]float64, len(m.rows), cap(m.rows))
	off := 0
	for i, row := range m.rows {
		n := copy(buf[off:], row)
		rows[i] = buf[off : off+n : off+n]
		off += n
	}

	return &Matrix{cols: cols, rows: rows, opts: m.opts, log: m.log}
}

// NumRows returns the number of rows, including staging rows.
// Complexity: O(1).
func (m *Matrix) NumRows() int {
	return len(m.rows)
}

// NumCols returns the number of declared columns.
// Complexity: O(1).
func (m *Matrix) NumCols() int {
	return len(m.cols)
}

// Frozen reports whether the schema is frozen (at least one row exists).
func (m *Matrix) Frozen() bool {
	return len(m.rows) > 0
}

// AddColumn appends attrs as the next column. The new column's index is the
// previous NumCols(). Fails with ErrSchemaFrozen once any row exists.
// Complexity: O(1) amortized.
func (m *Matrix) AddColumn(attrs ColumnAttributes) error {
	if m.Frozen() {
		return matrixErrorf(opAddColumn, ErrSchemaFrozen)
	}
	m.cols = append(m.cols, attrs)
	return nil
}

// Columns returns a copy of the schema.
func (m *Matrix) Columns() []ColumnAttributes {
	out := make([]ColumnAttributes, len(m.cols))
	copy(out, m.cols)
	return out
}

// ColumnAttributes returns the attributes of column c.
func (m *Matrix) ColumnAttributes(c int) (ColumnAttributes, error) {
	if err := m.validateColIndex(c); err != nil {
		return ColumnAttributes{}, colErrorf(opColumnAttrs, c, err)
	}
	return m.cols[c], nil
}

// ColumnType returns the type of column c.
func (m *Matrix) ColumnType(c int) (ColumnType, error) {
	a, err := m.ColumnAttributes(c)
	if err != nil {
		return 0, err
	}
	return a.typ, nil
}

// IsCategorical reports whether column c is Categorical.
func (m *Matrix) IsCategorical(c int) (bool, error) {
	t, err := m.ColumnType(c)
	if err != nil {
		return false, err
	}
	return t == Categorical, nil
}

// IsContinuous reports whether column c is Continuous.
func (m *Matrix) IsContinuous(c int) (bool, error) {
	t, err := m.ColumnType(c)
	if err != nil {
		return false, err
	}
	return t == Continuous, nil
}

// freeze logs the Building -> Populated transition. Called before the first
// row is appended.
func (m *Matrix) freeze() {
	m.ensureDefaults()
	if len(m.rows) == 0 {
		m.log.Debug("matrix schema frozen", "columns", len(m.cols))
	}
}

// ensureDefaults resolves default options for a zero-value Matrix.
func (m *Matrix) ensureDefaults() {
	if m.log == nil {
		m.opts = defaultOptions()
		m.log = m.opts.logger
	}
}
