// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for the table and its statistics.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sawyercade/DataMining2013F/matrix"
)

// unk is shorthand for the missing-value sentinel in fixtures.
var unk = matrix.UnknownValue

// cont returns Continuous attributes named name.
func cont(name string) matrix.ColumnAttributes {
	return matrix.NewColumnAttributes(name, matrix.Continuous)
}

// cat returns Categorical attributes named name.
func cat(name string) matrix.ColumnAttributes {
	return matrix.NewColumnAttributes(name, matrix.Categorical)
}

// MustTable builds a Matrix with the given schema and rows or fails the test.
func MustTable(t *testing.T, cols []matrix.ColumnAttributes, rows ...[]float64) *matrix.Matrix {
	t.Helper()

	m := matrix.New()
	for _, a := range cols {
		require.NoError(t, m.AddColumn(a))
	}
	for _, r := range rows {
		require.NoError(t, m.AddRow(r))
	}
	return m
}

// Column builds a single-column table named "x" of type typ.
func Column(t *testing.T, typ matrix.ColumnType, vals ...float64) *matrix.Matrix {
	t.Helper()

	rows := make([][]float64, len(vals))
	for i, v := range vals {
		rows[i] = []float64{v}
	}
	return MustTable(t, []matrix.ColumnAttributes{matrix.NewColumnAttributes("x", typ)}, rows...)
}

// MustRow returns a copy of row i or fails the test.
func MustRow(t *testing.T, m *matrix.Matrix, i int) []float64 {
	t.Helper()

	row, err := m.Row(i)
	require.NoError(t, err)
	return row
}
