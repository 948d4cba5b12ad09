// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations return these sentinels (possibly wrapped with an
// operation tag) and tests check them via errors.Is. No operation panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for consistency. Sentinels are
// wrapped with the operation tag via matrixErrorf; callers match with errors.Is.

var (
	// ErrSchemaFrozen is returned when a column is added after the first row.
	ErrSchemaFrozen = errors.New("matrix: schema is frozen once rows exist")

	// ErrDimensionMismatch indicates a row whose length differs from the column
	// count, or an incomplete staging row met by a full-table scan.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidValue indicates a NaN entry (or +Inf under WithFiniteValues).
	// UnknownValue is not an invalid value.
	ErrInvalidValue = errors.New("matrix: invalid value")

	// ErrColumnType indicates a statistic requested on a column whose type
	// does not support it (e.g. the mean of a categorical column).
	ErrColumnType = errors.New("matrix: unsupported column type")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Matrix was passed as an argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrEmptyMatrix is returned by exports that cannot represent a matrix
	// with zero rows or zero columns.
	ErrEmptyMatrix = errors.New("matrix: empty matrix")
)

// matrixErrorf wraps err with an operation tag: "<op>: <err>".
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// cellErrorf wraps err with an operation tag and the offending coordinates.
func cellErrorf(op string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", op, row, col, err)
}

// colErrorf wraps err with an operation tag and the offending column.
func colErrorf(op string, col int, err error) error {
	return fmt.Errorf("%s(col=%d): %w", op, col, err)
}

// rowErrorf wraps err with an operation tag and the offending row.
func rowErrorf(op string, row int, err error) error {
	return fmt.Errorf("%s(row=%d): %w", op, row, err)
}
