// SPDX-License-Identifier: MIT

// Package matrix provides a small in-memory table with typed columns for
// preparing data for machine-learning routines.
//
// The package provides:
//
//   - Matrix: a row-major table of float64 whose columns are described by
//     ColumnAttributes (name + Categorical/Continuous type).
//   - A two-phase lifecycle: columns are declared while the table is empty;
//     the first row freezes the schema (ErrSchemaFrozen afterwards).
//   - Column statistics (ColumnMean, ColumnMin, ColumnMax, MostCommonValue)
//     that skip the UnknownValue sentinel, plus MissingRows, ImputeMissing
//     and a concurrent Describe.
//   - Interop with gonum (*mat.Dense) and gota (DataFrame).
//
// Errors are package-level sentinels matched with errors.Is.
// A Matrix is not safe for concurrent mutation.
package matrix
