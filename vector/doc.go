// SPDX-License-Identifier: MIT

// Package vector provides stateless operations over points ([]float64) and
// over the rows of a matrix.Matrix:
//
//   - magnitude and Euclidean distance (plain and squared),
//   - linear combination (Add, Subtract, AddAndMultiply, SubtractAndMultiply,
//     and the general Combine they all specialize),
//   - nearest/furthest row search (ClosestPoint skips rows identical to the
//     query, to find the nearest distinct neighbor),
//   - bootstrap resampling of paired feature/label matrices.
//
// Binary operations require equal lengths and never truncate or pad; a
// mismatch fails with ErrDimensionMismatch. Randomness comes only from the
// random.Source passed in by the caller.
package vector
