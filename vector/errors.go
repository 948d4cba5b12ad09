// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
//
// Error policy:
//   - Only sentinel variables (package-level) are exposed.
//   - Callers use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach the operation tag with %w (vectorErrorf).

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates operands of different lengths, or a point
	// whose length differs from a matrix's column count.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrEmptyInput indicates that an operation needs at least one eligible
	// row and none exists.
	ErrEmptyInput = errors.New("vector: no eligible rows")

	// ErrInvalidArgument indicates an invalid combination of inputs: a nil
	// matrix or source, mismatched feature/label row counts, or a negative
	// sample size.
	ErrInvalidArgument = errors.New("vector: invalid argument")
)

// vectorErrorf wraps err with an operation tag.
func vectorErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// sizeErrorf reports a length mismatch with both sizes, as |A| and |B|.
func sizeErrorf(op string, a, b int) error {
	return fmt.Errorf("%s: |A|=%d, |B|=%d: %w", op, a, b, ErrDimensionMismatch)
}
