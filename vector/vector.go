// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Magnitude/distance and linear-combination kernels over []float64.
//   - Every combination is a specialization of Combine:
//     Combine(a, α, b, β, s) = s·(α·a + β·b), element-wise.
//
// Determinism:
//   - Fixed 0..n-1 traversal; results are fresh slices, inputs are never mutated.

package vector

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	opDistance        = "Distance"
	opSquaredDistance = "SquaredDistance"
	opCombine         = "Combine"
	opFurthestPoint   = "FurthestPoint"
	opClosestPoint    = "ClosestPoint"
	opBootstrap       = "Bootstrap"
)

// SquaredMagnitude returns Σ pᵢ².
// Complexity: O(n).
func SquaredMagnitude(p []float64) float64 {
	return floats.Dot(p, p)
}

// Magnitude returns the Euclidean length of p.
// Complexity: O(n).
func Magnitude(p []float64) float64 {
	return math.Sqrt(SquaredMagnitude(p))
}

// SquaredDistance returns the squared Euclidean distance between a and b.
// Errors: ErrDimensionMismatch if len(a) != len(b).
// Complexity: O(n).
func SquaredDistance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, sizeErrorf(opSquaredDistance, len(a), len(b))
	}
	var sum, d float64
	for i := range a {
		d = a[i] - b[i]
		sum += d * d
	}
	return sum, nil
}

// Distance returns the Euclidean distance between a and b.
// Errors: ErrDimensionMismatch if len(a) != len(b).
// Complexity: O(n).
func Distance(a, b []float64) (float64, error) {
	sq, err := SquaredDistance(a, b)
	if err != nil {
		return 0, vectorErrorf(opDistance, err)
	}
	return math.Sqrt(sq), nil
}

// Add returns a + b.
func Add(a, b []float64) ([]float64, error) {
	return Combine(a, 1, b, 1, 1)
}

// Subtract returns a − b.
func Subtract(a, b []float64) ([]float64, error) {
	return Combine(a, 1, b, -1, 1)
}

// AddAndMultiply returns scalar·(a + b).
func AddAndMultiply(a, b []float64, scalar float64) ([]float64, error) {
	return Combine(a, 1, b, 1, scalar)
}

// SubtractAndMultiply returns scalar·(a − b).
func SubtractAndMultiply(a, b []float64, scalar float64) ([]float64, error) {
	return Combine(a, 1, b, -1, scalar)
}

// Combine returns scalar·(coefA·a + coefB·b) as a new slice.
// Errors: ErrDimensionMismatch if len(a) != len(b).
// Complexity: Time O(n), Space O(n).
func Combine(a []float64, coefA float64, b []float64, coefB, scalar float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, sizeErrorf(opCombine, len(a), len(b))
	}
	out := make([]float64, len(a))
	floats.ScaleTo(out, coefA, a)
	floats.AddScaled(out, coefB, b)
	floats.Scale(scalar, out)
	return out, nil
}
