// SPDX-License-Identifier: MIT

// Package matrix: column metadata types.
// ColumnAttributes is an immutable value: fields are unexported and only
// readable through accessors, so a schema entry cannot change after it is
// attached to a matrix.
package matrix

import (
	"fmt"
	"math"
)

// UnknownValue is the reserved sentinel for a missing entry. It is a legal
// cell value and is skipped by every statistic. Use IsUnknown to test for it.
var UnknownValue = math.Inf(-1)

// IsUnknown reports whether v is the UnknownValue sentinel.
func IsUnknown(v float64) bool {
	return math.IsInf(v, -1)
}

// ColumnType classifies the values held by a column.
type ColumnType int

const (
	// Categorical columns hold discrete, label-like codes.
	Categorical ColumnType = iota
	// Continuous columns hold real values and support mean/min/max.
	Continuous
)

// String implements fmt.Stringer.
func (t ColumnType) String() string {
	switch t {
	case Categorical:
		return "Categorical"
	case Continuous:
		return "Continuous"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
}

// valid reports whether t is one of the declared column types.
func (t ColumnType) valid() bool {
	return t == Categorical || t == Continuous
}

// ColumnAttributes describes one column: its name and its type.
type ColumnAttributes struct {
	name string     // label used by exports and summaries
	typ  ColumnType // Categorical or Continuous
}

// NewColumnAttributes returns attributes for a column.
// Panics if typ is not Categorical or Continuous (programmer error).
func NewColumnAttributes(name string, typ ColumnType) ColumnAttributes {
	if !typ.valid() {
		panic(fmt.Sprintf(panicColumnTypeInvalid, int(typ)))
	}
	return ColumnAttributes{name: name, typ: typ}
}

// Name returns the column label.
func (a ColumnAttributes) Name() string { return a.name }

// Type returns the column type.
func (a ColumnAttributes) Type() ColumnType { return a.typ }

// String implements fmt.Stringer, e.g. "age(Continuous)".
func (a ColumnAttributes) String() string {
	return fmt.Sprintf("%s(%s)", a.name, a.typ)
}
