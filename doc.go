// Package datamining prepares tabular data for machine-learning routines.
//
// It is organized under three subpackages:
//
//	matrix/: typed row-major table (Categorical/Continuous columns), column
//	          statistics with missing-value handling, imputation, gonum/gota interop
//	vector/: distance and linear-combination helpers, nearest/furthest row
//	          search, bootstrap sampling of paired feature/label tables
//	random/: seedable uniform-draw source passed explicitly to sampling code
//
// Quick example:
//
//	m := matrix.New()
//	_ = m.AddColumn(matrix.NewColumnAttributes("height", matrix.Continuous))
//	_ = m.AddRow([]float64{1.8})
//	mean, _ := m.ColumnMean(0)
//
// Missing entries are stored as matrix.UnknownValue and skipped by every
// statistic.
package datamining
