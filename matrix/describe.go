// SPDX-License-Identifier: MIT

// Package matrix - per-column summaries.
//
// Describe fans the per-column work out over an errgroup bounded by
// WithDescribeConcurrency (GOMAXPROCS by default). Workers only read the
// matrix; the caller must not mutate it while Describe runs.

package matrix

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ColumnSummary holds the statistics of one column. Mean, Min and Max are
// UnknownValue for Categorical columns and for columns without known values.
type ColumnSummary struct {
	Name    string
	Type    ColumnType
	Known   int
	Missing int
	Mean    float64
	Min     float64
	Max     float64
	Mode    float64
}

// Describe summarizes every column. It returns ctx.Err() if the context is
// cancelled before all columns are done.
// Complexity: O(r*c) total work, spread over the worker limit.
func (m *Matrix) Describe(ctx context.Context) ([]ColumnSummary, error) {
	m.ensureDefaults()
	if i, err := m.validateComplete(); err != nil {
		return nil, rowErrorf(opDescribe, i, err)
	}

	out := make([]ColumnSummary, len(m.cols))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.opts.concurrency)

	for c := range m.cols {
		c := c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := m.summarize(c)
			if err != nil {
				return err
			}
			out[c] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, matrixErrorf(opDescribe, err)
	}

	m.log.Debug("described matrix", "rows", len(m.rows), "columns", len(m.cols))
	return out, nil
}

// summarize computes the ColumnSummary of column c.
func (m *Matrix) summarize(c int) (ColumnSummary, error) {
	a := m.cols[c]
	s := ColumnSummary{
		Name: a.name,
		Type: a.typ,
		Mean: UnknownValue,
		Min:  UnknownValue,
		Max:  UnknownValue,
	}

	var err error
	if s.Known, err = m.KnownCount(c); err != nil {
		return s, err
	}
	s.Missing = len(m.rows) - s.Known
	if s.Mode, err = m.MostCommonValue(c); err != nil {
		return s, err
	}
	if a.typ != Continuous {
		return s, nil
	}
	if s.Mean, err = m.ColumnMean(c); err != nil {
		return s, err
	}
	if s.Min, err = m.ColumnMin(c); err != nil {
		return s, err
	}
	if s.Max, err = m.ColumnMax(c); err != nil {
		return s, err
	}

	return s, nil
}
