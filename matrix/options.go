// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Matrix construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Derived matrices (EmptyLike, Clone, sampling results) inherit the
//     resolved Options of their source, including the logger.
package matrix

import (
	"io"
	"log/slog"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultFiniteValues controls whether +Inf is rejected on ingestion.
	// NaN is always rejected; -Inf is UnknownValue and always accepted.
	DefaultFiniteValues = false

	// DefaultCapacity is the initial row capacity hint.
	DefaultCapacity = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicLoggerNil         = "matrix: WithLogger(nil)"
	panicCapacityInvalid   = "matrix: WithCapacity: n must be >= 0"
	panicConcurrencyNonPos = "matrix: WithDescribeConcurrency: n must be > 0"
	panicColumnTypeInvalid = "matrix: NewColumnAttributes: invalid column type %d"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	logger       *slog.Logger // structured logger; discard by default
	finiteValues bool         // reject +Inf in AddRow/Set/AppendToRow
	capacity     int          // initial row capacity
	concurrency  int          // Describe worker limit; GOMAXPROCS by default
}

// WithLogger attaches a structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}
	return func(o *Options) {
		o.logger = l
	}
}

// WithFiniteValues rejects +Inf entries with ErrInvalidValue.
func WithFiniteValues() Option {
	return func(o *Options) {
		o.finiteValues = true
	}
}

// WithCapacity preallocates room for n rows. Panics if n < 0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityInvalid)
	}
	return func(o *Options) {
		o.capacity = n
	}
}

// WithDescribeConcurrency bounds the number of columns Describe summarizes
// in parallel. Panics if n <= 0.
func WithDescribeConcurrency(n int) Option {
	if n <= 0 {
		panic(panicConcurrencyNonPos)
	}
	return func(o *Options) {
		o.concurrency = n
	}
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		finiteValues: DefaultFiniteValues,
		capacity:     DefaultCapacity,
		concurrency:  runtime.GOMAXPROCS(0),
	}
}

// gatherOptions applies opts over the defaults in order; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
