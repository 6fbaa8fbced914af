// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Mul.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions, which applies options over defaults.
//
// Design goals:
//   - No option changes the numeric result. Workers, pool, threshold and
//     kernel only change how the same per-row sums are scheduled, except
//     that kernel choice may differ for NaN/±Inf inputs (see kernel.Select).
//   - No global mutable state; every call gathers its own Options.

package matrix

import (
	"log/slog"

	"github.com/katalvlaran/lvmat/internal/cpuinfo"
	"github.com/katalvlaran/lvmat/matrix/kernel"
	"github.com/katalvlaran/lvmat/parallel"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers is the sentinel meaning "one worker per logical core".
	DefaultWorkers = 0

	// DefaultMinParallelWork is the number of multiply-adds (m*k*n) below
	// which Mul stays on the calling goroutine.
	DefaultMinParallelWork = 64 * 64 * 64

	// DefaultKernel picks the accelerated kernel when the CPU supports it.
	DefaultKernel = kernel.Auto
)

// Option mutates Options. Options are applied in order; later wins.
type Option func(*Options)

// Options holds the resolved configuration of one Mul call.
type Options struct {
	workers         int
	pool            *parallel.Pool
	minParallelWork int
	kernel          kernel.Mode
	logger          *slog.Logger
	metrics         MetricsCollector
}

// WithWorkers sets the number of row ranges the output is split into.
// n == 1 runs sequentially. Ignored when WithPool is also given.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("matrix: WithWorkers(n) requires n >= 1")
	}

	return func(o *Options) { o.workers = n }
}

// WithPool runs the row ranges on a persistent worker pool instead of
// spawning goroutines per call. The pool size decides the split.
// Panics if p is nil.
func WithPool(p *parallel.Pool) Option {
	if p == nil {
		panic("matrix: WithPool(nil)")
	}

	return func(o *Options) { o.pool = p }
}

// WithMinParallelWork sets the m*k*n threshold under which Mul runs on the
// calling goroutine. 0 parallelizes everything. Panics if n < 0.
func WithMinParallelWork(n int) Option {
	if n < 0 {
		panic("matrix: WithMinParallelWork(n) requires n >= 0")
	}

	return func(o *Options) { o.minParallelWork = n }
}

// WithKernel selects the innermost kernel (see package kernel).
func WithKernel(mode kernel.Mode) Option {
	return func(o *Options) { o.kernel = mode }
}

// WithLogger routes Mul's debug records to l. Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("matrix: WithLogger(nil)")
	}

	return func(o *Options) { o.logger = l }
}

// WithMetrics reports every Mul call to c. Panics if c is nil.
func WithMetrics(c MetricsCollector) Option {
	if c == nil {
		panic("matrix: WithMetrics(nil)")
	}

	return func(o *Options) { o.metrics = c }
}

// discardLogger drops everything; Mul logs nothing unless asked to.
var discardLogger = slog.New(slog.DiscardHandler)

func defaultOptions() Options {
	return Options{
		workers:         DefaultWorkers,
		minParallelWork: DefaultMinParallelWork,
		kernel:          DefaultKernel,
		logger:          discardLogger,
		metrics:         NoopMetricsCollector{},
	}
}

// gatherOptions applies user options over defaults and resolves sentinels.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}
	if o.workers == DefaultWorkers {
		o.workers = cpuinfo.LogicalCores()
	}

	return o
}
