// SPDX-License-Identifier: MIT

package matrix

import (
	"sync/atomic"
	"time"
)

// MulStats describes one Mul call as seen by a MetricsCollector.
type MulStats struct {
	Rows    int    // m, rows of the result
	Inner   int    // k, the reduction length
	Cols    int    // n, columns of the result
	Workers int    // row ranges actually used (1 = sequential)
	Kernel  string // resolved kernel mode
}

// MultiplyAdds returns m*k*n.
func (s MulStats) MultiplyAdds() int64 {
	return int64(s.Rows) * int64(s.Inner) * int64(s.Cols)
}

// MetricsCollector receives one record per Mul call, after it returns.
// Implementations must be safe for concurrent use.
type MetricsCollector interface {
	// RecordMul is called with the call's shape, its wall time and its error
	// (nil on success). On error only the operand shapes are meaningful.
	RecordMul(stats MulStats, duration time.Duration, err error)
}

// NoopMetricsCollector discards every record.
type NoopMetricsCollector struct{}

// RecordMul does nothing.
func (NoopMetricsCollector) RecordMul(MulStats, time.Duration, error) {}

// BasicMetricsCollector keeps in-memory counters.
type BasicMetricsCollector struct {
	MulCount       atomic.Int64
	MulErrors      atomic.Int64
	MulTotalNanos  atomic.Int64
	MulMultiplyAdd atomic.Int64
	MulParallel    atomic.Int64 // calls that used more than one worker
}

// RecordMul implements MetricsCollector.
func (c *BasicMetricsCollector) RecordMul(stats MulStats, d time.Duration, err error) {
	c.MulCount.Add(1)
	c.MulTotalNanos.Add(int64(d))
	if err != nil {
		c.MulErrors.Add(1)
		return
	}
	c.MulMultiplyAdd.Add(stats.MultiplyAdds())
	if stats.Workers > 1 {
		c.MulParallel.Add(1)
	}
}

// AverageLatency returns the mean wall time per recorded call.
func (c *BasicMetricsCollector) AverageLatency() time.Duration {
	n := c.MulCount.Load()
	if n == 0 {
		return 0
	}

	return time.Duration(c.MulTotalNanos.Load() / n)
}
