// SPDX-License-Identifier: MIT

// Package parallel runs fork-join loops over disjoint, contiguous index ranges.
//
// Every helper partitions [0, n) with Split, hands each range to exactly one
// worker and returns only after all workers finished. Workers never share a
// range, so callers writing to index-addressed output need no locks.
//
// Two flavours exist:
//   - For spawns one goroutine per range for the duration of a single call.
//   - Pool keeps its goroutines alive and is meant to be reused across calls.
package parallel

import (
	"golang.org/x/sync/errgroup"
)

// Range is the half-open interval [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns End-Start.
func (r Range) Len() int { return r.End - r.Start }

// Split partitions [0, n) into at most parts contiguous, disjoint, non-empty
// ranges covering every index exactly once, in increasing order.
// The first n%parts ranges are one element longer than the rest.
//
// Complexity: O(parts).
func Split(n, parts int) []Range {
	if n <= 0 {
		return nil
	}
	if parts < 1 {
		parts = 1
	}
	parts = min(parts, n)

	base, extra := n/parts, n%parts
	out := make([]Range, parts)
	start := 0
	for p := range out {
		size := base
		if p < extra {
			size++
		}
		out[p] = Range{Start: start, End: start + size}
		start += size
	}

	return out
}

// For runs fn once per range of Split(n, workers), each on its own goroutine,
// and blocks until all of them return. With a single range fn runs on the
// calling goroutine.
func For(n, workers int, fn func(start, end int)) {
	ranges := Split(n, workers)
	switch len(ranges) {
	case 0:
		return
	case 1:
		fn(ranges[0].Start, ranges[0].End)
		return
	}

	var g errgroup.Group
	for _, r := range ranges {
		g.Go(func() error {
			fn(r.Start, r.End)
			return nil
		})
	}
	_ = g.Wait() // workers never fail; Wait is the join barrier
}
