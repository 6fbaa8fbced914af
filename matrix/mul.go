// SPDX-License-Identifier: MIT
// Package matrix: matrix multiplication.
//
// Purpose:
//   - Mul: parallel product with a fixed per-row summation order, so the
//     result does not depend on how many workers ran.
//   - MulNaive: textbook i→j→t reference used for cross-checks and benchmarks.
//
// Loop order (Mul):
//
//	for i in rows of A          (split across workers, contiguous ranges)
//	  for t in 0..k             (A[i][t] is a scalar for the inner loop)
//	    C[i][:] += A[i][t] * B[t][:]    (kernel.Axpy, contiguous on both sides)
//
// Both B's row t and C's row i are contiguous in row-major storage, so the
// innermost loop streams through memory with unit stride. Walking B by
// columns (the naive i→j→t order) strides by n elements per step instead.

package matrix

import (
	"time"

	"github.com/katalvlaran/lvmat/matrix/kernel"
	"github.com/katalvlaran/lvmat/parallel"
)

// Operation name constants for uniform error wrapping.
const (
	opMul      = "Mul"
	opMulNaive = "MulNaive"
)

// Mul returns C = A·B for A of shape (m×k) and B of shape (k×n).
// C has shape (m×n) and C[i][j] = Σ_{t=0}^{k-1} A[i][t]·B[t][j], summed in
// increasing t.
//
// Implementation:
//   - Stage 1: validate operands (non-nil, a.Cols() == b.Rows()) before
//     allocating anything.
//   - Stage 2: share-borrow both inputs for the duration of the call.
//   - Stage 3: plan workers and kernel, allocate C zero-filled.
//   - Stage 4: fork one task per contiguous row range of C; each task owns
//     its rows of C exclusively and only reads A and B. Join, then return.
//
// Behavior highlights:
//   - Inputs are never mutated; a failed call allocates and returns nothing.
//   - Each output row is computed by exactly one task in a fixed order,
//     hence results are bit-identical for any worker count or pool.
//   - Mul(a, a) is allowed.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (wrapped with "Mul: ...").
//
// Panics:
//   - ErrBorrowed if a or b is inside a RowViewsMut loop.
//
// Complexity:
//   - Time O(m*k*n) split over the workers, Space O(m*n) for C.
func Mul[T Number](a, b *Dense[T], opts ...Option) (*Dense[T], error) {
	o := gatherOptions(opts...)
	began := time.Now()

	if err := ValidateMulCompatible(a, b); err != nil {
		err = matrixErrorf(opMul, err)
		o.metrics.RecordMul(operandStats(a, b), time.Since(began), err)
		return nil, err
	}

	a.borrow.share(opMul)
	defer a.borrow.unshare()
	b.borrow.share(opMul)
	defer b.borrow.unshare()

	plan := newMulPlan[T](a.r, a.c, b.c, o)
	o.logger.Debug("matrix: mul start",
		"rows", plan.m, "inner", plan.k, "cols", plan.n,
		"workers", plan.workers, "kernel", plan.kernel.String(), "pooled", plan.pool != nil)

	c := newDense[T](plan.m, plan.n)
	plan.run(c.data, a.data, b.data)

	elapsed := time.Since(began)
	o.metrics.RecordMul(plan.stats(), elapsed, nil)
	o.logger.Debug("matrix: mul done", "elapsed", elapsed)

	return c, nil
}

// operandStats fills what is known about possibly-nil operands.
func operandStats[T Number](a, b *Dense[T]) MulStats {
	var s MulStats
	if a != nil {
		s.Rows, s.Inner = a.r, a.c
	}
	if b != nil {
		s.Cols = b.c
	}

	return s
}

// mulPlan is the resolved schedule for one product.
type mulPlan[T Number] struct {
	m, k, n int
	workers int            // row ranges; 1 means the calling goroutine does all rows
	pool    *parallel.Pool // nil: per-call goroutines
	axpy    kernel.AxpyFunc[T]
	kernel  kernel.Mode
}

// newMulPlan decides the kernel and the number of row ranges.
// Work below o.minParallelWork, or a single output row, stays sequential.
func newMulPlan[T Number](m, k, n int, o Options) mulPlan[T] {
	axpy, mode := kernel.Select[T](o.kernel)
	p := mulPlan[T]{m: m, k: k, n: n, workers: 1, axpy: axpy, kernel: mode}

	work := int64(m) * int64(k) * int64(n)
	if m < 2 || work < int64(o.minParallelWork) {
		return p
	}
	if o.pool != nil {
		p.pool = o.pool
		p.workers = min(o.pool.NumWorkers(), m)
	} else {
		p.workers = min(o.workers, m)
	}

	return p
}

func (p mulPlan[T]) stats() MulStats {
	return MulStats{Rows: p.m, Inner: p.k, Cols: p.n, Workers: p.workers, Kernel: p.kernel.String()}
}

// run fills c (m×n, zeroed) with a·b.
func (p mulPlan[T]) run(c, a, b []T) {
	rows := func(start, end int) {
		mulRows(c, a, b, p.k, p.n, start, end, p.axpy)
	}

	switch {
	case p.workers <= 1:
		rows(0, p.m)
	case p.pool != nil:
		p.pool.ParallelFor(p.m, rows)
	default:
		parallel.For(p.m, p.workers, rows)
	}
}

// mulRows accumulates rows [start, end) of c = a·b.
// a is m×k, b is k×n, c is m×n, all row-major; c rows must start at zero.
// Only c[start*n : end*n] is written.
func mulRows[T Number](c, a, b []T, k, n, start, end int, axpy kernel.AxpyFunc[T]) {
	for i := start; i < end; i++ {
		ci := c[i*n : (i+1)*n : (i+1)*n]
		ai := a[i*k : (i+1)*k]
		for t, ait := range ai {
			axpy(ait, b[t*n:(t+1)*n], ci)
		}
	}
}

// MulNaive returns A·B using the textbook i→j→t loop on one goroutine.
// Each C[i][j] is a dot product accumulated in increasing t, the same
// order Mul uses, so for exact arithmetic (integers) the results match.
//
// Errors: ErrNilMatrix, ErrShapeMismatch (wrapped with "MulNaive: ...").
//
// Complexity: Time O(m*k*n), Space O(m*n). Column walks over B make it far
// slower than Mul on large inputs.
func MulNaive[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulNaive, err)
	}
	a.borrow.share(opMulNaive)
	defer a.borrow.unshare()
	b.borrow.share(opMulNaive)
	defer b.borrow.unshare()

	m, k, n := a.r, a.c, b.c
	c := newDense[T](m, n)
	var i, j, t int
	var sum T
	for i = 0; i < m; i++ {
		ai := a.data[i*k : (i+1)*k]
		for j = 0; j < n; j++ {
			sum = 0
			for t = 0; t < k; t++ {
				sum += ai[t] * b.data[t*n+j]
			}
			c.data[i*n+j] = sum
		}
	}

	return c, nil
}
