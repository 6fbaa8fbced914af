// SPDX-License-Identifier: MIT

// Package matrix - row iteration.
//
// Two shapes of iteration are offered:
//   - RowIter, a pull iterator (Next/Nth/Last/Len). It is consumed as it
//     advances and cannot be rewound; ask the matrix for a fresh one.
//   - RowViews / RowViewsMut, range-over-func sequences. Their borrow on the
//     matrix lasts exactly as long as the range loop, including early break.

package matrix

import "iter"

// RowIter yields the rows of a matrix in increasing index order.
// Each yielded row is a view (see Dense.Row). The zero RowIter is exhausted.
type RowIter[T Number] struct {
	rest []T // unvisited rows, row-major
	cols int
	next int // index of the row Next returns
}

// Iter returns a new iterator positioned before row 0.
// Panics with ErrBorrowed inside a RowViewsMut loop over m.
func (m *Dense[T]) Iter() *RowIter[T] {
	m.borrow.checkFree(ctxIter)

	return &RowIter[T]{rest: m.data, cols: m.c}
}

// Len returns the number of rows not yet yielded.
func (it *RowIter[T]) Len() int {
	if it.cols == 0 {
		return 0
	}

	return len(it.rest) / it.cols
}

// Index returns the index of the row the next call to Next yields.
func (it *RowIter[T]) Index() int { return it.next }

// Next yields the next row, or (nil, false) once all rows were yielded.
func (it *RowIter[T]) Next() ([]T, bool) {
	if it.Len() == 0 {
		return nil, false
	}
	row := it.rest[:it.cols:it.cols]
	it.rest = it.rest[it.cols:]
	it.next++

	return row, true
}

// Nth skips n rows and yields the one after them; Nth(0) is Next.
// When fewer than n+1 rows remain the iterator is exhausted and Nth returns
// (nil, false).
func (it *RowIter[T]) Nth(n int) ([]T, bool) {
	if n < 0 || n >= it.Len() {
		it.next += it.Len()
		it.rest = nil
		return nil, false
	}
	skip := n * it.cols
	it.rest = it.rest[skip:]
	it.next += n

	return it.Next()
}

// Last consumes the iterator and returns its final row, or (nil, false) if
// no rows remain.
func (it *RowIter[T]) Last() ([]T, bool) {
	remaining := it.Len()
	if remaining == 0 {
		return nil, false
	}

	return it.Nth(remaining - 1)
}

// RowViews returns a sequence of (index, row view) pairs in index order.
//
// While the loop runs, m is shared-borrowed: reads, other RowViews loops and
// Mul on m are allowed; a RowViewsMut loop on m panics and Set on m fails,
// both with ErrBorrowed.
//
//	for i, row := range m.RowViews() { ... }
func (m *Dense[T]) RowViews() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		m.borrow.share(ctxViews)
		defer m.borrow.unshare()

		for i := 0; i < m.r; i++ {
			if !yield(i, m.rowView(i)) {
				return
			}
		}
	}
}

// RowViewsMut returns a sequence of (index, row view) pairs meant for writing.
//
// While the loop runs, m is exclusively borrowed: the yielded rows are the
// only way to reach m's elements. Row, At, Set, Iter, Flattened, RowViews,
// another RowViewsMut and Mul involving m panic (or, for At/Set, fail) with
// ErrBorrowed. The borrow ends when the loop ends, break included.
// Starting the loop while any RowViews loop or Mul on m is running panics
// with ErrBorrowed.
//
// Rows yielded earlier stay valid for writing during the loop, so
// distinct rows may be held at once (they never overlap).
func (m *Dense[T]) RowViewsMut() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		m.borrow.lock(ctxViewsMut)
		defer m.borrow.unlock()

		for i := 0; i < m.r; i++ {
			if !yield(i, m.rowView(i)) {
				return
			}
		}
	}
}
