// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major), constructors & accessors.
//
// Purpose:
//   - One contiguous buffer per matrix with the explicit index formula i*cols + j.
//   - Row(i) returns a no-copy view of one row; writes through it are visible
//     to every later read.
//   - At/Set return errors instead of panicking, for callers that branch.
//
// Complexity quicksheet:
//   - Constructors: O(r*c); Row/At/Set: O(1); Clone/Equal/String: O(r*c).

package matrix

import (
	"fmt"
	"slices"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxRow       = "Row"
	ctxFlat      = "Flattened"
	ctxIter      = "Iter"
	ctxViews     = "RowViews"
	ctxViewsMut  = "RowViewsMut"
	ctxFromRows  = "FromRows"
	ctxFromArray = "FromArray"
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a row-major matrix of T.
//   - r, c hold the shape; both are > 0 for every public constructor.
//   - data has length r*c; element (i, j) lives at data[i*c+j].
//   - borrow tracks open row sequences (see RowViewsMut).
//
// The shape never changes after construction. A Dense must not be copied by
// value; pass *Dense.
type Dense[T Number] struct {
	r, c   int
	data   []T
	borrow borrowState
}

var _ fmt.Stringer = (*Dense[float64])(nil)

// newDense allocates a zero-filled r×c matrix without validation.
func newDense[T Number](rows, cols int) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
}

// Full creates a rows×cols matrix with every element set to v.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0, cols <= 0 or rows*cols overflows int.
//
// Complexity: Time O(r*c), Space O(r*c).
func Full[T Number](rows, cols int, v T) (*Dense[T], error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, err
	}
	m := newDense[T](rows, cols)
	for i := range m.data {
		m.data[i] = v
	}

	return m, nil
}

// Zeros creates a rows×cols matrix of additive identities.
// Errors: ErrInvalidDimensions.
func Zeros[T Number](rows, cols int) (*Dense[T], error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, err
	}

	return newDense[T](rows, cols), nil
}

// Ones creates a rows×cols matrix filled with T(1).
// Errors: ErrInvalidDimensions.
func Ones[T Number](rows, cols int) (*Dense[T], error) {
	return Full(rows, cols, T(1))
}

// New creates a rows×cols matrix filled with the default value of T, which
// for every Number is its zero value. It is equivalent to Zeros.
// Errors: ErrInvalidDimensions.
func New[T Number](rows, cols int) (*Dense[T], error) {
	return Zeros[T](rows, cols)
}

// Identity creates the n×n identity matrix.
// Errors: ErrInvalidDimensions when n <= 0.
func Identity[T Number](n int) (*Dense[T], error) {
	m, err := Zeros[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// FromRows copies a rectangular literal into a new matrix.
// The shape is (len(rows), len(rows[0])).
//
// Implementation:
//   - Stage 1: validate a non-empty first row and equal row lengths.
//   - Stage 2: append rows in order into one buffer.
//
// Errors:
//   - ErrInvalidDimensions when there are no rows or the first row is empty.
//   - ErrBadShape when a row's length differs from the first row's.
//
// Complexity: Time O(r*c), Space O(r*c).
func FromRows[T Number](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 {
		return nil, matrixErrorf(ctxFromRows, ErrInvalidDimensions)
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, matrixErrorf(ctxFromRows, ErrInvalidDimensions)
	}

	data := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, matrixErrorf(ctxFromRows,
				fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), cols, ErrBadShape))
		}
		data = append(data, row...)
	}

	return &Dense[T]{r: len(rows), c: cols, data: data}, nil
}

// FromArray copies a row-major buffer into a new rows×cols matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0, cols <= 0 or rows*cols overflows int.
//   - ErrBadShape when len(flat) != rows*cols.
func FromArray[T Number](rows, cols int, flat []T) (*Dense[T], error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(ctxFromArray, err)
	}
	if len(flat) != rows*cols {
		return nil, matrixErrorf(ctxFromArray,
			fmt.Errorf("len %d, want %d: %w", len(flat), rows*cols, ErrBadShape))
	}

	return &Dense[T]{r: rows, c: cols, data: slices.Clone(flat)}, nil
}

// Rows returns the row count.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense[T]) Cols() int { return m.c }

// Shape returns (Rows(), Cols()).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Flattened returns the row-major backing buffer. It is a view, not a copy:
// treat it as read-only and use Row or Set to write.
// Panics with ErrBorrowed inside a RowViewsMut loop over m.
func (m *Dense[T]) Flattened() []T {
	m.borrow.checkFree(ctxFlat)

	return slices.Clip(m.data)
}

// rowView returns row i with capacity clipped to the row, so append on the
// view reallocates instead of overwriting row i+1. No checks.
func (m *Dense[T]) rowView(i int) []T {
	lo := i * m.c
	hi := lo + m.c

	return m.data[lo:hi:hi]
}

// Row returns a view of row i: len and cap are Cols(), and element j is
// Row(i)[j]. Writes through the view update m.
//
// Behavior highlights:
//   - Out-of-range i is a programming error: Row panics with an error
//     wrapping ErrOutOfRange, just as slice indexing would. Out-of-range j
//     panics through Go's own bounds check.
//   - Panics with ErrBorrowed inside a RowViewsMut loop over m.
//
// Complexity: O(1), no allocation.
func (m *Dense[T]) Row(i int) []T {
	m.borrow.checkFree(ctxRow)
	if i < 0 || i >= m.r {
		panic(fmt.Errorf("Dense.%s(%d): %w", ctxRow, i, ErrOutOfRange))
	}

	return m.rowView(i)
}

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
//
// Errors:
//   - ErrOutOfRange (wrapped with coordinates) for invalid indices.
//   - ErrBorrowed inside a RowViewsMut loop over m.
func (m *Dense[T]) At(row, col int) (T, error) {
	var zero T
	if m.borrow.isLocked() {
		return zero, denseErrorf(ctxAt, row, col, ErrBorrowed)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange (wrapped with coordinates) for invalid indices.
//   - ErrBorrowed while any row sequence over m is open (RowViews or
//     RowViewsMut) or a Mul reading m is running.
func (m *Dense[T]) Set(row, col int, v T) error {
	if m.borrow.isHeld() {
		return denseErrorf(ctxSet, row, col, ErrBorrowed)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy; the copy shares nothing with m.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	return &Dense[T]{r: m.r, c: m.c, data: slices.Clone(m.data)}
}

// Equal reports whether m and other have the same shape and pairwise equal
// elements under ==. Matrices of different shape are never equal; for
// floating-point T a NaN element makes the matrices unequal.
// Two nil matrices are equal.
func (m *Dense[T]) Equal(other *Dense[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}

	return slices.Equal(m.data, other.data)
}

// Equal is the function form of (*Dense[T]).Equal.
func Equal[T Number](a, b *Dense[T]) bool { return a.Equal(b) }

// String renders one line per row: "[v0, v1, ...]\n". Values use %v.
// Intended for debugging and examples, not hot paths.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
