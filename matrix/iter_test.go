package matrix_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestIterNext walks a RowIter with Next and checks Len and Index.
func TestIterNext(t *testing.T) {
	m := mustRows(t, [][]int{{0, 1}, {2, 3}, {4, 5}})
	it := m.Iter()
	require.Equal(t, 3, it.Len())

	for i, want := range [][]int{{0, 1}, {2, 3}, {4, 5}} {
		require.Equal(t, i, it.Index())
		row, ok := it.Next()
		require.True(t, ok)
		require.Equal(t, want, row)
		require.Equal(t, 2-i, it.Len())
	}

	row, ok := it.Next()
	require.False(t, ok)
	require.Nil(t, row)
}

// TestIterIsNotRestartable verifies an exhausted iterator stays exhausted.
func TestIterIsNotRestartable(t *testing.T) {
	m := mustRows(t, [][]int{{1}, {2}})
	it := m.Iter()
	for _, ok := it.Next(); ok; _, ok = it.Next() {
	}
	_, ok := it.Next()
	require.False(t, ok)

	fresh := m.Iter()
	row, ok := fresh.Next()
	require.True(t, ok)
	require.Equal(t, []int{1}, row)
}

// TestIterNth covers Nth within and past the remaining rows.
func TestIterNth(t *testing.T) {
	m := mustRows(t, [][]int{{0, 1}, {2, 3}, {4, 5}})

	it := m.Iter()
	row, ok := it.Nth(1)
	require.True(t, ok)
	require.Equal(t, []int{2, 3}, row)
	row, ok = it.Next()
	require.True(t, ok)
	require.Equal(t, []int{4, 5}, row)

	it = m.Iter()
	_, ok = it.Nth(3)
	require.False(t, ok)
	require.Zero(t, it.Len())
}

// TestIterLast covers Last on full and zero iterators.
func TestIterLast(t *testing.T) {
	m := mustRows(t, [][]int{{0, 1}, {2, 3}, {4, 5}})

	row, ok := m.Iter().Last()
	require.True(t, ok)
	require.Equal(t, []int{4, 5}, row)

	var empty matrix.RowIter[int]
	_, ok = empty.Last()
	require.False(t, ok)
}

// TestIterRowsAreWritable swaps the first and last rows through iterator views.
func TestIterRowsAreWritable(t *testing.T) {
	m := mustRows(t, [][]float32{{0, 1}, {2, 3}, {4, 5}})

	it := m.Iter()
	first, ok := it.Nth(0)
	require.True(t, ok)
	last, ok := it.Last()
	require.True(t, ok)
	for j := range first {
		first[j], last[j] = last[j], first[j]
	}

	require.True(t, m.Equal(mustRows(t, [][]float32{{4, 5}, {2, 3}, {0, 1}})))
}

// TestRowViewsOrderAndLength verifies RowViews yields every row in order.
func TestRowViewsOrderAndLength(t *testing.T) {
	m := randIntDense(t, 5, 4, 1)

	var seen int
	for i, row := range m.RowViews() {
		require.Equal(t, seen, i)
		require.Len(t, row, m.Cols())
		require.Equal(t, m.Flattened()[i*4:(i+1)*4], row)
		seen++
	}
	require.Equal(t, m.Rows(), seen)
}

// TestRowViewsMutWritesAreVisible verifies writes through RowViewsMut land in the matrix.
func TestRowViewsMutWritesAreVisible(t *testing.T) {
	m := mustZeros[int](t, 3, 2)

	for i, row := range m.RowViewsMut() {
		for j := range row {
			row[j] = 10*i + j
		}
	}

	require.True(t, m.Equal(mustRows(t, [][]int{{0, 1}, {10, 11}, {20, 21}})))
}

// TestRowViewsMutHoldsDisjointRows holds two mutable rows at once and swaps them.
func TestRowViewsMutHoldsDisjointRows(t *testing.T) {
	m := mustRows(t, [][]int{{0, 1}, {2, 3}, {4, 5}})

	var first []int
	for i, row := range m.RowViewsMut() {
		if i == 0 {
			first = row
			continue
		}
		if i == m.Rows()-1 {
			for j := range row {
				first[j], row[j] = row[j], first[j]
			}
		}
	}

	require.True(t, m.Equal(mustRows(t, [][]int{{4, 5}, {2, 3}, {0, 1}})))
}

// TestRowViewsMutIsExclusive verifies every other access fails during RowViewsMut.
func TestRowViewsMutIsExclusive(t *testing.T) {
	m := mustZeros[float64](t, 2, 2)
	other := mustZeros[float64](t, 2, 2)

	for range m.RowViewsMut() {
		require.PanicsWithError(t, "Dense.Row: matrix: rows already borrowed", func() { m.Row(0) })
		require.Panics(t, func() { m.Iter() })
		require.Panics(t, func() { m.Flattened() })
		require.Panics(t, func() {
			for range m.RowViews() {
			}
		})
		require.Panics(t, func() {
			for range m.RowViewsMut() {
			}
		})
		require.Panics(t, func() { _, _ = matrix.Mul(m, other) })
		require.Panics(t, func() { _, _ = matrix.Mul(other, m) })

		_, err := m.At(0, 0)
		require.ErrorIs(t, err, matrix.ErrBorrowed)
		require.ErrorIs(t, m.Set(0, 0, 1), matrix.ErrBorrowed)

		// Unrelated matrices stay usable.
		other.Row(0)[0] = 1
		break
	}

	// break released the borrow.
	m.Row(1)[1] = 3
	require.Equal(t, 3.0, m.Flattened()[3])
}

// TestRowViewsAllowSharedReaders verifies readers coexist with RowViews while Set fails.
func TestRowViewsAllowSharedReaders(t *testing.T) {
	m := mustRows(t, [][]int{{1, 2}, {3, 4}})

	var product *matrix.Dense[int]
	for i, row := range m.RowViews() {
		for range m.RowViews() {
		}
		err := m.Set(i, 0, 99)
		require.ErrorIs(t, err, matrix.ErrBorrowed)
		require.EqualError(t, err, fmt.Sprintf("Dense.Set(%d,0): matrix: rows already borrowed", i))
		require.NotEqual(t, 99, row[0])
		v, err := m.At(i, 0)
		require.NoError(t, err, "reads stay allowed")
		require.Equal(t, row[0], v)
		if i == 0 {
			product, err = matrix.Mul(m, m)
			require.NoError(t, err)
		}
		require.Panics(t, func() {
			for range m.RowViewsMut() {
			}
		})
	}
	require.True(t, product.Equal(mustRows(t, [][]int{{7, 10}, {15, 22}})))

	// All readers gone: exclusive access and Set work again.
	for range m.RowViewsMut() {
	}
	require.NoError(t, m.Set(0, 0, 5))
}

// TestSetFailsWhileMulReads verifies Set is refused while a Mul holds m.
func TestSetFailsWhileMulReads(t *testing.T) {
	m := mustRows(t, [][]int{{1, 2}, {3, 4}})
	h := &setDuringMul{target: m}

	_, err := matrix.Mul(m, m, matrix.WithLogger(slog.New(h)))
	require.NoError(t, err)
	require.ErrorIs(t, h.err, matrix.ErrBorrowed)
	require.True(t, m.Equal(mustRows(t, [][]int{{1, 2}, {3, 4}})))
}

// setDuringMul is a slog handler that tries Set on target when Mul logs its
// start record, i.e. while Mul holds its operands.
type setDuringMul struct {
	target *matrix.Dense[int]
	err    error
}

func (h *setDuringMul) Enabled(context.Context, slog.Level) bool { return true }

func (h *setDuringMul) Handle(_ context.Context, r slog.Record) error {
	if r.Message == "matrix: mul start" {
		h.err = h.target.Set(0, 0, 42)
	}
	return nil
}

func (h *setDuringMul) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *setDuringMul) WithGroup(string) slog.Handler      { return h }
