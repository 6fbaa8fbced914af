// Package matrix provides Dense[T], a generic two-dimensional numeric container
// stored as one contiguous row-major buffer, and Mul, a parallel
// multiplication that keeps every inner loop on contiguous memory.
//
// The package provides:
//
//   - Constructors: FromRows, FromArray, Full, Zeros, Ones, New, Identity.
//   - Introspection: Rows, Cols, Shape, Flattened.
//   - Access: Row(i) as a no-copy view (panics when out of range), and the
//     error-returning At/Set pair for callers that prefer to branch.
//   - Iteration: Iter (pull), RowViews and RowViewsMut (range-over-func).
//   - Computation: Mul, plus MulNaive as a plain triple-loop reference.
//   - Equal and String.
//
// Multiplication splits the output rows into one contiguous range per worker.
// A row's reduction is never split, so the result is bit-for-bit identical
// for every worker count.
//
//	a, _ := matrix.FromRows([][]float64{{0, 1}, {2, 3}, {4, 5}})
//	b, _ := matrix.FromRows([][]float64{{6}, {7}})
//	c, err := matrix.Mul(a, b) // [[7] [33] [59]]
package matrix
