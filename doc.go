// SPDX-License-Identifier: MIT

// Package lvmat is a small numeric library built around one type: a dense,
// row-major matrix with a multiplication that scales across cores without
// changing its result.
//
// Layout:
//
//	matrix/          Dense[T], constructors, row views and iterators, Mul
//	matrix/kernel/   innermost y += alpha*x kernels (generic and BLAS-backed)
//	parallel/        fork-join over contiguous index ranges, persistent Pool
//	cmd/matbench/    CLI that times Mul across worker counts
//
// Quick start:
//
//	a, _ := matrix.FromRows([][]float64{{0, 1}, {2, 3}, {4, 5}})
//	b, _ := matrix.FromRows([][]float64{{6}, {7}})
//	c, _ := matrix.Mul(a, b, matrix.WithWorkers(4))
//	fmt.Print(c) // [7]\n[33]\n[59]\n
package lvmat
