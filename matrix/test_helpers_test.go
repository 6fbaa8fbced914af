// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Small deterministic fixtures shared by unit tests and benchmarks.

package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
)

// mustRows builds a matrix from a literal or fails the test.
func mustRows[T matrix.Number](tb testing.TB, rows [][]T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		tb.Fatalf("FromRows: %v", err)
	}

	return m
}

// mustZeros allocates an r×c zero matrix or fails the test.
func mustZeros[T matrix.Number](tb testing.TB, r, c int) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.Zeros[T](r, c)
	if err != nil {
		tb.Fatalf("Zeros(%d,%d): %v", r, c, err)
	}

	return m
}

// randDense returns an r×c float64 matrix with values in [-1, 1) drawn from
// a PCG seeded with seed.
func randDense(tb testing.TB, r, c int, seed uint64) *matrix.Dense[float64] {
	tb.Helper()
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	flat := make([]float64, r*c)
	for i := range flat {
		flat[i] = 2*rng.Float64() - 1
	}
	m, err := matrix.FromArray(r, c, flat)
	if err != nil {
		tb.Fatalf("FromArray(%d,%d): %v", r, c, err)
	}

	return m
}

// randIntDense returns an r×c int64 matrix with values in [-50, 50).
func randIntDense(tb testing.TB, r, c int, seed uint64) *matrix.Dense[int64] {
	tb.Helper()
	rng := rand.New(rand.NewPCG(seed, 7))
	flat := make([]int64, r*c)
	for i := range flat {
		flat[i] = rng.Int64N(100) - 50
	}
	m, err := matrix.FromArray(r, c, flat)
	if err != nil {
		tb.Fatalf("FromArray(%d,%d): %v", r, c, err)
	}

	return m
}
