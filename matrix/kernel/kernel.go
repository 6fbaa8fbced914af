// SPDX-License-Identifier: MIT

// Package kernel holds the innermost loop of the multiplier: the scaled
// vector accumulation y += alpha*x over two contiguous rows.
//
// The generic Axpy is written so the compiler can drop every bounds check
// and keep the loop branch-free, which is the shape its auto-vectorizer and
// register allocator handle best. For float32 and float64 an accelerated
// variant backed by gonum's BLAS level-1 routines (assembly on amd64) can be
// selected. Both variants compute each y[j] as one multiply followed by one
// add, independently of every other j.
package kernel

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmat/internal/cpuinfo"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
)

// Number is the arithmetic capability set the multiplier needs: a zero value
// that is the additive identity, and the + and * operators.
//
// Vectorization pays off for the fixed-width primitive types; named types
// built on them (type Celsius float64) take the generic path.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// AxpyFunc computes y[j] += alpha*x[j] for j in [0, len(x)).
// len(y) must be at least len(x).
type AxpyFunc[T Number] func(alpha T, x, y []T)

// Axpy is the portable kernel.
//
// Reslicing y to len(x) lets the compiler prove y[j] in range, so the loop
// body has no bounds checks and no branches.
func Axpy[T Number](alpha T, x, y []T) {
	y = y[:len(x)]
	for j, xj := range x {
		y[j] += alpha * xj
	}
}

func axpyFloat32(alpha float32, x, y []float32) {
	n := len(x)
	blas32.Axpy(alpha,
		blas32.Vector{N: n, Data: x, Inc: 1},
		blas32.Vector{N: n, Data: y[:n], Inc: 1},
	)
}

func axpyFloat64(alpha float64, x, y []float64) {
	n := len(x)
	blas64.Axpy(alpha,
		blas64.Vector{N: n, Data: x, Inc: 1},
		blas64.Vector{N: n, Data: y[:n], Inc: 1},
	)
}

// Mode chooses between kernel implementations.
type Mode uint8

const (
	// Auto uses BLAS for float32/float64 when the CPU reports SIMD support.
	Auto Mode = iota
	// Generic always uses Axpy.
	Generic
	// BLAS uses the gonum routines for float32/float64 regardless of the
	// detected ISA; other element types still use Axpy.
	BLAS
)

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case Auto:
		return "auto"
	case Generic:
		return "generic"
	case BLAS:
		return "blas"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ParseMode parses a case-insensitive mode name.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return Auto, nil
	case "generic":
		return Generic, nil
	case "blas":
		return BLAS, nil
	default:
		return Auto, fmt.Errorf("kernel: unknown mode %q", s)
	}
}

// Select resolves mode for element type T and returns the kernel together
// with the mode actually used (Generic or BLAS, never Auto).
//
// Notes:
//   - gonum skips the update entirely when alpha == 0, so with NaN or ±Inf in
//     x the BLAS and Generic kernels may disagree; each is deterministic.
func Select[T Number](mode Mode) (AxpyFunc[T], Mode) {
	if mode == Generic || (mode == Auto && !cpuinfo.HasSIMD()) {
		return Axpy[T], Generic
	}
	if f, ok := any(AxpyFunc[float64](axpyFloat64)).(AxpyFunc[T]); ok {
		return f, BLAS
	}
	if f, ok := any(AxpyFunc[float32](axpyFloat32)).(AxpyFunc[T]); ok {
		return f, BLAS
	}

	return Axpy[T], Generic
}
