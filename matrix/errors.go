// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All recoverable failures are one of these sentinels, possibly wrapped with
// operation context via %w; callers match them with errors.Is.
// Out-of-range row views and aliasing violations panic with a wrapped
// sentinel instead, the same way slice indexing panics.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING
// --------------
// Every message is prefixed with "matrix: ..." so it greps well in logs.
// Wrap with context at the detection site (denseErrorf / matrixErrorf /
// validatorErrorf); never compare error strings.

var (
	// ErrInvalidDimensions is returned when a constructor gets rows<=0 or cols<=0.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrBadShape is returned when input data does not describe a rectangle:
	// ragged rows, or a flat buffer whose length is not rows*cols.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside the shape.
	// At/Set return it; Row panics with it.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrShapeMismatch indicates incompatible operand shapes, e.g. Mul with
	// a.Cols() != b.Rows().
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrNilMatrix indicates that a nil *Dense was passed where a matrix is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBorrowed is the panic cause when a matrix is accessed while a
	// RowViewsMut loop holds it exclusively, or when RowViewsMut starts while
	// other row sequences are open.
	ErrBorrowed = errors.New("matrix: rows already borrowed")
)

// denseErrorf attaches method name and coordinates to err.
// Result formats as "Dense.<method>(row,col): <err>".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// matrixErrorf prefixes err with an operation tag, keeping errors.Is intact.
// Only call with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
