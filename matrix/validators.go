// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for shape and nil checks.
//  - Return plain sentinels wrapped with the validator tag; facades add the
//    operation tag on top.
//
// Determinism & Performance:
//  - All checks are O(1) and allocate nothing on success.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateDims rejects non-positive dimensions, and shapes whose element
// count rows*cols does not fit in an int, with ErrInvalidDimensions.
func validateDims(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrInvalidDimensions
	}
	if cols > math.MaxInt/rows {
		return ErrInvalidDimensions
	}

	return nil
}

// ValidateNotNil ensures m is non-nil.
// Errors: ErrNilMatrix.
func ValidateNotNil[T Number](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows(), inputs non-nil.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func ValidateMulCompatible[T Number](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("a.Cols() (is %d) should be equal to b.Rows() (is %d): %w", a.c, b.r, ErrShapeMismatch))
	}

	return nil
}
