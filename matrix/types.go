// SPDX-License-Identifier: MIT

// Package matrix: element type constraint.
package matrix

import "github.com/katalvlaran/lvmat/matrix/kernel"

// Number is the element constraint of Dense: integer, floating-point and
// complex kinds. The zero value is the additive identity and T(1) the
// multiplicative one.
//
// Notes:
//   - Mul gets the most out of float32 and float64, where an accelerated
//     kernel exists. Integer and complex types run the portable kernel.
type Number = kernel.Number
