// SPDX-License-Identifier: MIT

// Command matbench times matrix.Mul on random operands.
//
// Usage:
//
//	matbench mul --rows 512 --inner 512 --cols 512 --workers 1,2,4,8
//	matbench mul --type float32 --kernel generic --naive
//	matbench cpu
//
// Every worker count multiplies the same operands; matbench fails if any
// result differs from the first one bit for bit.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
