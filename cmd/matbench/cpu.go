// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/lvmat/internal/cpuinfo"
	"github.com/katalvlaran/lvmat/matrix/kernel"
	"github.com/spf13/cobra"
)

func newCPUCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cpu",
		Short: "Print the detected ISA and the kernels Mul would pick",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			_, k32 := kernel.Select[float32](kernel.Auto)
			_, k64 := kernel.Select[float64](kernel.Auto)
			_, kInt := kernel.Select[int64](kernel.Auto)

			fmt.Fprintf(out, "isa:            %s\n", cpuinfo.Active())
			fmt.Fprintf(out, "overridden:     %t (%s)\n", cpuinfo.IsOverridden(), cpuinfo.EnvSIMD)
			fmt.Fprintf(out, "logical cores:  %d\n", cpuinfo.LogicalCores())
			fmt.Fprintf(out, "kernel float32: %s\n", k32)
			fmt.Fprintf(out, "kernel float64: %s\n", k64)
			fmt.Fprintf(out, "kernel int64:   %s\n", kInt)

			return nil
		},
	}
}
