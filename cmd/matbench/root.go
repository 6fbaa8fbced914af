// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	rf := &rootFlags{}
	root := &cobra.Command{
		Use:           "matbench",
		Short:         "Benchmark dense matrix multiplication",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&rf.verbose, "verbose", "v", false, "log every Mul call at debug level to stderr")

	root.AddCommand(newMulCmd(rf), newCPUCmd())

	return root
}

// logger returns a debug logger on w when verbose is set, a silent one otherwise.
func (rf *rootFlags) logger(w io.Writer) *slog.Logger {
	if !rf.verbose {
		return slog.New(slog.DiscardHandler)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
