// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/lvmat/internal/cpuinfo"
	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/matrix/kernel"
	"github.com/katalvlaran/lvmat/parallel"
	"github.com/spf13/cobra"
)

var errResultMismatch = errors.New("matbench: results differ between worker counts")

type mulFlags struct {
	rows, inner, cols int
	workers           []int
	iterations        int
	dtype             string
	kernel            string
	seed              uint64
	naive             bool
	pool              bool
}

func newMulCmd(rf *rootFlags) *cobra.Command {
	f := &mulFlags{}
	cmd := &cobra.Command{
		Use:   "mul",
		Short: "Time Mul for several worker counts and check the results agree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := f.validate(); err != nil {
				return err
			}
			mode, err := kernel.ParseMode(f.kernel)
			if err != nil {
				return err
			}
			run := benchRun{
				flags:  f,
				mode:   mode,
				out:    cmd.OutOrStdout(),
				logger: rf.logger(cmd.ErrOrStderr()),
			}

			switch f.dtype {
			case "float64":
				return runMul(run, func(r *rand.Rand) float64 { return 2*r.Float64() - 1 })
			case "float32":
				return runMul(run, func(r *rand.Rand) float32 { return 2*r.Float32() - 1 })
			case "int64":
				return runMul(run, func(r *rand.Rand) int64 { return r.Int64N(200) - 100 })
			case "complex128":
				return runMul(run, func(r *rand.Rand) complex128 {
					return complex(2*r.Float64()-1, 2*r.Float64()-1)
				})
			default:
				return fmt.Errorf("matbench: unknown --type %q (float64, float32, int64, complex128)", f.dtype)
			}
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&f.rows, "rows", 256, "rows of A and of the result")
	fl.IntVar(&f.inner, "inner", 256, "columns of A, rows of B")
	fl.IntVar(&f.cols, "cols", 256, "columns of B and of the result")
	fl.IntSliceVar(&f.workers, "workers", []int{1, cpuinfo.LogicalCores()}, "worker counts to time")
	fl.IntVar(&f.iterations, "iterations", 3, "timed runs per worker count; the fastest is reported")
	fl.StringVar(&f.dtype, "type", "float64", "element type: float64, float32, int64, complex128")
	fl.StringVar(&f.kernel, "kernel", kernel.Auto.String(), "innermost kernel: auto, generic, blas")
	fl.Uint64Var(&f.seed, "seed", 1, "PCG seed for the operands")
	fl.BoolVar(&f.naive, "naive", false, "also time the naive i-j-t loop")
	fl.BoolVar(&f.pool, "pool", false, "run on a persistent worker pool instead of per-call goroutines")

	return cmd
}

func (f *mulFlags) validate() error {
	if f.rows <= 0 || f.inner <= 0 || f.cols <= 0 {
		return fmt.Errorf("matbench: --rows, --inner and --cols must be > 0, got %d, %d, %d",
			f.rows, f.inner, f.cols)
	}
	if f.iterations <= 0 {
		return fmt.Errorf("matbench: --iterations must be > 0, got %d", f.iterations)
	}
	if len(f.workers) == 0 {
		return errors.New("matbench: --workers needs at least one value")
	}
	for _, w := range f.workers {
		if w < 1 {
			return fmt.Errorf("matbench: worker count %d must be >= 1", w)
		}
	}

	return nil
}

type benchRun struct {
	flags  *mulFlags
	mode   kernel.Mode
	out    io.Writer
	logger *slog.Logger
}

// timing is the fastest of the timed runs for one configuration.
type timing struct {
	label string
	best  time.Duration
}

func runMul[T matrix.Number](run benchRun, gen func(*rand.Rand) T) error {
	f := run.flags
	rng := rand.New(rand.NewPCG(f.seed, f.seed+1))
	a, err := randomDense(f.rows, f.inner, rng, gen)
	if err != nil {
		return err
	}
	b, err := randomDense(f.inner, f.cols, rng, gen)
	if err != nil {
		return err
	}

	_, resolved := kernel.Select[T](run.mode)
	metrics := &matrix.BasicMetricsCollector{}
	base := []matrix.Option{
		matrix.WithKernel(run.mode),
		matrix.WithMinParallelWork(0),
		matrix.WithLogger(run.logger),
		matrix.WithMetrics(metrics),
	}

	var ref *matrix.Dense[T]
	timings := make([]timing, 0, len(f.workers)+1)
	for _, w := range f.workers {
		opts := append(slices.Clone(base), matrix.WithWorkers(w))
		var pool *parallel.Pool
		if f.pool {
			pool = parallel.NewPool(w)
			opts = append(opts, matrix.WithPool(pool))
		}

		best, c, err := fastest(f.iterations, func() (*matrix.Dense[T], error) {
			return matrix.Mul(a, b, opts...)
		})
		if pool != nil {
			pool.Close()
		}
		if err != nil {
			return err
		}
		if ref == nil {
			ref = c
		} else if !c.Equal(ref) {
			return fmt.Errorf("%w: workers=%d vs workers=%d", errResultMismatch, w, f.workers[0])
		}
		timings = append(timings, timing{label: fmt.Sprintf("%d", w), best: best})
	}

	if f.naive {
		best, c, err := fastest(f.iterations, func() (*matrix.Dense[T], error) {
			return matrix.MulNaive(a, b)
		})
		if err != nil {
			return err
		}
		// Same summation order as the generic kernel.
		if resolved == kernel.Generic && !c.Equal(ref) {
			return fmt.Errorf("%w: naive loop", errResultMismatch)
		}
		timings = append(timings, timing{label: "naive", best: best})
	}

	fmt.Fprintf(run.out, "A %dx%d · B %dx%d, type %s, kernel %s, isa %s\n",
		f.rows, f.inner, f.inner, f.cols, f.dtype, resolved, cpuinfo.Active())
	printTimings(run.out, timings, 2*float64(f.rows)*float64(f.inner)*float64(f.cols))
	fmt.Fprintf(run.out, "results identical across %d worker counts\n", len(f.workers))
	fmt.Fprintf(run.out, "mul calls: %d, average latency: %s\n",
		metrics.MulCount.Load(), metrics.AverageLatency())

	return nil
}

// fastest calls fn n times and returns the shortest wall time with the
// last result.
func fastest[T matrix.Number](n int, fn func() (*matrix.Dense[T], error)) (time.Duration, *matrix.Dense[T], error) {
	var (
		best time.Duration
		last *matrix.Dense[T]
	)
	for i := 0; i < n; i++ {
		start := time.Now()
		c, err := fn()
		elapsed := time.Since(start)
		if err != nil {
			return 0, nil, err
		}
		if i == 0 || elapsed < best {
			best = elapsed
		}
		last = c
	}

	return best, last, nil
}

func randomDense[T matrix.Number](rows, cols int, rng *rand.Rand, gen func(*rand.Rand) T) (*matrix.Dense[T], error) {
	flat := make([]T, rows*cols)
	for i := range flat {
		flat[i] = gen(rng)
	}

	return matrix.FromArray(rows, cols, flat)
}

func printTimings(w io.Writer, timings []timing, flops float64) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "workers\tbest\tGFLOP/s\tspeedup\t")
	base := timings[0].best
	for _, t := range timings {
		secs := max(t.best.Seconds(), 1e-9)
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.2fx\t\n",
			t.label, t.best.Round(time.Microsecond), flops/secs/1e9, float64(base)/float64(max(t.best, 1)))
	}
	_ = tw.Flush()
}
