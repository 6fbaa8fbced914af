package matrix

import "github.com/katalvlaran/lvmat/matrix/kernel"

// MulRawForTest exposes the unchecked product on raw row-major buffers so
// tests can cover zero-sized shapes the public constructors reject.
func MulRawForTest[T Number](a, b []T, m, k, n, workers int) []T {
	o := gatherOptions(WithWorkers(workers), WithMinParallelWork(0), WithKernel(kernel.Generic))
	plan := newMulPlan[T](m, k, n, o)
	c := make([]T, m*n)
	plan.run(c, a, b)

	return c
}

// PlanWorkersForTest reports how many row ranges Mul would use.
func PlanWorkersForTest(m, k, n int, opts ...Option) int {
	return newMulPlan[float64](m, k, n, gatherOptions(opts...)).workers
}
