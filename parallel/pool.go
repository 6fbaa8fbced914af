// SPDX-License-Identifier: MIT

package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of long-lived worker goroutines. Create it once, pass it
// to every multiplication that should share it and Close it when done.
//
//	pool := parallel.NewPool(0)
//	defer pool.Close()
//	c, err := matrix.Mul(a, b, matrix.WithPool(pool))
type Pool struct {
	numWorkers int
	workC      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

type task struct {
	fn      func()
	barrier *sync.WaitGroup
}

// NewPool starts numWorkers workers. numWorkers <= 0 means GOMAXPROCS.
func NewPool(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.fn()
		t.barrier.Done()
	}
}

// NumWorkers returns the pool size.
func (p *Pool) NumWorkers() int { return p.numWorkers }

// Close stops the workers after pending work drains. Safe to call twice.
// ParallelFor on a closed pool runs sequentially on the caller. Close must
// not run concurrently with ParallelFor.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor runs fn over Split(n, NumWorkers()) on the pool's workers and
// blocks until every range is done. The partition is the same one For uses.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if p.closed.Load() {
		fn(0, n)
		return
	}

	ranges := Split(n, p.numWorkers)
	if len(ranges) == 1 {
		fn(0, n)
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(ranges))
	for _, r := range ranges {
		p.workC <- task{
			fn:      func() { fn(r.Start, r.End) },
			barrier: &wg,
		}
	}
	wg.Wait()
}
