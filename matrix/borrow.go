// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"sync/atomic"
)

// borrowState tracks open row sequences on a Dense.
// n > 0 counts shared holders (RowViews loops, running Mul reads),
// n == -1 marks the single exclusive holder (a RowViewsMut loop).
type borrowState struct {
	n atomic.Int32
}

const exclusive = -1

func borrowPanic(op string) {
	panic(fmt.Errorf("Dense.%s: %w", op, ErrBorrowed))
}

// share registers a shared holder; panics if an exclusive one exists.
func (b *borrowState) share(op string) {
	for {
		v := b.n.Load()
		if v == exclusive {
			borrowPanic(op)
		}
		if b.n.CompareAndSwap(v, v+1) {
			return
		}
	}
}

func (b *borrowState) unshare() { b.n.Add(-1) }

// lock takes the exclusive hold; panics if any holder exists.
func (b *borrowState) lock(op string) {
	if !b.n.CompareAndSwap(0, exclusive) {
		borrowPanic(op)
	}
}

func (b *borrowState) unlock() { b.n.Store(0) }

// checkFree panics if an exclusive holder exists. Shared holders are fine.
func (b *borrowState) checkFree(op string) {
	if b.n.Load() == exclusive {
		borrowPanic(op)
	}
}

// isLocked reports an exclusive hold without panicking.
func (b *borrowState) isLocked() bool { return b.n.Load() == exclusive }

// isHeld reports any holder, shared or exclusive.
func (b *borrowState) isHeld() bool { return b.n.Load() != 0 }
