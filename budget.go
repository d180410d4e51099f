// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arena

import (
	"math/bits"
	"sync"
)

// budget tracks total live physical bytes across every pool of an
// Allocator against a configurable ceiling.
type budget struct {
	mu        sync.Mutex
	totalLive int64
	limit     int64
	blockSize int64
}

// adjust applies a signed delta to totalLive. A positive delta is checked
// against limit first; the lazy default limit is established here on first
// use, matching the original's "don't care about thread race" comment —
// here it is simply folded into the same lock instead.
func (b *budget) adjust(delta int64, grow bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.limit <= 0 {
		if bits.UintSize > 32 {
			b.limit = DefaultMemLimit64
		} else {
			b.limit = DefaultMemLimit32
		}
	}

	if grow && b.totalLive+delta > b.limit {
		return newError(CodeExmm)
	}
	if grow {
		b.totalLive += delta
	} else {
		b.totalLive -= delta
	}
	return nil
}

func (b *budget) setLimit(n int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.limit = n
}

func (b *budget) getLimit() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.limit
}

func (b *budget) setBlockSize(n int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.blockSize = n
}

func (b *budget) getBlockSize() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.blockSize <= 0 {
		return DefaultBlockSize
	}
	return b.blockSize
}

func (b *budget) live() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.totalLive
}

func (b *budget) reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.totalLive = 0
}
