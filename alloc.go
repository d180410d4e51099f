// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arena

import "unsafe"

var pointerSize = unsafe.Sizeof(uintptr(0))

// getChunk validates the request, selects a pool, and carves an aligned
// chunk from its tail block, growing the pool by one block if needed.
//
// Validation order matches the original allocator exactly: negative size,
// out-of-range handle, uninitialized non-default handle, bad alignment,
// then ownership. Getting this order wrong changes which error callers see
// first when more than one condition is violated at once.
func (a *Allocator) getChunk(size int, h Handle, align uintptr) ([]byte, error) {
	if size < 0 {
		e := newError(CodeSzng)
		a.setLastErr(e)
		return nil, e
	}

	p, err := a.lookup(h)
	if err != nil {
		a.setLastErr(err.(*Error))
		return nil, err
	}

	if align&(align-1) != 0 || align < pointerSize {
		e := newError(CodeExal)
		a.setLastErr(e)
		return nil, e
	}
	if align < DefaultAlign {
		align = DefaultAlign
	}

	if size == 0 {
		size = 1
	}

	if err := checkOwner(p); err != nil {
		a.setLastErr(err.(*Error))
		return nil, err
	}

	// No lock here: a pool is touched only by its owning goroutine
	// (enforced by checkOwner above), so the tail-block fast path and the
	// grow-by-one-block slow path both run single-threaded per pool. Only
	// budget.adjust and the registry's own slot array take a lock.
	if p.tail != nil {
		if chunk, ok := p.tail.tryBump(size, align); ok {
			return chunk, nil
		}
	}

	chunk, err := a.growPool(p, size, align)
	if err != nil {
		a.setLastErr(err.(*Error))
		return nil, err
	}
	return chunk, nil
}

// growPool appends a new block to p sized to hold at least size bytes,
// charging its raw reservation against the budget before the block is
// created so a rejected allocation never touches memory.
func (a *Allocator) growPool(p *pool, size int, align uintptr) ([]byte, error) {
	capacity := int(a.budget.getBlockSize())
	if size > capacity {
		capacity = size
	}
	rawSize := int64(capacity) + int64(align) - 1

	if err := a.budget.adjust(rawSize, true); err != nil {
		return nil, err
	}

	bl := newBlock(capacity, align)
	chunk, ok := bl.tryBump(size, align)
	if !ok {
		// Can only happen if capacity was computed too small, which
		// growPool's own sizing above prevents.
		a.budget.adjust(rawSize, false)
		return nil, newError(CodeAllo)
	}

	p.append(bl)
	return chunk, nil
}
