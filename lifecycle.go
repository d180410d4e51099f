// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arena

// New initializes the next available pool slot with the given label and
// returns its handle. The label is truncated to MaxLabelLen-1 bytes; an
// empty label is recorded as "-".
func (a *Allocator) New(label string) (Handle, error) {
	h, err := a.newPool(label)
	if err != nil {
		a.setLastErr(err.(*Error))
		return NoPool, err
	}
	return h, nil
}

// Clear resets every block of pool h to empty without releasing its
// buffers. The live-byte budget is unaffected.
func (a *Allocator) Clear(h Handle) error {
	if h < 0 || int(h) >= MaxPools {
		e := newError(CodeMpid)
		a.setLastErr(e)
		return e
	}

	a.mu.Lock()
	p := &a.pools[h]
	a.mu.Unlock()

	if err := checkOwner(p); err != nil {
		a.setLastErr(err.(*Error))
		return err
	}

	p.clear()
	return nil
}

// Delete releases every block of pool h and frees its registry slot.
func (a *Allocator) Delete(h Handle) error {
	if h < 0 || int(h) >= MaxPools {
		e := newError(CodeMpid)
		a.setLastErr(e)
		return e
	}

	a.mu.Lock()
	p := &a.pools[h]
	a.mu.Unlock()

	if err := checkOwner(p); err != nil {
		a.setLastErr(err.(*Error))
		return err
	}

	for b := p.head; b != nil; b = b.next {
		a.budget.adjust(b.rawSize(), false)
	}

	a.mu.Lock()
	p.reset()
	a.mu.Unlock()
	return nil
}

// DeleteAll releases every initialized pool regardless of owner and resets
// the live-byte budget to zero. It is intended for process shutdown from
// the main goroutine and does not check pool ownership.
func (a *Allocator) DeleteAll() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.pools {
		a.pools[i].reset()
	}
	a.budget.reset()
	return nil
}

// New creates a pool on the default Allocator.
func New(label string) (Handle, error) { return defaultAllocator.New(label) }

// Clear resets pool h on the default Allocator.
func Clear(h Handle) error { return defaultAllocator.Clear(h) }

// Delete releases pool h on the default Allocator.
func Delete(h Handle) error { return defaultAllocator.Delete(h) }

// DeleteAll releases every pool on the default Allocator.
func DeleteAll() error { return defaultAllocator.DeleteAll() }

// SetMemoryLimit sets the default Allocator's live-byte ceiling.
func SetMemoryLimit(bytes int64) { defaultAllocator.budget.setLimit(bytes) }

// GetMemoryLimit returns the default Allocator's live-byte ceiling.
func GetMemoryLimit() int64 { return defaultAllocator.budget.getLimit() }

// SetBlockSize sets the default Allocator's block capacity for future growth.
func SetBlockSize(bytes int64) { defaultAllocator.budget.setBlockSize(bytes) }

// GetBlockSize returns the default Allocator's configured block capacity.
func GetBlockSize() int64 { return defaultAllocator.budget.getBlockSize() }
