// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arena

import (
	"sync"

	"code.hybscloud.com/arena/internal/gid"
)

// Allocator holds every process-wide mutable singleton: the pool registry,
// the budget, the per-goroutine current-pool map, and the trace sink. A
// package-level defaultAllocator is what the public API functions operate
// on; embedding everything in one struct keeps it possible to build an
// isolated Allocator for tests without touching global state.
type Allocator struct {
	_ noCopy

	mu    sync.Mutex
	pools [MaxPools]pool

	budget budget

	goroutines sync.Map // gid.ID -> *goroutineState

	trace traceFunc
}

var defaultAllocator = NewAllocator()

// NewAllocator returns an Allocator with an empty registry and the default
// trace sink installed.
func NewAllocator() *Allocator {
	a := &Allocator{}
	a.trace = defaultTraceFunc
	return a
}

// Default returns the process-wide Allocator that every package-level
// function (Alloc, New, Push, Stats, ...) operates on.
func Default() *Allocator {
	return defaultAllocator
}

// newPool scans the registry leaves-first for the lowest free slot, skipping
// slot 0 which is reserved for the default pool, and initializes it.
func (a *Allocator) newPool(label string) (Handle, error) {
	if label == "" {
		label = "-"
	}
	if len(label) > MaxLabelLen-1 {
		label = label[:MaxLabelLen-1]
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	for i := 1; i < MaxPools; i++ {
		if !a.pools[i].initialized {
			a.pools[i] = pool{
				initialized: true,
				label:       label,
				owner:       gid.Current(),
			}
			return Handle(i), nil
		}
	}
	return NoPool, newError(CodeExmp)
}

// lookup validates h and returns the pool slot, auto-initializing the
// default pool on first touch.
func (a *Allocator) lookup(h Handle) (*pool, error) {
	if h < 0 || int(h) >= MaxPools {
		return nil, newError(CodeMpid)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	p := &a.pools[h]
	if !p.initialized {
		if h != DefaultPool {
			return nil, newError(CodeNoin)
		}
		p.initialized = true
		p.label = "Default"
		p.owner = gid.Current()
	}
	return p, nil
}

// checkOwner fails with CodeThrd if the calling goroutine is not p's owner.
func checkOwner(p *pool) error {
	if p.owner != gid.Current() {
		return newError(CodeThrd)
	}
	return nil
}

// initializedPools returns the handles of every initialized slot, in order.
func (a *Allocator) initializedPools() []Handle {
	a.mu.Lock()
	defer a.mu.Unlock()

	var handles []Handle
	for i := 0; i < MaxPools; i++ {
		if a.pools[i].initialized {
			handles = append(handles, Handle(i))
		}
	}
	return handles
}
