// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arena

import "code.hybscloud.com/arena/internal/gid"

// goroutineState is the per-goroutine current/previous pool selection and
// the last error observed by this goroutine. The previous-pool "stack" is
// intentionally depth one: a second Push silently overwrites the saved
// slot rather than growing the stack, matching the allocator's original
// behavior and the round-trip property Push/Pop is tested against.
type goroutineState struct {
	current  Handle
	previous Handle
	lastErr  *Error
}

func (a *Allocator) state() *goroutineState {
	id := gid.Current()
	if v, ok := a.goroutines.Load(id); ok {
		return v.(*goroutineState)
	}
	st := &goroutineState{current: DefaultPool, previous: NoPool}
	actual, _ := a.goroutines.LoadOrStore(id, st)
	return actual.(*goroutineState)
}

func (a *Allocator) setLastErr(err *Error) {
	a.state().lastErr = err
}

// Get returns the calling goroutine's current pool handle.
func (a *Allocator) Get() Handle {
	return a.state().current
}

// Set selects h as the calling goroutine's current pool.
func (a *Allocator) Set(h Handle) error {
	p, err := a.lookup(h)
	if err != nil {
		a.setLastErr(err.(*Error))
		return err
	}
	if err := checkOwner(p); err != nil {
		a.setLastErr(err.(*Error))
		return err
	}
	a.state().current = h
	return nil
}

// Push saves the calling goroutine's current pool and selects h.
func (a *Allocator) Push(h Handle) error {
	p, err := a.lookup(h)
	if err != nil {
		a.setLastErr(err.(*Error))
		return err
	}
	if err := checkOwner(p); err != nil {
		a.setLastErr(err.(*Error))
		return err
	}
	st := a.state()
	st.previous = st.current
	st.current = h
	return nil
}

// Pop restores the pool saved by the most recent Push.
func (a *Allocator) Pop() error {
	st := a.state()
	if st.previous < 0 || int(st.previous) >= MaxPools {
		e := newError(CodeNopp)
		a.setLastErr(e)
		return e
	}
	st.current = st.previous
	st.previous = NoPool
	return nil
}

// LastErrorString returns the message of the last error observed by the
// calling goroutine, or the empty string if none.
func (a *Allocator) LastErrorString() string {
	st := a.state()
	if st.lastErr == nil {
		return ""
	}
	return st.lastErr.Error()
}

// Get returns the default Allocator's calling-goroutine current pool.
func Get() Handle { return defaultAllocator.Get() }

// Set selects h as the default Allocator's calling-goroutine current pool.
func Set(h Handle) error { return defaultAllocator.Set(h) }

// Push saves the current pool and selects h on the default Allocator.
func Push(h Handle) error { return defaultAllocator.Push(h) }

// Pop restores the pool saved by the most recent Push on the default Allocator.
func Pop() error { return defaultAllocator.Pop() }

// LastErrorString returns the default Allocator's last error message for
// the calling goroutine.
func LastErrorString() string { return defaultAllocator.LastErrorString() }
