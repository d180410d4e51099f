// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package stress provides a bounded goroutine-slot throttle used by the
// concurrency benchmarks that hammer the allocator from
// many goroutines at once. It keeps the teacher package's lock-free MPMC
// bounded pool (Nikolaev 2019) but stores plain integer tokens instead of
// typed buffers, and replaces the blocking-with-adaptive-backoff contract
// (previously expressed through iox's ErrWouldBlock) with a small local
// sentinel, since there is no I/O-latency rationale here to justify a
// generic retryable-backpressure dependency.
package stress

import (
	"errors"
	"math"
	"sync/atomic"
	"unsafe"

	"code.hybscloud.com/arena/internal"
	"code.hybscloud.com/spin"
)

// ErrWouldBlock is returned by Get/Put of a non-blocking TokenPool when no
// progress can be made immediately.
var ErrWouldBlock = errors.New("stress: would block")

const (
	entryEmpty    = 1 << 62
	entryTurnMask = entryEmpty>>32 - 1
)

// TokenPool is a bounded MPMC pool of integer tokens (0..capacity-1), used
// to cap how many goroutines concurrently exercise an Allocator in a stress
// test: a goroutine must Get a token before allocating and Put it back when
// done, so at most capacity goroutines run the hot path at once.
type TokenPool struct {
	_ noCopy

	capacity   uint32
	mask       uint32
	entries    []atomic.Uint64
	remapM     uint32
	remapN     uint32
	remapMask  uint32
	head, tail atomic.Uint32

	nonblocking bool
}

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// NewTokenPool creates a TokenPool with the given capacity, rounded up to
// the next power of two, and fills it with the tokens 0..capacity-1.
func NewTokenPool(capacity int) *TokenPool {
	if capacity < 1 || capacity > math.MaxUint32 {
		panic("capacity must be between 1 and MaxUint32")
	}
	capacity--
	capacity |= capacity >> 1
	capacity |= capacity >> 2
	capacity |= capacity >> 4
	capacity |= capacity >> 8
	capacity |= capacity >> 16
	capacity++

	remapM := min(internal.CacheLineSize/unsafe.Sizeof(atomic.Uint64{}), uintptr(capacity))
	remapN := max(1, uintptr(capacity)/remapM)
	remapMask := remapN - 1

	pool := &TokenPool{
		capacity:  uint32(capacity),
		mask:      uint32(capacity - 1),
		remapM:    uint32(remapM),
		remapN:    uint32(remapN),
		remapMask: uint32(remapMask),
	}
	pool.entries = make([]atomic.Uint64, capacity)
	for i := range uint32(capacity) {
		pool.entries[i].Store(uint64(i))
	}
	pool.tail.Store(uint32(capacity))
	return pool
}

// SetNonblock enables or disables non-blocking mode.
func (p *TokenPool) SetNonblock(nonblocking bool) {
	p.nonblocking = nonblocking
}

// Cap returns the pool's capacity.
func (p *TokenPool) Cap() int {
	return int(p.capacity)
}

// Get acquires a token, blocking with adaptive spin/yield backoff unless
// the pool is non-blocking, in which case it returns ErrWouldBlock
// immediately when empty.
func (p *TokenPool) Get() (int, error) {
	var sw spin.Wait
	for {
		entry, err := p.tryGet()
		if err == nil {
			return int(entry & uint64(p.mask)), nil
		}
		if p.nonblocking {
			return -1, err
		}
		sw.Once()
	}
}

// Put returns a token to the pool, blocking with adaptive spin/yield
// backoff unless the pool is non-blocking, in which case it returns
// ErrWouldBlock immediately when full.
func (p *TokenPool) Put(token int) error {
	entry := uint64(token)
	var sw spin.Wait
	for {
		err := p.tryPut(entry)
		if err == nil {
			return nil
		}
		if p.nonblocking {
			return err
		}
		sw.Once()
	}
}

func (p *TokenPool) tryGet() (entry uint64, err error) {
	sw := spin.Wait{}
	for {
		h, t := p.head.Load(), p.tail.Load()
		hi := p.remap(h & p.mask)
		e := p.entries[hi].Load()

		if h != p.head.Load() {
			sw.Once()
			continue
		}
		if h == t {
			return entryEmpty, ErrWouldBlock
		}

		nextTurn := (h/p.capacity + 1) & entryTurnMask
		if e == p.empty(nextTurn) {
			p.head.CompareAndSwap(h, h+1)
			sw.Once()
			continue
		}
		ok := p.entries[hi].CompareAndSwap(e, p.empty(nextTurn))
		p.head.CompareAndSwap(h, h+1)
		if ok {
			return e, nil
		}
		sw.Once()
	}
}

func (p *TokenPool) tryPut(e uint64) error {
	sw := spin.Wait{}
	for {
		h, t := p.head.Load(), p.tail.Load()
		if t != p.tail.Load() {
			sw.Once()
			continue
		}
		if t == h+p.capacity {
			return ErrWouldBlock
		}
		turn, ti := (t/p.capacity)&entryTurnMask, p.remap(t)
		ok := p.entries[ti].CompareAndSwap(p.empty(turn), e)
		p.tail.CompareAndSwap(t, t+1)
		if ok {
			return nil
		}
		sw.Once()
	}
}

func (p *TokenPool) remap(cursor uint32) int {
	q, r := cursor/p.remapN, cursor&p.remapMask
	return int(r*p.remapM + q%p.remapM)
}

func (p *TokenPool) empty(turn uint32) uint64 {
	return entryEmpty | uint64(turn&entryTurnMask)
}
