// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package arena provides a region-based (arena) memory allocator with a
// malloc-compatible interface. Objects allocated through a pool are never
// freed individually; the whole pool is reclaimed at once.
//
// # Pools
//
// A Pool is an ordered chain of Blocks, each a bump-pointer byte buffer.
// Pools are identified by small integer handles and registered in a
// fixed-capacity table (MaxPools slots). Handle 0 is the default pool,
// lazily created on first use.
//
//	h, err := arena.New("session buffers")
//	p, err := arena.AllocIn(256, h)
//	...
//	err = arena.Delete(h)
//
// # Current pool
//
// Each goroutine has its own notion of the "current" pool, selected with
// Set and consulted by the current-pool flavors of the allocation calls
// (Alloc, Zalloc, Realloc, DupString, FormatAlloc). Push and Pop save and
// restore exactly one prior selection:
//
//	arena.Push(h)
//	p, err := arena.Alloc(64)
//	arena.Pop()
//
// # Ownership
//
// A Pool is owned by the goroutine that created it (or, for the default
// pool, the goroutine that first touches it). Allocating in, Set, Push,
// Clear or Delete of a pool from any other goroutine fails with CodeThrd;
// DeleteAll and the read-only Stats, PoolLabel and DumpBlocks accessors do
// not check ownership. Pools must not be shared across goroutines; build
// one pool per goroutine instead.
//
// # Budget
//
// A process-wide byte ceiling bounds total live allocation across every
// pool. SetMemoryLimit adjusts it; the default is 5 GiB on 64-bit
// platforms and 3 GiB on 32-bit ones, applied lazily on first use.
//
// # Non-goals
//
// There is no per-object free (Free is a documented no-op), no moving an
// object from one pool to another, and no defragmentation of a pool's
// blocks. This package does not replace Go's runtime allocator; every
// Block is backed by an ordinary make([]byte, n) allocation.
//
// # Dependencies
//
// arena depends on:
//   - spin: yield/backoff primitives used by the concurrency benchmarks
//     and the goroutine-slot throttle in internal/stress
package arena
