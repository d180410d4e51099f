// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arena

import (
	"fmt"
	"unsafe"
)

// Alloc allocates size bytes from the calling goroutine's current pool.
func (a *Allocator) Alloc(size int) ([]byte, error) {
	return a.AllocIn(size, a.Get())
}

// AllocIn allocates size bytes from pool h.
func (a *Allocator) AllocIn(size int, h Handle) ([]byte, error) {
	chunk, err := a.getChunk(size, h, DefaultAlign)
	if err != nil {
		return nil, err
	}
	return chunk, nil
}

// Zalloc allocates n*size zeroed bytes from the current pool.
func (a *Allocator) Zalloc(n, size int) ([]byte, error) {
	return a.ZallocIn(n, size, a.Get())
}

// ZallocIn allocates n*size zeroed bytes from pool h.
func (a *Allocator) ZallocIn(n, size int, h Handle) ([]byte, error) {
	chunk, err := a.getChunk(n*size, h, DefaultAlign)
	if err != nil {
		return nil, err
	}
	clear(chunk)
	return chunk, nil
}

// AlignedAlloc allocates size bytes aligned to align from the current pool.
func (a *Allocator) AlignedAlloc(align uintptr, size int) ([]byte, error) {
	return a.AlignedAllocIn(align, size, a.Get())
}

// AlignedAllocIn allocates size bytes aligned to align from pool h.
func (a *Allocator) AlignedAllocIn(align uintptr, size int, h Handle) ([]byte, error) {
	chunk, err := a.getChunk(size, h, align)
	if err != nil {
		return nil, err
	}
	return chunk, nil
}

// Realloc allocates a fresh newSize-byte chunk from the current pool and
// copies the content of ptr into it. The old chunk is not released: this
// allocator never frees individual objects, only whole pools.
//
// Because Go slices carry their own length, the copy is a straightforward
// min(newSize, len(ptr)) rather than the original allocator's
// pointer-difference heuristic (see the design notes on this choice).
func (a *Allocator) Realloc(ptr []byte, newSize int) ([]byte, error) {
	return a.ReallocIn(ptr, newSize, a.Get())
}

// ReallocIn allocates a fresh newSize-byte chunk from pool h and copies the
// content of ptr into it.
func (a *Allocator) ReallocIn(ptr []byte, newSize int, h Handle) ([]byte, error) {
	chunk, err := a.getChunk(newSize, h, DefaultAlign)
	if err != nil {
		return nil, err
	}
	if ptr != nil {
		n := min(len(ptr), newSize)
		copy(chunk, ptr[:n])
	}
	return chunk, nil
}

// DupString allocates a copy of s in the current pool.
func (a *Allocator) DupString(s string) (string, error) {
	return a.DupStringIn(s, a.Get())
}

// DupStringIn allocates a copy of s in pool h. The chunk carries a trailing
// NUL byte beyond the returned string's length, so the allocation remains
// usable by code expecting a C-style string.
func (a *Allocator) DupStringIn(s string, h Handle) (string, error) {
	chunk, err := a.getChunk(len(s)+1, h, DefaultAlign)
	if err != nil {
		return "", err
	}
	copy(chunk, s)
	chunk[len(s)] = 0
	return unsafe.String(unsafe.SliceData(chunk), len(s)), nil
}

// FormatAlloc formats according to format and args, allocates the result in
// the current pool, and returns it as a string backed by that pool's memory.
func (a *Allocator) FormatAlloc(format string, args ...any) (string, error) {
	return a.FormatAllocIn(a.Get(), format, args...)
}

// FormatAllocIn formats according to format and args and allocates the
// result in pool h.
func (a *Allocator) FormatAllocIn(h Handle, format string, args ...any) (string, error) {
	if format == "" {
		e := newError(CodeParm)
		a.setLastErr(e)
		return "", e
	}
	s := fmt.Sprintf(format, args...)
	chunk, err := a.getChunk(len(s)+1, h, DefaultAlign)
	if err != nil {
		return "", err
	}
	copy(chunk, s)
	chunk[len(s)] = 0
	return unsafe.String(unsafe.SliceData(chunk), len(s)), nil
}

// Free is a no-op: individual chunks are never released, only whole pools.
// It exists so client code written against a standard allocator interface
// compiles unchanged.
func (a *Allocator) Free(ptr []byte) {}

// FreeIn is a no-op, see Free.
func (a *Allocator) FreeIn(ptr []byte, h Handle) {}

// Alloc allocates size bytes from the current pool on the default Allocator.
func Alloc(size int) ([]byte, error) { return defaultAllocator.Alloc(size) }

// AllocIn allocates size bytes from pool h on the default Allocator.
func AllocIn(size int, h Handle) ([]byte, error) { return defaultAllocator.AllocIn(size, h) }

// Zalloc allocates n*size zeroed bytes from the current pool on the default Allocator.
func Zalloc(n, size int) ([]byte, error) { return defaultAllocator.Zalloc(n, size) }

// ZallocIn allocates n*size zeroed bytes from pool h on the default Allocator.
func ZallocIn(n, size int, h Handle) ([]byte, error) { return defaultAllocator.ZallocIn(n, size, h) }

// AlignedAlloc allocates size bytes aligned to align from the current pool
// on the default Allocator.
func AlignedAlloc(align uintptr, size int) ([]byte, error) {
	return defaultAllocator.AlignedAlloc(align, size)
}

// AlignedAllocIn allocates size bytes aligned to align from pool h on the
// default Allocator.
func AlignedAllocIn(align uintptr, size int, h Handle) ([]byte, error) {
	return defaultAllocator.AlignedAllocIn(align, size, h)
}

// Realloc reallocates ptr to newSize bytes in the current pool on the
// default Allocator.
func Realloc(ptr []byte, newSize int) ([]byte, error) {
	return defaultAllocator.Realloc(ptr, newSize)
}

// ReallocIn reallocates ptr to newSize bytes in pool h on the default Allocator.
func ReallocIn(ptr []byte, newSize int, h Handle) ([]byte, error) {
	return defaultAllocator.ReallocIn(ptr, newSize, h)
}

// DupString duplicates s into the current pool on the default Allocator.
func DupString(s string) (string, error) { return defaultAllocator.DupString(s) }

// DupStringIn duplicates s into pool h on the default Allocator.
func DupStringIn(s string, h Handle) (string, error) { return defaultAllocator.DupStringIn(s, h) }

// FormatAlloc formats and allocates into the current pool on the default Allocator.
func FormatAlloc(format string, args ...any) (string, error) {
	return defaultAllocator.FormatAlloc(format, args...)
}

// FormatAllocIn formats and allocates into pool h on the default Allocator.
func FormatAllocIn(h Handle, format string, args ...any) (string, error) {
	return defaultAllocator.FormatAllocIn(h, format, args...)
}

// Free is a no-op on the default Allocator, see Allocator.Free.
func Free(ptr []byte) {}

// FreeIn is a no-op on the default Allocator, see Allocator.Free.
func FreeIn(ptr []byte, h Handle) {}
