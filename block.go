// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arena

import "unsafe"

// block is a contiguous byte buffer plus a bump cursor. It serves aligned
// chunks from its tail until exhausted; a block never splits, merges, or
// moves once constructed, and residual space in a non-tail block of a pool
// is abandoned rather than reused.
type block struct {
	buffer []byte // raw reservation, capacity+align-1 bytes
	used   uintptr
	end    uintptr // offset just past the aligned capacity-byte sub-range
	next   *block
}

// newBlock reserves a raw buffer large enough to carve out an aligned chunk
// of capacity bytes, using the same reserve-then-locate-the-aligned-subrange
// technique as page-aligned memory: allocate capacity+align-1 bytes and
// slide forward to the first address that is a multiple of align.
func newBlock(capacity int, align uintptr) *block {
	raw := make([]byte, uintptr(capacity)+align-1)
	base := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	margin := align - base%align
	if margin == align {
		margin = 0
	}
	return &block{buffer: raw, used: margin, end: margin + uintptr(capacity)}
}

// tryBump attempts to carve size bytes aligned to align off the tail of the
// block. It returns the chunk and true on success.
func (bl *block) tryBump(size int, align uintptr) ([]byte, bool) {
	base := uintptr(unsafe.Pointer(unsafe.SliceData(bl.buffer)))
	margin := align - (base+bl.used)%align
	if margin == align {
		margin = 0
	}
	if bl.used+margin+uintptr(size) > bl.end {
		return nil, false
	}
	bl.used += margin
	chunk := bl.buffer[bl.used : bl.used+uintptr(size)]
	bl.used += uintptr(size)
	return chunk, true
}

// rawSize is the number of raw bytes this block reserved, the figure the
// budget is charged and credited against.
func (bl *block) rawSize() int64 {
	return int64(len(bl.buffer))
}
