// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arena

import "unsafe"

// PoolStats is a read-only snapshot of one pool's size, consumed by the
// statistics reporter and the CLI. Reporting crosses pool-ownership
// boundaries deliberately: an operator inspecting a process's memory use
// is not the same thing as a goroutine mutating a pool it doesn't own.
type PoolStats struct {
	Handle Handle
	Label  string
	Blocks int
	Size   int64
	Used   int64
}

// Stats returns one PoolStats entry per initialized pool, in handle order.
func (a *Allocator) Stats() []PoolStats {
	handles := a.initializedPools()
	stats := make([]PoolStats, 0, len(handles))
	for _, h := range handles {
		a.mu.Lock()
		p := &a.pools[h]
		label := p.label
		blocks := p.blockCount()
		size, used := p.byteTotals()
		a.mu.Unlock()

		stats = append(stats, PoolStats{
			Handle: h,
			Label:  label,
			Blocks: blocks,
			Size:   size,
			Used:   used,
		})
	}
	return stats
}

// PoolLabel returns h's label and whether h is currently initialized.
func (a *Allocator) PoolLabel(h Handle) (string, bool) {
	if h < 0 || int(h) >= MaxPools {
		return "", false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	p := &a.pools[h]
	return p.label, p.initialized
}

// BlockDump is a read-only snapshot of one block, consumed by the memory
// dump writer.
type BlockDump struct {
	Index int
	Addr  uintptr
	Used  int
	Bytes []byte // buffer[:used], including any leading alignment padding
}

// DumpBlocks returns a BlockDump for every block of pool h, in chain order.
func (a *Allocator) DumpBlocks(h Handle) ([]BlockDump, error) {
	if h < 0 || int(h) >= MaxPools {
		return nil, newError(CodeMpid)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	p := &a.pools[h]
	if !p.initialized {
		return nil, nil
	}

	var dumps []BlockDump
	i := 1
	for b := p.head; b != nil; b = b.next {
		dumps = append(dumps, BlockDump{
			Index: i,
			Addr:  uintptr(unsafe.Pointer(unsafe.SliceData(b.buffer))),
			Used:  int(b.used),
			Bytes: b.buffer[:b.used],
		})
		i++
	}
	return dumps, nil
}

// Stats returns one PoolStats entry per initialized pool on the default Allocator.
func Stats() []PoolStats { return defaultAllocator.Stats() }

// PoolLabel returns h's label on the default Allocator.
func PoolLabel(h Handle) (string, bool) { return defaultAllocator.PoolLabel(h) }

// DumpBlocks returns block snapshots for pool h on the default Allocator.
func DumpBlocks(h Handle) ([]BlockDump, error) { return defaultAllocator.DumpBlocks(h) }
