// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arena

import "code.hybscloud.com/arena/internal/gid"

// pool is a chain of blocks sharing a label and an owning goroutine. It has
// no free-list: once a block stops being the tail, its residual capacity is
// abandoned, never reclaimed by a later allocation in the same pool.
type pool struct {
	initialized bool
	label       string
	head, tail  *block
	owner       gid.ID
}

// blockCount and byteTotals give the statistics reporter and the dump
// writer the figures they need without exposing the block chain itself.
func (p *pool) blockCount() int {
	n := 0
	for b := p.head; b != nil; b = b.next {
		n++
	}
	return n
}

func (p *pool) byteTotals() (size, used int64) {
	for b := p.head; b != nil; b = b.next {
		size += b.rawSize()
		used += int64(b.used)
	}
	return
}

func (p *pool) append(bl *block) {
	if p.head == nil {
		p.head = bl
	} else {
		p.tail.next = bl
	}
	p.tail = bl
}

func (p *pool) clear() {
	for b := p.head; b != nil; b = b.next {
		b.used = 0
	}
}

func (p *pool) reset() {
	p.initialized = false
	p.label = ""
	p.head = nil
	p.tail = nil
	p.owner = 0
}
