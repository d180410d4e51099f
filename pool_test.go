// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arena

import "testing"

func TestPool_AppendAndTotals(t *testing.T) {
	var p pool

	b1 := newBlock(64, DefaultAlign)
	b1.tryBump(20, DefaultAlign)
	p.append(b1)

	b2 := newBlock(64, DefaultAlign)
	b2.tryBump(30, DefaultAlign)
	p.append(b2)

	if got := p.blockCount(); got != 2 {
		t.Errorf("blockCount() = %d, want 2", got)
	}

	size, used := p.byteTotals()
	if size != b1.rawSize()+b2.rawSize() {
		t.Errorf("byteTotals size = %d, want %d", size, b1.rawSize()+b2.rawSize())
	}
	if used != int64(b1.used)+int64(b2.used) {
		t.Errorf("byteTotals used = %d, want %d", used, int64(b1.used)+int64(b2.used))
	}
}

func TestPool_Clear(t *testing.T) {
	var p pool
	bl := newBlock(64, DefaultAlign)
	bl.tryBump(40, DefaultAlign)
	p.append(bl)

	p.clear()
	if bl.used != 0 {
		t.Errorf("used after clear = %d, want 0", bl.used)
	}
	if p.blockCount() != 1 {
		t.Error("clear() must not release blocks")
	}
}

func TestPool_Reset(t *testing.T) {
	p := pool{initialized: true, label: "x"}
	p.append(newBlock(16, DefaultAlign))

	p.reset()
	if p.initialized {
		t.Error("initialized still true after reset")
	}
	if p.label != "" {
		t.Errorf("label = %q, want empty", p.label)
	}
	if p.head != nil || p.tail != nil {
		t.Error("head/tail not cleared by reset")
	}
	if p.owner != 0 {
		t.Error("owner not cleared by reset")
	}
}
