// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arena

import "testing"

func TestBudget_AdjustGrowsAndShrinks(t *testing.T) {
	var b budget
	b.setLimit(1000)

	if err := b.adjust(400, true); err != nil {
		t.Fatalf("adjust(grow) failed: %v", err)
	}
	if got := b.live(); got != 400 {
		t.Errorf("live() = %d, want 400", got)
	}

	if err := b.adjust(100, false); err != nil {
		t.Fatalf("adjust(shrink) failed: %v", err)
	}
	if got := b.live(); got != 300 {
		t.Errorf("live() = %d, want 300", got)
	}
}

func TestBudget_AdjustRejectsOverLimit(t *testing.T) {
	var b budget
	b.setLimit(100)

	if err := b.adjust(50, true); err != nil {
		t.Fatalf("adjust() failed: %v", err)
	}
	err := b.adjust(51, true)
	if err == nil {
		t.Fatal("expected error exceeding limit, got nil")
	}
	ae, ok := err.(*Error)
	if !ok || ae.Code != CodeExmm {
		t.Errorf("err = %v, want CodeExmm", err)
	}
	if got := b.live(); got != 50 {
		t.Errorf("live() after rejected grow = %d, want unchanged 50", got)
	}
}

func TestBudget_LazyDefaultLimit(t *testing.T) {
	var b budget
	if got := b.getLimit(); got != 0 {
		t.Fatalf("fresh budget limit = %d, want 0 before first adjust", got)
	}
	if err := b.adjust(1, true); err != nil {
		t.Fatalf("adjust() failed: %v", err)
	}
	if got := b.getLimit(); got <= 0 {
		t.Errorf("limit after lazy init = %d, want positive default", got)
	}
}

func TestBudget_BlockSizeDefault(t *testing.T) {
	var b budget
	if got := b.getBlockSize(); got != DefaultBlockSize {
		t.Errorf("getBlockSize() = %d, want default %d", got, DefaultBlockSize)
	}
	b.setBlockSize(1024)
	if got := b.getBlockSize(); got != 1024 {
		t.Errorf("getBlockSize() = %d, want 1024", got)
	}
}

func TestBudget_Reset(t *testing.T) {
	var b budget
	b.setLimit(1000)
	if err := b.adjust(500, true); err != nil {
		t.Fatalf("adjust() failed: %v", err)
	}
	b.reset()
	if got := b.live(); got != 0 {
		t.Errorf("live() after reset = %d, want 0", got)
	}
}
