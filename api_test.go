// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arena

import "testing"

func TestAllocator_Alloc(t *testing.T) {
	a := NewAllocator()
	chunk, err := a.Alloc(32)
	if err != nil {
		t.Fatalf("Alloc() failed: %v", err)
	}
	if len(chunk) != 32 {
		t.Errorf("len(chunk) = %d, want 32", len(chunk))
	}
}

func TestAllocator_Zalloc_IsZeroed(t *testing.T) {
	a := NewAllocator()
	chunk, err := a.Zalloc(8, 4)
	if err != nil {
		t.Fatalf("Zalloc() failed: %v", err)
	}
	if len(chunk) != 32 {
		t.Fatalf("len(chunk) = %d, want 32", len(chunk))
	}
	for i, b := range chunk {
		if b != 0 {
			t.Fatalf("chunk[%d] = %d, want 0", i, b)
		}
	}
}

func TestAllocator_AlignedAlloc(t *testing.T) {
	a := NewAllocator()
	chunk, err := a.AlignedAlloc(64, 100)
	if err != nil {
		t.Fatalf("AlignedAlloc() failed: %v", err)
	}
	if len(chunk) != 100 {
		t.Errorf("len(chunk) = %d, want 100", len(chunk))
	}
}

func TestAllocator_Realloc_CopiesMinLength(t *testing.T) {
	a := NewAllocator()
	orig, err := a.Alloc(8)
	if err != nil {
		t.Fatalf("Alloc() failed: %v", err)
	}
	copy(orig, "ABCDEFGH")

	grown, err := a.Realloc(orig, 16)
	if err != nil {
		t.Fatalf("Realloc(grow) failed: %v", err)
	}
	if string(grown[:8]) != "ABCDEFGH" {
		t.Errorf("grown content = %q, want ABCDEFGH prefix", grown[:8])
	}

	shrunk, err := a.Realloc(grown, 4)
	if err != nil {
		t.Fatalf("Realloc(shrink) failed: %v", err)
	}
	if string(shrunk) != "ABCD" {
		t.Errorf("shrunk content = %q, want ABCD", shrunk)
	}
}

func TestAllocator_Realloc_NilPointer(t *testing.T) {
	a := NewAllocator()
	chunk, err := a.Realloc(nil, 16)
	if err != nil {
		t.Fatalf("Realloc(nil) failed: %v", err)
	}
	if len(chunk) != 16 {
		t.Errorf("len(chunk) = %d, want 16", len(chunk))
	}
}

func TestAllocator_DupString(t *testing.T) {
	a := NewAllocator()
	s, err := a.DupString("hello")
	if err != nil {
		t.Fatalf("DupString() failed: %v", err)
	}
	if s != "hello" {
		t.Errorf("DupString() = %q, want hello", s)
	}
}

func TestAllocator_FormatAlloc(t *testing.T) {
	a := NewAllocator()
	s, err := a.FormatAlloc("n=%d label=%s", 3, "x")
	if err != nil {
		t.Fatalf("FormatAlloc() failed: %v", err)
	}
	if s != "n=3 label=x" {
		t.Errorf("FormatAlloc() = %q", s)
	}
}

func TestAllocator_FormatAlloc_EmptyFormat(t *testing.T) {
	a := NewAllocator()
	_, err := a.FormatAlloc("")
	if ae, ok := err.(*Error); !ok || ae.Code != CodeParm {
		t.Fatalf("err = %v, want CodeParm", err)
	}
}

func TestAllocator_Free_IsNoOp(t *testing.T) {
	a := NewAllocator()
	chunk, err := a.Alloc(8)
	if err != nil {
		t.Fatalf("Alloc() failed: %v", err)
	}
	a.Free(chunk)
	if chunk[0] != 0 {
		t.Error("Free() must not mutate the chunk")
	}
}
