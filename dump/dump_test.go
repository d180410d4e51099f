// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dump_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"code.hybscloud.com/arena"
	"code.hybscloud.com/arena/dump"
	"github.com/google/uuid"
)

func TestWriteTo_IncludesPoolLabel(t *testing.T) {
	a := arena.NewAllocator()
	h, err := a.New("events")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	chunk, err := a.AllocIn(40, h)
	if err != nil {
		t.Fatalf("AllocIn() failed: %v", err)
	}
	copy(chunk, "hello world")

	var buf bytes.Buffer
	id := uuid.New()
	if err := dump.WriteTo(&buf, id, a); err != nil {
		t.Fatalf("WriteTo() failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "events") {
		t.Errorf("dump missing pool label, got:\n%s", out)
	}
	if !strings.Contains(out, id.String()) {
		t.Errorf("dump missing correlation id, got:\n%s", out)
	}
	if !strings.Contains(out, "hello world") {
		t.Errorf("dump missing ASCII rendering of allocated bytes, got:\n%s", out)
	}
}

func TestToFile_WritesFile(t *testing.T) {
	a := arena.NewAllocator()
	h, err := a.New("events")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if _, err := a.AllocIn(64, h); err != nil {
		t.Fatalf("AllocIn() failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "dump.txt")
	id, err := dump.ToFile(path, a)
	if err != nil {
		t.Fatalf("ToFile() failed: %v", err)
	}
	if id == uuid.Nil {
		t.Error("ToFile() returned nil uuid")
	}
}

func TestDumpBlock_SkipsZeroRuns(t *testing.T) {
	a := arena.NewAllocator()
	h, err := a.New("zeros")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if _, err := a.ZallocIn(1, 256, h); err != nil {
		t.Fatalf("ZallocIn() failed: %v", err)
	}

	var buf bytes.Buffer
	if err := dump.WriteTo(&buf, uuid.New(), a); err != nil {
		t.Fatalf("WriteTo() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "skipped zero bytes") {
		t.Errorf("expected zero-byte run to be skipped, got:\n%s", buf.String())
	}
}
