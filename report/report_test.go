// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package report_test

import (
	"bytes"
	"strings"
	"testing"

	"code.hybscloud.com/arena"
	"code.hybscloud.com/arena/report"
)

func TestWrite_EmptyAllocator(t *testing.T) {
	a := arena.NewAllocator()
	var buf bytes.Buffer

	if err := report.Write(&buf, a); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Write() produced no output")
	}
}

func TestWrite_ListsPools(t *testing.T) {
	a := arena.NewAllocator()
	h, err := a.New("orders")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if _, err := a.AllocIn(128, h); err != nil {
		t.Fatalf("AllocIn() failed: %v", err)
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, a); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "orders") {
		t.Errorf("report output missing pool label, got:\n%s", buf.String())
	}
}
