// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gid

import (
	"sync"
	"testing"
)

func TestCurrent_StableWithinGoroutine(t *testing.T) {
	a := Current()
	b := Current()
	if a != b {
		t.Fatalf("Current changed within the same goroutine: %d != %d", a, b)
	}
	if a == 0 {
		t.Fatalf("Current returned zero ID")
	}
}

func TestCurrent_DistinctAcrossGoroutines(t *testing.T) {
	const n = 8
	ids := make([]ID, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			ids[i] = Current()
		}(i)
	}
	wg.Wait()

	seen := make(map[ID]int)
	for _, id := range ids {
		seen[id]++
	}
	for id, count := range seen {
		if count > 1 {
			t.Fatalf("goroutine ID %d reused by %d goroutines", id, count)
		}
	}
}
