// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arena

import (
	"sync"
	"testing"
)

// TestConcurrentPoolsDeleteAll drives stressGoroutines goroutines, each
// owning three pools it allocates into and then either clears or deletes.
// Once every goroutine has returned, DeleteAll from the test goroutine must
// reclaim everything: no registry slot left initialized and no live bytes
// left outstanding.
func TestConcurrentPoolsDeleteAll(t *testing.T) {
	a := NewAllocator()

	var wg sync.WaitGroup
	wg.Add(stressGoroutines)
	for g := 0; g < stressGoroutines; g++ {
		go func(n int) {
			defer wg.Done()

			handles := make([]Handle, 3)
			for i := range handles {
				h, err := a.New("worker pool")
				if err != nil {
					t.Errorf("goroutine %d: New() failed: %v", n, err)
					return
				}
				handles[i] = h
			}

			for _, h := range handles {
				if _, err := a.AllocIn(64, h); err != nil {
					t.Errorf("goroutine %d: AllocIn() failed: %v", n, err)
					return
				}
			}

			// Every third goroutine clears instead of deleting, leaving its
			// pools initialized (but empty) for DeleteAll to reclaim.
			if n%3 == 0 {
				for _, h := range handles {
					if err := a.Clear(h); err != nil {
						t.Errorf("goroutine %d: Clear() failed: %v", n, err)
						return
					}
				}
				return
			}

			for _, h := range handles {
				if err := a.Delete(h); err != nil {
					t.Errorf("goroutine %d: Delete() failed: %v", n, err)
					return
				}
			}
		}(g)
	}
	wg.Wait()

	if err := a.DeleteAll(); err != nil {
		t.Fatalf("DeleteAll() failed: %v", err)
	}
	if got := a.budget.live(); got != 0 {
		t.Errorf("live() after DeleteAll = %d, want 0", got)
	}
	if got := a.initializedPools(); len(got) != 0 {
		t.Errorf("initializedPools() after DeleteAll = %v, want none", got)
	}
}
