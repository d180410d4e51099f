// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package arena

// raceEnabled is true when the race detector is active.
// BenchmarkConcurrentPools_TinyBudget, which runs many short-lived
// goroutines each with its own pool, is skipped in race mode.
const raceEnabled = true

// stressGoroutines is the goroutine count used by TestConcurrentPoolsDeleteAll.
// Scaled down under the race detector.
const stressGoroutines = 4
