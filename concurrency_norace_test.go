// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

package arena

// raceEnabled is false when the race detector is not active.
const raceEnabled = false

// stressGoroutines is the goroutine count used by TestConcurrentPoolsDeleteAll.
const stressGoroutines = 10
