// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package gid extracts a stable per-goroutine identity. Go exposes no
// public thread-local storage, so the identity is recovered by parsing the
// header line of runtime.Stack, the same technique used elsewhere to pin
// state to a goroutine, corrected here to accumulate only the decimal
// digits of the ID instead of every raw header byte.
package gid

import "runtime"

// ID is an opaque, comparable per-goroutine identity.
type ID uint64

// Current returns the identity of the calling goroutine.
//
// runtime.Stack(buf, false) always begins the buffer with a line of the
// form "goroutine 123 [running]:". Current skips the "goroutine " prefix
// and accumulates the decimal digits that follow, stopping at the first
// non-digit byte (the space before the bracketed state).
func Current() ID {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	line := buf[:n]

	const prefix = "goroutine "
	i := 0
	for ; i < len(prefix) && i < len(line); i++ {
		if line[i] != prefix[i] {
			break
		}
	}
	if i != len(prefix) {
		return 0
	}

	var id ID
	for _, c := range line[i:] {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + ID(c-'0')
	}
	return id
}
