// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arena

// Handle identifies a pool in the registry.
type Handle int

const (
	// DefaultPool is the handle of the implicit, lazily-initialized default pool.
	DefaultPool Handle = 0

	// NoPool is the sentinel handle meaning "no pool selected".
	NoPool Handle = -2

	// MaxPools is the capacity of the pool registry, including the default slot.
	MaxPools = 100

	// DefaultAlign is the alignment applied when a caller requests a smaller one.
	DefaultAlign uintptr = 8

	// DefaultBlockSize is the block capacity used when a pool has not been tuned.
	DefaultBlockSize = 250 * 1024

	// MaxLabelLen bounds a pool's descriptive label, including the terminator.
	MaxLabelLen = 128

	// DefaultMemLimit64 is the default live-byte ceiling on 64-bit platforms (5 GiB).
	DefaultMemLimit64 = 5 * 1024 * 1024 * 1024

	// DefaultMemLimit32 is the default live-byte ceiling on 32-bit platforms (3 GiB).
	DefaultMemLimit32 = 3 * 1024 * 1024 * 1024
)

// noCopy is a sentinel used to prevent copying of synchronization primitives.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
