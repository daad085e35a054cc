// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poly

import (
	"math/bits"
	"sync"
)

// Cell backing pools, one per power-of-two size class from minClassSize
// to maxClassSize bytes. Acquired regions are zeroed before reuse, so a
// freshly acquired cell never exposes a previous payload's bytes.
// Capacities above the largest class allocate directly and are dropped on
// release.

const (
	minClassShift = 3 // 8 bytes, one word
	maxClassShift = 12
	maxClassSize  = 1 << maxClassShift
)

var wordPools [maxClassShift - minClassShift + 1]sync.Pool

// classIndex returns the pool index of the smallest class holding size
// bytes, or -1 if the size exceeds the largest class.
func classIndex(size int) int {
	if size <= 1<<minClassShift {
		return 0
	}
	if size > maxClassSize {
		return -1
	}
	return bits.Len(uint(size-1)) - minClassShift
}

// acquireWords returns a zeroed word slice covering at least size bytes.
func acquireWords(size int) []uint64 {
	idx := classIndex(size)
	if idx < 0 {
		return make([]uint64, (size+wordSize-1)/wordSize)
	}
	if v := wordPools[idx].Get(); v != nil {
		return *v.(*[]uint64)
	}
	return make([]uint64, (1<<(idx+minClassShift))/wordSize)
}

// releaseWords zeroes w and returns it to its size-class pool; oversized
// regions are left to the collector.
func releaseWords(w []uint64) {
	idx := classIndex(len(w) * wordSize)
	if idx < 0 || len(w)*wordSize != 1<<(idx+minClassShift) {
		return
	}
	clear(w)
	wordPools[idx].Put(&w)
}
