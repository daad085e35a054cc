// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poly

import (
	"reflect"
	"unsafe"
)

// wordSize is the size in bytes of one storage word. Inline payloads are
// charged one extra word of dispatch overhead, and the cell's inline
// region is word-aligned.
const wordSize = int(unsafe.Sizeof(uintptr(0)))

// DefaultStorageSize is the storage capacity used by [Make]. One word of
// dispatch overhead on top of it makes the logical footprint a round 128
// bytes on 64-bit platforms.
const DefaultStorageSize = 128 - wordSize

// cell is the storage region of a box: a fixed-capacity, word-aligned
// inline byte region plus a single owning heap reference slot. At any
// moment at most one of the two is in use; the active dispatch table is
// the only authority on which, and on the type of the bytes.
type cell struct {
	size  int      // capacity in bytes, fixed at construction
	words []uint64 // backing for the inline region; acquired lazily
	ref   any      // owning heap reference; nil unless the payload is remote
}

// inlinePtr returns the address of the inline region, acquiring backing
// words from the package pool on first use.
func (c *cell) inlinePtr() unsafe.Pointer {
	if c.words == nil {
		c.words = acquireWords(c.size)
	}
	return unsafe.Pointer(&c.words[0])
}

// clearInline zeroes the words covering an inline payload of n bytes.
// The cell holds no pointers the collector could see; clearing keeps
// stale payload bytes from leaking into the next installation.
func (c *cell) clearInline(n uintptr) {
	if c.words == nil {
		return
	}
	clear(c.words[:(int(n)+wordSize-1)/wordSize])
}

// recycle returns the backing words to the package pool. The next inline
// installation re-acquires a region.
func (c *cell) recycle() {
	if c.words == nil {
		return
	}
	releaseWords(c.words)
	c.words = nil
}

// inlineSize is the inline representation size of a concrete type: the
// payload plus one word of dispatch overhead.
func inlineSize(t reflect.Type) int {
	return wordSize + int(t.Size())
}

// inlineOK reports whether a concrete type may live in a cell of the
// given capacity: its inline representation fits (boundary inclusive),
// its alignment is at most word alignment, and it is pointer-free.
func inlineOK(t reflect.Type, size int) bool {
	return inlineSize(t) <= size &&
		t.Align() <= wordSize &&
		!hasPointers(t)
}

// Fits reports whether values of type U are stored inline by a box with
// the given storage capacity. Remote storage is always available as the
// fallback, so Fits returning false never means "cannot be stored".
func Fits[U any](storageSize int) bool {
	return inlineOK(reflect.TypeFor[U](), storageSize)
}

// hasPointers reports whether the garbage collector would need to scan a
// value of type t. Such types never enter the untyped inline region.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointer, UnsafePointer, Map, Chan, Func, Interface, Slice, String.
		return true
	}
}
