// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poly

import "reflect"

// heapTable returns the dispatch table for payloads of type U owned
// behind a heap reference. Relocation re-inlines into a large enough
// destination; the reference transfers otherwise.
func heapTable[U any, T any]() *table[T] {
	conc := reflect.TypeFor[U]()
	return cachedTable[T](conc, kindHeap, func() *table[T] {
		mustImplement[T](conc)
		t := &table[T]{typ: conc}
		t.destroy = func(c *cell) {
			disposePayload(c.ref)
			c.ref = nil
		}
		t.relocate = func(src, dst *cell) *table[T] {
			p := src.ref.(*U)
			src.ref = nil
			if inlineOK(conc, dst.size) {
				*inlineAddr[U](dst) = *p
				return inlineTable[U, T]()
			}
			dst.ref = p
			return t
		}
		t.get = func(c *cell) T {
			return c.ref.(T)
		}
		t.release = func(c *cell) any {
			p := c.ref
			c.ref = nil
			return p
		}
		return t
	})
}

// pinnedTable is the heap table variant that never re-inlines. It backs
// force-remote adoptions, where the caller demanded heap locality for the
// payload's whole lifetime.
func pinnedTable[U any, T any]() *table[T] {
	conc := reflect.TypeFor[U]()
	return cachedTable[T](conc, kindPinned, func() *table[T] {
		mustImplement[T](conc)
		t := &table[T]{typ: conc, pinned: true}
		t.destroy = func(c *cell) {
			disposePayload(c.ref)
			c.ref = nil
		}
		t.relocate = func(src, dst *cell) *table[T] {
			dst.ref = src.ref
			src.ref = nil
			return t
		}
		t.get = func(c *cell) T {
			return c.ref.(T)
		}
		t.release = func(c *cell) any {
			p := c.ref
			c.ref = nil
			return p
		}
		return t
	})
}

// opaqueTable returns the dispatch table for a payload adopted through
// the base capability whose dynamic pointer type dyn did not match the
// expected concrete type. The payload is kept remote and pinned under its
// dynamic type; inlining it under the narrower expectation would truncate
// the extension.
func opaqueTable[T any](dyn reflect.Type) *table[T] {
	return cachedTable[T](dyn.Elem(), kindOpaque, func() *table[T] {
		t := &table[T]{typ: dyn.Elem(), pinned: true}
		t.destroy = func(c *cell) {
			disposePayload(c.ref)
			c.ref = nil
		}
		t.relocate = func(src, dst *cell) *table[T] {
			dst.ref = src.ref
			src.ref = nil
			return t
		}
		t.get = func(c *cell) T {
			return c.ref.(T)
		}
		t.release = func(c *cell) any {
			p := c.ref
			c.ref = nil
			return p
		}
		return t
	})
}
