// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poly

import "reflect"

// inlineTable returns the dispatch table for payloads of type U living in
// the cell's inline region. Only pointer-free types ever reach inline
// locality, so copying the payload's bytes is always a semantic move.
func inlineTable[U any, T any]() *table[T] {
	conc := reflect.TypeFor[U]()
	return cachedTable[T](conc, kindInline, func() *table[T] {
		mustImplement[T](conc)
		size := conc.Size()
		t := &table[T]{typ: conc, local: true}
		t.destroy = func(c *cell) {
			disposePayload((*U)(c.inlinePtr()))
			c.clearInline(size)
		}
		t.relocate = func(src, dst *cell) *table[T] {
			u := (*U)(src.inlinePtr())
			if inlineOK(conc, dst.size) {
				*(*U)(dst.inlinePtr()) = *u
				src.clearInline(size)
				return t
			}
			p := new(U)
			*p = *u
			src.clearInline(size)
			dst.ref = p
			return heapTable[U, T]()
		}
		t.get = func(c *cell) T {
			return any((*U)(c.inlinePtr())).(T)
		}
		t.release = func(c *cell) any {
			p := new(U)
			*p = *(*U)(c.inlinePtr())
			c.clearInline(size)
			return p
		}
		return t
	})
}

// inlineAddr returns the address inside the cell where a U is about to be
// installed. The caller owns the decision that U is inline-eligible.
func inlineAddr[U any](c *cell) *U {
	return (*U)(c.inlinePtr())
}
