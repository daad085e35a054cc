// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poly

import (
	"reflect"
	"sync"
)

// table is the dispatch table for one (concrete type, locality)
// combination: the five behaviors every installed payload provides, plus
// the concrete type identity used for exact-match release. Tables are
// immutable and shared; the empty state is the nil table.
type table[T any] struct {
	// typ is the concrete payload type U (not *U). Release succeeds only
	// on exact identity with the requested type.
	typ reflect.Type

	// local reports inline locality. pinned marks remote payloads that
	// must never re-inline: force-remote adoptions and guard-caught
	// payloads whose dynamic type is wider than the expected one.
	local  bool
	pinned bool

	// destroy releases the payload's resources. Called at most once per
	// installation; the owning box swaps its active table to nil first.
	destroy func(c *cell)

	// relocate moves the owned payload into dst, re-deciding locality for
	// dst's capacity, and returns the table active at the destination.
	// The source cell is left logically empty.
	relocate func(src, dst *cell) *table[T]

	// get returns the payload as the base capability.
	get func(c *cell) T

	// release relinquishes ownership, returning *U as any. The payload is
	// not destroyed; the source cell is left logically empty.
	release func(c *cell) any
}

// Table registry. One table exists per (base capability, concrete type,
// kind) for the life of the process, so installs after the first allocate
// no table and relocation can hand out table pointers freely.

type tableKind uint8

const (
	kindInline tableKind = iota
	kindHeap
	kindPinned
	kindOpaque
)

type tableKey struct {
	base reflect.Type
	conc reflect.Type
	kind tableKind
}

var tables sync.Map // tableKey -> *table[T]

func cachedTable[T any](conc reflect.Type, kind tableKind, build func() *table[T]) *table[T] {
	key := tableKey{base: baseType[T](), conc: conc, kind: kind}
	if v, ok := tables.Load(key); ok {
		return v.(*table[T])
	}
	v, _ := tables.LoadOrStore(key, build())
	return v.(*table[T])
}

// baseType returns T's reflect type, panicking unless T is an interface
// type. The box never stores T by value; a concrete base would defeat
// polymorphic dispatch.
func baseType[T any]() reflect.Type {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Interface {
		panic("poly: base capability " + t.String() + " is not an interface type")
	}
	return t
}

// mustImplement panics unless *U implements the base capability T.
// Checked once per table; the table registry makes the check free on the
// steady-state path.
func mustImplement[T any](conc reflect.Type) {
	if !reflect.PointerTo(conc).Implements(baseType[T]()) {
		panic("poly: *" + conc.String() + " does not implement " + reflect.TypeFor[T]().String())
	}
}
