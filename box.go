// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poly

import "reflect"

// Box is an owning, move-only, polymorphic container declared over a base
// capability T, which must be an interface type. A box holds at most one
// concrete value whose pointer form implements T, either inline in its
// storage cell or behind an owning heap reference. The zero Box is not
// ready for use; construct with [New], [Make], or [NewFrom].
//
// A box requires exclusive access per operation; it has no internal
// locking.
type Box[T any] struct {
	vt   *table[T]
	cell cell
}

// New returns an empty box with the given storage capacity in bytes.
// Larger capacities let more types live inline at the cost of a larger
// cell, held even while empty. Panics if T is not an interface type or
// the capacity is negative.
func New[T any](storageSize int) *Box[T] {
	baseType[T]()
	if storageSize < 0 {
		panic("poly: negative storage size")
	}
	return &Box[T]{cell: cell{size: storageSize}}
}

// Make returns a box of [DefaultStorageSize] holding u.
func Make[T any, U any](u U) *Box[T] {
	b := New[T](DefaultStorageSize)
	Put(b, u)
	return b
}

// NewFrom move-constructs a box with a new capacity from src, re-deciding
// locality for the new capacity. src ends empty.
func NewFrom[T any](storageSize int, src *Box[T]) *Box[T] {
	b := New[T](storageSize)
	b.MoveFrom(src)
	return b
}

// Reset destroys the current payload, if any, and leaves the box empty.
func (b *Box[T]) Reset() {
	if b.vt == nil {
		return
	}
	vt := b.vt
	b.vt = nil
	vt.destroy(&b.cell)
}

// Recycle resets the box and returns its storage cell to the package
// pool. The box stays usable; the next inline installation re-acquires a
// cell.
func (b *Box[T]) Recycle() {
	b.Reset()
	b.cell.recycle()
}

// Get returns the payload as the base capability, or the zero T when the
// box is empty. Callers must check [Box.Has] before calling through the
// result; the returned reference is invalidated by the next mutating
// operation on the box.
func (b *Box[T]) Get() T {
	if b.vt == nil {
		var zero T
		return zero
	}
	return b.vt.get(&b.cell)
}

// Has reports whether a payload is installed.
func (b *Box[T]) Has() bool {
	return b.vt != nil
}

// IsLocal reports whether the payload's bytes live inside the box's own
// storage cell. An empty box reports local.
func (b *Box[T]) IsLocal() bool {
	return b.vt == nil || b.vt.local
}

// IsInlined is an alias for [Box.IsLocal].
func (b *Box[T]) IsInlined() bool {
	return b.IsLocal()
}

// Cap returns the box's storage capacity in bytes.
func (b *Box[T]) Cap() int {
	return b.cell.size
}

// MoveFrom destroys b's payload, then moves src's payload into b,
// re-deciding locality for b's capacity: local payloads re-inline when
// they fit and spill to the heap when they do not; remote payloads
// re-inline into a large enough destination unless pinned, else the
// owning reference transfers. src ends empty. Moving a box into itself is
// a no-op.
func (b *Box[T]) MoveFrom(src *Box[T]) {
	if src == b {
		return
	}
	b.Reset()
	if src.vt == nil {
		return
	}
	vt := src.vt
	src.vt = nil
	b.vt = vt.relocate(&src.cell, &b.cell)
}

// Put destroys b's current payload and installs u, inline iff U is
// inline-eligible for b's capacity. Panics if *U does not implement T;
// the panic fires before the old payload is destroyed, leaving b
// unchanged.
func Put[T any, U any](b *Box[T], u U) {
	if Fits[U](b.cell.size) {
		vt := inlineTable[U, T]()
		b.Reset()
		*inlineAddr[U](&b.cell) = u
		b.vt = vt
		return
	}
	vt := heapTable[U, T]()
	b.Reset()
	p := new(U)
	*p = u
	b.cell.ref = p
	b.vt = vt
}

// Emplace destroys b's current payload and constructs a U directly in its
// final storage: init receives the address of the zeroed payload, inside
// the cell when U is inline-eligible, inside a fresh allocation otherwise.
// No temporary is constructed either way. A nil init leaves the zero U.
func Emplace[T any, U any](b *Box[T], init func(*U)) {
	if Fits[U](b.cell.size) {
		vt := inlineTable[U, T]()
		b.Reset()
		// The unowned inline region is kept zeroed, so the payload starts
		// as the zero U without an explicit clear.
		p := inlineAddr[U](&b.cell)
		if init != nil {
			init(p)
		}
		b.vt = vt
		return
	}
	vt := heapTable[U, T]()
	b.Reset()
	p := new(U)
	if init != nil {
		init(p)
	}
	b.cell.ref = p
	b.vt = vt
}

// Adopt destroys b's current payload and takes ownership of the
// allocation p. When U is inline-eligible for b's capacity the pointee
// moves into the cell and the allocation is dropped; otherwise p itself
// becomes the owned reference, with no copy. A nil p resets the box.
//
// A typed *U cannot carry a wider dynamic payload in Go, so no truncation
// is possible here; adopting through the base capability goes via
// [AdoptAs], which applies the guard.
func Adopt[T any, U any](b *Box[T], p *U) {
	if p == nil {
		b.Reset()
		return
	}
	if Fits[U](b.cell.size) {
		vt := inlineTable[U, T]()
		b.Reset()
		*inlineAddr[U](&b.cell) = *p
		b.vt = vt
		return
	}
	vt := heapTable[U, T]()
	b.Reset()
	b.cell.ref = p
	b.vt = vt
}

// AdoptRemote is [Adopt] with forced heap locality: p becomes the owned
// reference even when U would fit inline, and the payload is pinned
// remote for its lifetime, surviving moves into any capacity.
func AdoptRemote[T any, U any](b *Box[T], p *U) {
	if p == nil {
		b.Reset()
		return
	}
	vt := pinnedTable[U, T]()
	b.Reset()
	b.cell.ref = p
	b.vt = vt
}

// AdoptAs destroys b's current payload and takes ownership of a payload
// presented as the base capability, expected to be a *U. When v's dynamic
// type is exactly *U this is [Adopt]; when it is some wider type, copying
// the pointee as U would truncate it, so the payload stays remote and
// pinned under its dynamic type. Either way the installed concrete type
// is the dynamic one. Panics if v's dynamic type is not a pointer; a nil
// v resets the box.
func AdoptAs[U any, T any](b *Box[T], v T) {
	if any(v) == nil {
		b.Reset()
		return
	}
	dyn := reflect.TypeOf(v)
	if dyn.Kind() != reflect.Pointer {
		panic("poly: AdoptAs payload " + dyn.String() + " is not a pointer")
	}
	if dyn == reflect.PointerTo(reflect.TypeFor[U]()) {
		Adopt[T, U](b, any(v).(*U))
		return
	}
	vt := opaqueTable[T](dyn)
	b.Reset()
	b.cell.ref = v
	b.vt = vt
}

// Release relinquishes ownership of the payload as its originally
// installed concrete type. It returns nil, leaving the box untouched,
// when the box is empty or the stored type is not exactly U. On success
// the box ends empty and the payload is not destroyed; the caller owns
// the returned allocation.
func Release[U any, T any](b *Box[T]) *U {
	if b.vt == nil || b.vt.typ != reflect.TypeFor[U]() {
		return nil
	}
	vt := b.vt
	b.vt = nil
	return vt.release(&b.cell).(*U)
}
