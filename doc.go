// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package poly provides an owning, polymorphic, small-buffer-optimized
// box for Go.
//
// The core type [Box] holds at most one concrete value whose pointer form
// implements a base capability T (an interface type), owns it exclusively,
// and decides per installation whether the value's bytes live inside the
// box's own storage cell ("local" storage) or behind a separate owning
// heap reference ("remote" storage). Boxes of differing storage capacities
// move freely into one another; each move re-decides locality for the
// destination's capacity.
//
// # Design Philosophy
//
// poly provides:
//   - A move-only owning handle with explicit, queryable locality
//   - Per-(concrete type, locality) dispatch tables built once per generic
//     instantiation and cached for the lifetime of the process
//   - Allocation-free steady-state inline access and local-to-local moves
//
// # Locality
//
// A concrete type U is inline-eligible for a given capacity when its inline
// representation fits: one word of dispatch overhead plus U's size, within
// the capacity (the boundary is inclusive), U's alignment is at most word
// alignment, and U is pointer-free. The storage cell is an untyped byte
// region the garbage collector does not scan, so values containing Go
// pointers, maps, chans, funcs, slices, strings, or interfaces always live
// remote. [Fits] reports the decision for a type and capacity.
//
// # Core Operations
//
// Construction and teardown:
//
//   - [New]: Create an empty box with a given storage capacity
//   - [Make]: Create a default-capacity box holding a value
//   - [NewFrom]: Move-construct from another box with a new capacity
//   - [Box.Reset]: Destroy the payload and become empty
//   - [Box.Recycle]: Reset and return the storage cell to the package pool
//
// Installation (free functions, since Go methods cannot introduce the
// concrete type parameter U):
//
//   - [Put]: Install a value; inline iff eligible for the box's capacity
//   - [Emplace]: Construct directly in final storage, never via a temporary
//   - [Adopt]: Take ownership of an existing allocation
//   - [AdoptRemote]: As Adopt, but pinned remote; never re-inlined
//   - [AdoptAs]: Adopt through the base capability with the truncation guard
//
// Access and transfer:
//
//   - [Box.Get]: The payload as the base capability, or zero T when empty
//   - [Box.Has]: Reports whether a payload is installed
//   - [Box.IsLocal], [Box.IsInlined]: Locality query
//   - [Box.MoveFrom]: Cross-capacity move; the source ends empty
//   - [Release]: Relinquish ownership as the originally installed concrete
//     type; nil on exact-type mismatch or empty
//
// # Relocation
//
// Moving box A into box B destroys B's payload, then drives the relocate
// entry of A's active dispatch table with B's cell. Only A's current
// locality and B's capacity matter: local payloads re-inline when they fit
// and spill to the heap when they do not; remote payloads re-inline into a
// large enough destination unless pinned, else the owning reference is
// transferred. Chains of moves across arbitrary capacities are lossless.
//
// # Truncation Guard
//
// [AdoptAs] installs a payload presented as the base capability under an
// expected concrete type U. When the payload's dynamic type is not exactly
// *U, copying it into the cell as U would silently drop the extension, so
// the payload is kept remote and pinned under its dynamic type instead.
// This is a locality decision, never an error.
//
// # Ownership
//
// A box owns its payload exclusively. Destruction runs on [Box.Reset],
// replacement, and [Box.Recycle]; payloads implementing [Disposer] have
// Dispose called exactly once at that point. Relocation and successful
// [Release] transfer ownership and never dispose. A box abandoned to the
// garbage collector does not dispose its payload.
//
// Boxes are exactly as thread-safe as any other owned value: operations
// mutate the storage cell directly and require exclusive access.
//
// # Errors
//
// Recoverable conditions yield nil results ([Release] on mismatch, zero T
// from [Box.Get] when empty). Precondition violations panic with a
// "poly:"-prefixed message: a non-interface base capability, a negative
// capacity, installing a concrete type whose pointer does not implement T,
// or adopting a non-pointer dynamic payload through [AdoptAs].
//
// # Example
//
//	type Shape interface{ Area() float64 }
//
//	b := poly.New[Shape](64)
//	poly.Put(b, Circle{R: 2})   // 16 bytes: inline
//	_ = b.Get().Area()
//	wide := poly.New[Shape](poly.DefaultStorageSize)
//	wide.MoveFrom(b)            // still inline; b is empty
package poly
