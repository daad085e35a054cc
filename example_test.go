// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poly_test

import (
	"fmt"

	"code.hybscloud.com/poly"
)

func describe(b *poly.Box[noter]) {
	fmt.Printf("%s (local = %v)\n", b.Get().Note(), b.IsLocal())
}

func Example() {
	ptr := poly.New[noter](poly.DefaultStorageSize)

	poly.Put(ptr, smallNote{v: 1})
	describe(ptr)

	poly.Adopt(ptr, &smallNote{v: 2})
	describe(ptr)

	poly.Emplace(ptr, func(s *smallNote) { s.v = 3 })
	describe(ptr)

	poly.Put(ptr, newLargeNote("#1"))
	describe(ptr)

	l := newLargeNote("#2")
	poly.Adopt(ptr, &l)
	describe(ptr)

	poly.Emplace(ptr, func(n *largeNote) { copy(n.buf[:], "#3") })
	describe(ptr)

	wide := poly.NewFrom(10000, ptr)
	describe(wide)

	poly.Emplace(wide, func(s *smallNote) { s.v = 4 })

	tiny := poly.New[noter](8)
	tiny.MoveFrom(wide)
	describe(tiny)

	poly.AdoptAs[smallNote](wide, noter(&specialNote{smallNote: smallNote{v: 10}, tag: 'c'}))
	describe(wide)

	poly.AdoptAs[smallNote](wide, noter(&smallNote{v: 10}))
	describe(wide)

	// Output:
	// small: 1 (local = true)
	// small: 2 (local = true)
	// small: 3 (local = true)
	// large: #1 (local = false)
	// large: #2 (local = false)
	// large: #3 (local = false)
	// large: #3 (local = true)
	// small: 4 (local = false)
	// special: 10-c (local = false)
	// small: 10 (local = true)
}

func ExampleRelease() {
	b := poly.Make[noter](smallNote{v: 7})

	if poly.Release[largeNote](b) == nil {
		fmt.Println("wrong type: release refused")
	}

	p := poly.Release[smallNote](b)
	fmt.Println(p.Note(), "/ box empty:", !b.Has())

	// Output:
	// wrong type: release refused
	// small: 7 / box empty: true
}
