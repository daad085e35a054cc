// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poly_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/poly"
)

func TestAdoptInlines(t *testing.T) {
	b := poly.New[noter](128)
	poly.Adopt(b, &smallNote{v: 2})

	require.True(t, b.Has())
	assert.True(t, b.IsLocal(), "adopted pointee moves into the cell when it fits")
	assert.Equal(t, "small: 2", b.Get().Note())
}

func TestAdoptKeepsLargeRemote(t *testing.T) {
	b := poly.New[noter](128)
	l := newLargeNote("#2")
	poly.Adopt(b, &l)

	assert.False(t, b.IsLocal())
	assert.Equal(t, "large: #2", b.Get().Note())

	// No copy was made: the adopted allocation is the payload.
	got := poly.Release[largeNote](b)
	assert.Same(t, &l, got)
}

func TestAdoptNilResets(t *testing.T) {
	b := poly.New[noter](128)
	poly.Put(b, smallNote{v: 1})
	poly.Adopt[noter, smallNote](b, nil)
	assert.False(t, b.Has())
}

func TestAdoptRemoteForcesHeap(t *testing.T) {
	b := poly.New[noter](128)
	poly.AdoptRemote(b, &smallNote{v: 4})

	require.True(t, b.Has())
	assert.False(t, b.IsLocal(), "force-remote overrides the fit decision")
	assert.Equal(t, "small: 4", b.Get().Note())
}

func TestAdoptRemotePinnedAcrossMoves(t *testing.T) {
	b := poly.New[noter](128)
	poly.AdoptRemote(b, &smallNote{v: 4})

	wide := poly.NewFrom(10000, b)
	assert.False(t, b.Has())
	assert.False(t, wide.IsLocal(), "pinned payloads never re-inline")
	assert.Equal(t, "small: 4", wide.Get().Note())

	again := poly.NewFrom(1<<20, wide)
	assert.False(t, again.IsLocal())
	assert.Equal(t, "small: 4", again.Get().Note())
}

func TestAdoptAsExactTypeInlines(t *testing.T) {
	b := poly.New[noter](128)
	var v noter = &smallNote{v: 10}
	poly.AdoptAs[smallNote](b, v)

	assert.True(t, b.IsLocal())
	assert.Equal(t, "small: 10", b.Get().Note())
}

func TestAdoptAsGuardsTruncation(t *testing.T) {
	b := poly.New[noter](128)
	var v noter = &specialNote{smallNote: smallNote{v: 10}, tag: 'c'}
	poly.AdoptAs[smallNote](b, v)

	require.True(t, b.Has())
	assert.False(t, b.IsLocal(), "wider dynamic type must stay remote")
	assert.Equal(t, "special: 10-c", b.Get().Note(), "the extension survives intact")
}

func TestAdoptAsGuardPinnedAcrossMoves(t *testing.T) {
	b := poly.New[noter](128)
	sp := &specialNote{smallNote: smallNote{v: 10}, tag: 'c'}
	poly.AdoptAs[smallNote](b, noter(sp))

	wide := poly.NewFrom(1<<16, b)
	assert.False(t, wide.IsLocal(), "guard-caught payloads never re-inline")
	assert.Equal(t, "special: 10-c", wide.Get().Note())

	// The payload is still the original allocation, installed under its
	// dynamic type.
	got := poly.Release[specialNote](wide)
	assert.Same(t, sp, got)
	assert.False(t, wide.Has())
}

func TestAdoptAsNilResets(t *testing.T) {
	b := poly.New[noter](128)
	poly.Put(b, smallNote{v: 1})
	poly.AdoptAs[smallNote](b, noter(nil))
	assert.False(t, b.Has())
}

func TestAdoptAsNonPointerPanics(t *testing.T) {
	b := poly.New[noter](128)
	assert.Panics(t, func() {
		poly.AdoptAs[valueNote, noter](b, valueNote{})
	})
}

// valueNote implements noter with a value receiver, so a bare valueNote
// can arrive through the base capability without being a pointer.
type valueNote struct{}

func (valueNote) Note() string { return "value" }
