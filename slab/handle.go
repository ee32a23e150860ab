// Modifications copyright (c) Arista Networks, Inc. 2026
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slab

import "fmt"

// Handle names one slot of a Pool. It packs the slot's generation, the
// block it lives in, and its index within that block:
//
//	| generation:24 | block:8 | slot:32 |
//
// Generations start at 1, so the zero Handle (Nil) never names a slot.
type Handle uint64

// Nil is the handle that never refers to a live slot.
const Nil Handle = 0

const (
	slotBits  = 32
	blockBits = 8
	genBits   = 24

	maxBlocks = 1 << blockBits
	maxSlots  = 1<<slotBits - 1
	genMask   = 1<<genBits - 1
)

func makeHandle(gen uint32, block, slot int) Handle {
	return Handle(uint64(gen&genMask)<<(slotBits+blockBits) |
		uint64(block)<<slotBits |
		uint64(slot))
}

func (h Handle) gen() uint32 {
	return uint32(h >> (slotBits + blockBits))
}

func (h Handle) block() int {
	return int(h>>slotBits) & (maxBlocks - 1)
}

func (h Handle) slot() int {
	return int(h & maxSlots)
}

// String formats h as block:slot@generation.
func (h Handle) String() string {
	if h == Nil {
		return "slab.Nil"
	}
	return fmt.Sprintf("slab.Handle(%d:%d@%d)", h.block(), h.slot(), h.gen())
}

// nextGen returns the generation following g, skipping 0 on wrap-around.
func nextGen(g uint32) uint32 {
	g = (g + 1) & genMask
	if g == 0 {
		g = 1
	}
	return g
}

// loc is a generation-less slot position used for the free list. The
// zero loc terminates the list.
type loc uint64

const noLoc loc = 0

func makeLoc(block, slot int) loc {
	return loc(uint64(block)<<slotBits|uint64(slot)) + 1
}

func (l loc) split() (block, slot int) {
	v := uint64(l - 1)
	return int(v >> slotBits), int(v & maxSlots)
}
