// Modifications copyright (c) Arista Networks, Inc. 2026
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slab provides Pool, a typed slab allocator. A pool hands out
// fixed-size slots from a chain of blocks and recycles released slots
// through an intrusive free list. Blocks are allocated once at their
// final length and never move, so a pointer obtained from a live Handle
// stays valid until that handle is released.
//
// A Pool is not safe for concurrent use.
package slab

import (
	"math"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

type slot[T any] struct {
	value T
	// next links free slots. Meaningless while the slot is live.
	next loc
	gen  uint32
	live bool
}

// Pool is a growable arena of T slots addressed by generational handles.
type Pool[T any] struct {
	blocks   [][]slot[T]
	free     loc
	capacity int
	live     int

	initial int
	logger  *zap.Logger
}

// Stats describes the occupancy of a Pool.
type Stats struct {
	Capacity int
	Live     int
	Free     int
	Blocks   int
}

type config struct {
	initial int
	logger  *zap.Logger
}

// Option configures a Pool.
type Option func(c *config)

// WithInitialCapacity sets the number of slots in the first block.
// Values below 1 are treated as 1.
func WithInitialCapacity(n int) Option {
	return func(c *config) {
		c.initial = n
	}
}

// WithLogger sets the logger used to report block growth.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// New returns an empty Pool. No memory is allocated until the first call
// to Reserve.
func New[T any](opts ...Option) *Pool[T] {
	c := config{initial: 1}
	for _, opt := range opts {
		opt(&c)
	}
	if c.initial < 1 {
		c.initial = 1
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return &Pool[T]{initial: c.initial, logger: c.logger}
}

// Reserve takes a slot off the free list, growing the pool first if the
// list is empty. It returns the slot's handle and a pointer to its zeroed
// value. Reserve on a nil Pool returns (Nil, nil).
func (p *Pool[T]) Reserve() (Handle, *T) {
	if p == nil {
		return Nil, nil
	}
	if p.free == noLoc {
		p.grow()
	}
	b, i := p.free.split()
	s := &p.blocks[b][i]
	p.free = s.next
	s.next = noLoc
	s.live = true
	p.live++
	return makeHandle(s.gen, b, i), &s.value
}

// Release zeroes the slot named by h and pushes it onto the free list.
// Release is a no-op for a nil Pool or the Nil handle. Releasing a handle
// that is not live panics.
func (p *Pool[T]) Release(h Handle) {
	if p == nil || h == Nil {
		return
	}
	s := p.lookup(h)
	var zero T
	s.value = zero
	s.live = false
	s.gen = nextGen(s.gen)
	s.next = p.free
	p.free = makeLoc(h.block(), h.slot())
	p.live--
}

// Get returns a pointer to the value of the live slot named by h. It
// panics if h is Nil, stale, or belongs to another pool.
func (p *Pool[T]) Get(h Handle) *T {
	return &p.lookup(h).value
}

// Valid reports whether h names a live slot of p.
func (p *Pool[T]) Valid(h Handle) bool {
	if p == nil || h == Nil {
		return false
	}
	b, i := h.block(), h.slot()
	if b >= len(p.blocks) || i >= len(p.blocks[b]) {
		return false
	}
	s := &p.blocks[b][i]
	return s.live && s.gen == h.gen()
}

func (p *Pool[T]) lookup(h Handle) *slot[T] {
	if p == nil || h == Nil {
		panic(errors.AssertionFailedf("slab: dereference of %s", h))
	}
	b, i := h.block(), h.slot()
	if b >= len(p.blocks) || i >= len(p.blocks[b]) {
		panic(errors.AssertionFailedf("slab: %s out of range", h))
	}
	s := &p.blocks[b][i]
	if !s.live || s.gen != h.gen() {
		panic(errors.AssertionFailedf("slab: stale %s", h))
	}
	return s
}

// grow links a new block into the chain. The first block holds the
// initial capacity; each later block adds ceil((capacity+1)/2) slots.
func (p *Pool[T]) grow() {
	if len(p.blocks) == maxBlocks {
		panic(errors.AssertionFailedf("slab: pool exhausted at %d blocks", maxBlocks))
	}
	n := p.initial
	if len(p.blocks) > 0 {
		n = (p.capacity + 2) / 2
	}
	if n > maxSlots {
		n = maxSlots
	}
	if n > math.MaxInt-p.capacity {
		panic(errors.AssertionFailedf("slab: capacity overflow"))
	}

	b := len(p.blocks)
	block := make([]slot[T], n)
	for i := range block {
		block[i].gen = 1
		block[i].next = makeLoc(b, i+1)
	}
	block[n-1].next = p.free
	p.free = makeLoc(b, 0)
	p.blocks = append(p.blocks, block)
	p.capacity += n

	p.logger.Debug("slab grow",
		zap.Int("block", b),
		zap.Int("grow", n),
		zap.Int("capacity", p.capacity))
}

// Destroy drops every block. Handles issued before Destroy must not be
// used afterwards. The pool may be reused; blocks are re-created lazily.
func (p *Pool[T]) Destroy() {
	if p == nil {
		return
	}
	p.blocks = nil
	p.free = noLoc
	p.capacity = 0
	p.live = 0
}

// Len returns the number of live slots.
func (p *Pool[T]) Len() int {
	if p == nil {
		return 0
	}
	return p.live
}

// Cap returns the total number of slots across all blocks.
func (p *Pool[T]) Cap() int {
	if p == nil {
		return 0
	}
	return p.capacity
}

// Stats returns a snapshot of the pool's occupancy.
func (p *Pool[T]) Stats() Stats {
	if p == nil {
		return Stats{}
	}
	return Stats{
		Capacity: p.capacity,
		Live:     p.live,
		Free:     p.capacity - p.live,
		Blocks:   len(p.blocks),
	}
}

// Check verifies that every slot is either live or on the free list,
// exactly once, and that the counters agree with the blocks.
func (p *Pool[T]) Check() error {
	if p == nil {
		return nil
	}
	total := 0
	live := 0
	for _, block := range p.blocks {
		total += len(block)
		for i := range block {
			if block[i].live {
				live++
			}
		}
	}
	if total != p.capacity {
		return errors.Newf("slab: capacity %d, blocks hold %d", p.capacity, total)
	}
	if live != p.live {
		return errors.Newf("slab: %d live slots, counter says %d", live, p.live)
	}

	seen := make(map[loc]struct{}, total-live)
	for l := p.free; l != noLoc; {
		if _, ok := seen[l]; ok {
			return errors.Newf("slab: free list cycles at %d", uint64(l))
		}
		seen[l] = struct{}{}
		b, i := l.split()
		if b >= len(p.blocks) || i >= len(p.blocks[b]) {
			return errors.Newf("slab: free list points outside the pool")
		}
		s := &p.blocks[b][i]
		if s.live {
			return errors.Newf("slab: live slot %d:%d on the free list", b, i)
		}
		l = s.next
	}
	if len(seen)+live != total {
		return errors.Newf("slab: %d free + %d live != %d slots", len(seen), live, total)
	}
	return nil
}
