// Modifications copyright (c) Arista Networks, Inc. 2026
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slabmap

import (
	"github.com/aristanetworks/slabmap/internal/invariants"
	"github.com/aristanetworks/slabmap/slab"
)

// Iterator is a position in a Map: either an entry or the End position
// that follows the last entry. Iterators are values and compare equal
// with == when they name the same position of the same map.
//
// An Iterator stays valid across grows, Move and Swap. It is invalidated
// when the entry it names is erased; using it afterwards panics.
type Iterator[K, E any] struct {
	pool *slab.Pool[node[K, E]]
	h    slab.Handle
	end  slab.Handle
}

func (m *Map[K, E]) at(h slab.Handle) Iterator[K, E] {
	return Iterator[K, E]{pool: m.pool, h: h, end: m.tail}
}

// Begin returns the position of the oldest entry, or End() if m is
// empty.
func (m *Map[K, E]) Begin() Iterator[K, E] {
	if m == nil || m.pool == nil {
		return Iterator[K, E]{}
	}
	return m.at(m.head)
}

// End returns the position one past the newest entry.
func (m *Map[K, E]) End() Iterator[K, E] {
	if m == nil || m.pool == nil {
		return Iterator[K, E]{}
	}
	return m.at(m.tail)
}

// IsEnd reports whether it is the End position.
func (it Iterator[K, E]) IsEnd() bool {
	return it.h == it.end
}

func (it Iterator[K, E]) node() *node[K, E] {
	invariants.Assertf(!it.IsEnd(), "slabmap: dereference of end iterator")
	return it.pool.Get(it.h)
}

// Key returns the key at it. It panics at End.
func (it Iterator[K, E]) Key() K {
	return it.node().key
}

// Elem returns the element at it. It panics at End.
func (it Iterator[K, E]) Elem() E {
	return it.node().elem
}

// SetElem replaces the element at it. It panics at End.
func (it Iterator[K, E]) SetElem(elem E) {
	it.node().elem = elem
}

// Next returns the following position. It panics at End.
func (it Iterator[K, E]) Next() Iterator[K, E] {
	it.h = it.node().next
	return it
}

// Prev returns the preceding position. Prev of End is the newest entry.
// It panics at Begin.
func (it Iterator[K, E]) Prev() Iterator[K, E] {
	invariants.Assertf(it.pool != nil, "slabmap: Prev of zero iterator")
	prev := it.pool.Get(it.h).prev
	invariants.Assertf(prev != slab.Nil, "slabmap: Prev of begin iterator")
	it.h = prev
	return it
}

// Cursor is instantiated by a call to Iter(). It allows iterating over
// a Map in insertion order:
//
//	for it := m.Iter(); it.Next(); {
//		use(it.Key(), it.Elem())
//	}
//
// The current entry may be erased during iteration. Erasing any other
// entry that has not been visited yet invalidates the Cursor.
type Cursor[K, E any] struct {
	key  K
	elem E

	pool *slab.Pool[node[K, E]]
	next slab.Handle
	end  slab.Handle
}

// Iter instantiates a Cursor to explore the elements of the Map.
func (m *Map[K, E]) Iter() *Cursor[K, E] {
	if m == nil || m.count == 0 {
		return &Cursor[K, E]{}
	}
	return &Cursor[K, E]{pool: m.pool, next: m.head, end: m.tail}
}

// Key returns the key at the current position. Valid after a call to
// Next that returned true.
func (c *Cursor[K, E]) Key() K {
	return c.key
}

// Elem returns the element at the current position. Valid after a call
// to Next that returned true.
func (c *Cursor[K, E]) Elem() E {
	return c.elem
}

// Next advances the Cursor and reports whether an entry was found.
func (c *Cursor[K, E]) Next() bool {
	if c.pool == nil || c.next == c.end {
		var (
			zeroK K
			zeroE E
		)
		c.key, c.elem = zeroK, zeroE
		c.pool = nil
		return false
	}
	n := c.pool.Get(c.next)
	c.key, c.elem = n.key, n.elem
	c.next = n.next
	return true
}
