// Modifications copyright (c) Arista Networks, Inc. 2026
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemap

import (
	"github.com/aristanetworks/slabmap/internal/invariants"
	"github.com/aristanetworks/slabmap/slab"
)

// Iterator is a position in a Map. Positions compare equal with == and
// stay valid until their entry is erased, including across Move and
// Swap.
type Iterator[K, E any] struct {
	pool *slab.Pool[node[K, E]]
	h    slab.Handle
	end  slab.Handle
}

func (m *Map[K, E]) at(h slab.Handle) Iterator[K, E] {
	return Iterator[K, E]{pool: m.pool, h: h, end: m.end}
}

// Begin returns the position of the smallest key, or End() if m is
// empty.
func (m *Map[K, E]) Begin() Iterator[K, E] {
	if m == nil {
		return Iterator[K, E]{}
	}
	return m.at(m.n(m.end).next)
}

// End returns the position past the largest key.
func (m *Map[K, E]) End() Iterator[K, E] {
	if m == nil {
		return Iterator[K, E]{}
	}
	return m.at(m.end)
}

// Last returns the position of the largest key, or End() if m is empty.
func (m *Map[K, E]) Last() Iterator[K, E] {
	if m == nil {
		return Iterator[K, E]{}
	}
	return m.at(m.n(m.end).prev)
}

// Min returns the smallest key and its element.
func (m *Map[K, E]) Min() (K, E, bool) {
	return m.Begin().get()
}

// Max returns the largest key and its element.
func (m *Map[K, E]) Max() (K, E, bool) {
	return m.Last().get()
}

// LowerBound returns the position of the first key not less than key.
func (m *Map[K, E]) LowerBound(key K) Iterator[K, E] {
	if m == nil {
		return Iterator[K, E]{}
	}
	found := m.end
	for x := m.root; x != m.end; {
		xn := m.n(x)
		if m.less(xn.key, key) {
			x = xn.right
		} else {
			found = x
			x = xn.left
		}
	}
	return m.at(found)
}

// UpperBound returns the position of the first key greater than key.
func (m *Map[K, E]) UpperBound(key K) Iterator[K, E] {
	if m == nil {
		return Iterator[K, E]{}
	}
	found := m.end
	for x := m.root; x != m.end; {
		xn := m.n(x)
		if m.less(key, xn.key) {
			found = x
			x = xn.left
		} else {
			x = xn.right
		}
	}
	return m.at(found)
}

// Floor returns the position of the last key not greater than key, or
// End() if every key is greater.
func (m *Map[K, E]) Floor(key K) Iterator[K, E] {
	if m == nil {
		return Iterator[K, E]{}
	}
	found := m.end
	for x := m.root; x != m.end; {
		xn := m.n(x)
		if m.less(key, xn.key) {
			x = xn.left
		} else {
			found = x
			x = xn.right
		}
	}
	return m.at(found)
}

// IsEnd reports whether it is the End position.
func (it Iterator[K, E]) IsEnd() bool {
	return it.h == it.end
}

func (it Iterator[K, E]) node() *node[K, E] {
	invariants.Assertf(!it.IsEnd(), "treemap: dereference of end iterator")
	return it.pool.Get(it.h)
}

func (it Iterator[K, E]) get() (K, E, bool) {
	if it.IsEnd() {
		var (
			zeroK K
			zeroE E
		)
		return zeroK, zeroE, false
	}
	n := it.node()
	return n.key, n.elem, true
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

// Next returns the position of the next larger key. It panics at End.
func (it Iterator[K, E]) Next() Iterator[K, E] {
	it.h = it.node().next
	return it
}

// Prev returns the position of the next smaller key. Prev of End is the
// largest key. It panics at Begin.
func (it Iterator[K, E]) Prev() Iterator[K, E] {
	invariants.Assertf(it.pool != nil, "treemap: Prev of zero iterator")
	prev := it.pool.Get(it.h).prev
	invariants.Assertf(prev != it.end, "treemap: Prev of begin iterator")
	it.h = prev
	return it
}
