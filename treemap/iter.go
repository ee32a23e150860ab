// Modifications copyright (c) Arista Networks, Inc. 2026
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemap

import (
	"iter"

	"golang.org/x/exp/slices"
)

// All returns an iterator over the entries of m in ascending key order.
func (m *Map[K, E]) All() iter.Seq2[K, E] {
	return func(yield func(K, E) bool) {
		if m == nil {
			return
		}
		for it := m.Begin(); !it.IsEnd(); {
			n := it.node()
			// step first so the yielded entry may be erased
			it = it.Next()
			if !yield(n.key, n.elem) {
				return
			}
		}
	}
}

// Backward returns an iterator over the entries of m in descending key
// order.
func (m *Map[K, E]) Backward() iter.Seq2[K, E] {
	return func(yield func(K, E) bool) {
		if m == nil {
			return
		}
		for it := m.Last(); !it.IsEnd(); {
			n := it.node()
			it.h = n.prev
			if !yield(n.key, n.elem) {
				return
			}
		}
	}
}

// Keys returns an iterator over the keys of m in ascending order.
func (m *Map[K, E]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements of m in ascending key
// order.
func (m *Map[K, E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range m.All() {
			if !yield(e) {
				return
			}
		}
	}
}

// Iterate calls fn for every entry in ascending key order. fn may modify
// the element in place but must not insert or erase.
func (m *Map[K, E]) Iterate(fn func(key K, elem *E)) {
	if m == nil {
		return
	}
	for h := m.n(m.end).next; h != m.end; {
		n := m.n(h)
		fn(n.key, &n.elem)
		h = n.next
	}
}

// AppendKeys appends the keys of m to dst in ascending order.
func (m *Map[K, E]) AppendKeys(dst []K) []K {
	dst = slices.Grow(dst, m.Len())
	for k := range m.All() {
		dst = append(dst, k)
	}
	return dst
}
