// Modifications copyright (c) Arista Networks, Inc. 2026
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slabmap

import (
	"iter"

	"golang.org/x/exp/slices"
)

// All returns an iterator over key-value pairs from m in insertion
// order.
func (m *Map[K, E]) All() iter.Seq2[K, E] {
	return func(yield func(K, E) bool) {
		for it := m.Iter(); it.Next(); {
			if !yield(it.Key(), it.Elem()) {
				return
			}
		}
	}
}

// Backward returns an iterator over key-value pairs from m, newest
// first.
func (m *Map[K, E]) Backward() iter.Seq2[K, E] {
	return func(yield func(K, E) bool) {
		if m.Len() == 0 {
			return
		}
		for it := m.End(); it != m.Begin(); {
			it = it.Prev()
			if !yield(it.Key(), it.Elem()) {
				return
			}
		}
	}
}

// Keys returns an iterator over keys in m.
func (m *Map[K, E]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for it := m.Iter(); it.Next(); {
			if !yield(it.Key()) {
				return
			}
		}
	}
}

// Values returns an iterator over values in m.
func (m *Map[K, E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for it := m.Iter(); it.Next(); {
			if !yield(it.Elem()) {
				return
			}
		}
	}
}

// AppendKeys appends the keys of m to dst in insertion order and
// returns the extended slice.
func (m *Map[K, E]) AppendKeys(dst []K) []K {
	dst = slices.Grow(dst, m.Len())
	for it := m.Iter(); it.Next(); {
		dst = append(dst, it.Key())
	}
	return dst
}
