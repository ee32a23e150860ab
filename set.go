// Modifications copyright (c) Arista Networks, Inc. 2026
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slabmap

import (
	"hash/maphash"
	"iter"

	"github.com/aristanetworks/slabmap/slab"
)

// Set is a hash set of K. It shares Map's table, so everything said
// about Map's buckets, ordering and positions applies.
type Set[K any] struct {
	m *Map[K, struct{}]
}

// NewSet returns a Set holding keys. See [New] for the requirements on
// equal and hash.
func NewSet[K any](
	equal func(a, b K) bool,
	hash func(maphash.Seed, K) uint64,
	keys ...K) *Set[K] {

	s := NewSetOptions(equal, hash, WithHint(len(keys)))
	for _, k := range keys {
		s.Insert(k)
	}
	return s
}

// NewSetOptions returns an empty Set configured by opts.
func NewSetOptions[K any](
	equal func(a, b K) bool,
	hash func(maphash.Seed, K) uint64,
	opts ...Option) *Set[K] {
	return &Set[K]{m: NewOptions[K, struct{}](equal, hash, opts...)}
}

// Insert adds key to s. It returns the position of key and whether it
// was added.
func (s *Set[K]) Insert(key K) (Iterator[K, struct{}], bool) {
	return s.m.Insert(key, struct{}{})
}

// Find returns the position of key, or End().
func (s *Set[K]) Find(key K) Iterator[K, struct{}] { return s.m.Find(key) }

// Contains reports whether key is in s.
func (s *Set[K]) Contains(key K) bool { return s.m.Contains(key) }

// Erase removes key and returns the following position, or End() if key
// was not in s.
func (s *Set[K]) Erase(key K) Iterator[K, struct{}] { return s.m.Erase(key) }

// Delete removes key and reports whether it was present.
func (s *Set[K]) Delete(key K) bool { return s.m.Delete(key) }

// Clear removes every key.
func (s *Set[K]) Clear() { s.m.Clear() }

func (s *Set[K]) Len() int             { return s.m.Len() }
func (s *Set[K]) BucketCount() int     { return s.m.BucketCount() }
func (s *Set[K]) LoadFactor() float64  { return s.m.LoadFactor() }
func (s *Set[K]) BucketSize(i int) int { return s.m.BucketSize(i) }
func (s *Set[K]) Bucket(key K) int     { return s.m.Bucket(key) }
func (s *Set[K]) LargestBucket() int   { return s.m.LargestBucket() }
func (s *Set[K]) PoolStats() slab.Stats {
	return s.m.PoolStats()
}

func (s *Set[K]) Begin() Iterator[K, struct{}] { return s.m.Begin() }
func (s *Set[K]) End() Iterator[K, struct{}]   { return s.m.End() }

// All returns an iterator over the keys of s in insertion order.
func (s *Set[K]) All() iter.Seq[K] { return s.m.Keys() }

// AppendKeys appends the keys of s to dst.
func (s *Set[K]) AppendKeys(dst []K) []K { return s.m.AppendKeys(dst) }

// Clone returns a deep copy of s.
func (s *Set[K]) Clone() *Set[K] { return &Set[K]{m: s.m.Clone()} }

// Move transfers the keys of s to a new Set and leaves s empty.
func (s *Set[K]) Move() *Set[K] { return &Set[K]{m: s.m.Move()} }

// Swap exchanges the contents of s and other.
func (s *Set[K]) Swap(other *Set[K]) { s.m.Swap(other.m) }

// Union adds every key of other to s.
func (s *Set[K]) Union(other *Set[K]) {
	s.m.Merge(other.m)
}

// SetEqual reports whether s1 and s2 hold the same keys.
func SetEqual[K any](s1, s2 *Set[K]) bool {
	return Equal(s1.m, s2.m)
}
