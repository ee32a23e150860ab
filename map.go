// Modifications copyright (c) Arista Networks, Inc. 2026
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slabmap provides the Map and Set types, chained hash tables
// whose nodes are carved from a slab.Pool. Users provide an equal and a
// hash function; package hashing has ready-made ones.
//
// The following requirements are the user's responsibility to follow:
//   - equal(a, b) => hash(a) == hash(b)
//   - equal(a, a) must be true for all values of a. Be careful around NaN
//     float values.
//   - If a key in a Map contains references -- such as pointers, maps,
//     or slices -- modifying the referenced data in a way that effects
//     the result of the equal or hash functions will result in undefined
//     behavior.
//
// Iteration follows insertion order.
package slabmap

// A map is an array of buckets. Each bucket is the head of a singly
// linked chain of nodes ("down" links) whose hash selects that bucket.
// Independently of the buckets, every live node is threaded on a doubly
// linked global list in insertion order, terminated by a sentinel node
// that is the End position.
//
// When the number of entries reaches MaxLoadFactor times the number of
// buckets, a bucket array twice as big is allocated and rebuilt by
// walking the global list. Nodes never move: growing only rewrites the
// down links, so positions stay valid across a grow.
//
// All links are slab.Handles into the map's own pool.

import (
	"hash/maphash"

	"github.com/aristanetworks/slabmap/internal/invariants"
	"github.com/aristanetworks/slabmap/slab"
	"go.uber.org/zap"
)

const (
	// StartBuckets is the bucket count of a new map.
	StartBuckets = 8

	// MaxLoadFactor is the load at which the bucket array doubles.
	// Represented as loadFactorNum/loadFactorDen to allow integer math.
	MaxLoadFactor = float64(loadFactorNum) / loadFactorDen
	loadFactorNum = 3
	loadFactorDen = 4

	// flags
	hashWriting = 1 // a goroutine is writing to the map
)

type node[K, E any] struct {
	key  K
	elem E

	// next node in the same bucket
	down slab.Handle
	// neighbours on the global list
	prev, next slab.Handle
}

// Map implements a hashmap
type Map[K, E any] struct {
	count int // # live nodes == size of map
	flags uint32

	// array of bucket heads, len is a power of two
	buckets []slab.Handle
	// first node of the global list; equals tail when empty
	head slab.Handle
	// sentinel terminating the global list
	tail slab.Handle

	pool *slab.Pool[node[K, E]]
	seed maphash.Seed

	hash  func(maphash.Seed, K) uint64
	equal func(K, K) bool

	nbuckets int // bucket count to start from, also used by Clone
	hint     int
	logger   *zap.Logger
}

// KeyElem contains a Key and Elem.
type KeyElem[K, E any] struct {
	Key  K
	Elem E
}

type config struct {
	buckets int
	hint    int
	logger  *zap.Logger
}

// Option configures a Map or Set.
type Option func(c *config)

// WithBuckets sets the initial bucket count. It is rounded up to a power
// of two and is never less than StartBuckets.
func WithBuckets(n int) Option {
	return func(c *config) {
		c.buckets = n
	}
}

// WithHint sizes the bucket array and the node pool so that hint
// entries can be inserted without growing.
func WithHint(hint int) Option {
	return func(c *config) {
		c.hint = hint
	}
}

// WithLogger sets the logger used to report grows and pool growth.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// New instantiates a new Map initialized with any KeyElems passed.
// The equal func must return true for two values of K that are equal
// and false otherwise. The hash func should return a uniformly
// distributed hash value. If equal(a, b) then hash(a) == hash(b). The
// hash function is passed a [hash/maphash.Seed], this is meant to be
// used with functions and types in the [hash/maphash] package, though
// can be ignored.
func New[K, E any](
	equal func(a, b K) bool,
	hash func(maphash.Seed, K) uint64,
	kes ...KeyElem[K, E]) *Map[K, E] {

	m := NewOptions[K, E](equal, hash, WithHint(len(kes)))
	for _, ke := range kes {
		m.Set(ke.Key, ke.Elem)
	}
	return m
}

// NewOptions instantiates an empty Map configured by opts. See [New]
// for discussion of the equal and hash arguments.
func NewOptions[K, E any](
	equal func(a, b K) bool,
	hash func(maphash.Seed, K) uint64,
	opts ...Option) *Map[K, E] {

	if equal == nil || hash == nil {
		panic("slabmap: equal and hash functions are required")
	}
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	nbuckets := StartBuckets
	for nbuckets < c.buckets {
		nbuckets *= 2
	}
	for c.hint > 0 && overLoadFactor(c.hint, nbuckets) {
		nbuckets *= 2
	}
	m := &Map[K, E]{
		hash:     hash,
		equal:    equal,
		nbuckets: nbuckets,
		hint:     c.hint,
		logger:   c.logger,
	}
	m.init()
	return m
}

// init gives m a fresh pool, sentinel and bucket array.
func (m *Map[K, E]) init() {
	m.pool = slab.New[node[K, E]](
		// one extra slot for the sentinel
		slab.WithInitialCapacity(m.hint+1),
		slab.WithLogger(m.logger))
	m.tail, _ = m.pool.Reserve()
	m.head = m.tail
	m.buckets = make([]slab.Handle, m.nbuckets)
	m.count = 0
	m.seed = maphash.MakeSeed()
}

// overLoadFactor reports whether count items placed in nbuckets buckets
// reach MaxLoadFactor.
func overLoadFactor(count int, nbuckets int) bool {
	return uint64(count)*loadFactorDen >= loadFactorNum*uint64(nbuckets)
}

func (m *Map[K, E]) bucketMask() uint64 {
	return uint64(len(m.buckets) - 1)
}

func (m *Map[K, E]) node(h slab.Handle) *node[K, E] {
	return m.pool.Get(h)
}

// Len returns the count of occupied elements in m.
func (m *Map[K, E]) Len() int {
	if m == nil {
		return 0
	}
	return m.count
}

// Size is an alias of Len.
func (m *Map[K, E]) Size() int {
	return m.Len()
}

// BucketCount returns the number of buckets.
func (m *Map[K, E]) BucketCount() int {
	if m == nil {
		return 0
	}
	return len(m.buckets)
}

// LoadFactor returns Len divided by BucketCount.
func (m *Map[K, E]) LoadFactor() float64 {
	if m.BucketCount() == 0 {
		return 0
	}
	return float64(m.count) / float64(len(m.buckets))
}

// BucketSize returns the length of the chain in bucket i. It panics if
// i is not in [0, BucketCount()).
func (m *Map[K, E]) BucketSize(i int) int {
	invariants.Assertf(i >= 0 && i < m.BucketCount(),
		"slabmap: bucket %d out of range [0, %d)", i, m.BucketCount())
	n := 0
	for h := m.buckets[i]; h != slab.Nil; h = m.node(h).down {
		n++
	}
	return n
}

// Bucket returns the index of the bucket holding key. It panics if key
// is not in m.
func (m *Map[K, E]) Bucket(key K) int {
	h, b := m.lookup(key)
	invariants.Assertf(h != slab.Nil, "slabmap: Bucket called for a missing key")
	return int(b)
}

// LargestBucket returns the length of the longest chain.
func (m *Map[K, E]) LargestBucket() int {
	largest := 0
	for i := range m.buckets {
		if n := m.BucketSize(i); n > largest {
			largest = n
		}
	}
	return largest
}

// lookup returns the node holding key, or slab.Nil, and key's bucket.
func (m *Map[K, E]) lookup(key K) (slab.Handle, uint64) {
	if m == nil || m.count == 0 {
		return slab.Nil, 0
	}
	b := m.hash(m.seed, key) & m.bucketMask()
	for h := m.buckets[b]; h != slab.Nil; {
		n := m.node(h)
		if m.equal(key, n.key) {
			return h, b
		}
		h = n.down
	}
	return slab.Nil, b
}

// Find returns the position of key, or End() if key is not in m.
func (m *Map[K, E]) Find(key K) Iterator[K, E] {
	if h, _ := m.lookup(key); h != slab.Nil {
		return m.at(h)
	}
	return m.End()
}

// Get returns the element associated with key and true if that key is
// in the Map, otherwise it returns the zero value of E and false.
func (m *Map[K, E]) Get(key K) (E, bool) {
	h, _ := m.lookup(key)
	if h == slab.Nil {
		var zeroE E
		return zeroE, false
	}
	return m.node(h).elem, true
}

// Contains reports whether key is in m.
func (m *Map[K, E]) Contains(key K) bool {
	h, _ := m.lookup(key)
	return h != slab.Nil
}

func (m *Map[K, E]) startWrite() {
	if m == nil {
		// We have to panic here rather than initialize an empty map
		// because we need the user to pass in hash and equal
		// functions
		panic("write to nil map")
	}
	if m.flags&hashWriting != 0 {
		panic("concurrent map writes")
	}
	m.flags ^= hashWriting
	if m.pool == nil {
		if m.hash == nil || m.equal == nil {
			panic("write to map without equal and hash functions")
		}
		if m.nbuckets == 0 {
			m.nbuckets = StartBuckets
		}
		if m.logger == nil {
			m.logger = zap.NewNop()
		}
		m.init()
	}
}

func (m *Map[K, E]) endWrite() {
	if m.flags&hashWriting == 0 {
		panic("concurrent map writes")
	}
	m.flags &^= hashWriting
	if invariants.Enabled {
		invariants.Check(m.check())
	}
}

// Insert associates key with elem. If key is already present its
// element is overwritten in place, the stored key is kept, and Insert
// returns the existing position and false. Otherwise the entry is
// appended to the iteration order and Insert returns its position and
// true.
func (m *Map[K, E]) Insert(key K, elem E) (Iterator[K, E], bool) {
	m.startWrite()
	defer m.endWrite()

	b := m.hash(m.seed, key) & m.bucketMask()
	for h := m.buckets[b]; h != slab.Nil; {
		n := m.node(h)
		if m.equal(key, n.key) {
			// already have a mapping for key. Update it.
			n.elem = elem
			return m.at(h), false
		}
		h = n.down
	}

	h, n := m.pool.Reserve()
	n.key = key
	n.elem = elem
	m.linkLast(h, n)
	n.down = m.buckets[b]
	m.buckets[b] = h
	m.count++

	if overLoadFactor(m.count, len(m.buckets)) {
		m.grow(len(m.buckets) * 2)
	}
	return m.at(h), true
}

// Set associates key with elem in m.
func (m *Map[K, E]) Set(key K, elem E) {
	m.Insert(key, elem)
}

// Update calls fn with the current element for key, or the zero value
// of E if key is missing, and stores the result.
func (m *Map[K, E]) Update(key K, fn func(cur E) E) {
	if h, _ := m.lookup(key); h != slab.Nil {
		m.startWrite()
		n := m.node(h)
		n.elem = fn(n.elem)
		m.endWrite()
		return
	}
	var zeroE E
	m.Insert(key, fn(zeroE))
}

// linkLast threads n, named by h, just before the sentinel.
func (m *Map[K, E]) linkLast(h slab.Handle, n *node[K, E]) {
	t := m.node(m.tail)
	n.prev = t.prev
	n.next = m.tail
	if t.prev != slab.Nil {
		m.node(t.prev).next = h
	}
	t.prev = h
	if m.head == m.tail {
		m.head = h
	}
}

// unlink removes n, named by h, from the global list and returns the
// node that followed it.
func (m *Map[K, E]) unlink(h slab.Handle, n *node[K, E]) slab.Handle {
	if n.prev != slab.Nil {
		m.node(n.prev).next = n.next
	}
	m.node(n.next).prev = n.prev
	if h == m.head {
		m.head = n.next
	}
	return n.next
}

// Erase removes key and its element from m. It returns the position that
// followed the erased entry, or End() if key was not in m.
func (m *Map[K, E]) Erase(key K) Iterator[K, E] {
	if m == nil || m.count == 0 {
		return m.End()
	}
	m.startWrite()
	defer m.endWrite()

	b := m.hash(m.seed, key) & m.bucketMask()
	up := slab.Nil
	for h := m.buckets[b]; h != slab.Nil; {
		n := m.node(h)
		if !m.equal(key, n.key) {
			up = h
			h = n.down
			continue
		}
		if up == slab.Nil {
			m.buckets[b] = n.down
		} else {
			m.node(up).down = n.down
		}
		next := m.unlink(h, n)
		m.pool.Release(h)
		m.count--
		// Reset the hash seed to make it more difficult for attackers to
		// repeatedly trigger hash collisions. See issue 25237.
		if m.count == 0 {
			m.seed = maphash.MakeSeed()
		}
		return m.at(next)
	}
	return m.End()
}

// Delete removes key and it's associated value from the map. It reports
// whether key was present.
func (m *Map[K, E]) Delete(key K) bool {
	if !m.Contains(key) {
		return false
	}
	m.Erase(key)
	return true
}

// EraseAt removes the entry at it and returns the following position.
// It panics if it is End() or belongs to another map.
func (m *Map[K, E]) EraseAt(it Iterator[K, E]) Iterator[K, E] {
	invariants.Assertf(it.pool == m.pool && it.h != it.end,
		"slabmap: EraseAt with a foreign or end position")
	return m.Erase(m.node(it.h).key)
}

// Clear deletes all keys from m.
func (m *Map[K, E]) Clear() {
	if m == nil || m.pool == nil {
		return
	}
	m.startWrite()
	defer m.endWrite()

	if m.count > 1024 {
		m.logger.Debug("slabmap clear", zap.Int("size", m.count))
	}
	for h := m.head; h != m.tail; {
		next := m.node(h).next
		m.pool.Release(h)
		h = next
	}
	m.head = m.tail
	m.node(m.tail).prev = slab.Nil
	for i := range m.buckets {
		m.buckets[i] = slab.Nil
	}
	m.count = 0
	m.seed = maphash.MakeSeed()
}

// Reset empties m and returns its node memory, starting over with a new
// pool and the configured bucket count.
func (m *Map[K, E]) Reset() {
	if m == nil || m.pool == nil {
		return
	}
	m.startWrite()
	defer m.endWrite()

	m.pool.Destroy()
	m.init()
}

// grow replaces the bucket array with one of newsize buckets and
// rebuilds every chain from the global list.
func (m *Map[K, E]) grow(newsize int) {
	buckets := make([]slab.Handle, newsize)
	mask := uint64(newsize - 1)
	for h := m.head; h != m.tail; {
		n := m.node(h)
		b := m.hash(m.seed, n.key) & mask
		n.down = buckets[b]
		buckets[b] = h
		h = n.next
	}
	m.logger.Debug("slabmap grow",
		zap.Int("from", len(m.buckets)),
		zap.Int("to", newsize),
		zap.Int("size", m.count))
	m.buckets = buckets
}

// Clone returns a deep copy of m: a new map with its own pool into which
// every entry is inserted in iteration order.
func (m *Map[K, E]) Clone() *Map[K, E] {
	c := NewOptions[K, E](m.equal, m.hash,
		WithBuckets(m.nbuckets),
		WithHint(m.Len()),
		WithLogger(m.logger))
	for it := m.Iter(); it.Next(); {
		c.Set(it.Key(), it.Elem())
	}
	return c
}

// Move transfers m's entries to a new Map without copying or freeing
// any node, and leaves m empty and ready for use. Positions obtained
// from m stay valid and now refer to the returned map.
func (m *Map[K, E]) Move() *Map[K, E] {
	if m.flags&hashWriting != 0 {
		panic("concurrent map writes")
	}
	moved := *m
	m.init()
	return &moved
}

// Swap exchanges the contents of m and other.
func (m *Map[K, E]) Swap(other *Map[K, E]) {
	if m.flags&hashWriting != 0 || other.flags&hashWriting != 0 {
		panic("concurrent map writes")
	}
	*m, *other = *other, *m
}

// Merge inserts every entry of other into m, overwriting the elements
// of keys present in both.
func (m *Map[K, E]) Merge(other *Map[K, E]) {
	if m == other {
		return
	}
	for it := other.Iter(); it.Next(); {
		m.Set(it.Key(), it.Elem())
	}
}

// Stats describes the shape of a Map.
type Stats struct {
	Size          int
	Buckets       int
	LoadFactor    float64
	LargestBucket int
	Pool          slab.Stats
}

// Stats returns a snapshot of m's shape. It walks every bucket.
func (m *Map[K, E]) Stats() Stats {
	return Stats{
		Size:          m.Len(),
		Buckets:       m.BucketCount(),
		LoadFactor:    m.LoadFactor(),
		LargestBucket: m.LargestBucket(),
		Pool:          m.PoolStats(),
	}
}

// PoolStats returns the occupancy of m's node pool. The sentinel node
// counts as live.
func (m *Map[K, E]) PoolStats() slab.Stats {
	if m == nil {
		return slab.Stats{}
	}
	return m.pool.Stats()
}
