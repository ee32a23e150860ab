// Modifications copyright (c) Arista Networks, Inc. 2026
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package treemap provides an ordered Map backed by a red-black tree.
// Every node is also threaded on a ring of next/prev links in key order,
// so stepping an Iterator is O(1) and never walks the tree.
//
// One sentinel node per tree terminates every leaf link, is the parent
// of the root, and heads the ring: its next is the minimum and its prev
// the maximum. The sentinel is the End position.
//
// A Map is not safe for concurrent use.
package treemap

import (
	"github.com/aristanetworks/slabmap/internal/invariants"
	"github.com/aristanetworks/slabmap/slab"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

type color bool

const (
	red   color = false
	black color = true
)

// flags
const writing = 1

type node[K, E any] struct {
	key  K
	elem E

	left, right, parent slab.Handle
	// in-order neighbours; the sentinel closes the ring
	next, prev slab.Handle

	color color
}

// Map is an ordered map from K to E.
type Map[K, E any] struct {
	root  slab.Handle
	end   slab.Handle
	count int
	flags uint32

	less func(a, b K) bool
	pool *slab.Pool[node[K, E]]

	capacity int
	logger   *zap.Logger
}

type config struct {
	capacity int
	logger   *zap.Logger
}

// Option configures a Map.
type Option func(c *config)

// WithCapacity sizes the node pool so that n entries fit in its first
// block.
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}

// WithLogger sets the logger used to report pool growth.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// New returns an empty Map ordered by less, which must be a strict weak
// ordering. Keys for which neither less(a, b) nor less(b, a) holds are
// the same key.
func New[K, E any](less func(a, b K) bool, opts ...Option) *Map[K, E] {
	if less == nil {
		panic("treemap: less function is required")
	}
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	m := &Map[K, E]{
		less:     less,
		capacity: c.capacity,
		logger:   c.logger,
	}
	m.init()
	return m
}

// NewOrdered returns an empty Map ordered by the < operator.
func NewOrdered[K constraints.Ordered, E any](opts ...Option) *Map[K, E] {
	return New[K, E](Less[K], opts...)
}

func (m *Map[K, E]) init() {
	m.pool = slab.New[node[K, E]](
		slab.WithInitialCapacity(m.capacity+1),
		slab.WithLogger(m.logger))
	var s *node[K, E]
	m.end, s = m.pool.Reserve()
	s.left, s.right, s.parent = m.end, m.end, m.end
	s.next, s.prev = m.end, m.end
	s.color = black
	m.root = m.end
	m.count = 0
}

func (m *Map[K, E]) n(h slab.Handle) *node[K, E] {
	return m.pool.Get(h)
}

func (m *Map[K, E]) startWrite() {
	if m == nil {
		panic("write to nil map")
	}
	if m.flags&writing != 0 {
		panic("concurrent map writes")
	}
	m.flags ^= writing
}

func (m *Map[K, E]) endWrite() {
	if m.flags&writing == 0 {
		panic("concurrent map writes")
	}
	m.flags &^= writing
	if invariants.Enabled {
		invariants.Check(m.check())
	}
}

// Len returns the number of entries in m.
func (m *Map[K, E]) Len() int {
	if m == nil {
		return 0
	}
	return m.count
}

// Size is an alias of Len.
func (m *Map[K, E]) Size() int { return m.Len() }

// find returns the node holding key, or the sentinel.
func (m *Map[K, E]) find(key K) slab.Handle {
	x := m.root
	for x != m.end {
		xn := m.n(x)
		switch {
		case m.less(key, xn.key):
			x = xn.left
		case m.less(xn.key, key):
			x = xn.right
		default:
			return x
		}
	}
	return m.end
}

// Find returns the position of key, or End().
func (m *Map[K, E]) Find(key K) Iterator[K, E] {
	if m == nil {
		return Iterator[K, E]{}
	}
	return m.at(m.find(key))
}

// Get returns the element for key and whether key is present.
func (m *Map[K, E]) Get(key K) (E, bool) {
	if m != nil {
		if x := m.find(key); x != m.end {
			return m.n(x).elem, true
		}
	}
	var zeroE E
	return zeroE, false
}

// Contains reports whether key is in m.
func (m *Map[K, E]) Contains(key K) bool {
	return m != nil && m.find(key) != m.end
}

// Insert associates key with elem. If an equal key is present its
// element is overwritten, the tree is left unchanged, and Insert returns
// the existing position and false.
func (m *Map[K, E]) Insert(key K, elem E) (Iterator[K, E], bool) {
	m.startWrite()
	defer m.endWrite()

	y := m.end
	x := m.root
	goLeft := false
	for x != m.end {
		y = x
		xn := m.n(x)
		switch {
		case m.less(key, xn.key):
			x, goLeft = xn.left, true
		case m.less(xn.key, key):
			x, goLeft = xn.right, false
		default:
			xn.elem = elem
			return m.at(x), false
		}
	}

	z, zn := m.pool.Reserve()
	zn.key = key
	zn.elem = elem
	zn.left, zn.right, zn.parent = m.end, m.end, y
	zn.color = red
	switch yn := m.n(y); {
	case y == m.end:
		m.root = z
		zn.prev, zn.next = m.end, m.end
	case goLeft:
		yn.left = z
		zn.prev, zn.next = yn.prev, y
	default:
		yn.right = z
		zn.prev, zn.next = y, yn.next
	}
	m.n(zn.prev).next = z
	m.n(zn.next).prev = z
	m.count++

	m.insertFixup(z)
	return m.at(z), true
}

// Set associates key with elem.
func (m *Map[K, E]) Set(key K, elem E) {
	m.Insert(key, elem)
}

// Erase removes key and returns the position of the next larger key, or
// End() if key was the largest or was not present.
func (m *Map[K, E]) Erase(key K) Iterator[K, E] {
	if m == nil {
		return Iterator[K, E]{}
	}
	z := m.find(key)
	if z == m.end {
		return m.End()
	}
	m.startWrite()
	defer m.endWrite()
	return m.at(m.erase(z))
}

// Delete removes key and reports whether it was present.
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
	invariants.Assertf(it.pool == m.pool && it.h != m.end,
		"treemap: EraseAt with a foreign or end position")
	m.startWrite()
	defer m.endWrite()
	return m.at(m.erase(it.h))
}

// Clear removes every entry.
func (m *Map[K, E]) Clear() {
	if m == nil {
		return
	}
	m.startWrite()
	defer m.endWrite()

	if m.count > 1024 {
		m.logger.Debug("treemap clear", zap.Int("size", m.count))
	}
	s := m.n(m.end)
	for h := s.next; h != m.end; {
		next := m.n(h).next
		m.pool.Release(h)
		h = next
	}
	s.left, s.right, s.parent = m.end, m.end, m.end
	s.next, s.prev = m.end, m.end
	m.root = m.end
	m.count = 0
}

// Reset empties m and returns its node memory.
func (m *Map[K, E]) Reset() {
	if m == nil {
		return
	}
	m.startWrite()
	defer m.endWrite()

	m.pool.Destroy()
	m.init()
}

// Clone returns a deep copy of m with its own pool.
func (m *Map[K, E]) Clone() *Map[K, E] {
	c := New[K, E](m.less, WithCapacity(m.Len()), WithLogger(m.logger))
	for k, e := range m.All() {
		c.Set(k, e)
	}
	return c
}

// Move transfers m's entries to a new Map without copying or freeing
// any node, and leaves m empty and ready for use.
func (m *Map[K, E]) Move() *Map[K, E] {
	if m.flags&writing != 0 {
		panic("concurrent map writes")
	}
	moved := *m
	m.init()
	return &moved
}

// Swap exchanges the contents of m and other.
func (m *Map[K, E]) Swap(other *Map[K, E]) {
	if m.flags&writing != 0 || other.flags&writing != 0 {
		panic("concurrent map writes")
	}
	*m, *other = *other, *m
}

// Stats describes the shape of a Map.
type Stats struct {
	Size int
	// Height is the number of nodes on the longest root to leaf path.
	Height int
	// BlackHeight is the number of black nodes on any root to leaf path.
	BlackHeight int
	Pool        slab.Stats
}

// Stats walks m and returns its shape.
func (m *Map[K, E]) Stats() Stats {
	st := Stats{Size: m.Len(), Pool: m.PoolStats()}
	if m == nil {
		return st
	}
	st.Height = m.height(m.root)
	for x := m.root; x != m.end; x = m.n(x).left {
		if m.n(x).color == black {
			st.BlackHeight++
		}
	}
	return st
}

func (m *Map[K, E]) height(x slab.Handle) int {
	if x == m.end {
		return 0
	}
	xn := m.n(x)
	return 1 + max(m.height(xn.left), m.height(xn.right))
}

// PoolStats returns the occupancy of m's node pool. The sentinel counts
// as live.
func (m *Map[K, E]) PoolStats() slab.Stats {
	if m == nil {
		return slab.Stats{}
	}
	return m.pool.Stats()
}
