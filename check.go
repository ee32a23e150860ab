// Modifications copyright (c) Arista Networks, Inc. 2026
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slabmap

import (
	"github.com/aristanetworks/slabmap/slab"
	"github.com/cockroachdb/errors"
)

// check verifies the structure of m: the global list is well linked and
// holds count nodes, every node sits in the bucket its hash selects, and
// the load factor is below MaxLoadFactor.
func (m *Map[K, E]) check() error {
	if m == nil || m.pool == nil {
		return nil
	}
	nb := len(m.buckets)
	if nb < StartBuckets || nb&(nb-1) != 0 {
		return errors.Newf("bucket count %d is not a power of two >= %d", nb, StartBuckets)
	}
	if m.count > 0 && overLoadFactor(m.count, nb) {
		return errors.Newf("%d entries in %d buckets exceeds load factor", m.count, nb)
	}
	if err := m.pool.Check(); err != nil {
		return errors.Wrap(err, "node pool")
	}
	if live := m.pool.Len(); live != m.count+1 {
		return errors.Newf("pool has %d live nodes, want %d", live, m.count+1)
	}

	t := m.node(m.tail)
	if t.next != slab.Nil || t.down != slab.Nil {
		return errors.New("sentinel has forward links")
	}
	if m.count == 0 {
		if m.head != m.tail || t.prev != slab.Nil {
			return errors.New("empty map with non-empty global list")
		}
	}

	n := 0
	prev := slab.Nil
	for h := m.head; h != m.tail; {
		if n > m.count {
			return errors.Newf("global list longer than count %d", m.count)
		}
		nd := m.node(h)
		if nd.prev != prev {
			return errors.Newf("node %s: prev is %s, want %s", h, nd.prev, prev)
		}
		b := m.hash(m.seed, nd.key) & m.bucketMask()
		if !m.inChain(b, h) {
			return errors.Newf("node %s missing from bucket %d", h, b)
		}
		prev = h
		h = nd.next
		n++
	}
	if n != m.count {
		return errors.Newf("global list has %d nodes, count is %d", n, m.count)
	}
	if t.prev != prev {
		return errors.Newf("sentinel prev is %s, want %s", t.prev, prev)
	}

	chained := 0
	for i := range m.buckets {
		for h := m.buckets[i]; h != slab.Nil; h = m.node(h).down {
			chained++
			if chained > m.count {
				return errors.Newf("bucket chains hold more than %d nodes", m.count)
			}
		}
	}
	if chained != m.count {
		return errors.Newf("bucket chains hold %d nodes, count is %d", chained, m.count)
	}
	return nil
}

func (m *Map[K, E]) inChain(b uint64, target slab.Handle) bool {
	for h := m.buckets[b]; h != slab.Nil; h = m.node(h).down {
		if h == target {
			return true
		}
	}
	return false
}
