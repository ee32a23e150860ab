// Modifications copyright (c) Arista Networks, Inc. 2026
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemap

import (
	"github.com/aristanetworks/slabmap/slab"
	"github.com/cockroachdb/errors"
)

// check verifies the red-black properties, parent links, key order and
// that the ring threads every node in in-order sequence.
func (m *Map[K, E]) check() error {
	if m == nil {
		return nil
	}
	if err := m.pool.Check(); err != nil {
		return errors.Wrap(err, "node pool")
	}
	if live := m.pool.Len(); live != m.count+1 {
		return errors.Newf("pool has %d live nodes, want %d", live, m.count+1)
	}
	s := m.n(m.end)
	if s.color != black {
		return errors.New("sentinel is red")
	}
	if m.root != m.end {
		rn := m.n(m.root)
		if rn.color != black {
			return errors.New("root is red")
		}
		if rn.parent != m.end {
			return errors.Newf("root parent is %s", rn.parent)
		}
	}

	var inorder []slab.Handle
	if _, err := m.checkSubtree(m.root, &inorder); err != nil {
		return err
	}
	if len(inorder) != m.count {
		return errors.Newf("tree holds %d nodes, count is %d", len(inorder), m.count)
	}
	for i := 1; i < len(inorder); i++ {
		if !m.less(m.n(inorder[i-1]).key, m.n(inorder[i]).key) {
			return errors.Newf("keys out of order at %s", inorder[i])
		}
	}

	prev := m.end
	h := s.next
	for i, want := range inorder {
		if h != want {
			return errors.Newf("ring position %d is %s, in-order walk has %s", i, h, want)
		}
		n := m.n(h)
		if n.prev != prev {
			return errors.Newf("node %s: prev is %s, want %s", h, n.prev, prev)
		}
		prev = h
		h = n.next
	}
	if h != m.end {
		return errors.Newf("ring continues past the last node at %s", h)
	}
	if s.prev != prev {
		return errors.Newf("sentinel prev is %s, want %s", s.prev, prev)
	}
	return nil
}

// checkSubtree returns the black height of the subtree at x.
func (m *Map[K, E]) checkSubtree(x slab.Handle, inorder *[]slab.Handle) (int, error) {
	if x == m.end {
		return 1, nil
	}
	if len(*inorder) > m.count {
		return 0, errors.Newf("tree holds more than %d nodes", m.count)
	}
	xn := m.n(x)
	for _, c := range [2]slab.Handle{xn.left, xn.right} {
		if c == m.end {
			continue
		}
		cn := m.n(c)
		if cn.parent != x {
			return 0, errors.Newf("node %s: parent is %s, want %s", c, cn.parent, x)
		}
		if xn.color == red && cn.color == red {
			return 0, errors.Newf("red node %s has red child %s", x, c)
		}
	}
	lh, err := m.checkSubtree(xn.left, inorder)
	if err != nil {
		return 0, err
	}
	*inorder = append(*inorder, x)
	rh, err := m.checkSubtree(xn.right, inorder)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, errors.Newf("node %s: black height %d on the left, %d on the right", x, lh, rh)
	}
	if xn.color == black {
		lh++
	}
	return lh, nil
}
