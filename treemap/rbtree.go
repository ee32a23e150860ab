// Modifications copyright (c) Arista Networks, Inc. 2026
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemap

import "github.com/aristanetworks/slabmap/slab"

func (m *Map[K, E]) rotateLeft(x slab.Handle) {
	xn := m.n(x)
	y := xn.right
	yn := m.n(y)
	xn.right = yn.left
	if yn.left != m.end {
		m.n(yn.left).parent = x
	}
	yn.parent = xn.parent
	m.replaceChild(xn.parent, x, y)
	yn.left = x
	xn.parent = y
}

func (m *Map[K, E]) rotateRight(x slab.Handle) {
	xn := m.n(x)
	y := xn.left
	yn := m.n(y)
	xn.left = yn.right
	if yn.right != m.end {
		m.n(yn.right).parent = x
	}
	yn.parent = xn.parent
	m.replaceChild(xn.parent, x, y)
	yn.right = x
	xn.parent = y
}

// replaceChild makes v take u's place under parent p.
func (m *Map[K, E]) replaceChild(p, u, v slab.Handle) {
	switch pn := m.n(p); {
	case p == m.end:
		m.root = v
	case u == pn.left:
		pn.left = v
	default:
		pn.right = v
	}
}

// transplant replaces the subtree rooted at u with the one rooted at v.
// v may be the sentinel, whose parent is then set for deleteFixup.
func (m *Map[K, E]) transplant(u, v slab.Handle) {
	p := m.n(u).parent
	m.replaceChild(p, u, v)
	m.n(v).parent = p
}

func (m *Map[K, E]) insertFixup(z slab.Handle) {
	for {
		zp := m.n(z).parent
		if m.n(zp).color == black {
			break
		}
		// zp is red, so it is not the root and zpp is a real node.
		zpp := m.n(zp).parent
		zppn := m.n(zpp)
		if zp == zppn.left {
			u := zppn.right
			if un := m.n(u); un.color == red {
				m.n(zp).color = black
				un.color = black
				zppn.color = red
				z = zpp
				continue
			}
			if z == m.n(zp).right {
				z = zp
				m.rotateLeft(z)
				zp = m.n(z).parent
			}
			m.n(zp).color = black
			zppn.color = red
			m.rotateRight(zpp)
		} else {
			u := zppn.left
			if un := m.n(u); un.color == red {
				m.n(zp).color = black
				un.color = black
				zppn.color = red
				z = zpp
				continue
			}
			if z == m.n(zp).left {
				z = zp
				m.rotateRight(z)
				zp = m.n(z).parent
			}
			m.n(zp).color = black
			zppn.color = red
			m.rotateLeft(zpp)
		}
	}
	m.n(m.root).color = black
}

// erase unlinks z from the tree and the ring, releases it and returns
// its successor. A node with two children is replaced by its successor
// node, so no surviving entry changes position.
func (m *Map[K, E]) erase(z slab.Handle) slab.Handle {
	zn := m.n(z)
	succ := zn.next
	removed := zn.color
	var x slab.Handle
	switch {
	case zn.left == m.end:
		x = zn.right
		m.transplant(z, zn.right)
	case zn.right == m.end:
		x = zn.left
		m.transplant(z, zn.left)
	default:
		// The minimum of the right subtree is the ring successor.
		y := succ
		yn := m.n(y)
		removed = yn.color
		x = yn.right
		if yn.parent == z {
			m.n(x).parent = y
		} else {
			m.transplant(y, yn.right)
			yn.right = zn.right
			m.n(yn.right).parent = y
		}
		m.transplant(z, y)
		yn.left = zn.left
		m.n(yn.left).parent = y
		yn.color = zn.color
	}

	m.n(zn.prev).next = zn.next
	m.n(zn.next).prev = zn.prev

	if removed == black {
		m.deleteFixup(x)
	}
	m.pool.Release(z)
	m.count--

	s := m.n(m.end)
	s.parent, s.left, s.right = m.end, m.end, m.end
	s.color = black
	return succ
}

func (m *Map[K, E]) deleteFixup(x slab.Handle) {
	for x != m.root && m.n(x).color == black {
		xp := m.n(x).parent
		xpn := m.n(xp)
		if x == xpn.left {
			w := xpn.right
			if m.n(w).color == red {
				m.n(w).color = black
				xpn.color = red
				m.rotateLeft(xp)
				w = xpn.right
			}
			wn := m.n(w)
			if m.n(wn.left).color == black && m.n(wn.right).color == black {
				wn.color = red
				x = xp
				continue
			}
			if m.n(wn.right).color == black {
				m.n(wn.left).color = black
				wn.color = red
				m.rotateRight(w)
				w = xpn.right
				wn = m.n(w)
			}
			wn.color = xpn.color
			xpn.color = black
			m.n(wn.right).color = black
			m.rotateLeft(xp)
			x = m.root
		} else {
			w := xpn.left
			if m.n(w).color == red {
				m.n(w).color = black
				xpn.color = red
				m.rotateRight(xp)
				w = xpn.left
			}
			wn := m.n(w)
			if m.n(wn.right).color == black && m.n(wn.left).color == black {
				wn.color = red
				x = xp
				continue
			}
			if m.n(wn.left).color == black {
				m.n(wn.right).color = black
				wn.color = red
				m.rotateLeft(w)
				w = xpn.left
				wn = m.n(w)
			}
			wn.color = xpn.color
			xpn.color = black
			m.n(wn.left).color = black
			m.rotateRight(xp)
			x = m.root
		}
	}
	m.n(x).color = black
}
