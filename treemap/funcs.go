// Modifications copyright (c) Arista Networks, Inc. 2026
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemap

import (
	"fmt"
	"strings"
)

// Equal reports whether m1 and m2 hold the same keys, by m1's ordering,
// with elements equal by ==.
func Equal[K any, E comparable](m1, m2 *Map[K, E]) bool {
	return EqualFunc(m1, m2, func(a, b E) bool { return a == b })
}

// EqualFunc is like Equal but compares elements with eq. Both maps are
// walked in order, so it runs in linear time.
func EqualFunc[K, E any](m1, m2 *Map[K, E], eq func(E, E) bool) bool {
	if m1.Len() != m2.Len() {
		return false
	}
	if m1.Len() == 0 {
		return true
	}
	less := m1.less
	it2 := m2.Begin()
	for it1 := m1.Begin(); !it1.IsEnd(); it1 = it1.Next() {
		n1, n2 := it1.node(), it2.node()
		if less(n1.key, n2.key) || less(n2.key, n1.key) || !eq(n1.elem, n2.elem) {
			return false
		}
		it2 = it2.Next()
	}
	return true
}

// StringFunc converts m to a string representation in key order with the
// help of strK and strE.
func StringFunc[K, E any](m *Map[K, E],
	strK func(key K) string,
	strE func(elem E) string) string {
	var b strings.Builder
	b.WriteString("treemap.Map[")
	first := true
	for k, e := range m.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(strK(k))
		b.WriteByte(':')
		b.WriteString(strE(e))
	}
	b.WriteByte(']')
	return b.String()
}

// String converts m to a string using the default fmt formatting of its
// keys and elems.
func (m *Map[K, E]) String() string {
	return StringFunc(m,
		func(key K) string { return fmt.Sprint(key) },
		func(elem E) string { return fmt.Sprint(elem) })
}
