// Modifications copyright (c) Arista Networks, Inc. 2026
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemap_test

import (
	"fmt"

	"github.com/aristanetworks/slabmap/treemap"
)

func ExampleMap_LowerBound() {
	m := treemap.NewOrdered[int, string]()
	for k, v := range map[int]string{10: "ten", 30: "thirty", 20: "twenty"} {
		m.Set(k, v)
	}

	for it := m.LowerBound(15); it != m.End(); it = it.Next() {
		fmt.Println(it.Key(), it.Elem())
	}
	// Output:
	// 20 twenty
	// 30 thirty
}

func ExampleMap_Backward() {
	m := treemap.New[string, int](treemap.Less[string])
	m.Set("b", 2)
	m.Set("c", 3)
	m.Set("a", 1)

	for k, v := range m.Backward() {
		fmt.Println(k, v)
	}
	// Output:
	// c 3
	// b 2
	// a 1
}
