// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slabmap_test

import (
	"fmt"
	"hash/maphash"

	"github.com/aristanetworks/slabmap"
)

func ExampleMap_Iter() {
	m := slabmap.New(
		func(a, b string) bool { return a == b },
		maphash.String,
		slabmap.KeyElem[string, string]{"Avenue", "AVE"},
		slabmap.KeyElem[string, string]{"Street", "ST"},
		slabmap.KeyElem[string, string]{"Court", "CT"},
	)

	for i := m.Iter(); i.Next(); {
		fmt.Printf("The abbreviation for %q is %q\n", i.Key(), i.Elem())
	}
	// Output:
	// The abbreviation for "Avenue" is "AVE"
	// The abbreviation for "Street" is "ST"
	// The abbreviation for "Court" is "CT"
}

func ExampleMap_Erase() {
	m := slabmap.New[string, float64](
		func(a, b string) bool { return a == b },
		maphash.String,
		slabmap.KeyElem[string, float64]{"Hello", 1.23},
		slabmap.KeyElem[string, float64]{"World", 2.46},
	)

	next := m.Erase("Hello")
	fmt.Println(m.Len(), m.Contains("Hello"), next.Key())
	fmt.Println(m.Erase("Hello") == m.End())
	// Output:
	// 1 false World
	// true
}

func ExampleSet() {
	s := slabmap.NewSet(
		func(a, b string) bool { return a == b },
		maphash.String,
		"red", "green", "red", "blue",
	)
	for k := range s.All() {
		fmt.Println(k)
	}
	// Output:
	// red
	// green
	// blue
}
