// Modifications copyright (c) Arista Networks, Inc. 2026
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemap

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Less orders values with the < operator.
func Less[T constraints.Ordered](a, b T) bool {
	return a < b
}

// Reverse returns the ordering opposite to less.
func Reverse[T any](less func(a, b T) bool) func(a, b T) bool {
	return func(a, b T) bool {
		return less(b, a)
	}
}

// CollatedLess returns an ordering of strings by the collation rules of
// tag. Strings that collate equal, such as two spellings that differ only
// in case under collate.IgnoreCase, are the same key.
//
// The returned func shares one collate.Collator and must not be used from
// multiple goroutines at once.
func CollatedLess(tag language.Tag, opts ...collate.Option) func(a, b string) bool {
	c := collate.New(tag, opts...)
	return func(a, b string) bool {
		return c.CompareString(a, b) < 0
	}
}
