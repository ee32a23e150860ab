// Modifications copyright (c) Arista Networks, Inc. 2026
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package invariants holds the assertion helpers shared by the
// containers. Precondition violations are programming errors and panic
// with an assertion failure; they are never returned as errors.
package invariants

import "github.com/cockroachdb/errors"

// Assertf panics with an assertion failure if cond is false.
func Assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(errors.AssertionFailedf(format, args...))
	}
}

// Check panics if err is non-nil. It is used to run structural checkers
// when Enabled is set.
func Check(err error) {
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "invariant violated"))
	}
}
