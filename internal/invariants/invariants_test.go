// Modifications copyright (c) Arista Networks, Inc. 2026
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package invariants

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestAssertf(t *testing.T) {
	require.NotPanics(t, func() { Assertf(true, "unused %d", 1) })

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		require.True(t, errors.HasAssertionFailure(err))
		require.Contains(t, err.Error(), "index 7 out of range")
	}()
	Assertf(false, "index %d out of range", 7)
}

func TestCheck(t *testing.T) {
	require.NotPanics(t, func() { Check(nil) })
	require.Panics(t, func() { Check(errors.New("broken link")) })
}
