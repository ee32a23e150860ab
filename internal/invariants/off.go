// Modifications copyright (c) Arista Networks, Inc. 2026
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !invariants

package invariants

// Enabled is true when the invariants build tag is set. Containers then
// verify their full structure after every mutation.
const Enabled = false
