// Modifications copyright (c) Arista Networks, Inc. 2026
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hashing

import (
	"bytes"
	"hash/maphash"
	"strconv"
	"testing"

	"github.com/aristanetworks/slabmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringHashes(t *testing.T) {
	sipKey := SipHashString(0x0706050403020100, 0x0f0e0d0c0b0a0908)
	for name, hash := range map[string]func(maphash.Seed, string) uint64{
		"String":           String,
		"Comparable":       Comparable[string],
		"FNV1a":            FNV1a,
		"FNV1":             FNV1,
		"Murmur3String":    Murmur3String,
		"CircleHashString": CircleHashString,
		"SipHashString":    sipKey,
	} {
		t.Run(name, func(t *testing.T) {
			seed := maphash.MakeSeed()
			assert.Equal(t, hash(seed, "slab"), hash(seed, "slab"))
			assert.NotEqual(t, hash(seed, "slab"), hash(seed, "slap"))

			m := slabmap.New[string, int](Equal[string], hash)
			for i := 0; i < 500; i++ {
				m.Set(strconv.Itoa(i), i)
			}
			require.Equal(t, 500, m.Len())
			for i := 0; i < 500; i++ {
				v, ok := m.Get(strconv.Itoa(i))
				require.True(t, ok)
				require.Equal(t, i, v)
			}
			// A usable hash keeps chains short.
			assert.Less(t, m.LargestBucket(), 16)
		})
	}
}

func TestSeedChangesHash(t *testing.T) {
	s1, s2 := maphash.MakeSeed(), maphash.MakeSeed()
	for name, hash := range map[string]func(maphash.Seed, string) uint64{
		"FNV1a":            FNV1a,
		"Murmur3String":    Murmur3String,
		"CircleHashString": CircleHashString,
		"SipHashString":    SipHashString(1, 2),
	} {
		assert.NotEqual(t, hash(s1, "key"), hash(s2, "key"), name)
	}
}

func TestBytesHashes(t *testing.T) {
	seed := maphash.MakeSeed()
	b := []byte("bytes")
	assert.Equal(t, Murmur3String(seed, "bytes"), Murmur3Bytes(seed, b))
	assert.Equal(t, CircleHashString(seed, "bytes"), CircleHashBytes(seed, b))
	assert.Equal(t, SipHashString(3, 4)(seed, "bytes"), SipHash(3, 4)(seed, b))
	assert.Equal(t, String(seed, "bytes"), Bytes(seed, b))

	m := slabmap.New[[]byte, struct{}](bytes.Equal, SipHash(5, 6))
	m.Set([]byte("a"), struct{}{})
	assert.True(t, m.Contains([]byte("a")))
}

func TestIntegerHashes(t *testing.T) {
	seed := maphash.MakeSeed()
	assert.Equal(t, Int(seed, 42), Uint64(seed, 42))
	assert.NotEqual(t, Uint64(seed, 1), Uint64(seed, 2))
	assert.NotEqual(t, CircleHashUint64(seed, 1), CircleHashUint64(seed, 2))

	s := slabmap.NewSet[uint64](Equal[uint64], CircleHashUint64)
	for i := uint64(0); i < 100; i++ {
		s.Insert(i * 1 << 32)
	}
	assert.Equal(t, 100, s.Len())
	assert.Less(t, s.LargestBucket(), 16)
}
