// Modifications copyright (c) Arista Networks, Inc. 2026
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hashing provides hash functions shaped for slabmap.New:
// func(maphash.Seed, K) uint64. Functions built on a third-party hash
// fold the table's seed into that hash's own seed, so reseeding a table
// still changes every bucket index.
package hashing

import (
	"encoding/binary"
	"hash/fnv"
	"hash/maphash"
	"unsafe"

	"github.com/dchest/siphash"
	"github.com/fxamacker/circlehash"
	"github.com/spaolacci/murmur3"
)

// Equal is the == predicate, for use alongside the hash functions.
func Equal[T comparable](a, b T) bool {
	return a == b
}

// Comparable hashes any comparable value with maphash.
func Comparable[T comparable](seed maphash.Seed, v T) uint64 {
	return maphash.Comparable(seed, v)
}

// String hashes s with maphash.
func String(seed maphash.Seed, s string) uint64 {
	return maphash.String(seed, s)
}

// Bytes hashes b with maphash.
func Bytes(seed maphash.Seed, b []byte) uint64 {
	return maphash.Bytes(seed, b)
}

// Int hashes the little endian encoding of v.
func Int(seed maphash.Seed, v int) uint64 {
	return Uint64(seed, uint64(v))
}

// Uint64 hashes the little endian encoding of v.
func Uint64(seed maphash.Seed, v uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return maphash.Bytes(seed, buf[:])
}

func seedBits(seed maphash.Seed) uint64 {
	return maphash.Bytes(seed, nil)
}

func stringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// FNV1a hashes s with 64-bit FNV-1a, prefixed by the seed.
func FNV1a(seed maphash.Seed, s string) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], seedBits(seed))
	h.Write(buf[:])
	h.Write(stringBytes(s))
	return h.Sum64()
}

// FNV1 hashes s with 64-bit FNV-1, prefixed by the seed.
func FNV1(seed maphash.Seed, s string) uint64 {
	h := fnv.New64()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], seedBits(seed))
	h.Write(buf[:])
	h.Write(stringBytes(s))
	return h.Sum64()
}

// Murmur3Bytes hashes b with 64-bit MurmurHash3.
func Murmur3Bytes(seed maphash.Seed, b []byte) uint64 {
	return murmur3.Sum64WithSeed(b, uint32(seedBits(seed)))
}

// Murmur3String hashes s with 64-bit MurmurHash3.
func Murmur3String(seed maphash.Seed, s string) uint64 {
	return Murmur3Bytes(seed, stringBytes(s))
}

// CircleHashBytes hashes b with CircleHash64.
func CircleHashBytes(seed maphash.Seed, b []byte) uint64 {
	return circlehash.Hash64(b, seedBits(seed))
}

// CircleHashString hashes s with CircleHash64.
func CircleHashString(seed maphash.Seed, s string) uint64 {
	return circlehash.Hash64(stringBytes(s), seedBits(seed))
}

// CircleHashUint64 hashes v with CircleHash64.
func CircleHashUint64(seed maphash.Seed, v uint64) uint64 {
	return circlehash.Hash64Uint64x2(v, 0, seedBits(seed))
}

// SipHash returns a SipHash-2-4 hash keyed by k0 and k1. The table seed
// is mixed into the key.
func SipHash(k0, k1 uint64) func(maphash.Seed, []byte) uint64 {
	return func(seed maphash.Seed, b []byte) uint64 {
		return siphash.Hash(k0^seedBits(seed), k1, b)
	}
}

// SipHashString is SipHash for string keys.
func SipHashString(k0, k1 uint64) func(maphash.Seed, string) uint64 {
	h := SipHash(k0, k1)
	return func(seed maphash.Seed, s string) uint64 {
		return h(seed, stringBytes(s))
	}
}
