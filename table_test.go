// Modifications copyright (c) Arista Networks, Inc. 2026
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slabmap

import (
	"hash/maphash"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

func stringEqual(a, b string) bool { return a == b }

func TestGrowAtLoadFactor(t *testing.T) {
	m := New[int, int](intEqual, intHash)
	require.Equal(t, StartBuckets, m.BucketCount())
	for i := 1; i <= 5; i++ {
		m.Set(i, i)
	}
	assert.Equal(t, 8, m.BucketCount())
	m.Set(6, 6)
	m.Set(7, 7)
	assert.Equal(t, 16, m.BucketCount())
	assert.InDelta(t, 7.0/16, m.LoadFactor(), 1e-9)
	m.Set(8, 8)
	assert.Equal(t, 16, m.BucketCount())
	require.NoError(t, m.check())
}

func TestEraseKeepsOthers(t *testing.T) {
	m := New[string, float64](stringEqual, maphash.String)
	m.Set("Hello", 1.23)
	m.Set("World", 2.46)

	next := m.Erase("Hello")
	require.False(t, next.IsEnd())
	assert.Equal(t, "World", next.Key())
	assert.Equal(t, 1, m.Size())
	assert.False(t, m.Contains("Hello"))
	assert.True(t, m.Contains("World"))
	assert.Equal(t, m.End(), m.Find("Hello"))
	assert.Equal(t, m.End(), m.Erase("Hello"))
	assert.Equal(t, m.End(), m.Erase("World"))
	require.NoError(t, m.check())
}

func TestInsertOverwrites(t *testing.T) {
	m := New[int, string](intEqual, intHash)
	first, inserted := m.Insert(5, "a")
	require.True(t, inserted)
	again, inserted := m.Insert(5, "b")
	require.False(t, inserted)
	assert.Equal(t, first, again)
	assert.Equal(t, 1, m.Size())
	assert.Equal(t, "b", m.Find(5).Elem())
}

type caseless string

func TestInsertKeepsFirstKey(t *testing.T) {
	fold := func(s caseless) string {
		b := []byte(s)
		for i, c := range b {
			if c >= 'A' && c <= 'Z' {
				b[i] = c + 'a' - 'A'
			}
		}
		return string(b)
	}
	m := New[caseless, int](
		func(a, b caseless) bool { return fold(a) == fold(b) },
		func(seed maphash.Seed, k caseless) uint64 { return maphash.String(seed, fold(k)) },
	)
	m.Set("Key", 1)
	m.Set("KEY", 2)
	require.Equal(t, 1, m.Len())
	it := m.Begin()
	assert.Equal(t, caseless("Key"), it.Key())
	assert.Equal(t, 2, it.Elem())
}

func TestClearThenReuse(t *testing.T) {
	m := New[int, int](intEqual, intHash)
	for i := 0; i < 100; i++ {
		m.Set(i, i)
	}
	buckets := m.BucketCount()
	m.Clear()
	assert.Equal(t, 0, m.Size())
	assert.Equal(t, m.Begin(), m.End())
	assert.Equal(t, buckets, m.BucketCount())
	for b := 0; b < m.BucketCount(); b++ {
		assert.Zero(t, m.BucketSize(b))
	}

	it, inserted := m.Insert(42, 1)
	require.True(t, inserted)
	assert.Equal(t, m.Begin(), it)
	assert.Equal(t, 1, m.Len())
	v, ok := m.Get(42)
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	require.NoError(t, m.check())

	m.Reset()
	assert.Equal(t, StartBuckets, m.BucketCount())
	assert.Equal(t, 0, m.Len())
	m.Set(1, 1)
	assert.Equal(t, 2, m.PoolStats().Live)
}

func TestBuckets(t *testing.T) {
	m := New[uint64, uint64](
		func(a, b uint64) bool { return a == b },
		badIntHash,
	)
	for _, k := range []uint64{3, 11, 19, 4} {
		m.Set(k, k)
	}
	assert.Equal(t, 3, m.BucketSize(3))
	assert.Equal(t, 1, m.BucketSize(4))
	assert.Equal(t, 0, m.BucketSize(0))
	assert.Equal(t, 3, m.Bucket(19))
	assert.Equal(t, 3, m.LargestBucket())

	assert.Panics(t, func() { m.BucketSize(8) })
	assert.Panics(t, func() { m.BucketSize(-1) })
	assert.Panics(t, func() { m.Bucket(5) })

	st := m.Stats()
	assert.Equal(t, Stats{
		Size:          4,
		Buckets:       8,
		LoadFactor:    0.5,
		LargestBucket: 3,
		Pool:          m.PoolStats(),
	}, st)
	assert.Equal(t, 5, st.Pool.Live)
}

func TestIteratorStableAcrossGrow(t *testing.T) {
	m := New[int, int](intEqual, intHash)
	var its []Iterator[int, int]
	for i := 0; i < 200; i++ {
		it, _ := m.Insert(i, i*i)
		its = append(its, it)
	}
	require.Greater(t, m.BucketCount(), StartBuckets)
	for i, it := range its {
		assert.Equal(t, i, it.Key())
		assert.Equal(t, i*i, it.Elem())
		assert.Equal(t, m.Find(i), it)
	}
}

func TestStaleIteratorPanics(t *testing.T) {
	m := New[int, int](intEqual, intHash)
	it, _ := m.Insert(1, 1)
	m.Set(2, 2)
	m.Erase(1)
	assert.Panics(t, func() { it.Key() })
	assert.Panics(t, func() { m.End().Key() })
	assert.Panics(t, func() { m.End().Next() })
	assert.Panics(t, func() { m.Begin().Prev() })
	assert.Panics(t, func() { m.EraseAt(m.End()) })
	m.Set(3, 3)
	// The slot of 1 is reused by 3, the old position must not see it.
	assert.Panics(t, func() { it.Elem() })
}

func TestEraseAt(t *testing.T) {
	m := New[int, int](intEqual, intHash)
	for i := 0; i < 10; i++ {
		m.Set(i, i)
	}
	for it := m.Begin(); it != m.End(); {
		if it.Key()%2 == 0 {
			it = m.EraseAt(it)
		} else {
			it = it.Next()
		}
	}
	assert.Equal(t, []int{1, 3, 5, 7, 9}, m.AppendKeys(nil))
	require.NoError(t, m.check())
}

func TestCloneMoveSwap(t *testing.T) {
	m := New[int, string](intEqual, intHash)
	for i := 0; i < 40; i++ {
		m.Set(i, string(rune('a'+i%26)))
	}

	t.Run("Clone", func(t *testing.T) {
		c := m.Clone()
		assert.True(t, Equal(m, c))
		assert.Equal(t, m.AppendKeys(nil), c.AppendKeys(nil))
		assert.NotSame(t, m.pool, c.pool)
		assert.NotEqual(t, m.Begin(), c.Begin())
		c.Set(100, "z")
		assert.False(t, m.Contains(100))
		require.NoError(t, c.check())
	})

	t.Run("Move", func(t *testing.T) {
		src := m.Clone()
		first := src.Begin()
		pool := src.pool
		dst := src.Move()
		assert.Same(t, pool, dst.pool)
		assert.Equal(t, 0, src.Len())
		assert.Equal(t, src.Begin(), src.End())
		assert.Equal(t, 40, dst.Len())
		assert.Equal(t, dst.Begin(), first)
		assert.Equal(t, 0, first.Key())

		src.Set(1, "again")
		assert.Equal(t, 1, src.Len())
		require.NoError(t, src.check())
		require.NoError(t, dst.check())
	})

	t.Run("Swap", func(t *testing.T) {
		a := m.Clone()
		b := New[int, string](intEqual, intHash)
		b.Set(-1, "neg")
		itA := a.Find(3)
		a.Swap(b)
		assert.Equal(t, 1, a.Len())
		assert.Equal(t, 40, b.Len())
		assert.Equal(t, b.Find(3), itA)
		assert.Equal(t, "d", itA.Elem())
	})
}

func TestMerge(t *testing.T) {
	a := New(intEqual, intHash,
		KeyElem[int, string]{1, "a"},
		KeyElem[int, string]{2, "b"})
	b := New(intEqual, intHash,
		KeyElem[int, string]{2, "B"},
		KeyElem[int, string]{3, "C"})
	a.Merge(b)
	a.Merge(a)
	assert.Equal(t, "slabmap.Map[1:a 2:B 3:C]", a.String())
}

func TestSet(t *testing.T) {
	s := NewSet(stringEqual, maphash.String, "a", "b")
	_, added := s.Insert("c")
	assert.True(t, added)
	_, added = s.Insert("a")
	assert.False(t, added)
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains("b"))
	assert.Equal(t, "b", s.Find("b").Key())
	assert.Equal(t, s.End(), s.Find("x"))

	o := NewSet(stringEqual, maphash.String, "c", "d")
	s.Union(o)
	assert.Equal(t, []string{"a", "b", "c", "d"}, s.AppendKeys(nil))

	c := s.Clone()
	assert.True(t, SetEqual(s, c))
	assert.True(t, c.Delete("a"))
	assert.False(t, SetEqual(s, c))

	moved := c.Move()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 3, moved.Len())
	c.Swap(moved)
	assert.Equal(t, 3, c.Len())

	s.Clear()
	assert.Equal(t, s.Begin(), s.End())
	assert.Equal(t, 8, s.BucketCount())
	assert.Zero(t, s.LoadFactor())
}

func TestRehashLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := NewOptions[int, int](intEqual, intHash, WithLogger(zap.New(core)))
	for i := 0; i < 6; i++ {
		m.Set(i, i)
	}
	grows := logs.FilterMessage("slabmap grow").All()
	require.Len(t, grows, 1)
	assert.Equal(t, map[string]interface{}{
		"from": int64(8),
		"to":   int64(16),
		"size": int64(6),
	}, grows[0].ContextMap())
	assert.NotZero(t, logs.FilterMessage("slab grow").Len())
}

func TestRandomOps(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3, 42} {
		rng := rand.New(rand.NewSource(seed))
		m := New[int, int](intEqual, intHash)
		ref := map[int]int{}
		var order []int
		for op := 0; op < 5000; op++ {
			k := rng.Intn(300)
			switch rng.Intn(4) {
			case 0, 1:
				v := rng.Int()
				_, inserted := m.Insert(k, v)
				_, had := ref[k]
				require.Equal(t, !had, inserted)
				if !had {
					order = append(order, k)
				}
				ref[k] = v
			case 2:
				next := m.Erase(k)
				if _, had := ref[k]; had {
					i := slices.Index(order, k)
					order = slices.Delete(order, i, i+1)
					if i < len(order) {
						require.Equal(t, order[i], next.Key())
					} else {
						require.Equal(t, m.End(), next)
					}
					delete(ref, k)
				} else {
					require.Equal(t, m.End(), next)
				}
			case 3:
				v, ok := m.Get(k)
				rv, rok := ref[k]
				require.Equal(t, rok, ok)
				require.Equal(t, rv, v)
			}
			require.Equal(t, len(ref), m.Len())
		}
		require.NoError(t, m.check())
		require.Equal(t, order, m.AppendKeys(nil))
		for k, v := range ref {
			it := m.Find(k)
			require.Equal(t, v, it.Elem())
		}
	}
}
