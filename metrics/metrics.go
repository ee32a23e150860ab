// Modifications copyright (c) Arista Networks, Inc. 2026
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics exports the size and memory use of slabmap containers
// to Prometheus.
package metrics

import (
	"sync"

	"github.com/aristanetworks/slabmap/slab"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "slabmap"

// Source is a container whose statistics can be collected. slabmap.Map,
// slabmap.Set and treemap.Map implement it.
type Source interface {
	Len() int
	PoolStats() slab.Stats
}

// hashed is implemented by hash tables.
type hashed interface {
	BucketCount() int
	LoadFactor() float64
}

type config struct {
	locker sync.Locker
}

// Option configures a Collector.
type Option func(c *config)

// WithLocker sets a lock held while the source is read. Containers are
// not safe for concurrent use, so a source that is written from other
// goroutines must be collected under the same lock as its writers.
func WithLocker(l sync.Locker) Option {
	return func(c *config) {
		c.locker = l
	}
}

// Collector implements the prometheus.Collector interface for one
// container.
type Collector struct {
	src    Source
	locker sync.Locker

	entries  *prometheus.Desc
	capacity *prometheus.Desc
	live     *prometheus.Desc
	blocks   *prometheus.Desc
	buckets  *prometheus.Desc
	load     *prometheus.Desc
}

// NewCollector returns a Collector for src. Every metric carries a
// container label set to name.
func NewCollector(name string, src Source, opts ...Option) *Collector {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	labels := prometheus.Labels{"container": name}
	desc := func(metric, help string) *prometheus.Desc {
		return prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", metric), help, nil, labels)
	}
	col := &Collector{
		src:      src,
		locker:   c.locker,
		entries:  desc("entries", "Number of entries in the container."),
		capacity: desc("pool_capacity", "Node slots allocated by the container's pool."),
		live:     desc("pool_live", "Node slots in use, sentinel nodes included."),
		blocks:   desc("pool_blocks", "Blocks in the container's pool."),
	}
	if _, ok := src.(hashed); ok {
		col.buckets = desc("buckets", "Number of hash buckets.")
		col.load = desc("load_factor", "Entries per hash bucket.")
	}
	return col
}

// Describe implements the prometheus.Collector interface.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entries
	ch <- c.capacity
	ch <- c.live
	ch <- c.blocks
	if c.buckets != nil {
		ch <- c.buckets
		ch <- c.load
	}
}

// Collect implements the prometheus.Collector interface.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	if c.locker != nil {
		c.locker.Lock()
	}
	n := c.src.Len()
	st := c.src.PoolStats()
	var (
		buckets int
		load    float64
	)
	h, isHashed := c.src.(hashed)
	if isHashed {
		buckets, load = h.BucketCount(), h.LoadFactor()
	}
	if c.locker != nil {
		c.locker.Unlock()
	}

	gauge := func(d *prometheus.Desc, v float64) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.GaugeValue, v)
	}
	gauge(c.entries, float64(n))
	gauge(c.capacity, float64(st.Capacity))
	gauge(c.live, float64(st.Live))
	gauge(c.blocks, float64(st.Blocks))
	if c.buckets != nil {
		gauge(c.buckets, float64(buckets))
		gauge(c.load, load)
	}
}
