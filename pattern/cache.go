// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pattern

import (
	"context"
	"regexp"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// meterScope is the instrumentation scope name for cache metrics.
const meterScope = "rivaas.dev/urlpath/pattern"

// Cache compiles route-template segments into Patterns and memoizes the
// results.
//
// Entries are keyed by "label#next" and are write-once: compiling the same
// (label, next) pair always yields a structurally identical Pattern, so the
// cache is a pure memoization layer with no invalidation. It is intentionally
// unbounded — the entry count equals the number of distinct route templates,
// which is static per deployment.
//
// Thread safety: Get may be called from any number of goroutines
// concurrently. Insert-if-absent semantics come from sync.Map; a rare
// duplicate compilation during a race is discarded in favor of the stored
// entry, so all callers observe one canonical Pattern per key.
type Cache struct {
	patterns sync.Map     // "label#next" -> *Pattern
	size     atomic.Int64 // number of stored entries

	events         EventHandler
	metricsEnabled bool
	meterProvider  metric.MeterProvider
	hits           metric.Int64Counter
	misses         metric.Int64Counter
}

// New creates a pattern cache.
//
// By default the cache records no metrics and discards events. Use
// WithMeterProvider or WithMetrics to enable hit/miss/size instruments, and
// WithLogger or WithEventHandler to receive operational events such as
// constraint-compile warnings.
func New(opts ...Option) *Cache {
	c := &Cache{
		events: func(Event) {}, // no-op
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.metricsEnabled {
		if c.meterProvider == nil {
			c.meterProvider = otel.GetMeterProvider()
		}
		c.initInstruments()
	}

	return c
}

// Get compiles label into a Pattern, memoized under the (label, next) pair.
//
// Label grammar:
//   - "*" returns the Wildcard sentinel.
//   - ":name" returns an unconstrained capture.
//   - ":name{constraint}" returns a capture whose regex constraint must
//     match the whole segment — unless next names the following literal
//     segment (one that does not itself start a parameter or wildcard), in
//     which case the constraint may match a prefix of the segment followed
//     by that literal, and the composite "label#next" becomes the
//     pattern's canonical label.
//
// Any other label is plain literal text and Get returns nil; callers must
// treat nil as "this segment is literal", not as a fault. Pass next == ""
// when there is no following segment.
func (c *Cache) Get(labelText, next string) *Pattern {
	if labelText == "*" {
		return Wildcard
	}

	match := label.FindStringSubmatch(labelText)
	if match == nil {
		return nil
	}

	// The hint is part of the cache key even for unconstrained patterns
	// that never use it; a single keying scheme keeps lookups uniform.
	key := labelText + "#" + next

	if v, ok := c.patterns.Load(key); ok {
		c.recordHit()

		return v.(*Pattern)
	}

	compiled := c.compile(labelText, next, key, match[1], match[2])
	if compiled == nil {
		return nil
	}

	actual, loaded := c.patterns.LoadOrStore(key, compiled)
	if !loaded {
		c.size.Add(1)
	}
	c.recordMiss()

	return actual.(*Pattern)
}

// Size returns the number of memoized patterns.
func (c *Cache) Size() int64 {
	return c.size.Load()
}

// compile builds the Pattern for a label that matched the parameter
// grammar. An invalid constraint regex is reported as a warning event and
// the label is treated as literal text (nil return).
func (c *Cache) compile(labelText, next, key, name, constraint string) *Pattern {
	if constraint == "" {
		return &Pattern{canonical: labelText, name: name}
	}

	// A usable hint is a following literal segment: one that does not
	// itself start a parameter or wildcard. It lets the constraint match a
	// prefix of the segment while peeking at the fixed literal after it.
	if next != "" && next[0] != ':' && next[0] != '*' {
		re, err := regexp.Compile("^(?:" + constraint + ")/(?:" + regexp.QuoteMeta(next) + ")")
		if err != nil {
			c.events(Event{
				Type:    EventWarning,
				Message: "invalid parameter constraint, treating segment as literal",
				Args:    []any{"label", labelText, "error", err.Error()},
			})

			return nil
		}

		return &Pattern{canonical: key, name: name, constraint: re, next: next}
	}

	re, err := regexp.Compile("^(?:" + constraint + ")$")
	if err != nil {
		c.events(Event{
			Type:    EventWarning,
			Message: "invalid parameter constraint, treating segment as literal",
			Args:    []any{"label", labelText, "error", err.Error()},
		})

		return nil
	}

	return &Pattern{canonical: labelText, name: name, constraint: re}
}

// initInstruments creates the cache's metric instruments. Failures are
// reported as events and leave the affected instrument disabled; they never
// panic or fail construction.
func (c *Cache) initInstruments() {
	meter := c.meterProvider.Meter(meterScope)

	var err error

	c.hits, err = meter.Int64Counter("urlpath.pattern_cache.hits",
		metric.WithDescription("Number of pattern compilations served from the cache"),
	)
	if err != nil {
		c.hits = nil
		c.events(Event{Type: EventError, Message: "failed to create hits counter", Args: []any{"error", err.Error()}})
	}

	c.misses, err = meter.Int64Counter("urlpath.pattern_cache.misses",
		metric.WithDescription("Number of pattern compilations that missed the cache"),
	)
	if err != nil {
		c.misses = nil
		c.events(Event{Type: EventError, Message: "failed to create misses counter", Args: []any{"error", err.Error()}})
	}

	_, err = meter.Int64ObservableGauge("urlpath.pattern_cache.size",
		metric.WithDescription("Number of memoized patterns"),
		metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
			o.Observe(c.size.Load())

			return nil
		}),
	)
	if err != nil {
		c.events(Event{Type: EventError, Message: "failed to create size gauge", Args: []any{"error", err.Error()}})
	}
}

func (c *Cache) recordHit() {
	if c.hits != nil {
		c.hits.Add(context.Background(), 1)
	}
}

func (c *Cache) recordMiss() {
	if c.misses != nil {
		c.misses.Add(context.Background(), 1)
	}
}
