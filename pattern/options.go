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
	"log/slog"

	"go.opentelemetry.io/otel/metric"
)

// Option defines functional options for Cache configuration.
type Option func(*Cache)

// WithMetrics enables hit/miss counters and a size gauge on the global
// OpenTelemetry meter provider. Metrics are off by default so the cache
// adds zero overhead on the routing hot path unless asked to measure.
func WithMetrics() Option {
	return func(c *Cache) {
		c.metricsEnabled = true
	}
}

// WithMeterProvider enables metrics on a custom OpenTelemetry
// [metric.MeterProvider] instead of the global one.
//
// This is useful when:
//   - You want to manage the meter provider lifecycle yourself
//   - You need multiple independent caches with separate metrics
//   - You want to avoid global state in your application
//
// Example:
//
//	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
//	cache := pattern.New(pattern.WithMeterProvider(mp))
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(c *Cache) {
		c.metricsEnabled = true
		c.meterProvider = provider
	}
}

// WithEventHandler sets the handler for internal operational events.
func WithEventHandler(handler EventHandler) Option {
	return func(c *Cache) {
		if handler != nil {
			c.events = handler
		}
	}
}

// WithLogger routes internal operational events to the given slog.Logger
// via DefaultEventHandler.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		c.events = DefaultEventHandler(logger)
	}
}
