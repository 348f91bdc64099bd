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

package pattern_test

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"rivaas.dev/urlpath"
	"rivaas.dev/urlpath/pattern"
)

func ExampleCache_Get() {
	cache := pattern.New()

	segments := urlpath.SplitRoutingPath("/users/:id{[0-9]+}/posts/*")
	for i, segment := range segments {
		next := ""
		if i+1 < len(segments) {
			next = segments[i+1]
		}

		p := cache.Get(segment, next)
		switch {
		case p == nil:
			fmt.Printf("%s: literal\n", segment)
		case p.IsWildcard():
			fmt.Printf("%s: wildcard\n", segment)
		default:
			fmt.Printf("%s: captures %q, matches 42: %v\n", segment, p.Name(), p.Match("42"))
		}
	}
	// Output:
	// users: literal
	// :id{[0-9]+}: captures "id", matches 42: true
	// posts: literal
	// *: wildcard
}

// ExampleNew_metrics wires the cache's OpenTelemetry instruments to a
// Prometheus scrape endpoint.
func ExampleNew_metrics() {
	exporter, err := prometheus.New()
	if err != nil {
		log.Fatal(err)
	}
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))

	cache := pattern.New(
		pattern.WithMeterProvider(provider),
		pattern.WithLogger(slog.Default()),
	)

	for _, segment := range urlpath.SplitRoutingPath("/api/users/:id{[0-9]+}") {
		cache.Get(segment, "")
	}

	// urlpath.pattern_cache.* metrics appear under /metrics.
	http.Handle("/metrics", promhttp.Handler())
}
