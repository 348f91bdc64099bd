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

// Package pattern compiles route-template segments into reusable matchers.
//
// A route template authored as "/users/:id{[0-9]+}/posts/*" decomposes into
// segments (see the parent urlpath package); each segment that follows the
// parameter grammar compiles into a Pattern:
//
//	cache := pattern.New()
//
//	cache.Get(":id", "")          // unconstrained capture named "id"
//	cache.Get(":id{[0-9]+}", "")  // capture constrained to digits
//	cache.Get("*", "")            // the Wildcard sentinel
//	cache.Get("users", "")        // nil: plain literal text
//
// # Memoization
//
// Compiling a constraint costs a regexp.Compile, so the Cache memoizes by
// (label, next-segment) pair. Entries are write-once and never evicted: the
// number of distinct patterns equals the number of distinct route
// templates, which is static per deployment. The cache is an explicit
// object owned by whoever builds route tables — typically one per router —
// rather than package-level state, so independent routers never share or
// contend on compilation results.
//
// # Next-Segment Hints
//
// When a constrained parameter is followed by a fixed literal segment, the
// router may need the constraint to match a prefix of the incoming segment
// while peeking at that literal for disambiguation. Get accepts the
// following segment as a hint and folds it into both the compiled regex
// and the cache key, so ":v{[0-9.]+}" before "download" and the same label
// before "stream" produce two distinct, independently cached patterns.
//
// # Observability
//
// The cache optionally records hit/miss counters and a size gauge through
// OpenTelemetry (WithMetrics, WithMeterProvider), and surfaces operational
// events such as invalid constraint regexes through an EventHandler
// (WithLogger, WithEventHandler). Compilation never panics and never
// returns an error: a label that fails the grammar or carries an invalid
// constraint is literal text.
package pattern
