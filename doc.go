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

// Package urlpath decomposes raw request URLs into the pieces an HTTP
// router needs: a decoded path, route-template segments, and query-string
// key/value data.
//
// The package sits on the hot path of every incoming request. Its defining
// constraint is exact string work with minimal allocation and minimal
// scanning passes: functions operate directly on the raw URL text and
// return zero-copy slices whenever no decoding is required.
//
// # Path Extraction
//
// Path and PathNoStrict extract the decoded path from an absolute URL
// string without constructing a net/url.URL value:
//
//	urlpath.Path("http://localhost/a/b?x=1") // "/a/b"
//	urlpath.Path("http://localhost/a%20b")   // "/a b"
//	urlpath.PathNoStrict("http://h/a/b/")    // "/a/b"
//
// # Segmentation
//
// SplitPath splits request paths; SplitRoutingPath splits route templates
// and keeps brace-delimited regex constraints intact even when the
// constraint itself contains '/':
//
//	urlpath.SplitRoutingPath("/posts/:date{[0-9]+/[0-9]+}")
//	// ["posts", ":date{[0-9]+/[0-9]+}"]
//
// Route-template segments compile into matchers in the pattern subpackage.
//
// # Query Extraction
//
// QueryParam, QueryParams, AllQueryParams, and AllQueryParamsMulti scan the
// URL's query section directly. Absence is distinguished from an empty
// value, and for single-value lookups the first occurrence of a repeated
// key wins:
//
//	urlpath.QueryParam("http://h/?a=1&a=2", "a")  // "1", true
//	urlpath.QueryParams("http://h/?a=1&a=2", "a") // ["1", "2"]
//	urlpath.QueryParam("http://h/?a=1", "b")      // "", false
//
// # Best-Effort Decoding
//
// TryDecode never fails: malformed escape sequences are left exactly as
// they appear while the rest of the string decodes normally. Every decoding
// operation in this package is built on it, so any input, however
// malformed, produces a deterministic string rather than an error.
//
// # Route Scopes
//
// MergePath joins nested routing-scope prefixes with exactly one '/' per
// join point, and CheckOptionalParameter expands templates like
// "/api/animals/:type?" into the concrete templates a router registers.
//
// None of the operations perform I/O or block; every function is safe for
// concurrent use.
package urlpath
