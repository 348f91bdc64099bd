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

package urlpath

import (
	"regexp"
	"strings"
)

// optionalParam matches a route template whose last segment is an optional
// named parameter, e.g. "/api/animals/:type?".
var optionalParam = regexp.MustCompile(`:.+\?$`)

// MergePath folds path fragments into one path with exactly one '/' at each
// join point, regardless of whether either side already carries a leading
// or trailing slash.
//
// A fragment equal to exactly "/" contributes no segment but preserves a
// trailing slash from the preceding fragment, so nested routing scopes can
// keep a trailing-slash signal from the caller.
//
// Example:
//
//	MergePath("/api", "users")   // "/api/users"
//	MergePath("/api/", "/users") // "/api/users"
//	MergePath("/api/", "/")      // "/api/"
func MergePath(paths ...string) string {
	merged := ""
	endsWithSlash := false

	for _, path := range paths {
		if strings.HasSuffix(merged, "/") {
			merged = merged[:len(merged)-1]
			endsWithSlash = true
		}

		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}

		switch {
		case path == "/" && endsWithSlash:
			merged += "/"
		case path != "/":
			merged += path
		}

		if path == "/" && merged == "" {
			merged = "/"
		}
	}

	return merged
}

// CheckOptionalParameter expands a route template ending in an optional
// parameter into the concrete templates a router must register to emulate
// optionality: the base path without the optional segment and the path with
// it, de-duplicated, in registration order.
//
// It returns nil for templates without a trailing optional parameter.
//
// Example:
//
//	CheckOptionalParameter("/api/animals/:type?")
//	// ["/api/animals", "/api/animals/:type"]
//	CheckOptionalParameter("/api/animals") // nil
func CheckOptionalParameter(path string) []string {
	if !optionalParam.MatchString(path) {
		return nil
	}

	var results []string
	basePath := ""

	for _, segment := range strings.Split(path, "/") {
		switch {
		case strings.Contains(segment, ":"):
			if strings.Contains(segment, "?") {
				if len(results) == 0 && basePath == "" {
					results = append(results, "/")
				} else {
					results = append(results, basePath)
				}

				basePath += "/" + strings.Replace(segment, "?", "", 1)
				results = append(results, basePath)
			} else {
				basePath += "/" + segment
			}
		case segment != "":
			basePath += "/" + segment
		}
	}

	return dedupe(results)
}

// dedupe removes duplicates in place, keeping first occurrences in order.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := values[:0]

	for _, v := range values {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}

	return out
}
