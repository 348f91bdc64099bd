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
	"strconv"
	"strings"
)

// bracedGroup matches a single brace-delimited regex constraint inside a
// route template, e.g. the "{[0-9]+}" in "/users/:id{[0-9]+}".
// Nested braces are not supported.
var bracedGroup = regexp.MustCompile(`\{[^}]+\}`)

// group records one extracted brace constraint and the marker that
// temporarily replaces it while the template is split on '/'.
type group struct {
	mark    string // marker token, e.g. "@10"
	content string // original brace span, e.g. "{[0-9]+/[0-9]+}"
}

// SplitPath splits a request path into its '/'-delimited segments.
// A leading empty segment (from the leading slash) is dropped; a trailing
// empty segment (from a trailing slash) is preserved so callers can decide
// whether trailing slashes are significant.
//
// Example:
//
//	SplitPath("/users/123")  // ["users", "123"]
//	SplitPath("/users/")     // ["users", ""]
func SplitPath(path string) []string {
	paths := strings.Split(path, "/")
	if paths[0] == "" {
		paths = paths[1:]
	}

	return paths
}

// SplitRoutingPath splits a route template into segments the same way
// SplitPath does, but is aware of brace-delimited regex constraints.
// A constraint such as ":date{\d+/\d+}" may contain '/', which must not be
// treated as a segment delimiter.
//
// The template is split in three steps:
//  1. Replace every brace span with a unique marker, recording the
//     marker -> span mapping in appearance order.
//  2. Split the marker-substituted string on '/'.
//  3. Splice the original spans back over their markers.
//
// Example:
//
//	SplitRoutingPath("/posts/:date{[0-9]+/[0-9]+}/:title")
//	// ["posts", ":date{[0-9]+/[0-9]+}", ":title"]
func SplitRoutingPath(routePath string) []string {
	substituted, groups := extractGroups(routePath)

	return replaceGroupMarks(SplitPath(substituted), groups)
}

// extractGroups replaces every brace span in path with a marker token and
// returns the substituted path together with the recorded groups.
// The marker embeds the span's byte offset in the original template, which
// keeps markers unique within one template.
func extractGroups(path string) (string, []group) {
	locs := bracedGroup.FindAllStringIndex(path, -1)
	if locs == nil {
		return path, nil
	}

	groups := make([]group, 0, len(locs))

	var sb strings.Builder
	sb.Grow(len(path))

	last := 0
	for _, loc := range locs {
		mark := "@" + strconv.Itoa(loc[0])
		groups = append(groups, group{mark: mark, content: path[loc[0]:loc[1]]})
		sb.WriteString(path[last:loc[0]])
		sb.WriteString(mark)
		last = loc[1]
	}
	sb.WriteString(path[last:])

	return sb.String(), groups
}

// replaceGroupMarks restores the original brace spans over their markers.
//
// Restitution runs in reverse: the last-recorded marker is matched to the
// last segment that contains it. Markers are offset-based strings, so an
// earlier marker ("@1") is a textual prefix of a later one ("@10");
// reverse-order processing pairs each marker with the correct segment even
// when markers collide textually.
func replaceGroupMarks(paths []string, groups []group) []string {
	for i := len(groups) - 1; i >= 0; i-- {
		mark := groups[i].mark
		for j := len(paths) - 1; j >= 0; j-- {
			if strings.Contains(paths[j], mark) {
				paths[j] = strings.Replace(paths[j], mark, groups[i].content, 1)

				break
			}
		}
	}

	return paths
}
