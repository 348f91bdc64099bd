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

import "strings"

// Path extracts the decoded path from an absolute URL string without
// constructing a net/url.URL value.
//
// The scan is single-pass over the raw text:
//   - If no '%' appears before the query marker, the path is returned as a
//     zero-copy slice of the input (the dominant case).
//   - On the first '%', the candidate path is sliced out up to the '?' (if
//     any) and run through the best-effort decoder.
//
// Percent escapes of reserved characters such as "%2F" stay encoded so a
// literal slash inside a segment cannot be confused with a delimiter, and
// "%25" runs are protected so a literal percent sign survives the single
// decode pass instead of being decoded away together with its neighbors.
//
// Example:
//
//	Path("http://localhost/a/b?x=1") // "/a/b"
//	Path("http://localhost/a%20b")   // "/a b"
func Path(rawURL string) string {
	start := pathStart(rawURL)
	if start == -1 {
		return ""
	}

	for i := start; i < len(rawURL); i++ {
		switch rawURL[i] {
		case '%':
			// Percent encoding present: locate the query marker directly
			// and decode the sliced-out path.
			end := strings.IndexByte(rawURL[i:], '?')

			var path string
			if end == -1 {
				path = rawURL[start:]
			} else {
				path = rawURL[start : i+end]
			}

			// Protect literal percent signs ("%25") so the single decode
			// pass leaves them represented rather than folding them into
			// adjacent characters.
			if strings.Contains(path, "%25") {
				path = strings.ReplaceAll(path, "%25", "%2525")
			}

			return TryDecode(path, DecodeURI)
		case '?':
			return rawURL[start:i]
		}
	}

	return rawURL[start:]
}

// PathNoStrict is Path for routers that treat trailing slashes as
// insignificant: a result longer than "/" has its trailing slash stripped.
func PathNoStrict(rawURL string) string {
	result := Path(rawURL)
	if len(result) > 1 && result[len(result)-1] == '/' {
		return result[:len(result)-1]
	}

	return result
}

// QueryString returns the query section of the URL including the leading
// '?', or "" when the URL has no query.
func QueryString(rawURL string) string {
	offset := min(8, len(rawURL))
	i := strings.IndexByte(rawURL[offset:], '?')
	if i == -1 {
		return ""
	}

	return rawURL[offset+i:]
}

// pathStart returns the index of the first byte of the URL's path, or -1
// when the URL has no path.
//
// For the http family the search offset is fixed: 8 covers "http://" and
// "https://" (the first '/' at or after index 8 is the path), and 13 covers
// "http+unix://" sockets, detected by the ':' at index 9. Other schemes fall
// back to a generic "://" scan.
func pathStart(rawURL string) int {
	if strings.HasPrefix(rawURL, "http") {
		offset := 8
		if len(rawURL) > 9 && rawURL[9] == ':' {
			offset = 13
		}

		if offset < len(rawURL) {
			if i := strings.IndexByte(rawURL[offset:], '/'); i != -1 {
				return offset + i
			}
		}

		return -1
	}

	// Generic scheme scan for non-http URLs.
	authority := strings.Index(rawURL, "://")
	if authority == -1 {
		return -1
	}

	if i := strings.IndexByte(rawURL[authority+3:], '/'); i != -1 {
		return authority + 3 + i
	}

	return -1
}
