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
	"errors"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned by DecodeURI and DecodeURIComponent when the
// percent-decoded output is not valid UTF-8 (e.g. "%C3" without a
// continuation byte, or a lone "%80").
var ErrInvalidUTF8 = errors.New("urlpath: escape sequences decode to invalid UTF-8")

// DecodeFunc is a percent-decoding function. It reports an error for
// malformed escapes (a '%' not followed by two hex digits) and for escape
// runs that decode to invalid UTF-8. Use TryDecode to apply a DecodeFunc
// with best-effort degradation instead of failure.
type DecodeFunc func(string) (string, error)

// escapeRun matches a maximal run of valid percent escapes, e.g. "%C3%A9".
// TryDecode's fallback decodes each run individually so that one malformed
// escape cannot poison the rest of the string.
var escapeRun = regexp.MustCompile(`(?:%[0-9A-Fa-f]{2})+`)

// TryDecode decodes s with dec, degrading gracefully on failure: if the
// whole string does not decode, each maximal percent-escape run is decoded
// individually, and runs that still fail are left exactly as they appear.
// TryDecode never fails; for any input it returns some deterministic string.
//
// The direct call is the dominant case for well-formed input, so the
// fallback's regex scan only runs on malformed strings.
//
// Example:
//
//	TryDecode("100%20done", DecodeURIComponent) // "100 done"
//	TryDecode("100% done", DecodeURIComponent)  // "100% done" (unchanged)
//	TryDecode("a%zz%20b", DecodeURIComponent)   // "a%zz b"
func TryDecode(s string, dec DecodeFunc) string {
	if out, err := dec(s); err == nil {
		return out
	}

	return escapeRun.ReplaceAllStringFunc(s, func(match string) string {
		if out, err := dec(match); err == nil {
			return out
		}

		return match
	})
}

// TryDecodeURI decodes s with DecodeURI, best-effort.
func TryDecodeURI(s string) string {
	return TryDecode(s, DecodeURI)
}

// TryDecodeURIComponent decodes s with DecodeURIComponent, best-effort.
func TryDecodeURIComponent(s string) string {
	return TryDecode(s, DecodeURIComponent)
}

// DecodeURIComponent percent-decodes every escape sequence in s.
// It does not treat '+' specially; query-string '+'-to-space translation
// happens before decoding (see the query extractor).
func DecodeURIComponent(s string) (string, error) {
	return decodePercent(s, false)
}

// DecodeURI percent-decodes s but leaves escapes of the RFC 3986 reserved
// characters (";", "/", "?", ":", "@", "&", "=", "+", "$", ",", "#")
// encoded. This matters for paths: "%2F" inside a segment is a literal
// slash in the segment's data and must not become a segment delimiter.
func DecodeURI(s string) (string, error) {
	return decodePercent(s, true)
}

// decodePercent is the single scanning pass behind DecodeURI and
// DecodeURIComponent. When keepReserved is true, escapes that decode to a
// reserved character are copied through untouched.
func decodePercent(s string, keepReserved bool) (string, error) {
	if !strings.Contains(s, "%") {
		return s, nil
	}

	var sb strings.Builder
	sb.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '%' {
			sb.WriteByte(c)

			continue
		}

		// A '%' must be followed by exactly two hex digits.
		if i+2 >= len(s) || unhex(s[i+1]) < 0 || unhex(s[i+2]) < 0 {
			if i+3 > len(s) {
				return "", url.EscapeError(s[i:])
			}

			return "", url.EscapeError(s[i : i+3])
		}

		decoded := byte(unhex(s[i+1])<<4 | unhex(s[i+2]))
		if keepReserved && isReserved(decoded) {
			sb.WriteString(s[i : i+3])
		} else {
			sb.WriteByte(decoded)
		}
		i += 2
	}

	out := sb.String()
	if !utf8.ValidString(out) {
		return "", ErrInvalidUTF8
	}

	return out, nil
}

// isReserved reports whether b is an RFC 3986 reserved character (plus '#')
// whose escape DecodeURI must preserve.
func isReserved(b byte) bool {
	switch b {
	case ';', '/', '?', ':', '@', '&', '=', '+', '$', ',', '#':
		return true
	}

	return false
}

// unhex returns the value of a hex digit, or -1 for a non-hex byte.
func unhex(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return int(c - 'A' + 10)
	default:
		return -1
	}
}
