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

// The query extractor scans the raw URL text directly instead of parsing it
// into url.Values. Fetching one known, unencoded key is by far the most
// common lookup, so it gets a substring-search fast path; everything else
// goes through one general scanning routine shared by the single-value,
// multi-value, and full-map entry points.

import "strings"

// QueryParam returns the value of the query parameter key in rawURL.
// The second result distinguishes "key not present" (false) from "key
// present with an empty value" (true, "").
//
// If the same key appears multiple times, the first occurrence wins.
//
// Example:
//
//	QueryParam("http://h/?a=1&a=2", "a") // "1", true
//	QueryParam("http://h/?a", "a")       // "", true
//	QueryParam("http://h/?a=1", "b")     // "", false
func QueryParam(rawURL, key string) (string, bool) {
	if key == "" {
		// Pairs with an empty name are skipped by the scanner, so an empty
		// key can never be present.
		return "", false
	}

	if !strings.ContainsAny(key, "%+") {
		if value, ok, conclusive := fastQueryParam(rawURL, key); conclusive {
			return value, ok
		}
	}

	single, _ := scanQuery(rawURL, false)
	value, ok := single[key]

	return value, ok
}

// QueryParams returns every value of the query parameter key in
// URL-appearance order, including duplicate empty-string entries.
// It returns nil when the key is absent.
func QueryParams(rawURL, key string) []string {
	_, multi := scanQuery(rawURL, true)

	return multi[key]
}

// AllQueryParams returns all query parameters as a map. For repeated keys
// the first occurrence wins. Pairs with an empty key are skipped.
func AllQueryParams(rawURL string) map[string]string {
	single, _ := scanQuery(rawURL, false)

	return single
}

// AllQueryParamsMulti returns all query parameters with every value
// preserved in URL-appearance order.
func AllQueryParamsMulti(rawURL string) map[string][]string {
	_, multi := scanQuery(rawURL, true)

	return multi
}

// fastQueryParam looks up an unencoded key by searching for the literal
// substrings "?key" and "&key" directly, validating the byte after the key
// to reject longer keys that share a prefix.
//
// The third result reports whether the answer is conclusive: when the key
// is not found but the URL contains '%' or '+', an encoded occurrence may
// have been missed and the caller must fall back to the general scan.
func fastQueryParam(rawURL, key string) (value string, ok bool, conclusive bool) {
	keyIndex := indexFrom(rawURL, "?"+key, 8)
	if keyIndex == -1 {
		keyIndex = indexFrom(rawURL, "&"+key, 8)
	}

	for keyIndex != -1 {
		trailing := keyIndex + len(key) + 1
		switch {
		case trailing < len(rawURL) && rawURL[trailing] == '=':
			// A value follows, bounded by the next '&' or end of string.
			valueIndex := trailing + 1
			if end := strings.IndexByte(rawURL[valueIndex:], '&'); end != -1 {
				return decodeQueryValue(rawURL[valueIndex : valueIndex+end]), true, true
			}

			return decodeQueryValue(rawURL[valueIndex:]), true, true
		case trailing >= len(rawURL) || rawURL[trailing] == '&':
			// Bare key: present with an empty value.
			return "", true, true
		}

		// Longer key sharing this prefix; keep scanning.
		keyIndex = indexFrom(rawURL, "&"+key, keyIndex+1)
	}

	if !strings.ContainsAny(rawURL, "%+") {
		return "", false, true // definitively absent
	}

	return "", false, false // encoded URL: the general scan must decide
}

// scanQuery is the general routine behind every query entry point. It walks
// the query section pair by pair and fills exactly one of the two maps,
// depending on multiple.
//
// Whether keys and values need decoding is decided once per call from a
// cheap containment check on the whole URL, not per field.
func scanQuery(rawURL string, multiple bool) (map[string]string, map[string][]string) {
	encoded := strings.ContainsAny(rawURL, "%+")

	var single map[string]string
	var multi map[string][]string
	if multiple {
		multi = make(map[string][]string)
	} else {
		single = make(map[string]string)
	}

	keyIndex := indexFrom(rawURL, "?", 8)
	for keyIndex != -1 {
		nextKeyIndex := indexFrom(rawURL, "&", keyIndex+1)

		valueIndex := indexFrom(rawURL, "=", keyIndex)
		if nextKeyIndex != -1 && valueIndex > nextKeyIndex {
			valueIndex = -1 // the '=' belongs to a later pair
		}

		var name string
		switch {
		case valueIndex != -1:
			name = rawURL[keyIndex+1 : valueIndex]
		case nextKeyIndex != -1:
			name = rawURL[keyIndex+1 : nextKeyIndex]
		default:
			name = rawURL[keyIndex+1:]
		}
		if encoded {
			name = decodeQueryValue(name)
		}

		keyIndex = nextKeyIndex

		if name == "" {
			continue
		}

		var value string
		if valueIndex != -1 {
			if nextKeyIndex != -1 {
				value = rawURL[valueIndex+1 : nextKeyIndex]
			} else {
				value = rawURL[valueIndex+1:]
			}
			if encoded {
				value = decodeQueryValue(value)
			}
		}

		if multiple {
			multi[name] = append(multi[name], value)
		} else if _, exists := single[name]; !exists {
			single[name] = value // first occurrence wins
		}
	}

	return single, multi
}

// decodeQueryValue decodes one query key or value: '+' becomes a space per
// the form-encoding convention, then percent escapes are decoded
// best-effort. Strings without '%' or '+' are returned unchanged without
// allocating.
func decodeQueryValue(v string) string {
	if !strings.ContainsAny(v, "%+") {
		return v
	}

	if strings.Contains(v, "+") {
		v = strings.ReplaceAll(v, "+", " ")
	}

	if strings.Contains(v, "%") {
		return TryDecode(v, DecodeURIComponent)
	}

	return v
}

// indexFrom is strings.Index constrained to start at a given offset,
// returning an index into the original string.
func indexFrom(s, substr string, from int) int {
	if from >= len(s) {
		return -1
	}

	i := strings.Index(s[from:], substr)
	if i == -1 {
		return -1
	}

	return from + i
}
