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

import "regexp"

// label matches the parameter grammar ":name" or ":name{constraint}".
// The name may be any run of characters except braces.
var label = regexp.MustCompile(`^:([^{}]+)(?:\{(.+)\})?$`)

// Wildcard is the sentinel Pattern for the "*" segment. It matches exactly
// one segment, unconditionally, and captures nothing.
var Wildcard = &Pattern{canonical: "*"}

// Pattern is a compiled matcher for one route-template segment.
//
// Patterns are immutable once compiled and safe to share between
// goroutines. They are produced by (*Cache).Get, which memoizes
// compilation; two Get calls with the same label and next-segment hint
// return the identical *Pattern.
type Pattern struct {
	canonical  string         // cache-key text; original label when unhinted
	name       string         // capture identifier, e.g. "id"
	constraint *regexp.Regexp // nil means unconstrained
	next       string         // following literal the constraint peeks at
}

// Label returns the pattern's canonical token text. For patterns compiled
// with a next-segment hint this is the composite "label#next" cache key,
// so two different hints yield two distinct, independently cached patterns.
func (p *Pattern) Label() string {
	return p.canonical
}

// Name returns the capture identifier, e.g. "id" for ":id". It is empty
// for the wildcard.
func (p *Pattern) Name() string {
	return p.name
}

// Constraint returns the compiled constraint regex, or nil when the
// pattern matches any non-empty segment.
func (p *Pattern) Constraint() *regexp.Regexp {
	return p.constraint
}

// IsWildcard reports whether p is the wildcard sentinel.
func (p *Pattern) IsWildcard() bool {
	return p == Wildcard
}

// Match reports whether segment satisfies the pattern.
//
// The wildcard matches any segment; an unconstrained capture matches any
// non-empty segment. For a pattern compiled with a next-segment hint, the
// segment is joined with the recorded following literal before matching,
// which reproduces the peek-at-next-literal disambiguation without
// lookahead support in the regexp engine.
func (p *Pattern) Match(segment string) bool {
	if p == Wildcard {
		return true
	}

	if p.constraint == nil {
		return segment != ""
	}

	if p.next != "" {
		return p.constraint.MatchString(segment + "/" + p.next)
	}

	return p.constraint.MatchString(segment)
}
