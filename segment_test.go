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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// SegmenterTestSuite tests path and route-template splitting.
type SegmenterTestSuite struct {
	suite.Suite
}

func (suite *SegmenterTestSuite) TestSplitPath() {
	tests := []struct {
		name     string
		path     string
		expected []string
	}{
		{"root", "/", []string{""}},
		{"single segment", "/hello", []string{"hello"}},
		{"multiple segments", "/users/123/posts", []string{"users", "123", "posts"}},
		{"trailing slash preserved", "/users/", []string{"users", ""}},
		{"no leading slash", "users/123", []string{"users", "123"}},
		{"bare wildcard", "*", []string{"*"}},
		{"wildcard between literals", "/wild/*/card", []string{"wild", "*", "card"}},
		{"empty inner segment", "/a//b", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.Equal(tt.expected, SplitPath(tt.path))
		})
	}
}

func (suite *SegmenterTestSuite) TestSplitRoutingPath() {
	tests := []struct {
		name     string
		template string
		expected []string
	}{
		{"plain literal", "/users/123", []string{"users", "123"}},
		{"parameter without constraint", "/users/:id", []string{"users", ":id"}},
		{"constraint without slash", "/users/:id{[0-9]+}", []string{"users", ":id{[0-9]+}"}},
		{
			"constraint containing slash",
			"/a/:id{x/y}/b",
			[]string{"a", ":id{x/y}", "b"},
		},
		{
			"date-style constraint",
			"/posts/:date{[0-9]+/[0-9]+}/:title",
			[]string{"posts", ":date{[0-9]+/[0-9]+}", ":title"},
		},
		{
			"multiple constraints with slashes",
			"/:a{[0-9]+/[0-9]+}/:b{b/c}",
			[]string{":a{[0-9]+/[0-9]+}", ":b{b/c}"},
		},
		{"wildcard segment", "/static/*", []string{"static", "*"}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.Equal(tt.expected, SplitRoutingPath(tt.template))
		})
	}
}

// TestSplitRoutingPathMatchesSplitPath verifies that for templates without
// brace constraints the two splitters agree exactly.
func (suite *SegmenterTestSuite) TestSplitRoutingPathMatchesSplitPath() {
	templates := []string{
		"/",
		"/users",
		"/users/:id",
		"/users/:id/posts/:post_id",
		"/static/*",
		"/a//b/",
		"no-leading-slash/x",
	}

	for _, template := range templates {
		suite.Run(template, func() {
			suite.Equal(SplitPath(template), SplitRoutingPath(template))
		})
	}
}

func TestSegmenterTestSuite(t *testing.T) {
	suite.Run(t, new(SegmenterTestSuite))
}

// TestExtractGroups exercises the marker substitution directly: markers
// embed byte offsets and must restore in reverse order.
func TestExtractGroups(t *testing.T) {
	substituted, groups := extractGroups("/a/:id{x/y}/b")

	assert.Equal(t, "/a/:id@6/b", substituted)
	if assert.Len(t, groups, 1) {
		assert.Equal(t, "@6", groups[0].mark)
		assert.Equal(t, "{x/y}", groups[0].content)
	}

	// No braces: input passes through untouched, no groups recorded.
	substituted, groups = extractGroups("/a/b/c")
	assert.Equal(t, "/a/b/c", substituted)
	assert.Nil(t, groups)
}
