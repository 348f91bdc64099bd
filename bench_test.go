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
	"net/url"
	"testing"
)

func BenchmarkPath(b *testing.B) {
	b.Run("plain", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = Path("http://localhost/users/123/posts?sort=asc")
		}
	})

	b.Run("encoded", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = Path("http://localhost/users/a%20b/posts?sort=asc")
		}
	})

	b.Run("net-url-baseline", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			u, err := url.Parse("http://localhost/users/123/posts?sort=asc")
			if err != nil {
				b.Fatal(err)
			}
			_ = u.Path
		}
	})
}

func BenchmarkQueryParam(b *testing.B) {
	const rawURL = "http://localhost/search?q=golang&page=2&sort=asc&lang=en"

	b.Run("fast-path", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = QueryParam(rawURL, "page")
		}
	})

	b.Run("general-scan", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = QueryParam("http://localhost/search?q=a%20b&page=2", "page")
		}
	})

	b.Run("net-url-baseline", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			u, err := url.Parse(rawURL)
			if err != nil {
				b.Fatal(err)
			}
			_ = u.Query().Get("page")
		}
	})
}

func BenchmarkSplitRoutingPath(b *testing.B) {
	b.Run("plain", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = SplitRoutingPath("/users/:id/posts/:post_id")
		}
	})

	b.Run("constraint-with-slash", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = SplitRoutingPath("/posts/:date{[0-9]+/[0-9]+}/:title")
		}
	})
}

func BenchmarkTryDecode(b *testing.B) {
	b.Run("clean", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = TryDecode("a%20b%20c", DecodeURIComponent)
		}
	})

	b.Run("degraded", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = TryDecode("a%zz%20b", DecodeURIComponent)
		}
	})
}
