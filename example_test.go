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

package urlpath_test

import (
	"fmt"

	"rivaas.dev/urlpath"
)

func ExamplePath() {
	fmt.Println(urlpath.Path("http://localhost/about?ref=home"))
	fmt.Println(urlpath.Path("http://localhost/caf%C3%A9"))
	// Output:
	// /about
	// /café
}

func ExamplePathNoStrict() {
	fmt.Println(urlpath.PathNoStrict("http://localhost/about/"))
	// Output: /about
}

func ExampleQueryParam() {
	value, ok := urlpath.QueryParam("http://localhost/search?q=go&page=2", "page")
	fmt.Println(value, ok)

	value, ok = urlpath.QueryParam("http://localhost/search?q=go", "page")
	fmt.Printf("%q %v\n", value, ok)
	// Output:
	// 2 true
	// "" false
}

func ExampleQueryParams() {
	fmt.Println(urlpath.QueryParams("http://localhost/?tag=go&tag=web", "tag"))
	// Output: [go web]
}

func ExampleSplitRoutingPath() {
	fmt.Println(urlpath.SplitRoutingPath("/posts/:date{[0-9]+/[0-9]+}/:title"))
	// Output: [posts :date{[0-9]+/[0-9]+} :title]
}

func ExampleMergePath() {
	fmt.Println(urlpath.MergePath("/api", "/v1", "users"))
	// Output: /api/v1/users
}

func ExampleCheckOptionalParameter() {
	fmt.Println(urlpath.CheckOptionalParameter("/api/animals/:type?"))
	// Output: [/api/animals /api/animals/:type]
}

func ExampleTryDecodeURIComponent() {
	// Malformed escapes degrade to their literal text instead of failing.
	fmt.Println(urlpath.TryDecodeURIComponent("100%25%20done"))
	fmt.Println(urlpath.TryDecodeURIComponent("100% done"))
	// Output:
	// 100% done
	// 100% done
}
