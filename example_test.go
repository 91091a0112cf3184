// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package urifmt_test

import (
	"fmt"

	"github.com/opentofu/urifmt"
)

func ExampleURI() {
	group, filter, sort := "admin/manager", "active&inactive", "name=asc"
	u, err := urifmt.URI(
		[]string{"/users/", "?filter=", "&sort=", ""},
		group, filter, sort,
	)
	if err != nil {
		panic(err)
	}
	fmt.Println(u)
	// Output: /users/admin%2Fmanager?filter=active%26inactive&sort=name%3Dasc
}

func ExampleRaw() {
	base := urifmt.Raw("/api/v1")
	query := urifmt.Raw("filter=active&sort=name")
	fmt.Println(urifmt.MustURI([]string{"", "/users?", ""}, base, query))
	// Output: /api/v1/users?filter=active&sort=name
}

func ExampleBuilder() {
	var b urifmt.Builder
	u, err := b.Append("https://").
		AppendHost("bücher.example").
		Append("/search?q=").
		AppendEncoded("go & rust").
		Build()
	if err != nil {
		panic(err)
	}
	fmt.Println(u)
	// Output: https://xn--bcher-kva.example/search?q=go%20%26%20rust
}

func ExampleTemplate_Expand() {
	tmpl := urifmt.MustParse("{base}/users/{user}/posts?page={page}")
	u, err := tmpl.Expand(map[string]any{
		"base": urifmt.Raw("https://api.example.com/v1"),
		"user": "john doe",
		"page": 2,
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(u)
	// Output: https://api.example.com/v1/users/john%20doe/posts?page=2
}

func ExampleEscapeComponent() {
	fmt.Println(urifmt.EscapeComponent("it's (not) a/b"))
	// Output: it's%20(not)%20a%2Fb
}
