// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package urifmt

import (
	"errors"
	"testing"
)

func TestBuilder(t *testing.T) {
	var b Builder
	got, err := b.
		AppendRaw("/api/v1").
		Append("/users/").
		AppendEncoded("admin/manager").
		Append("?filter=").
		AppendEncoded("active&inactive").
		Append("&sort=").
		AppendEncoded(Raw("name")).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	want := "/api/v1/users/admin%2Fmanager?filter=active%26inactive&sort=name"
	if got != want {
		t.Errorf("wrong result\ngot:  %s\nwant: %s", got, want)
	}
}

func TestBuilderMatchesURI(t *testing.T) {
	fragments := []string{"https://", "/users/", "?q=", ""}
	values := []any{Host("bücher.example"), "a b", 12}

	var b Builder
	for i, f := range fragments {
		b.Append(f)
		if i < len(values) {
			b.AppendEncoded(values[i])
		}
	}
	got, err := b.Build()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	want := MustURI(fragments, values...)
	if got != want {
		t.Errorf("Builder disagrees with URI\nBuilder: %s\nURI:     %s", got, want)
	}
}

func TestBuilderError(t *testing.T) {
	var b Builder
	b.Append("https://").
		AppendEncoded("fine").
		AppendHost("exa mple.com").
		Append("/more").
		AppendEncoded("ignored")

	_, err := b.Build()
	var verr *ValueError
	if !errors.As(err, &verr) {
		t.Fatalf("wrong error: %v", err)
	}
	if verr.Index != 1 {
		t.Errorf("wrong index %d; want 1", verr.Index)
	}

	b.Reset()
	if b.Len() != 0 {
		t.Errorf("builder not empty after Reset: %d bytes", b.Len())
	}
	got, err := b.Append("/ok").Build()
	if err != nil {
		t.Fatalf("error survived Reset: %s", err)
	}
	if got != "/ok" {
		t.Errorf("wrong result after Reset: %s", got)
	}
}

func TestBuilderEmpty(t *testing.T) {
	var b Builder
	got, err := b.Build()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got != "" {
		t.Errorf("wrong result %q; want empty", got)
	}
}
