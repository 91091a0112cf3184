// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package urifmt

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/opentofu/urifmt/internal/uritemplates"
)

func TestTemplateExecute(t *testing.T) {
	tmpl := MustParse("{base}/users/{group}?filter={filter}&sort={sort}")

	if diff := cmp.Diff([]string{"base", "group", "filter", "sort"}, tmpl.Names()); diff != "" {
		t.Errorf("wrong names\n%s", diff)
	}

	got, err := tmpl.Execute(Raw("/api/v1"), "admin/manager", "active&inactive", "name=asc")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	want := "/api/v1/users/admin%2Fmanager?filter=active%26inactive&sort=name%3Dasc"
	if got != want {
		t.Errorf("wrong result\ngot:  %s\nwant: %s", got, want)
	}

	_, err = tmpl.Execute("too", "few")
	var merr *MismatchError
	if !errors.As(err, &merr) {
		t.Fatalf("wrong error for too few values: %v", err)
	}
}

func TestTemplateExpand(t *testing.T) {
	tests := map[string]struct {
		pattern string
		opts    []TemplateOption
		vars    map[string]any
		want    string
		err     string
		errName string
	}{
		"all present": {
			pattern: "/users/{group}/{user}",
			vars:    map[string]any{"group": "admin/manager", "user": "john.doe"},
			want:    "/users/admin%2Fmanager/john.doe",
		},
		"raw value": {
			pattern: "{base}/users?{query}",
			vars:    map[string]any{"base": Raw("/api/v1"), "query": Raw("filter=active&sort=name")},
			want:    "/api/v1/users?filter=active&sort=name",
		},
		"repeated name": {
			pattern: "/{x}/{x}",
			vars:    map[string]any{"x": "a b"},
			want:    "/a%20b/a%20b",
		},
		"extra vars ignored": {
			pattern: "/users/{id}",
			vars:    map[string]any{"id": 7, "unused": "x"},
			want:    "/users/7",
		},
		"literal only": {
			pattern: "https://api.example.com/v1/users",
			want:    "https://api.example.com/v1/users",
		},
		"missing": {
			pattern: "/users/{id}?q={q}",
			vars:    map[string]any{"id": 1},
			err:     `no value for "q"`,
		},
		"missing allowed": {
			pattern: "/users/{id}?q={q}",
			opts:    []TemplateOption{AllowMissing()},
			vars:    map[string]any{"id": 1},
			want:    "/users/1?q=",
		},
		"bad host": {
			pattern: "https://{host}/",
			vars:    map[string]any{"host": Host("exa mple.com")},
			err:     `cannot render value "host": invalid host name`,
			errName: "host",
		},
		"nil pointer": {
			pattern: "/users/{id}",
			vars:    map[string]any{"id": (*url.URL)(nil)},
			want:    "/users/",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			tmpl, err := Parse(test.pattern, test.opts...)
			if err != nil {
				t.Fatalf("unexpected parse error: %s", err)
			}
			got, err := tmpl.Expand(test.vars)
			if test.err != "" {
				if err == nil || !strings.Contains(err.Error(), test.err) {
					t.Fatalf("wrong error\ngot:  %v\nwant: %s", err, test.err)
				}
				if test.errName != "" {
					var verr *ValueError
					if !errors.As(err, &verr) {
						t.Fatalf("error is not a *ValueError: %v", err)
					}
					if verr.Name != test.errName {
						t.Errorf("wrong name %q; want %q", verr.Name, test.errName)
					}
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if got != test.want {
				t.Errorf("wrong result\ngot:  %s\nwant: %s", got, test.want)
			}
		})
	}
}

func TestParseError(t *testing.T) {
	_, err := Parse("/users/{+path}")
	var terr *TemplateError
	if !errors.As(err, &terr) {
		t.Fatalf("wrong error: %v", err)
	}
	if terr.Pattern != "/users/{+path}" {
		t.Errorf("wrong pattern in error: %s", terr.Pattern)
	}
	var perr *uritemplates.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("syntax error not wrapped: %v", err)
	}
	if perr.Offset != 8 {
		t.Errorf("wrong offset %d; want 8", perr.Offset)
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("MustParse did not panic")
		}
	}()
	MustParse("/users/{id")
}

func TestTemplateString(t *testing.T) {
	const pattern = "/users/{id}"
	if got := MustParse(pattern).String(); got != pattern {
		t.Errorf("wrong result\ngot:  %s\nwant: %s", got, pattern)
	}
}

func TestTemplateNamesIsCopy(t *testing.T) {
	tmpl := MustParse("/{a}/{b}")
	names := tmpl.Names()
	names[0] = "changed"
	if got := tmpl.Names()[0]; got != "a" {
		t.Errorf("Names exposed internal state: %s", got)
	}
}
