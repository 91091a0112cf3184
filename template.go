// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package urifmt

import (
	"fmt"
	"slices"

	"github.com/opentofu/urifmt/internal/uritemplates"
)

// Template is a parsed URI pattern whose placeholders are filled in by
// [Template.Execute] or [Template.Expand].
//
// A Template is immutable once parsed and is safe for concurrent use by
// multiple goroutines.
type Template struct {
	pattern   string
	fragments []string
	names     []string

	allowMissing bool
}

// TemplateError is returned by [Parse] when a pattern is not valid.
type TemplateError struct {
	Pattern string
	Err     error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("invalid URI template %q: %s", e.Pattern, e.Err)
}

// Unwrap returns the underlying syntax error.
func (e *TemplateError) Unwrap() error {
	return e.Err
}

// MissingValueError is returned by [Template.Expand] when no value is given
// for one of the template's placeholders.
type MissingValueError struct {
	Name string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("no value for %q", e.Name)
}

// Parse parses pattern as a URI template.
//
// A pattern is literal text containing placeholders of the form {name},
// which is the Level 1 expression syntax of RFC 6570. A name consists of
// letters, digits, underscores and percent-encoded octets, optionally
// separated by single dots. The operators and modifiers of the higher RFC
// levels are not supported, and a "{" or "}" that is not part of a
// placeholder is an error.
//
// Values are substituted using the same rules as [URI], not the RFC's
// expansion rules: the characters !*'() are left unescaped, and a [RawValue]
// is inserted without any escaping.
func Parse(pattern string, opts ...TemplateOption) (*Template, error) {
	parsed, err := uritemplates.Parse(pattern)
	if err != nil {
		return nil, &TemplateError{Pattern: pattern, Err: err}
	}
	ret := &Template{
		pattern:   pattern,
		fragments: parsed.Literals,
		names:     parsed.Names,
	}
	for _, opt := range opts {
		opt.applyOption(ret)
	}
	return ret, nil
}

// MustParse is like [Parse] but panics if pattern is not valid. It is
// intended for package-level variables holding constant patterns.
func MustParse(pattern string, opts ...TemplateOption) *Template {
	t, err := Parse(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Names returns the placeholder names in the order they appear in the
// pattern. A name that appears more than once is repeated.
func (t *Template) Names() []string {
	return slices.Clone(t.names)
}

// String returns the pattern the template was parsed from.
func (t *Template) String() string {
	return t.pattern
}

// Execute fills the placeholders in order with the given values. There must
// be exactly one value per placeholder, counting repeats, otherwise Execute
// returns a [*MismatchError].
func (t *Template) Execute(values ...any) (string, error) {
	return URI(t.fragments, values...)
}

// Expand fills each placeholder with the value of the same name in vars.
//
// A placeholder with no entry in vars causes a [*MissingValueError], unless
// the template was parsed with [AllowMissing], in which case it expands to
// the empty string. Entries in vars that the template does not use are
// ignored.
func (t *Template) Expand(vars map[string]any) (string, error) {
	values := make([]any, len(t.names))
	for i, name := range t.names {
		v, ok := vars[name]
		if !ok && !t.allowMissing {
			return "", &MissingValueError{Name: name}
		}
		values[i] = v
	}
	s, err := URI(t.fragments, values...)
	if err != nil {
		if verr, ok := err.(*ValueError); ok {
			verr.Name = t.names[verr.Index]
		}
		return "", err
	}
	return s, nil
}
