// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

// Package urifmt builds percent-encoded URI strings from literal text
// interleaved with dynamic values.
//
// Literal text is copied to the result as it is. Each interpolated value is
// converted to a string and escaped with the URI component rules of
// [EscapeComponent], so that a value such as "admin/manager" or
// "active&inactive" can be placed in a path segment or a query parameter
// without changing the structure of the URI around it. A value wrapped with
// [Raw] skips the escaping and is copied verbatim, which is how a caller
// inserts a base URL or a query string that has already been assembled.
//
// There are three equivalent ways to describe the alternation of literal text
// and values:
//
//   - [URI] takes the literal fragments and the values as two sequences, the
//     fragments always having one more element than the values.
//   - [Builder] appends literals, encoded values and raw values one at a time.
//   - [Template] parses a pattern such as "/users/{group}?filter={filter}"
//     once and then fills in its placeholders by position or by name.
//
// The package never parses, validates or normalizes the resulting URI. It
// does not know which part of a URI a value ends up in.
package urifmt

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is wrapped by errors reporting that a renderer was
	// called with inputs that do not satisfy its contract.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownValue is returned when a cty value passed for interpolation
	// is not wholly known, and so has no string form yet.
	ErrUnknownValue = errors.New("value is not yet known")

	// ErrMarkedValue is returned when a cty value passed for interpolation
	// carries marks, such as the "sensitive" mark. Remove the marks
	// explicitly if the value really may appear in a URI.
	ErrMarkedValue = errors.New("value has marks, such as sensitive, and cannot be rendered")
)

// MismatchError is returned when the number of literal fragments is not
// exactly one more than the number of values to interpolate between them.
type MismatchError struct {
	Fragments int
	Values    int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%d fragments cannot surround %d values; need %d", e.Fragments, e.Values, e.Values+1)
}

// Unwrap returns [ErrInvalidArgument].
func (e *MismatchError) Unwrap() error {
	return ErrInvalidArgument
}

// ValueError reports that one of the interpolated values could not be
// rendered.
type ValueError struct {
	// Index is the position of the value among the interpolated values.
	Index int

	// Name is the placeholder name when the value was given to
	// [Template.Expand], and empty otherwise.
	Name string

	Err error
}

func (e *ValueError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("cannot render value %q: %s", e.Name, e.Err)
	}
	return fmt.Sprintf("cannot render value %d: %s", e.Index, e.Err)
}

// Unwrap returns the underlying problem.
func (e *ValueError) Unwrap() error {
	return e.Err
}

// URI concatenates fragments with the rendered form of values between them:
// fragments[0], values[0], fragments[1], values[1], and so on, ending with
// the last fragment.
//
// A value of type [RawValue] is inserted verbatim and a [HostValue] is
// inserted in its ASCII form. Any other value is converted to its natural
// string form and escaped with [EscapeComponent]. A nil value, including a
// nil pointer, renders as the empty string. A cty value that is not wholly
// known or that carries marks cannot be rendered.
//
// len(fragments) must be len(values)+1, otherwise URI returns a
// [*MismatchError]. The only other failures come from values that cannot be
// rendered at all, which are reported as a [*ValueError].
func URI(fragments []string, values ...any) (string, error) {
	if len(fragments) != len(values)+1 {
		return "", &MismatchError{Fragments: len(fragments), Values: len(values)}
	}

	size := 0
	for _, f := range fragments {
		size += len(f)
	}
	buf := make([]byte, 0, size+16*len(values))

	var err error
	for i, f := range fragments {
		buf = append(buf, f...)
		if i == len(values) {
			break
		}
		buf, err = appendValue(buf, values[i])
		if err != nil {
			return "", &ValueError{Index: i, Err: err}
		}
	}
	return string(buf), nil
}

// URLify is the previous name of [URI] and behaves identically.
//
// Deprecated: Use [URI] instead.
func URLify(fragments []string, values ...any) (string, error) {
	return URI(fragments, values...)
}

// MustURI is like [URI] but panics if the fragments and values cannot be
// rendered. It is intended for call sites whose fragments are constant and
// whose values cannot fail to render, such as strings.
func MustURI(fragments []string, values ...any) string {
	s, err := URI(fragments, values...)
	if err != nil {
		panic(err)
	}
	return s
}
