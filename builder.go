// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package urifmt

// Builder assembles a URI one piece at a time, for call sites where the
// alternation of literal text and values is not known up front.
//
// The zero value is ready to use. A Builder must not be copied after first
// use and is not safe for concurrent use.
//
// Each append method returns the receiver so calls can be chained:
//
//	u, err := new(urifmt.Builder).
//		AppendRaw(baseURL).
//		Append("/users/").
//		AppendEncoded(name).
//		Build()
type Builder struct {
	buf []byte

	// n counts the values appended so far, for error positions.
	n   int
	err error
}

// Append adds literal text, unchanged.
func (b *Builder) Append(literal string) *Builder {
	if b.err == nil {
		b.buf = append(b.buf, literal...)
	}
	return b
}

// AppendEncoded adds the rendered form of v, following the same rules as
// values passed to [URI]. Passing a [RawValue] or [HostValue] here is
// equivalent to calling AppendRaw or AppendHost.
func (b *Builder) AppendEncoded(v any) *Builder {
	if b.err != nil {
		return b
	}
	buf, err := appendValue(b.buf, v)
	if err != nil {
		b.err = &ValueError{Index: b.n, Err: err}
		return b
	}
	b.buf = buf
	b.n++
	return b
}

// AppendRaw adds s without any encoding.
func (b *Builder) AppendRaw(s string) *Builder {
	return b.AppendEncoded(Raw(s))
}

// AppendHost adds name in the form described by [Host].
func (b *Builder) AppendHost(name string) *Builder {
	return b.AppendEncoded(Host(name))
}

// Build returns the assembled string, or the first error encountered by an
// append method. Once an append has failed, all later appends are ignored.
func (b *Builder) Build() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	return string(b.buf), nil
}

// Len returns the number of bytes assembled so far.
func (b *Builder) Len() int {
	return len(b.buf)
}

// Reset empties the builder and clears any recorded error.
func (b *Builder) Reset() {
	b.buf = b.buf[:0]
	b.n = 0
	b.err = nil
}
