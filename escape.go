// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package urifmt

const upperhex = "0123456789ABCDEF"

// EscapeComponent returns s with every byte outside the component unreserved
// set replaced by a "%XX" escape with uppercase hexadecimal digits.
//
// The unreserved set is the ASCII letters and digits plus the characters
// -_.!~*'(). This is the same table used by ECMAScript's encodeURIComponent,
// which differs from [net/url.QueryEscape] in two ways: a space becomes
// "%20" rather than "+", and !*'() are left as they are.
//
// Non-ASCII text is escaped one byte at a time from its UTF-8 encoding. Bytes
// that are not valid UTF-8 are escaped the same way rather than rejected.
func EscapeComponent(s string) string {
	n := escapeCount(s)
	if n == 0 {
		return s
	}
	return string(appendEscaped(make([]byte, 0, len(s)+2*n), s))
}

// AppendEscapedComponent appends the escaped form of s, as produced by
// [EscapeComponent], to dst and returns the extended buffer.
func AppendEscapedComponent(dst []byte, s string) []byte {
	if escapeCount(s) == 0 {
		return append(dst, s...)
	}
	return appendEscaped(dst, s)
}

func appendEscaped(dst []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEscape(c) {
			dst = append(dst, '%', upperhex[c>>4], upperhex[c&15])
			continue
		}
		dst = append(dst, c)
	}
	return dst
}

func escapeCount(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i]) {
			n++
		}
	}
	return n
}

func shouldEscape(c byte) bool {
	if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
		return false
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return false
	}
	return true
}
