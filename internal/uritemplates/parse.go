// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package uritemplates

import (
	"fmt"
	"strings"
)

// Template is the result of splitting a template string.
//
// Literals always has exactly one more element than Names: Literals[i] is
// the text before the expression for Names[i], and the final element is the
// text after the last expression. Literal elements may be empty.
type Template struct {
	Literals []string
	Names    []string
}

// ParseError describes a syntax problem in a template string.
type ParseError struct {
	// Offset is the byte offset in the template string at which the
	// problem was detected.
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("at offset %d: %s", e.Offset, e.Msg)
}

// operators are the expression type prefixes defined for Level 2 and above,
// plus the characters the RFC reserves for future operators.
const operators = "+#./;?&=,!@|"

// Parse splits src into literal text and the variable names of its
// expressions.
func Parse(src string) (*Template, error) {
	ret := &Template{}
	var lit strings.Builder
	for i := 0; i < len(src); i++ {
		switch c := src[i]; c {
		case '{':
			end := strings.IndexByte(src[i+1:], '}')
			if end < 0 {
				return nil, &ParseError{Offset: i, Msg: "unclosed expression"}
			}
			name, err := parseExpression(src[i+1:i+1+end], i+1)
			if err != nil {
				return nil, err
			}
			ret.Literals = append(ret.Literals, lit.String())
			ret.Names = append(ret.Names, name)
			lit.Reset()
			i += end + 1
		case '}':
			return nil, &ParseError{Offset: i, Msg: "unexpected \"}\" outside of an expression"}
		default:
			lit.WriteByte(c)
		}
	}
	ret.Literals = append(ret.Literals, lit.String())
	return ret, nil
}

// parseExpression validates the content of a single expression, which must
// be one varname with no operator or modifier. offset is the position of
// expr within the whole template, for error reporting.
func parseExpression(expr string, offset int) (string, error) {
	if expr == "" {
		return "", &ParseError{Offset: offset, Msg: "empty expression"}
	}
	if strings.IndexByte(operators, expr[0]) >= 0 {
		return "", &ParseError{
			Offset: offset,
			Msg:    fmt.Sprintf("unsupported operator %q; only simple {name} expressions are allowed", expr[0]),
		}
	}
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		switch {
		case isVarchar(c):
		case c == '%':
			if i+2 >= len(expr) || !isHex(expr[i+1]) || !isHex(expr[i+2]) {
				return "", &ParseError{Offset: offset + i, Msg: "malformed percent-encoding in variable name"}
			}
			i += 2
		case c == '.':
			if i == 0 || i == len(expr)-1 || expr[i-1] == '.' {
				return "", &ParseError{Offset: offset + i, Msg: "misplaced \".\" in variable name"}
			}
		case c == ',':
			return "", &ParseError{Offset: offset + i, Msg: "variable lists are not supported"}
		case c == ':' || c == '*':
			return "", &ParseError{Offset: offset + i, Msg: fmt.Sprintf("unsupported modifier %q", c)}
		default:
			return "", &ParseError{Offset: offset + i, Msg: fmt.Sprintf("invalid character %q in variable name", c)}
		}
	}
	return expr, nil
}

func isVarchar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' || c == '_'
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
