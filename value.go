// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package urifmt

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	ctyjson "github.com/zclconf/go-cty/cty/json"
	"golang.org/x/net/idna"
)

// Value is implemented by the values that control their own rendering instead
// of being percent-encoded. The set of implementations is closed: the only
// ones are [RawValue] and [HostValue].
type Value interface {
	appendURI(dst []byte) ([]byte, error)
}

// RawValue is a string that is inserted into a URI exactly as given, without
// any percent-encoding. Use [Raw] to construct one.
type RawValue struct {
	raw string
}

var _ Value = RawValue{}

// Raw marks s as already safe for insertion, so that [URI] and the other
// renderers in this package copy it to the result byte-for-byte.
//
// Raw accepts only a string, so a RawValue can never wrap another RawValue or
// a value whose string form would need to be decided at render time.
func Raw(s string) RawValue {
	return RawValue{raw: s}
}

// String returns the wrapped string.
func (v RawValue) String() string {
	return v.raw
}

func (v RawValue) appendURI(dst []byte) ([]byte, error) {
	return append(dst, v.raw...), nil
}

// HostValue is a host name that is inserted in its ASCII-compatible form.
// Use [Host] to construct one.
type HostValue struct {
	name string
}

var _ Value = HostValue{}

// Host marks name as a DNS host name. When rendered, an internationalized
// name is converted to its ASCII "xn--" form using the IDNA lookup profile,
// which also lowercases it. The result is never percent-encoded.
//
// name must be a bare host name, without a port or userinfo. Rendering fails
// if name is not valid under the lookup profile.
func Host(name string) HostValue {
	return HostValue{name: name}
}

// String returns the host name as given to [Host].
func (v HostValue) String() string {
	return v.name
}

func (v HostValue) appendURI(dst []byte) ([]byte, error) {
	ascii, err := idna.Lookup.ToASCII(v.name)
	if err != nil {
		return dst, fmt.Errorf("invalid host name %q: %w", v.name, err)
	}
	return append(dst, ascii...), nil
}

// appendValue appends the rendered form of v to dst. Values implementing
// [Value] render themselves; everything else is converted to a string and
// percent-encoded. A pointer to a RawValue or HostValue renders like the
// value it points to, and a nil one like nil.
func appendValue(dst []byte, v any) ([]byte, error) {
	switch v := v.(type) {
	case RawValue:
		return v.appendURI(dst)
	case HostValue:
		return v.appendURI(dst)
	case *RawValue:
		if v == nil {
			return dst, nil
		}
		return v.appendURI(dst)
	case *HostValue:
		if v == nil {
			return dst, nil
		}
		return v.appendURI(dst)
	case string:
		return AppendEscapedComponent(dst, v), nil
	default:
		s, err := stringify(v)
		if err != nil {
			return dst, err
		}
		return AppendEscapedComponent(dst, s), nil
	}
}

// stringify returns the natural string form of v. A nil pointer renders the
// same as nil, without calling any String or Error method on it.
func stringify(v any) (string, error) {
	if isNilPointer(v) {
		return "", nil
	}
	switch v := v.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.FormatInt(int64(v), 10), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case cty.Value:
		return ctyString(v)
	case fmt.Stringer:
		return v.String(), nil
	case error:
		return v.Error(), nil
	default:
		return fmt.Sprint(v), nil
	}
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// ctyString converts a cty value to the string that gets encoded. Primitive
// values use the standard cty conversion to string, so numbers and bools
// render the same way they would in the configuration language. Collections
// and structural values render as JSON.
//
// Values carrying marks anywhere, such as "sensitive", are refused so that
// they never end up in a URI that may be logged or displayed.
func ctyString(v cty.Value) (string, error) {
	if v.ContainsMarked() {
		return "", ErrMarkedValue
	}
	if !v.IsWhollyKnown() {
		return "", ErrUnknownValue
	}
	if v.IsNull() {
		return "", nil
	}
	if v.Type().IsPrimitiveType() {
		sv, err := convert.Convert(v, cty.String)
		if err != nil {
			return "", err
		}
		return sv.AsString(), nil
	}
	buf, err := ctyjson.SimpleJSONValue{Value: v}.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(buf), nil
}
