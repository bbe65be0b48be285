// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a data model for parsed JSON values, and a parser that
// constructs values from JSON source.
package ast

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind enumerates the kinds of JSON value.
type Kind byte

// Constants defining the valid Kind values.
const (
	NullKind      Kind = iota // the null constant
	UndefinedKind             // a missing value; not representable in JSON text
	BoolKind                  // true or false
	NumberKind                // an integer or floating-point number
	StringKind                // a string
	ArrayKind                 // an ordered sequence of values
	ObjectKind                // an ordered collection of key-value members
)

var kindStr = [...]string{
	NullKind:      "null",
	UndefinedKind: "undefined",
	BoolKind:      "boolean",
	NumberKind:    "number",
	StringKind:    "string",
	ArrayKind:     "array",
	ObjectKind:    "object",
}

// String returns the primitive type name of k.
func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return "invalid kind"
	}
	return kindStr[k]
}

// A Value is an arbitrary JSON value.
type Value interface {
	// Kind reports the kind of the value.
	Kind() Kind

	// JSON returns the compact JSON encoding of the value.
	JSON() string
}

// An Object is a collection of key-value members in source order.
// Duplicate keys are retained.
type Object []*Member

func (Object) Kind() Kind { return ObjectKind }

func (o Object) JSON() string {
	if len(o) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(m.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (o Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o)) }

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// JSON returns the encoding of m as an object member, "key":value.
func (m *Member) JSON() string { return Quote(m.Key) + ":" + valueJSON(m.Value) }

func (m *Member) String() string { return fmt.Sprintf("Member(key=%q)", m.Key) }

// Field constructs an object member with the given key and value.
// The value must be a string, int, float, bool, nil, or ast.Value.
func Field(key string, value any) *Member {
	return &Member{Key: key, Value: ToValue(value)}
}

// An Array is a sequence of values.
type Array []Value

func (Array) Kind() Kind { return ArrayKind }

func (a Array) JSON() string {
	if len(a) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(valueJSON(v))
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a)) }

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

// A Number is an integer or floating-point value. It retains the text of the
// value as written in the source.
type Number struct{ text string }

// Int constructs a Number from an integer.
func Int(z int64) Number { return Number{text: strconv.FormatInt(z, 10)} }

// Float constructs a Number from a floating-point value.
func Float(f float64) Number { return Number{text: strconv.FormatFloat(f, 'g', -1, 64)} }

func (Number) Kind() Kind { return NumberKind }

// JSON returns the source text of n.
func (n Number) JSON() string { return n.text }

// Float64 returns the value of n as a float64. Values out of range are
// reported as ±Inf.
func (n Number) Float64() float64 {
	v, _ := strconv.ParseFloat(n.text, 64)
	return v
}

// IsInt reports whether n is written as an integer, with no fraction or
// exponent.
func (n Number) IsInt() bool { return !strings.ContainsAny(n.text, ".eE") }

// String returns the default string form of n: the shortest decimal that
// round-trips to the same float64, written in positional notation for
// magnitudes in [1e-6, 1e21) and in exponent notation otherwise.
func (n Number) String() string { return formatNumber(n.Float64()) }

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0" // including negative zero
	}
	if a := math.Abs(f); a >= 1e-6 && a < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	// Exponent notation has no leading zeros in the exponent: 1e+21, 1.5e-7.
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mant + "e" + sign + digits
}

// A Bool is a Boolean constant, true or false.
type Bool bool

func (Bool) Kind() Kind { return BoolKind }

func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }

func (b Bool) String() string { return b.JSON() }

// A String is a string value. Its content is the unescaped text.
type String string

func (String) Kind() Kind { return StringKind }

func (s String) JSON() string { return Quote(string(s)) }

func (s String) String() string { return string(s) }

type nullValue struct{}

func (nullValue) Kind() Kind     { return NullKind }
func (nullValue) JSON() string   { return "null" }
func (nullValue) String() string { return "null" }

// Null represents the null constant.
var Null Value = nullValue{}

type undefinedValue struct{}

func (undefinedValue) Kind() Kind { return UndefinedKind }

// JSON encodes an undefined value as null, since JSON has no representation
// for a missing value.
func (undefinedValue) JSON() string   { return "null" }
func (undefinedValue) String() string { return "undefined" }

// Undefined represents a missing value. The parser never produces Undefined;
// it may be used in values constructed by a program.
var Undefined Value = undefinedValue{}

func valueJSON(v Value) string {
	if v == nil {
		return "null"
	}
	return v.JSON()
}

// ToValue converts a string, int, float, bool, nil, or ast.Value into an
// ast.Value. It panics if v does not have one of those types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case string:
		return String(t)
	case int:
		return Int(int64(t))
	case int64:
		return Int(t)
	case float64:
		return Float(t)
	case bool:
		return Bool(t)
	case nil:
		return Null
	default:
		panic(fmt.Sprintf("invalid value %T", v))
	}
}
