// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"errors"
	"fmt"

	"github.com/tailscale/hujson"
)

// ErrNonStandard is reported by Parse for input that uses extensions to the
// JSON grammar, such as comments or trailing commas.
var ErrNonStandard = errors.New("non-standard JSON")

// Parse parses and returns a single JSON value from text. It reports an error
// if text is empty, is not valid JSON, or contains anything other than
// whitespace after the value.
func Parse(text []byte) (Value, error) {
	hv, err := hujson.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	} else if !hv.IsStandard() {
		return nil, fmt.Errorf("parse: %w", ErrNonStandard)
	}
	return Convert(hv)
}

// ParseString is a convenience wrapper for Parse that accepts a string.
func ParseString(text string) (Value, error) { return Parse([]byte(text)) }

// Convert converts a hujson syntax tree into an equivalent Value.
// Comments and other extra whitespace in hv are discarded.
func Convert(hv hujson.Value) (Value, error) {
	switch t := hv.Value.(type) {
	case *hujson.Object:
		obj := make(Object, len(t.Members))
		for i, m := range t.Members {
			key, ok := m.Name.Value.(hujson.Literal)
			if !ok || key.Kind() != '"' {
				return nil, fmt.Errorf("at offset %d: invalid object key", m.Name.StartOffset)
			}
			v, err := Convert(m.Value)
			if err != nil {
				return nil, err
			}
			obj[i] = &Member{Key: key.String(), Value: v}
		}
		return obj, nil

	case *hujson.Array:
		arr := make(Array, len(t.Elements))
		for i, e := range t.Elements {
			v, err := Convert(e)
			if err != nil {
				return nil, err
			}
			arr[i] = v
		}
		return arr, nil

	case hujson.Literal:
		switch t.Kind() {
		case 'n':
			return Null, nil
		case 't', 'f':
			return Bool(t.Kind() == 't'), nil
		case '0':
			return Number{text: string(t)}, nil
		case '"':
			return String(t.String()), nil
		}
		return nil, fmt.Errorf("at offset %d: invalid literal %q", hv.StartOffset, t)

	default:
		return nil, fmt.Errorf("at offset %d: unknown value %T", hv.StartOffset, hv.Value)
	}
}
