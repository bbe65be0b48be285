// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package srcmap builds a map from the values of a JSON document to their
// locations in the source text.
//
// Values are identified by JSON Pointers (RFC 6901). The root value has the
// empty pointer "", and the pointer of a member or element is the pointer of
// its parent followed by "/" and the escaped key or index:
//
//	{"a": {"b/c": [true]}}   "/a/b~1c/0" => true
package srcmap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/jexplore"
	"github.com/tailscale/hujson"
)

// An Entry records the location of a single value.
type Entry struct {
	Value jexplore.Location // the location of the value
	Key   jexplore.Location // the location of the member key, if HasKey
	// HasKey is true if the value is the value of an object member.
	HasKey bool
}

// A Map maps JSON Pointers to the locations of the values they denote.
// A nil Map is ready for use and empty.
type Map map[string]Entry

// Lookup reports the entry for ptr, and whether it was present.
func (m Map) Lookup(ptr string) (Entry, bool) {
	e, ok := m[ptr]
	return e, ok
}

// Build parses text and returns a map of the locations of every value in it.
// Build is independent of package ast, and accepts the same extensions that
// hujson accepts (comments and trailing commas).
//
// A pointer through a key that occurs more than once in the same object does
// not denote a unique value, so the map has no entries for it or for any
// pointer beneath it.
func Build(text []byte) (Map, error) {
	hv, err := hujson.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("source map: %w", err)
	}
	b := &builder{idx: jexplore.NewLineIndex(text), m: make(Map)}
	b.m[""] = Entry{Value: b.locate(hv)}
	b.walk("", hv)
	b.dropAmbiguous()
	return b.m, nil
}

type builder struct {
	idx  *jexplore.LineIndex
	m    Map
	dups []string // pointers reached through duplicated keys
}

func (b *builder) dropAmbiguous() {
	for _, d := range b.dups {
		for ptr := range b.m {
			if ptr == d || strings.HasPrefix(ptr, d+"/") {
				delete(b.m, ptr)
			}
		}
	}
}

// locate returns the location of hv, excluding its surrounding whitespace
// and comments.
func (b *builder) locate(hv hujson.Value) jexplore.Location {
	return b.idx.Locate(hv.StartOffset, hv.EndOffset)
}

func (b *builder) walk(ptr string, hv hujson.Value) {
	switch t := hv.Value.(type) {
	case *hujson.Object:
		seen := make(map[string]bool, len(t.Members))
		for _, m := range t.Members {
			key := m.Name.Value.(hujson.Literal).String()
			sub := Pointer(ptr, key)
			if seen[key] {
				b.dups = append(b.dups, sub)
			}
			seen[key] = true

			b.m[sub] = Entry{
				Value:  b.locate(m.Value),
				Key:    b.locate(m.Name),
				HasKey: true,
			}
			b.walk(sub, m.Value)
		}
	case *hujson.Array:
		for i, e := range t.Elements {
			sub := Pointer(ptr, strconv.Itoa(i))
			b.m[sub] = Entry{Value: b.locate(e)}
			b.walk(sub, e)
		}
	}
}

var tokenEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// Pointer returns the JSON Pointer formed by appending the reference token
// tok to parent. The token is escaped as required.
func Pointer(parent, tok string) string {
	return parent + "/" + tokenEscaper.Replace(tok)
}
