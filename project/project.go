// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package project implements the projection of JSON values into trees of
// labelled, lazily expandable nodes.
//
// Each member of an object becomes one node, in source order, labelled by
// the policy implemented by Label. Only object values are expandable; arrays
// are summarized by their length and never descend into their elements.
package project

import (
	"fmt"
	"strconv"

	"github.com/creachadair/jexplore/ast"
	"github.com/creachadair/jexplore/srcmap"
)

// A Projector constructs tree nodes from JSON values.
// The zero value is ready for use and attaches no locations.
type Projector struct {
	// Map, if not nil, supplies source locations for the nodes.
	Map srcmap.Map
}

// Project returns the nodes for the root value v of a document, without
// source locations. See Projector.Project.
func Project(v ast.Value) []*Node { return new(Projector).Project(v) }

// Children returns the children of n. See Projector.Children.
func Children(n *Node) []*Node { return new(Projector).Children(n) }

// Project returns the nodes for the root value v of a document.
//
// If v is an object, the result has one node per member. If v is an array,
// the result has one node per element, keyed by index. Otherwise the result
// is empty.
func (p *Projector) Project(v ast.Value) []*Node {
	switch t := v.(type) {
	case ast.Object:
		return p.object(t, "")
	case ast.Array:
		out := make([]*Node, len(t))
		for i, elt := range t {
			out[i] = p.newNode(strconv.Itoa(i), elt, "")
		}
		return out
	}
	return nil
}

// Children returns the children of n. Each call constructs new nodes.  If n
// was constructed by another projector, that projector is used instead of p.
// If n is not expandable, Children returns nil.
func (p *Projector) Children(n *Node) []*Node {
	if n == nil || n.Source == nil {
		return nil
	}
	obj, ok := n.Source.(ast.Object)
	if !ok {
		return nil
	}
	if n.proj != nil {
		p = n.proj
	}
	return p.object(obj, n.Pointer)
}

func (p *Projector) object(obj ast.Object, ptr string) []*Node {
	out := make([]*Node, len(obj))
	for i, m := range obj {
		out[i] = p.newNode(m.Key, m.Value, ptr)
	}
	return out
}

func (p *Projector) newNode(key string, v ast.Value, parent string) *Node {
	n := &Node{
		Label:   Label(key, v),
		Key:     key,
		Pointer: srcmap.Pointer(parent, key),
		proj:    p,
	}
	if obj, ok := v.(ast.Object); ok {
		n.Source = obj
		n.State = Collapsed
	}
	if e, ok := p.Map.Lookup(n.Pointer); ok {
		loc := e.Value
		n.Location = &loc
	}
	return n
}

// Label returns the label of a node for the member key with value v.
// A nil value is treated as undefined.
//
//	null       key: null
//	undefined  key: undefined
//	array      key: [array:N]
//	object     key: [object]
//	other      key: [type] value
func Label(key string, v ast.Value) string {
	if v == nil {
		return key + ": undefined"
	}
	switch t := v.Kind(); t {
	case ast.NullKind:
		return key + ": null"
	case ast.UndefinedKind:
		return key + ": undefined"
	case ast.ArrayKind:
		return fmt.Sprintf("%s: [array:%d]", key, valueLen(v))
	case ast.ObjectKind:
		return key + ": [object]"
	default:
		return fmt.Sprintf("%s: [%s] %s", key, t, valueString(v))
	}
}

func valueLen(v ast.Value) int {
	if ln, ok := v.(interface{ Len() int }); ok {
		return ln.Len()
	}
	return 0
}

// valueString returns the default string form of a scalar value.
func valueString(v ast.Value) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return v.JSON()
}
