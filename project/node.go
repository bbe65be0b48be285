// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package project

import (
	"fmt"

	"github.com/creachadair/jexplore"
	"github.com/creachadair/jexplore/ast"
)

// State is the collapsible state of a node.
type State byte

// Constants defining the valid State values.
const (
	None      State = iota // the node has no children
	Collapsed              // the node has children and is collapsed
	Expanded               // the node has children and is expanded
)

var stateStr = [...]string{
	None:      "none",
	Collapsed: "collapsed",
	Expanded:  "expanded",
}

func (s State) String() string {
	if int(s) >= len(stateStr) {
		return "invalid state"
	}
	return stateStr[s]
}

// NodeKind distinguishes leaf nodes from expandable nodes.
type NodeKind byte

const (
	Leaf       NodeKind = iota // the node has no children
	Expandable                 // the node has children computed from its source
)

func (k NodeKind) String() string {
	if k == Expandable {
		return "expandable"
	}
	return "leaf"
}

// A Command is an action a host may invoke when a node is activated.
// The projector never sets a command.
type Command struct {
	Title     string
	ID        string
	Arguments []any
}

// An Icon is a visual hint for a node, with variants for light and dark
// themes. The projector never sets an icon.
type Icon struct {
	Light, Dark string
}

// A Node is a single labelled entry in the tree.
//
// A node whose Source is non-nil is expandable: its children are the
// projection of Source, computed on demand by Projector.Children. Node values
// are not shared between projections; every call constructs new nodes.
type Node struct {
	Label   string
	State   State
	Command *Command // optional, for host use
	Icon    *Icon    // optional, for host use
	Key     string   // the object key or array index of the value
	Pointer string   // the JSON Pointer of the value in the document

	// Location, if not nil, is the location of the value in the source text.
	// It is carried for the host and does not affect the projection.
	Location *jexplore.Location

	// Source, if not nil, is the value whose projection gives the children of
	// the node.
	Source ast.Value

	proj *Projector // the projector that constructed this node
}

// Kind reports whether n is a Leaf or Expandable.
func (n *Node) Kind() NodeKind {
	if n.Source != nil {
		return Expandable
	}
	return Leaf
}

// Expandable reports whether n has a children producer.
func (n *Node) Expandable() bool { return n.Source != nil }

func (n *Node) String() string {
	return fmt.Sprintf("Node(%q, %v)", n.Label, n.State)
}
