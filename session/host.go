// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package session

import "github.com/creachadair/jexplore/project"

// A Document identifies a document owned by the host. Documents must be
// comparable; two views of the same document report equal values.
type Document any

// A View is an editable view of a document, such as an editor tab.
type View interface {
	// Document reports the document displayed by the view.
	Document() Document
}

// Host is the interface a session uses to read the state of the hosting
// application. A Host is consulted only during queries.
type Host interface {
	// ActiveView returns the currently focused view, or nil if there is none.
	ActiveView() View

	// DocumentText returns the full current text of the document shown in v.
	DocumentText(v View) string

	// DocumentContentType returns the content type tag of the document shown
	// in v, for example "json" or "plaintext".
	DocumentContentType(v View) string
}

// A TreeItem is the display form of a node.
type TreeItem struct {
	Label   string
	State   project.State
	Command *project.Command
	Icon    *project.Icon
}

// A Change is the payload of a tree-data change notification.
type Change struct {
	// Node, if not nil, is the node whose subtree is known to be stale.
	// If Node is nil, the whole tree is stale.
	Node *project.Node
}

// Whole reports whether c invalidates the whole tree.
func (c Change) Whole() bool { return c.Node == nil }

// A Result is the outcome of a query. If Err is not nil, Nodes is empty.
type Result struct {
	Nodes []*project.Node
	Err   error
}
