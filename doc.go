// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jexplore renders the structure of a JSON document as a lazily
// expandable tree of labelled nodes.
//
// The module is divided into the following packages:
//
//	Package   | Description
//	--------- | --------------------------------------------------------------
//	ast       | the parsed JSON value model and its parser
//	srcmap    | a best-effort map from JSON Pointers to source locations
//	project   | the projection from JSON values to tree nodes
//	notify    | a disposable change-notification emitter
//	session   | the tree session that serves and invalidates tree queries
//
// This package defines the source position types shared by the others.
//
// # Projection
//
// Each member of a JSON object becomes one node, in the order the members
// appear in the source. The label of a node depends on the kind of the
// member's value:
//
//	Value      | Label                  | Expandable
//	---------- | ---------------------- | ----------
//	null       | key: null              | no
//	undefined  | key: undefined         | no
//	array      | key: [array:N]         | no
//	object     | key: [object]          | yes
//	other      | key: [type] value      | no
//
// Children of an expandable node are computed only when requested, and every
// request constructs new nodes.
//
// # Sessions
//
// A session tracks the active document of a host editor and answers queries
// for the children of the root or of any expandable node:
//
//	s := session.New(host, nil)
//	defer s.Close()
//	s.OnDidChangeTreeData(func(session.Change) { redraw(s) })
//	for _, n := range s.GetChildren(nil) {
//	   log.Print(n.Label)
//	}
//
// Host notifications (document edits, view switches) are reported to the
// session through its handler methods. A session never recomputes anything in
// response to a notification; it only signals its subscribers that the tree is
// stale, and the next query re-reads and re-parses the document.
package jexplore
