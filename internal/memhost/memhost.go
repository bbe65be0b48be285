// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package memhost implements an in-memory host for tree sessions.
package memhost

import (
	"github.com/creachadair/jexplore/session"
)

// A Host is an in-memory collection of documents with at most one active
// view. The zero value is not ready for use; call New.
type Host struct {
	docs   map[string]*doc
	active string // URI of the active document, or ""
}

type doc struct {
	ctype, text string
}

// View is a view of a document in a Host, identified by its URI.
type View struct{ URI string }

// Document returns the URI of the document in v.
func (v View) Document() session.Document { return v.URI }

// New constructs an empty host.
func New() *Host { return &Host{docs: make(map[string]*doc)} }

// Open adds or replaces the document at uri and returns a view of it.
// Open does not change the active view.
func (h *Host) Open(uri, ctype, text string) View {
	h.docs[uri] = &doc{ctype: ctype, text: text}
	return View{URI: uri}
}

// SetText replaces the text of the document at uri. It reports false if
// there is no such document.
func (h *Host) SetText(uri, text string) bool {
	d, ok := h.docs[uri]
	if ok {
		d.text = text
	}
	return ok
}

// Close removes the document at uri. If it was active, no view is active
// afterward.
func (h *Host) Close(uri string) {
	delete(h.docs, uri)
	if h.active == uri {
		h.active = ""
	}
}

// Focus makes the document at uri active, and returns a view of it.
// If there is no such document, no view is active and Focus returns nil.
func (h *Host) Focus(uri string) session.View {
	if _, ok := h.docs[uri]; !ok {
		h.active = ""
		return nil
	}
	h.active = uri
	return View{URI: uri}
}

// ActiveView implements part of the session.Host interface.
func (h *Host) ActiveView() session.View {
	if h.active == "" {
		return nil
	}
	return View{URI: h.active}
}

// DocumentText implements part of the session.Host interface.
// It returns "" for views of documents that are not open.
func (h *Host) DocumentText(v session.View) string {
	if d := h.lookup(v); d != nil {
		return d.text
	}
	return ""
}

// DocumentContentType implements part of the session.Host interface.
// It returns "" for views of documents that are not open.
func (h *Host) DocumentContentType(v session.View) string {
	if d := h.lookup(v); d != nil {
		return d.ctype
	}
	return ""
}

func (h *Host) lookup(v session.View) *doc {
	if v == nil {
		return nil
	}
	uri, _ := v.Document().(string)
	return h.docs[uri]
}
