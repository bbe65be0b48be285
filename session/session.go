// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package session implements a tree session, which serves tree queries for
// the active document of a host application and notifies subscribers when the
// tree may be stale.
//
// A session holds no parsed state between queries. Each query for the root of
// the tree re-reads the text of the active document from the host, parses it,
// and projects the result. Handler methods such as DocumentChanged and
// ActiveViewChanged do not recompute anything; they notify subscribers, who
// are expected to query again.
//
// A Session is not safe for concurrent use. The host must deliver
// notifications and queries from a single goroutine.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/creachadair/jexplore/ast"
	"github.com/creachadair/jexplore/notify"
	"github.com/creachadair/jexplore/project"
	"github.com/creachadair/jexplore/srcmap"

	"go4.org/mem"
)

// ErrClosed is reported by queries on a session that has been closed.
var ErrClosed = errors.New("session is closed")

// Config carries optional settings for a Session.
// A nil *Config is ready for use and provides default values.
type Config struct {
	// Log receives diagnostics about queries that fail. If nil, the session
	// uses slog.Default().
	Log *slog.Logger

	// ContentType is the content type of documents for which the session
	// shows a tree. Comparison ignores case and surrounding whitespace.
	// If empty, "json" is used.
	ContentType string
}

func (c *Config) logger() *slog.Logger {
	if c == nil || c.Log == nil {
		return slog.Default()
	}
	return c.Log
}

func (c *Config) contentType() string {
	if c == nil {
		return "json"
	}
	if ct := strings.TrimSpace(c.ContentType); ct != "" {
		return ct
	}
	return "json"
}

// A Session tracks the active view of a host and answers tree queries for the
// document it displays.
type Session struct {
	host    Host
	log     *slog.Logger
	ctype   string
	active  View
	changed notify.Emitter[Change]
	lastErr error
}

// New constructs a session that reads documents from host.
// The session has no active view until Activate or ActiveViewChanged is
// called.
func New(host Host, cfg *Config) *Session {
	return &Session{
		host:  host,
		log:   cfg.logger(),
		ctype: cfg.contentType(),
	}
}

// ActiveView reports the view whose document is shown by the tree, or nil.
func (s *Session) ActiveView() View { return s.active }

// LastError reports the error from the most recent query, or nil if it
// succeeded.
func (s *Session) LastError() error { return s.lastErr }

// Query returns the children of node. If node == nil, Query returns the
// nodes for the root of the active document.
//
// The root of the tree is empty if there is no active view, if its content
// type does not match, or if its text is blank. If the text cannot be parsed,
// the result is empty and its Err field reports why. A source map is built
// for the text on a best-effort basis; failure to do so is logged but does
// not affect the result.
func (s *Session) Query(node *project.Node) (res Result) {
	if s.changed.IsClosed() {
		return Result{Err: ErrClosed}
	}
	defer func() {
		if x := recover(); x != nil {
			res = Result{Err: fmt.Errorf("projection failed: %v", x)}
		}
		s.lastErr = res.Err
		if res.Err != nil {
			s.log.Debug("tree query failed", "error", res.Err)
		}
	}()

	if node != nil {
		return Result{Nodes: project.Children(node)}
	}
	v := s.active
	if v == nil {
		return Result{}
	} else if ct := s.host.DocumentContentType(v); !mem.EqualFold(mem.TrimSpace(mem.S(ct)), mem.S(s.ctype)) {
		return Result{}
	}

	text := []byte(s.host.DocumentText(v))
	if mem.TrimSpace(mem.B(text)).Len() == 0 {
		return Result{}
	}
	root, err := ast.Parse(text)
	if err != nil {
		return Result{Err: err}
	}
	m, err := srcmap.Build(text)
	if err != nil {
		s.log.Debug("source map unavailable", "error", err)
	}
	p := &project.Projector{Map: m}
	return Result{Nodes: p.Project(root)}
}

// GetChildren returns the children of node, or of the root if node == nil.
// Any failure is reported as an empty result; use Query or LastError to
// recover the reason.
func (s *Session) GetChildren(node *project.Node) []*project.Node {
	return s.Query(node).Nodes
}

// GetTreeItem returns the display form of node.
func (s *Session) GetTreeItem(node *project.Node) TreeItem {
	if node == nil {
		return TreeItem{}
	}
	return TreeItem{
		Label:   node.Label,
		State:   node.State,
		Command: node.Command,
		Icon:    node.Icon,
	}
}

// OnDidChangeTreeData registers f to be called whenever the tree may be
// stale, and returns a function that unregisters it.
func (s *Session) OnDidChangeTreeData(f func(Change)) (cancel func()) {
	return s.changed.Subscribe(f)
}

// Refresh notifies subscribers that the whole tree may be stale.
// After the session is closed, Refresh does nothing.
func (s *Session) Refresh() { s.refresh("refresh", nil) }

// RefreshNode notifies subscribers that the subtree rooted at n may be
// stale. If n == nil, it is equivalent to Refresh.
func (s *Session) RefreshNode(n *project.Node) { s.refresh("refresh node", n) }

func (s *Session) refresh(reason string, n *project.Node) {
	if err := s.changed.Fire(Change{Node: n}); err != nil {
		s.log.Debug("refresh after close", "reason", reason)
		return
	}
	s.log.Debug("tree refreshed", "reason", reason)
}

// Activate makes the host's current active view the active view of s, and
// refreshes the tree.
func (s *Session) Activate() { s.ActiveViewChanged(s.host.ActiveView()) }

// Deactivate clears the active view of s. It does not refresh the tree.
func (s *Session) Deactivate() { s.active = nil }

// ActiveViewChanged records v as the active view and refreshes the tree.
// A nil v means no view is active.
func (s *Session) ActiveViewChanged(v View) {
	if s.changed.IsClosed() {
		return
	}
	s.active = v
	s.refresh("active view changed", nil)
}

// VisibleViewsChanged refreshes the tree when the set of visible views
// changes.
func (s *Session) VisibleViewsChanged([]View) { s.refresh("visible views changed", nil) }

// DocumentChanged refreshes the tree when the text of a document changes.
func (s *Session) DocumentChanged(Document) { s.refresh("document changed", nil) }

// DocumentOpened refreshes the tree when a document is opened.
func (s *Session) DocumentOpened(Document) { s.refresh("document opened", nil) }

// DocumentClosed refreshes the tree when d is closed, if d is the document of
// the active view or if there is no active view.
func (s *Session) DocumentClosed(d Document) {
	if s.active == nil || s.isActive(d) {
		s.refresh("document closed", nil)
	}
}

// DocumentSaved refreshes the tree when d is saved, if d is the document of
// the active view.
func (s *Session) DocumentSaved(d Document) {
	if s.active != nil && s.isActive(d) {
		s.refresh("document saved", nil)
	}
}

// isActive reports whether d is the document of the active view.
// Documents that cannot be compared never match.
func (s *Session) isActive(d Document) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return s.active.Document() == d
}

// Close releases the change notifier of s and discards its subscribers.
// After Close, queries return empty results and notifications are ignored.
// Close reports ErrClosed if s was already closed.
func (s *Session) Close() error {
	if err := s.changed.Close(); err != nil {
		return ErrClosed
	}
	s.active = nil
	return nil
}
