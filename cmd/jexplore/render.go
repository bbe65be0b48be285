// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/creachadair/jexplore/internal/memhost"
	"github.com/creachadair/jexplore/project"
	"github.com/creachadair/jexplore/session"

	"github.com/fatih/color"
)

// config carries the settings for a single rendering.
type config struct {
	Name        string // the document name
	ContentType string // the content type of the document
	MaxDepth    int    // levels to expand below the root; < 0 for unlimited
	ShowPos     bool   // append source positions to labels
	Log         *slog.Logger
}

var (
	keyColor    = color.New(color.FgCyan).SprintFunc()
	typeColor   = color.RGB(74, 92, 138).SprintFunc()
	expandColor = color.New(color.FgYellow).SprintFunc()
	posColor    = color.New(color.Faint).SprintFunc()
)

// run renders the tree of text to w, by hosting text as the only document
// of an in-memory host and querying a session the way a tree view would.
func run(cfg *config, w io.Writer, text string) error {
	h := memhost.New()
	h.Open(cfg.Name, cfg.ContentType, text)
	s := session.New(h, &session.Config{Log: cfg.Log})
	defer s.Close()
	s.ActiveViewChanged(h.Focus(cfg.Name))

	bw := bufio.NewWriter(w)
	res := s.Query(nil)
	if res.Err != nil {
		cfg.Log.Warn("document has no tree", "name", cfg.Name, "error", res.Err)
	}
	renderNodes(bw, s, cfg, res.Nodes, 0)
	return bw.Flush()
}

func renderNodes(w io.Writer, s *session.Session, cfg *config, nodes []*project.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, n := range nodes {
		item := s.GetTreeItem(n)
		marker := " "
		if item.State != project.None {
			marker = expandColor("+")
		}
		line := indent + marker + " " + colorLabel(n.Key, item.Label)
		if cfg.ShowPos && n.Location != nil {
			line += " " + posColor("@"+n.Location.First.String())
		}
		fmt.Fprintln(w, line)

		if n.Expandable() && (cfg.MaxDepth < 0 || depth < cfg.MaxDepth) {
			renderNodes(w, s, cfg, s.GetChildren(n), depth+1)
		}
	}
}

// colorLabel highlights the key and the type tag of a node label for key.
func colorLabel(key, label string) string {
	rest, ok := strings.CutPrefix(label, key+": ")
	if !ok {
		return label
	}
	if strings.HasPrefix(rest, "[") {
		if tag, val, ok := strings.Cut(rest, "]"); ok {
			rest = typeColor(tag+"]") + val
		}
	}
	return keyColor(key) + ": " + rest
}
