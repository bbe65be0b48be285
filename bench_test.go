package jexplore_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/creachadair/jexplore/ast"
	"github.com/creachadair/jexplore/internal/memhost"
	"github.com/creachadair/jexplore/project"
	"github.com/creachadair/jexplore/session"
	"github.com/creachadair/jexplore/srcmap"
)

// benchInput constructs a document with n top-level objects, each having a
// handful of scalar, array, and nested object members.
func benchInput(n int) string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for i := range n {
		if i > 0 {
			sb.WriteString(",\n")
		}
		fmt.Fprintf(&sb, `  "item%d": {"id": %d, "name": "item %d", "ok": true, "tags": [1, 2, 3], "sub": {"x": null, "y": 2.5}}`, i, i, i)
	}
	sb.WriteString("\n}\n")
	return sb.String()
}

func BenchmarkProjection(b *testing.B) {
	input := benchInput(1000)
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Parse", func(b *testing.B) {
		for b.Loop() {
			if _, err := ast.ParseString(input); err != nil {
				b.Fatalf("Parse: %v", err)
			}
		}
	})

	b.Run("SourceMap", func(b *testing.B) {
		for b.Loop() {
			if _, err := srcmap.Build([]byte(input)); err != nil {
				b.Fatalf("Build: %v", err)
			}
		}
	})

	v, err := ast.ParseString(input)
	if err != nil {
		b.Fatalf("Parse: %v", err)
	}
	b.Run("Project", func(b *testing.B) {
		for b.Loop() {
			for _, n := range project.Project(v) {
				project.Children(n)
			}
		}
	})

	b.Run("Session", func(b *testing.B) {
		h := memhost.New()
		h.Open("bench.json", "json", input)
		s := session.New(h, nil)
		defer s.Close()
		s.ActiveViewChanged(h.Focus("bench.json"))

		for b.Loop() {
			if nodes := s.GetChildren(nil); len(nodes) != 1000 {
				b.Fatalf("GetChildren: got %d nodes, want 1000", len(nodes))
			}
		}
	})
}
