// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package project_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/creachadair/jexplore"
	"github.com/creachadair/jexplore/ast"
	"github.com/creachadair/jexplore/project"
	"github.com/creachadair/jexplore/srcmap"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func mustParse(t *testing.T, text string) ast.Value {
	t.Helper()
	v, err := ast.ParseString(text)
	if err != nil {
		t.Fatalf("Parse %q: %v", text, err)
	}
	return v
}

// shape renders nodes as a list of "label/state/kind" strings, expanding
// expandable nodes recursively with indentation.
func shape(nodes []*project.Node) []string {
	var out []string
	var walk func(string, []*project.Node)
	walk = func(indent string, ns []*project.Node) {
		for _, n := range ns {
			out = append(out, fmt.Sprintf("%s%s/%v/%v", indent, n.Label, n.State, n.Kind()))
			walk(indent+"  ", project.Children(n))
		}
	}
	walk("", nodes)
	return out
}

func TestLabel(t *testing.T) {
	tests := []struct {
		key   string
		value ast.Value
		want  string
	}{
		{"a", ast.Null, "a: null"},
		{"a", ast.Undefined, "a: undefined"},
		{"a", nil, "a: undefined"},
		{"a", ast.Array{ast.Int(1), ast.Int(2), ast.Int(3)}, "a: [array:3]"},
		{"a", ast.Array{}, "a: [array:0]"},
		{"a", ast.Object{}, "a: [object]"},
		{"a", ast.Object{ast.Field("b", 1)}, "a: [object]"},
		{"a", ast.String("x"), "a: [string] x"},
		{"a", ast.String(""), "a: [string] "},
		{"a", ast.Bool(true), "a: [boolean] true"},
		{"a", ast.Bool(false), "a: [boolean] false"},
		{"a", ast.Int(1), "a: [number] 1"},
		{"a", ast.Float(2.5), "a: [number] 2.5"},
		{"", ast.Int(0), ": [number] 0"},
		{"x y", ast.String("p\nq"), "x y: [string] p\nq"},
	}
	for _, tc := range tests {
		if got := project.Label(tc.key, tc.value); got != tc.want {
			t.Errorf("Label(%q, %v): got %q, want %q", tc.key, tc.value, got, tc.want)
		}
	}
}

func TestProject(t *testing.T) {
	v := mustParse(t, `{
  "name": "widget",
  "count": 1.50,
  "ok": true,
  "none": null,
  "tags": ["a", "b", "c"],
  "empty": {},
  "meta": {
    "b": 1,
    "deep": {"x": [{"y": 1}]}
  }
}`)
	want := []string{
		"name: [string] widget/none/leaf",
		"count: [number] 1.5/none/leaf",
		"ok: [boolean] true/none/leaf",
		"none: null/none/leaf",
		"tags: [array:3]/none/leaf",
		"empty: [object]/collapsed/expandable",
		"meta: [object]/collapsed/expandable",
		"  b: [number] 1/none/leaf",
		"  deep: [object]/collapsed/expandable",
		"    x: [array:1]/none/leaf",
	}
	if diff := cmp.Diff(want, shape(project.Project(v))); diff != "" {
		t.Errorf("Project (-want, +got):\n%s", diff)
	}
}

func TestProjectNested(t *testing.T) {
	nodes := project.Project(mustParse(t, `{"a": {"b": 1}}`))
	if len(nodes) != 1 {
		t.Fatalf("Project: got %d nodes, want 1", len(nodes))
	}
	a := nodes[0]
	if a.Label != "a: [object]" || a.State != project.Collapsed || !a.Expandable() {
		t.Errorf("Node a: got %v expandable=%v", a, a.Expandable())
	}
	kids := project.Children(a)
	if len(kids) != 1 {
		t.Fatalf("Children: got %d nodes, want 1", len(kids))
	}
	b := kids[0]
	if b.Label != "b: [number] 1" || b.Expandable() || b.State != project.None {
		t.Errorf("Node b: got %v expandable=%v", b, b.Expandable())
	}
	if got := project.Children(b); got != nil {
		t.Errorf("Children of leaf: got %v, want nil", got)
	}
	if b.Pointer != "/a/b" || b.Key != "b" {
		t.Errorf("Node b: pointer %q key %q", b.Pointer, b.Key)
	}
}

func TestProjectFresh(t *testing.T) {
	v := mustParse(t, `{"a": {"b": {"c": true}}, "d": 1}`)
	p := new(project.Projector)

	first, second := p.Project(v), p.Project(v)
	if diff := cmp.Diff(first, second, cmpopts.IgnoreUnexported(project.Node{})); diff != "" {
		t.Errorf("Projections differ (-first, +second):\n%s", diff)
	}
	for i := range first {
		if first[i] == second[i] {
			t.Errorf("Node %d is shared between projections", i)
		}
	}

	c1, c2 := p.Children(first[0]), p.Children(first[0])
	if len(c1) != 1 || len(c2) != 1 {
		t.Fatalf("Children: got %d, %d nodes, want 1", len(c1), len(c2))
	}
	if c1[0] == c2[0] {
		t.Error("Children returned a shared node")
	}
	if c1[0].Label != c2[0].Label {
		t.Errorf("Children labels differ: %q vs %q", c1[0].Label, c2[0].Label)
	}
}

func TestProjectOrder(t *testing.T) {
	nodes := project.Project(mustParse(t, `{"z": 1, "10": 2, "a": 3, "2": 4, "z": 5}`))
	var got []string
	for _, n := range nodes {
		got = append(got, n.Label)
	}
	want := []string{
		"z: [number] 1",
		"10: [number] 2",
		"a: [number] 3",
		"2: [number] 4",
		"z: [number] 5",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Labels (-want, +got):\n%s", diff)
	}
}

func TestProjectRoots(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{`"hello"`, nil},
		{`42`, nil},
		{`null`, nil},
		{`true`, nil},
		{`{}`, nil},
		{`[]`, nil},
		{`[1, {"a": null}, [2]]`, []string{
			"0: [number] 1/none/leaf",
			"1: [object]/collapsed/expandable",
			"  a: null/none/leaf",
			"2: [array:1]/none/leaf",
		}},
	}
	for _, tc := range tests {
		got := shape(project.Project(mustParse(t, tc.input)))
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Project %q (-want, +got):\n%s", tc.input, diff)
		}
	}
}

func TestProjectEmptyObject(t *testing.T) {
	nodes := project.Project(mustParse(t, `{"e": {}}`))
	if len(nodes) != 1 || !nodes[0].Expandable() || nodes[0].State != project.Collapsed {
		t.Fatalf("Project: got %v", nodes)
	}
	if kids := project.Children(nodes[0]); len(kids) != 0 {
		t.Errorf("Children of empty object: got %v, want none", kids)
	}
}

func TestProjectUndefined(t *testing.T) {
	v := ast.Object{
		ast.Field("u", ast.Undefined),
		{Key: "n", Value: nil},
	}
	var got []string
	for _, n := range project.Project(v) {
		got = append(got, n.Label)
	}
	if diff := cmp.Diff([]string{"u: undefined", "n: undefined"}, got); diff != "" {
		t.Errorf("Labels (-want, +got):\n%s", diff)
	}
}

func TestProjectLocations(t *testing.T) {
	const text = `{"a":{"b/c":true},"d":[1]}`
	m, err := srcmap.Build([]byte(text))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	p := &project.Projector{Map: m}
	nodes := p.Project(mustParse(t, text))
	if len(nodes) != 2 {
		t.Fatalf("Project: got %d nodes, want 2", len(nodes))
	}
	checkSpan := func(n *project.Node, pos, end int) {
		t.Helper()
		if n.Location == nil {
			t.Fatalf("Node %q: no location", n.Label)
		}
		if want := (jexplore.Span{Pos: pos, End: end}); n.Location.Span != want {
			t.Errorf("Node %q: got span %v, want %v", n.Label, n.Location.Span, want)
		}
	}
	checkSpan(nodes[0], 5, 17)
	checkSpan(nodes[1], 22, 25)

	// Children use the projector that constructed their parent, even when
	// expanded through the zero projector.
	kids := project.Children(nodes[0])
	if len(kids) != 1 {
		t.Fatalf("Children: got %d nodes, want 1", len(kids))
	}
	if kids[0].Pointer != "/a/b~1c" {
		t.Errorf("Pointer: got %q, want %q", kids[0].Pointer, "/a/b~1c")
	}
	checkSpan(kids[0], 12, 16)

	// Duplicated keys get no location, since neither member owns the pointer.
	const dup = `{"k":1,"k":2,"z":3}`
	dm, err := srcmap.Build([]byte(dup))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	dn := (&project.Projector{Map: dm}).Project(mustParse(t, dup))
	if len(dn) != 3 {
		t.Fatalf("Project: got %d nodes, want 3", len(dn))
	}
	for _, n := range dn[:2] {
		if n.Location != nil {
			t.Errorf("Node %q: unexpected location %v", n.Label, n.Location)
		}
	}
	checkSpan(dn[2], 17, 18)

	// Without a map, no locations are attached.
	for _, n := range project.Project(mustParse(t, text)) {
		if n.Location != nil {
			t.Errorf("Node %q: unexpected location %v", n.Label, n.Location)
		}
	}
}

func TestStateString(t *testing.T) {
	var got []string
	for _, s := range []project.State{project.None, project.Collapsed, project.Expanded, 9} {
		got = append(got, s.String())
	}
	if diff := cmp.Diff("none collapsed expanded invalid state", strings.Join(got, " ")); diff != "" {
		t.Errorf("State strings (-want, +got):\n%s", diff)
	}
}
