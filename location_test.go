// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jexplore_test

import (
	"testing"

	"github.com/creachadair/jexplore"
	"github.com/google/go-cmp/cmp"
)

func TestLineIndex(t *testing.T) {
	const input = "{\n  \"a\": 1,\n\n  \"b\": [2]\n}"
	idx := jexplore.NewLineIndex([]byte(input))
	if got, want := idx.Lines(), 5; got != want {
		t.Errorf("Lines: got %d, want %d", got, want)
	}

	tests := []struct {
		pos  int
		want jexplore.LineCol
	}{
		{-5, jexplore.LineCol{Line: 1, Column: 0}},
		{0, jexplore.LineCol{Line: 1, Column: 0}},
		{1, jexplore.LineCol{Line: 1, Column: 1}}, // the newline itself
		{2, jexplore.LineCol{Line: 2, Column: 0}},
		{4, jexplore.LineCol{Line: 2, Column: 2}},
		{12, jexplore.LineCol{Line: 3, Column: 0}},
		{15, jexplore.LineCol{Line: 4, Column: 2}},
		{len(input) - 1, jexplore.LineCol{Line: 5, Column: 0}},
		{len(input) + 10, jexplore.LineCol{Line: 5, Column: 1}},
	}
	for _, tc := range tests {
		if got := idx.LineCol(tc.pos); got != tc.want {
			t.Errorf("LineCol(%d): got %v, want %v", tc.pos, got, tc.want)
		}
	}
}

func TestLocate(t *testing.T) {
	const input = "[1,\n 22]"
	idx := jexplore.NewLineIndex([]byte(input))

	tests := []struct {
		pos, end int
		want     jexplore.Location
	}{
		{0, len(input), jexplore.Location{
			Span:  jexplore.Span{Pos: 0, End: 8},
			First: jexplore.LineCol{Line: 1, Column: 0},
			Last:  jexplore.LineCol{Line: 2, Column: 3},
		}},
		{5, 7, jexplore.Location{
			Span:  jexplore.Span{Pos: 5, End: 7},
			First: jexplore.LineCol{Line: 2, Column: 1},
			Last:  jexplore.LineCol{Line: 2, Column: 2},
		}},
		{3, 3, jexplore.Location{
			Span:  jexplore.Span{Pos: 3, End: 3},
			First: jexplore.LineCol{Line: 1, Column: 3},
			Last:  jexplore.LineCol{Line: 1, Column: 3},
		}},
	}
	for _, tc := range tests {
		got := idx.Locate(tc.pos, tc.end)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Locate(%d, %d) (-want, +got):\n%s", tc.pos, tc.end, diff)
		}
	}
	if got, want := idx.Locate(5, 7).String(), "2:1-2:2"; got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
}

func TestEmptyIndex(t *testing.T) {
	var idx jexplore.LineIndex
	if got, want := idx.LineCol(3), (jexplore.LineCol{Line: 1, Column: 0}); got != want {
		t.Errorf("LineCol: got %v, want %v", got, want)
	}
	if got := idx.Lines(); got != 1 {
		t.Errorf("Lines: got %d, want 1", got)
	}
}
