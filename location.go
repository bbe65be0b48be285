// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jexplore

import (
	"fmt"
	"sort"
)

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

func (s Span) String() string { return fmt.Sprintf("%d..%d", s.Pos, s.End) }

// Len reports the length of s in bytes.
func (s Span) Len() int { return s.End - s.Pos }

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// A Location describes the complete location of a range of source text,
// including line and column offsets.
type Location struct {
	Span
	First, Last LineCol
}

func (loc Location) String() string { return fmt.Sprintf("%s-%s", loc.First, loc.Last) }

// A LineIndex maps byte offsets in a source text to line and column
// positions. The zero value indexes an empty text.
type LineIndex struct {
	starts []int // offsets of the first byte of each line after the first
	size   int
}

// NewLineIndex constructs a LineIndex for text.
func NewLineIndex(text []byte) *LineIndex {
	idx := &LineIndex{size: len(text)}
	for i, b := range text {
		if b == '\n' {
			idx.starts = append(idx.starts, i+1)
		}
	}
	return idx
}

// Lines reports the number of lines in the indexed text.
func (x *LineIndex) Lines() int { return len(x.starts) + 1 }

// LineCol returns the line and column of offset pos. Offsets outside the
// text are clamped to its bounds.
func (x *LineIndex) LineCol(pos int) LineCol {
	pos = max(0, min(pos, x.size))

	// The number of line starts at or before pos is the 0-based line number.
	n := sort.SearchInts(x.starts, pos+1)
	lc := LineCol{Line: n + 1, Column: pos}
	if n > 0 {
		lc.Column = pos - x.starts[n-1]
	}
	return lc
}

// Locate returns the complete location of the span from pos to end.  The Last
// position is that of the final byte of the span, or of pos if the span is
// empty.
func (x *LineIndex) Locate(pos, end int) Location {
	last := end - 1
	if last < pos {
		last = pos
	}
	return Location{
		Span:  Span{Pos: pos, End: end},
		First: x.LineCol(pos),
		Last:  x.LineCol(last),
	}
}
