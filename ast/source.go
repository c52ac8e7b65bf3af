package ast

import (
	"fmt"
	"sort"

	"github.com/rivo/uniseg"
)

// SourcePos identifies a location in a source file. Line and Col are
// one-based; Col counts display width, so multi-byte and wide characters
// advance it the way they render, not by their byte length. Offset is the
// zero-based byte offset.
type SourcePos struct {
	Filename  string
	Line, Col int
	Offset    int
}

func (pos SourcePos) String() string {
	if pos.Line <= 0 || pos.Col <= 0 {
		return pos.Filename
	}
	if pos.Filename == "" {
		return fmt.Sprintf("%d:%d", pos.Line, pos.Col)
	}
	return fmt.Sprintf("%s:%d:%d", pos.Filename, pos.Line, pos.Col)
}

// UnknownPos is returned for nodes with no backing source, such as nodes
// synthesized during rewriting.
var UnknownPos = SourcePos{Filename: "<unknown>"}

// SourceInfo contains information about the contents of the source file an
// expression tree was built from. It translates the compact byte offsets
// stored on terminal nodes into full positions for diagnostics.
type SourceInfo struct {
	// The name of the source file.
	name string
	// The raw contents of the source file.
	data []byte
	// The zero-based byte offset of each line. The value at index 0 is
	// always zero; the value at index 1 is the offset at which the second
	// line begins. Etc.
	lines []int
}

// NewSourceInfo creates a new instance for the given file.
func NewSourceInfo(name string, data []byte) *SourceInfo {
	lines := []int{0}
	for i, b := range data {
		if b == '\n' {
			lines = append(lines, i+1)
		}
	}
	return &SourceInfo{name: name, data: data, lines: lines}
}

func (s *SourceInfo) Name() string {
	return s.name
}

// Pos translates a byte offset into a full source position. Negative
// offsets (synthesized nodes) yield UnknownPos.
func (s *SourceInfo) Pos(offset int32) SourcePos {
	if offset < 0 || int(offset) > len(s.data) {
		return UnknownPos
	}
	// find the line that contains the offset: the last line whose start
	// is <= offset
	line := sort.Search(len(s.lines), func(i int) bool {
		return s.lines[i] > int(offset)
	}) - 1
	col := uniseg.StringWidth(string(s.data[s.lines[line]:offset])) + 1
	return SourcePos{
		Filename: s.name,
		Line:     line + 1,
		Col:      col,
		Offset:   int(offset),
	}
}

// SpanText returns the source bytes covered by the given span, or the empty
// string if the span is invalid or out of range.
func (s *SourceInfo) SpanText(sp Span) string {
	if !sp.Valid() || int(sp.End) > len(s.data) {
		return ""
	}
	return string(s.data[sp.Start:sp.End])
}
