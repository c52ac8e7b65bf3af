package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceInfoPos(t *testing.T) {
	info := NewSourceInfo("body.cs", []byte("abc\ndef ghi\njkl"))

	pos := info.Pos(0)
	assert.Equal(t, SourcePos{Filename: "body.cs", Line: 1, Col: 1, Offset: 0}, pos)

	pos = info.Pos(8)
	assert.Equal(t, SourcePos{Filename: "body.cs", Line: 2, Col: 5, Offset: 8}, pos)

	pos = info.Pos(12)
	assert.Equal(t, SourcePos{Filename: "body.cs", Line: 3, Col: 1, Offset: 12}, pos)
}

func TestSourceInfoPosCountsDisplayWidth(t *testing.T) {
	// the CJK character is two columns wide, the combining accent zero
	info := NewSourceInfo("body.cs", []byte("你x́y"))
	pos := info.Pos(int32(len("你x́")))
	assert.Equal(t, 4, pos.Col)
}

func TestSourceInfoPosOutOfRange(t *testing.T) {
	info := NewSourceInfo("body.cs", []byte("abc"))
	assert.Equal(t, UnknownPos, info.Pos(-1))
	assert.Equal(t, UnknownPos, info.Pos(4))
}

func TestSourceInfoSpanText(t *testing.T) {
	info := NewSourceInfo("body.cs", []byte("a?.b?.c"))
	assert.Equal(t, "a?.b?.c", info.SpanText(Span{Start: 0, End: 7}))
	assert.Equal(t, "b?.c", info.SpanText(Span{Start: 3, End: 7}))
	assert.Equal(t, "", info.SpanText(InvalidSpan))
	assert.Equal(t, "", info.SpanText(Span{Start: 0, End: 8}))
}

func TestSourcePosString(t *testing.T) {
	assert.Equal(t, "body.cs:2:5", SourcePos{Filename: "body.cs", Line: 2, Col: 5}.String())
	assert.Equal(t, "2:5", SourcePos{Line: 2, Col: 5}.String())
	assert.Equal(t, "<unknown>", UnknownPos.String())
}
