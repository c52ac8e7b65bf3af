package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildConditional returns a tree for the source "a != null ? a.b : null",
// with every byte of the source accounted for by token text or trivia.
func buildConditional() (string, ExprNode) {
	const src = "a != null ? a.b : null"
	at := func(off int32, trailing string) TokenInfo {
		return TokenInfo{Offset: off, Trailing: trailing}
	}
	cond := NewBinaryExprNode(
		NewIdentNode("a", at(0, " ")),
		NewTokenNode("!=", at(2, " ")),
		NewLiteralNode("null", at(5, " ")),
	)
	access := NewMemberAccessExprNode(
		NewIdentNode("a", at(12, "")),
		NewRuneNode('.', at(13, "")),
		NewIdentNode("b", at(14, " ")),
	)
	expr := NewConditionalExprNode(
		cond,
		NewRuneNode('?', at(10, " ")),
		access,
		NewRuneNode(':', at(16, " ")),
		NewLiteralNode("null", at(18, "")),
	)
	return src, expr
}

func TestTextRoundTrip(t *testing.T) {
	src, expr := buildConditional()
	assert.Equal(t, src, Text(expr))
}

func TestSpansCoverSource(t *testing.T) {
	src, expr := buildConditional()
	sp := expr.Span()
	require.True(t, sp.Valid())
	assert.Equal(t, Span{Start: 0, End: int32(len(src))}, sp)

	cond := expr.(*ConditionalExprNode).Cond
	assert.Equal(t, "a != null", src[cond.Span().Start:cond.Span().End])
}

func TestSynthesizedNodesHaveInvalidSpans(t *testing.T) {
	n := NewIdentNode("x", Synthetic(" ", " "))
	assert.Equal(t, InvalidSpan, n.Span())
	assert.False(t, n.Span().Valid())

	// a composite over synthesized children is itself unspanned
	access := NewMemberAccessExprNode(n, NewRuneNode('.', Synthetic("", "")), NewIdentNode("y", Synthetic("", "")))
	assert.Equal(t, InvalidSpan, access.Span())
}

func TestJoinSpansSkipsSynthesized(t *testing.T) {
	real := NewIdentNode("a", TokenInfo{Offset: 4})
	synth := NewIdentNode("b", Synthetic("", ""))
	access := NewMemberAccessExprNode(synth, NewRuneNode('.', Synthetic("", "")), real)
	assert.Equal(t, Span{Start: 4, End: 5}, access.Span())
}

func TestWithTriviaPreservesOffset(t *testing.T) {
	n := NewIdentNode("abc", TokenInfo{Offset: 7, Leading: " "})
	m := n.WithTrivia("", "\t")
	assert.Equal(t, n.Span(), m.Span())
	assert.Equal(t, "", m.LeadingTrivia())
	assert.Equal(t, "\t", m.TrailingTrivia())
	// the original is untouched
	assert.Equal(t, " ", n.LeadingTrivia())
}

func TestFactoriesPanicOnNil(t *testing.T) {
	assert.Panics(t, func() { NewMemberAccessExprNode(nil, NewRuneNode('.', Synthetic("", "")), NewIdentNode("x", Synthetic("", ""))) })
	assert.Panics(t, func() { NewIdentNode("", Synthetic("", "")) })
	assert.Panics(t, func() {
		NewArgListNode(NewRuneNode('(', Synthetic("", "")),
			[]ExprNode{NewIdentNode("a", Synthetic("", "")), NewIdentNode("b", Synthetic("", ""))},
			nil,
			NewRuneNode(')', Synthetic("", "")))
	})
}
