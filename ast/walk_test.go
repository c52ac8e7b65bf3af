package ast

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkVisitsTerminalsInSourceOrder(t *testing.T) {
	_, expr := buildConditional()
	var tokens []string
	err := Walk(expr, func(n Node) error {
		if term, ok := n.(TerminalNode); ok {
			tokens = append(tokens, term.Text())
		}
		return nil
	}, nil)
	require.NoError(t, err)
	want := []string{"a", "!=", "null", "?", "a", ".", "b", ":", "null"}
	assert.Empty(t, cmp.Diff(want, tokens))
}

func TestWalkEnterExitPairing(t *testing.T) {
	_, expr := buildConditional()
	depth, maxDepth := 0, 0
	err := Walk(expr, func(Node) error {
		depth++
		if depth > maxDepth {
			maxDepth = depth
		}
		return nil
	}, func(Node) error {
		depth--
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 0, depth)
	// conditional -> binary -> terminal
	assert.Equal(t, 3, maxDepth)
}

func TestWalkAbortsOnError(t *testing.T) {
	_, expr := buildConditional()
	sentinel := errors.New("stop")
	visited := 0
	err := Walk(expr, func(n Node) error {
		if _, ok := n.(TerminalNode); !ok {
			return nil
		}
		visited++
		if visited == 3 {
			return sentinel
		}
		return nil
	}, nil)
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 3, visited)
}

func TestWalkSwitchExpression(t *testing.T) {
	syn := func() TokenInfo { return Synthetic("", "") }
	arm := NewSwitchExprArmNode(
		NewConstantPatternNode(NewLiteralNode("1", syn())),
		NewWhenClauseNode(NewKeywordNode("when", syn()), NewIdentNode("flag", syn())),
		NewTokenNode("=>", syn()),
		NewLiteralNode("\"one\"", syn()),
	)
	expr := NewSwitchExprNode(
		NewIdentNode("x", syn()),
		NewKeywordNode("switch", syn()),
		NewRuneNode('{', syn()),
		[]*SwitchExprArmNode{arm},
		nil,
		NewRuneNode('}', syn()),
	)
	var tokens []string
	require.NoError(t, Walk(expr, func(n Node) error {
		if term, ok := n.(TerminalNode); ok {
			tokens = append(tokens, term.Text())
		}
		return nil
	}, nil))
	want := []string{"x", "switch", "{", "1", "when", "flag", "=>", "\"one\"", "}"}
	assert.Empty(t, cmp.Diff(want, tokens))
}
