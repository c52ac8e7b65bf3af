package exprlift

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exprlift/exprlift/ast"
	"github.com/exprlift/exprlift/reporter"
	"github.com/exprlift/exprlift/rewriter"
	"github.com/exprlift/exprlift/semantic"
)

var orderService = &semantic.TypeRef{FullyQualifiedName: "My.App.OrderService"}

func at(offset int32) ast.TokenInfo {
	return ast.TokenInfo{Offset: offset}
}

// thisNameBody is a tree for "this.Name".
func thisNameBody() Body {
	expr := ast.NewMemberAccessExprNode(
		ast.NewThisExprNode(ast.NewKeywordNode("this", at(0))),
		ast.NewRuneNode('.', at(4)),
		ast.NewIdentNode("Name", at(5)))
	return Body{
		Expr:       expr,
		Model:      &semantic.Table{},
		TargetType: orderService,
		Info:       ast.NewSourceInfo("body0.cs", []byte("this.Name")),
	}
}

// condAccessBody is a tree for "a?.b".
func condAccessBody() Body {
	expr := ast.NewConditionalAccessExprNode(
		ast.NewIdentNode("a", at(0)),
		ast.NewRuneNode('?', at(1)),
		ast.NewMemberBindingExprNode(ast.NewRuneNode('.', at(2)), ast.NewIdentNode("b", at(3))))
	return Body{
		Expr:       expr,
		Model:      &semantic.Table{},
		TargetType: orderService,
		Info:       ast.NewSourceInfo("body1.cs", []byte("a?.b")),
	}
}

// badSwitchBody is a tree for `x switch { > 10 => "big" }`, which no mode
// can rewrite.
func badSwitchBody() Body {
	src := `x switch { > 10 => "big" }`
	arm := ast.NewSwitchExprArmNode(
		ast.NewRelationalPatternNode(ast.NewTokenNode(">", ast.TokenInfo{Offset: 11, Trailing: " "}), ast.NewLiteralNode("10", ast.TokenInfo{Offset: 13, Trailing: " "})),
		nil,
		ast.NewTokenNode("=>", ast.TokenInfo{Offset: 16, Trailing: " "}),
		ast.NewLiteralNode(`"big"`, ast.TokenInfo{Offset: 19, Trailing: " "}))
	expr := ast.NewSwitchExprNode(
		ast.NewIdentNode("x", ast.TokenInfo{Offset: 0, Trailing: " "}),
		ast.NewKeywordNode("switch", ast.TokenInfo{Offset: 2, Trailing: " "}),
		ast.NewRuneNode('{', ast.TokenInfo{Offset: 9, Trailing: " "}),
		[]*ast.SwitchExprArmNode{arm},
		nil,
		ast.NewRuneNode('}', ast.TokenInfo{Offset: 25}))
	return Body{
		Expr:       expr,
		Model:      &semantic.Table{},
		TargetType: orderService,
		Info:       ast.NewSourceInfo("body2.cs", []byte(src)),
	}
}

func TestRewriterBatch(t *testing.T) {
	r := &Rewriter{Mode: rewriter.NullConditionalIgnore}
	got, err := r.Rewrite(context.Background(), thisNameBody(), condAccessBody())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "@this.Name", ast.Text(got[0]))
	assert.Equal(t, "a.b", ast.Text(got[1]))
}

func TestRewriterEmptyBatch(t *testing.T) {
	r := &Rewriter{}
	got, err := r.Rewrite(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRewriterSerialExecution(t *testing.T) {
	r := &Rewriter{Mode: rewriter.NullConditionalIgnore, MaxParallelism: 1}
	bodies := make([]Body, 8)
	for i := range bodies {
		bodies[i] = thisNameBody()
	}
	got, err := r.Rewrite(context.Background(), bodies...)
	require.NoError(t, err)
	require.Len(t, got, len(bodies))
	for _, e := range got {
		assert.Equal(t, "@this.Name", ast.Text(e))
	}
}

func TestRewriterReportedDiagnosticsFailBatch(t *testing.T) {
	var reported []reporter.ErrorWithPos
	rep := reporter.NewReporter(func(err reporter.ErrorWithPos) error {
		reported = append(reported, err)
		return nil
	}, nil)
	r := &Rewriter{Mode: rewriter.NullConditionalNone, Reporter: rep}
	_, err := r.Rewrite(context.Background(), thisNameBody(), condAccessBody())
	assert.ErrorIs(t, err, reporter.ErrInvalidExpression)
	require.Len(t, reported, 1)
	assert.Equal(t, "body1.cs", reported[0].GetPosition().Filename)
}

func TestRewriterFatalErrorAbortsBatch(t *testing.T) {
	rep := reporter.NewReporter(func(reporter.ErrorWithPos) error { return nil }, nil)
	r := &Rewriter{Mode: rewriter.NullConditionalIgnore, Reporter: rep}
	_, err := r.Rewrite(context.Background(), badSwitchBody())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported switch pattern")
}

func TestRewriterCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := &Rewriter{Mode: rewriter.NullConditionalIgnore}
	_, err := r.Rewrite(ctx, thisNameBody())
	assert.ErrorIs(t, err, context.Canceled)
}
