package rewriter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/exprlift/exprlift/ast"
)

func TestSubstituteBareIdentifier(t *testing.T) {
	b := newBuilder(t, "s")
	repl := synthIdent("replaced", "", "")
	got := substituteIdentifier(b.ident("s"), "s", repl)
	assert.Same(t, ast.ExprNode(repl), got)
}

func TestSubstituteReceiverButNotMemberName(t *testing.T) {
	// in "s.s" only the receiver is a use of the variable; the name after
	// the dot refers to a member
	b := newBuilder(t, "s.s")
	expr := ast.NewMemberAccessExprNode(b.ident("s"), b.rn('.'), b.ident("s"))
	got := substituteIdentifier(expr, "s", synthIdent("r", "", ""))
	assert.Equal(t, "r.s", ast.Text(got))
}

func TestSubstituteInsideCompoundExpressions(t *testing.T) {
	b := newBuilder(t, "f(s) + a[s] + (s ? (int)s : s)")
	f := b.ident("f")
	call := ast.NewInvocationExprNode(f, ast.NewArgListNode(
		b.rn('('), []ast.ExprNode{b.ident("s")}, nil, b.rn(')', "", " ")))
	plus1 := b.tok("+", "", " ")
	elem := ast.NewElementAccessExprNode(b.ident("a"), ast.NewBracketedArgListNode(
		b.rn('['), []ast.ExprNode{b.ident("s")}, nil, b.rn(']', "", " ")))
	plus2 := b.tok("+", "", " ")
	paren := ast.NewParenExprNode(
		b.rn('('),
		ast.NewConditionalExprNode(
			b.ident("s"),
			b.rn('?', " ", " "),
			ast.NewCastExprNode(b.rn('('), ast.NewPredefinedTypeNode(b.kw("int")), b.rn(')'), b.ident("s")),
			b.rn(':', " ", " "),
			b.ident("s")),
		b.rn(')'))
	expr := ast.NewBinaryExprNode(ast.NewBinaryExprNode(call, plus1, elem), plus2, paren)

	got := substituteIdentifier(expr, "s", synthIdent("r", "", ""))
	assert.Equal(t, "f(r) + a[r] + (r ? (int)r : r)", ast.Text(got))
}

func TestSubstituteInterpolationHole(t *testing.T) {
	b := newBuilder(t, `$"{s}"`)
	expr := ast.NewInterpolatedStringExprNode(b.tok(`$"`), []ast.InterpolatedContentNode{
		ast.NewInterpolationNode(b.rn('{'), b.ident("s"), nil, b.rn('}')),
	}, b.tok(`"`))
	got := substituteIdentifier(expr, "s", synthIdent("r", "", ""))
	assert.Equal(t, `$"{r}"`, ast.Text(got))
}

func TestSubstituteNoMatchReturnsSameTree(t *testing.T) {
	b := newBuilder(t, "a + b")
	expr := ast.NewBinaryExprNode(b.ident("a", "", " "), b.tok("+", "", " "), b.ident("b"))
	got := substituteIdentifier(expr, "s", synthIdent("r", "", ""))
	assert.Same(t, ast.ExprNode(expr), got)
}
