package rewriter

import (
	"errors"
	"strings"

	"github.com/exprlift/exprlift/ast"
)

// ThisParameterName is the canonical name of the synthesized parameter that
// stands in for the enclosing instance in a rewritten expression.
const ThisParameterName = "@this"

func synthIdent(val, leading, trailing string) *ast.IdentNode {
	return ast.NewIdentNode(val, ast.Synthetic(leading, trailing))
}

func synthKeyword(val, leading, trailing string) *ast.KeywordNode {
	return ast.NewKeywordNode(val, ast.Synthetic(leading, trailing))
}

func synthRune(r rune, leading, trailing string) *ast.RuneNode {
	return ast.NewRuneNode(r, ast.Synthetic(leading, trailing))
}

func synthToken(val, leading, trailing string) *ast.TokenNode {
	return ast.NewTokenNode(val, ast.Synthetic(leading, trailing))
}

func synthLiteral(raw string) *ast.LiteralNode {
	return ast.NewLiteralNode(raw, ast.Synthetic("", ""))
}

// synthParen wraps expr in tight parentheses.
func synthParen(expr ast.ExprNode) *ast.ParenExprNode {
	return ast.NewParenExprNode(synthRune('(', "", ""), expr, synthRune(')', "", ""))
}

// synthName builds a simple or qualified name from a dotted display string
// such as "My.Namespace.Orders". The given leading trivia attaches to the
// first identifier and the trailing trivia to the last.
func synthName(display, leading, trailing string) ast.NameNode {
	parts := strings.Split(display, ".")
	trailFor := func(i int) string {
		if i == len(parts)-1 {
			return trailing
		}
		return ""
	}
	var name ast.NameNode = synthIdent(parts[0], leading, trailFor(0))
	for i := 1; i < len(parts); i++ {
		name = ast.NewQualifiedNameNode(name, synthRune('.', "", ""), synthIdent(parts[i], "", trailFor(i)))
	}
	return name
}

// synthType builds type syntax from a display string, peeling a trailing
// nullable annotation into a NullableTypeNode.
func synthType(display string) ast.TypeNode {
	if base, ok := strings.CutSuffix(display, "?"); ok {
		return ast.NewNullableTypeNode(synthType(base), synthRune('?', "", ""))
	}
	return synthName(display, "", "")
}

var errStopWalk = errors.New("stop walk")

// firstTerminal returns the first terminal in source order under n, or nil
// if there is none.
func firstTerminal(n ast.Node) ast.TerminalNode {
	var first ast.TerminalNode
	_ = ast.Walk(n, func(c ast.Node) error {
		if t, ok := c.(ast.TerminalNode); ok {
			first = t
			return errStopWalk
		}
		return nil
	}, nil)
	return first
}

// leadingTrivia returns the leading trivia of the expression's first token.
func leadingTrivia(expr ast.ExprNode) string {
	if t := firstTerminal(expr); t != nil {
		return t.LeadingTrivia()
	}
	return ""
}

// withoutLeadingTrivia returns expr with the leading trivia of its first
// token removed. Node kinds the rewriter never splices are returned
// unchanged.
func withoutLeadingTrivia(expr ast.ExprNode) ast.ExprNode {
	switch n := expr.(type) {
	case *ast.IdentNode:
		if n.LeadingTrivia() == "" {
			return n
		}
		return n.WithTrivia("", n.TrailingTrivia())
	case *ast.LiteralNode:
		if n.LeadingTrivia() == "" {
			return n
		}
		return n.WithTrivia("", n.TrailingTrivia())
	case *ast.ThisExprNode:
		if n.Keyword.LeadingTrivia() == "" {
			return n
		}
		return ast.NewThisExprNode(n.Keyword.WithTrivia("", n.Keyword.TrailingTrivia()))
	case *ast.BaseExprNode:
		if n.Keyword.LeadingTrivia() == "" {
			return n
		}
		return ast.NewBaseExprNode(n.Keyword.WithTrivia("", n.Keyword.TrailingTrivia()))
	case *ast.ParenExprNode:
		if n.Open.LeadingTrivia() == "" {
			return n
		}
		return ast.NewParenExprNode(n.Open.WithTrivia("", n.Open.TrailingTrivia()), n.Expr, n.Close)
	case *ast.QualifiedNameNode:
		left := withoutLeadingTrivia(n.Left)
		if left == ast.ExprNode(n.Left) {
			return n
		}
		return ast.NewQualifiedNameNode(left.(ast.NameNode), n.Dot, n.Right)
	case *ast.MemberAccessExprNode:
		recv := withoutLeadingTrivia(n.Receiver)
		if recv == n.Receiver {
			return n
		}
		return ast.NewMemberAccessExprNode(recv, n.Dot, n.Name)
	case *ast.InvocationExprNode:
		callee := withoutLeadingTrivia(n.Callee)
		if callee == n.Callee {
			return n
		}
		return ast.NewInvocationExprNode(callee, n.Args)
	case *ast.ElementAccessExprNode:
		recv := withoutLeadingTrivia(n.Receiver)
		if recv == n.Receiver {
			return n
		}
		return ast.NewElementAccessExprNode(recv, n.Args)
	case *ast.BinaryExprNode:
		left := withoutLeadingTrivia(n.Left)
		if left == n.Left {
			return n
		}
		return ast.NewBinaryExprNode(left, n.Op, n.Right)
	case *ast.ConditionalExprNode:
		cond := withoutLeadingTrivia(n.Cond)
		if cond == n.Cond {
			return n
		}
		return ast.NewConditionalExprNode(cond, n.Question, n.WhenTrue, n.Colon, n.WhenFalse)
	case *ast.CastExprNode:
		if n.Open.LeadingTrivia() == "" {
			return n
		}
		return ast.NewCastExprNode(n.Open.WithTrivia("", n.Open.TrailingTrivia()), n.Type, n.Close, n.Expr)
	default:
		return expr
	}
}

// withoutTrailingTrivia returns expr with the trailing trivia of its last
// token removed. Node kinds the rewriter never splices are returned
// unchanged.
func withoutTrailingTrivia(expr ast.ExprNode) ast.ExprNode {
	switch n := expr.(type) {
	case *ast.IdentNode:
		if n.TrailingTrivia() == "" {
			return n
		}
		return n.WithTrivia(n.LeadingTrivia(), "")
	case *ast.LiteralNode:
		if n.TrailingTrivia() == "" {
			return n
		}
		return n.WithTrivia(n.LeadingTrivia(), "")
	case *ast.ThisExprNode:
		if n.Keyword.TrailingTrivia() == "" {
			return n
		}
		return ast.NewThisExprNode(n.Keyword.WithTrivia(n.Keyword.LeadingTrivia(), ""))
	case *ast.BaseExprNode:
		if n.Keyword.TrailingTrivia() == "" {
			return n
		}
		return ast.NewBaseExprNode(n.Keyword.WithTrivia(n.Keyword.LeadingTrivia(), ""))
	case *ast.ParenExprNode:
		if n.Close.TrailingTrivia() == "" {
			return n
		}
		return ast.NewParenExprNode(n.Open, n.Expr, n.Close.WithTrivia(n.Close.LeadingTrivia(), ""))
	case *ast.QualifiedNameNode:
		if n.Right.TrailingTrivia() == "" {
			return n
		}
		return ast.NewQualifiedNameNode(n.Left, n.Dot, n.Right.WithTrivia(n.Right.LeadingTrivia(), ""))
	case *ast.MemberAccessExprNode:
		if n.Name.TrailingTrivia() == "" {
			return n
		}
		return ast.NewMemberAccessExprNode(n.Receiver, n.Dot, n.Name.WithTrivia(n.Name.LeadingTrivia(), ""))
	case *ast.InvocationExprNode:
		if n.Args.Close.TrailingTrivia() == "" {
			return n
		}
		args := ast.NewArgListNode(n.Args.Open, n.Args.Args, n.Args.Commas, n.Args.Close.WithTrivia(n.Args.Close.LeadingTrivia(), ""))
		return ast.NewInvocationExprNode(n.Callee, args)
	case *ast.ElementAccessExprNode:
		if n.Args.Close.TrailingTrivia() == "" {
			return n
		}
		args := ast.NewBracketedArgListNode(n.Args.Open, n.Args.Args, n.Args.Commas, n.Args.Close.WithTrivia(n.Args.Close.LeadingTrivia(), ""))
		return ast.NewElementAccessExprNode(n.Receiver, args)
	case *ast.BinaryExprNode:
		right := withoutTrailingTrivia(n.Right)
		if right == n.Right {
			return n
		}
		return ast.NewBinaryExprNode(n.Left, n.Op, right)
	case *ast.ConditionalExprNode:
		whenFalse := withoutTrailingTrivia(n.WhenFalse)
		if whenFalse == n.WhenFalse {
			return n
		}
		return ast.NewConditionalExprNode(n.Cond, n.Question, n.WhenTrue, n.Colon, whenFalse)
	case *ast.CastExprNode:
		e := withoutTrailingTrivia(n.Expr)
		if e == n.Expr {
			return n
		}
		return ast.NewCastExprNode(n.Open, n.Type, n.Close, e)
	default:
		return expr
	}
}

// withoutOuterTrivia strips the trivia on both edges of the expression.
func withoutOuterTrivia(expr ast.ExprNode) ast.ExprNode {
	return withoutTrailingTrivia(withoutLeadingTrivia(expr))
}

// typeAppendTrailing returns the type with extra trailing trivia appended
// after its last token.
func typeAppendTrailing(t ast.TypeNode, trivia string) ast.TypeNode {
	if trivia == "" {
		return t
	}
	switch n := t.(type) {
	case *ast.IdentNode:
		return n.WithTrivia(n.LeadingTrivia(), n.TrailingTrivia()+trivia)
	case *ast.QualifiedNameNode:
		right := n.Right.WithTrivia(n.Right.LeadingTrivia(), n.Right.TrailingTrivia()+trivia)
		return ast.NewQualifiedNameNode(n.Left, n.Dot, right)
	case *ast.PredefinedTypeNode:
		kw := n.Keyword.WithTrivia(n.Keyword.LeadingTrivia(), n.Keyword.TrailingTrivia()+trivia)
		return ast.NewPredefinedTypeNode(kw)
	case *ast.NullableTypeNode:
		q := n.Question.WithTrivia(n.Question.LeadingTrivia(), n.Question.TrailingTrivia()+trivia)
		return ast.NewNullableTypeNode(n.Element, q)
	default:
		return t
	}
}
