package rewriter

import "github.com/exprlift/exprlift/ast"

// identifierSubstituter replaces every occurrence of one identifier with a
// fixed replacement expression, whether the identifier stands alone or is
// the ultimate receiver of an access chain.
//
// Matching is purely textual. The substituter performs no semantic lookups
// and has no notion of scope, so it is only safe on fragments where the
// name cannot be shadowed; switch-arm results qualify because an arm
// introduces exactly one variable.
type identifierSubstituter struct {
	name        string
	replacement ast.ExprNode
}

// substituteIdentifier returns expr with every occurrence of name replaced.
// Member-access names to the right of a dot are left alone; they are member
// names, not uses of the variable.
func substituteIdentifier(expr ast.ExprNode, name string, replacement ast.ExprNode) ast.ExprNode {
	s := &identifierSubstituter{name: name, replacement: replacement}
	return s.visit(expr)
}

func (s *identifierSubstituter) visit(expr ast.ExprNode) ast.ExprNode {
	switch n := expr.(type) {
	case *ast.IdentNode:
		if n.Val == s.name {
			return s.replacement
		}
		return n
	case *ast.MemberAccessExprNode:
		if recv := s.visit(n.Receiver); recv != n.Receiver {
			return ast.NewMemberAccessExprNode(recv, n.Dot, n.Name)
		}
		return n
	case *ast.InvocationExprNode:
		callee := s.visit(n.Callee)
		args := s.visitArgs(n.Args)
		if callee == n.Callee && args == n.Args {
			return n
		}
		return ast.NewInvocationExprNode(callee, args)
	case *ast.ElementAccessExprNode:
		recv := s.visit(n.Receiver)
		args, changed := s.visitExprs(n.Args.Args)
		if recv == n.Receiver && !changed {
			return n
		}
		list := ast.NewBracketedArgListNode(n.Args.Open, args, n.Args.Commas, n.Args.Close)
		return ast.NewElementAccessExprNode(recv, list)
	case *ast.ParenExprNode:
		if inner := s.visit(n.Expr); inner != n.Expr {
			return ast.NewParenExprNode(n.Open, inner, n.Close)
		}
		return n
	case *ast.BinaryExprNode:
		left, right := s.visit(n.Left), s.visit(n.Right)
		if left == n.Left && right == n.Right {
			return n
		}
		return ast.NewBinaryExprNode(left, n.Op, right)
	case *ast.ConditionalExprNode:
		cond, whenTrue, whenFalse := s.visit(n.Cond), s.visit(n.WhenTrue), s.visit(n.WhenFalse)
		if cond == n.Cond && whenTrue == n.WhenTrue && whenFalse == n.WhenFalse {
			return n
		}
		return ast.NewConditionalExprNode(cond, n.Question, whenTrue, n.Colon, whenFalse)
	case *ast.CastExprNode:
		if inner := s.visit(n.Expr); inner != n.Expr {
			return ast.NewCastExprNode(n.Open, n.Type, n.Close, inner)
		}
		return n
	case *ast.InterpolatedStringExprNode:
		return s.visitInterpolated(n)
	default:
		return expr
	}
}

func (s *identifierSubstituter) visitArgs(list *ast.ArgListNode) *ast.ArgListNode {
	args, changed := s.visitExprs(list.Args)
	if !changed {
		return list
	}
	return ast.NewArgListNode(list.Open, args, list.Commas, list.Close)
}

func (s *identifierSubstituter) visitExprs(exprs []ast.ExprNode) ([]ast.ExprNode, bool) {
	out := exprs
	changed := false
	for i, e := range exprs {
		v := s.visit(e)
		if v != e && !changed {
			out = make([]ast.ExprNode, len(exprs))
			copy(out, exprs)
			changed = true
		}
		if changed {
			out[i] = v
		}
	}
	return out, changed
}

func (s *identifierSubstituter) visitInterpolated(n *ast.InterpolatedStringExprNode) ast.ExprNode {
	parts := n.Parts
	changed := false
	for i, part := range n.Parts {
		interp, ok := part.(*ast.InterpolationNode)
		if !ok {
			continue
		}
		e := s.visit(interp.Expr)
		if e == interp.Expr {
			continue
		}
		if !changed {
			parts = make([]ast.InterpolatedContentNode, len(n.Parts))
			copy(parts, n.Parts)
			changed = true
		}
		parts[i] = ast.NewInterpolationNode(interp.Open, e, interp.Format, interp.Close)
	}
	if !changed {
		return n
	}
	return ast.NewInterpolatedStringExprNode(n.Open, parts, n.Close)
}
