package ast

// Walk conducts a walk of the tree rooted at the given node, visiting nodes
// in source order. The enter function, if not nil, is invoked for a node
// before any of its children; the exit function, if not nil, is invoked
// after all of its children. If either function returns an error, the walk
// aborts immediately and returns that error.
func Walk(root Node, enter, exit func(Node) error) error {
	if enter != nil {
		if err := enter(root); err != nil {
			return err
		}
	}
	for _, child := range children(root) {
		if err := Walk(child, enter, exit); err != nil {
			return err
		}
	}
	if exit != nil {
		return exit(root)
	}
	return nil
}

// children returns the node's direct children in source order. Terminals
// have none.
func children(n Node) []Node {
	switch n := n.(type) {
	case *ThisExprNode:
		return []Node{n.Keyword}
	case *BaseExprNode:
		return []Node{n.Keyword}
	case *QualifiedNameNode:
		return []Node{n.Left, n.Dot, n.Right}
	case *MemberAccessExprNode:
		return []Node{n.Receiver, n.Dot, n.Name}
	case *ConditionalAccessExprNode:
		return []Node{n.Target, n.Question, n.WhenNotNull}
	case *MemberBindingExprNode:
		return []Node{n.Dot, n.Name}
	case *ElementBindingExprNode:
		return []Node{n.Args}
	case *ElementAccessExprNode:
		return []Node{n.Receiver, n.Args}
	case *BracketedArgListNode:
		out := []Node{n.Open}
		out = appendInterleaved(out, n.Args, n.Commas)
		return append(out, n.Close)
	case *ArgListNode:
		out := []Node{n.Open}
		out = appendInterleaved(out, n.Args, n.Commas)
		return append(out, n.Close)
	case *InvocationExprNode:
		return []Node{n.Callee, n.Args}
	case *ParenExprNode:
		return []Node{n.Open, n.Expr, n.Close}
	case *BinaryExprNode:
		return []Node{n.Left, n.Op, n.Right}
	case *ConditionalExprNode:
		return []Node{n.Cond, n.Question, n.WhenTrue, n.Colon, n.WhenFalse}
	case *CastExprNode:
		return []Node{n.Open, n.Type, n.Close, n.Expr}
	case *TypeOfExprNode:
		return []Node{n.Keyword, n.Open, n.Type, n.Close}
	case *AssignmentExprNode:
		return []Node{n.Left, n.Eq, n.Right}
	case *InitializerExprNode:
		out := []Node{n.Open}
		out = appendInterleaved(out, n.Exprs, n.Commas)
		return append(out, n.Close)
	case *ObjectCreationExprNode:
		out := []Node{n.Keyword, n.Type}
		if n.Args != nil {
			out = append(out, n.Args)
		}
		if n.Initializer != nil {
			out = append(out, n.Initializer)
		}
		return out
	case *PredefinedTypeNode:
		return []Node{n.Keyword}
	case *NullableTypeNode:
		return []Node{n.Element, n.Question}
	case *SwitchExprNode:
		out := []Node{n.Governing, n.Keyword, n.Open}
		for i, arm := range n.Arms {
			out = append(out, arm)
			if i < len(n.Commas) {
				out = append(out, n.Commas[i])
			}
		}
		return append(out, n.Close)
	case *SwitchExprArmNode:
		out := []Node{n.Pattern}
		if n.When != nil {
			out = append(out, n.When)
		}
		return append(out, n.Arrow, n.Result)
	case *WhenClauseNode:
		return []Node{n.Keyword, n.Cond}
	case *ConstantPatternNode:
		return []Node{n.Expr}
	case *DeclarationPatternNode:
		return []Node{n.Type, n.Designation}
	case *DiscardPatternNode:
		return []Node{n.Token}
	case *RelationalPatternNode:
		return []Node{n.Op, n.Expr}
	case *InterpolatedStringExprNode:
		out := []Node{n.Open}
		for _, part := range n.Parts {
			out = append(out, part)
		}
		return append(out, n.Close)
	case *InterpolationNode:
		out := []Node{n.Open, n.Expr}
		if n.Format != nil {
			out = append(out, n.Format)
		}
		return append(out, n.Close)
	default:
		return nil
	}
}

func appendInterleaved(dst []Node, exprs []ExprNode, commas []*RuneNode) []Node {
	for i, e := range exprs {
		dst = append(dst, e)
		if i < len(commas) {
			dst = append(dst, commas[i])
		}
	}
	return dst
}
