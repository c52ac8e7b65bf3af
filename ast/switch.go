package ast

// SwitchExprNode represents a switch expression:
//
//	governing switch { pattern1 => result1, pattern2 => result2, ... }
type SwitchExprNode struct {
	Governing ExprNode
	Keyword   *KeywordNode
	Open      *RuneNode
	Arms      []*SwitchExprArmNode
	Commas    []*RuneNode
	Close     *RuneNode
}

// NewSwitchExprNode creates a new *SwitchExprNode. Governing, keyword, open,
// and close are required, and there must be at least one arm. Commas must
// number one fewer than arms (a trailing comma is represented by equal
// counts).
func NewSwitchExprNode(governing ExprNode, keyword *KeywordNode, open *RuneNode, arms []*SwitchExprArmNode, commas []*RuneNode, close *RuneNode) *SwitchExprNode {
	if governing == nil {
		panic("governing is nil")
	}
	if keyword == nil {
		panic("keyword is nil")
	}
	if open == nil {
		panic("open is nil")
	}
	if close == nil {
		panic("close is nil")
	}
	if len(arms) == 0 {
		panic("arms is empty")
	}
	if len(commas) != len(arms)-1 && len(commas) != len(arms) {
		panic("commas must number one fewer than arms, or equal with a trailing comma")
	}
	return &SwitchExprNode{Governing: governing, Keyword: keyword, Open: open, Arms: arms, Commas: commas, Close: close}
}

func (n *SwitchExprNode) Span() Span { return joinSpans(n.Governing, n.Close) }
func (*SwitchExprNode) exprNode()    {}

// SwitchExprArmNode represents one arm of a switch expression:
//
//	pattern when cond => result
//
// The when clause is optional.
type SwitchExprArmNode struct {
	Pattern PatternNode
	When    *WhenClauseNode
	Arrow   *TokenNode
	Result  ExprNode
}

// NewSwitchExprArmNode creates a new *SwitchExprArmNode. Pattern, arrow, and
// result are required; when may be nil.
func NewSwitchExprArmNode(pattern PatternNode, when *WhenClauseNode, arrow *TokenNode, result ExprNode) *SwitchExprArmNode {
	if pattern == nil {
		panic("pattern is nil")
	}
	if arrow == nil {
		panic("arrow is nil")
	}
	if result == nil {
		panic("result is nil")
	}
	return &SwitchExprArmNode{Pattern: pattern, When: when, Arrow: arrow, Result: result}
}

func (n *SwitchExprArmNode) Span() Span {
	if n.When != nil {
		return joinSpans(n.Pattern, n.When, n.Arrow, n.Result)
	}
	return joinSpans(n.Pattern, n.Arrow, n.Result)
}

// WhenClauseNode represents the "when cond" guard of a switch expression arm.
type WhenClauseNode struct {
	Keyword *KeywordNode
	Cond    ExprNode
}

// NewWhenClauseNode creates a new *WhenClauseNode. Both arguments are
// required.
func NewWhenClauseNode(keyword *KeywordNode, cond ExprNode) *WhenClauseNode {
	if keyword == nil {
		panic("keyword is nil")
	}
	if cond == nil {
		panic("cond is nil")
	}
	return &WhenClauseNode{Keyword: keyword, Cond: cond}
}

func (n *WhenClauseNode) Span() Span { return joinSpans(n.Keyword, n.Cond) }

// ConstantPatternNode represents a constant pattern: the arm matches when
// the governing expression equals the constant.
type ConstantPatternNode struct {
	Expr ExprNode
}

var _ PatternNode = (*ConstantPatternNode)(nil)

// NewConstantPatternNode creates a new *ConstantPatternNode.
func NewConstantPatternNode(expr ExprNode) *ConstantPatternNode {
	if expr == nil {
		panic("expr is nil")
	}
	return &ConstantPatternNode{Expr: expr}
}

func (n *ConstantPatternNode) Span() Span { return n.Expr.Span() }
func (*ConstantPatternNode) patternNode() {}

// DeclarationPatternNode represents a type pattern with a single-variable
// designation, such as "string s".
type DeclarationPatternNode struct {
	Type        TypeNode
	Designation *IdentNode
}

var _ PatternNode = (*DeclarationPatternNode)(nil)

// NewDeclarationPatternNode creates a new *DeclarationPatternNode. Both
// arguments are required.
func NewDeclarationPatternNode(typ TypeNode, designation *IdentNode) *DeclarationPatternNode {
	if typ == nil {
		panic("typ is nil")
	}
	if designation == nil {
		panic("designation is nil")
	}
	return &DeclarationPatternNode{Type: typ, Designation: designation}
}

func (n *DeclarationPatternNode) Span() Span { return joinSpans(n.Type, n.Designation) }
func (*DeclarationPatternNode) patternNode() {}

// DiscardPatternNode represents the discard pattern "_", which matches any
// value.
type DiscardPatternNode struct {
	Token *IdentNode
}

var _ PatternNode = (*DiscardPatternNode)(nil)

// NewDiscardPatternNode creates a new *DiscardPatternNode.
func NewDiscardPatternNode(token *IdentNode) *DiscardPatternNode {
	if token == nil {
		panic("token is nil")
	}
	return &DiscardPatternNode{Token: token}
}

func (n *DiscardPatternNode) Span() Span { return n.Token.Span() }
func (*DiscardPatternNode) patternNode() {}

// RelationalPatternNode represents a relational pattern such as "> 10".
// The rewriter does not support relational patterns; the node exists so
// that hosts can still represent them and get a precise error.
type RelationalPatternNode struct {
	Op   *TokenNode
	Expr ExprNode
}

var _ PatternNode = (*RelationalPatternNode)(nil)

// NewRelationalPatternNode creates a new *RelationalPatternNode. Both
// arguments are required.
func NewRelationalPatternNode(op *TokenNode, expr ExprNode) *RelationalPatternNode {
	if op == nil {
		panic("op is nil")
	}
	if expr == nil {
		panic("expr is nil")
	}
	return &RelationalPatternNode{Op: op, Expr: expr}
}

func (n *RelationalPatternNode) Span() Span { return joinSpans(n.Op, n.Expr) }
func (*RelationalPatternNode) patternNode() {}
