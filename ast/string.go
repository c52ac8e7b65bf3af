package ast

// InterpolatedContentNode is a piece of an interpolated string: either a run
// of verbatim text (a *LiteralNode) or an interpolation hole
// (an *InterpolationNode).
type InterpolatedContentNode interface {
	Node
	interpolatedContent()
}

// InterpolatedStringExprNode represents an interpolated string expression
// such as `$"total: {a + b}"`.
type InterpolatedStringExprNode struct {
	Open  *TokenNode
	Parts []InterpolatedContentNode
	Close *TokenNode
}

// NewInterpolatedStringExprNode creates a new *InterpolatedStringExprNode.
// Open and close are required; parts may be empty.
func NewInterpolatedStringExprNode(open *TokenNode, parts []InterpolatedContentNode, close *TokenNode) *InterpolatedStringExprNode {
	if open == nil {
		panic("open is nil")
	}
	if close == nil {
		panic("close is nil")
	}
	return &InterpolatedStringExprNode{Open: open, Parts: parts, Close: close}
}

func (n *InterpolatedStringExprNode) Span() Span { return joinSpans(n.Open, n.Close) }
func (*InterpolatedStringExprNode) exprNode()    {}

// InterpolationNode represents one interpolation hole, "{expr}" or
// "{expr:format}". Format, when present, holds the format specifier
// including its leading colon.
type InterpolationNode struct {
	Open   *RuneNode
	Expr   ExprNode
	Format *TokenNode
	Close  *RuneNode
}

var _ InterpolatedContentNode = (*InterpolationNode)(nil)

// NewInterpolationNode creates a new *InterpolationNode. Open, expr, and
// close are required; format may be nil.
func NewInterpolationNode(open *RuneNode, expr ExprNode, format *TokenNode, close *RuneNode) *InterpolationNode {
	if open == nil {
		panic("open is nil")
	}
	if expr == nil {
		panic("expr is nil")
	}
	if close == nil {
		panic("close is nil")
	}
	return &InterpolationNode{Open: open, Expr: expr, Format: format, Close: close}
}

func (n *InterpolationNode) Span() Span {
	if n.Format != nil {
		return joinSpans(n.Open, n.Expr, n.Format, n.Close)
	}
	return joinSpans(n.Open, n.Expr, n.Close)
}
func (*InterpolationNode) interpolatedContent() {}
