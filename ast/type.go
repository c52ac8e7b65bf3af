package ast

// PredefinedTypeNode represents a built-in type keyword in type position,
// such as "int" or "string".
type PredefinedTypeNode struct {
	Keyword *KeywordNode
}

var _ TypeNode = (*PredefinedTypeNode)(nil)

// NewPredefinedTypeNode creates a new *PredefinedTypeNode.
func NewPredefinedTypeNode(keyword *KeywordNode) *PredefinedTypeNode {
	if keyword == nil {
		panic("keyword is nil")
	}
	return &PredefinedTypeNode{Keyword: keyword}
}

func (n *PredefinedTypeNode) Span() Span { return n.Keyword.Span() }
func (*PredefinedTypeNode) exprNode()    {}
func (*PredefinedTypeNode) typeNode()    {}

// NullableTypeNode represents a nullable type annotation "T?". For value
// types this denotes Nullable<T>; for reference types it is a compile-time
// annotation with no runtime effect.
type NullableTypeNode struct {
	Element  TypeNode
	Question *RuneNode
}

var _ TypeNode = (*NullableTypeNode)(nil)

// NewNullableTypeNode creates a new *NullableTypeNode. Both arguments are
// required.
func NewNullableTypeNode(element TypeNode, question *RuneNode) *NullableTypeNode {
	if element == nil {
		panic("element is nil")
	}
	if question == nil {
		panic("question is nil")
	}
	return &NullableTypeNode{Element: element, Question: question}
}

func (n *NullableTypeNode) Span() Span { return joinSpans(n.Element, n.Question) }
func (*NullableTypeNode) exprNode()    {}
func (*NullableTypeNode) typeNode()    {}
