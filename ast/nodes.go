package ast

// Span identifies the range of source bytes that a node covers. Start is
// inclusive and End is exclusive. Nodes synthesized during rewriting are not
// backed by source bytes and report InvalidSpan.
type Span struct {
	Start, End int32
}

// InvalidSpan is the span of a node with no backing source bytes.
var InvalidSpan = Span{Start: -1, End: -1}

// Valid reports whether the span refers to actual source bytes.
func (s Span) Valid() bool {
	return s.Start >= 0 && s.End >= s.Start
}

// Node is a node in an expression syntax tree.
type Node interface {
	Span() Span
}

// ExprNode is a node that can appear in expression position.
type ExprNode interface {
	Node
	exprNode()
}

// TypeNode is a node that can appear in type position: a simple or qualified
// name, a predefined type keyword, or a nullable type.
type TypeNode interface {
	ExprNode
	typeNode()
}

// NameNode is a simple or namespace-qualified name. Names are valid in both
// expression and type position.
type NameNode interface {
	TypeNode
	nameNode()
}

// PatternNode is a pattern in a switch expression arm.
type PatternNode interface {
	Node
	patternNode()
}

// TerminalNode is a leaf in the tree: a single token along with the raw
// trivia (whitespace and comments) that surrounded it in the source.
type TerminalNode interface {
	Node
	Text() string
	LeadingTrivia() string
	TrailingTrivia() string
}

// TokenInfo describes where a terminal came from. Offset is the byte offset
// of the token's first character in the original source, or a negative value
// for synthesized tokens. Leading and Trailing hold the raw trivia text
// adjacent to the token.
type TokenInfo struct {
	Offset   int32
	Leading  string
	Trailing string
}

// Synthetic returns a TokenInfo for a token that has no source backing, with
// the given trivia.
func Synthetic(leading, trailing string) TokenInfo {
	return TokenInfo{Offset: -1, Leading: leading, Trailing: trailing}
}

type terminalNode struct {
	offset   int32
	leading  string
	trailing string
}

func makeTerminal(info TokenInfo) terminalNode {
	offset := info.Offset
	if offset < 0 {
		offset = -1
	}
	return terminalNode{offset: offset, leading: info.Leading, trailing: info.Trailing}
}

func (t terminalNode) LeadingTrivia() string { return t.leading }
func (t terminalNode) TrailingTrivia() string { return t.trailing }

func (t terminalNode) spanOf(length int) Span {
	if t.offset < 0 {
		return InvalidSpan
	}
	return Span{Start: t.offset, End: t.offset + int32(length)}
}

func (t terminalNode) info(leading, trailing string) TokenInfo {
	return TokenInfo{Offset: t.offset, Leading: leading, Trailing: trailing}
}

// IdentNode represents a simple, unqualified identifier.
type IdentNode struct {
	terminalNode
	Val string
}

var _ NameNode = (*IdentNode)(nil)

// NewIdentNode creates a new *IdentNode with the given text.
func NewIdentNode(val string, info TokenInfo) *IdentNode {
	if val == "" {
		panic("val is empty")
	}
	return &IdentNode{terminalNode: makeTerminal(info), Val: val}
}

// WithTrivia returns a copy of n with the given leading and trailing trivia.
func (n *IdentNode) WithTrivia(leading, trailing string) *IdentNode {
	return NewIdentNode(n.Val, n.info(leading, trailing))
}

func (n *IdentNode) Span() Span { return n.spanOf(len(n.Val)) }
func (n *IdentNode) Text() string { return n.Val }
func (*IdentNode) exprNode() {}
func (*IdentNode) typeNode() {}
func (*IdentNode) nameNode() {}

// KeywordNode represents a keyword such as "this", "switch", or a predefined
// type name like "int".
type KeywordNode struct {
	terminalNode
	Val string
}

// NewKeywordNode creates a new *KeywordNode with the given text.
func NewKeywordNode(val string, info TokenInfo) *KeywordNode {
	if val == "" {
		panic("val is empty")
	}
	return &KeywordNode{terminalNode: makeTerminal(info), Val: val}
}

// WithTrivia returns a copy of n with the given leading and trailing trivia.
func (n *KeywordNode) WithTrivia(leading, trailing string) *KeywordNode {
	return NewKeywordNode(n.Val, n.info(leading, trailing))
}

func (n *KeywordNode) Span() Span { return n.spanOf(len(n.Val)) }
func (n *KeywordNode) Text() string { return n.Val }

// RuneNode represents a single punctuation character, such as a dot, comma,
// or parenthesis.
type RuneNode struct {
	terminalNode
	Rune rune
}

// NewRuneNode creates a new *RuneNode for the given rune.
func NewRuneNode(r rune, info TokenInfo) *RuneNode {
	return &RuneNode{terminalNode: makeTerminal(info), Rune: r}
}

// WithTrivia returns a copy of n with the given leading and trailing trivia.
func (n *RuneNode) WithTrivia(leading, trailing string) *RuneNode {
	return NewRuneNode(n.Rune, n.info(leading, trailing))
}

func (n *RuneNode) Span() Span { return n.spanOf(len(string(n.Rune))) }
func (n *RuneNode) Text() string { return string(n.Rune) }

// TokenNode represents a multi-character token that is neither an identifier
// nor a keyword: operators like "==" and "=>", or the delimiters of an
// interpolated string.
type TokenNode struct {
	terminalNode
	Val string
}

// NewTokenNode creates a new *TokenNode with the given text.
func NewTokenNode(val string, info TokenInfo) *TokenNode {
	if val == "" {
		panic("val is empty")
	}
	return &TokenNode{terminalNode: makeTerminal(info), Val: val}
}

// WithTrivia returns a copy of n with the given leading and trailing trivia.
func (n *TokenNode) WithTrivia(leading, trailing string) *TokenNode {
	return NewTokenNode(n.Val, n.info(leading, trailing))
}

func (n *TokenNode) Span() Span { return n.spanOf(len(n.Val)) }
func (n *TokenNode) Text() string { return n.Val }

// LiteralNode represents a literal value: a number, a string (including its
// quotes), a boolean, or null. Raw is the token text exactly as written.
// Inside an interpolated string, LiteralNode also represents a run of
// verbatim text between interpolation holes.
type LiteralNode struct {
	terminalNode
	Raw string
}

var _ ExprNode = (*LiteralNode)(nil)

// NewLiteralNode creates a new *LiteralNode with the given raw token text.
func NewLiteralNode(raw string, info TokenInfo) *LiteralNode {
	if raw == "" {
		panic("raw is empty")
	}
	return &LiteralNode{terminalNode: makeTerminal(info), Raw: raw}
}

// WithTrivia returns a copy of n with the given leading and trailing trivia.
func (n *LiteralNode) WithTrivia(leading, trailing string) *LiteralNode {
	return NewLiteralNode(n.Raw, n.info(leading, trailing))
}

func (n *LiteralNode) Span() Span { return n.spanOf(len(n.Raw)) }
func (n *LiteralNode) Text() string { return n.Raw }
func (*LiteralNode) exprNode() {}
func (*LiteralNode) interpolatedContent() {}

func joinSpans(nodes ...Node) Span {
	joined := InvalidSpan
	for _, n := range nodes {
		if n == nil {
			continue
		}
		sp := n.Span()
		if !sp.Valid() {
			continue
		}
		if !joined.Valid() {
			joined = sp
			continue
		}
		if sp.Start < joined.Start {
			joined.Start = sp.Start
		}
		if sp.End > joined.End {
			joined.End = sp.End
		}
	}
	return joined
}
