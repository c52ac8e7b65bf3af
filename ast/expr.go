package ast

// ThisExprNode represents a "this" expression.
type ThisExprNode struct {
	Keyword *KeywordNode
}

// NewThisExprNode creates a new *ThisExprNode.
func NewThisExprNode(keyword *KeywordNode) *ThisExprNode {
	if keyword == nil {
		panic("keyword is nil")
	}
	return &ThisExprNode{Keyword: keyword}
}

func (n *ThisExprNode) Span() Span { return n.Keyword.Span() }
func (*ThisExprNode) exprNode()    {}

// BaseExprNode represents a "base" expression.
type BaseExprNode struct {
	Keyword *KeywordNode
}

// NewBaseExprNode creates a new *BaseExprNode.
func NewBaseExprNode(keyword *KeywordNode) *BaseExprNode {
	if keyword == nil {
		panic("keyword is nil")
	}
	return &BaseExprNode{Keyword: keyword}
}

func (n *BaseExprNode) Span() Span { return n.Keyword.Span() }
func (*BaseExprNode) exprNode()    {}

// QualifiedNameNode represents a dotted name such as "System.DateTime". The
// left part is itself a name, so longer chains nest to the left.
type QualifiedNameNode struct {
	Left  NameNode
	Dot   *RuneNode
	Right *IdentNode
}

var _ NameNode = (*QualifiedNameNode)(nil)

// NewQualifiedNameNode creates a new *QualifiedNameNode. All arguments are
// required.
func NewQualifiedNameNode(left NameNode, dot *RuneNode, right *IdentNode) *QualifiedNameNode {
	if left == nil {
		panic("left is nil")
	}
	if dot == nil {
		panic("dot is nil")
	}
	if right == nil {
		panic("right is nil")
	}
	return &QualifiedNameNode{Left: left, Dot: dot, Right: right}
}

func (n *QualifiedNameNode) Span() Span { return joinSpans(n.Left, n.Dot, n.Right) }
func (*QualifiedNameNode) exprNode()    {}
func (*QualifiedNameNode) typeNode()    {}
func (*QualifiedNameNode) nameNode()    {}

// MemberAccessExprNode represents a member access with an explicit receiver,
// such as "a.b".
type MemberAccessExprNode struct {
	Receiver ExprNode
	Dot      *RuneNode
	Name     *IdentNode
}

// NewMemberAccessExprNode creates a new *MemberAccessExprNode. All arguments
// are required.
func NewMemberAccessExprNode(receiver ExprNode, dot *RuneNode, name *IdentNode) *MemberAccessExprNode {
	if receiver == nil {
		panic("receiver is nil")
	}
	if dot == nil {
		panic("dot is nil")
	}
	if name == nil {
		panic("name is nil")
	}
	return &MemberAccessExprNode{Receiver: receiver, Dot: dot, Name: name}
}

func (n *MemberAccessExprNode) Span() Span { return joinSpans(n.Receiver, n.Dot, n.Name) }
func (*MemberAccessExprNode) exprNode()    {}

// ConditionalAccessExprNode represents a null-conditional access such as
// "a?.b" or "a?[i]". WhenNotNull is the portion after the "?" and begins
// with a member or element binding.
type ConditionalAccessExprNode struct {
	Target      ExprNode
	Question    *RuneNode
	WhenNotNull ExprNode
}

// NewConditionalAccessExprNode creates a new *ConditionalAccessExprNode. All
// arguments are required.
func NewConditionalAccessExprNode(target ExprNode, question *RuneNode, whenNotNull ExprNode) *ConditionalAccessExprNode {
	if target == nil {
		panic("target is nil")
	}
	if question == nil {
		panic("question is nil")
	}
	if whenNotNull == nil {
		panic("whenNotNull is nil")
	}
	return &ConditionalAccessExprNode{Target: target, Question: question, WhenNotNull: whenNotNull}
}

func (n *ConditionalAccessExprNode) Span() Span {
	return joinSpans(n.Target, n.Question, n.WhenNotNull)
}
func (*ConditionalAccessExprNode) exprNode() {}

// MemberBindingExprNode represents the ".Name" portion of a null-conditional
// member access. It has no receiver of its own; the receiver is the target
// of the nearest enclosing conditional access.
type MemberBindingExprNode struct {
	Dot  *RuneNode
	Name *IdentNode
}

// NewMemberBindingExprNode creates a new *MemberBindingExprNode. Both
// arguments are required.
func NewMemberBindingExprNode(dot *RuneNode, name *IdentNode) *MemberBindingExprNode {
	if dot == nil {
		panic("dot is nil")
	}
	if name == nil {
		panic("name is nil")
	}
	return &MemberBindingExprNode{Dot: dot, Name: name}
}

func (n *MemberBindingExprNode) Span() Span { return joinSpans(n.Dot, n.Name) }
func (*MemberBindingExprNode) exprNode()    {}

// BracketedArgListNode represents a bracketed argument list, as used by
// element accesses and element bindings.
type BracketedArgListNode struct {
	Open   *RuneNode
	Args   []ExprNode
	Commas []*RuneNode
	Close  *RuneNode
}

// NewBracketedArgListNode creates a new *BracketedArgListNode. Open and close
// are required; commas must number one fewer than args.
func NewBracketedArgListNode(open *RuneNode, args []ExprNode, commas []*RuneNode, close *RuneNode) *BracketedArgListNode {
	if open == nil {
		panic("open is nil")
	}
	if close == nil {
		panic("close is nil")
	}
	if len(args) > 0 && len(commas) != len(args)-1 {
		panic("commas must number one fewer than args")
	}
	return &BracketedArgListNode{Open: open, Args: args, Commas: commas, Close: close}
}

func (n *BracketedArgListNode) Span() Span { return joinSpans(n.Open, n.Close) }

// ElementBindingExprNode represents the "[args]" portion of a
// null-conditional element access.
type ElementBindingExprNode struct {
	Args *BracketedArgListNode
}

// NewElementBindingExprNode creates a new *ElementBindingExprNode.
func NewElementBindingExprNode(args *BracketedArgListNode) *ElementBindingExprNode {
	if args == nil {
		panic("args is nil")
	}
	return &ElementBindingExprNode{Args: args}
}

func (n *ElementBindingExprNode) Span() Span { return n.Args.Span() }
func (*ElementBindingExprNode) exprNode()    {}

// ElementAccessExprNode represents an element access such as "a[i]".
type ElementAccessExprNode struct {
	Receiver ExprNode
	Args     *BracketedArgListNode
}

// NewElementAccessExprNode creates a new *ElementAccessExprNode. Both
// arguments are required.
func NewElementAccessExprNode(receiver ExprNode, args *BracketedArgListNode) *ElementAccessExprNode {
	if receiver == nil {
		panic("receiver is nil")
	}
	if args == nil {
		panic("args is nil")
	}
	return &ElementAccessExprNode{Receiver: receiver, Args: args}
}

func (n *ElementAccessExprNode) Span() Span { return joinSpans(n.Receiver, n.Args) }
func (*ElementAccessExprNode) exprNode()    {}

// ArgListNode represents a parenthesized argument list.
type ArgListNode struct {
	Open   *RuneNode
	Args   []ExprNode
	Commas []*RuneNode
	Close  *RuneNode
}

// NewArgListNode creates a new *ArgListNode. Open and close are required;
// commas must number one fewer than args.
func NewArgListNode(open *RuneNode, args []ExprNode, commas []*RuneNode, close *RuneNode) *ArgListNode {
	if open == nil {
		panic("open is nil")
	}
	if close == nil {
		panic("close is nil")
	}
	if len(args) > 0 && len(commas) != len(args)-1 {
		panic("commas must number one fewer than args")
	}
	return &ArgListNode{Open: open, Args: args, Commas: commas, Close: close}
}

func (n *ArgListNode) Span() Span { return joinSpans(n.Open, n.Close) }

// InvocationExprNode represents a call such as "f(a, b)".
type InvocationExprNode struct {
	Callee ExprNode
	Args   *ArgListNode
}

// NewInvocationExprNode creates a new *InvocationExprNode. Both arguments
// are required.
func NewInvocationExprNode(callee ExprNode, args *ArgListNode) *InvocationExprNode {
	if callee == nil {
		panic("callee is nil")
	}
	if args == nil {
		panic("args is nil")
	}
	return &InvocationExprNode{Callee: callee, Args: args}
}

func (n *InvocationExprNode) Span() Span { return joinSpans(n.Callee, n.Args) }
func (*InvocationExprNode) exprNode()    {}

// ParenExprNode represents a parenthesized expression.
type ParenExprNode struct {
	Open  *RuneNode
	Expr  ExprNode
	Close *RuneNode
}

// NewParenExprNode creates a new *ParenExprNode. All arguments are required.
func NewParenExprNode(open *RuneNode, expr ExprNode, close *RuneNode) *ParenExprNode {
	if open == nil {
		panic("open is nil")
	}
	if expr == nil {
		panic("expr is nil")
	}
	if close == nil {
		panic("close is nil")
	}
	return &ParenExprNode{Open: open, Expr: expr, Close: close}
}

func (n *ParenExprNode) Span() Span { return joinSpans(n.Open, n.Expr, n.Close) }
func (*ParenExprNode) exprNode()    {}

// BinaryExprNode represents a binary operation such as "a == b".
type BinaryExprNode struct {
	Left  ExprNode
	Op    *TokenNode
	Right ExprNode
}

// NewBinaryExprNode creates a new *BinaryExprNode. All arguments are
// required.
func NewBinaryExprNode(left ExprNode, op *TokenNode, right ExprNode) *BinaryExprNode {
	if left == nil {
		panic("left is nil")
	}
	if op == nil {
		panic("op is nil")
	}
	if right == nil {
		panic("right is nil")
	}
	return &BinaryExprNode{Left: left, Op: op, Right: right}
}

func (n *BinaryExprNode) Span() Span { return joinSpans(n.Left, n.Op, n.Right) }
func (*BinaryExprNode) exprNode()    {}

// ConditionalExprNode represents a ternary conditional
// "cond ? whenTrue : whenFalse".
type ConditionalExprNode struct {
	Cond      ExprNode
	Question  *RuneNode
	WhenTrue  ExprNode
	Colon     *RuneNode
	WhenFalse ExprNode
}

// NewConditionalExprNode creates a new *ConditionalExprNode. All arguments
// are required.
func NewConditionalExprNode(cond ExprNode, question *RuneNode, whenTrue ExprNode, colon *RuneNode, whenFalse ExprNode) *ConditionalExprNode {
	if cond == nil {
		panic("cond is nil")
	}
	if question == nil {
		panic("question is nil")
	}
	if whenTrue == nil {
		panic("whenTrue is nil")
	}
	if colon == nil {
		panic("colon is nil")
	}
	if whenFalse == nil {
		panic("whenFalse is nil")
	}
	return &ConditionalExprNode{Cond: cond, Question: question, WhenTrue: whenTrue, Colon: colon, WhenFalse: whenFalse}
}

func (n *ConditionalExprNode) Span() Span {
	return joinSpans(n.Cond, n.Question, n.WhenTrue, n.Colon, n.WhenFalse)
}
func (*ConditionalExprNode) exprNode() {}

// CastExprNode represents a cast such as "(int)x".
type CastExprNode struct {
	Open  *RuneNode
	Type  TypeNode
	Close *RuneNode
	Expr  ExprNode
}

// NewCastExprNode creates a new *CastExprNode. All arguments are required.
func NewCastExprNode(open *RuneNode, typ TypeNode, close *RuneNode, expr ExprNode) *CastExprNode {
	if open == nil {
		panic("open is nil")
	}
	if typ == nil {
		panic("typ is nil")
	}
	if close == nil {
		panic("close is nil")
	}
	if expr == nil {
		panic("expr is nil")
	}
	return &CastExprNode{Open: open, Type: typ, Close: close, Expr: expr}
}

func (n *CastExprNode) Span() Span { return joinSpans(n.Open, n.Type, n.Close, n.Expr) }
func (*CastExprNode) exprNode()    {}

// TypeOfExprNode represents a "typeof(T)" expression.
type TypeOfExprNode struct {
	Keyword *KeywordNode
	Open    *RuneNode
	Type    TypeNode
	Close   *RuneNode
}

// NewTypeOfExprNode creates a new *TypeOfExprNode. All arguments are
// required.
func NewTypeOfExprNode(keyword *KeywordNode, open *RuneNode, typ TypeNode, close *RuneNode) *TypeOfExprNode {
	if keyword == nil {
		panic("keyword is nil")
	}
	if open == nil {
		panic("open is nil")
	}
	if typ == nil {
		panic("typ is nil")
	}
	if close == nil {
		panic("close is nil")
	}
	return &TypeOfExprNode{Keyword: keyword, Open: open, Type: typ, Close: close}
}

func (n *TypeOfExprNode) Span() Span { return joinSpans(n.Keyword, n.Open, n.Type, n.Close) }
func (*TypeOfExprNode) exprNode()    {}

// AssignmentExprNode represents a simple assignment "a = b", as found in
// object initializers.
type AssignmentExprNode struct {
	Left  ExprNode
	Eq    *RuneNode
	Right ExprNode
}

// NewAssignmentExprNode creates a new *AssignmentExprNode. All arguments are
// required.
func NewAssignmentExprNode(left ExprNode, eq *RuneNode, right ExprNode) *AssignmentExprNode {
	if left == nil {
		panic("left is nil")
	}
	if eq == nil {
		panic("eq is nil")
	}
	if right == nil {
		panic("right is nil")
	}
	return &AssignmentExprNode{Left: left, Eq: eq, Right: right}
}

func (n *AssignmentExprNode) Span() Span { return joinSpans(n.Left, n.Eq, n.Right) }
func (*AssignmentExprNode) exprNode()    {}

// InitializerExprNode represents a brace-delimited object initializer.
type InitializerExprNode struct {
	Open   *RuneNode
	Exprs  []ExprNode
	Commas []*RuneNode
	Close  *RuneNode
}

// NewInitializerExprNode creates a new *InitializerExprNode. Open and close
// are required; commas must number one fewer than exprs (a trailing comma is
// represented by equal counts).
func NewInitializerExprNode(open *RuneNode, exprs []ExprNode, commas []*RuneNode, close *RuneNode) *InitializerExprNode {
	if open == nil {
		panic("open is nil")
	}
	if close == nil {
		panic("close is nil")
	}
	if len(exprs) > 0 && len(commas) != len(exprs)-1 && len(commas) != len(exprs) {
		panic("commas must number one fewer than exprs, or equal with a trailing comma")
	}
	return &InitializerExprNode{Open: open, Exprs: exprs, Commas: commas, Close: close}
}

func (n *InitializerExprNode) Span() Span { return joinSpans(n.Open, n.Close) }
func (*InitializerExprNode) exprNode()    {}

// ObjectCreationExprNode represents a "new T(...) {...}" expression. Args
// and Initializer are both optional, though at least one is present in any
// well-formed expression.
type ObjectCreationExprNode struct {
	Keyword     *KeywordNode
	Type        TypeNode
	Args        *ArgListNode
	Initializer *InitializerExprNode
}

// NewObjectCreationExprNode creates a new *ObjectCreationExprNode. Keyword
// and typ are required; args and initializer may be nil.
func NewObjectCreationExprNode(keyword *KeywordNode, typ TypeNode, args *ArgListNode, initializer *InitializerExprNode) *ObjectCreationExprNode {
	if keyword == nil {
		panic("keyword is nil")
	}
	if typ == nil {
		panic("typ is nil")
	}
	return &ObjectCreationExprNode{Keyword: keyword, Type: typ, Args: args, Initializer: initializer}
}

func (n *ObjectCreationExprNode) Span() Span {
	nodes := []Node{n.Keyword, n.Type}
	if n.Args != nil {
		nodes = append(nodes, n.Args)
	}
	if n.Initializer != nil {
		nodes = append(nodes, n.Initializer)
	}
	return joinSpans(nodes...)
}
func (*ObjectCreationExprNode) exprNode() {}
