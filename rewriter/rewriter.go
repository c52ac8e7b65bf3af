// Package rewriter turns the body of a lambda expression into a
// self-contained expression that no longer depends on its original lexical
// context. Implicit instance references become an explicit parameter,
// member and type references are qualified, null-conditional accesses and
// switch expressions are lowered to constructs a query provider can
// translate, and extension-method calls become static calls.
//
// Rewriting never mutates the input tree. Nodes that need no change are
// returned as-is, so an already-desugared tree passes through untouched and
// a second rewrite of an output tree is the identity.
package rewriter

import (
	"strings"

	"github.com/exprlift/exprlift/ast"
	"github.com/exprlift/exprlift/reporter"
	"github.com/exprlift/exprlift/semantic"
)

// ExpressionRewriter rewrites a single expression body. Configure the
// exported fields, then call Rewrite. An instance carries per-pass state
// and must not be shared across goroutines or reused while a rewrite is in
// progress.
type ExpressionRewriter struct {
	// Model resolves nodes of the original tree. Required.
	Model semantic.Model
	// TargetType is the type whose members may be referenced implicitly in
	// the body. Implicit references to its instance members get qualified
	// with the synthesized parameter; implicit references to its static
	// members get qualified with the type name. Required.
	TargetType *semantic.TypeRef
	// Mode selects how null-conditional accesses are handled.
	Mode NullConditionalMode
	// Info supplies source positions for diagnostics. Optional; without it
	// diagnostics carry no position.
	Info *ast.SourceInfo

	handler *reporter.Handler
	// Targets of enclosing conditional accesses, awaiting the binding node
	// that will consume them.
	pending []ast.ExprNode
}

// Rewrite rewrites the given expression body and returns the result.
//
// Recoverable problems, such as a null-conditional access in
// NullConditionalNone mode, are reported through the handler; its reporter
// decides whether they abort the rewrite. Unsupported switch patterns are
// fatal and abort regardless of the reporter. When the returned error is
// nil the caller should still consult handler.Error to learn whether
// diagnostics were reported.
func (r *ExpressionRewriter) Rewrite(expr ast.ExprNode, handler *reporter.Handler) (ast.ExprNode, error) {
	if r.Model == nil {
		panic("rewriter: Model is nil")
	}
	if r.TargetType == nil {
		panic("rewriter: TargetType is nil")
	}
	if handler == nil {
		handler = reporter.NewHandler(nil)
	}
	r.handler = handler
	r.pending = r.pending[:0]
	return r.visit(expr)
}

func (r *ExpressionRewriter) visit(expr ast.ExprNode) (ast.ExprNode, error) {
	switch n := expr.(type) {
	case *ast.ThisExprNode:
		return r.instanceParam(n.Keyword), nil
	case *ast.BaseExprNode:
		return r.instanceParam(n.Keyword), nil
	case *ast.IdentNode:
		return r.visitIdent(n), nil
	case *ast.QualifiedNameNode:
		return r.visitQualifiedName(n), nil
	case *ast.MemberAccessExprNode:
		return r.visitMemberAccess(n)
	case *ast.InvocationExprNode:
		return r.visitInvocation(n)
	case *ast.ConditionalAccessExprNode:
		return r.visitConditionalAccess(n)
	case *ast.MemberBindingExprNode:
		return r.visitMemberBinding(n), nil
	case *ast.ElementBindingExprNode:
		return r.visitElementBinding(n)
	case *ast.ElementAccessExprNode:
		return r.visitElementAccess(n)
	case *ast.SwitchExprNode:
		return r.visitSwitch(n)
	case *ast.NullableTypeNode:
		return r.visitNullableType(n)
	case *ast.InterpolatedStringExprNode:
		return r.visitInterpolatedString(n)
	case *ast.ParenExprNode:
		inner, err := r.visit(n.Expr)
		if err != nil {
			return nil, err
		}
		if inner == n.Expr {
			return n, nil
		}
		return ast.NewParenExprNode(n.Open, inner, n.Close), nil
	case *ast.BinaryExprNode:
		left, err := r.visit(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := r.visit(n.Right)
		if err != nil {
			return nil, err
		}
		if left == n.Left && right == n.Right {
			return n, nil
		}
		return ast.NewBinaryExprNode(left, n.Op, right), nil
	case *ast.ConditionalExprNode:
		cond, err := r.visit(n.Cond)
		if err != nil {
			return nil, err
		}
		whenTrue, err := r.visit(n.WhenTrue)
		if err != nil {
			return nil, err
		}
		whenFalse, err := r.visit(n.WhenFalse)
		if err != nil {
			return nil, err
		}
		if cond == n.Cond && whenTrue == n.WhenTrue && whenFalse == n.WhenFalse {
			return n, nil
		}
		return ast.NewConditionalExprNode(cond, n.Question, whenTrue, n.Colon, whenFalse), nil
	case *ast.CastExprNode:
		typ, err := r.visitTypeNode(n.Type)
		if err != nil {
			return nil, err
		}
		inner, err := r.visit(n.Expr)
		if err != nil {
			return nil, err
		}
		if typ == n.Type && inner == n.Expr {
			return n, nil
		}
		return ast.NewCastExprNode(n.Open, typ, n.Close, inner), nil
	case *ast.TypeOfExprNode:
		typ, err := r.visitTypeNode(n.Type)
		if err != nil {
			return nil, err
		}
		if typ == n.Type {
			return n, nil
		}
		return ast.NewTypeOfExprNode(n.Keyword, n.Open, typ, n.Close), nil
	case *ast.AssignmentExprNode:
		left, err := r.visit(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := r.visit(n.Right)
		if err != nil {
			return nil, err
		}
		if left == n.Left && right == n.Right {
			return n, nil
		}
		return ast.NewAssignmentExprNode(left, n.Eq, right), nil
	case *ast.InitializerExprNode:
		return r.visitInitializer(n)
	case *ast.ObjectCreationExprNode:
		return r.visitObjectCreation(n)
	default:
		// literals, predefined types, and other nodes with nothing to
		// rewrite pass through
		return expr, nil
	}
}

// instanceParam replaces a this/base keyword with the synthesized
// parameter, keeping the keyword's trivia byte for byte.
func (r *ExpressionRewriter) instanceParam(kw *ast.KeywordNode) ast.ExprNode {
	return synthIdent(ThisParameterName, kw.LeadingTrivia(), kw.TrailingTrivia())
}

func (r *ExpressionRewriter) visitIdent(n *ast.IdentNode) ast.ExprNode {
	if op := r.Model.OperationFor(n); op != nil && op.Kind == semantic.OperationMemberInitializer {
		// initializer keys name the member being assigned; qualifying one
		// would turn the key into a member read
		return n
	}
	sym := r.Model.SymbolFor(n)
	if sym == nil {
		return n
	}
	switch {
	case sym.Kind == semantic.SymbolType && sym.Type != nil:
		if sym.Type.FullyQualifiedName == n.Val {
			return n
		}
		return synthName(sym.Type.FullyQualifiedName, n.LeadingTrivia(), n.TrailingTrivia())
	case sym.Kind.IsMember() && sym.ContainingType.Same(r.TargetType):
		var receiver ast.ExprNode
		if sym.Static {
			receiver = synthName(sym.ContainingType.FullyQualifiedName, n.LeadingTrivia(), "")
		} else {
			receiver = synthIdent(ThisParameterName, n.LeadingTrivia(), "")
		}
		return ast.NewMemberAccessExprNode(receiver, synthRune('.', "", ""), n.WithTrivia("", n.TrailingTrivia()))
	default:
		return n
	}
}

// visitQualifiedName expands a dotted name that resolves to a type into the
// type's fully qualified form. Names nested inside a larger qualified name
// are never visited on their own, so only complete references expand.
func (r *ExpressionRewriter) visitQualifiedName(n *ast.QualifiedNameNode) ast.ExprNode {
	sym := r.Model.SymbolFor(n)
	if sym == nil || sym.Kind != semantic.SymbolType || sym.Type == nil {
		return n
	}
	if sym.Type.FullyQualifiedName == ast.Text(stripNameTrivia(n)) {
		return n
	}
	return synthName(sym.Type.FullyQualifiedName, nameLeadingTrivia(n), n.Right.TrailingTrivia())
}

func nameLeadingTrivia(n ast.NameNode) string {
	for {
		switch v := n.(type) {
		case *ast.IdentNode:
			return v.LeadingTrivia()
		case *ast.QualifiedNameNode:
			n = v.Left
		default:
			return ""
		}
	}
}

// stripNameTrivia returns the name with no trivia anywhere, for comparing
// its text against a fully qualified display form.
func stripNameTrivia(n ast.NameNode) ast.NameNode {
	switch v := n.(type) {
	case *ast.IdentNode:
		return v.WithTrivia("", "")
	case *ast.QualifiedNameNode:
		return ast.NewQualifiedNameNode(stripNameTrivia(v.Left), v.Dot.WithTrivia("", ""), v.Right.WithTrivia("", ""))
	default:
		return n
	}
}

func (r *ExpressionRewriter) visitMemberAccess(n *ast.MemberAccessExprNode) (ast.ExprNode, error) {
	receiver, err := r.visit(n.Receiver)
	if err != nil {
		return nil, err
	}
	if receiver == n.Receiver {
		return n, nil
	}
	return ast.NewMemberAccessExprNode(receiver, n.Dot, n.Name), nil
}

func (r *ExpressionRewriter) visitInvocation(n *ast.InvocationExprNode) (ast.ExprNode, error) {
	if ma, ok := n.Callee.(*ast.MemberAccessExprNode); ok {
		if sym := r.Model.SymbolFor(ma); sym != nil && sym.Extension && sym.ContainingType != nil {
			return r.rewriteExtensionCall(n, ma, sym)
		}
	}
	callee, err := r.visit(n.Callee)
	if err != nil {
		return nil, err
	}
	args, err := r.visitArgList(n.Args)
	if err != nil {
		return nil, err
	}
	if callee == n.Callee && args == n.Args {
		return n, nil
	}
	return ast.NewInvocationExprNode(callee, args), nil
}

// rewriteExtensionCall turns "receiver.Ext(a, b)" into
// "Fully.Qualified.Type.Ext(receiver, a, b)". The receiver becomes the
// first argument; its leading trivia moves to the new callee so the
// expression stays anchored where the original began, while its trailing
// trivia travels with it into the argument list.
func (r *ExpressionRewriter) rewriteExtensionCall(n *ast.InvocationExprNode, ma *ast.MemberAccessExprNode, sym *semantic.Symbol) (ast.ExprNode, error) {
	receiver, err := r.visit(ma.Receiver)
	if err != nil {
		return nil, err
	}
	lead := leadingTrivia(receiver)
	args := make([]ast.ExprNode, 0, len(n.Args.Args)+1)
	args = append(args, withoutLeadingTrivia(receiver))
	var commas []*ast.RuneNode
	if len(n.Args.Args) > 0 {
		commas = make([]*ast.RuneNode, 0, len(n.Args.Commas)+1)
		commas = append(commas, synthRune(',', "", " "))
		commas = append(commas, n.Args.Commas...)
	}
	for _, arg := range n.Args.Args {
		visited, err := r.visit(arg)
		if err != nil {
			return nil, err
		}
		args = append(args, visited)
	}
	callee := ast.NewMemberAccessExprNode(
		synthName(sym.ContainingType.FullyQualifiedName, lead, ""),
		synthRune('.', "", ""),
		ma.Name,
	)
	argList := ast.NewArgListNode(n.Args.Open, args, commas, n.Args.Close)
	return ast.NewInvocationExprNode(callee, argList), nil
}

func (r *ExpressionRewriter) visitArgList(list *ast.ArgListNode) (*ast.ArgListNode, error) {
	args, changed, err := r.visitExprs(list.Args)
	if err != nil {
		return nil, err
	}
	if !changed {
		return list, nil
	}
	return ast.NewArgListNode(list.Open, args, list.Commas, list.Close), nil
}

func (r *ExpressionRewriter) visitBracketedArgs(list *ast.BracketedArgListNode) (*ast.BracketedArgListNode, error) {
	args, changed, err := r.visitExprs(list.Args)
	if err != nil {
		return nil, err
	}
	if !changed {
		return list, nil
	}
	return ast.NewBracketedArgListNode(list.Open, args, list.Commas, list.Close), nil
}

// visitExprs visits each expression and returns the (possibly shared)
// slice, copying only when something changed.
func (r *ExpressionRewriter) visitExprs(exprs []ast.ExprNode) ([]ast.ExprNode, bool, error) {
	out := exprs
	changed := false
	for i, e := range exprs {
		v, err := r.visit(e)
		if err != nil {
			return nil, false, err
		}
		if v != e && !changed {
			out = make([]ast.ExprNode, len(exprs))
			copy(out, exprs)
			changed = true
		}
		if changed {
			out[i] = v
		}
	}
	return out, changed, nil
}

func (r *ExpressionRewriter) visitConditionalAccess(n *ast.ConditionalAccessExprNode) (ast.ExprNode, error) {
	switch r.Mode {
	case NullConditionalIgnore:
		target, err := r.visit(n.Target)
		if err != nil {
			return nil, err
		}
		r.pending = append(r.pending, target)
		return r.visit(n.WhenNotNull)
	case NullConditionalRewrite:
		target, err := r.visit(n.Target)
		if err != nil {
			return nil, err
		}
		typ := r.Model.TypeOf(n)
		if typ == nil || unsplicedBinding(target) {
			// no converted type to cast the null arm to, or an enclosing
			// access already degraded and left this target without a
			// receiver; keep the guard but still rewrite both sides
			when, err := r.visit(n.WhenNotNull)
			if err != nil {
				return nil, err
			}
			if target == n.Target && when == n.WhenNotNull {
				return n, nil
			}
			return ast.NewConditionalAccessExprNode(target, n.Question, when), nil
		}
		r.pending = append(r.pending, target)
		when, err := r.visit(n.WhenNotNull)
		if err != nil {
			return nil, err
		}
		cond := ast.NewBinaryExprNode(withoutOuterTrivia(target), synthToken("!=", " ", " "), synthLiteral("null"))
		nullArm := ast.NewCastExprNode(synthRune('(', "", ""), synthType(typ.FullyQualifiedName), synthRune(')', "", ""), synthLiteral("null"))
		ternary := ast.NewConditionalExprNode(
			cond,
			synthRune('?', " ", " "),
			synthParen(withoutOuterTrivia(when)),
			synthRune(':', " ", " "),
			nullArm,
		)
		return synthParen(ternary), nil
	default:
		// report once per access and leave the whole construct, children
		// included, unrewritten
		err := r.handler.HandleErrorf(r.pos(n), "null-conditional access is not supported here: %s", r.describe(n))
		if err != nil {
			return nil, err
		}
		return n, nil
	}
}

// unsplicedBinding reports whether a visited conditional-access target is
// still a binding node, which happens only when an enclosing access
// degraded without pushing a pending target to splice in.
func unsplicedBinding(e ast.ExprNode) bool {
	switch e.(type) {
	case *ast.MemberBindingExprNode, *ast.ElementBindingExprNode:
		return true
	}
	return false
}

// visitMemberBinding splices the pending conditional-access target back in
// as an ordinary receiver. A binding with no pending target is left alone;
// that only happens when an enclosing access chose not to push one.
func (r *ExpressionRewriter) visitMemberBinding(n *ast.MemberBindingExprNode) ast.ExprNode {
	target := r.popPending()
	if target == nil {
		return n
	}
	return ast.NewMemberAccessExprNode(target, n.Dot, n.Name)
}

func (r *ExpressionRewriter) visitElementBinding(n *ast.ElementBindingExprNode) (ast.ExprNode, error) {
	target := r.popPending()
	args, err := r.visitBracketedArgs(n.Args)
	if err != nil {
		return nil, err
	}
	if target != nil {
		return ast.NewElementAccessExprNode(target, args), nil
	}
	if args == n.Args {
		return n, nil
	}
	return ast.NewElementBindingExprNode(args), nil
}

func (r *ExpressionRewriter) popPending() ast.ExprNode {
	if len(r.pending) == 0 {
		return nil
	}
	target := r.pending[len(r.pending)-1]
	r.pending = r.pending[:len(r.pending)-1]
	return target
}

func (r *ExpressionRewriter) visitElementAccess(n *ast.ElementAccessExprNode) (ast.ExprNode, error) {
	receiver, err := r.visit(n.Receiver)
	if err != nil {
		return nil, err
	}
	args, err := r.visitBracketedArgs(n.Args)
	if err != nil {
		return nil, err
	}
	if receiver == n.Receiver && args == n.Args {
		return n, nil
	}
	return ast.NewElementAccessExprNode(receiver, args), nil
}

// visitSwitch lowers a switch expression to a chain of conditionals, last
// arm innermost. A trailing discard arm supplies the fallback; without one
// the fallback is null.
func (r *ExpressionRewriter) visitSwitch(n *ast.SwitchExprNode) (ast.ExprNode, error) {
	governing, err := r.visit(n.Governing)
	if err != nil {
		return nil, err
	}
	governing = withoutOuterTrivia(governing)

	arms := n.Arms
	var result ast.ExprNode
	if _, ok := arms[len(arms)-1].Pattern.(*ast.DiscardPatternNode); ok {
		last := arms[len(arms)-1]
		fallback, err := r.visit(last.Result)
		if err != nil {
			return nil, err
		}
		result = withoutOuterTrivia(fallback)
		arms = arms[:len(arms)-1]
	} else {
		result = synthLiteral("null")
	}

	for i := len(arms) - 1; i >= 0; i-- {
		arm := arms[i]
		test, bound, err := r.armTest(governing, arm)
		if err != nil {
			return nil, err
		}
		armResult, err := r.visit(arm.Result)
		if err != nil {
			return nil, err
		}
		armResult = withoutOuterTrivia(armResult)
		if bound != nil {
			armResult = substituteIdentifier(armResult, bound.name, bound.replacement)
		}
		if _, ok := result.(*ast.ConditionalExprNode); ok {
			result = synthParen(result)
		}
		result = ast.NewConditionalExprNode(test, synthRune('?', " ", " "), armResult, synthRune(':', " ", " "), result)
	}
	return result, nil
}

type patternBinding struct {
	name        string
	replacement ast.ExprNode
}

// armTest builds the condition for one switch arm and, for declaration
// patterns, the substitution that replaces the bound variable in the arm's
// result.
func (r *ExpressionRewriter) armTest(governing ast.ExprNode, arm *ast.SwitchExprArmNode) (ast.ExprNode, *patternBinding, error) {
	var when ast.ExprNode
	if arm.When != nil {
		cond, err := r.visit(arm.When.Cond)
		if err != nil {
			return nil, nil, err
		}
		when = withoutOuterTrivia(cond)
	}
	switch p := arm.Pattern.(type) {
	case *ast.ConstantPatternNode:
		constant, err := r.visit(p.Expr)
		if err != nil {
			return nil, nil, err
		}
		eq := synthParen(ast.NewBinaryExprNode(governing, synthToken("==", " ", " "), withoutOuterTrivia(constant)))
		if when == nil {
			return eq, nil, nil
		}
		return synthParen(ast.NewBinaryExprNode(eq, synthToken("&&", " ", " "), when)), nil, nil
	case *ast.DeclarationPatternNode:
		typ, err := r.visitTypeNode(p.Type)
		if err != nil {
			return nil, nil, err
		}
		typ = stripTypeTrivia(typ)
		getType := ast.NewInvocationExprNode(
			ast.NewMemberAccessExprNode(governing, synthRune('.', "", ""), synthIdent("GetType", "", "")),
			ast.NewArgListNode(synthRune('(', "", ""), nil, nil, synthRune(')', "", "")),
		)
		typeOf := ast.NewTypeOfExprNode(synthKeyword("typeof", "", ""), synthRune('(', "", ""), typ, synthRune(')', "", ""))
		eq := ast.NewBinaryExprNode(getType, synthToken("==", " ", " "), typeOf)
		replacement := synthParen(ast.NewCastExprNode(synthRune('(', "", ""), typ, synthRune(')', "", ""), synthParen(governing)))
		binding := &patternBinding{name: p.Designation.Val, replacement: replacement}
		var test ast.ExprNode
		if when == nil {
			test = synthParen(eq)
		} else {
			// the guard may use the bound variable too
			when = substituteIdentifier(when, binding.name, binding.replacement)
			test = synthParen(ast.NewBinaryExprNode(eq, synthToken("&&", " ", " "), when))
		}
		return test, binding, nil
	case *ast.DiscardPatternNode:
		return nil, nil, reporter.Errorf(r.pos(arm.Pattern), "discard pattern must be the final arm")
	default:
		return nil, nil, reporter.Errorf(r.pos(arm.Pattern), "unsupported switch pattern: %s", r.describe(arm.Pattern))
	}
}

func (r *ExpressionRewriter) visitTypeNode(t ast.TypeNode) (ast.TypeNode, error) {
	v, err := r.visit(t)
	if err != nil {
		return nil, err
	}
	if tv, ok := v.(ast.TypeNode); ok {
		return tv, nil
	}
	return t, nil
}

// stripTypeTrivia removes trivia from type syntax destined for a
// synthesized position.
func stripTypeTrivia(t ast.TypeNode) ast.TypeNode {
	switch n := t.(type) {
	case *ast.IdentNode:
		return n.WithTrivia("", "")
	case *ast.QualifiedNameNode:
		return stripNameTrivia(n)
	case *ast.PredefinedTypeNode:
		return ast.NewPredefinedTypeNode(n.Keyword.WithTrivia("", ""))
	case *ast.NullableTypeNode:
		return ast.NewNullableTypeNode(stripTypeTrivia(n.Element), n.Question.WithTrivia("", ""))
	default:
		return t
	}
}

// visitNullableType drops the nullable annotation when the element is a
// reference type, where the annotation is a compile-time hint with no
// runtime counterpart. Nullable value types keep theirs.
func (r *ExpressionRewriter) visitNullableType(n *ast.NullableTypeNode) (ast.ExprNode, error) {
	element, err := r.visitTypeNode(n.Element)
	if err != nil {
		return nil, err
	}
	if typ := r.Model.TypeOf(n.Element); typ != nil && !typ.ValueType {
		return typeAppendTrailing(element, n.Question.TrailingTrivia()), nil
	}
	if element == n.Element {
		return n, nil
	}
	return ast.NewNullableTypeNode(element, n.Question), nil
}

// visitInterpolatedString rewrites each interpolation hole and wraps the
// hole's expression in parentheses so the rewritten form cannot change how
// the hole parses.
func (r *ExpressionRewriter) visitInterpolatedString(n *ast.InterpolatedStringExprNode) (ast.ExprNode, error) {
	parts := n.Parts
	changed := false
	for i, part := range n.Parts {
		interp, ok := part.(*ast.InterpolationNode)
		if !ok {
			continue
		}
		e, err := r.visit(interp.Expr)
		if err != nil {
			return nil, err
		}
		if _, ok := e.(*ast.ParenExprNode); !ok {
			e = synthParen(withoutOuterTrivia(e))
		}
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
		return n, nil
	}
	return ast.NewInterpolatedStringExprNode(n.Open, parts, n.Close), nil
}

func (r *ExpressionRewriter) visitInitializer(n *ast.InitializerExprNode) (ast.ExprNode, error) {
	exprs, changed, err := r.visitExprs(n.Exprs)
	if err != nil {
		return nil, err
	}
	if !changed {
		return n, nil
	}
	return ast.NewInitializerExprNode(n.Open, exprs, n.Commas, n.Close), nil
}

func (r *ExpressionRewriter) visitObjectCreation(n *ast.ObjectCreationExprNode) (ast.ExprNode, error) {
	typ, err := r.visitTypeNode(n.Type)
	if err != nil {
		return nil, err
	}
	args := n.Args
	if n.Args != nil {
		args, err = r.visitArgList(n.Args)
		if err != nil {
			return nil, err
		}
	}
	initializer := n.Initializer
	if n.Initializer != nil {
		init, err := r.visitInitializer(n.Initializer)
		if err != nil {
			return nil, err
		}
		initializer = init.(*ast.InitializerExprNode)
	}
	if typ == n.Type && args == n.Args && initializer == n.Initializer {
		return n, nil
	}
	return ast.NewObjectCreationExprNode(n.Keyword, typ, args, initializer), nil
}

func (r *ExpressionRewriter) pos(n ast.Node) ast.SourcePos {
	if r.Info != nil && n.Span().Valid() {
		return r.Info.Pos(n.Span().Start)
	}
	return ast.UnknownPos
}

func (r *ExpressionRewriter) describe(n ast.Node) string {
	if r.Info != nil && n.Span().Valid() {
		if text := strings.TrimSpace(r.Info.SpanText(n.Span())); text != "" {
			return text
		}
	}
	return strings.TrimSpace(ast.Text(n))
}
