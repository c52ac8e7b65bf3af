package semantic

import (
	"fmt"

	"github.com/exprlift/exprlift/ast"
	"github.com/exprlift/exprlift/internal/spanmap"
)

// Table is a concrete Model that hosts populate by binding nodes of the
// original tree to symbols, types, and operations. Bindings are keyed by
// the node's source span, so two nodes covering the same bytes share an
// entry only within the same category (symbol, type, or operation).
//
// A zero value is ready to use. Populate the table fully before handing it
// to a rewrite; it is then safe for concurrent readers.
type Table struct {
	syms  spanmap.Map[int64, *Symbol]
	types spanmap.Map[int64, *TypeRef]
	ops   spanmap.Map[int64, *Operation]
}

var _ Model = (*Table)(nil)

// BindSymbol records that the node resolves to the given symbol. The node
// must have a valid span.
func (t *Table) BindSymbol(n ast.Node, s *Symbol) {
	t.syms.Set(spanKey(n), s)
}

// BindType records the converted type of the node. The node must have a
// valid span.
func (t *Table) BindType(n ast.Node, ty *TypeRef) {
	t.types.Set(spanKey(n), ty)
}

// BindOperation records the operation the node participates in. The node
// must have a valid span.
func (t *Table) BindOperation(n ast.Node, op *Operation) {
	t.ops.Set(spanKey(n), op)
}

// SymbolFor implements Model.
func (t *Table) SymbolFor(n ast.Node) *Symbol {
	if !n.Span().Valid() {
		return nil
	}
	s, _ := t.syms.Get(spanKey(n))
	return s
}

// TypeOf implements Model.
func (t *Table) TypeOf(n ast.Node) *TypeRef {
	if !n.Span().Valid() {
		return nil
	}
	ty, _ := t.types.Get(spanKey(n))
	return ty
}

// OperationFor implements Model.
func (t *Table) OperationFor(n ast.Node) *Operation {
	if !n.Span().Valid() {
		return nil
	}
	op, _ := t.ops.Get(spanKey(n))
	return op
}

func spanKey(n ast.Node) int64 {
	sp := n.Span()
	if !sp.Valid() {
		panic(fmt.Sprintf("cannot bind node with invalid span %+v", sp))
	}
	return int64(sp.Start)<<32 | int64(uint32(sp.End))
}
