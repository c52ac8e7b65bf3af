// Package semantic defines the read-only lookup service that rewriting
// consults to learn what a node in the original tree means: which symbol an
// identifier binds to, which type an expression converts to, and which
// operation a node participates in.
//
// Lookups are only meaningful for nodes of the original tree. Nodes
// synthesized during rewriting carry invalid spans and always resolve to
// nil.
package semantic

import "github.com/exprlift/exprlift/ast"

// SymbolKind classifies what a resolved symbol is.
type SymbolKind int

const (
	SymbolField SymbolKind = iota + 1
	SymbolProperty
	SymbolMethod
	SymbolEvent
	SymbolType
	SymbolLocal
	SymbolParameter
)

// IsMember reports whether the kind is a type member that can have a
// receiver.
func (k SymbolKind) IsMember() bool {
	switch k {
	case SymbolField, SymbolProperty, SymbolMethod, SymbolEvent:
		return true
	default:
		return false
	}
}

func (k SymbolKind) String() string {
	switch k {
	case SymbolField:
		return "field"
	case SymbolProperty:
		return "property"
	case SymbolMethod:
		return "method"
	case SymbolEvent:
		return "event"
	case SymbolType:
		return "type"
	case SymbolLocal:
		return "local"
	case SymbolParameter:
		return "parameter"
	default:
		return "unknown"
	}
}

// Symbol describes a declaration that a node resolves to.
type Symbol struct {
	// The symbol's declared name.
	Name string
	Kind SymbolKind
	// Whether the symbol is declared static.
	Static bool
	// For methods: whether the method is an extension method.
	Extension bool
	// The type that declares this symbol. Nil for types and locals.
	ContainingType *TypeRef
	// For SymbolType: the type this symbol names.
	Type *TypeRef
}

// TypeRef identifies a type by its fully qualified display form, e.g.
// "System.DateTime" or "int?". The display form is what a rewrite emits
// when it needs to reference the type unambiguously outside its original
// lexical context.
type TypeRef struct {
	FullyQualifiedName string
	// Whether the type is a value type. Nullable value types ("int?") are
	// value types; nullable annotations on reference types are not.
	ValueType bool
}

// Same reports whether both refs name the same type. Either side may be
// nil.
func (t *TypeRef) Same(o *TypeRef) bool {
	if t == nil || o == nil {
		return false
	}
	return t.FullyQualifiedName == o.FullyQualifiedName
}

// OperationKind classifies the operation a node participates in.
type OperationKind int

const (
	// OperationInvocation marks a node as (part of) a method invocation.
	OperationInvocation OperationKind = iota + 1
	// OperationMemberInitializer marks an identifier as the member being
	// assigned inside an object initializer, e.g. the "Name" of
	// "new T { Name = x }". Such identifiers are initializer keys, not
	// member reads, and must not be qualified by a rewrite.
	OperationMemberInitializer
)

// Operation describes the operation a node participates in.
type Operation struct {
	Kind OperationKind
}

// Model resolves nodes of one original expression tree. Implementations
// must be safe for concurrent readers, since independent rewrites may share
// a model. All methods return nil when no information is available for the
// node; rewriting treats that as "leave the node alone".
type Model interface {
	// SymbolFor returns the symbol the node resolves to.
	SymbolFor(n ast.Node) *Symbol
	// TypeOf returns the converted type of the expression node.
	TypeOf(n ast.Node) *TypeRef
	// OperationFor returns the operation the node participates in.
	OperationFor(n ast.Node) *Operation
}
