// Package ast defines types for modeling the syntax tree of a C#-style
// expression body.
//
// All nodes of the tree implement the Node interface. Leaf nodes implement
// TerminalNode; every other node is a composite whose children appear in
// source order. Expression-shaped nodes implement ExprNode, type syntax
// implements TypeNode, and simple or qualified names implement NameNode
// (which is also valid type syntax). Switch-arm patterns implement
// PatternNode.
//
// Trees are immutable: transformation passes build and return new nodes
// rather than editing existing ones, so subtrees may be freely shared
// between an original tree and its rewritten form.
//
// Whitespace and comments are not nodes. Each terminal carries the raw
// leading and trailing trivia text that surrounded it in the source, which
// makes printing a tree reproduce its source bytes exactly and lets a
// rewrite substitute one terminal for another without disturbing the
// surrounding formatting.
//
// Position information is compact: terminals know only their byte offset.
// Full line/column positions are recovered through a SourceInfo for the
// file the tree was built from. Nodes synthesized by a rewrite carry an
// invalid offset and therefore an invalid Span.
//
// Creation of AST nodes should use the factory functions in this package
// instead of struct literals. If nil values are provided for non-optional
// arguments, the factory functions panic.
package ast
