// Package exprlift provides a driver for rewriting batches of lambda
// expression bodies into self-contained expressions.
//
// The bulk of the work happens in sub-packages: ast defines the expression
// trees, semantic defines the lookup service that supplies meaning for
// nodes of an original tree, rewriter performs the actual transformation,
// and reporter handles diagnostics. This package ties them together with a
// Rewriter type that runs many bodies concurrently under one diagnostic
// handler, the typical shape for a query provider that translates every
// lambda in a compilation unit.
package exprlift
