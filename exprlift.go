package exprlift

import (
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"

	"github.com/exprlift/exprlift/ast"
	"github.com/exprlift/exprlift/reporter"
	"github.com/exprlift/exprlift/rewriter"
	"github.com/exprlift/exprlift/semantic"
)

// Body is one lambda expression body to rewrite, together with the context
// it was resolved in.
type Body struct {
	// Expr is the body's expression tree. Required.
	Expr ast.ExprNode
	// Model resolves nodes of Expr. Required. Bodies may share a model.
	Model semantic.Model
	// TargetType is the type whose members the body may reference
	// implicitly. Required.
	TargetType *semantic.TypeRef
	// Info supplies source positions for diagnostics. Optional.
	Info *ast.SourceInfo
}

// Rewriter handles rewrite tasks, turning batches of lambda expression
// bodies into self-contained expressions. Bodies are processed
// concurrently; each gets its own rewrite pass, while diagnostics funnel
// through a single handler so the configured reporter sees them all and
// can abort the whole batch.
type Rewriter struct {
	// Mode selects how null-conditional accesses are handled in every body
	// of a batch.
	Mode rewriter.NullConditionalMode
	// The maximum parallelism to use when rewriting. If unspecified or set
	// to a non-positive value, then min(runtime.NumCPU(),
	// runtime.GOMAXPROCS(-1)) will be used.
	MaxParallelism int
	// A custom error and warning reporter. If unspecified a default
	// reporter is used. A default reporter fails the batch after
	// encountering any errors and ignores all warnings.
	Reporter reporter.Reporter
}

// Rewrite rewrites the given bodies and returns the results in the same
// order. If any body fails, the whole batch fails; bodies still in flight
// are cancelled.
func (c *Rewriter) Rewrite(ctx context.Context, bodies ...Body) ([]ast.ExprNode, error) {
	if len(bodies) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	par := c.MaxParallelism
	if par <= 0 {
		par = runtime.GOMAXPROCS(-1)
		cpus := runtime.NumCPU()
		if par > cpus {
			par = cpus
		}
	}

	h := reporter.NewHandler(c.Reporter)

	e := executor{
		c:      c,
		h:      h,
		s:      semaphore.NewWeighted(int64(par)),
		cancel: cancel,
	}

	results := make([]*result, len(bodies))
	for i := range bodies {
		results[i] = e.rewrite(ctx, &bodies[i])
	}

	exprs := make([]ast.ExprNode, len(bodies))
	for i, r := range results {
		select {
		case <-r.ready:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		if r.err != nil {
			return nil, r.err
		}
		exprs[i] = r.res
	}

	if err := h.Error(); err != nil {
		return nil, err
	}
	return exprs, nil
}

type result struct {
	ready chan struct{}
	res   ast.ExprNode
	err   error
}

func (r *result) fail(err error) {
	r.err = err
	close(r.ready)
}

func (r *result) complete(e ast.ExprNode) {
	r.res = e
	close(r.ready)
}

type executor struct {
	c      *Rewriter
	h      *reporter.Handler
	s      *semaphore.Weighted
	cancel context.CancelFunc
}

func (e *executor) rewrite(ctx context.Context, body *Body) *result {
	r := &result{
		ready: make(chan struct{}),
	}
	go func() {
		e.doRewrite(ctx, body, r)
	}()
	return r
}

func (e *executor) doRewrite(ctx context.Context, body *Body, r *result) {
	if err := e.s.Acquire(ctx, 1); err != nil {
		r.fail(err)
		return
	}
	defer e.s.Release(1)

	// a fresh pass per body; the handler is shared and synchronized
	rw := rewriter.ExpressionRewriter{
		Model:      body.Model,
		TargetType: body.TargetType,
		Mode:       e.c.Mode,
		Info:       body.Info,
	}
	res, err := rw.Rewrite(body.Expr, e.h)
	if err != nil {
		e.cancel()
		r.fail(err)
		return
	}
	r.complete(res)
}
