package jarkup

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Decode converts a generic JSON value (as produced by encoding/json,
// go-json or yaml.v3) into a Component, dispatching through the untagged
// Component union. Decoding is all-or-nothing: on failure the returned
// error is Issues and the component is nil.
func Decode(ctx context.Context, v any, opts ...DecodeOpt) (Component, error) {
	return run(ctx, opts, func(d *decoder) (Component, bool) { return d.component(v, rootPath) })
}

// DecodeInline decodes v through the InlineComponent tagged union.
func DecodeInline(ctx context.Context, v any, opts ...DecodeOpt) (InlineComponent, error) {
	return run(ctx, opts, func(d *decoder) (InlineComponent, bool) { return d.inline(v, rootPath) })
}

// DecodeBlock decodes v through the BlockComponent tagged union.
func DecodeBlock(ctx context.Context, v any, opts ...DecodeOpt) (BlockComponent, error) {
	return run(ctx, opts, func(d *decoder) (BlockComponent, bool) { return d.block(v, rootPath) })
}

// DecodeDocument decodes a JSON array of root components.
func DecodeDocument(ctx context.Context, v any, opts ...DecodeOpt) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opt := pickOpt(opts)
	roots, ok := v.([]any)
	if !ok {
		d := newDecoder(opt, nil)
		d.typeMismatch(rootPath, "array", v)
		return nil, d.issues
	}
	if opt.Parallelism > 1 && len(roots) > 1 {
		return decodeParallel(ctx, roots, opt)
	}
	d := newDecoder(opt, nil)
	doc := make(Document, 0, len(roots))
	for i, r := range roots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if d.halted() {
			break
		}
		if c, ok := d.component(r, rootPath.at(i)); ok {
			doc = append(doc, c)
		}
	}
	if len(d.issues) > 0 {
		return nil, d.issues
	}
	return doc, nil
}

// decodeParallel decodes document roots concurrently. Each root gets its own
// decoder; the node budget is shared and issues are merged in root order.
func decodeParallel(ctx context.Context, roots []any, opt DecodeOpt) (Document, error) {
	var nodes atomic.Int64
	doc := make(Document, len(roots))
	perRoot := make([]Issues, len(roots))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opt.Parallelism)
	for i, r := range roots {
		i, r := i, r
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			d := newDecoder(opt, &nodes)
			c, ok := d.component(r, rootPath.at(i))
			if !ok {
				perRoot[i] = d.issues
				if opt.FailFast || d.aborted {
					return d.issues
				}
				return nil
			}
			doc[i] = c
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	all := capIssues(perRoot)
	if len(all) > 0 {
		if opt.FailFast {
			all = all[:1]
		}
		return nil, all
	}
	return doc, nil
}

func run[T any](ctx context.Context, opts []DecodeOpt, f func(d *decoder) (T, bool)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	d := newDecoder(pickOpt(opts), nil)
	v, ok := f(d)
	if !ok || len(d.issues) > 0 {
		if len(d.issues) == 0 {
			return zero, issueError("/", CodeParseError, "decode failed", nil, nil)
		}
		return zero, d.issues
	}
	return v, nil
}
