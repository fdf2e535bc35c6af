package spawngroup

import "context"

// WithValueGroup runs body with a freshly constructed ValueGroup, closing
// the group when body returns. The group is closed before WithValueGroup
// returns, so body's return value r may safely capture results gathered
// via g.Next/g.First up to that point, but must not retain g itself.
func WithValueGroup[T, R any](ctx context.Context, opts []Option, body func(g *ValueGroup[T]) R) R {
	cfg := resolveOptions(opts)
	g := newValueGroup[T](ctx, cfg)
	defer g.Close()
	return body(g)
}

// WithErrorGroup is WithValueGroup for a group whose tasks report
// Result[T] instead of discarding their error.
func WithErrorGroup[T, R any](ctx context.Context, opts []Option, body func(g *ErrorGroup[T]) R) R {
	cfg := resolveOptions(opts)
	g := newErrorGroup[T](ctx, cfg)
	defer g.Close()
	return body(g)
}

// WithDiscardingGroup is WithValueGroup for a group run purely for effect.
func WithDiscardingGroup[R any](ctx context.Context, opts []Option, body func(g *DiscardingGroup) R) R {
	cfg := resolveOptions(opts)
	g := newDiscardingGroup(ctx, cfg)
	defer g.Close()
	return body(g)
}
