package spawngroup

import (
	"context"
	"errors"
)

// Collect runs fns concurrently under a fresh ErrorGroup[T], waits for all
// of them to finish, and returns every successful value alongside a joined
// error built from every failure. Values and errors are both drained in
// completion order, not input order — callers needing input order should
// tag T with an index and sort afterward.
func Collect[T any](ctx context.Context, fns []func(context.Context) (T, error), opts ...Option) ([]T, error) {
	if len(fns) == 0 {
		return nil, nil
	}

	cfg := resolveOptions(opts)
	g := newErrorGroup[T](ctx, cfg)

	for _, fn := range fns {
		g.Spawn(DefaultPriority, fn)
	}
	g.WaitForAll()

	var (
		values []T
		errs   []error
	)
	for {
		r, ok := g.First(ctx)
		if !ok {
			break
		}
		if r.Err != nil {
			errs = append(errs, r.Err)
		} else {
			values = append(values, r.Value)
		}
	}

	g.Close()
	return values, errors.Join(errs...)
}
