package spawngroup

import "context"

// Map applies fn to each item concurrently under a fresh ErrorGroup[R] and
// returns every successful result alongside a joined error built from
// every failure. Like Collect, results are returned in completion order,
// not input order.
func Map[T, R any](
	ctx context.Context,
	items []T,
	fn func(context.Context, T) (R, error),
	opts ...Option,
) ([]R, error) {
	if len(items) == 0 {
		return nil, nil
	}

	fns := make([]func(context.Context) (R, error), 0, len(items))
	for i := range items {
		item := items[i]
		fns = append(fns, func(c context.Context) (R, error) { return fn(c, item) })
	}
	return Collect[R](ctx, fns, opts...)
}
