package spawngroup

import "context"

// ForEach applies fn to each item concurrently under a fresh
// ErrorGroup[struct{}] (via Collect) and returns a joined error built from every failure, or nil when all
// succeed.
func ForEach[T any](ctx context.Context, items []T, fn func(context.Context, T) error, opts ...Option) error {
	if len(items) == 0 {
		return nil
	}

	// ForEach's aggregated error needs each failure individually, which a
	// DiscardingGroup does not surface; collect errors through an
	// ErrorGroup[struct{}] instead and discard the (always-zero) values.
	fns := make([]func(context.Context) (struct{}, error), 0, len(items))
	for i := range items {
		item := items[i]
		fns = append(fns, func(c context.Context) (struct{}, error) { return struct{}{}, fn(c, item) })
	}

	_, err := Collect[struct{}](ctx, fns, opts...)
	return err
}
