package spawngroup

import "context"

// ForEachStream applies fn to each item read from in concurrently under a
// fresh ErrorGroup, surfacing per-item failures on the returned errors
// channel. The channel closes once in is closed (or ctx is cancelled) and
// every spawned task has finished.
func ForEachStream[T any](
	ctx context.Context, in <-chan T, fn func(context.Context, T) error, opts ...Option,
) <-chan error {
	cfg := resolveOptions(opts)
	g := newErrorGroup[struct{}](ctx, cfg)

	errs := make(chan error)

	go func() {
		defer close(errs)
		defer g.Close()

		intake := true
		for intake {
			select {
			case <-ctx.Done():
				intake = false
			case v, ok := <-in:
				if !ok {
					intake = false
					break
				}
				item := v
				g.Spawn(DefaultPriority, func(c context.Context) (struct{}, error) {
					return struct{}{}, fn(c, item)
				})
			}
		}

		g.WaitForAll()

		for {
			r, ok := g.First(ctx)
			if !ok {
				break
			}
			if r.Err != nil {
				errs <- r.Err
			}
		}
	}()

	return errs
}
