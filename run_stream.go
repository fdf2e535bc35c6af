package spawngroup

import "context"

// CollectStream consumes task bodies from in, spawning each concurrently
// under a fresh ErrorGroup[T], and returns channels of successful values
// and errors. Both channels are closed once in is closed (or ctx is
// cancelled) and every task spawned so far has finished.
func CollectStream[T any](ctx context.Context, in <-chan func(context.Context) (T, error), opts ...Option) (<-chan T, <-chan error) {
	cfg := resolveOptions(opts)
	g := newErrorGroup[T](ctx, cfg)

	results := make(chan T)
	errs := make(chan error)

	go func() {
		defer close(results)
		defer close(errs)
		defer g.Close()

		intake := true
		for intake {
			select {
			case <-ctx.Done():
				intake = false
			case fn, ok := <-in:
				if !ok {
					intake = false
					break
				}
				g.Spawn(DefaultPriority, fn)
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
			} else {
				results <- r.Value
			}
		}
	}()

	return results, errs
}
