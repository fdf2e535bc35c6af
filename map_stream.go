package spawngroup

import "context"

// MapStream consumes items from in, applies fn concurrently under a fresh
// ErrorGroup[R], and returns channels of successful results and errors.
// Both channels close once in is closed (or ctx is cancelled) and every
// spawned task has finished.
func MapStream[T any, R any](
	ctx context.Context, in <-chan T, fn func(context.Context, T) (R, error), opts ...Option,
) (results <-chan R, errs <-chan error) {
	wrapped := make(chan func(context.Context) (R, error))

	go func() {
		defer close(wrapped)
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-in:
				if !ok {
					return
				}
				item := v
				select {
				case wrapped <- func(c context.Context) (R, error) { return fn(c, item) }:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return CollectStream[R](ctx, wrapped, opts...)
}
