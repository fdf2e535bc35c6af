package spawngroup

import (
	"context"

	"github.com/ygrebnov/spawngroup/internal/priority"
)

// ErrorGroup scopes a set of child tasks whose outcome — value or error —
// is itself the data a caller needs: every task that runs, successful or
// not, emits exactly one Result[T] onto the stream; a task cancelled before
// it ran emits nothing. A panic inside fn is recovered and
// surfaces the same way a returned error would, tagged with a TaskTrace.
type ErrorGroup[T any] struct {
	engine *engine[Result[T]]
}

func newErrorGroup[T any](ctx context.Context, cfg Config) *ErrorGroup[T] {
	return &ErrorGroup[T]{engine: newEngine[Result[T]](ctx, cfg)}
}

// Spawn schedules fn at priority p. Both its value and its error are
// delivered on the stream as a single Result[T].
func (g *ErrorGroup[T]) Spawn(p priority.Priority, fn func(ctx context.Context) (T, error)) {
	g.engine.writeTask(p, g.wrap(p, fn))
}

// SpawnUnlessCancelled is Spawn, but a no-op once CancelAll has run.
func (g *ErrorGroup[T]) SpawnUnlessCancelled(p priority.Priority, fn func(ctx context.Context) (T, error)) {
	g.engine.writeTaskUnlessCancelled(p, g.wrap(p, fn))
}

func (g *ErrorGroup[T]) wrap(p priority.Priority, fn func(ctx context.Context) (T, error)) func(context.Context, uint64) (Result[T], bool) {
	return func(ctx context.Context, seq uint64) (r Result[T], ok bool) {
		defer func() {
			if rec := recover(); rec != nil {
				g.engine.logger.Error("spawngroup: task panicked",
					"panic", rec, "sequence", seq, "priority", p)
				r = Result[T]{Err: newTaskTrace(ErrTaskPanicked, p, seq)}
				ok = true
			}
		}()

		value, err := fn(ctx)
		if err != nil {
			return Result[T]{Err: newTaskTrace(err, p, seq)}, true
		}
		return Result[T]{Value: value}, true
	}
}

// CancelAll cancels every outstanding and queued task in the group.
func (g *ErrorGroup[T]) CancelAll() {
	g.engine.cancelAll()
}

// WaitForAll blocks until every task spawned as of the call has finished.
func (g *ErrorGroup[T]) WaitForAll() {
	g.engine.waitForAllTasks()
}

// WaitBlocking is an alias for WaitForAll.
func (g *ErrorGroup[T]) WaitBlocking() {
	g.WaitForAll()
}

// IsEmpty reports whether the stream currently has no buffered result and
// no task still outstanding.
func (g *ErrorGroup[T]) IsEmpty() bool {
	return g.engine.stream.isEmpty()
}

// IsCancelled reports whether CancelAll has been called on this group.
func (g *ErrorGroup[T]) IsCancelled() bool {
	return g.engine.isCancelled()
}

// TaskCount reports the number of tasks spawned but not yet completed.
func (g *ErrorGroup[T]) TaskCount() int64 {
	return g.engine.taskCount()
}

// First returns the first buffered result without waiting for more.
func (g *ErrorGroup[T]) First(ctx context.Context) (Result[T], bool) {
	return g.engine.stream.first()
}

// Next blocks until the next result is available or the group's stream
// reaches its terminal state.
func (g *ErrorGroup[T]) Next(ctx context.Context) (Result[T], bool) {
	return g.engine.stream.Next(ctx)
}

// Close is the explicit drop point. See ValueGroup.Close.
func (g *ErrorGroup[T]) Close() {
	g.engine.close()
}
