package spawngroup

import (
	"context"

	"github.com/ygrebnov/spawngroup/internal/priority"
)

// ValueGroup scopes a set of child tasks that each produce a T. A task
// returning a non-nil error has that error recovered, logged, and tagged
// with a TaskTrace, but its value is never emitted — ValueGroup's stream
// carries only successful results. Use ErrorGroup when an error itself is
// part of the data a caller needs to see.
type ValueGroup[T any] struct {
	engine *engine[T]
}

func newValueGroup[T any](ctx context.Context, cfg Config) *ValueGroup[T] {
	return &ValueGroup[T]{engine: newEngine[T](ctx, cfg)}
}

// Spawn schedules fn at priority p. fn's error, if any, is logged and
// discarded; the value is only emitted on the stream when err is nil.
func (g *ValueGroup[T]) Spawn(p priority.Priority, fn func(ctx context.Context) (T, error)) {
	g.engine.writeTask(p, g.wrap(p, fn))
}

// SpawnUnlessCancelled is Spawn, but a no-op once CancelAll has run.
func (g *ValueGroup[T]) SpawnUnlessCancelled(p priority.Priority, fn func(ctx context.Context) (T, error)) {
	g.engine.writeTaskUnlessCancelled(p, g.wrap(p, fn))
}

func (g *ValueGroup[T]) wrap(p priority.Priority, fn func(ctx context.Context) (T, error)) func(context.Context, uint64) (T, bool) {
	return func(ctx context.Context, seq uint64) (v T, ok bool) {
		defer func() {
			if r := recover(); r != nil {
				g.engine.logger.Error("spawngroup: task panicked",
					"panic", r, "sequence", seq, "priority", p)
				ok = false
			}
		}()

		value, err := fn(ctx)
		if err != nil {
			g.engine.logger.Error("spawngroup: task returned error",
				"error", newTaskTrace(err, p, seq), "sequence", seq)
			return v, false
		}
		return value, true
	}
}

// CancelAll cancels every outstanding and queued task in the group.
func (g *ValueGroup[T]) CancelAll() {
	g.engine.cancelAll()
}

// WaitForAll blocks until every task spawned as of the call has finished.
func (g *ValueGroup[T]) WaitForAll() {
	g.engine.waitForAllTasks()
}

// WaitBlocking is an alias for WaitForAll kept for symmetry with the
// blocking convenience functions elsewhere in the package.
func (g *ValueGroup[T]) WaitBlocking() {
	g.WaitForAll()
}

// IsEmpty reports whether the stream currently has no buffered value and no
// task still outstanding.
func (g *ValueGroup[T]) IsEmpty() bool {
	return g.engine.stream.isEmpty()
}

// IsCancelled reports whether CancelAll has been called on this group.
func (g *ValueGroup[T]) IsCancelled() bool {
	return g.engine.isCancelled()
}

// TaskCount reports the number of tasks spawned but not yet completed.
func (g *ValueGroup[T]) TaskCount() int64 {
	return g.engine.taskCount()
}

// First returns the first buffered value without waiting for more. ok is
// false if none is currently buffered.
func (g *ValueGroup[T]) First(ctx context.Context) (T, bool) {
	return g.engine.stream.first()
}

// Next blocks until the next value is available or the group's stream
// reaches its terminal state.
func (g *ValueGroup[T]) Next(ctx context.Context) (T, bool) {
	return g.engine.stream.Next(ctx)
}

// Close is the explicit drop point: Go has no destructors, so a group must
// be closed to release its pool. If the group was built with
// WithoutWaitOnClose, Close cancels outstanding work instead of waiting
// for it.
func (g *ValueGroup[T]) Close() {
	g.engine.close()
}
