package spawngroup

import (
	"context"

	"github.com/ygrebnov/spawngroup/internal/priority"
)

// DiscardingGroup scopes a set of child tasks run purely for effect: it
// never exposes a result stream, only completion and cancellation. A panic
// is recovered and logged like the other group kinds, but has nothing to
// surface to besides the diagnostic logger.
type DiscardingGroup struct {
	engine *engine[struct{}]
}

func newDiscardingGroup(ctx context.Context, cfg Config) *DiscardingGroup {
	return &DiscardingGroup{engine: newEngine[struct{}](ctx, cfg)}
}

// Spawn schedules fn at priority p. Its return error, if any, and any
// recovered panic are logged; nothing is ever emitted on a stream.
func (g *DiscardingGroup) Spawn(p priority.Priority, fn func(ctx context.Context) error) {
	g.engine.writeTask(p, g.wrap(p, fn))
}

// SpawnUnlessCancelled is Spawn, but a no-op once CancelAll has run.
func (g *DiscardingGroup) SpawnUnlessCancelled(p priority.Priority, fn func(ctx context.Context) error) {
	g.engine.writeTaskUnlessCancelled(p, g.wrap(p, fn))
}

func (g *DiscardingGroup) wrap(p priority.Priority, fn func(ctx context.Context) error) func(context.Context, uint64) (struct{}, bool) {
	return func(ctx context.Context, seq uint64) (struct{}, bool) {
		defer func() {
			if rec := recover(); rec != nil {
				g.engine.logger.Error("spawngroup: task panicked",
					"panic", rec, "sequence", seq, "priority", p)
			}
		}()

		if err := fn(ctx); err != nil {
			g.engine.logger.Error("spawngroup: task returned error",
				"error", newTaskTrace(err, p, seq), "sequence", seq)
		}
		return struct{}{}, false
	}
}

// CancelAll cancels every outstanding and queued task in the group.
func (g *DiscardingGroup) CancelAll() {
	g.engine.cancelAll()
}

// WaitForAll blocks until every task spawned as of the call has finished.
func (g *DiscardingGroup) WaitForAll() {
	g.engine.waitForAllTasks()
}

// WaitBlocking is an alias for WaitForAll.
func (g *DiscardingGroup) WaitBlocking() {
	g.WaitForAll()
}

// IsEmpty reports whether no task is still outstanding.
func (g *DiscardingGroup) IsEmpty() bool {
	return g.engine.stream.isEmpty()
}

// IsCancelled reports whether CancelAll has been called on this group.
func (g *DiscardingGroup) IsCancelled() bool {
	return g.engine.isCancelled()
}

// TaskCount reports the number of tasks spawned but not yet completed.
func (g *DiscardingGroup) TaskCount() int64 {
	return g.engine.taskCount()
}

// Close is the explicit drop point. See ValueGroup.Close.
func (g *DiscardingGroup) Close() {
	g.engine.close()
}
