package spawngroup

import (
	"container/heap"
	"context"
	"sync"
	"sync/atomic"

	"github.com/ygrebnov/spawngroup/internal/priority"
	"github.com/ygrebnov/spawngroup/internal/task"
	"github.com/ygrebnov/spawngroup/metrics"
	"github.com/ygrebnov/spawngroup/pool"
)

// residualEntry is one in-flight task tracked by the engine's residual heap,
// used to drive a priority-ordered wait in waitForAllTasks.
type residualEntry struct {
	t   *task.Task
	p   priority.Priority
	seq uint64
}

// residualHeap orders entries highest-priority first, FIFO within a
// priority level, mirroring pool's own inboxHeap (container/heap.Interface).
type residualHeap []*residualEntry

func (h residualHeap) Len() int { return len(h) }

func (h residualHeap) Less(i, j int) bool {
	if h[i].p != h[j].p {
		return h[i].p > h[j].p
	}
	return h[i].seq < h[j].seq
}

func (h residualHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *residualHeap) Push(x interface{}) { *h = append(*h, x.(*residualEntry)) }

func (h *residualHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return it
}

// engine glues a worker pool, a result stream, and the bookkeeping a group
// façade needs (cancellation, spawn sequencing, instrumentation) into one
// unit. S is the stream's item type: T for ValueGroup, Result[T] for
// ErrorGroup, struct{} for DiscardingGroup.
type engine[S any] struct {
	ctx    context.Context
	cancel context.CancelFunc

	p      pool.Pool
	stream *stream[S]

	residualMu sync.Mutex
	residual   residualHeap

	cancelled atomic.Bool
	closed    atomic.Bool
	seq       atomic.Uint64

	logger  Logger
	spawned metrics.Counter
	done    metrics.Counter
	inFlt   metrics.UpDownCounter

	lifecycle *lifecycleCoordinator
}

func newEngine[S any](ctx context.Context, cfg Config) *engine[S] {
	runCtx, cancel := context.WithCancel(ctx)

	dispatchLatency := cfg.MetricsProvider.Histogram(
		"spawngroup.pool.dispatch_latency",
		metrics.WithUnit("seconds"),
		metrics.WithDescription("time a task spends queued before a worker starts it"),
	)

	var p pool.Pool
	if cfg.FixedPoolSize > 0 {
		p = pool.NewFixed(runCtx, int(cfg.FixedPoolSize), dispatchLatency)
	} else {
		p = pool.NewDefault(runCtx, dispatchLatency)
	}

	e := &engine[S]{
		ctx:     runCtx,
		cancel:  cancel,
		p:       p,
		stream:  newStream[S](int(cfg.StreamBufferSize)),
		logger:  cfg.Logger,
		spawned: cfg.MetricsProvider.Counter("spawngroup.tasks.spawned"),
		done:    cfg.MetricsProvider.Counter("spawngroup.tasks.completed"),
		inFlt:   cfg.MetricsProvider.UpDownCounter("spawngroup.tasks.in_flight"),
	}

	drainOrCancel := e.cancelAll
	if cfg.WaitOnClose {
		drainOrCancel = e.waitForAllTasks
	}
	e.lifecycle = newLifecycleCoordinator(drainOrCancel, e.p.Close)

	return e
}

// writeTask spawns run at priority p regardless of cancellation; once the
// engine is closed it logs ErrGroupClosed and spawns nothing. run reports the
// stream value to emit (if any) and whether it should be emitted: ok=false
// suppresses the value (a value group swallowing an error, a discarding
// group completing).
func (e *engine[S]) writeTask(p priority.Priority, run func(ctx context.Context, seq uint64) (S, bool)) {
	if e.closed.Load() {
		e.logger.Error(ErrGroupClosed.Error())
		return
	}

	seq := e.seq.Add(1)
	e.stream.registerPending()
	e.spawned.Add(1)
	e.inFlt.Add(1)

	t := task.New(func(ctx context.Context) {
		defer e.inFlt.Add(-1)
		defer e.done.Add(1)

		v, ok := run(ctx, seq)
		if ok {
			e.stream.insert(v)
		} else {
			e.stream.taskDone()
		}
	})

	e.residualMu.Lock()
	heap.Push(&e.residual, &residualEntry{t: t, p: p, seq: seq})
	e.residualMu.Unlock()

	e.p.Submit(t, p)
}

// writeTaskUnlessCancelled is writeTask's cancellation-aware sibling: it
// does nothing once the engine has been cancelled, so a caller racing a
// CancelAll never adds new work to a group that is winding down.
func (e *engine[S]) writeTaskUnlessCancelled(p priority.Priority, run func(ctx context.Context, seq uint64) (S, bool)) {
	if e.cancelled.Load() {
		e.logger.Error(ErrTaskCancelled.Error(), "priority", p)
		return
	}
	e.writeTask(p, run)
}

// cancelAll stops the engine: it signals its context, drops every task still
// waiting in a worker inbox, and forces the stream into its terminal state.
// Tasks already running observe ctx.Done() on their own.
func (e *engine[S]) cancelAll() {
	if !e.cancelled.CompareAndSwap(false, true) {
		return
	}
	e.cancel()
	e.p.Clear()
	e.stream.cancelTasks()
}

// waitForAllTasks blocks until every task queued as of the call has been
// driven to completion. It pops the residual heap in priority order and, for
// each task not already finished, blocks the calling goroutine on that
// task's completion before moving to the next — so a caller observing
// WaitForAll's return has the same priority-ordered drain guarantee the pool
// itself gives a single worker's inbox. The pool's own barrier wait runs
// last as a final guard against a task whose residual entry was popped
// concurrently with its own completion.
func (e *engine[S]) waitForAllTasks() {
	e.residualMu.Lock()
	pending := e.residual
	e.residual = nil
	e.residualMu.Unlock()

	for len(pending) > 0 {
		entry := heap.Pop(&pending).(*residualEntry)
		if entry.t.IsCompleted() || entry.t.IsCancelled() {
			continue
		}
		select {
		case <-entry.t.Done():
		case <-e.ctx.Done():
		}
	}

	e.p.WaitForAll()
}

// taskCount reports the number of tasks registered but not yet accounted
// for by the stream (spawned, not yet completed or suppressed).
func (e *engine[S]) taskCount() int64 {
	return e.stream.outstandingCount()
}

func (e *engine[S]) isCancelled() bool {
	return e.cancelled.Load()
}

func (e *engine[S]) close() {
	e.closed.Store(true)
	e.lifecycle.Close()
}
