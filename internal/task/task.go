// Package task implements the polymorphically-erased unit of work that a
// pool worker drives to completion. A Task knows nothing about the type its
// underlying closure produces: the closure is responsible for stashing its
// own result (value, error, panic) wherever its caller can later retrieve it,
// and Task itself tracks only whether that closure has started, finished, or
// been cancelled before it ever ran.
//
// Task is deliberately non-generic so that package pool, which drives tasks
// directly, never needs to import the generic root package that defines
// typed results — avoiding an import cycle between the two.
package task

import (
	"context"
	"runtime"
	"sync/atomic"

	"github.com/ygrebnov/spawngroup/internal/suspend"
)

const (
	pollUnlocked int32 = iota
	pollLocked
)

// wakerBox lets a *suspend.Waker be stored behind an atomic.Pointer; the
// interface value itself cannot be held atomically.
type wakerBox struct {
	w suspend.Waker
}

// Task is a single spawned unit of work. The zero value is not usable; build
// one with New.
type Task struct {
	fn func(context.Context)

	started   atomic.Bool
	cancelled atomic.Bool
	completed atomic.Bool

	pollLatch int32
	waker     atomic.Pointer[wakerBox]

	done chan struct{}
}

// New builds a Task around fn. The task does nothing until Start is called;
// this lets a producer construct and enqueue a Task before any worker has
// committed to running it.
func New(fn func(context.Context)) *Task {
	return &Task{
		fn:   fn,
		done: make(chan struct{}),
	}
}

// Cancel marks the task cancelled. If the task has not yet been started, its
// underlying closure will never run. Cancelling a task that is already
// running has no effect on the running closure; context cancellation is the
// mechanism for that, not Task.Cancel. Cancel does mark the task completed
// and close Done, even while a started closure is still running.
func (t *Task) Cancel() {
	if t.cancelled.CompareAndSwap(false, true) {
		if t.completed.CompareAndSwap(false, true) {
			close(t.done)
		}
	}
}

// IsCancelled reports whether Cancel has been called on this task.
func (t *Task) IsCancelled() bool {
	return t.cancelled.Load()
}

// IsCompleted reports whether the task's closure has finished running, or
// the task has been cancelled.
func (t *Task) IsCompleted() bool {
	return t.completed.Load()
}

// Start launches the task's closure exactly once, in a new goroutine, and
// arranges for waker to be woken when it finishes. Calling Start more than
// once is a no-op beyond the first call.
func (t *Task) Start(ctx context.Context, waker suspend.Waker) {
	if t.IsCancelled() {
		return
	}
	if !t.started.CompareAndSwap(false, true) {
		return
	}

	t.storeWaker(waker)

	go func() {
		defer func() {
			recover()
			if t.completed.CompareAndSwap(false, true) {
				close(t.done)
			}
			t.wake()
		}()
		t.fn(ctx)
	}()
}

// PollOnce performs one non-blocking check of whether the task has finished,
// re-registering waker as the one to notify if it has not. It returns true
// once the task is done (completed or cancelled).
//
// PollOnce may be called concurrently with Start's background goroutine
// completing; pollLatch guards the waker swap so a completion race never
// drops a wakeup between the done check and the new waker being stored.
func (t *Task) PollOnce(waker suspend.Waker) bool {
	for !atomic.CompareAndSwapInt32(&t.pollLatch, pollUnlocked, pollLocked) {
		runtime.Gosched()
	}
	defer atomic.StoreInt32(&t.pollLatch, pollUnlocked)

	select {
	case <-t.done:
		return true
	default:
	}

	t.storeWaker(waker)

	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Done returns the channel that closes once the task has finished or been
// cancelled. Callers that already hold a context (BlockOn,
// RuntimeEngine) can select on it directly instead of spin-polling.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

func (t *Task) storeWaker(w suspend.Waker) {
	t.waker.Store(&wakerBox{w: w})
}

func (t *Task) wake() {
	if box := t.waker.Load(); box != nil && box.w != nil {
		box.w.Wake()
	}
}
