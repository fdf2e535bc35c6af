package spawngroup

import (
	"context"
	"runtime"
	"time"
)

// BlockOn runs fn to completion on the calling goroutine and returns its
// result. Unlike a worker pool task, fn is an ordinary Go function with no
// manual poll step: Go goroutines already block the calling stack frame
// for free, so BlockOn's role collapses to supplying a background context
// for top-level callers who want to drive a task-shaped fn without opening
// a group.
func BlockOn[T any](fn func(context.Context) T) T {
	return fn(context.Background())
}

// Sleep returns a task body that waits for d or until ctx is cancelled,
// whichever comes first — composable inside a Spawn closure.
func Sleep(d time.Duration) func(context.Context) {
	return func(ctx context.Context) {
		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
		}
	}
}

// YieldNow cooperatively yields the calling goroutine once, returning early
// if ctx is already cancelled.
func YieldNow(ctx context.Context) {
	select {
	case <-ctx.Done():
		return
	default:
		runtime.Gosched()
	}
}

// Ready returns a task body that immediately produces v, for composing
// fixed values into otherwise-asynchronous call sites.
func Ready[T any](v T) func(context.Context) T {
	return func(context.Context) T { return v }
}
