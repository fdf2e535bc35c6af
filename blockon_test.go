package spawngroup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// S6: BlockOn drives a task-shaped function to completion on the calling
// goroutine.
func TestBlockOn(t *testing.T) {
	result := BlockOn(func(ctx context.Context) int {
		return 21 * 2
	})
	require.Equal(t, 42, result)
}

func TestBlockOn_ComposesSleepAndReady(t *testing.T) {
	start := time.Now()
	BlockOn(func(ctx context.Context) struct{} {
		Sleep(20 * time.Millisecond)(ctx)
		return struct{}{}
	})
	require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)

	v := BlockOn(Ready(7))
	require.Equal(t, 7, v)
}

func TestYieldNow_ReturnsImmediatelyOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		YieldNow(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("YieldNow did not return promptly on a cancelled context")
	}
}
