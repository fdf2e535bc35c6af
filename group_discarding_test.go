package spawngroup

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// S5: discarding-group counter — tasks run purely for effect, observed
// through an external counter rather than a result stream.
func TestDiscardingGroup_RunsForEffectOnly(t *testing.T) {
	var counter int64

	WithDiscardingGroup[struct{}](context.Background(), nil, func(g *DiscardingGroup) struct{} {
		for i := 0; i < 100; i++ {
			g.Spawn(DefaultPriority, func(ctx context.Context) error {
				atomic.AddInt64(&counter, 1)
				return nil
			})
		}
		g.WaitForAll()
		require.True(t, g.IsEmpty())
		return struct{}{}
	})

	require.Equal(t, int64(100), atomic.LoadInt64(&counter))
}

func TestDiscardingGroup_CancelAllStopsQueuedWork(t *testing.T) {
	var ran atomic.Bool

	WithDiscardingGroup[struct{}](context.Background(), []Option{WithFixedPoolSize(1)}, func(g *DiscardingGroup) struct{} {
		block := make(chan struct{})
		g.Spawn(Low, func(ctx context.Context) error { <-block; return nil })
		g.Spawn(Low, func(ctx context.Context) error { ran.Store(true); return nil })

		g.CancelAll()
		close(block)

		return struct{}{}
	})

	require.False(t, ran.Load())
}
