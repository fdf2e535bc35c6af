package spawngroup

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// S1: sum of 11 spawned tasks, gathered through a ValueGroup.
func TestValueGroup_SumOfEleven(t *testing.T) {
	sum := WithValueGroup[int, int](context.Background(), nil, func(g *ValueGroup[int]) int {
		for i := 0; i <= 10; i++ {
			i := i
			g.Spawn(DefaultPriority, func(ctx context.Context) (int, error) { return i, nil })
		}
		g.WaitForAll()

		total := 0
		for {
			v, ok := g.Next(context.Background())
			if !ok {
				break
			}
			total += v
		}
		return total
	})

	require.Equal(t, 55, sum) // 0+1+...+10
}

func TestValueGroup_ErroredTaskIsDiscardedFromStream(t *testing.T) {
	WithValueGroup[int, struct{}](context.Background(), nil, func(g *ValueGroup[int]) struct{} {
		g.Spawn(DefaultPriority, func(ctx context.Context) (int, error) { return 0, errors.New("boom") })
		g.Spawn(DefaultPriority, func(ctx context.Context) (int, error) { return 42, nil })
		g.WaitForAll()

		var values []int
		for {
			v, ok := g.Next(context.Background())
			if !ok {
				break
			}
			values = append(values, v)
		}

		require.Equal(t, []int{42}, values)
		return struct{}{}
	})
}

// S3: spawning after CancelAll via SpawnUnlessCancelled is a no-op.
func TestValueGroup_SpawnUnlessCancelledAfterCancel(t *testing.T) {
	WithValueGroup[int, struct{}](context.Background(), nil, func(g *ValueGroup[int]) struct{} {
		g.CancelAll()
		require.True(t, g.IsCancelled())

		g.SpawnUnlessCancelled(DefaultPriority, func(ctx context.Context) (int, error) { return 1, nil })

		_, ok := g.Next(context.Background())
		require.False(t, ok)
		return struct{}{}
	})
}

func TestValueGroup_TaskCountTracksOutstandingWork(t *testing.T) {
	WithValueGroup[int, struct{}](context.Background(), nil, func(g *ValueGroup[int]) struct{} {
		require.Zero(t, g.TaskCount())

		release := make(chan struct{})
		g.Spawn(DefaultPriority, func(ctx context.Context) (int, error) { <-release; return 1, nil })
		require.Equal(t, int64(1), g.TaskCount())

		close(release)
		g.WaitForAll()
		require.Zero(t, g.TaskCount())
		return struct{}{}
	})
}

func TestValueGroup_IsEmpty(t *testing.T) {
	WithValueGroup[int, struct{}](context.Background(), nil, func(g *ValueGroup[int]) struct{} {
		require.True(t, g.IsEmpty())

		g.Spawn(DefaultPriority, func(ctx context.Context) (int, error) { return 1, nil })
		g.WaitForAll()

		require.False(t, g.IsEmpty())
		g.Next(context.Background())
		require.True(t, g.IsEmpty())
		return struct{}{}
	})
}
