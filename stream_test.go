package spawngroup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStream_FIFOOrder(t *testing.T) {
	s := newStream[int](0)
	s.registerPending()
	s.registerPending()
	s.registerPending()

	s.insert(1)
	s.insert(2)
	s.insert(3)

	v, ok := s.first()
	require.True(t, ok)
	require.Equal(t, 1, v)

	v, ok = s.first()
	require.True(t, ok)
	require.Equal(t, 2, v)

	v, ok = s.first()
	require.True(t, ok)
	require.Equal(t, 3, v)
}

func TestStream_TerminalWhenOutstandingZero(t *testing.T) {
	s := newStream[int](0)
	s.registerPending()
	s.insert(1)

	_, ok := s.first()
	require.True(t, ok)
	require.True(t, s.isEmpty())

	v, ok := s.Next(context.Background())
	require.False(t, ok)
	require.Zero(t, v)
}

func TestStream_NextWaitsForPending(t *testing.T) {
	s := newStream[int](0)
	s.registerPending()

	go func() {
		time.Sleep(20 * time.Millisecond)
		s.insert(99)
	}()

	v, ok := s.Next(context.Background())
	require.True(t, ok)
	require.Equal(t, 99, v)
}

func TestStream_BoundedCapacityBlocksInsertUntilDrained(t *testing.T) {
	s := newStream[int](1)
	s.registerPending()
	s.registerPending()

	s.insert(1)

	inserted := make(chan struct{})
	go func() {
		s.insert(2)
		close(inserted)
	}()

	select {
	case <-inserted:
		t.Fatal("insert did not block with the buffer at capacity")
	case <-time.After(20 * time.Millisecond):
	}

	v, ok := s.first()
	require.True(t, ok)
	require.Equal(t, 1, v)

	select {
	case <-inserted:
	case <-time.After(time.Second):
		t.Fatal("insert did not unblock once a slot was freed")
	}

	v, ok = s.first()
	require.True(t, ok)
	require.Equal(t, 2, v)
}

func TestStream_CancelTasksForcesTerminal(t *testing.T) {
	s := newStream[int](0)
	s.registerPending()

	done := make(chan struct{})
	var got bool
	go func() {
		_, got = s.Next(context.Background())
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	s.cancelTasks()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cancelTasks did not unblock Next")
	}
	require.False(t, got)
}
