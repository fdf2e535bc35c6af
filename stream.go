package spawngroup

import (
	"context"
	"sync"

	"github.com/ygrebnov/spawngroup/internal/suspend"
)

// stream is a FIFO queue of completed task results with a single replaceable
// waker slot: at most one goroutine is ever registered to be woken, matching
// spec behavior that a stream has exactly one logical consumer at a time.
// Termination is implicit: once the buffer is empty and no task is still
// outstanding, the stream can never produce another value.
//
// When capacity > 0, insert blocks its caller (the task goroutine that
// produced the value) until the buffer has room, giving producers real
// backpressure instead of an unbounded slice. capacity == 0 means
// unbounded, the stream's default.
type stream[T any] struct {
	mu          sync.Mutex
	cond        *sync.Cond
	buf         []T
	capacity    int
	outstanding int64
	cancelled   bool
	waker       suspend.Waker
}

func newStream[T any](capacity int) *stream[T] {
	s := &stream[T]{capacity: capacity}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// registerPending records that one more task has been handed to the pool
// and will eventually call insert or taskDone exactly once. It must be
// called synchronously before the task is submitted, so a consumer polling
// concurrently never observes a false terminal state.
func (s *stream[T]) registerPending() {
	s.mu.Lock()
	s.outstanding++
	s.mu.Unlock()
}

// insert appends v to the stream and wakes the registered consumer, if any.
// It also accounts for the completion of the task that produced v. If the
// stream is at capacity, insert blocks until a consumer drains a slot or the
// stream is cancelled.
func (s *stream[T]) insert(v T) {
	s.mu.Lock()
	for s.capacity > 0 && len(s.buf) >= s.capacity && !s.cancelled {
		s.cond.Wait()
	}
	s.buf = append(s.buf, v)
	s.outstanding--
	w := s.takeWakerLocked()
	s.mu.Unlock()

	if w != nil {
		w.Wake()
	}
}

// taskDone accounts for a task that finished without producing a stream
// value (a suppressed error in a value group, a discarding group's task).
func (s *stream[T]) taskDone() {
	s.mu.Lock()
	s.outstanding--
	terminal := len(s.buf) == 0 && s.outstanding <= 0
	var w suspend.Waker
	if terminal {
		w = s.takeWakerLocked()
	}
	s.mu.Unlock()

	if w != nil {
		w.Wake()
	}
}

// pollNext performs one non-blocking check for the next value. ok is true
// only when a value was returned; otherwise pending indicates whether the
// caller should wait (true) or has reached the terminal state (false).
// waker is stored as the single registered waker when the call does not
// immediately produce a value, replacing whatever waker was registered
// before — mirroring the stream's single-consumer contract.
func (s *stream[T]) pollNext(waker suspend.Waker) (v T, ok bool, pending bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.buf) > 0 {
		v = s.buf[0]
		s.buf = s.buf[1:]
		if s.capacity > 0 {
			s.cond.Signal()
		}
		return v, true, false
	}

	if s.outstanding <= 0 {
		return v, false, false
	}

	s.waker = waker
	return v, false, true
}

// first returns the first buffered value without waiting for more, or
// ok=false if the buffer is currently empty (whether or not more is still
// outstanding).
func (s *stream[T]) first() (v T, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.buf) == 0 {
		return v, false
	}
	v = s.buf[0]
	s.buf = s.buf[1:]
	if s.capacity > 0 {
		s.cond.Signal()
	}
	return v, true
}

// cancelTasks forces the stream into the terminal state immediately,
// discarding any outstanding-task bookkeeping and waking a blocked consumer
// so it observes termination rather than waiting forever. It also releases
// any producer blocked in insert waiting for buffer space, so a cancelled
// group's in-flight tasks can still unwind instead of deadlocking on a full
// bounded stream.
func (s *stream[T]) cancelTasks() {
	s.mu.Lock()
	s.outstanding = 0
	s.cancelled = true
	w := s.takeWakerLocked()
	s.mu.Unlock()

	s.cond.Broadcast()
	if w != nil {
		w.Wake()
	}
}

func (s *stream[T]) isEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buf) == 0 && s.outstanding <= 0
}

// outstandingCount reports the number of tasks registered but not yet
// accounted for via insert or taskDone.
func (s *stream[T]) outstandingCount() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outstanding
}

func (s *stream[T]) takeWakerLocked() suspend.Waker {
	w := s.waker
	s.waker = nil
	return w
}

// Next blocks until a value is available or the stream reaches its
// terminal state, parking the calling goroutine between polls instead of
// spinning.
func (s *stream[T]) Next(ctx context.Context) (v T, ok bool) {
	suspender, waker := suspend.NewPair()

	for {
		val, ok, pending := s.pollNext(waker)
		if ok {
			return val, true
		}
		if !pending {
			return v, false
		}

		select {
		case <-ctx.Done():
			return v, false
		default:
			suspender.Suspend()
		}
	}
}
