// Package suspend implements the park/resume rendezvous a worker uses to
// block between polls of a task that is not yet ready, and the Waker
// capability that lets the task's eventual completion wake that worker back
// up. It is the lowest-level primitive the rest of the module is built on.
package suspend

import "sync"

type state int

const (
	stateInitial state = iota
	stateNotified
	stateSuspended
)

// Suspender is a three-state rendezvous between exactly one suspending
// goroutine and any number of resuming goroutines. Only one goroutine may
// have a Suspend call in flight at a time; a second concurrent Suspend is a
// programmer error and panics.
type Suspender struct {
	mu    sync.Mutex
	cond  *sync.Cond
	state state
}

// New creates a Suspender in its initial state.
func New() *Suspender {
	s := &Suspender{}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Suspend parks the calling goroutine until a matching Resume arrives. If a
// Resume already arrived before Suspend was called, it returns immediately,
// consuming that notification. The pair is reusable across repeated
// suspend/resume cycles.
func (s *Suspender) Suspend() {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case stateInitial:
		s.state = stateSuspended
		for s.state == stateSuspended {
			s.cond.Wait()
		}
		s.state = stateInitial
	case stateNotified:
		s.state = stateInitial
	case stateSuspended:
		panic("suspend: cannot suspend a goroutine that is already suspended")
	}
}

// Resume notifies the suspender. If nothing is suspended yet, the
// notification is absorbed and the next Suspend call returns immediately.
// If a goroutine is parked in Suspend, it is woken. Resume is idempotent
// with respect to a single pending notification: calling it twice before
// the matching Suspend observes at most one wakeup.
func (s *Suspender) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case stateInitial:
		s.state = stateNotified
	case stateSuspended:
		s.state = stateNotified
		s.cond.Signal()
	case stateNotified:
		// already notified, no-op
	}
}
