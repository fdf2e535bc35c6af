package suspend

// Waker is the capability handed to whoever is driving a task: calling Wake
// resumes whichever goroutine is currently parked on the paired Suspender.
// It deliberately exposes nothing but Wake — unlike a raw *Suspender, a
// Waker is meant to be handed to arbitrary producer code that should not be
// able to call Suspend on someone else's rendezvous.
type Waker interface {
	Wake()
}

type suspenderWaker struct {
	s *Suspender
}

func (w suspenderWaker) Wake() { w.s.Resume() }

// NewPair creates a fresh Suspender and a Waker bound to it. Call this once
// per blocking context (once per worker for its lifetime, once per stream
// Next call) rather than per poll, so that repeated polls of many tasks on
// the same worker reuse one rendezvous instead of allocating afresh.
func NewPair() (*Suspender, Waker) {
	s := New()
	return s, suspenderWaker{s: s}
}
