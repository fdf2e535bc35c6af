package suspend

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSuspender_ResumeBeforeSuspend(t *testing.T) {
	s := New()

	s.Resume() // notify before anyone is waiting

	done := make(chan struct{})
	go func() {
		s.Suspend() // must return immediately, already notified
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Suspend blocked despite a prior Resume")
	}
}

func TestSuspender_SuspendThenResume(t *testing.T) {
	s := New()

	var wg sync.WaitGroup
	wg.Add(1)

	started := make(chan struct{})
	go func() {
		defer wg.Done()
		close(started)
		s.Suspend()
	}()

	<-started
	time.Sleep(10 * time.Millisecond) // best-effort: let Suspend reach the wait
	s.Resume()

	waitDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(waitDone)
	}()

	select {
	case <-waitDone:
	case <-time.After(time.Second):
		t.Fatal("Resume did not wake the suspended goroutine")
	}
}

func TestSuspender_DoubleSuspendPanics(t *testing.T) {
	s := New()
	s.state = stateSuspended

	require.Panics(t, func() { s.Suspend() })
}

func TestNewPair_WakeResumesSuspender(t *testing.T) {
	s, w := NewPair()

	done := make(chan struct{})
	go func() {
		s.Suspend()
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	w.Wake()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wake did not resume the suspended goroutine")
	}
}
