package spawngroup

import (
	"errors"
	"fmt"

	"github.com/ygrebnov/spawngroup/internal/priority"
)

// TaskTrace exposes correlation metadata for a failed spawned task: the
// priority it was spawned at and its monotonic spawn sequence number
// within the owning group.
type TaskTrace interface {
	error
	Unwrap() error
	Priority() priority.Priority
	Sequence() uint64
}

type taskTrace struct {
	err      error
	priority priority.Priority
	seq      uint64
}

func newTaskTrace(err error, p priority.Priority, seq uint64) error {
	if err == nil {
		return nil
	}
	return &taskTrace{err: err, priority: p, seq: seq}
}

func (e *taskTrace) Error() string             { return e.err.Error() }
func (e *taskTrace) Unwrap() error              { return e.err }
func (e *taskTrace) Priority() priority.Priority { return e.priority }
func (e *taskTrace) Sequence() uint64            { return e.seq }

func (e *taskTrace) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "task(seq=%d,priority=%s): %+v", e.seq, e.priority, e.err)
			return
		}
		fallthrough
	case 's':
		_, _ = fmt.Fprint(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// ExtractTaskPriority returns the spawn priority recorded on err, if any.
func ExtractTaskPriority(err error) (priority.Priority, bool) {
	var tt TaskTrace
	if errors.As(err, &tt) {
		return tt.Priority(), true
	}
	return 0, false
}

// ExtractTaskSequence returns the spawn sequence number recorded on err, if
// any.
func ExtractTaskSequence(err error) (uint64, bool) {
	var tt TaskTrace
	if errors.As(err, &tt) {
		return tt.Sequence(), true
	}
	return 0, false
}
