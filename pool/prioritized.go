package pool

import (
	"time"

	"github.com/ygrebnov/spawngroup/internal/priority"
	"github.com/ygrebnov/spawngroup/internal/task"
)

// item is one entry in a worker's inbox: either a real task at a user
// priority, or the internal barrier sentinel used by WaitForAll.
type item struct {
	task        *task.Task
	priority    priority.Priority
	seq         uint64
	submittedAt time.Time

	barrier *barrier
}

// barrier is the sentinel payload a collective wait pushes into every
// worker's inbox. Each worker that dequeues one calls done exactly once;
// WaitForAll blocks until every worker has done so.
type barrier struct {
	done func()
}

func (it *item) isBarrier() bool {
	return it.barrier != nil
}
