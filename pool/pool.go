// Package pool implements the fixed-size, priority-dispatching thread pool
// that drives spawned tasks. Each worker owns its own priority-ordered
// inbox; submission round-robins across workers, and a task that isn't
// ready yet suspends its worker instead of blocking the whole pool.
package pool

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ygrebnov/spawngroup/internal/priority"
	"github.com/ygrebnov/spawngroup/internal/task"
	"github.com/ygrebnov/spawngroup/metrics"
)

// Pool dispatches tasks to a fixed set of worker goroutines, each servicing
// its own priority-ordered inbox.
type Pool interface {
	// Submit enqueues t at the given priority on the next worker in
	// round-robin order. Submit never blocks.
	Submit(t *task.Task, p priority.Priority)

	// WaitForAll blocks until every worker has drained everything queued on
	// it as of the call (a barrier, not a guarantee about tasks submitted
	// concurrently with the call itself).
	WaitForAll()

	// Clear cancels and discards every task still waiting in a worker
	// inbox. A task already being driven by its worker is unaffected; it
	// runs to completion or observes cancellation on its own.
	Clear()

	// Close stops accepting new work and waits for every worker goroutine
	// to exit. It is safe to call Close more than once.
	Close()

	// Size reports the number of worker goroutines in the pool.
	Size() int
}

type pool struct {
	workers []*worker
	next    atomic.Uint64
	wg      sync.WaitGroup

	cancel context.CancelFunc
	once   sync.Once
}

// newPool builds a pool of size workers. dispatchLatency, if non-nil,
// receives one observation per submitted task of the time spent queued
// before its worker starts driving it.
func newPool(ctx context.Context, size int, dispatchLatency metrics.Histogram) *pool {
	if size <= 0 {
		panic("pool: size must be greater than zero")
	}

	runCtx, cancel := context.WithCancel(ctx)

	p := &pool{
		workers: make([]*worker, size),
		cancel:  cancel,
	}
	for i := range p.workers {
		p.workers[i] = newWorker(i, dispatchLatency)
	}

	p.wg.Add(size)
	for _, w := range p.workers {
		w := w
		go func() {
			defer p.wg.Done()
			w.run(runCtx)
		}()
	}

	return p
}

func (p *pool) Submit(t *task.Task, pr priority.Priority) {
	n := p.next.Add(1)
	idx := n % uint64(len(p.workers))
	p.workers[idx].inbox.push(&item{task: t, priority: pr, seq: n, submittedAt: time.Now()})
}

func (p *pool) WaitForAll() {
	var wg sync.WaitGroup
	wg.Add(len(p.workers))

	for _, w := range p.workers {
		w.inbox.push(&item{
			priority: priority.Wait,
			barrier:  &barrier{done: wg.Done},
		})
	}

	wg.Wait()
}

func (p *pool) Clear() {
	for _, w := range p.workers {
		w.inbox.clear()
	}
}

func (p *pool) Close() {
	p.once.Do(func() {
		p.cancel()
		for _, w := range p.workers {
			w.inbox.close()
		}
		p.wg.Wait()
	})
}

func (p *pool) Size() int {
	return len(p.workers)
}
